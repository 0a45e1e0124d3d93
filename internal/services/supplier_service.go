package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
)

var supplierSortColumns = map[string]string{
	"name":       "company_name",
	"last_name":  "last_name",
	"rating":     "rating",
	"created_at": "created_at",
}

// supplierService handles suppliers. Deleting a supplier hides it; its
// purchases keep pointing at it.
type supplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a new SupplierServicer.
func NewSupplierService(db *gorm.DB) SupplierServicer {
	return &supplierService{db: db}
}

func (in SupplierInput) apply(s *models.Supplier) {
	s.Type = in.Type
	s.CompanyName = strings.TrimSpace(in.CompanyName)
	s.FirstName = strings.TrimSpace(in.FirstName)
	s.LastName = strings.TrimSpace(in.LastName)
	s.Email = strings.ToLower(strings.TrimSpace(in.Email))
	s.Phone = strings.TrimSpace(in.Phone)
	s.Address = strings.TrimSpace(in.Address)
	s.Website = in.Website
	s.VATNumber = strings.TrimSpace(in.VATNumber)
	s.Notes = in.Notes
	s.Rating = in.Rating
}

// CreateSupplier creates a supplier.
func (s *supplierService) CreateSupplier(in SupplierInput) (*models.Supplier, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	supplier := &models.Supplier{}
	in.apply(supplier)
	if err := s.db.Create(supplier).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return supplier, nil
}

// ListSuppliers returns a page of live suppliers. search matches names,
// email and VAT number case-insensitively.
func (s *supplierService) ListSuppliers(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Supplier], error) {
	page.Defaults()

	base := s.db.Model(&models.Supplier{}).Scopes(models.NotDeleted)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where(
			"LOWER(company_name) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(vat_number) LIKE ?",
			like, like, like, like, like,
		)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var suppliers []models.Supplier
	if err := base.Scopes(pagination.OrderBy(page, supplierSortColumns, "created_at"), pagination.Paginate(page)).
		Find(&suppliers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(suppliers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSupplier returns a live supplier.
func (s *supplierService) GetSupplier(supplierID string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.Scopes(models.NotDeleted).First(&supplier, "id = ?", supplierID).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrSupplierNotFound)
	}
	return &supplier, nil
}

// UpdateSupplier replaces a supplier's fields.
func (s *supplierService) UpdateSupplier(supplierID string, in SupplierInput) (*models.Supplier, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	supplier, err := s.GetSupplier(supplierID)
	if err != nil {
		return nil, err
	}
	in.apply(supplier)
	err = s.db.Model(supplier).
		Select("type", "company_name", "first_name", "last_name", "email", "phone", "address", "website", "vat_number", "notes", "rating").
		Updates(supplier).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes a supplier.
func (s *supplierService) DeleteSupplier(supplierID string) error {
	res := s.db.Model(&models.Supplier{}).Scopes(models.NotDeleted).
		Where("id = ?", supplierID).Update("is_deleted", true)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSupplierNotFound
	}
	return nil
}

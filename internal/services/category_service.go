package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
)

// categoryService manages the expense category taxonomy. Purchases refer
// to categories by name, so renames are cascaded and deletes are guarded.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

func categoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (in CategoryInput) apply(c *models.ExpenseCategory) {
	c.Name = categoryKey(in.Name)
	c.Label = strings.TrimSpace(in.Label)
	c.Icon = strings.TrimSpace(in.Icon)
	c.Color = in.Color
	c.BgColor = in.BgColor
	c.SortOrder = in.SortOrder
}

// ListCategories returns all categories in display order.
func (s *categoryService) ListCategories() ([]models.ExpenseCategory, error) {
	var cats []models.ExpenseCategory
	if err := s.db.Order("sort_order ASC").Order("name ASC").Find(&cats).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cats, nil
}

// CreateCategory creates a category with a unique name.
func (s *categoryService) CreateCategory(in CategoryInput) (*models.ExpenseCategory, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	cat := &models.ExpenseCategory{}
	in.apply(cat)

	if err := s.ensureUnique(s.db, cat.Name, ""); err != nil {
		return nil, err
	}
	if err := s.db.Create(cat).Error; err != nil {
		return nil, writeErr(err, apperrors.ErrDuplicateCategory)
	}
	return cat, nil
}

func (s *categoryService) ensureUnique(db *gorm.DB, name, exceptID string) error {
	q := db.Model(&models.ExpenseCategory{}).Where("name = ?", name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategory
	}
	return nil
}

// UpdateCategory replaces a category. A rename is applied to every
// purchase that used the old name in the same transaction.
func (s *categoryService) UpdateCategory(categoryID string, in CategoryInput) (*models.ExpenseCategory, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}

	var cat models.ExpenseCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, "id = ?", categoryID).Error; err != nil {
			return lookupErr(err, apperrors.ErrCategoryNotFound)
		}
		oldName := cat.Name
		in.apply(&cat)
		if cat.Name != oldName {
			if err := s.ensureUnique(tx, cat.Name, cat.ID); err != nil {
				return err
			}
		}
		if err := tx.Model(&cat).Select("name", "label", "icon", "color", "bg_color", "sort_order").
			Updates(&cat).Error; err != nil {
			return err
		}
		if cat.Name != oldName {
			return tx.Model(&models.Purchase{}).Where("expense_category = ?", oldName).
				Update("expense_category", cat.Name).Error
		}
		return nil
	})
	if err != nil {
		return nil, writeErr(err, apperrors.ErrDuplicateCategory)
	}
	return &cat, nil
}

// DeleteCategory removes a category no live purchase uses.
func (s *categoryService) DeleteCategory(categoryID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cat models.ExpenseCategory
		if err := tx.First(&cat, "id = ?", categoryID).Error; err != nil {
			return lookupErr(err, apperrors.ErrCategoryNotFound)
		}
		var inUse int64
		if err := tx.Model(&models.Purchase{}).Scopes(models.NotDeleted).
			Where("expense_category = ?", cat.Name).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return apperrors.ErrCategoryInUse
		}
		return tx.Delete(&cat).Error
	})
	if err != nil {
		return writeErr(err, nil)
	}
	return nil
}

package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
)

// homeService handles homes and their galleries.
type homeService struct {
	db *gorm.DB
}

// NewHomeService creates a new HomeServicer.
func NewHomeService(db *gorm.DB) HomeServicer {
	return &homeService{db: db}
}

func (in HomeInput) apply(h *models.Home) {
	h.Name = strings.TrimSpace(in.Name)
	h.NameSecondary = strings.TrimSpace(in.NameSecondary)
	h.Address = strings.TrimSpace(in.Address)
	h.PurchaseDate = in.PurchaseDate
	h.CoverImageURL = in.CoverImageURL
}

// CreateHome creates a home.
func (s *homeService) CreateHome(in HomeInput) (*models.Home, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	home := &models.Home{}
	in.apply(home)
	if err := s.db.Create(home).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return home, nil
}

// ListHomes returns live homes ordered by name.
func (s *homeService) ListHomes() ([]models.Home, error) {
	var homes []models.Home
	if err := s.db.Scopes(models.NotDeleted).Order("name ASC").Find(&homes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return homes, nil
}

// GetHome returns a live home with its images.
func (s *homeService) GetHome(homeID string) (*models.Home, error) {
	var home models.Home
	err := s.db.Scopes(models.NotDeleted).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC").Order("created_at ASC") }).
		First(&home, "id = ?", homeID).Error
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHomeNotFound)
	}
	return &home, nil
}

// UpdateHome replaces a home's editable fields.
func (s *homeService) UpdateHome(homeID string, in HomeInput) (*models.Home, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	home, err := s.GetHome(homeID)
	if err != nil {
		return nil, err
	}
	in.apply(home)
	err = s.db.Model(home).Select("name", "name_secondary", "address", "purchase_date", "cover_image_url").
		Updates(home).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return home, nil
}

// DeleteHome soft-deletes a home. Its areas stay in place.
func (s *homeService) DeleteHome(homeID string) error {
	res := s.db.Model(&models.Home{}).Scopes(models.NotDeleted).
		Where("id = ?", homeID).Update("is_deleted", true)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrHomeNotFound
	}
	return nil
}

// ListImages returns the gallery of a live home.
func (s *homeService) ListImages(homeID string) ([]models.HomeImage, error) {
	if err := s.requireHome(homeID); err != nil {
		return nil, err
	}
	var images []models.HomeImage
	if err := s.db.Where("home_id = ?", homeID).Order("sort_order ASC").Order("created_at ASC").Find(&images).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return images, nil
}

// AddImage appends an image to a live home's gallery.
func (s *homeService) AddImage(homeID string, in HomeImageInput) (*models.HomeImage, error) {
	if err := validateInput(in).err(); err != nil {
		return nil, err
	}
	if err := s.requireHome(homeID); err != nil {
		return nil, err
	}
	img := &models.HomeImage{HomeID: homeID, URL: in.URL, Caption: strings.TrimSpace(in.Caption), SortOrder: in.SortOrder}
	if err := s.db.Create(img).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return img, nil
}

// DeleteImage removes one gallery image.
func (s *homeService) DeleteImage(homeID, imageID string) error {
	if err := s.requireHome(homeID); err != nil {
		return err
	}
	res := s.db.Where("id = ? AND home_id = ?", imageID, homeID).Delete(&models.HomeImage{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrHomeImageNotFound
	}
	return nil
}

func (s *homeService) requireHome(homeID string) error {
	var count int64
	if err := s.db.Model(&models.Home{}).Scopes(models.NotDeleted).Where("id = ?", homeID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrHomeNotFound
	}
	return nil
}

package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
)

// areaService handles areas. Areas are hard-deleted once they have no rooms.
type areaService struct {
	db *gorm.DB
}

// NewAreaService creates a new AreaServicer.
func NewAreaService(db *gorm.DB) AreaServicer {
	return &areaService{db: db}
}

func (s *areaService) validate(in *AreaInput) error {
	in.HomeID = normalizeID(in.HomeID)
	fe := validateInput(in)
	if in.Budget.Valid && !in.Budget.Decimal.IsPositive() {
		fe.add("budget", "must be greater than 0")
	}
	if in.HomeID != nil && len(fe) == 0 {
		var count int64
		if err := s.db.Model(&models.Home{}).Scopes(models.NotDeleted).Where("id = ?", *in.HomeID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			fe.add("home_id", "does not exist")
		}
	}
	return fe.err()
}

// CreateArea creates an area.
func (s *areaService) CreateArea(in AreaInput) (*models.Area, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	area := &models.Area{HomeID: in.HomeID, Name: strings.TrimSpace(in.Name), Budget: roundBudget(in.Budget)}
	if err := s.db.Create(area).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return area, nil
}

// ListAreas returns areas of live homes ordered by name, optionally for one home.
func (s *areaService) ListAreas(homeID *string) ([]models.Area, error) {
	q := s.db.Scopes(models.InLiveHome).Order("name ASC")
	if homeID != nil {
		q = q.Where("home_id = ?", *homeID)
	}
	var areas []models.Area
	if err := q.Find(&areas).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return areas, nil
}

// GetArea returns an area with its rooms. Areas of a deleted home are not found.
func (s *areaService) GetArea(areaID string) (*models.Area, error) {
	var area models.Area
	err := s.db.Scopes(models.InLiveHome).Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&area, "id = ?", areaID).Error
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrAreaNotFound)
	}
	return &area, nil
}

// UpdateArea replaces an area's fields.
func (s *areaService) UpdateArea(areaID string, in AreaInput) (*models.Area, error) {
	area, err := s.GetArea(areaID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	area.HomeID = in.HomeID
	area.Name = strings.TrimSpace(in.Name)
	area.Budget = roundBudget(in.Budget)
	if err := s.db.Model(area).Select("home_id", "name", "budget").Updates(area).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return area, nil
}

// CanDeleteArea fails with AREA_HAS_ROOMS while any room references the area.
func (s *areaService) CanDeleteArea(areaID string) error {
	return canDeleteArea(s.db, areaID)
}

func canDeleteArea(db *gorm.DB, areaID string) error {
	var area models.Area
	if err := db.Select("id").First(&area, "id = ?", areaID).Error; err != nil {
		return lookupErr(err, apperrors.ErrAreaNotFound)
	}
	var rooms int64
	if err := db.Model(&models.Room{}).Where("area_id = ?", areaID).Count(&rooms).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if rooms > 0 {
		return apperrors.ErrAreaHasRooms
	}
	return nil
}

// DeleteArea removes an area with no rooms and clears purchase and line
// item references to it in the same transaction.
func (s *areaService) DeleteArea(areaID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := canDeleteArea(tx, areaID); err != nil {
			return err
		}
		if err := tx.Model(&models.Purchase{}).Where("area_id = ?", areaID).Update("area_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PurchaseLineItem{}).Where("area_id = ?", areaID).Update("area_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Area{}, "id = ?", areaID).Error
	})
	if err != nil {
		return writeErr(err, nil)
	}
	return nil
}

package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
)

// roomService handles rooms.
type roomService struct {
	db *gorm.DB
}

// NewRoomService creates a new RoomServicer.
func NewRoomService(db *gorm.DB) RoomServicer {
	return &roomService{db: db}
}

func roundBudget(b decimal.NullDecimal) decimal.NullDecimal {
	if !b.Valid {
		return b
	}
	return decimal.NewNullDecimal(b.Decimal.Round(2))
}

func (s *roomService) validate(in RoomInput) error {
	fe := validateInput(in)
	if in.Budget.Valid && in.Budget.Decimal.IsNegative() {
		fe.add("budget", "must not be negative")
	}
	if len(fe) == 0 {
		var count int64
		if err := s.db.Model(&models.Area{}).Scopes(models.InLiveHome).Where("id = ?", in.AreaID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			fe.add("area_id", "does not exist")
		}
	}
	return fe.err()
}

// CreateRoom creates a room in an existing area.
func (s *roomService) CreateRoom(in RoomInput) (*models.Room, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	room := &models.Room{AreaID: in.AreaID, Name: strings.TrimSpace(in.Name), Budget: roundBudget(in.Budget)}
	if err := s.db.Create(room).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return room, nil
}

// ListRooms returns rooms of live areas ordered by name, optionally for one area.
func (s *roomService) ListRooms(areaID *string) ([]models.Room, error) {
	q := s.db.Scopes(models.InLiveArea).Order("name ASC")
	if areaID != nil {
		q = q.Where("area_id = ?", *areaID)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rooms, nil
}

// GetRoom returns a room by id.
func (s *roomService) GetRoom(roomID string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Scopes(models.InLiveArea).First(&room, "id = ?", roomID).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrRoomNotFound)
	}
	return &room, nil
}

// UpdateRoom replaces a room's fields, including moving it to another area.
func (s *roomService) UpdateRoom(roomID string, in RoomInput) (*models.Room, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	room.AreaID = in.AreaID
	room.Name = strings.TrimSpace(in.Name)
	room.Budget = roundBudget(in.Budget)
	if err := s.db.Model(room).Select("area_id", "name", "budget").Updates(room).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return room, nil
}

// DeleteRoom removes a room and clears references to it in one transaction.
func (s *roomService) DeleteRoom(roomID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Room{}, "id = ?", roomID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrRoomNotFound
		}
		for _, model := range []interface{}{&models.Purchase{}, &models.PurchaseLineItem{}, &models.Attachment{}} {
			if err := tx.Model(model).Where("room_id = ?", roomID).Update("room_id", nil).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return writeErr(err, nil)
	}
	return nil
}

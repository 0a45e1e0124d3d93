package models

import "github.com/shopspring/decimal"

// Area is a subdivision of a Home, such as a floor or a wing.
// HomeID is nullable for rows imported before homes existed.
type Area struct {
	Base
	HomeID *string             `gorm:"type:uuid;index" json:"home_id"`
	Name   string              `gorm:"not null" json:"name"`
	Budget decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"budget"`

	Rooms []Room `gorm:"foreignKey:AreaID" json:"rooms,omitempty"`
}

// Room is a subdivision of an Area.
type Room struct {
	Base
	AreaID string              `gorm:"type:uuid;not null;index" json:"area_id"`
	Name   string              `gorm:"not null" json:"name"`
	Budget decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"budget"`
}

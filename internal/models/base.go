package models

import (
	"time"

	"homeledger/internal/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// NotDeleted restricts a query on a soft-deletable table to live rows.
// The column is qualified with the statement's table so the scope stays
// unambiguous when the query joins other soft-deletable tables.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: "is_deleted"},
		Value:  false,
	})
}

// InLiveHome restricts a query on a table with a nullable home_id to rows
// that have no home or whose home is not soft-deleted.
func InLiveHome(db *gorm.DB) *gorm.DB {
	live := db.Session(&gorm.Session{NewDB: true}).Model(&Home{}).Select("id").Scopes(NotDeleted)
	col := clause.Column{Table: clause.CurrentTable, Name: "home_id"}
	return db.Where("(? IS NULL OR ? IN (?))", col, col, live)
}

// InLiveArea restricts a room query to rooms whose area passes InLiveHome.
func InLiveArea(db *gorm.DB) *gorm.DB {
	live := db.Session(&gorm.Session{NewDB: true}).Model(&Area{}).Select("id").Scopes(InLiveHome)
	return db.Where("? IN (?)", clause.Column{Table: clause.CurrentTable, Name: "area_id"}, live)
}

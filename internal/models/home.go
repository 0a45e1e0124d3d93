package models

import "time"

// Home is the root of the property hierarchy.
type Home struct {
	Base
	Name          string     `gorm:"not null" json:"name"`
	NameSecondary string     `json:"name_secondary"`
	Address       string     `json:"address"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	CoverImageURL string     `json:"cover_image_url"`
	IsDeleted     bool       `gorm:"not null;index" json:"-"`

	Images []HomeImage `gorm:"foreignKey:HomeID" json:"images,omitempty"`
}

// LocalizedName returns the secondary-locale name when the caller asked for a
// non-default language and one is set.
func (h *Home) LocalizedName(secondary bool) string {
	if secondary && h.NameSecondary != "" {
		return h.NameSecondary
	}
	return h.Name
}

// HomeImage is a gallery entry for a Home. Bytes live in external storage.
type HomeImage struct {
	Base
	HomeID    string `gorm:"type:uuid;not null;index" json:"home_id"`
	URL       string `gorm:"not null" json:"url"`
	Caption   string `json:"caption"`
	SortOrder int    `gorm:"not null" json:"sort_order"`
}

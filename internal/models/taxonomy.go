package models

// ExpenseCategory is an admin-managed label for purchases. Purchases refer
// to it by Name without a foreign key.
type ExpenseCategory struct {
	Base
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Label     string `gorm:"not null" json:"label"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	BgColor   string `json:"bg_color"`
	SortOrder int    `gorm:"not null" json:"sort_order"`
}

// Tag is a freeform, uniquely named label.
type Tag struct {
	Base
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Color string `json:"color,omitempty"`
}

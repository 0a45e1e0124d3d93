package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseType classifies what was bought.
type PurchaseType string

const (
	PurchaseTypeService   PurchaseType = "service"
	PurchaseTypeMaterials PurchaseType = "materials"
	PurchaseTypeProducts  PurchaseType = "products"
	PurchaseTypeIndirect  PurchaseType = "indirect"
)

// PaymentStatus tracks how much of a purchase has been settled.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Purchase is a financial transaction with a Supplier. Home, Area and Room
// are coarse attribution; line items may override Area and Room.
// ExpenseCategory is a soft reference to ExpenseCategory.Name.
type Purchase struct {
	Base
	SupplierID      string          `gorm:"type:uuid;not null;index" json:"supplier_id"`
	HomeID          *string         `gorm:"type:uuid;index" json:"home_id"`
	AreaID          *string         `gorm:"type:uuid;index" json:"area_id"`
	RoomID          *string         `gorm:"type:uuid;index" json:"room_id"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Currency        string          `gorm:"not null;size:3" json:"currency"`
	PurchaseType    PurchaseType    `gorm:"not null" json:"purchase_type"`
	PaymentStatus   PaymentStatus   `gorm:"not null" json:"payment_status"`
	ExpenseCategory *string         `gorm:"index" json:"expense_category"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
	Description     string          `json:"description,omitempty"`
	IsDeleted       bool            `gorm:"not null;index" json:"-"`

	Supplier  *Supplier          `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	LineItems []PurchaseLineItem `gorm:"foreignKey:PurchaseID" json:"line_items"`
	Tags      []Tag              `gorm:"many2many:purchase_tags" json:"tags"`
}

// PurchaseLineItem is one item of a Purchase. Its Area and Room take
// precedence over the parent's for area and room breakdowns.
type PurchaseLineItem struct {
	Base
	PurchaseID     string          `gorm:"type:uuid;not null;index" json:"purchase_id"`
	AreaID         *string         `gorm:"type:uuid;index" json:"area_id"`
	RoomID         *string         `gorm:"type:uuid;index" json:"room_id"`
	Name           string          `gorm:"not null" json:"name"`
	Quantity       decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	WarrantyMonths *int            `json:"warranty_months"`
	Notes          string          `json:"notes,omitempty"`
}

// LineTotal returns quantity * unit price rounded to cents.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

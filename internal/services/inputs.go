package services

import (
	"time"

	"github.com/shopspring/decimal"

	"homeledger/internal/models"
)

// InviteInput is the payload for inviting a user.
type InviteInput struct {
	Email string      `json:"email" validate:"required,email,max=254"`
	Name  string      `json:"name" validate:"max=200"`
	Role  models.Role `json:"role" validate:"required,app_role"`
}

// UpdateUserInput changes a user's role, name or active flag. Nil fields are left alone.
type UpdateUserInput struct {
	Name     *string      `json:"name" validate:"omitempty,max=200"`
	Role     *models.Role `json:"role" validate:"omitempty,app_role"`
	IsActive *bool        `json:"is_active"`
}

// HomeInput is the payload for creating or replacing a home.
type HomeInput struct {
	Name          string     `json:"name" validate:"required,max=200"`
	NameSecondary string     `json:"name_secondary" validate:"max=200"`
	Address       string     `json:"address" validate:"max=500"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	CoverImageURL string     `json:"cover_image_url" validate:"omitempty,url,max=2000"`
}

// HomeImageInput is the payload for adding a gallery image.
type HomeImageInput struct {
	URL       string `json:"url" validate:"required,url,max=2000"`
	Caption   string `json:"caption" validate:"max=500"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// AreaInput is the payload for creating or replacing an area.
// Budget must be positive when present.
type AreaInput struct {
	HomeID *string             `json:"home_id" validate:"omitempty,uuid"`
	Name   string              `json:"name" validate:"required,max=200"`
	Budget decimal.NullDecimal `json:"budget"`
}

// RoomInput is the payload for creating or replacing a room.
// Budget must not be negative when present.
type RoomInput struct {
	AreaID string              `json:"area_id" validate:"required,uuid"`
	Name   string              `json:"name" validate:"required,max=200"`
	Budget decimal.NullDecimal `json:"budget"`
}

// SupplierInput is the payload for creating or replacing a supplier.
type SupplierInput struct {
	Type        models.SupplierType `json:"type" validate:"required,supplier_type"`
	CompanyName string              `json:"company_name" validate:"required_if=Type company,max=200"`
	FirstName   string              `json:"first_name" validate:"required_if=Type individual,max=100"`
	LastName    string              `json:"last_name" validate:"required_if=Type individual,max=100"`
	Email       string              `json:"email" validate:"omitempty,email,max=254"`
	Phone       string              `json:"phone" validate:"max=50"`
	Address     string              `json:"address" validate:"max=500"`
	Website     string              `json:"website" validate:"omitempty,url,max=2000"`
	VATNumber   string              `json:"vat_number" validate:"max=50"`
	Notes       string              `json:"notes" validate:"max=2000"`
	Rating      *int                `json:"rating" validate:"omitempty,min=1,max=5"`
}

// LineItemInput is one line of a PurchaseInput. Any total sent by the
// client is ignored; it is recomputed from quantity and unit price.
type LineItemInput struct {
	Name           string          `json:"name" validate:"required,max=300"`
	AreaID         *string         `json:"area_id" validate:"omitempty,uuid"`
	RoomID         *string         `json:"room_id" validate:"omitempty,uuid"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	WarrantyMonths *int            `json:"warranty_months" validate:"omitempty,gte=0,lte=600"`
	Notes          string          `json:"notes" validate:"max=2000"`
}

// PurchaseInput is the payload for creating or replacing a purchase.
type PurchaseInput struct {
	SupplierID      string               `json:"supplier_id" validate:"required,uuid"`
	HomeID          *string              `json:"home_id" validate:"omitempty,uuid"`
	AreaID          *string              `json:"area_id" validate:"omitempty,uuid"`
	RoomID          *string              `json:"room_id" validate:"omitempty,uuid"`
	Date            time.Time            `json:"date" validate:"required"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	Currency        string               `json:"currency" validate:"omitempty,iso4217"`
	PurchaseType    models.PurchaseType  `json:"purchase_type" validate:"required,purchase_type"`
	PaymentStatus   models.PaymentStatus `json:"payment_status" validate:"required,payment_status"`
	ExpenseCategory *string              `json:"expense_category" validate:"omitempty,max=100"`
	InvoiceNumber   string               `json:"invoice_number" validate:"max=100"`
	Description     string               `json:"description" validate:"max=2000"`
	TagIDs          []string             `json:"tag_ids" validate:"dive,uuid"`
	LineItems       []LineItemInput      `json:"line_items" validate:"dive"`
}

// AttachmentInput is the payload for registering an uploaded file.
type AttachmentInput struct {
	PurchaseID        *string    `json:"purchase_id" validate:"omitempty,uuid"`
	LineItemID        *string    `json:"line_item_id" validate:"omitempty,uuid"`
	RoomID            *string    `json:"room_id" validate:"omitempty,uuid"`
	FileName          string     `json:"file_name" validate:"required,max=300"`
	URL               string     `json:"url" validate:"required,url,max=2000"`
	ContentType       string     `json:"content_type" validate:"max=100"`
	SizeBytes         int64      `json:"size_bytes" validate:"gte=0"`
	HouseDocumentType *string    `json:"house_document_type" validate:"omitempty,document_type"`
	ExpiresAt         *time.Time `json:"expires_at"`
	Notes             string     `json:"notes" validate:"max=2000"`
}

// CategoryInput is the payload for creating or replacing an expense category.
type CategoryInput struct {
	Name      string `json:"name" validate:"required,max=50"`
	Label     string `json:"label" validate:"required,max=100"`
	Icon      string `json:"icon" validate:"max=50"`
	Color     string `json:"color" validate:"omitempty,hex_color"`
	BgColor   string `json:"bg_color" validate:"omitempty,hex_color"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// TagInput is the payload for creating or renaming a tag.
type TagInput struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

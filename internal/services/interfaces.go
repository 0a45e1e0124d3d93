package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"homeledger/internal/auth"
	"homeledger/internal/extraction"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/spending"
)

// AccessServicer resolves callers to AppUsers and manages who may use the app.
type AccessServicer interface {
	ResolveCaller(identity *auth.Identity) (*models.AppUser, error)
	Bootstrap(identity *auth.Identity) (*models.AppUser, error)
	InviteUser(in InviteInput) (*models.AppUser, error)
	ListUsers() ([]models.AppUser, error)
	UpdateUser(userID string, in UpdateUserInput) (*models.AppUser, error)
}

// HomeServicer defines the contract for homes and their image galleries.
type HomeServicer interface {
	CreateHome(in HomeInput) (*models.Home, error)
	ListHomes() ([]models.Home, error)
	GetHome(homeID string) (*models.Home, error)
	UpdateHome(homeID string, in HomeInput) (*models.Home, error)
	DeleteHome(homeID string) error
	ListImages(homeID string) ([]models.HomeImage, error)
	AddImage(homeID string, in HomeImageInput) (*models.HomeImage, error)
	DeleteImage(homeID, imageID string) error
}

// AreaServicer defines the contract for areas.
type AreaServicer interface {
	CreateArea(in AreaInput) (*models.Area, error)
	ListAreas(homeID *string) ([]models.Area, error)
	GetArea(areaID string) (*models.Area, error)
	UpdateArea(areaID string, in AreaInput) (*models.Area, error)
	CanDeleteArea(areaID string) error
	DeleteArea(areaID string) error
}

// RoomServicer defines the contract for rooms.
type RoomServicer interface {
	CreateRoom(in RoomInput) (*models.Room, error)
	ListRooms(areaID *string) ([]models.Room, error)
	GetRoom(roomID string) (*models.Room, error)
	UpdateRoom(roomID string, in RoomInput) (*models.Room, error)
	DeleteRoom(roomID string) error
}

// SupplierServicer defines the contract for suppliers.
type SupplierServicer interface {
	CreateSupplier(in SupplierInput) (*models.Supplier, error)
	ListSuppliers(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Supplier], error)
	GetSupplier(supplierID string) (*models.Supplier, error)
	UpdateSupplier(supplierID string, in SupplierInput) (*models.Supplier, error)
	DeleteSupplier(supplierID string) error
}

// PurchaseFilter holds optional filter parameters for listing purchases.
type PurchaseFilter struct {
	HomeID        *string
	AreaID        *string
	RoomID        *string
	SupplierID    *string
	TagID         *string
	PaymentStatus *models.PaymentStatus
	Category      *string
	FromDate      *time.Time
	ToDate        *time.Time
}

// PurchaseServicer defines the contract for purchases and their line items.
type PurchaseServicer interface {
	CreatePurchase(in PurchaseInput) (*models.Purchase, error)
	ListPurchases(page pagination.PageRequest, filter PurchaseFilter) (*pagination.PageResponse[models.Purchase], error)
	GetPurchase(purchaseID string) (*models.Purchase, error)
	UpdatePurchase(purchaseID string, in PurchaseInput) (*models.Purchase, error)
	DeletePurchase(purchaseID string) error
}

// AttachmentServicer defines the contract for attachment metadata.
type AttachmentServicer interface {
	CreateAttachment(in AttachmentInput) (*models.Attachment, error)
	ListPurchaseAttachments(purchaseID string) ([]models.Attachment, error)
	DeleteAttachment(attachmentID string) error
}

// CategoryServicer defines the contract for the expense category taxonomy.
type CategoryServicer interface {
	ListCategories() ([]models.ExpenseCategory, error)
	CreateCategory(in CategoryInput) (*models.ExpenseCategory, error)
	UpdateCategory(categoryID string, in CategoryInput) (*models.ExpenseCategory, error)
	DeleteCategory(categoryID string) error
}

// TagServicer defines the contract for tags.
type TagServicer interface {
	ListTags() ([]models.Tag, error)
	GetTag(tagID string) (*models.Tag, error)
	CreateTag(in TagInput) (*models.Tag, error)
	UpdateTag(tagID string, in TagInput) (*models.Tag, error)
	DeleteTag(tagID string) error
}

// SpendSummary is the multi-granularity spend rollup.
type SpendSummary struct {
	HomeID          *string                                  `json:"home_id"`
	Total           decimal.Decimal                          `json:"total"`
	PurchaseCount   int                                      `json:"purchase_count"`
	UnassignedHomes int                                      `json:"unassigned_home_purchases"`
	ByHome          map[string]decimal.Decimal               `json:"by_home"`
	ByArea          map[string]decimal.Decimal               `json:"by_area"`
	ByRoom          map[string]decimal.Decimal               `json:"by_room"`
	ByCategory      map[string]spending.CountedSpend         `json:"by_category"`
	BySupplier      map[string]spending.CountedSpend         `json:"by_supplier"`
	ByPaymentStatus map[models.PaymentStatus]decimal.Decimal `json:"by_payment_status"`
}

// RoomReport compares a room's budget with its spend.
type RoomReport struct {
	RoomID    string              `json:"room_id"`
	Name      string              `json:"name"`
	Budget    decimal.NullDecimal `json:"budget"`
	Spent     decimal.Decimal     `json:"spent"`
	Remaining decimal.NullDecimal `json:"remaining"`
}

// AreaReport compares an area's budget with its spend, room by room.
type AreaReport struct {
	AreaID    string              `json:"area_id"`
	HomeID    *string             `json:"home_id"`
	Name      string              `json:"name"`
	Budget    decimal.NullDecimal `json:"budget"`
	Spent     decimal.Decimal     `json:"spent"`
	Remaining decimal.NullDecimal `json:"remaining"`
	Rooms     []RoomReport        `json:"rooms"`
}

// ReportServicer defines the contract for read-only spend reports.
type ReportServicer interface {
	Summary(ctx context.Context, homeID *string) (*SpendSummary, error)
	AreaBreakdown(ctx context.Context, homeID *string) ([]AreaReport, error)
	ExpiringDocuments(ctx context.Context, windowDays int) ([]spending.ExpiringDocument, error)
	ExpiringWarranties(ctx context.Context, windowDays int) ([]spending.ExpiringWarranty, error)
}

// BackfillResult counts per-purchase outcomes of a home id backfill.
type BackfillResult struct {
	Updated      int      `json:"updated"`
	Skipped      int      `json:"skipped"`
	Ambiguous    int      `json:"ambiguous"`
	Failed       int      `json:"failed"`
	AmbiguousIDs []string `json:"ambiguous_ids"`
	FailedIDs    []string `json:"failed_ids"`
}

// BackfillServicer fills in missing purchase home ids.
type BackfillServicer interface {
	BackfillHomeIDs(ctx context.Context, batchSize int) (*BackfillResult, error)
}

// InvoiceExtractor reads an invoice image. extraction.Client implements it.
type InvoiceExtractor interface {
	Extract(ctx context.Context, image []byte, contentType string) (*extraction.Suggestion, error)
}

// ExtractionServicer turns an invoice image into a purchase suggestion.
type ExtractionServicer interface {
	ExtractInvoice(ctx context.Context, image []byte, contentType string) (*extraction.Suggestion, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actorID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

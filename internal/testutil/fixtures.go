package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"homeledger/internal/models"
	"homeledger/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Dec parses a decimal literal and panics on bad input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func create(t *testing.T, db *gorm.DB, v interface{}, what string) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("failed to create test %s: %v", what, err)
	}
}

// CreateTestUser creates an active, linked user with the given role.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role) *models.AppUser {
	t.Helper()
	n := nextID()
	user := &models.AppUser{
		AuthSubjectID: fmt.Sprintf("idp|%d", n),
		Email:         fmt.Sprintf("user%d@test.com", n),
		Name:          fmt.Sprintf("User %d", n),
		Role:          role,
		IsActive:      true,
	}
	create(t, db, user, "user")
	return user
}

// CreatePendingUser creates an invited user that has never signed in.
func CreatePendingUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.AppUser {
	t.Helper()
	user := &models.AppUser{
		AuthSubjectID: uuid.NewPendingSubject(),
		Email:         email,
		Role:          role,
		IsActive:      true,
	}
	create(t, db, user, "pending user")
	return user
}

// CreateTestHome creates a live home.
func CreateTestHome(t *testing.T, db *gorm.DB) *models.Home {
	t.Helper()
	home := &models.Home{Name: fmt.Sprintf("Home %d", nextID())}
	create(t, db, home, "home")
	return home
}

// CreateTestArea creates an area, optionally in a home.
func CreateTestArea(t *testing.T, db *gorm.DB, homeID *string) *models.Area {
	t.Helper()
	area := &models.Area{HomeID: homeID, Name: fmt.Sprintf("Area %d", nextID())}
	create(t, db, area, "area")
	return area
}

// CreateTestRoom creates a room in the given area.
func CreateTestRoom(t *testing.T, db *gorm.DB, areaID string) *models.Room {
	t.Helper()
	room := &models.Room{AreaID: areaID, Name: fmt.Sprintf("Room %d", nextID())}
	create(t, db, room, "room")
	return room
}

// CreateTestSupplier creates a company supplier.
func CreateTestSupplier(t *testing.T, db *gorm.DB) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{
		Type:        models.SupplierTypeCompany,
		CompanyName: fmt.Sprintf("Supplier %d", nextID()),
	}
	create(t, db, supplier, "supplier")
	return supplier
}

// CreateTestPurchase creates a paid purchase. Mutators run before insert.
func CreateTestPurchase(t *testing.T, db *gorm.DB, supplierID, total string, mutate ...func(*models.Purchase)) *models.Purchase {
	t.Helper()
	p := &models.Purchase{
		SupplierID:    supplierID,
		Date:          time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount:   Dec(total),
		Currency:      "EUR",
		PurchaseType:  models.PurchaseTypeMaterials,
		PaymentStatus: models.PaymentStatusPaid,
	}
	for _, m := range mutate {
		m(p)
	}
	create(t, db, p, "purchase")
	return p
}

// CreateTestLineItem creates a line item with quantity 1.
func CreateTestLineItem(t *testing.T, db *gorm.DB, purchaseID string, areaID, roomID *string, price string) *models.PurchaseLineItem {
	t.Helper()
	it := &models.PurchaseLineItem{
		PurchaseID: purchaseID,
		AreaID:     areaID,
		RoomID:     roomID,
		Name:       fmt.Sprintf("Item %d", nextID()),
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  Dec(price),
		TotalPrice: Dec(price),
	}
	create(t, db, it, "line item")
	return it
}

// CreateTestCategory creates an expense category keyed by name.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.ExpenseCategory {
	t.Helper()
	cat := &models.ExpenseCategory{Name: name, Label: name, SortOrder: int(nextID())}
	create(t, db, cat, "category")
	return cat
}

// CreateTestTag creates a uniquely named tag.
func CreateTestTag(t *testing.T, db *gorm.DB) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: fmt.Sprintf("tag-%d", nextID())}
	create(t, db, tag, "tag")
	return tag
}

// CreateTestDocument creates a typed attachment expiring at expiresAt.
func CreateTestDocument(t *testing.T, db *gorm.DB, docType string, expiresAt *time.Time) *models.Attachment {
	t.Helper()
	n := nextID()
	att := &models.Attachment{
		FileName:          fmt.Sprintf("doc-%d.pdf", n),
		URL:               fmt.Sprintf("https://files.test/doc-%d.pdf", n),
		HouseDocumentType: &docType,
		ExpiresAt:         expiresAt,
	}
	create(t, db, att, "attachment")
	return att
}

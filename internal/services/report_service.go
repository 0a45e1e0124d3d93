package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/spending"
)

// reportService loads rows and hands them to the spending package.
type reportService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db, now: time.Now}
}

// snapshot is everything a spend report reads. Deleted homes have already
// been dropped together with their areas, rooms and purchases.
type snapshot struct {
	homes     []models.Home
	areas     []models.Area
	rooms     []models.Room
	purchases []models.Purchase
	items     []models.PurchaseLineItem
	hierarchy spending.Hierarchy
}

// liveItems selects line items whose purchase is not deleted.
func liveItems(db *gorm.DB) *gorm.DB {
	return db.Where("purchase_line_items.purchase_id IN (?)", livePurchaseIDs(db))
}

func (s *reportService) load(ctx context.Context) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)
	db := s.db.WithContext(ctx)

	g.Go(func() error {
		return db.Scopes(models.NotDeleted).Order("name ASC").Find(&snap.homes).Error
	})
	g.Go(func() error {
		return db.Order("name ASC").Find(&snap.areas).Error
	})
	g.Go(func() error {
		return db.Order("name ASC").Find(&snap.rooms).Error
	})
	g.Go(func() error {
		return db.Scopes(models.NotDeleted).Order("date ASC").Order("id ASC").Find(&snap.purchases).Error
	})
	g.Go(func() error {
		return liveItems(db).Order("purchase_line_items.id ASC").Find(&snap.items).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	liveHome := make(map[string]bool, len(snap.homes))
	for _, h := range snap.homes {
		liveHome[h.ID] = true
	}
	areas := snap.areas[:0]
	keptArea := make(map[string]bool, len(snap.areas))
	for _, a := range snap.areas {
		if a.HomeID == nil || liveHome[*a.HomeID] {
			areas = append(areas, a)
			keptArea[a.ID] = true
		}
	}
	snap.areas = areas
	rooms := snap.rooms[:0]
	for _, r := range snap.rooms {
		if keptArea[r.AreaID] {
			rooms = append(rooms, r)
		}
	}
	snap.rooms = rooms

	purchases := snap.purchases[:0]
	for _, p := range snap.purchases {
		if p.HomeID == nil || liveHome[*p.HomeID] {
			purchases = append(purchases, p)
		}
	}
	snap.purchases = purchases
	snap.items = spending.ItemsOf(snap.purchases, snap.items)
	snap.hierarchy = spending.NewHierarchy(snap.areas, snap.rooms)
	return snap, nil
}

// restrict drops keys outside ids so a report only names areas and rooms
// it lists.
func restrict(spent map[string]decimal.Decimal, ids []string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		out[id] = spent[id]
	}
	return out
}

// scope narrows a snapshot to one home: its purchases (direct or inferred),
// their items, and the home's areas and rooms.
func (snap *snapshot) scope(homeID string) error {
	found := false
	for _, h := range snap.homes {
		if h.ID == homeID {
			snap.homes = []models.Home{h}
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrHomeNotFound
	}

	snap.purchases = spending.FilterByHome(homeID, snap.purchases, snap.items, snap.hierarchy)
	snap.items = spending.ItemsOf(snap.purchases, snap.items)

	var areas []models.Area
	inHome := map[string]bool{}
	for _, a := range snap.areas {
		if a.HomeID != nil && *a.HomeID == homeID {
			areas = append(areas, a)
			inHome[a.ID] = true
		}
	}
	var rooms []models.Room
	for _, r := range snap.rooms {
		if inHome[r.AreaID] {
			rooms = append(rooms, r)
		}
	}
	snap.areas, snap.rooms = areas, rooms
	return nil
}

func areaIDs(areas []models.Area) []string {
	ids := make([]string, len(areas))
	for i, a := range areas {
		ids[i] = a.ID
	}
	return ids
}

func roomIDs(rooms []models.Room) []string {
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

// Summary rolls up live spend by every dimension, optionally for one home.
func (s *reportService) Summary(ctx context.Context, homeID *string) (*SpendSummary, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if homeID != nil {
		if err := snap.scope(*homeID); err != nil {
			return nil, err
		}
	}

	homeIDs := make([]string, len(snap.homes))
	for i, h := range snap.homes {
		homeIDs[i] = h.ID
	}
	aIDs, rIDs := areaIDs(snap.areas), roomIDs(snap.rooms)
	unassigned := 0
	for _, p := range snap.purchases {
		if p.HomeID == nil {
			unassigned++
		}
	}

	return &SpendSummary{
		HomeID:          homeID,
		Total:           spending.Total(snap.purchases),
		PurchaseCount:   len(snap.purchases),
		UnassignedHomes: unassigned,
		ByHome:          spending.SpendByHome(homeIDs, snap.purchases),
		ByArea:          restrict(spending.SpendByArea(aIDs, snap.items, snap.purchases, snap.hierarchy), aIDs),
		ByRoom:          restrict(spending.SpendByRoom(rIDs, snap.items, snap.purchases), rIDs),
		ByCategory:      spending.SpendByCategory(snap.items, snap.purchases),
		BySupplier:      spending.SpendBySupplier(snap.purchases),
		ByPaymentStatus: spending.SpendByPaymentStatus(snap.purchases),
	}, nil
}

// AreaBreakdown compares budget with spend for each area and its rooms.
func (s *reportService) AreaBreakdown(ctx context.Context, homeID *string) ([]AreaReport, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if homeID != nil {
		if err := snap.scope(*homeID); err != nil {
			return nil, err
		}
	}

	byArea := spending.SpendByArea(areaIDs(snap.areas), snap.items, snap.purchases, snap.hierarchy)
	byRoom := spending.SpendByRoom(roomIDs(snap.rooms), snap.items, snap.purchases)

	roomsOf := make(map[string][]models.Room)
	for _, r := range snap.rooms {
		roomsOf[r.AreaID] = append(roomsOf[r.AreaID], r)
	}

	reports := make([]AreaReport, 0, len(snap.areas))
	for _, a := range snap.areas {
		ar := AreaReport{
			AreaID:    a.ID,
			HomeID:    a.HomeID,
			Name:      a.Name,
			Budget:    a.Budget,
			Spent:     byArea[a.ID],
			Remaining: remaining(a.Budget, byArea[a.ID]),
			Rooms:     []RoomReport{},
		}
		for _, r := range roomsOf[a.ID] {
			ar.Rooms = append(ar.Rooms, RoomReport{
				RoomID:    r.ID,
				Name:      r.Name,
				Budget:    r.Budget,
				Spent:     byRoom[r.ID],
				Remaining: remaining(r.Budget, byRoom[r.ID]),
			})
		}
		reports = append(reports, ar)
	}
	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })
	return reports, nil
}

func remaining(budget decimal.NullDecimal, spent decimal.Decimal) decimal.NullDecimal {
	if !budget.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(budget.Decimal.Sub(spent))
}

func checkWindow(days int) error {
	if days < 0 || days > 3650 {
		return apperrors.NewValidationError([]apperrors.FieldError{{Field: "days", Message: "must be between 0 and 3650"}})
	}
	return nil
}

// ExpiringDocuments lists house documents expiring within windowDays.
// Documents attached to deleted purchases are left out.
func (s *reportService) ExpiringDocuments(ctx context.Context, windowDays int) ([]spending.ExpiringDocument, error) {
	if err := checkWindow(windowDays); err != nil {
		return nil, err
	}
	var atts []models.Attachment
	db := s.db.WithContext(ctx)
	err := db.Where("house_document_type IS NOT NULL AND expires_at IS NOT NULL").
		Where("(purchase_id IS NULL OR purchase_id IN (?))", livePurchaseIDs(db)).
		Find(&atts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spending.ExpiringDocuments(atts, windowDays, s.now()), nil
}

// ExpiringWarranties lists line item warranties of live purchases ending
// within windowDays.
func (s *reportService) ExpiringWarranties(ctx context.Context, windowDays int) ([]spending.ExpiringWarranty, error) {
	if err := checkWindow(windowDays); err != nil {
		return nil, err
	}
	var (
		items     []models.PurchaseLineItem
		purchases []models.Purchase
	)
	g, gctx := errgroup.WithContext(ctx)
	db := s.db.WithContext(gctx)
	g.Go(func() error {
		return liveItems(db).Where("purchase_line_items.warranty_months IS NOT NULL").Find(&items).Error
	})
	g.Go(func() error {
		return db.Scopes(models.NotDeleted).Find(&purchases).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spending.ExpiringWarranties(items, purchases, windowDays, s.now()), nil
}

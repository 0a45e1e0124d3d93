package services

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/metrics"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/spending"
	"homeledger/internal/uuid"
)

const defaultCurrency = "EUR"

var purchaseSortColumns = map[string]string{
	"date":         "date",
	"total_amount": "total_amount",
	"created_at":   "created_at",
}

var purchaseColumns = []string{
	"supplier_id", "home_id", "area_id", "room_id", "date", "total_amount", "currency",
	"purchase_type", "payment_status", "expense_category", "invoice_number", "description",
}

// purchaseService writes purchases together with their line items and tags.
type purchaseService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

// NewPurchaseService creates a new PurchaseServicer.
func NewPurchaseService(db *gorm.DB, m *metrics.Metrics) PurchaseServicer {
	return &purchaseService{db: db, metrics: m}
}

// normalize trims optional fields in place before validation.
func (in *PurchaseInput) normalize() {
	in.HomeID = normalizeID(in.HomeID)
	in.AreaID = normalizeID(in.AreaID)
	in.RoomID = normalizeID(in.RoomID)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}
	if in.ExpenseCategory != nil {
		cat := strings.TrimSpace(*in.ExpenseCategory)
		if cat == "" {
			in.ExpenseCategory = nil
		} else {
			in.ExpenseCategory = &cat
		}
	}
	seen := make(map[string]struct{}, len(in.TagIDs))
	tags := make([]string, 0, len(in.TagIDs))
	for _, id := range in.TagIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		tags = append(tags, id)
	}
	in.TagIDs = tags
	for i := range in.LineItems {
		in.LineItems[i].AreaID = normalizeID(in.LineItems[i].AreaID)
		in.LineItems[i].RoomID = normalizeID(in.LineItems[i].RoomID)
	}
}

// validate checks scalar rules and every reference, reporting all failures
// at once. Tags it finds are returned for association.
func (s *purchaseService) validate(in *PurchaseInput) ([]models.Tag, error) {
	in.normalize()
	fe := validateInput(in)

	if in.TotalAmount.IsNegative() {
		fe.add("total_amount", "must not be negative")
	}
	for i, it := range in.LineItems {
		if !it.Quantity.Round(3).IsPositive() {
			fe.add(fmt.Sprintf("line_items[%d].quantity", i), "must be greater than 0")
		}
		if it.UnitPrice.IsNegative() {
			fe.add(fmt.Sprintf("line_items[%d].unit_price", i), "must not be negative")
		}
	}

	refs, err := s.loadRefs(in)
	if err != nil {
		return nil, err
	}
	if uuid.IsValid(in.SupplierID) && !refs.suppliers[in.SupplierID] {
		fe.add("supplier_id", "does not exist")
	}
	if in.HomeID != nil && uuid.IsValid(*in.HomeID) && !refs.homes[*in.HomeID] {
		fe.add("home_id", "does not exist")
	}
	refs.checkPlacement(&fe, "", in.AreaID, in.RoomID)
	if in.HomeID != nil && in.AreaID != nil {
		if area, ok := refs.areas[*in.AreaID]; ok && area.HomeID != nil && *area.HomeID != *in.HomeID {
			fe.add("area_id", "does not belong to the selected home")
		}
	}
	for i, it := range in.LineItems {
		refs.checkPlacement(&fe, fmt.Sprintf("line_items[%d].", i), it.AreaID, it.RoomID)
	}

	found := make(map[string]bool, len(refs.tags))
	for _, t := range refs.tags {
		found[t.ID] = true
	}
	for i, id := range in.TagIDs {
		if uuid.IsValid(id) && !found[id] {
			fe.add(fmt.Sprintf("tag_ids[%d]", i), "does not exist")
		}
	}

	if err := fe.err(); err != nil {
		return nil, err
	}
	return refs.tags, nil
}

type purchaseRefs struct {
	suppliers map[string]bool
	homes     map[string]bool
	areas     map[string]models.Area
	rooms     map[string]models.Room
	tags      []models.Tag
}

// checkPlacement verifies an area/room pair exists and that the room sits in the area.
func (r purchaseRefs) checkPlacement(fe *fieldErrors, prefix string, areaID, roomID *string) {
	if areaID != nil && uuid.IsValid(*areaID) {
		if _, ok := r.areas[*areaID]; !ok {
			fe.add(prefix+"area_id", "does not exist")
		}
	}
	if roomID == nil || !uuid.IsValid(*roomID) {
		return
	}
	room, ok := r.rooms[*roomID]
	if !ok {
		fe.add(prefix+"room_id", "does not exist")
		return
	}
	if areaID != nil && room.AreaID != *areaID {
		fe.add(prefix+"room_id", "does not belong to the selected area")
	}
}

// loadRefs fetches every row the input points at in one query per table.
func (s *purchaseService) loadRefs(in *PurchaseInput) (purchaseRefs, error) {
	refs := purchaseRefs{
		suppliers: map[string]bool{},
		homes:     map[string]bool{},
		areas:     map[string]models.Area{},
		rooms:     map[string]models.Room{},
	}

	areaIDs, roomIDs := map[string]struct{}{}, map[string]struct{}{}
	collect := func(areaID, roomID *string) {
		if areaID != nil && uuid.IsValid(*areaID) {
			areaIDs[*areaID] = struct{}{}
		}
		if roomID != nil && uuid.IsValid(*roomID) {
			roomIDs[*roomID] = struct{}{}
		}
	}
	collect(in.AreaID, in.RoomID)
	for _, it := range in.LineItems {
		collect(it.AreaID, it.RoomID)
	}

	if uuid.IsValid(in.SupplierID) {
		var ids []string
		if err := s.db.Model(&models.Supplier{}).Scopes(models.NotDeleted).
			Where("id = ?", in.SupplierID).Pluck("id", &ids).Error; err != nil {
			return refs, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, id := range ids {
			refs.suppliers[id] = true
		}
	}
	if in.HomeID != nil && uuid.IsValid(*in.HomeID) {
		var ids []string
		if err := s.db.Model(&models.Home{}).Scopes(models.NotDeleted).
			Where("id = ?", *in.HomeID).Pluck("id", &ids).Error; err != nil {
			return refs, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, id := range ids {
			refs.homes[id] = true
		}
	}
	if len(areaIDs) > 0 {
		var areas []models.Area
		if err := s.db.Scopes(models.InLiveHome).Where("id IN ?", keys(areaIDs)).Find(&areas).Error; err != nil {
			return refs, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, a := range areas {
			refs.areas[a.ID] = a
		}
	}
	if len(roomIDs) > 0 {
		var rooms []models.Room
		if err := s.db.Scopes(models.InLiveArea).Where("id IN ?", keys(roomIDs)).Find(&rooms).Error; err != nil {
			return refs, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, r := range rooms {
			refs.rooms[r.ID] = r
		}
	}
	var tagIDs []string
	for _, id := range in.TagIDs {
		if uuid.IsValid(id) {
			tagIDs = append(tagIDs, id)
		}
	}
	if len(tagIDs) > 0 {
		if err := s.db.Where("id IN ?", tagIDs).Find(&refs.tags).Error; err != nil {
			return refs, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return refs, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (in PurchaseInput) apply(p *models.Purchase) {
	p.SupplierID = in.SupplierID
	p.HomeID = in.HomeID
	p.AreaID = in.AreaID
	p.RoomID = in.RoomID
	p.Date = in.Date
	p.TotalAmount = in.TotalAmount.Round(2)
	p.Currency = in.Currency
	p.PurchaseType = in.PurchaseType
	p.PaymentStatus = in.PaymentStatus
	p.ExpenseCategory = in.ExpenseCategory
	p.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)
	p.Description = in.Description
}

// lineItems builds rows for purchaseID. Totals always come from quantity
// and unit price.
func (in PurchaseInput) lineItems(purchaseID string) []models.PurchaseLineItem {
	items := make([]models.PurchaseLineItem, 0, len(in.LineItems))
	for _, it := range in.LineItems {
		qty, price := it.Quantity.Round(3), it.UnitPrice.Round(2)
		items = append(items, models.PurchaseLineItem{
			PurchaseID:     purchaseID,
			AreaID:         it.AreaID,
			RoomID:         it.RoomID,
			Name:           strings.TrimSpace(it.Name),
			Quantity:       qty,
			UnitPrice:      price,
			TotalPrice:     models.LineTotal(qty, price),
			WarrantyMonths: it.WarrantyMonths,
			Notes:          it.Notes,
		})
	}
	return items
}

// writeChildren inserts line items and sets the tag set of p.
func writeChildren(tx *gorm.DB, p *models.Purchase, in PurchaseInput, tags []models.Tag) error {
	if items := in.lineItems(p.ID); len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
	}
	assoc := tx.Model(p).Association("Tags")
	if len(tags) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(tags)
}

// CreatePurchase stores a purchase, its line items and tags in one transaction.
func (s *purchaseService) CreatePurchase(in PurchaseInput) (*models.Purchase, error) {
	tags, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	purchase := &models.Purchase{}
	in.apply(purchase)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(purchase).Error; err != nil {
			return err
		}
		return writeChildren(tx, purchase, in, tags)
	})
	if err != nil {
		return nil, writeErr(err, nil)
	}
	s.metrics.PurchaseWritten("create")
	return s.GetPurchase(purchase.ID)
}

// ListPurchases returns a filtered page of live purchases.
func (s *purchaseService) ListPurchases(page pagination.PageRequest, filter PurchaseFilter) (*pagination.PageResponse[models.Purchase], error) {
	page.Defaults()

	base := s.db.Model(&models.Purchase{}).Scopes(models.NotDeleted, models.InLiveHome)
	base = applyPurchaseFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var purchases []models.Purchase
	if err := base.Preload("Supplier").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Scopes(pagination.OrderBy(page, purchaseSortColumns, "date"), pagination.Paginate(page)).
		Find(&purchases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(purchases, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// applyPurchaseFilters narrows q. Area and room match either the purchase
// itself or any of its line items.
func applyPurchaseFilters(q *gorm.DB, f PurchaseFilter) *gorm.DB {
	if f.HomeID != nil {
		q = q.Where("purchases.home_id = ?", *f.HomeID)
	}
	if f.AreaID != nil {
		q = q.Where("(purchases.area_id = ? OR EXISTS (SELECT 1 FROM purchase_line_items li WHERE li.purchase_id = purchases.id AND li.area_id = ?))",
			*f.AreaID, *f.AreaID)
	}
	if f.RoomID != nil {
		q = q.Where("(purchases.room_id = ? OR EXISTS (SELECT 1 FROM purchase_line_items li WHERE li.purchase_id = purchases.id AND li.room_id = ?))",
			*f.RoomID, *f.RoomID)
	}
	if f.SupplierID != nil {
		q = q.Where("purchases.supplier_id = ?", *f.SupplierID)
	}
	if f.TagID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM purchase_tags pt WHERE pt.purchase_id = purchases.id AND pt.tag_id = ?)", *f.TagID)
	}
	if f.PaymentStatus != nil {
		q = q.Where("purchases.payment_status = ?", *f.PaymentStatus)
	}
	if f.Category != nil {
		if *f.Category == spending.Uncategorized {
			q = q.Where("purchases.expense_category IS NULL")
		} else {
			q = q.Where("purchases.expense_category = ?", *f.Category)
		}
	}
	if f.FromDate != nil {
		q = q.Where("purchases.date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("purchases.date <= ?", *f.ToDate)
	}
	return q
}

// GetPurchase returns a live purchase with supplier, line items and tags.
func (s *purchaseService) GetPurchase(purchaseID string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := s.db.Scopes(models.NotDeleted, models.InLiveHome).
		Preload("Supplier").
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&purchase, "id = ?", purchaseID).Error
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrPurchaseNotFound)
	}
	return &purchase, nil
}

// UpdatePurchase replaces a purchase's fields, line items and tags in one
// transaction. Attachments on replaced line items stay on the purchase.
func (s *purchaseService) UpdatePurchase(purchaseID string, in PurchaseInput) (*models.Purchase, error) {
	if _, err := s.GetPurchase(purchaseID); err != nil {
		return nil, err
	}
	tags, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		if err := tx.Scopes(models.NotDeleted).First(&purchase, "id = ?", purchaseID).Error; err != nil {
			return lookupErr(err, apperrors.ErrPurchaseNotFound)
		}
		in.apply(&purchase)
		if err := tx.Model(&purchase).Select(purchaseColumns).Updates(&purchase).Error; err != nil {
			return err
		}

		oldItems := tx.Model(&models.PurchaseLineItem{}).Select("id").Where("purchase_id = ?", purchaseID)
		if err := tx.Model(&models.Attachment{}).Where("line_item_id IN (?)", oldItems).
			Update("line_item_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_id = ?", purchaseID).Delete(&models.PurchaseLineItem{}).Error; err != nil {
			return err
		}
		return writeChildren(tx, &purchase, in, tags)
	})
	if err != nil {
		return nil, writeErr(err, nil)
	}
	s.metrics.PurchaseWritten("update")
	return s.GetPurchase(purchaseID)
}

// DeletePurchase flags a purchase as deleted. Rows are kept for history.
func (s *purchaseService) DeletePurchase(purchaseID string) error {
	res := s.db.Model(&models.Purchase{}).Scopes(models.NotDeleted).
		Where("id = ?", purchaseID).Update("is_deleted", true)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPurchaseNotFound
	}
	s.metrics.PurchaseWritten("delete")
	return nil
}

// Package spending computes spend rollups over the purchase and line item
// graph. Functions here are pure: callers load rows, the package never
// touches the database, and soft-deleted purchases are always ignored.
//
// Money is accumulated as decimal.Decimal and only converted at the JSON
// boundary.
package spending

import (
	"sort"

	"github.com/shopspring/decimal"

	"homeledger/internal/models"
)

// Uncategorized is the SpendByCategory key for purchases without a category.
const Uncategorized = "uncategorized"

// Hierarchy indexes the room -> area -> home chain.
type Hierarchy struct {
	RoomArea map[string]string
	AreaHome map[string]string
}

// NewHierarchy builds a Hierarchy. Areas without a home are left out of
// AreaHome.
func NewHierarchy(areas []models.Area, rooms []models.Room) Hierarchy {
	h := Hierarchy{
		RoomArea: make(map[string]string, len(rooms)),
		AreaHome: make(map[string]string, len(areas)),
	}
	for _, a := range areas {
		if a.HomeID != nil {
			h.AreaHome[a.ID] = *a.HomeID
		}
	}
	for _, r := range rooms {
		h.RoomArea[r.ID] = r.AreaID
	}
	return h
}

// AreaOf resolves the area for an (area, room) attribution pair. An explicit
// area wins; otherwise the room's area is used.
func (h Hierarchy) AreaOf(areaID, roomID *string) (string, bool) {
	if areaID != nil && *areaID != "" {
		return *areaID, true
	}
	if roomID != nil {
		if a, ok := h.RoomArea[*roomID]; ok {
			return a, true
		}
	}
	return "", false
}

// CountedSpend is a total plus the number of distinct purchases behind it.
type CountedSpend struct {
	Total     decimal.Decimal `json:"total"`
	Purchases int             `json:"purchases"`
}

// graph holds live purchases in input order and their line items.
type graph struct {
	purchases []models.Purchase
	items     map[string][]models.PurchaseLineItem
}

func buildGraph(items []models.PurchaseLineItem, purchases []models.Purchase) graph {
	g := graph{items: make(map[string][]models.PurchaseLineItem)}
	live := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		if p.IsDeleted || live[p.ID] {
			continue
		}
		live[p.ID] = true
		g.purchases = append(g.purchases, p)
	}
	for _, it := range items {
		if live[it.PurchaseID] {
			g.items[it.PurchaseID] = append(g.items[it.PurchaseID], it)
		}
	}
	return g
}

// amount is what a purchase contributes when it is attributed as a whole:
// the sum of its line items, or its own total when it has none.
func (g graph) amount(p models.Purchase) decimal.Decimal {
	items := g.items[p.ID]
	if len(items) == 0 {
		return p.TotalAmount
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	return sum
}

func zeroFilled(ids []string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		out[id] = decimal.Zero
	}
	return out
}

// attribute walks every live purchase. For each, itemKey is tried on every
// line item; when no item yields a key the purchase-level key receives the
// whole purchase amount.
func (g graph) attribute(
	out map[string]decimal.Decimal,
	itemKey func(models.PurchaseLineItem) (string, bool),
	purchaseKey func(models.Purchase) (string, bool),
) {
	for _, p := range g.purchases {
		matched := false
		for _, it := range g.items[p.ID] {
			if k, ok := itemKey(it); ok {
				out[k] = out[k].Add(it.TotalPrice)
				matched = true
			}
		}
		if matched {
			continue
		}
		if k, ok := purchaseKey(p); ok {
			out[k] = out[k].Add(g.amount(p))
		}
	}
}

// SpendByRoom sums line item totals per room. Line item rooms are
// authoritative; a purchase whose items carry no room falls back to the
// purchase room. Every id in roomIDs is present in the result.
func SpendByRoom(roomIDs []string, items []models.PurchaseLineItem, purchases []models.Purchase) map[string]decimal.Decimal {
	out := zeroFilled(roomIDs)
	g := buildGraph(items, purchases)
	g.attribute(out,
		func(it models.PurchaseLineItem) (string, bool) {
			if it.RoomID == nil {
				return "", false
			}
			return *it.RoomID, true
		},
		func(p models.Purchase) (string, bool) {
			if p.RoomID == nil {
				return "", false
			}
			return *p.RoomID, true
		},
	)
	return out
}

// SpendByArea sums line item totals per area. An item with only a room is
// attributed to that room's area.
func SpendByArea(areaIDs []string, items []models.PurchaseLineItem, purchases []models.Purchase, h Hierarchy) map[string]decimal.Decimal {
	out := zeroFilled(areaIDs)
	g := buildGraph(items, purchases)
	g.attribute(out,
		func(it models.PurchaseLineItem) (string, bool) { return h.AreaOf(it.AreaID, it.RoomID) },
		func(p models.Purchase) (string, bool) { return h.AreaOf(p.AreaID, p.RoomID) },
	)
	return out
}

// SpendByCategory groups by the purchase category and counts distinct
// purchases per group.
func SpendByCategory(items []models.PurchaseLineItem, purchases []models.Purchase) map[string]CountedSpend {
	out := make(map[string]CountedSpend)
	g := buildGraph(items, purchases)
	for _, p := range g.purchases {
		key := Uncategorized
		if p.ExpenseCategory != nil && *p.ExpenseCategory != "" {
			key = *p.ExpenseCategory
		}
		cs := out[key]
		cs.Total = cs.Total.Add(g.amount(p))
		cs.Purchases++
		out[key] = cs
	}
	return out
}

// SpendByHome sums purchase totals per home. Purchases without a home are
// not counted; see InferHomeID.
func SpendByHome(homeIDs []string, purchases []models.Purchase) map[string]decimal.Decimal {
	out := zeroFilled(homeIDs)
	for _, p := range buildGraph(nil, purchases).purchases {
		if p.HomeID != nil {
			out[*p.HomeID] = out[*p.HomeID].Add(p.TotalAmount)
		}
	}
	return out
}

// SpendBySupplier sums purchase totals and counts purchases per supplier.
func SpendBySupplier(purchases []models.Purchase) map[string]CountedSpend {
	out := make(map[string]CountedSpend)
	for _, p := range buildGraph(nil, purchases).purchases {
		cs := out[p.SupplierID]
		cs.Total = cs.Total.Add(p.TotalAmount)
		cs.Purchases++
		out[p.SupplierID] = cs
	}
	return out
}

// SpendByPaymentStatus sums purchase totals per payment status. All three
// statuses are always present.
func SpendByPaymentStatus(purchases []models.Purchase) map[models.PaymentStatus]decimal.Decimal {
	out := map[models.PaymentStatus]decimal.Decimal{
		models.PaymentStatusPending: decimal.Zero,
		models.PaymentStatusPartial: decimal.Zero,
		models.PaymentStatusPaid:    decimal.Zero,
	}
	for _, p := range buildGraph(nil, purchases).purchases {
		out[p.PaymentStatus] = out[p.PaymentStatus].Add(p.TotalAmount)
	}
	return out
}

// Total sums live purchase totals.
func Total(purchases []models.Purchase) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range buildGraph(nil, purchases).purchases {
		sum = sum.Add(p.TotalAmount)
	}
	return sum
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

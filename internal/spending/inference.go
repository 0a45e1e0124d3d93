package spending

import "homeledger/internal/models"

// InferenceStatus is the outcome of InferHomeID.
type InferenceStatus string

const (
	InferenceResolved  InferenceStatus = "resolved"
	InferenceAmbiguous InferenceStatus = "ambiguous"
	InferenceUnknown   InferenceStatus = "unknown"
)

// Inference carries the inferred home, or the competing candidates when the
// result is ambiguous.
type Inference struct {
	Status     InferenceStatus `json:"status"`
	HomeID     string          `json:"home_id,omitempty"`
	Candidates []string        `json:"candidates,omitempty"`
}

// InferHomeID works out the home of a purchase. A purchase that already has
// a home resolves to it. Otherwise every line item's area (or its room's
// area) is mapped to a home; when no item carries an area the purchase-level
// area or room is used. Exactly one distinct home resolves; more than one is
// ambiguous and HomeID stays empty.
func InferHomeID(p models.Purchase, items []models.PurchaseLineItem, h Hierarchy) Inference {
	if p.HomeID != nil && *p.HomeID != "" {
		return Inference{Status: InferenceResolved, HomeID: *p.HomeID}
	}

	homes := make(map[string]struct{})
	sawArea := false
	for _, it := range items {
		if it.PurchaseID != p.ID {
			continue
		}
		area, ok := h.AreaOf(it.AreaID, it.RoomID)
		if !ok {
			continue
		}
		sawArea = true
		if home, ok := h.AreaHome[area]; ok {
			homes[home] = struct{}{}
		}
	}
	if !sawArea {
		if area, ok := h.AreaOf(p.AreaID, p.RoomID); ok {
			if home, ok := h.AreaHome[area]; ok {
				homes[home] = struct{}{}
			}
		}
	}

	switch len(homes) {
	case 0:
		return Inference{Status: InferenceUnknown}
	case 1:
		for home := range homes {
			return Inference{Status: InferenceResolved, HomeID: home}
		}
	}
	return Inference{Status: InferenceAmbiguous, Candidates: sortedKeys(homes)}
}

// FilterByHome keeps live purchases that belong to homeID, either directly
// or because their home is unset and infers to homeID.
func FilterByHome(homeID string, purchases []models.Purchase, items []models.PurchaseLineItem, h Hierarchy) []models.Purchase {
	g := buildGraph(items, purchases)
	var out []models.Purchase
	for _, p := range g.purchases {
		if p.HomeID != nil {
			if *p.HomeID == homeID {
				out = append(out, p)
			}
			continue
		}
		if inf := InferHomeID(p, g.items[p.ID], h); inf.Status == InferenceResolved && inf.HomeID == homeID {
			out = append(out, p)
		}
	}
	return out
}

// ItemsOf returns the line items whose purchase is in purchases.
func ItemsOf(purchases []models.Purchase, items []models.PurchaseLineItem) []models.PurchaseLineItem {
	keep := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		keep[p.ID] = true
	}
	var out []models.PurchaseLineItem
	for _, it := range items {
		if keep[it.PurchaseID] {
			out = append(out, it)
		}
	}
	return out
}

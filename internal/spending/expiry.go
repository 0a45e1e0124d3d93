package spending

import (
	"math"
	"sort"
	"time"

	"homeledger/internal/models"
)

// Bucket groups items by days remaining before expiry.
type Bucket string

const (
	BucketExpired Bucket = "expired"
	BucketUrgent  Bucket = "urgent"
	BucketMedium  Bucket = "medium"
	BucketActive  Bucket = "active"
)

// DaysRemaining counts calendar days from now until expiry, comparing UTC
// midnights and rounding up.
func DaysRemaining(expiry, now time.Time) int {
	diff := midnight(expiry).Sub(midnight(now))
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify maps days remaining to a bucket: <=0 expired, 1-30 urgent,
// 31-90 medium, above 90 active.
func Classify(days int) Bucket {
	switch {
	case days <= 0:
		return BucketExpired
	case days <= 30:
		return BucketUrgent
	case days <= 90:
		return BucketMedium
	default:
		return BucketActive
	}
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpiringDocument is a tracked house document nearing its expiry.
type ExpiringDocument struct {
	Attachment    models.Attachment `json:"attachment"`
	DaysRemaining int               `json:"days_remaining"`
	Bucket        Bucket            `json:"bucket"`
}

// ExpiringDocuments returns classified attachments whose expiry falls in
// [now, now+windowDays], both bounds inclusive, soonest first.
func ExpiringDocuments(attachments []models.Attachment, windowDays int, now time.Time) []ExpiringDocument {
	end := now.Add(time.Duration(windowDays) * 24 * time.Hour)
	out := make([]ExpiringDocument, 0)
	for _, a := range attachments {
		if a.HouseDocumentType == nil || a.ExpiresAt == nil {
			continue
		}
		if a.ExpiresAt.Before(now) || a.ExpiresAt.After(end) {
			continue
		}
		days := DaysRemaining(*a.ExpiresAt, now)
		out = append(out, ExpiringDocument{Attachment: a, DaysRemaining: days, Bucket: Classify(days)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Attachment.ExpiresAt.Before(*out[j].Attachment.ExpiresAt)
	})
	return out
}

// ExpiringWarranty is a line item whose warranty ends inside the window.
type ExpiringWarranty struct {
	LineItem          models.PurchaseLineItem `json:"line_item"`
	SupplierID        string                  `json:"supplier_id"`
	PurchaseDate      time.Time               `json:"purchase_date"`
	WarrantyExpiresAt time.Time               `json:"warranty_expires_at"`
	DaysRemaining     int                     `json:"days_remaining"`
	Bucket            Bucket                  `json:"bucket"`
}

// WarrantyExpiry returns purchase date plus warranty months.
func WarrantyExpiry(purchaseDate time.Time, months int) time.Time {
	return purchaseDate.AddDate(0, months, 0)
}

// ExpiringWarranties derives each live line item's warranty expiry and keeps
// those between 0 and windowDays calendar days away, soonest first.
// Warranty expiries are dates, so the window is compared in whole days.
func ExpiringWarranties(items []models.PurchaseLineItem, purchases []models.Purchase, windowDays int, now time.Time) []ExpiringWarranty {
	g := buildGraph(items, purchases)
	out := make([]ExpiringWarranty, 0)
	for _, p := range g.purchases {
		if p.Date.IsZero() {
			continue
		}
		for _, it := range g.items[p.ID] {
			if it.WarrantyMonths == nil || *it.WarrantyMonths <= 0 {
				continue
			}
			exp := WarrantyExpiry(p.Date, *it.WarrantyMonths)
			days := DaysRemaining(exp, now)
			if days < 0 || days > windowDays {
				continue
			}
			out = append(out, ExpiringWarranty{
				LineItem:          it,
				SupplierID:        p.SupplierID,
				PurchaseDate:      p.Date,
				WarrantyExpiresAt: exp,
				DaysRemaining:     days,
				Bucket:            Classify(days),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WarrantyExpiresAt.Before(out[j].WarrantyExpiresAt)
	})
	return out
}

package services

import (
	"time"

	"homeledger/internal/models"
	"homeledger/internal/testutil"
)

// missingID is a well-formed id no fixture ever gets.
const missingID = "0190c7e2-0000-7000-8000-000000000000"

var may10 = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func purchaseInput(supplierID string, items ...LineItemInput) PurchaseInput {
	return PurchaseInput{
		SupplierID:    supplierID,
		Date:          may10,
		TotalAmount:   testutil.Dec("0"),
		PurchaseType:  models.PurchaseTypeMaterials,
		PaymentStatus: models.PaymentStatusPaid,
		LineItems:     items,
	}
}

func item(name, qty, price string) LineItemInput {
	return LineItemInput{Name: name, Quantity: testutil.Dec(qty), UnitPrice: testutil.Dec(price)}
}

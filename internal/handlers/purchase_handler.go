package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/pagination"
	"homeledger/internal/services"
	"homeledger/internal/validator"
)

// maxInvoiceBytes caps uploaded invoice images.
const maxInvoiceBytes = 10 << 20

// PurchaseHandler handles purchases, their line items and invoice extraction.
type PurchaseHandler struct {
	purchaseService   services.PurchaseServicer
	extractionService services.ExtractionServicer
	auditService      services.AuditServicer
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService services.PurchaseServicer, extractionService services.ExtractionServicer, auditService services.AuditServicer) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService:   purchaseService,
		extractionService: extractionService,
		auditService:      auditService,
	}
}

// ListPurchases lists live purchases.
// @Summary     List purchases
// @Description Area and room filters match the purchase or any of its line items.
// @Tags        purchases
// @Produce     json
// @Security    BearerAuth
// @Param       home_id        query string false "Home ID"
// @Param       area_id        query string false "Area ID"
// @Param       room_id        query string false "Room ID"
// @Param       supplier_id    query string false "Supplier ID"
// @Param       tag_id         query string false "Tag ID"
// @Param       payment_status query string false "pending, partial or paid"
// @Param       category       query string false "Expense category key, or uncategorized"
// @Param       from           query string false "Earliest date (YYYY-MM-DD)"
// @Param       to             query string false "Latest date (YYYY-MM-DD)"
// @Param       sort           query string false "date, total_amount or created_at"
// @Param       order          query string false "asc or desc"
// @Param       page           query int    false "Page number (default 1)"
// @Param       page_size      query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Purchase]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.NewValidationError(validator.FieldErrors(err)))
		return
	}

	filter, err := purchaseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.purchaseService.ListPurchases(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func purchaseFilter(c *gin.Context) (services.PurchaseFilter, error) {
	var (
		f   services.PurchaseFilter
		err error
	)
	ids := []struct {
		name string
		dst  **string
	}{
		{"home_id", &f.HomeID},
		{"area_id", &f.AreaID},
		{"room_id", &f.RoomID},
		{"supplier_id", &f.SupplierID},
		{"tag_id", &f.TagID},
	}
	for _, q := range ids {
		if *q.dst, err = queryID(c, q.name); err != nil {
			return f, err
		}
	}

	if v := c.Query("payment_status"); v != "" {
		s := models.PaymentStatus(v)
		switch s {
		case models.PaymentStatusPending, models.PaymentStatusPartial, models.PaymentStatusPaid:
			f.PaymentStatus = &s
		default:
			return f, fieldError("payment_status", "must be one of: pending partial paid")
		}
	}
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if f.FromDate, err = queryDate(c, "from"); err != nil {
		return f, err
	}
	if f.ToDate, err = queryDate(c, "to"); err != nil {
		return f, err
	}
	return f, nil
}

// CreatePurchase records a purchase with its line items.
// @Summary     Create a purchase
// @Description Line item totals are computed from quantity and unit price. Every invalid field is reported at once.
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.PurchaseInput true "Purchase details"
// @Success     201 {object} models.Purchase
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.PurchaseInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_PURCHASE", "purchase", purchase.ID, c.ClientIP(),
		map[string]interface{}{
			"supplier_id":  purchase.SupplierID,
			"total_amount": purchase.TotalAmount.String(),
			"line_items":   len(purchase.LineItems),
		})

	c.JSON(http.StatusCreated, gin.H{"purchase": purchase})
}

// GetPurchase returns a purchase with supplier, line items and tags.
// @Summary     Get a purchase
// @Tags        purchases
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Purchase ID"
// @Success     200 {object} models.Purchase
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchaseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchase, err := h.purchaseService.GetPurchase(purchaseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchase": purchase})
}

// UpdatePurchase replaces a purchase and its whole line item set.
// @Summary     Update a purchase
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Purchase ID"
// @Param       request body services.PurchaseInput true "Purchase details"
// @Success     200 {object} models.Purchase
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id} [put]
func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchaseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.PurchaseInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(purchaseID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_PURCHASE", "purchase", purchase.ID, c.ClientIP(),
		map[string]interface{}{
			"total_amount": purchase.TotalAmount.String(),
			"line_items":   len(purchase.LineItems),
		})

	c.JSON(http.StatusOK, gin.H{"purchase": purchase})
}

// DeletePurchase soft-deletes a purchase.
// @Summary     Delete a purchase
// @Tags        purchases
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Purchase ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id} [delete]
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchaseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.purchaseService.DeletePurchase(purchaseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_PURCHASE", "purchase", purchaseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}

// ExtractInvoice reads an invoice image and suggests a purchase.
// @Summary     Extract an invoice
// @Description Nothing is saved. When the reply cannot be read, raw_response carries it for manual entry.
// @Tags        purchases
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Invoice image"
// @Success     200 {object} extraction.Suggestion
// @Failure     400 {object} ErrorResponse "Missing or oversized file"
// @Failure     502 {object} ErrorResponse "Extraction failed"
// @Failure     503 {object} ErrorResponse "Extraction not configured"
// @Router      /purchases/extract [post]
func (h *PurchaseHandler) ExtractInvoice(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, fieldError("file", "is required"))
		return
	}
	if header.Size > maxInvoiceBytes {
		respondWithError(c, fieldError("file", "must be at most 10 MB"))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, maxInvoiceBytes))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image)
	}

	suggestion, err := h.extractionService.ExtractInvoice(c.Request.Context(), image, contentType)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

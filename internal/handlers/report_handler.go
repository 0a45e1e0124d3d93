package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeledger/internal/services"
)

const (
	defaultDocumentWindow = 30
	defaultWarrantyWindow = 90
)

// ReportHandler serves read-only spend reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns spend by home, area, room, category, supplier and payment status.
// @Summary     Spend summary
// @Description With home_id, purchases without a home count when their line items place them in that home.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       home_id query string false "Home ID"
// @Success     200 {object} services.SpendSummary
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	homeID, err := queryID(c, "home_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), homeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// AreaBreakdown compares area and room budgets with spend.
// @Summary     Area budgets
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       home_id query string false "Home ID"
// @Success     200 {array} services.AreaReport
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /reports/areas [get]
func (h *ReportHandler) AreaBreakdown(c *gin.Context) {
	homeID, err := queryID(c, "home_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	areas, err := h.reportService.AreaBreakdown(c.Request.Context(), homeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// ExpiringDocuments lists house documents expiring within the window.
// @Summary     Expiring documents
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window in days (default 30)"
// @Success     200 {array} spending.ExpiringDocument
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Router      /reports/expiring-documents [get]
func (h *ReportHandler) ExpiringDocuments(c *gin.Context) {
	days, err := queryInt(c, "days", defaultDocumentWindow)
	if err != nil {
		respondWithError(c, err)
		return
	}

	docs, err := h.reportService.ExpiringDocuments(c.Request.Context(), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// ExpiringWarranties lists line item warranties ending within the window.
// @Summary     Expiring warranties
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window in days (default 90)"
// @Success     200 {array} spending.ExpiringWarranty
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Router      /reports/expiring-warranties [get]
func (h *ReportHandler) ExpiringWarranties(c *gin.Context) {
	days, err := queryInt(c, "days", defaultWarrantyWindow)
	if err != nil {
		respondWithError(c, err)
		return
	}

	warranties, err := h.reportService.ExpiringWarranties(c.Request.Context(), days)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warranties": warranties})
}

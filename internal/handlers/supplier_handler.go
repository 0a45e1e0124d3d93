package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/pagination"
	"homeledger/internal/services"
	"homeledger/internal/validator"
)

// SupplierHandler handles suppliers.
type SupplierHandler struct {
	supplierService services.SupplierServicer
	auditService    services.AuditServicer
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService services.SupplierServicer, auditService services.AuditServicer) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, auditService: auditService}
}

// ListSuppliers lists live suppliers with search and pagination.
// @Summary     List suppliers
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       q         query string false "Search name, email or VAT number"
// @Param       sort      query string false "name, last_name, rating or created_at"
// @Param       order     query string false "asc or desc"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Supplier]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.NewValidationError(validator.FieldErrors(err)))
		return
	}

	result, err := h.supplierService.ListSuppliers(page, c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateSupplier creates a supplier.
// @Summary     Create a supplier
// @Description Companies need company_name; individuals need first_name and last_name.
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.SupplierInput true "Supplier details"
// @Success     201 {object} models.Supplier
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.SupplierInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	supplier, err := h.supplierService.CreateSupplier(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_SUPPLIER", "supplier", supplier.ID, c.ClientIP(),
		map[string]interface{}{"name": supplier.DisplayName(), "type": supplier.Type})

	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

// GetSupplier returns one supplier.
// @Summary     Get a supplier
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Supplier ID"
// @Success     200 {object} models.Supplier
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplier, err := h.supplierService.GetSupplier(supplierID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// UpdateSupplier replaces a supplier's details.
// @Summary     Update a supplier
// @Tags        suppliers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Supplier ID"
// @Param       request body services.SupplierInput true "Supplier details"
// @Success     200 {object} models.Supplier
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.SupplierInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(supplierID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_SUPPLIER", "supplier", supplier.ID, c.ClientIP(),
		map[string]interface{}{"name": supplier.DisplayName()})

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier soft-deletes a supplier. Its purchases keep referring to it.
// @Summary     Delete a supplier
// @Tags        suppliers
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Supplier ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Supplier not found"
// @Router      /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	supplierID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.supplierService.DeleteSupplier(supplierID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_SUPPLIER", "supplier", supplierID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeledger/internal/services"
)

// AreaHandler handles areas.
type AreaHandler struct {
	areaService  services.AreaServicer
	auditService services.AuditServicer
}

// NewAreaHandler creates a new AreaHandler.
func NewAreaHandler(areaService services.AreaServicer, auditService services.AuditServicer) *AreaHandler {
	return &AreaHandler{areaService: areaService, auditService: auditService}
}

// ListAreas lists areas, optionally for one home.
// @Summary     List areas
// @Tags        areas
// @Produce     json
// @Security    BearerAuth
// @Param       home_id query string false "Home ID"
// @Success     200 {array} models.Area
// @Failure     400 {object} ErrorResponse "Invalid home_id"
// @Router      /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	homeID, err := queryID(c, "home_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	areas, err := h.areaService.ListAreas(homeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// CreateArea creates an area.
// @Summary     Create an area
// @Tags        areas
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.AreaInput true "Area details"
// @Success     201 {object} models.Area
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /areas [post]
func (h *AreaHandler) CreateArea(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AreaInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	area, err := h.areaService.CreateArea(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_AREA", "area", area.ID, c.ClientIP(),
		map[string]interface{}{"name": area.Name, "home_id": area.HomeID})

	c.JSON(http.StatusCreated, gin.H{"area": area})
}

// GetArea returns an area with its rooms.
// @Summary     Get an area
// @Tags        areas
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Area ID"
// @Success     200 {object} models.Area
// @Failure     404 {object} ErrorResponse "Area not found"
// @Router      /areas/{id} [get]
func (h *AreaHandler) GetArea(c *gin.Context) {
	areaID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	area, err := h.areaService.GetArea(areaID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}

// UpdateArea replaces an area's details.
// @Summary     Update an area
// @Tags        areas
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Area ID"
// @Param       request body services.AreaInput true "Area details"
// @Success     200 {object} models.Area
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Area not found"
// @Router      /areas/{id} [put]
func (h *AreaHandler) UpdateArea(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	areaID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AreaInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	area, err := h.areaService.UpdateArea(areaID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_AREA", "area", area.ID, c.ClientIP(),
		map[string]interface{}{"name": area.Name, "budget": area.Budget})

	c.JSON(http.StatusOK, gin.H{"area": area})
}

// DeleteArea deletes an area that has no rooms.
// @Summary     Delete an area
// @Description Fails with AREA_HAS_ROOMS while rooms remain. Purchase and line item references are cleared.
// @Tags        areas
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Area ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Area not found"
// @Failure     409 {object} ErrorResponse "Area has rooms"
// @Router      /areas/{id} [delete]
func (h *AreaHandler) DeleteArea(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	areaID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.areaService.DeleteArea(areaID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_AREA", "area", areaID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Area deleted successfully"})
}

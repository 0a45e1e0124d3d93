package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeledger/internal/services"
)

// HomeHandler handles homes and their image galleries.
type HomeHandler struct {
	homeService  services.HomeServicer
	auditService services.AuditServicer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(homeService services.HomeServicer, auditService services.AuditServicer) *HomeHandler {
	return &HomeHandler{homeService: homeService, auditService: auditService}
}

// ListHomes lists live homes.
// @Summary     List homes
// @Tags        homes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Home
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /homes [get]
func (h *HomeHandler) ListHomes(c *gin.Context) {
	homes, err := h.homeService.ListHomes()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homes": homes})
}

// CreateHome creates a home.
// @Summary     Create a home
// @Tags        homes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.HomeInput true "Home details"
// @Success     201 {object} models.Home
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Editors only"
// @Router      /homes [post]
func (h *HomeHandler) CreateHome(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.HomeInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	home, err := h.homeService.CreateHome(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_HOME", "home", home.ID, c.ClientIP(),
		map[string]interface{}{"name": home.Name})

	c.JSON(http.StatusCreated, gin.H{"home": home})
}

// GetHome returns one home.
// @Summary     Get a home
// @Tags        homes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Home ID"
// @Success     200 {object} models.Home
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /homes/{id} [get]
func (h *HomeHandler) GetHome(c *gin.Context) {
	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	home, err := h.homeService.GetHome(homeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": home})
}

// UpdateHome replaces a home's details.
// @Summary     Update a home
// @Tags        homes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Home ID"
// @Param       request body services.HomeInput true "Home details"
// @Success     200 {object} models.Home
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /homes/{id} [put]
func (h *HomeHandler) UpdateHome(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.HomeInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	home, err := h.homeService.UpdateHome(homeID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_HOME", "home", home.ID, c.ClientIP(),
		map[string]interface{}{"name": home.Name})

	c.JSON(http.StatusOK, gin.H{"home": home})
}

// DeleteHome soft-deletes a home.
// @Summary     Delete a home
// @Tags        homes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Home ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /homes/{id} [delete]
func (h *HomeHandler) DeleteHome(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.homeService.DeleteHome(homeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_HOME", "home", homeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Home deleted successfully"})
}

// ListImages lists a home's gallery.
// @Summary     List home images
// @Tags        homes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Home ID"
// @Success     200 {array} models.HomeImage
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /homes/{id}/images [get]
func (h *HomeHandler) ListImages(c *gin.Context) {
	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	images, err := h.homeService.ListImages(homeID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// AddImage adds an image to a home's gallery.
// @Summary     Add a home image
// @Tags        homes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Home ID"
// @Param       request body services.HomeImageInput true "Image"
// @Success     201 {object} models.HomeImage
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Home not found"
// @Router      /homes/{id}/images [post]
func (h *HomeHandler) AddImage(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.HomeImageInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	image, err := h.homeService.AddImage(homeID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "ADD_HOME_IMAGE", "home_image", image.ID, c.ClientIP(),
		map[string]interface{}{"home_id": homeID})

	c.JSON(http.StatusCreated, gin.H{"image": image})
}

// DeleteImage removes an image from a home's gallery.
// @Summary     Delete a home image
// @Tags        homes
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Home ID"
// @Param       imageId path string true "Image ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Image not found"
// @Router      /homes/{id}/images/{imageId} [delete]
func (h *HomeHandler) DeleteImage(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	homeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	imageID, err := parsePathID(c, "imageId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.homeService.DeleteImage(homeID, imageID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_HOME_IMAGE", "home_image", imageID, c.ClientIP(),
		map[string]interface{}{"home_id": homeID})

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

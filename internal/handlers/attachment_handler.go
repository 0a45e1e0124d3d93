package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeledger/internal/services"
)

// AttachmentHandler handles attachment metadata. File bytes live in
// external storage; only the URL is recorded.
type AttachmentHandler struct {
	attachmentService services.AttachmentServicer
	auditService      services.AuditServicer
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService services.AttachmentServicer, auditService services.AuditServicer) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, auditService: auditService}
}

// ListPurchaseAttachments lists a purchase's attachments.
// @Summary     List purchase attachments
// @Tags        attachments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Purchase ID"
// @Success     200 {array} models.Attachment
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id}/attachments [get]
func (h *AttachmentHandler) ListPurchaseAttachments(c *gin.Context) {
	purchaseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	attachments, err := h.attachmentService.ListPurchaseAttachments(purchaseID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

// CreatePurchaseAttachment registers a file on the purchase in the path.
// @Summary     Attach a file to a purchase
// @Tags        attachments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Purchase ID"
// @Param       request body services.AttachmentInput true "Attachment details"
// @Success     201 {object} models.Attachment
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Router      /purchases/{id}/attachments [post]
func (h *AttachmentHandler) CreatePurchaseAttachment(c *gin.Context) {
	purchaseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AttachmentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	req.PurchaseID = &purchaseID

	h.create(c, req)
}

// CreateAttachment registers a file on a purchase, line item or room, or a
// standalone house document.
// @Summary     Register an attachment
// @Tags        attachments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.AttachmentInput true "Attachment details"
// @Success     201 {object} models.Attachment
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /attachments [post]
func (h *AttachmentHandler) CreateAttachment(c *gin.Context) {
	var req services.AttachmentInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	h.create(c, req)
}

func (h *AttachmentHandler) create(c *gin.Context, req services.AttachmentInput) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	attachment, err := h.attachmentService.CreateAttachment(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_ATTACHMENT", "attachment", attachment.ID, c.ClientIP(),
		map[string]interface{}{"file_name": attachment.FileName, "purchase_id": attachment.PurchaseID})

	c.JSON(http.StatusCreated, gin.H{"attachment": attachment})
}

// DeleteAttachment removes attachment metadata.
// @Summary     Delete an attachment
// @Tags        attachments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Attachment ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Attachment not found"
// @Router      /attachments/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	attachmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.attachmentService.DeleteAttachment(attachmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_ATTACHMENT", "attachment", attachmentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted successfully"})
}

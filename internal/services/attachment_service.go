package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/models"
	"homeledger/internal/uuid"
)

// attachmentService stores file metadata. The bytes live in external storage.
type attachmentService struct {
	db *gorm.DB
}

// NewAttachmentService creates a new AttachmentServicer.
func NewAttachmentService(db *gorm.DB) AttachmentServicer {
	return &attachmentService{db: db}
}

// CreateAttachment registers an uploaded file. An attachment hangs off a
// purchase, a line item or a room; house documents may stand alone.
// Attaching to a line item also attaches to its purchase.
func (s *attachmentService) CreateAttachment(in AttachmentInput) (*models.Attachment, error) {
	in.PurchaseID = normalizeID(in.PurchaseID)
	in.LineItemID = normalizeID(in.LineItemID)
	in.RoomID = normalizeID(in.RoomID)
	if in.HouseDocumentType != nil && *in.HouseDocumentType == "" {
		in.HouseDocumentType = nil
	}

	fe := validateInput(in)
	if in.PurchaseID == nil && in.LineItemID == nil && in.RoomID == nil && in.HouseDocumentType == nil {
		fe.add("purchase_id", "a purchase, line item or room is required unless this is a house document")
	}

	if in.PurchaseID != nil && uuid.IsValid(*in.PurchaseID) {
		var count int64
		if err := s.db.Model(&models.Purchase{}).Scopes(models.NotDeleted).
			Where("id = ?", *in.PurchaseID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			fe.add("purchase_id", "does not exist")
		}
	}
	if in.LineItemID != nil && uuid.IsValid(*in.LineItemID) {
		var item models.PurchaseLineItem
		err := s.db.Where("purchase_id IN (?)", livePurchaseIDs(s.db)).
			First(&item, "id = ?", *in.LineItemID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fe.add("line_item_id", "does not exist")
		case err != nil:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		case in.PurchaseID != nil && *in.PurchaseID != item.PurchaseID:
			fe.add("line_item_id", "does not belong to the selected purchase")
		case in.PurchaseID == nil:
			in.PurchaseID = &item.PurchaseID
		}
	}
	if in.RoomID != nil && uuid.IsValid(*in.RoomID) {
		var count int64
		if err := s.db.Model(&models.Room{}).Where("id = ?", *in.RoomID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			fe.add("room_id", "does not exist")
		}
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	att := &models.Attachment{
		PurchaseID:        in.PurchaseID,
		LineItemID:        in.LineItemID,
		RoomID:            in.RoomID,
		FileName:          strings.TrimSpace(in.FileName),
		URL:               in.URL,
		ContentType:       in.ContentType,
		SizeBytes:         in.SizeBytes,
		HouseDocumentType: in.HouseDocumentType,
		ExpiresAt:         in.ExpiresAt,
		Notes:             in.Notes,
	}
	if err := s.db.Create(att).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return att, nil
}

// ListPurchaseAttachments returns attachments of a live purchase, including
// those on its line items.
func (s *attachmentService) ListPurchaseAttachments(purchaseID string) ([]models.Attachment, error) {
	var count int64
	if err := s.db.Model(&models.Purchase{}).Scopes(models.NotDeleted).
		Where("id = ?", purchaseID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrPurchaseNotFound
	}

	var atts []models.Attachment
	if err := s.db.Where("purchase_id = ?", purchaseID).Order("created_at ASC").Order("id ASC").
		Find(&atts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return atts, nil
}

// DeleteAttachment removes attachment metadata.
func (s *attachmentService) DeleteAttachment(attachmentID string) error {
	res := s.db.Delete(&models.Attachment{}, "id = ?", attachmentID)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAttachmentNotFound
	}
	return nil
}

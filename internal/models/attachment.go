package models

import "time"

// DocumentType classifies attachments that are tracked house documents.
type DocumentType string

const (
	DocumentTypeDeed        DocumentType = "deed"
	DocumentTypeInsurance   DocumentType = "insurance"
	DocumentTypePermit      DocumentType = "permit"
	DocumentTypeWarranty    DocumentType = "warranty"
	DocumentTypeContract    DocumentType = "contract"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeOther       DocumentType = "other"
)

// Attachment is file metadata hung off a Purchase, a line item or a Room.
type Attachment struct {
	Base
	PurchaseID        *string    `gorm:"type:uuid;index" json:"purchase_id"`
	LineItemID        *string    `gorm:"type:uuid;index" json:"line_item_id"`
	RoomID            *string    `gorm:"type:uuid;index" json:"room_id"`
	FileName          string     `gorm:"not null" json:"file_name"`
	URL               string     `gorm:"not null" json:"url"`
	ContentType       string     `json:"content_type"`
	SizeBytes         int64      `json:"size_bytes"`
	HouseDocumentType *string    `json:"house_document_type"`
	ExpiresAt         *time.Time `gorm:"index" json:"expires_at"`
	Notes             string     `json:"notes,omitempty"`
}

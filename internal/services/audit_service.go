package services

import (
	"encoding/json"

	"homeledger/internal/logger"
	"homeledger/internal/metrics"
	"homeledger/internal/models"

	"gorm.io/gorm"
)

// auditService keeps the trail of ledger mutations: purchases, homes, the
// taxonomy and user administration.
type auditService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

// NewAuditService creates a new AuditServicer. m may be nil.
func NewAuditService(db *gorm.DB, m *metrics.Metrics) AuditServicer {
	return &auditService{db: db, metrics: m}
}

// Log appends one entry for a mutation made by the AppUser actorID.
// The mutation has already committed, so a failed write only counts in
// audit_write_failures_total and the log.
func (s *auditService) Log(actorID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	entry := &models.AuditLog{
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(action, changes),
	}
	if err := s.db.Create(entry).Error; err != nil {
		s.metrics.AuditFailed()
		logger.Get().Errorw("failed to record ledger mutation",
			"error", err,
			"user_id", actorID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// encodeChanges renders the changed fields as JSON. Nil means no changes
// column; an unencodable map is stored as an empty object.
func encodeChanges(action string, changes map[string]any) string {
	if changes == nil {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Get().Errorw("failed to encode audit changes", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}

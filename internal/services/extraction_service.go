package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/extraction"
	"homeledger/internal/logger"
	"homeledger/internal/metrics"
	"homeledger/internal/models"
)

// extractionService reads invoices through an external model. Nothing it
// returns is persisted.
type extractionService struct {
	db        *gorm.DB
	extractor InvoiceExtractor
	metrics   *metrics.Metrics
}

// NewExtractionService creates a new ExtractionServicer. A nil extractor
// means extraction is not configured.
func NewExtractionService(db *gorm.DB, extractor InvoiceExtractor, m *metrics.Metrics) ExtractionServicer {
	return &extractionService{db: db, extractor: extractor, metrics: m}
}

// ExtractInvoice returns a purchase suggestion for image and tries to match
// the supplier name to a live supplier.
func (s *extractionService) ExtractInvoice(ctx context.Context, image []byte, contentType string) (*extraction.Suggestion, error) {
	if s.extractor == nil {
		return nil, apperrors.ErrExtractionUnavailable
	}
	if len(image) == 0 {
		return nil, apperrors.NewValidationError([]apperrors.FieldError{{Field: "file", Message: "is required"}})
	}

	start := time.Now()
	sug, err := s.extractor.Extract(ctx, image, contentType)
	if err != nil {
		var parseErr *extraction.ParseError
		if errors.As(err, &parseErr) {
			s.metrics.ExtractionDone("unparsable", start)
			logger.Get().Warnw("invoice extraction returned unreadable output", "error", err)
			return nil, apperrors.WithRawResponse(apperrors.ErrExtractionFailed, parseErr.Raw, err)
		}
		s.metrics.ExtractionDone("error", start)
		logger.Get().Errorw("invoice extraction call failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrExtractionFailed, err)
	}
	s.metrics.ExtractionDone("ok", start)

	if name := strings.ToLower(strings.TrimSpace(sug.SupplierName)); name != "" {
		var supplier models.Supplier
		err := s.db.WithContext(ctx).Scopes(models.NotDeleted).
			Where("LOWER(company_name) = ? OR LOWER(first_name || ' ' || last_name) = ?", name, name).
			Order("created_at ASC").
			First(&supplier).Error
		switch {
		case err == nil:
			sug.SupplierID = &supplier.ID
		case !errors.Is(err, gorm.ErrRecordNotFound):
			logger.Get().Errorw("failed to match extracted supplier", "error", err)
		}
	}
	return sug, nil
}

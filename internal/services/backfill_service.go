package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "homeledger/internal/errors"
	"homeledger/internal/logger"
	"homeledger/internal/metrics"
	"homeledger/internal/models"
	"homeledger/internal/spending"
)

const defaultBackfillBatch = 100

// backfillService assigns homes to purchases that have none, using the
// same inference the reports use.
type backfillService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

// NewBackfillService creates a new BackfillServicer.
func NewBackfillService(db *gorm.DB, m *metrics.Metrics) BackfillServicer {
	return &backfillService{db: db, metrics: m}
}

// BackfillHomeIDs walks live purchases without a home in batches. Each
// purchase is counted as updated, skipped, ambiguous or failed; one bad row
// never stops the run.
func (s *backfillService) BackfillHomeIDs(ctx context.Context, batchSize int) (*BackfillResult, error) {
	if batchSize <= 0 {
		batchSize = defaultBackfillBatch
	}
	db := s.db.WithContext(ctx)
	log := logger.Get()

	var (
		homes []models.Home
		areas []models.Area
		rooms []models.Room
	)
	if err := db.Scopes(models.NotDeleted).Find(&homes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Find(&areas).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Find(&rooms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	live := make(map[string]bool, len(homes))
	for _, h := range homes {
		live[h.ID] = true
	}
	var homed []models.Area
	for _, a := range areas {
		if a.HomeID != nil && live[*a.HomeID] {
			homed = append(homed, a)
		}
	}
	h := spending.NewHierarchy(homed, rooms)

	result := &BackfillResult{AmbiguousIDs: []string{}, FailedIDs: []string{}}
	var batch []models.Purchase
	err := db.Scopes(models.NotDeleted).Where("home_id IS NULL").
		FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ids := make([]string, len(batch))
			for i, p := range batch {
				ids[i] = p.ID
			}
			var items []models.PurchaseLineItem
			if err := db.Where("purchase_id IN ?", ids).Find(&items).Error; err != nil {
				log.Errorw("backfill: failed to load line items", "error", err, "purchases", len(ids))
				result.Failed += len(ids)
				result.FailedIDs = append(result.FailedIDs, ids...)
				return nil
			}
			for _, p := range batch {
				s.backfillOne(db, p, items, h, result)
			}
			return nil
		}).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.metrics.BackfillOutcome("updated", result.Updated)
	s.metrics.BackfillOutcome("skipped", result.Skipped)
	s.metrics.BackfillOutcome("ambiguous", result.Ambiguous)
	s.metrics.BackfillOutcome("failed", result.Failed)
	log.Infow("home id backfill finished",
		"updated", result.Updated,
		"skipped", result.Skipped,
		"ambiguous", result.Ambiguous,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *backfillService) backfillOne(db *gorm.DB, p models.Purchase, items []models.PurchaseLineItem, h spending.Hierarchy, result *BackfillResult) {
	inf := spending.InferHomeID(p, items, h)
	switch inf.Status {
	case spending.InferenceUnknown:
		result.Skipped++
	case spending.InferenceAmbiguous:
		logger.Get().Warnw("backfill: purchase spans several homes", "purchase_id", p.ID, "candidates", inf.Candidates)
		result.Ambiguous++
		result.AmbiguousIDs = append(result.AmbiguousIDs, p.ID)
	case spending.InferenceResolved:
		res := db.Model(&models.Purchase{}).Where("id = ? AND home_id IS NULL", p.ID).Update("home_id", inf.HomeID)
		switch {
		case res.Error != nil:
			logger.Get().Errorw("backfill: failed to set home", "purchase_id", p.ID, "error", res.Error)
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, p.ID)
		case res.RowsAffected == 0:
			result.Skipped++
		default:
			result.Updated++
		}
	}
}

package services

import (
	"context"
	"time"

	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

// DeadLetterSink collects rejections from every stage. Append never fails:
// if it could, a failure would make failures themselves unobservable. When
// the store is unreachable the entry is kept in an in-memory buffer so the
// batch summary and the per-batch query stay complete for the current run.
type DeadLetterSink struct {
	repo   repositories.DeadLetterRepository
	buffer []models.DeadLetterEntry
}

func NewDeadLetterSink(repo repositories.DeadLetterRepository) *DeadLetterSink {
	return &DeadLetterSink{repo: repo}
}

// Append records one rejection and returns the stored entry.
func (s *DeadLetterSink) Append(ctx context.Context, batchID string, rej *models.StageRejection) models.DeadLetterEntry {
	entry := models.DeadLetterEntry{
		BatchID:    batchID,
		RawPayload: rej.RawPayload,
		Stage:      rej.Stage,
		Reason:     rej.FullReason(),
		Timestamp:  time.Now().UTC(),
	}

	stored, err := s.repo.Append(ctx, &entry)
	if err != nil {
		log.Error(ctx, "[DEADLETTER.APPEND.FALLBACK]",
			log.String("batchId", batchID),
			log.String("stage", string(rej.Stage)),
			log.Err(err))
		s.buffer = append(s.buffer, entry)
		return entry
	}

	log.Warn(ctx, "[DEADLETTER.APPEND]",
		log.String("batchId", batchID),
		log.String("stage", string(rej.Stage)),
		log.String("reason", rej.Reason))

	return *stored
}

// ListByBatch returns every dead-letter entry of the given batch run,
// merging the store with anything the fallback buffer holds.
func (s *DeadLetterSink) ListByBatch(ctx context.Context, batchID string) ([]models.DeadLetterEntry, error) {
	stored, err := s.repo.ListByBatch(ctx, batchID, "")
	if err != nil {
		stored = nil
	}

	for _, buffered := range s.buffer {
		if buffered.BatchID == batchID {
			stored = append(stored, buffered)
		}
	}

	return stored, nil
}

package services

import (
	"context"
	"io"

	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type PipelineService interface {
	// Run drives one batch end to end. It only returns an error when the
	// document itself is unparsable; per-record failures are dead-lettered
	// and never abort the batch.
	Run(ctx context.Context, source io.Reader) (*models.BatchResult, error)
}

type pipeline service

var _ PipelineService = (*pipeline)(nil)

// Run implements PipelineService. Records are processed one at a time in
// source order; for each one the stages run strictly as
// normalize -> categorize -> load, and a rejection at any stage
// short-circuits that record to the dead-letter sink.
func (s *pipeline) Run(ctx context.Context, source io.Reader) (*models.BatchResult, error) {
	batchID := s.srv.idgenerator.Generate(models.BatchIDPrefix)

	categorizer, err := NewCategorizer(ctx, s.srv.rules, s.srv.sqlRepo.GetCategoryRepository())
	if err != nil {
		return nil, err
	}

	extractor := NewExtractor()
	normalizer := NewNormalizer(
		s.srv.sqlRepo.GetUserRepository(),
		s.srv.conf.ETL.OwnerFullName,
		s.srv.conf.ETL.OwnerPhoneNumber,
	)
	loader := NewLoader(s.srv.sqlRepo)
	sink := NewDeadLetterSink(s.srv.sqlRepo.GetDeadLetterRepository())

	result := &models.BatchResult{BatchID: batchID}

	reject := func(rej *models.StageRejection) {
		result.Rejected++
		entry := sink.Append(ctx, batchID, rej)
		result.DeadLetterRefs = append(result.DeadLetterRefs, entry.ID)
	}

	log.Info(ctx, "[PIPELINE.START]", log.String("batchId", batchID))

	err = extractor.Extract(ctx, source,
		func(rec models.RawRecord) {
			result.TotalSeen++

			draft, rej := normalizer.Normalize(ctx, rec)
			if rej != nil {
				reject(rej)
				return
			}

			cat, rej := categorizer.Categorize(draft)
			if rej != nil {
				reject(rej)
				return
			}

			inserted, rej := loader.Load(ctx, draft.ToTransaction(cat.ID), rec.Payload)
			if rej != nil {
				reject(rej)
				return
			}

			if inserted {
				result.Loaded++
			} else {
				result.Duplicates++
			}
		},
		func(rej *models.StageRejection) {
			result.TotalSeen++
			reject(rej)
		},
	)
	if err != nil {
		log.Error(ctx, "[PIPELINE.ABORT]", log.String("batchId", batchID), log.Err(err))
		return nil, err
	}

	log.Info(ctx, "[PIPELINE.COMPLETE]",
		log.String("batchId", batchID),
		log.Int("totalSeen", result.TotalSeen),
		log.Int("loaded", result.Loaded),
		log.Int("rejected", result.Rejected),
		log.Int("duplicates", result.Duplicates))

	return result, nil
}

package services

import (
	"context"

	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

type SeederService interface {
	// SeedCategories upserts the closed category set. Re-running it is a
	// no-op for rows that already exist.
	SeedCategories(ctx context.Context, categories []models.Category) error
}

type seeder service

var _ SeederService = (*seeder)(nil)

// SeedCategories implements SeederService.
func (s *seeder) SeedCategories(ctx context.Context, categories []models.Category) error {
	return s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		for _, c := range categories {
			stored, err := r.GetCategoryRepository().Upsert(ctx, &c)
			if err != nil {
				return err
			}
			log.Info(ctx, "[SEED.CATEGORY]",
				log.Int("id", stored.ID),
				log.String("transactionType", stored.TransactionType),
				log.String("paymentType", stored.PaymentType))
		}
		return nil
	})
}

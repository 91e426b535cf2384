package services

import (
	"context"

	"github.com/kwizera-io/go-momo-etl/internal/common/validation"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

// Loader is the only component that mutates persistent transaction state. It
// re-checks every invariant before writing: earlier stages already validated,
// but the store is the last line of defense and an invariant violation here
// is a load-stage rejection, never a crash.
type Loader struct {
	sqlRepo repositories.SQLRepository
}

func NewLoader(sqlRepo repositories.SQLRepository) *Loader {
	return &Loader{sqlRepo: sqlRepo}
}

// Load upserts one fully categorized transaction. inserted is false when the
// reference was already present (idempotent re-run, not an error).
func (l *Loader) Load(ctx context.Context, trx *models.Transaction, rawPayload string) (inserted bool, rej *models.StageRejection) {
	if err := validation.ValidateStruct(trx); err != nil {
		return false, models.NewRejection(models.StageLoad, rawPayload, "transaction invariant violated", err)
	}

	err := l.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var err error
		inserted, err = r.GetTransactionRepository().Upsert(ctx, trx)
		return err
	})
	if err != nil {
		return false, models.NewRejection(models.StageLoad, rawPayload, "failed to persist transaction", err)
	}

	return inserted, nil
}

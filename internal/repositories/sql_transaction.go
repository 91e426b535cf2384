package repositories

import (
	"context"
	"database/sql"

	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type TransactionRepository interface {
	// Upsert inserts the transaction keyed by its unique reference. A
	// conflicting reference is an idempotent no-op: inserted is false and no
	// error is returned, so re-running a batch over the same source never
	// duplicates rows.
	Upsert(ctx context.Context, in *models.Transaction) (inserted bool, err error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	CountAll(ctx context.Context) (int64, error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

// Upsert implements TransactionRepository.
func (r *transactionRepository) Upsert(ctx context.Context, in *models.Transaction) (bool, error) {
	var err error

	db := r.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryTransactionUpsert,
		in.Fee,
		in.Amount,
		in.Balance,
		in.InitialBalance,
		in.SenderUserID,
		in.ReceiverUserID,
		in.TransactionDate,
		in.CategoryID,
		in.Reference,
	).Scan(&in.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			// reference already present, load is a no-op
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetByReference implements TransactionRepository.
func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	var err error

	db := r.r.extractTxRead(ctx)

	var trx models.Transaction
	err = db.QueryRowContext(ctx, queryTransactionGetByReference, reference).Scan(
		&trx.ID,
		&trx.Fee,
		&trx.Amount,
		&trx.Balance,
		&trx.InitialBalance,
		&trx.SenderUserID,
		&trx.ReceiverUserID,
		&trx.TransactionDate,
		&trx.CategoryID,
		&trx.Reference,
		&trx.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &trx, nil
}

// CountAll implements TransactionRepository.
func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	db := r.r.extractTxRead(ctx)

	var count int64
	if err := db.QueryRowContext(ctx, queryTransactionCountAll).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

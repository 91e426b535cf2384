package repositories

import (
	"context"
	"database/sql"

	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type CategoryRepository interface {
	GetByTypes(ctx context.Context, transactionType, paymentType string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	// Upsert seeds one category of the closed set. Existing rows are left
	// untouched beyond the conflict no-op.
	Upsert(ctx context.Context, in *models.Category) (*models.Category, error)
}

type categoryRepository sqlRepo

var _ CategoryRepository = (*categoryRepository)(nil)

// GetByTypes implements CategoryRepository.
func (r *categoryRepository) GetByTypes(ctx context.Context, transactionType, paymentType string) (*models.Category, error) {
	var err error

	db := r.r.extractTxRead(ctx)

	var category models.Category
	err = db.QueryRowContext(ctx, queryCategoryGetByTypes, transactionType, paymentType).Scan(
		&category.ID,
		&category.TransactionType,
		&category.PaymentType,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// List implements CategoryRepository.
func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryCategoryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID,
			&category.TransactionType,
			&category.PaymentType,
		); err != nil {
			return nil, err
		}
		result = append(result, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Upsert implements CategoryRepository.
func (r *categoryRepository) Upsert(ctx context.Context, in *models.Category) (*models.Category, error) {
	var err error

	db := r.r.extractTxWrite(ctx)

	var result models.Category
	err = db.QueryRowContext(ctx, queryCategoryUpsert, in.TransactionType, in.PaymentType).Scan(
		&result.ID,
		&result.TransactionType,
		&result.PaymentType,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

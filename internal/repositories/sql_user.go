package repositories

import (
	"context"
	"database/sql"

	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type UserRepository interface {
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	// LookupOrCreate resolves a phone number to a user identity, creating the
	// row if it does not exist yet. It is a single upsert statement backed by
	// the unique constraint on "phoneNumber", so it stays race free under
	// concurrent batch runs and never creates duplicates.
	LookupOrCreate(ctx context.Context, in *models.CreateUserIn) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type userRepository sqlRepo

var _ UserRepository = (*userRepository)(nil)

// GetByPhoneNumber implements UserRepository.
func (r *userRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	var err error

	db := r.r.extractTxRead(ctx)

	var user models.User
	err = db.QueryRowContext(ctx, queryUserGetByPhoneNumber, phoneNumber).Scan(
		&user.ID,
		&user.FullName,
		&user.PhoneNumber,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// LookupOrCreate implements UserRepository.
func (r *userRepository) LookupOrCreate(ctx context.Context, in *models.CreateUserIn) (*models.User, error) {
	var err error

	db := r.r.extractTxWrite(ctx)

	var result models.User
	err = db.QueryRowContext(ctx, queryUserLookupOrCreate, in.FullName, in.PhoneNumber).Scan(
		&result.ID,
		&result.FullName,
		&result.PhoneNumber,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// List implements UserRepository.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryUserList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.FullName,
			&user.PhoneNumber,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

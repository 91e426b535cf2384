package services

import (
	"context"

	"github.com/kwizera-io/go-momo-etl/internal/common"
	"github.com/kwizera-io/go-momo-etl/internal/models"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

type category service

var _ CategoryService = (*category)(nil)

// GetAll implements CategoryService.
func (s *category) GetAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.srv.sqlRepo.GetCategoryRepository().List(ctx)
	if err != nil {
		return nil, common.ErrInternalServerError
	}

	return categories, nil
}

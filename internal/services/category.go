package services

import (
	"context"

	"github.com/GregMSThompson/pocketledger/internal/models"
)

type categoryCSStore interface {
	List(ctx context.Context, kind *string) ([]models.Category, error)
}

type categoryService struct {
	store categoryCSStore
}

func NewCategoryService(store categoryCSStore) *categoryService {
	return &categoryService{store: store}
}

func (s *categoryService) List(ctx context.Context, kind *string) ([]models.Category, error) {
	if kind != nil {
		if err := validateKind(*kind); err != nil {
			return nil, err
		}
	}
	return s.store.List(ctx, kind)
}

package mock

import (
	"context"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of quotes.CategoryService.
type CategoryService struct {
	CreateCategoryFn        func(ctx context.Context, category *quotes.Category) error
	FindPendingCategoriesFn func(ctx context.Context, limit int) ([]*quotes.Category, error)
	MarkCategoryDoneFn      func(ctx context.Context, id string) error
	CountCategoriesFn       func(ctx context.Context, status string) (int64, error)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *quotes.Category) error {
	return s.CreateCategoryFn(ctx, category)
}

func (s *CategoryService) FindPendingCategories(ctx context.Context, limit int) ([]*quotes.Category, error) {
	return s.FindPendingCategoriesFn(ctx, limit)
}

func (s *CategoryService) MarkCategoryDone(ctx context.Context, id string) error {
	return s.MarkCategoryDoneFn(ctx, id)
}

func (s *CategoryService) CountCategories(ctx context.Context, status string) (int64, error) {
	return s.CountCategoriesFn(ctx, status)
}

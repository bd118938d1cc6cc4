package catalog

import (
	"context"
)

// DefaultPageSize matches what the storefront requests per page.
const DefaultPageSize = 5

// MaxPageSize bounds a single page; the admin panel fetches the whole
// catalog with page_size=1000.
const MaxPageSize = 1000

// CategoryCache is an optional read-through cache for the category
// list. Implementations must treat every failure as a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]string, bool)
	Set(ctx context.Context, categories []string)
}

// Service provides catalog read logic.
type Service struct {
	repo  Repository
	cache CategoryCache // nil disables caching
}

// NewService creates a new catalog service.
func NewService(repo Repository, cache CategoryCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns one page of the filtered, sorted catalog. Page and page
// size are coerced into range rather than rejected, so an out-of-range
// request never errors; an offset past the end yields an empty page
// with an accurate total.
func (s *Service) List(ctx context.Context, q Query) (PageResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	books, total, err := s.repo.List(ctx, q)
	if err != nil {
		return PageResult{}, err
	}
	if books == nil {
		books = []Book{}
	}
	return PageResult{
		Books:      books,
		TotalBooks: total,
		PageNumber: q.Page,
		PageSize:   q.PageSize,
	}, nil
}

// Categories returns the distinct category values, from the cache when
// one is wired and warm.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if categories, ok := s.cache.Get(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	if s.cache != nil {
		s.cache.Set(ctx, categories)
	}
	return categories, nil
}

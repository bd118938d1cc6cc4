package admin

import (
	"context"
	"errors"

	"bookstore/internal/catalog"
)

// ErrIDMismatch is returned when the id in the request path does not
// match the id in the payload.
var ErrIDMismatch = errors.New("path and body id mismatch")

// ErrInvalidBook is returned when a payload fails a check the
// validator tags cannot express.
var ErrInvalidBook = errors.New("invalid book")

// CategoryInvalidator drops any cached category list after a mutation.
// A nil invalidator is allowed when no cache is wired.
type CategoryInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service provides the admin CRUD surface over the book repository.
type Service struct {
	repo  catalog.Repository
	cache CategoryInvalidator
}

func NewService(repo catalog.Repository, cache CategoryInvalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// ListAll returns the whole catalog, unfiltered.
func (s *Service) ListAll(ctx context.Context) ([]catalog.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []catalog.Book{}
	}
	return books, nil
}

// Get returns one book or catalog.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (catalog.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a book. Any id in the payload is ignored; the store
// assigns it and the created record is returned.
func (s *Service) Create(ctx context.Context, b catalog.Book) (catalog.Book, error) {
	if b.Price.IsNegative() {
		return catalog.Book{}, ErrInvalidBook
	}
	b.ID = 0
	if err := s.repo.Create(ctx, &b); err != nil {
		return catalog.Book{}, err
	}
	s.invalidate(ctx)
	return b, nil
}

// Update replaces a book in place. The path id must match the payload
// id; a row that vanished between read and write surfaces as not-found.
func (s *Service) Update(ctx context.Context, id int, b catalog.Book) error {
	if id != b.ID {
		return ErrIDMismatch
	}
	if b.Price.IsNegative() {
		return ErrInvalidBook
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a book by id; catalog.ErrNotFound if absent.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

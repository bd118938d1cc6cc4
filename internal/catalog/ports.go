package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns one page of books matching the query plus the total
	// count of the filtered set.
	List(ctx context.Context, q Query) ([]Book, int, error)
	// Categories returns the distinct category values across all books.
	Categories(ctx context.Context) ([]string, error)
	// GetAll returns every book, unfiltered.
	GetAll(ctx context.Context) ([]Book, error)
	// GetByID returns a single book or ErrNotFound.
	GetByID(ctx context.Context, id int) (Book, error)
	// Create inserts a book and fills in its store-assigned ID.
	Create(ctx context.Context, b *Book) error
	// Update replaces every field but the ID; ErrNotFound if the row is gone.
	Update(ctx context.Context, b Book) error
	// Delete removes a book by ID; ErrNotFound if absent.
	Delete(ctx context.Context, id int) error
}

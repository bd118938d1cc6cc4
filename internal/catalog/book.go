package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity.
type Book struct {
	ID             int             `json:"id"`
	Title          string          `json:"title" validate:"required"`
	Author         string          `json:"author" validate:"required"`
	Publisher      string          `json:"publisher" validate:"required"`
	ISBN           string          `json:"isbn" validate:"required,isbn"`
	Classification string          `json:"classification" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	PageCount      int             `json:"page_count" validate:"required,gt=0"`
	Price          decimal.Decimal `json:"price"`
}

// SortField selects the column a listing is ordered by.
type SortField int

const (
	SortByTitle SortField = iota
	SortByAuthor
	SortByPrice
)

// SortDirection is the order applied to the sort field.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// ParseSortField maps a request value to a SortField. Matching is
// case-insensitive and anything unrecognized falls back to title.
func ParseSortField(s string) SortField {
	switch strings.ToLower(s) {
	case "author":
		return SortByAuthor
	case "price":
		return SortByPrice
	default:
		return SortByTitle
	}
}

// ParseSortDirection maps a request value to a SortDirection. Anything
// other than "desc" (case-insensitive) is ascending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, "desc") {
		return SortDesc
	}
	return SortAsc
}

func (f SortField) String() string {
	switch f {
	case SortByAuthor:
		return "author"
	case SortByPrice:
		return "price"
	default:
		return "title"
	}
}

func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// Query defines filter, sort and pagination for listing books.
type Query struct {
	Page      int
	PageSize  int
	Sort      SortField
	Direction SortDirection
	Category  string // empty means no filter
}

// PageResult is one page of the filtered, sorted catalog. TotalBooks
// counts the whole filtered set, not just this page.
type PageResult struct {
	Books      []Book `json:"books"`
	TotalBooks int    `json:"total_books"`
	PageNumber int    `json:"page_number"`
	PageSize   int    `json:"page_size"`
}

// Package cart holds the client-side shopping cart: an in-memory
// mapping from book id to quantity, never persisted server-side.
// Cart is a value type and every mutation returns a new snapshot, so
// two handlers never share a mutable map.
package cart

import (
	"errors"
	"sort"

	"bookstore/internal/catalog"

	"github.com/shopspring/decimal"
)

// ErrInvalidBook is returned when a book without a valid id is added.
var ErrInvalidBook = errors.New("invalid book for cart")

// Item is one cart line: a point-in-time copy of the book as of the
// first add, plus a positive quantity. Later catalog edits do not
// change a line already in the cart.
type Item struct {
	Book     catalog.Book `json:"book"`
	Quantity int          `json:"quantity"`
}

// Cart maps book ids to items. The zero value is an empty, usable cart.
type Cart struct {
	items map[int]Item
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// Add returns a cart with the book added. A repeat add of the same id
// increments the quantity (no upper bound) and keeps the originally
// snapshotted book data. Books without a positive id are rejected and
// the cart is returned unchanged.
func (c Cart) Add(b catalog.Book) (Cart, error) {
	if b.ID <= 0 {
		return c, ErrInvalidBook
	}

	next := c.clone()
	if item, ok := next.items[b.ID]; ok {
		item.Quantity++
		next.items[b.ID] = item
	} else {
		next.items[b.ID] = Item{Book: b, Quantity: 1}
	}
	return next, nil
}

// Remove returns a cart without the given book id. Removing an id that
// is not in the cart is a no-op.
func (c Cart) Remove(bookID int) Cart {
	if _, ok := c.items[bookID]; !ok {
		return c
	}
	next := c.clone()
	delete(next.items, bookID)
	return next
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return New()
}

// Total sums price times quantity over all lines. An empty cart totals
// zero. Totals are always computed, never stored.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		line := item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Items returns the cart lines ordered by book id.
func (c Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Book.ID < out[j].Book.ID
	})
	return out
}

// Len is the number of distinct books in the cart.
func (c Cart) Len() int {
	return len(c.items)
}

// Quantity reports how many of one book are in the cart, zero if absent.
func (c Cart) Quantity(bookID int) int {
	return c.items[bookID].Quantity
}

func (c Cart) clone() Cart {
	items := make(map[int]Item, len(c.items)+1)
	for id, item := range c.items {
		items[id] = item
	}
	return Cart{items: items}
}

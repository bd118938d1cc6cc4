package cart

import (
	"testing"

	"bookstore/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(id int, price string) catalog.Book {
	return catalog.Book{
		ID:             id,
		Title:          "Test Book",
		Author:         "Test Author",
		Publisher:      "Test Publisher",
		ISBN:           "978-0451419439",
		Classification: "Fiction",
		Category:       "Classic",
		PageCount:      100,
		Price:          decimal.RequireFromString(price),
	}
}

func TestCart_AddTwiceSameBook(t *testing.T) {
	b := testBook(1, "9.99")

	c := New()
	c, err := c.Add(b)
	require.NoError(t, err)
	c, err = c.Add(b)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity(1))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("19.98")),
		"total = %s", c.Total())
}

func TestCart_AddDistinctBooks(t *testing.T) {
	c := New()
	c, err := c.Add(testBook(1, "9.99"))
	require.NoError(t, err)
	c, err = c.Add(testBook(2, "5.01"))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("15.00")))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Book.ID)
	assert.Equal(t, 2, items[1].Book.ID)
}

func TestCart_AddInvalidBook(t *testing.T) {
	c := New()
	next, err := c.Add(catalog.Book{})

	assert.ErrorIs(t, err, ErrInvalidBook)
	assert.Equal(t, 0, next.Len())
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c, _ = c.Add(testBook(1, "9.99"))
	c, _ = c.Add(testBook(2, "4.00"))

	c = c.Remove(1)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Quantity(1))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("4.00")))
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	c := New()
	c, _ = c.Add(testBook(1, "9.99"))

	once := c.Remove(1)
	twice := once.Remove(1)

	assert.Equal(t, 0, once.Len())
	assert.Equal(t, 0, twice.Len())
	assert.True(t, twice.Total().IsZero())
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	c := New()
	c, _ = c.Add(testBook(1, "9.99"))

	next := c.Remove(42)
	assert.Equal(t, 1, next.Len())
	assert.Equal(t, 1, next.Quantity(1))
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c, _ = c.Add(testBook(1, "9.99"))
	c, _ = c.Add(testBook(2, "5.00"))

	c = c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())
	assert.True(t, c.Total().IsZero())
}

func TestCart_EmptyTotalIsZero(t *testing.T) {
	assert.True(t, New().Total().IsZero())
}

func TestCart_SnapshotsAreImmutable(t *testing.T) {
	c := New()
	before, err := c.Add(testBook(1, "9.99"))
	require.NoError(t, err)

	after, err := before.Add(testBook(2, "1.00"))
	require.NoError(t, err)

	// The earlier snapshot must not see the later add.
	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, after.Len())
}

func TestCart_KeepsBookAsOfAddTime(t *testing.T) {
	b := testBook(1, "9.99")

	c := New()
	c, _ = c.Add(b)

	// A later catalog edit to the same book does not change the line
	// already in the cart.
	edited := b
	edited.Price = decimal.RequireFromString("99.99")
	c, _ = c.Add(edited)

	assert.Equal(t, 2, c.Quantity(1))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("19.98")))
}

func TestCart_TotalIsPureRead(t *testing.T) {
	c := New()
	c, _ = c.Add(testBook(1, "2.50"))
	_ = c.Total()
	_ = c.Total()

	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("2.50")))
}

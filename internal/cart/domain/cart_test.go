package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(name, size string, amount int64, qty int32) LineItem {
	return LineItem{
		ProductID: "p-" + name,
		Name:      name,
		Size:      size,
		UnitPrice: Money{Currency: "PKR", Amount: amount},
		Quantity:  qty,
	}
}

func TestAddDoesNotMergeDuplicateLines(t *testing.T) {
	c := New()
	c.Add(line("Red Tee", "M", 50000, 1))
	c.Add(line("Red Tee", "M", 50000, 1))

	require.Equal(t, 2, c.Len(), "same product+size must stay two separate lines")
	assert.Equal(t, int64(100000), c.Total().Amount)
}

func TestAddFloorsQuantityAtOne(t *testing.T) {
	c := New()
	c.Add(line("Red Tee", "M", 50000, 0))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int32(1), items[0].Quantity)
}

func TestTotal(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		c := New()
		assert.Equal(t, Money{}, c.Total())
	})

	t.Run("matches independent recomputation", func(t *testing.T) {
		c := New()
		c.Add(line("Red Tee", "M", 50000, 2))
		c.Add(line("Blue Tee", "L", 75050, 3))
		c.Add(line("Black Tee", "S", 49999, 1))

		var want int64
		for _, li := range c.Items() {
			want += li.UnitPrice.Amount * int64(li.Quantity)
		}

		got := c.Total()
		assert.Equal(t, want, got.Amount)
		assert.Equal(t, "PKR", got.Currency)
	})
}

func TestIncrement(t *testing.T) {
	c := New()
	c.Add(line("Red Tee", "M", 50000, 1))

	require.NoError(t, c.Increment(0))
	assert.Equal(t, int32(2), c.Items()[0].Quantity)

	assert.ErrorIs(t, c.Increment(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Increment(-1), ErrIndexOutOfRange)
}

func TestDecrementFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(line("Red Tee", "M", 50000, 2))

	require.NoError(t, c.Decrement(0))
	assert.Equal(t, int32(1), c.Items()[0].Quantity)

	// Repeated decrements at quantity 1 are no-ops, never removals.
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Decrement(0))
	}
	assert.Equal(t, int32(1), c.Items()[0].Quantity)
	assert.Equal(t, 1, c.Len())

	assert.ErrorIs(t, c.Decrement(5), ErrIndexOutOfRange)
}

func TestRemovePreservesOrderOfOtherLines(t *testing.T) {
	c := New()
	c.Add(line("A", "S", 100, 1))
	c.Add(line("B", "M", 200, 1))
	c.Add(line("C", "L", 300, 1))

	require.NoError(t, c.Remove(1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "C", items[1].Name)

	assert.ErrorIs(t, c.Remove(2), ErrIndexOutOfRange)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(line("A", "S", 100, 1))
	c.Add(line("B", "M", 200, 1))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Money{}, c.Total())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(line("Red Tee", "M", 50000, 1))

	items := c.Items()
	items[0].Quantity = 99
	items[0].Name = "mutated"

	got := c.Items()
	assert.Equal(t, int32(1), got[0].Quantity)
	assert.Equal(t, "Red Tee", got[0].Name)
}

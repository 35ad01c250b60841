package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_DecrStock(t *testing.T) {
	t.Run("removes units", func(t *testing.T) {
		b := &Book{Stock: 5}
		require.NoError(t, b.DecrStock(2))
		assert.Equal(t, 3, b.Stock)
	})

	t.Run("stock cannot go negative", func(t *testing.T) {
		b := &Book{Stock: 1}
		require.ErrorIs(t, b.DecrStock(2), ErrOutOfStock)
		assert.Equal(t, 1, b.Stock, "failed decrement must not change stock")
	})

	t.Run("zero stock", func(t *testing.T) {
		b := &Book{Stock: 0}
		require.ErrorIs(t, b.DecrStock(1), ErrOutOfStock)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		b := &Book{Stock: 5}
		assert.ErrorIs(t, b.DecrStock(0), ErrInvalidQuantity)
		assert.ErrorIs(t, b.DecrStock(-1), ErrInvalidQuantity)
	})
}

func TestBook_IncrStock(t *testing.T) {
	b := &Book{Stock: 0}
	require.NoError(t, b.IncrStock(3))
	assert.Equal(t, 3, b.Stock)
	assert.ErrorIs(t, b.IncrStock(0), ErrInvalidQuantity)
}

func TestBook_InStock(t *testing.T) {
	assert.True(t, (&Book{Stock: 1}).InStock())
	assert.False(t, (&Book{Stock: 0}).InStock())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %s", c)
	}

	assert.False(t, Category("WESTERN").Valid())
	assert.False(t, Category("fiction").Valid(), "comparison is case-sensitive")
	assert.False(t, Category("").Valid())
}

func TestCategories_IncludesNonFiction(t *testing.T) {
	assert.Contains(t, Categories(), CategoryNonFiction)
	assert.Equal(t, "NON_FICTION", string(CategoryNonFiction))
}

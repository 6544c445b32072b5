package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

func TestAddCategory(t *testing.T) {
	l := New()

	food, err := l.AddCategory("Food")
	require.NoError(t, err)
	assert.Equal(t, int32(1), food.ID)
	assert.Equal(t, "Food", food.Name)

	rent, err := l.AddCategory("Rent")
	require.NoError(t, err)
	assert.Equal(t, int32(2), rent.ID, "ids are assigned monotonically")

	_, err = l.AddCategory("")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Len(t, l.Categories(), 2, "failed add must not change state")
}

func TestAddCategoryTruncatesLongName(t *testing.T) {
	l := New()

	c, err := l.AddCategory(strings.Repeat("x", 100))
	require.NoError(t, err)
	assert.Len(t, c.Name, model.MaxCategoryName)
}

func TestRenameCategory(t *testing.T) {
	l := New()
	c, err := l.AddCategory("Food")
	require.NoError(t, err)

	require.NoError(t, l.RenameCategory(c.ID, "Groceries"))
	got, ok := l.CategoryByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Groceries", got.Name)

	err = l.RenameCategory(99, "Nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = l.RenameCategory(c.ID, "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRemoveCategory(t *testing.T) {
	l := New()
	food, err := l.AddCategory("Food")
	require.NoError(t, err)
	rent, err := l.AddCategory("Rent")
	require.NoError(t, err)

	_, err = l.AddTransaction("2024-03-15", model.TypeExpense, decimal.NewFromInt(10), food.ID, "lunch")
	require.NoError(t, err)

	// Referenced category cannot be deleted.
	err = l.RemoveCategory(food.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrCategoryInUse))
	_, ok := l.CategoryByID(food.ID)
	assert.True(t, ok, "blocked delete must be a no-op")

	// Unreferenced category deletes fine and lookups then miss.
	require.NoError(t, l.RemoveCategory(rent.ID))
	_, ok = l.CategoryByID(rent.ID)
	assert.False(t, ok)

	err = l.RemoveCategory(rent.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCategoryByName(t *testing.T) {
	l := New()
	c, err := l.AddCategory("Food")
	require.NoError(t, err)

	got, ok := l.CategoryByName("fOOd")
	require.True(t, ok, "name match is case-insensitive")
	assert.Equal(t, c.ID, got.ID)

	_, ok = l.CategoryByName("Foo")
	assert.False(t, ok, "match is exact, not substring")
}

func TestCategoryName(t *testing.T) {
	l := New()
	c, err := l.AddCategory("Food")
	require.NoError(t, err)

	assert.Equal(t, "Food", l.CategoryName(c.ID))
	assert.Equal(t, model.UnknownCategoryName, l.CategoryName(42))
}

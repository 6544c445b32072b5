package ledger

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// AddCategory creates a new category and returns it. The name is required
// and is truncated to the fixed-width field size.
func (l *Ledger) AddCategory(name string) (model.Category, error) {
	if name == "" {
		return model.Category{}, fmt.Errorf("category name: %w", ErrEmptyName)
	}

	c := model.Category{
		ID:   l.nextCategoryID,
		Name: truncate(name, model.MaxCategoryName),
	}
	l.nextCategoryID++
	l.categories = append(l.categories, c)
	return c, nil
}

// RenameCategory changes the name of an existing category.
func (l *Ledger) RenameCategory(id int32, name string) error {
	if name == "" {
		return fmt.Errorf("category name: %w", ErrEmptyName)
	}
	i := l.categoryIndex(id)
	if i < 0 {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	l.categories[i].Name = truncate(name, model.MaxCategoryName)
	return nil
}

// RemoveCategory deletes a category. It fails if any transaction still
// references the category; the referential check is the only cross-store
// dependency the category collection has.
func (l *Ledger) RemoveCategory(id int32) error {
	i := l.categoryIndex(id)
	if i < 0 {
		return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	for _, t := range l.transactions {
		if t.CategoryID == id {
			return fmt.Errorf("category %d: %w", id, common.ErrCategoryInUse)
		}
	}
	l.categories = swapDelete(l.categories, i)
	return nil
}

// Categories returns all categories in storage order.
func (l *Ledger) Categories() []model.Category {
	out := make([]model.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// CategoryByID looks up a category by id.
func (l *Ledger) CategoryByID(id int32) (model.Category, bool) {
	i := l.categoryIndex(id)
	if i < 0 {
		return model.Category{}, false
	}
	return l.categories[i], true
}

// CategoryByName looks up a category by case-insensitive exact name match.
func (l *Ledger) CategoryByName(name string) (model.Category, bool) {
	for _, c := range l.categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}

// CategoryName resolves a category id to its name for display, falling back
// to the UNKNOWN marker when the id does not resolve.
func (l *Ledger) CategoryName(id int32) string {
	if c, ok := l.CategoryByID(id); ok {
		return c.Name
	}
	return model.UnknownCategoryName
}

func (l *Ledger) categoryIndex(id int32) int {
	for i, c := range l.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

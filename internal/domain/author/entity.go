package author

import (
	"time"

	"github.com/fictus/bookstore/internal/domain/book"
)

// Author is the aggregate root for the people behind the catalog. Name is
// unique; Categories records which genres the author writes in. Books are
// not embedded here: the catalog repository resolves them by author id.
type Author struct {
	ID         uint
	Name       string
	Birth      time.Time
	Categories []book.Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAuthor creates an author aggregate.
func NewAuthor(name string, birth time.Time, categories []book.Category) *Author {
	now := time.Now()
	return &Author{
		Name:       name,
		Birth:      birth,
		Categories: categories,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

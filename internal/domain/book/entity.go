package book

import (
	"time"
)

// Category is the closed set of book categories. Values match the GraphQL
// enum exposed by the API; filtering compares variants, never raw strings
// from the caller.
type Category string

const (
	CategoryTerror     Category = "TERROR"
	CategoryComedy     Category = "COMEDY"
	CategoryRomance    Category = "ROMANCE"
	CategoryNonFiction Category = "NON_FICTION"
	CategoryFiction    Category = "FICTION"
	CategoryChildren   Category = "CHILDREN"
	CategoryAction     Category = "ACTION"
	CategoryUnknown    Category = "UNKNOWN"
)

// Categories lists every valid category, in declaration order.
func Categories() []Category {
	return []Category{
		CategoryTerror,
		CategoryComedy,
		CategoryRomance,
		CategoryNonFiction,
		CategoryFiction,
		CategoryChildren,
		CategoryAction,
		CategoryUnknown,
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTerror, CategoryComedy, CategoryRomance, CategoryNonFiction,
		CategoryFiction, CategoryChildren, CategoryAction, CategoryUnknown:
		return true
	}
	return false
}

// Book is the catalog aggregate root.
// Price is stored in cents (int64) to avoid float drift; the interface layer
// converts to currency units. Title is unique, enforced by the database.
// Stock is never negative.
type Book struct {
	ID            uint
	Title         string
	PublishedDate string
	Category      Category
	Stock         int
	Price         int64 // cents
	Introduction  string
	Tags          []string
	AuthorID      uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook creates a book aggregate. Callers validate price/stock beforehand
// via the domain service.
func NewBook(title, publishedDate string, category Category, stock int, price int64, introduction string, tags []string, authorID uint) *Book {
	now := time.Now()
	return &Book{
		Title:         title,
		PublishedDate: publishedDate,
		Category:      category,
		Stock:         stock,
		Price:         price,
		Introduction:  introduction,
		Tags:          tags,
		AuthorID:      authorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DecrStock removes quantity units from stock. Stock must stay non-negative.
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrOutOfStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock adds quantity units to stock (restock, cancelled purchase).
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// InStock reports whether at least one unit is available.
func (b *Book) InStock() bool {
	return b.Stock > 0
}

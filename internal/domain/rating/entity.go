package rating

import (
	"time"
)

// Rating is a user's score for a book, at most one per (user, book) pair.
type Rating struct {
	ID        uint
	Value     float64
	Review    string
	UserID    uint
	BookID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRating creates a rating.
func NewRating(userID, bookID uint, value float64, review string) *Rating {
	return &Rating{
		Value:  value,
		Review: review,
		UserID: userID,
		BookID: bookID,
	}
}

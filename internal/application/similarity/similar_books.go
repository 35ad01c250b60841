// Package similarity ranks books by textual overlap of their introductions.
package similarity

import (
	"context"
	"sort"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/pkg/logger"
	"github.com/fictus/bookstore/pkg/metrics"
	"github.com/fictus/bookstore/pkg/similarity"
	"github.com/fictus/bookstore/pkg/tracing"
)

// DefaultTopN is the result length when the caller does not ask for one.
const DefaultTopN = 3

// Cache stores ranked similar-book id lists keyed by reference book. A nil
// Cache disables caching.
type Cache interface {
	// Get returns the cached ids, or ok=false on a miss.
	Get(ctx context.Context, bookID uint, topN int) ([]uint, bool, error)
	Set(ctx context.Context, bookID uint, topN int, ids []uint) error
	// Invalidate drops every cached list; called when the catalog changes.
	Invalidate(ctx context.Context) error
}

// FindSimilarUseCase ranks same-category books against a reference book.
type FindSimilarUseCase struct {
	bookRepo book.Repository
	cache    Cache // optional
}

// NewFindSimilarUseCase creates the similarity use case. cache may be nil.
func NewFindSimilarUseCase(bookRepo book.Repository, cache Cache) *FindSimilarUseCase {
	return &FindSimilarUseCase{
		bookRepo: bookRepo,
		cache:    cache,
	}
}

// Execute returns up to topN books from the reference book's category, ordered
// by descending bigram overlap of the introductions. The reference book is
// never part of the result. Ties keep the candidates' id order. topN <= 0
// falls back to DefaultTopN.
func (uc *FindSimilarUseCase) Execute(ctx context.Context, bookID uint, topN int) ([]*book.Book, error) {
	ctx, span := tracing.Start(ctx, "similarity.Execute")
	defer span.End()

	if topN <= 0 {
		topN = DefaultTopN
	}

	if uc.cache != nil {
		ids, ok, err := uc.cache.Get(ctx, bookID, topN)
		if err != nil {
			logger.L.Warnw("similarity cache read failed", "book_id", bookID, "error", err)
		} else if ok {
			books, err := uc.loadByIDs(ctx, ids)
			if err == nil {
				metrics.SimilarityQueries.WithLabelValues("hit").Inc()
				return books, nil
			}
			logger.L.Warnw("similarity cache stale", "book_id", bookID, "error", err)
		}
	}
	metrics.SimilarityQueries.WithLabelValues("miss").Inc()

	ref, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	// Candidates arrive in id order; the stable sort preserves it on ties.
	candidates, err := uc.bookRepo.FindByCategory(ctx, ref.Category)
	if err != nil {
		return nil, err
	}

	type scored struct {
		book  *book.Book
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == ref.ID {
			continue
		}
		ranked = append(ranked, scored{
			book:  c,
			score: similarity.Dice(ref.Introduction, c.Introduction),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	books := make([]*book.Book, len(ranked))
	ids := make([]uint, len(ranked))
	for i, r := range ranked {
		books[i] = r.book
		ids[i] = r.book.ID
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, bookID, topN, ids); err != nil {
			logger.L.Warnw("similarity cache write failed", "book_id", bookID, "error", err)
		}
	}

	return books, nil
}

func (uc *FindSimilarUseCase) loadByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(ids))
	for _, id := range ids {
		b, err := uc.bookRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

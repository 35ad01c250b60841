package similarity

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fictus/bookstore/internal/domain/book"
)

type stubBookRepo struct {
	books map[uint]*book.Book
}

func (r *stubBookRepo) Create(ctx context.Context, bk *book.Book) error { return nil }

func (r *stubBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	bk, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return bk, nil
}

func (r *stubBookRepo) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (r *stubBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, bk := range r.books {
		out = append(out, bk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubBookRepo) FindByCategory(ctx context.Context, category book.Category) ([]*book.Book, error) {
	all, _ := r.FindAll(ctx)
	var out []*book.Book
	for _, bk := range all {
		if bk.Category == category {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *stubBookRepo) FindByAuthorID(ctx context.Context, authorID uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *stubBookRepo) FindByBuyerID(ctx context.Context, buyerID uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *stubBookRepo) Update(ctx context.Context, bk *book.Book) error  { return nil }
func (r *stubBookRepo) Delete(ctx context.Context, id uint) error        { return nil }
func (r *stubBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}
func (r *stubBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error { return nil }

// mapCache is an in-memory Cache keyed by bookID/topN.
type mapCache struct {
	entries map[string][]uint
	gets    int
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]uint)}
}

func (c *mapCache) key(bookID uint, topN int) string {
	return fmt.Sprintf("%d:%d", bookID, topN)
}

func (c *mapCache) Get(ctx context.Context, bookID uint, topN int) ([]uint, bool, error) {
	c.gets++
	ids, ok := c.entries[c.key(bookID, topN)]
	return ids, ok, nil
}

func (c *mapCache) Set(ctx context.Context, bookID uint, topN int, ids []uint) error {
	c.sets++
	c.entries[c.key(bookID, topN)] = ids
	return nil
}

func (c *mapCache) Invalidate(ctx context.Context) error {
	c.entries = make(map[string][]uint)
	return nil
}

func fictionBook(id uint, intro string) *book.Book {
	return &book.Book{
		ID:           id,
		Title:        fmt.Sprintf("Book %d", id),
		Category:     book.CategoryFiction,
		Introduction: intro,
	}
}

func resultIDs(books []*book.Book) []uint {
	ids := make([]uint, len(books))
	for i, bk := range books {
		ids[i] = bk.ID
	}
	return ids
}

func TestFindSimilar_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks by bigram overlap, best first", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "stranger things"),
			2: fictionBook(2, "stranger rings"),
			3: fictionBook(3, "strange tides"),
			4: fictionBook(4, "zzzz"),
		}}

		uc := NewFindSimilarUseCase(repo, nil)
		got, err := uc.Execute(ctx, 1, 0)
		require.NoError(t, err)

		assert.Equal(t, []uint{2, 3, 4}, resultIDs(got))
	})

	t.Run("excludes the reference book", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "same text"),
			2: fictionBook(2, "same text"),
		}}

		uc := NewFindSimilarUseCase(repo, nil)
		got, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, []uint{2}, resultIDs(got))
	})

	t.Run("only considers the reference book's category", func(t *testing.T) {
		other := fictionBook(3, "identical words")
		other.Category = book.CategoryTerror
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "identical words"),
			2: fictionBook(2, "nothing alike"),
			3: other,
		}}

		uc := NewFindSimilarUseCase(repo, nil)
		got, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, []uint{2}, resultIDs(got))
	})

	t.Run("ties keep id order", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "abcd"),
			2: fictionBook(2, "wxyz"),
			3: fictionBook(3, "wxyz"),
			4: fictionBook(4, "wxyz"),
		}}

		uc := NewFindSimilarUseCase(repo, nil)
		got, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, []uint{2, 3, 4}, resultIDs(got))
	})

	t.Run("truncates to topN", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "aaaa"),
			2: fictionBook(2, "bbbb"),
			3: fictionBook(3, "cccc"),
			4: fictionBook(4, "dddd"),
			5: fictionBook(5, "eeee"),
		}}

		uc := NewFindSimilarUseCase(repo, nil)

		got, err := uc.Execute(ctx, 1, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = uc.Execute(ctx, 1, 0)
		require.NoError(t, err)
		assert.Len(t, got, DefaultTopN, "topN <= 0 falls back to the default")
	})

	t.Run("fewer candidates than topN returns them all", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "aaaa"),
			2: fictionBook(2, "bbbb"),
		}}

		uc := NewFindSimilarUseCase(repo, nil)
		got, err := uc.Execute(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, []uint{2}, resultIDs(got))
	})

	t.Run("unknown reference book", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{}}

		uc := NewFindSimilarUseCase(repo, nil)
		_, err := uc.Execute(ctx, 42, 3)
		require.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestFindSimilar_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "stranger things"),
			2: fictionBook(2, "stranger rings"),
			3: fictionBook(3, "zzzz"),
		}}
		cache := newMapCache()

		uc := NewFindSimilarUseCase(repo, cache)

		first, err := uc.Execute(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		second, err := uc.Execute(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, resultIDs(first), resultIDs(second))
		assert.Equal(t, 1, cache.sets, "hit must not rewrite the cache")
	})

	t.Run("distinct topN values cache independently", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "aaaa"),
			2: fictionBook(2, "bbbb"),
			3: fictionBook(3, "cccc"),
		}}
		cache := newMapCache()

		uc := NewFindSimilarUseCase(repo, cache)

		got, err := uc.Execute(ctx, 1, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)

		got, err = uc.Execute(ctx, 1, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, cache.sets)
	})

	t.Run("stale cached ids fall back to recompute", func(t *testing.T) {
		repo := &stubBookRepo{books: map[uint]*book.Book{
			1: fictionBook(1, "aaaa"),
			2: fictionBook(2, "bbbb"),
		}}
		cache := newMapCache()
		// Cache points at a book that no longer exists.
		cache.entries[cache.key(1, 3)] = []uint{99}

		uc := NewFindSimilarUseCase(repo, cache)
		got, err := uc.Execute(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, []uint{2}, resultIDs(got))
	})
}

package rating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRatingRepo struct {
	ratings map[uint]*Rating
	nextID  uint
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{ratings: make(map[uint]*Rating), nextID: 1}
}

func (r *memRatingRepo) Create(ctx context.Context, rt *Rating) error {
	rt.ID = r.nextID
	r.nextID++
	r.ratings[rt.ID] = rt
	return nil
}

func (r *memRatingRepo) FindByID(ctx context.Context, id uint) (*Rating, error) {
	rt, ok := r.ratings[id]
	if !ok {
		return nil, ErrRatingNotFound
	}
	return rt, nil
}

func (r *memRatingRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Rating, error) {
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.BookID == bookID {
			return rt, nil
		}
	}
	return nil, ErrRatingNotFound
}

func (r *memRatingRepo) FindByBookID(ctx context.Context, bookID uint) ([]*Rating, error) {
	var out []*Rating
	for _, rt := range r.ratings {
		if rt.BookID == bookID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memRatingRepo) Update(ctx context.Context, rt *Rating) error {
	if _, ok := r.ratings[rt.ID]; !ok {
		return ErrRatingNotFound
	}
	r.ratings[rt.ID] = rt
	return nil
}

func (r *memRatingRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.ratings[id]; !ok {
		return ErrRatingNotFound
	}
	delete(r.ratings, id)
	return nil
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("records a rating", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		r, err := svc.Create(ctx, 1, 10, 4.5, "gripping")
		require.NoError(t, err)
		assert.NotZero(t, r.ID)
		assert.Equal(t, 4.5, r.Value)
		assert.Equal(t, "gripping", r.Review)
	})

	t.Run("one rating per user and book", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		_, err := svc.Create(ctx, 1, 10, 4, "")
		require.NoError(t, err)

		_, err = svc.Create(ctx, 1, 10, 5, "")
		require.ErrorIs(t, err, ErrAlreadyRated)
	})

	t.Run("same user may rate another book", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		_, err := svc.Create(ctx, 1, 10, 4, "")
		require.NoError(t, err)
		_, err = svc.Create(ctx, 1, 11, 2, "")
		require.NoError(t, err)
	})

	t.Run("value bounds", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		for _, v := range []float64{0, 0.99, 5.01, -1} {
			_, err := svc.Create(ctx, 1, 10, v, "")
			assert.ErrorIs(t, err, ErrInvalidValue, "value %v", v)
		}
		for _, v := range []float64{1, 3.5, 5} {
			_, err := svc.Create(ctx, 1, uint(v*10), v, "")
			assert.NoError(t, err, "value %v", v)
		}
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the value", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		_, err := svc.Create(ctx, 1, 10, 2, "meh")
		require.NoError(t, err)

		r, err := svc.Update(ctx, 1, 10, 5, "grew on me")
		require.NoError(t, err)
		assert.Equal(t, 5.0, r.Value)
		assert.Equal(t, "grew on me", r.Review)
	})

	t.Run("empty review keeps the stored one", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		_, err := svc.Create(ctx, 1, 10, 2, "meh")
		require.NoError(t, err)

		r, err := svc.Update(ctx, 1, 10, 4, "")
		require.NoError(t, err)
		assert.Equal(t, "meh", r.Review)
	})

	t.Run("updating a missing rating", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		_, err := svc.Update(ctx, 1, 10, 4, "")
		require.ErrorIs(t, err, ErrRatingNotFound)
	})
}

func TestService_AverageRating(t *testing.T) {
	ctx := context.Background()

	t.Run("mean rounded to two decimals", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		require.NoError(t, seedRating(ctx, svc, 1, 10, 5))
		require.NoError(t, seedRating(ctx, svc, 2, 10, 4))
		require.NoError(t, seedRating(ctx, svc, 3, 10, 4))

		avg, err := svc.AverageRating(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 4.33, avg) // 13/3 = 4.333...
	})

	t.Run("no ratings yields zero", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		avg, err := svc.AverageRating(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("other books do not count", func(t *testing.T) {
		svc := NewService(newMemRatingRepo())
		require.NoError(t, seedRating(ctx, svc, 1, 10, 5))
		require.NoError(t, seedRating(ctx, svc, 1, 11, 1))

		avg, err := svc.AverageRating(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 5.0, avg)
	})
}

func seedRating(ctx context.Context, svc Service, userID, bookID uint, value float64) error {
	_, err := svc.Create(ctx, userID, bookID, value, "")
	return err
}

package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/pkg/mq"
)

func newPurchaseFixture() (*memStore, *memTxManager, *memBuyerRepo, *memBookRepo) {
	store := newMemStore()
	return store, &memTxManager{store: store}, &memBuyerRepo{store: store}, &memBookRepo{store: store}
}

func seedBuyer(store *memStore, id uint, walletCents int64) {
	store.buyers[id] = &buyer.Buyer{
		ID:           id,
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@example.com",
		Birth:        time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Wallet:       walletCents,
		UserID:       id + 100,
	}
}

func seedBook(store *memStore, id uint, title string, stock int, priceCents int64) {
	store.books[id] = &book.Book{
		ID:       id,
		Title:    title,
		Category: book.CategoryFiction,
		Stock:    stock,
		Price:    priceCents,
		AuthorID: 1,
	}
}

func TestPurchase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("debits wallet, decrements stock and records ownership", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1500)          // wallet 15.00
		seedBook(store, 10, "It", 5, 1000) // price 10.00

		uc := NewUseCase(buyers, books, tx, nil)
		updated, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(500), updated.Wallet, "returned buyer carries the post-purchase balance")
		assert.Equal(t, int64(500), store.buyers[1].Wallet)
		assert.Equal(t, 4, store.books[10].Stock)
		require.Len(t, store.purchases, 1)
		assert.Equal(t, purchaseRow{buyerID: 1, bookID: 10}, store.purchases[0])
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("repeat purchase of the same book appends a second row", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 5000)
		seedBook(store, 10, "Dune", 3, 1000)

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)
		_, err = uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Len(t, store.purchases, 2)
		assert.Equal(t, 1, store.books[10].Stock)
		assert.Equal(t, int64(3000), store.buyers[1].Wallet)
	})

	t.Run("out of stock leaves wallet and ownership untouched", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1500)
		seedBook(store, 10, "It", 0, 1000)

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 1, 10)
		require.ErrorIs(t, err, book.ErrOutOfStock)

		assert.Equal(t, int64(1500), store.buyers[1].Wallet)
		assert.Equal(t, 0, store.books[10].Stock)
		assert.Empty(t, store.purchases)
	})

	t.Run("insufficient funds leaves stock untouched", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 999) // price is 10.00
		seedBook(store, 10, "It", 5, 1000)

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 1, 10)
		require.ErrorIs(t, err, buyer.ErrInsufficientFunds)

		assert.Equal(t, int64(999), store.buyers[1].Wallet)
		assert.Equal(t, 5, store.books[10].Stock)
		assert.Empty(t, store.purchases)
	})

	t.Run("exact balance drains the wallet to zero", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1000)
		seedBook(store, 10, "It", 1, 1000)

		uc := NewUseCase(buyers, books, tx, nil)
		updated, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(0), updated.Wallet)
		assert.Equal(t, 0, store.books[10].Stock)
	})

	t.Run("unknown buyer", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBook(store, 10, "It", 5, 1000)

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 99, 10)
		require.ErrorIs(t, err, buyer.ErrBuyerNotFound)
		assert.Equal(t, 5, store.books[10].Stock)
	})

	t.Run("unknown book", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1500)

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 1, 99)
		require.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Equal(t, int64(1500), store.buyers[1].Wallet)
	})

	t.Run("missing buyer reported before missing book", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		_ = store

		uc := NewUseCase(buyers, books, tx, nil)
		_, err := uc.Execute(ctx, 99, 99)
		require.ErrorIs(t, err, buyer.ErrBuyerNotFound)
	})
}

func TestPurchase_Execute_PublishesEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("emits purchase.completed after commit", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1500)
		seedBook(store, 10, "It", 5, 1000)
		pub := &capturingPublisher{}

		uc := NewUseCase(buyers, books, tx, pub)
		_, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)

		require.Len(t, pub.keys, 1)
		assert.Equal(t, "purchase.completed", pub.keys[0])
		event, ok := pub.payloads[0].(mq.PurchaseCompletedEvent)
		require.True(t, ok)
		assert.Equal(t, uint(1), event.BuyerID)
		assert.Equal(t, uint(10), event.BookID)
		assert.Equal(t, "It", event.Title)
		assert.Equal(t, int64(1000), event.PriceCents)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("broker failure does not fail the purchase", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 1500)
		seedBook(store, 10, "It", 5, 1000)
		pub := &capturingPublisher{err: assert.AnError}

		uc := NewUseCase(buyers, books, tx, pub)
		updated, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(500), updated.Wallet)
	})

	t.Run("no event on failed purchase", func(t *testing.T) {
		store, tx, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 100)
		seedBook(store, 10, "It", 5, 1000)
		pub := &capturingPublisher{}

		uc := NewUseCase(buyers, books, tx, pub)
		_, err := uc.Execute(ctx, 1, 10)
		require.Error(t, err)
		assert.Empty(t, pub.keys)
	})
}

func TestWishlist_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adds book once", func(t *testing.T) {
		store, _, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 0)
		seedBook(store, 10, "It", 5, 1000)

		uc := NewWishlistUseCase(buyers, books)
		b, err := uc.Execute(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint(1), b.ID)

		_, err = uc.Execute(ctx, 1, 10)
		require.NoError(t, err, "re-wishlisting is a no-op")

		ids, err := buyers.FindWishlist(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []uint{10}, ids)
	})

	t.Run("unknown buyer", func(t *testing.T) {
		store, _, buyers, books := newPurchaseFixture()
		seedBook(store, 10, "It", 5, 1000)

		uc := NewWishlistUseCase(buyers, books)
		_, err := uc.Execute(ctx, 99, 10)
		require.ErrorIs(t, err, buyer.ErrBuyerNotFound)
	})

	t.Run("unknown book", func(t *testing.T) {
		store, _, buyers, books := newPurchaseFixture()
		seedBuyer(store, 1, 0)

		uc := NewWishlistUseCase(buyers, books)
		_, err := uc.Execute(ctx, 1, 99)
		require.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

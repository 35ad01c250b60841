// Package purchase implements the purchase transaction: debit the buyer's
// wallet, decrement the book's stock and record ownership, atomically.
package purchase

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/pkg/logger"
	"github.com/fictus/bookstore/pkg/metrics"
	"github.com/fictus/bookstore/pkg/mq"
	"github.com/fictus/bookstore/pkg/tracing"
)

// TxManager runs fn inside a storage transaction. Repository calls made with
// the context passed to fn join that transaction.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits domain events after a purchase commits.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// UseCase executes purchases.
type UseCase struct {
	buyerRepo buyer.Repository
	bookRepo  book.Repository
	txManager TxManager
	events    EventPublisher // optional
}

// NewUseCase creates the purchase use case. events may be nil when no broker
// is configured.
func NewUseCase(buyerRepo buyer.Repository, bookRepo book.Repository, txManager TxManager, events EventPublisher) *UseCase {
	return &UseCase{
		buyerRepo: buyerRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		events:    events,
	}
}

// Execute buys one copy of the book for the buyer. Both rows are locked for
// the duration of the transaction so concurrent purchases of the last copy
// serialize: the first commits, the rest observe stock 0 and fail. On any
// error nothing is persisted.
//
// Preconditions are checked in a fixed order: buyer exists, book exists, book
// in stock, wallet covers the price.
func (uc *UseCase) Execute(ctx context.Context, buyerID, bookID uint) (*buyer.Buyer, error) {
	ctx, span := tracing.Start(ctx, "purchase.Execute")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("buyer.id", int64(buyerID)),
		attribute.Int64("book.id", int64(bookID)),
	)

	var (
		updated   *buyer.Buyer
		purchased *book.Book
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// SELECT FOR UPDATE on both rows. Lock order is fixed (buyer
		// then book) so concurrent purchases cannot deadlock.
		b, err := uc.buyerRepo.LockByID(txCtx, buyerID)
		if err != nil {
			return err
		}

		bk, err := uc.bookRepo.LockByID(txCtx, bookID)
		if err != nil {
			return err
		}

		// Domain checks run against the locked rows.
		if err := bk.DecrStock(1); err != nil {
			return err
		}
		if err := b.Debit(bk.Price); err != nil {
			return err
		}

		// The guarded updates re-assert the invariants at the storage
		// level: stock and wallet can never go negative even if a
		// future caller skips the checks above.
		if err := uc.bookRepo.UpdateStock(txCtx, bookID, -1); err != nil {
			return err
		}
		if err := uc.buyerRepo.UpdateWallet(txCtx, buyerID, -bk.Price); err != nil {
			return err
		}
		if err := uc.buyerRepo.AddPurchasedBook(txCtx, buyerID, bookID); err != nil {
			return err
		}

		updated = b
		purchased = bk
		return nil
	})
	if err != nil {
		metrics.Purchases.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}

	metrics.Purchases.WithLabelValues("completed").Inc()
	metrics.PurchaseAmount.Observe(float64(purchased.Price) / 100.0)

	logger.L.Infow("purchase completed",
		"buyer_id", buyerID,
		"book_id", bookID,
		"title", purchased.Title,
		"price_cents", purchased.Price,
		"wallet_cents", updated.Wallet,
	)

	uc.publishCompleted(ctx, buyerID, purchased)

	return updated, nil
}

func (uc *UseCase) publishCompleted(ctx context.Context, buyerID uint, bk *book.Book) {
	if uc.events == nil {
		return
	}
	event := mq.PurchaseCompletedEvent{
		BuyerID:    buyerID,
		BookID:     bk.ID,
		Title:      bk.Title,
		PriceCents: bk.Price,
		OccurredAt: time.Now(),
	}
	// The purchase already committed; a broker outage must not fail it.
	if err := uc.events.Publish(ctx, "purchase.completed", event); err != nil {
		logger.L.Warnw("failed to publish purchase event", "book_id", bk.ID, "error", err)
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, book.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, buyer.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, buyer.ErrBuyerNotFound), errors.Is(err, book.ErrBookNotFound):
		return "not_found"
	default:
		return "error"
	}
}

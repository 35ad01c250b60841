package mysql

import (
	"context"

	"gorm.io/gorm"
)

type ctxKey int

// txKey carries the transaction DB through the context.
const txKey ctxKey = 0

// TxManager wraps GORM transactions. All repository calls made with the
// context passed to fn run in the same transaction; fn returning an error
// rolls it back, nil commits.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction executes fn inside a transaction.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

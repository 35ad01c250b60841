package buyer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyer_Debit(t *testing.T) {
	t.Run("withdraws cents", func(t *testing.T) {
		b := &Buyer{Wallet: 1500}
		require.NoError(t, b.Debit(1000))
		assert.Equal(t, int64(500), b.Wallet)
	})

	t.Run("exact balance is allowed", func(t *testing.T) {
		b := &Buyer{Wallet: 1000}
		require.NoError(t, b.Debit(1000))
		assert.Equal(t, int64(0), b.Wallet)
	})

	t.Run("wallet cannot go negative", func(t *testing.T) {
		b := &Buyer{Wallet: 999}
		require.ErrorIs(t, b.Debit(1000), ErrInsufficientFunds)
		assert.Equal(t, int64(999), b.Wallet, "failed debit must not change the wallet")
	})

	t.Run("negative amount", func(t *testing.T) {
		b := &Buyer{Wallet: 1000}
		assert.ErrorIs(t, b.Debit(-1), ErrInvalidAmount)
	})
}

func TestBuyer_Credit(t *testing.T) {
	b := &Buyer{Wallet: 100}
	require.NoError(t, b.Credit(250))
	assert.Equal(t, int64(350), b.Wallet)
	assert.ErrorIs(t, b.Credit(-1), ErrInvalidAmount)
}

func TestBuyer_FullName(t *testing.T) {
	b := &Buyer{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", b.FullName())
}

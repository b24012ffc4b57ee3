package wallet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goldchip/pocketcasino/pkg/entities"
	"github.com/goldchip/pocketcasino/pkg/storage"
	memorystore "github.com/goldchip/pocketcasino/pkg/storage/memory"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestService() (*Service, *fixedClock, *memorystore.Store) {
	store := memorystore.New()
	clock := &fixedClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)}
	return NewServiceWithClock(store, clock, zerolog.Nop()), clock, store
}

func TestUpdateBalanceAppliesSignedDeltas(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	snapshot, err := s.UpdateBalance(ctx, 250, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), snapshot.Balance)

	snapshot, err = s.UpdateBalance(ctx, -50, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), snapshot.Balance)
	assert.Equal(t, int64(1200), s.Balance())
}

func TestUpdateBalanceClampsAtZero(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	snapshot, err := s.UpdateBalance(ctx, -5000, nil)
	require.NoError(t, err, "over-debits clamp, they never error")
	assert.Equal(t, int64(0), snapshot.Balance)

	// Later credits build from the floor, not from a negative total.
	snapshot, err = s.UpdateBalance(ctx, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100), snapshot.Balance)
}

func TestUpdateBalanceSynthesizesTransactionMeta(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, err := s.UpdateBalance(ctx, 50, nil)
	require.NoError(t, err)
	_, err = s.UpdateBalance(ctx, -30, nil)
	require.NoError(t, err)

	transactions := s.Transactions()
	require.Len(t, transactions, 2)

	// Newest first
	assert.Equal(t, entities.TransactionTypeLoss, transactions[0].Type)
	assert.Equal(t, int64(30), transactions[0].Amount)
	assert.Equal(t, "Lost 30 chips", transactions[0].Description)

	assert.Equal(t, entities.TransactionTypeWin, transactions[1].Type)
	assert.Equal(t, int64(50), transactions[1].Amount)
	assert.Equal(t, "Won 50 chips", transactions[1].Description)
}

func TestUpdateBalanceUsesCallerMeta(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, err := s.UpdateBalance(ctx, 350, &entities.TransactionMeta{
		Type:        entities.TransactionTypeWin,
		Amount:      350,
		Game:        "Roulette",
		Description: "Won - Number 17",
	})
	require.NoError(t, err)

	transactions := s.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "Roulette", transactions[0].Game)
	assert.Equal(t, "Won - Number 17", transactions[0].Description)
	assert.NotEmpty(t, transactions[0].ID)
}

func TestTransactionLogIsBounded(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	for i := 1; i <= 150; i++ {
		_, err := s.UpdateBalance(ctx, 1, &entities.TransactionMeta{
			Type:        entities.TransactionTypeWin,
			Amount:      1,
			Description: fmt.Sprintf("entry %d", i),
		})
		require.NoError(t, err)
	}

	transactions := s.Transactions()
	require.Len(t, transactions, 100)

	// The 100 most recent entries, newest first
	assert.Equal(t, "entry 150", transactions[0].Description)
	assert.Equal(t, "entry 51", transactions[99].Description)
}

func TestBalanceMatchesSumOfDeltas(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	deltas := []int64{100, -250, 40, -2000, 500, -75}
	expected := StartingBalance
	for _, delta := range deltas {
		expected += delta
		if expected < 0 {
			expected = 0
		}
		snapshot, err := s.UpdateBalance(ctx, delta, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, snapshot.Balance)
		assert.GreaterOrEqual(t, snapshot.Balance, int64(0))
	}
}

func TestCollectDailyBonusIsIdempotentPerDay(t *testing.T) {
	s, clock, _ := newTestService()
	ctx := context.Background()

	snapshot, err := s.CollectDailyBonus(ctx)
	require.NoError(t, err)
	assert.Equal(t, StartingBalance+DailyBonusAmount, snapshot.Balance)
	assert.True(t, snapshot.DailyBonusCollected)

	_, err = s.CollectDailyBonus(ctx)
	assert.ErrorIs(t, err, ErrBonusAlreadyCollected)
	assert.Equal(t, StartingBalance+DailyBonusAmount, s.Balance(), "balance must increase exactly once")

	transactions := s.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, entities.TransactionTypeBonus, transactions[0].Type)
	assert.Equal(t, DailyBonusAmount, transactions[0].Amount)

	// Same instant next day: collectible again
	clock.now = clock.now.Add(24 * time.Hour)
	assert.False(t, s.DailyBonusCollected())
	_, err = s.CollectDailyBonus(ctx)
	require.NoError(t, err)
	assert.Equal(t, StartingBalance+2*DailyBonusAmount, s.Balance())
}

func TestResetWalletRestoresDefaults(t *testing.T) {
	s, _, store := newTestService()
	ctx := context.Background()

	_, err := s.UpdateBalance(ctx, -400, nil)
	require.NoError(t, err)
	_, err = s.CollectDailyBonus(ctx)
	require.NoError(t, err)

	require.NoError(t, s.ResetWallet(ctx))
	assert.Equal(t, StartingBalance, s.Balance())
	assert.Empty(t, s.Transactions())
	assert.False(t, s.DailyBonusCollected())

	for _, key := range []string{"wallet_balance", "wallet_transactions", "last_bonus_date"} {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound, "key %s should be cleared", key)
	}
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := memorystore.New()
	clock := &fixedClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)}
	ctx := context.Background()

	first := NewServiceWithClock(store, clock, zerolog.Nop())
	_, err := first.UpdateBalance(ctx, -300, nil)
	require.NoError(t, err)
	_, err = first.CollectDailyBonus(ctx)
	require.NoError(t, err)

	second := NewServiceWithClock(store, clock, zerolog.Nop())
	second.Load(ctx)

	assert.Equal(t, first.Balance(), second.Balance())
	assert.Len(t, second.Transactions(), 2)
	assert.True(t, second.DailyBonusCollected())
}

func TestLoadFallsBackOnCorruptData(t *testing.T) {
	store := memorystore.New()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "wallet_balance", "not-a-number"))
	require.NoError(t, store.Set(ctx, "wallet_transactions", "{corrupt"))

	s := NewService(store, zerolog.Nop())
	s.Load(ctx)

	assert.Equal(t, StartingBalance, s.Balance())
	assert.Empty(t, s.Transactions())
}

func TestUpdateBalanceDoesNotAdvanceOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)}

	t.Run("balance write fails", func(t *testing.T) {
		mockStore := storage.NewMockStore(t)
		mockStore.On("Set", mock.Anything, "wallet_balance", mock.Anything).
			Return(errors.New("disk full"))

		s := NewServiceWithClock(mockStore, clock, zerolog.Nop())
		_, err := s.UpdateBalance(ctx, 100, nil)
		require.Error(t, err)
		assert.Equal(t, StartingBalance, s.Balance())
		assert.Empty(t, s.Transactions())
	})

	t.Run("log write fails", func(t *testing.T) {
		mockStore := storage.NewMockStore(t)
		mockStore.On("Set", mock.Anything, "wallet_balance", mock.Anything).
			Return(nil)
		mockStore.On("Set", mock.Anything, "wallet_transactions", mock.Anything).
			Return(errors.New("disk full"))

		s := NewServiceWithClock(mockStore, clock, zerolog.Nop())
		_, err := s.UpdateBalance(ctx, 100, nil)
		require.Error(t, err)
		assert.Equal(t, StartingBalance, s.Balance())
		assert.Empty(t, s.Transactions())
	})
}

func TestTransactionIDsAreUnique(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		snapshot, err := s.UpdateBalance(ctx, 1, nil)
		require.NoError(t, err)
		id := snapshot.Transactions[0].ID
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}

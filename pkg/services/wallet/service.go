package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/goldchip/pocketcasino/pkg/entities"
	"github.com/goldchip/pocketcasino/pkg/storage"
)

const (
	// StartingBalance is the chip balance granted to a fresh wallet.
	StartingBalance int64 = 1000

	// DailyBonusAmount is the fixed chip grant collectible once per
	// calendar day.
	DailyBonusAmount int64 = 200

	// maxTransactions bounds the retained ledger history; oldest
	// entries are dropped first.
	maxTransactions = 100

	// dateLayout is the local calendar date used for the daily-bonus
	// boundary.
	dateLayout = "2006-01-02"
)

// Storage keys for the persisted wallet state.
const (
	keyBalance      = "wallet_balance"
	keyTransactions = "wallet_transactions"
	keyLastBonus    = "last_bonus_date"
)

var (
	ErrBonusAlreadyCollected = errors.New("daily bonus already collected")
)

// Clock provides the current instant. Injected so the daily-bonus day
// boundary is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service is the wallet ledger: the single authoritative mutation
// point for funds. Game engines apply payouts only through
// UpdateBalance.
type Service struct {
	store  storage.Store
	clock  Clock
	logger zerolog.Logger

	mu            sync.Mutex
	balance       int64
	transactions  []*entities.Transaction
	lastBonusDate string
}

// NewService creates a wallet ledger over the given store. The wallet
// starts at the default balance until Load is called.
func NewService(store storage.Store, logger zerolog.Logger) *Service {
	return NewServiceWithClock(store, systemClock{}, logger)
}

// NewServiceWithClock creates a wallet ledger with an explicit clock.
func NewServiceWithClock(store storage.Store, clock Clock, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		clock:   clock,
		logger:  logger.With().Str("component", "wallet").Logger(),
		balance: StartingBalance,
	}
}

// Load reads the persisted balance, transaction log and bonus date.
// Storage or parse failures fall back to defaults for the affected
// field and are logged, never fatal.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance = StartingBalance
	s.transactions = nil
	s.lastBonusDate = ""

	if raw, err := s.store.Get(ctx, keyBalance); err == nil {
		if balance, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			s.balance = balance
		} else {
			s.logger.Warn().Str("value", raw).Msg("stored balance is not a number, using default")
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Warn().Err(err).Msg("failed to load balance, using default")
	}

	if raw, err := s.store.Get(ctx, keyTransactions); err == nil {
		var transactions []*entities.Transaction
		if parseErr := json.Unmarshal([]byte(raw), &transactions); parseErr == nil {
			s.transactions = transactions
		} else {
			s.logger.Warn().Err(parseErr).Msg("stored transaction log is corrupt, starting empty")
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Warn().Err(err).Msg("failed to load transaction log, starting empty")
	}

	if raw, err := s.store.Get(ctx, keyLastBonus); err == nil {
		s.lastBonusDate = raw
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Warn().Err(err).Msg("failed to load bonus date")
	}
}

// Balance returns the current chip balance.
func (s *Service) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Transactions returns a copy of the retained ledger history, newest
// first.
func (s *Service) Transactions() []*entities.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTransactions(s.transactions)
}

// DailyBonusCollected reports whether today's bonus has been claimed.
func (s *Service) DailyBonusCollected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBonusDate == s.clock.Now().Format(dateLayout)
}

// Snapshot returns a copy of the full wallet state.
func (s *Service) Snapshot() *entities.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UpdateBalance applies a signed delta to the balance and records one
// transaction. The balance is floored at zero; debits never error.
// When meta is nil the entry is synthesized from the sign of delta.
// Balance and log are persisted together: on a storage failure the
// in-memory state is not advanced.
func (s *Service) UpdateBalance(ctx context.Context, delta int64, meta *entities.TransactionMeta) (*entities.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateBalanceLocked(ctx, delta, meta)
}

// CollectDailyBonus grants the fixed daily bonus, at most once per
// local calendar day. Returns ErrBonusAlreadyCollected on repeat calls
// the same day.
func (s *Service) CollectDailyBonus(ctx context.Context) (*entities.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock.Now().Format(dateLayout)
	if s.lastBonusDate == today {
		return nil, ErrBonusAlreadyCollected
	}

	snapshot, err := s.updateBalanceLocked(ctx, DailyBonusAmount, &entities.TransactionMeta{
		Type:        entities.TransactionTypeBonus,
		Amount:      DailyBonusAmount,
		Description: "Daily bonus collected",
	})
	if err != nil {
		return nil, err
	}

	// The bonus grant is already persisted; mark today as collected
	// even if the date write fails, so this session cannot double-pay.
	s.lastBonusDate = today
	if err := s.store.Set(ctx, keyLastBonus, today); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist bonus date")
	}

	snapshot.DailyBonusCollected = true
	snapshot.LastBonusDate = today
	return snapshot, nil
}

// ResetWallet clears the persisted state and reinstates the starting
// balance. Used on fresh account creation and explicit reset.
func (s *Service) ResetWallet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyBalance, keyTransactions, keyLastBonus} {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	s.balance = StartingBalance
	s.transactions = nil
	s.lastBonusDate = ""

	s.logger.Info().Int64("balance", s.balance).Msg("wallet reset")
	return nil
}

func (s *Service) updateBalanceLocked(ctx context.Context, delta int64, meta *entities.TransactionMeta) (*entities.Wallet, error) {
	newBalance := s.balance + delta
	if newBalance < 0 {
		// Debits clamp at zero rather than failing; engines validate
		// bets against the balance before playing.
		newBalance = 0
	}

	tx := s.newTransaction(delta, meta)
	newLog := make([]*entities.Transaction, 0, len(s.transactions)+1)
	newLog = append(newLog, tx)
	newLog = append(newLog, s.transactions...)
	if len(newLog) > maxTransactions {
		newLog = newLog[:maxTransactions]
	}

	logJSON, err := json.Marshal(newLog)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction log: %w", err)
	}

	if err := s.store.Set(ctx, keyBalance, strconv.FormatInt(newBalance, 10)); err != nil {
		return nil, fmt.Errorf("failed to persist balance: %w", err)
	}
	if err := s.store.Set(ctx, keyTransactions, string(logJSON)); err != nil {
		return nil, fmt.Errorf("failed to persist transaction log: %w", err)
	}

	s.balance = newBalance
	s.transactions = newLog

	s.logger.Info().
		Int64("delta", delta).
		Int64("balance", newBalance).
		Str("type", string(tx.Type)).
		Str("game", tx.Game).
		Msg("balance updated")

	return s.snapshotLocked(), nil
}

func (s *Service) newTransaction(delta int64, meta *entities.TransactionMeta) *entities.Transaction {
	tx := &entities.Transaction{
		ID:        newTransactionID(),
		Timestamp: s.clock.Now(),
	}

	if delta > 0 {
		tx.Type = entities.TransactionTypeWin
		tx.Description = fmt.Sprintf("Won %d chips", delta)
	} else {
		tx.Type = entities.TransactionTypeLoss
		tx.Description = fmt.Sprintf("Lost %d chips", -delta)
	}
	tx.Amount = delta
	if tx.Amount < 0 {
		tx.Amount = -tx.Amount
	}

	if meta != nil {
		tx.Type = meta.Type
		tx.Amount = meta.Amount
		tx.Game = meta.Game
		tx.Description = meta.Description
	}

	return tx
}

func (s *Service) snapshotLocked() *entities.Wallet {
	return &entities.Wallet{
		Balance:             s.balance,
		Transactions:        copyTransactions(s.transactions),
		DailyBonusCollected: s.lastBonusDate != "" && s.lastBonusDate == s.clock.Now().Format(dateLayout),
		LastBonusDate:       s.lastBonusDate,
	}
}

func copyTransactions(transactions []*entities.Transaction) []*entities.Transaction {
	out := make([]*entities.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		txCopy := *tx
		out = append(out, &txCopy)
	}
	return out
}

package entities

import (
	"time"
)

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeWin     TransactionType = "win"
	TransactionTypeLoss    TransactionType = "loss"
	TransactionTypeBonus   TransactionType = "bonus"
	TransactionTypeDeposit TransactionType = "deposit"
)

// Transaction represents a single wallet ledger entry. Amount is the
// magnitude of the change; the sign is conveyed by Type.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Game        string          `json:"game,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}

// TransactionMeta carries the caller-supplied fields for a new ledger
// entry. ID and timestamp are synthesized by the ledger.
type TransactionMeta struct {
	Type        TransactionType
	Amount      int64
	Game        string
	Description string
}

// Wallet is a point-in-time snapshot of the player's funds.
type Wallet struct {
	Balance             int64
	Transactions        []*Transaction
	DailyBonusCollected bool
	LastBonusDate       string
}

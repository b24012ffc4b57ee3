package roulette

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// GameLabel is the game name recorded on wallet transactions.
const GameLabel = "Roulette"

var (
	ErrInvalidBet        = errors.New("invalid bet")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoBets            = errors.New("no bets placed")
)

// BetType enumerates the supported bet kinds
type BetType string

const (
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetEven   BetType = "even"
	BetOdd    BetType = "odd"
	BetNumber BetType = "number"
)

// Bet is an accumulated stake on a single selector. Number is only
// meaningful for BetNumber.
type Bet struct {
	Type   BetType
	Number int
	Amount int64
}

// SpinResult summarizes one resolved spin.
type SpinResult struct {
	Number   int
	Color    string
	Winnings int64
	Losses   int64
	Net      int64
}

// Ledger is the wallet surface the engine needs.
type Ledger interface {
	Balance() int64
	UpdateBalance(ctx context.Context, delta int64, meta *entities.TransactionMeta) (*entities.Wallet, error)
}

// Game accumulates bets for one spin, resolves them in a single ledger
// update and clears the table.
type Game struct {
	bets       []*Bet
	rng        *rand.Rand
	LastNumber int // -1 until the first spin
	ledger     Ledger
}

// NewGame creates a roulette table bound to the given ledger.
func NewGame(ledger Ledger) *Game {
	return &Game{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		LastNumber: -1,
		ledger:     ledger,
	}
}

// PlaceBet adds amount to the bet on (betType, number). Identical
// selectors accumulate into one bet rather than duplicating entries.
func (g *Game) PlaceBet(betType BetType, number int, amount int64) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	switch betType {
	case BetRed, BetBlack, BetEven, BetOdd:
		number = 0 // selector is the type itself
	case BetNumber:
		if number < 0 || number >= WheelSize {
			return ErrInvalidBet
		}
	default:
		return ErrInvalidBet
	}

	if amount > g.ledger.Balance() {
		return ErrInsufficientFunds
	}

	for _, bet := range g.bets {
		if bet.Type == betType && (betType != BetNumber || bet.Number == number) {
			bet.Amount += amount
			return nil
		}
	}

	g.bets = append(g.bets, &Bet{Type: betType, Number: number, Amount: amount})
	return nil
}

// Bets returns a copy of the current bets.
func (g *Game) Bets() []Bet {
	out := make([]Bet, 0, len(g.bets))
	for _, bet := range g.bets {
		out = append(out, *bet)
	}
	return out
}

// TotalBet returns the sum staked across all bets.
func (g *Game) TotalBet() int64 {
	var total int64
	for _, bet := range g.bets {
		total += bet.Amount
	}
	return total
}

// ClearBets removes all bets without spinning.
func (g *Game) ClearBets() {
	g.bets = nil
}

// Spin draws a uniform outcome in [0,36] and resolves every bet.
func (g *Game) Spin(ctx context.Context) (*SpinResult, error) {
	if len(g.bets) == 0 {
		return nil, ErrNoBets
	}
	if g.TotalBet() > g.ledger.Balance() {
		return nil, ErrInsufficientFunds
	}

	return g.settle(ctx, g.rng.Intn(WheelSize))
}

// settle resolves all bets against the winning number, issues the
// single net ledger update and clears the table.
func (g *Game) settle(ctx context.Context, number int) (*SpinResult, error) {
	result := &SpinResult{
		Number: number,
		Color:  ColorOf(number),
	}

	for _, bet := range g.bets {
		if betWins(bet, number) {
			result.Winnings += bet.Amount * payoutFor(bet.Type)
		} else {
			result.Losses += bet.Amount
		}
	}
	result.Net = result.Winnings - result.Losses

	g.LastNumber = number
	g.bets = nil // cleared regardless of outcome

	verb := "Lost"
	txType := entities.TransactionTypeLoss
	if result.Net > 0 {
		verb = "Won"
		txType = entities.TransactionTypeWin
	}

	amount := result.Net
	if amount < 0 {
		amount = -amount
	}

	if _, err := g.ledger.UpdateBalance(ctx, result.Net, &entities.TransactionMeta{
		Type:        txType,
		Amount:      amount,
		Game:        GameLabel,
		Description: fmt.Sprintf("%s - Number %d", verb, number),
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// betWins applies the winning predicate. Zero satisfies no outside
// bet: red, black, even and odd all lose on 0.
func betWins(bet *Bet, number int) bool {
	switch bet.Type {
	case BetRed:
		return IsRed(number)
	case BetBlack:
		return number != 0 && !IsRed(number)
	case BetEven:
		return number != 0 && number%2 == 0
	case BetOdd:
		return number%2 == 1
	case BetNumber:
		return number == bet.Number
	default:
		return false
	}
}

func payoutFor(betType BetType) int64 {
	if betType == BetNumber {
		return StraightPayout
	}
	return EvenMoneyPayout
}

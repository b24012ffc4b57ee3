package baccarat

import (
	"context"
	"errors"
	"fmt"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// GameLabel is the game name recorded on wallet transactions.
const GameLabel = "Baccarat"

var (
	ErrInvalidAction     = errors.New("invalid action for current game phase")
	ErrInvalidBet        = errors.New("invalid bet")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoBets            = errors.New("no bets placed")
)

// Phase is the round state
type Phase string

const (
	PhaseBetting  Phase = "BETTING"
	PhaseDealing  Phase = "DEALING"
	PhaseFinished Phase = "FINISHED"
)

// Side is a bet slot and, once dealt, the round outcome.
type Side string

const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
	SideTie    Side = "tie"
)

func sideLabel(side Side) string {
	switch side {
	case SidePlayer:
		return "Player"
	case SideBanker:
		return "Banker"
	default:
		return "Tie"
	}
}

// Result summarizes one dealt round.
type Result struct {
	Winner      Side
	PlayerScore int
	BankerScore int
	Winnings    int64
	Losses      int64
	Net         int64
}

// Ledger is the wallet surface the engine needs.
type Ledger interface {
	Balance() int64
	UpdateBalance(ctx context.Context, delta int64, meta *entities.TransactionMeta) (*entities.Wallet, error)
}

// Game is a two-card baccarat round: player and banker each receive
// exactly two cards and the higher mod-10 score wins. The standard
// third-card drawing rules are deliberately not implemented.
type Game struct {
	Phase       Phase
	Deck        *entities.Deck
	PlayerHand  []*entities.Card
	BankerHand  []*entities.Card
	PlayerScore int
	BankerScore int
	Winner      Side

	bets   map[Side]int64
	ledger Ledger
}

// NewGame creates a game in the betting phase with a fresh shuffled
// deck.
func NewGame(ledger Ledger) *Game {
	return &Game{
		Phase:  PhaseBetting,
		Deck:   entities.NewDeck(),
		bets:   make(map[Side]int64),
		ledger: ledger,
	}
}

// PlaceBet adds amount to the given bet slot. Repeated bets on the
// same side accumulate.
func (g *Game) PlaceBet(side Side, amount int64) error {
	if g.Phase != PhaseBetting {
		return ErrInvalidAction
	}
	if amount <= 0 {
		return ErrInvalidBet
	}
	switch side {
	case SidePlayer, SideBanker, SideTie:
	default:
		return ErrInvalidBet
	}
	if amount > g.ledger.Balance() {
		return ErrInsufficientFunds
	}

	g.bets[side] += amount
	return nil
}

// BetOn returns the accumulated stake on a side.
func (g *Game) BetOn(side Side) int64 {
	return g.bets[side]
}

// TotalBet returns the sum staked across all slots.
func (g *Game) TotalBet() int64 {
	var total int64
	for _, amount := range g.bets {
		total += amount
	}
	return total
}

// ClearBets removes all bets without dealing.
func (g *Game) ClearBets() error {
	if g.Phase != PhaseBetting {
		return ErrInvalidAction
	}
	g.bets = make(map[Side]int64)
	return nil
}

// Deal draws two cards each for player and banker, determines the
// winner and settles all bets in a single ledger update.
func (g *Game) Deal(ctx context.Context) (*Result, error) {
	if g.Phase != PhaseBetting {
		return nil, ErrInvalidAction
	}
	if len(g.bets) == 0 {
		return nil, ErrNoBets
	}
	if g.TotalBet() > g.ledger.Balance() {
		return nil, ErrInsufficientFunds
	}

	g.Phase = PhaseDealing

	g.PlayerHand = []*entities.Card{g.Deck.Draw(), g.Deck.Draw()}
	g.BankerHand = []*entities.Card{g.Deck.Draw(), g.Deck.Draw()}
	g.PlayerScore = Score(g.PlayerHand)
	g.BankerScore = Score(g.BankerHand)

	switch {
	case g.PlayerScore > g.BankerScore:
		g.Winner = SidePlayer
	case g.BankerScore > g.PlayerScore:
		g.Winner = SideBanker
	default:
		g.Winner = SideTie
	}

	return g.settle(ctx)
}

// NewRound returns a finished game to the betting phase.
func (g *Game) NewRound() error {
	if g.Phase != PhaseFinished {
		return ErrInvalidAction
	}

	g.PlayerHand = nil
	g.BankerHand = nil
	g.PlayerScore = 0
	g.BankerScore = 0
	g.Winner = ""
	g.bets = make(map[Side]int64)
	g.Phase = PhaseBetting
	return nil
}

func (g *Game) settle(ctx context.Context) (*Result, error) {
	result := &Result{
		Winner:      g.Winner,
		PlayerScore: g.PlayerScore,
		BankerScore: g.BankerScore,
	}

	for side, amount := range g.bets {
		if side != g.Winner {
			result.Losses += amount
			continue
		}
		switch side {
		case SidePlayer:
			result.Winnings += amount * PlayerPayout
		case SideBanker:
			result.Winnings += BankerWinnings(amount)
		case SideTie:
			result.Winnings += amount * TiePayout
		}
	}
	result.Net = result.Winnings - result.Losses

	// Bets are cleared at resolution regardless of the round outcome.
	g.bets = make(map[Side]int64)
	g.Phase = PhaseFinished

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
		Description: fmt.Sprintf("%s - %s wins", verb, sideLabel(g.Winner)),
	}); err != nil {
		return nil, err
	}

	return result, nil
}

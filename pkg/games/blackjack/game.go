package blackjack

import (
	"context"
	"errors"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// GameLabel is the game name recorded on wallet transactions.
const GameLabel = "Blackjack 21"

var (
	ErrInvalidAction     = errors.New("invalid action for current game phase")
	ErrInvalidBet        = errors.New("bet must be a positive amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDoubleNotAllowed  = errors.New("double down not allowed")
)

// Phase is the round state. Actions are only valid from their source
// phase; anything else returns ErrInvalidAction.
type Phase string

const (
	PhaseBetting    Phase = "BETTING"
	PhasePlaying    Phase = "PLAYING"
	PhaseDealerTurn Phase = "DEALER_TURN"
	PhaseFinished   Phase = "FINISHED"
)

// Outcome represents the terminal result of a round
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLose      Outcome = "LOSE"
	OutcomePush      Outcome = "PUSH"
	OutcomeBlackjack Outcome = "BLACKJACK"
)

// IsWin returns true if this outcome represents a win
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// Ledger is the wallet surface the engine needs: a balance to validate
// bets against and the single payout write path.
type Ledger interface {
	Balance() int64
	UpdateBalance(ctx context.Context, delta int64, meta *entities.TransactionMeta) (*entities.Wallet, error)
}

// Game is a single-player blackjack round state machine.
type Game struct {
	Phase     Phase
	Deck      *entities.Deck
	Player    *Hand
	Dealer    *Hand
	Bet       int64
	CanDouble bool
	CanSplit  bool
	Outcome   Outcome
	Payout    int64

	ledger Ledger
}

// NewGame creates a game in the betting phase with a fresh shuffled
// deck.
func NewGame(ledger Ledger) *Game {
	return &Game{
		Phase:  PhaseBetting,
		Deck:   entities.NewDeck(),
		Player: NewHand(),
		Dealer: NewHand(),
		ledger: ledger,
	}
}

// StartRound accepts the bet and deals two cards each to player and
// dealer. A natural 21 resolves the round immediately.
func (g *Game) StartRound(ctx context.Context, bet int64) error {
	if g.Phase != PhaseBetting {
		return ErrInvalidAction
	}
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet > g.ledger.Balance() {
		return ErrInsufficientFunds
	}

	g.Bet = bet
	g.Player = NewHand()
	g.Dealer = NewHand()

	// Deal order: player, dealer, player, dealer
	for i := 0; i < 2; i++ {
		if err := g.Player.AddCard(g.Deck.Draw()); err != nil {
			return err
		}
		if err := g.Dealer.AddCard(g.Deck.Draw()); err != nil {
			return err
		}
	}

	g.CanDouble = true
	g.CanSplit = g.Player.Cards[0].Rank == g.Player.Cards[1].Rank

	if IsNatural(g.Player.Cards) {
		if g.Dealer.Score() == 21 {
			return g.settle(ctx, OutcomePush, 0)
		}
		return g.settle(ctx, OutcomeBlackjack, BlackjackPayout(g.Bet))
	}

	g.Phase = PhasePlaying
	return nil
}

// Hit draws one card into the player hand. Busting resolves the round
// immediately as a loss.
func (g *Game) Hit(ctx context.Context) error {
	if g.Phase != PhasePlaying {
		return ErrInvalidAction
	}

	g.CanDouble = false
	g.CanSplit = false

	if err := g.Player.AddCard(g.Deck.Draw()); err != nil {
		return err
	}

	if g.Player.Status == StatusBust {
		return g.settle(ctx, OutcomeLose, -g.Bet)
	}
	return nil
}

// Stand ends the player's turn and runs the dealer.
func (g *Game) Stand(ctx context.Context) error {
	if g.Phase != PhasePlaying {
		return ErrInvalidAction
	}

	if err := g.Player.Stand(); err != nil {
		return err
	}
	return g.playDealer(ctx)
}

// Double doubles the bet, draws exactly one card, then resolves (bust)
// or hands over to the dealer. Only allowed on the initial two cards.
func (g *Game) Double(ctx context.Context) error {
	if g.Phase != PhasePlaying {
		return ErrInvalidAction
	}
	if !g.CanDouble || len(g.Player.Cards) != 2 {
		return ErrDoubleNotAllowed
	}
	if g.Bet*2 > g.ledger.Balance() {
		return ErrInsufficientFunds
	}

	g.Bet *= 2
	g.CanDouble = false
	g.CanSplit = false

	if err := g.Player.AddCard(g.Deck.Draw()); err != nil {
		return err
	}

	if g.Player.Status == StatusBust {
		return g.settle(ctx, OutcomeLose, -g.Bet)
	}

	if err := g.Player.Stand(); err != nil {
		return err
	}
	return g.playDealer(ctx)
}

// NewRound returns a finished game to the betting phase. The deck
// carries over and reshuffles itself on exhaustion.
func (g *Game) NewRound() error {
	if g.Phase != PhaseFinished {
		return ErrInvalidAction
	}

	g.Player = NewHand()
	g.Dealer = NewHand()
	g.Bet = 0
	g.CanDouble = false
	g.CanSplit = false
	g.Outcome = ""
	g.Payout = 0
	g.Phase = PhaseBetting
	return nil
}

// playDealer draws for the dealer until 17 or better (stands on all
// 17s), then compares hands.
func (g *Game) playDealer(ctx context.Context) error {
	g.Phase = PhaseDealerTurn

	for g.Dealer.Score() < DealerStandScore {
		if err := g.Dealer.AddCard(g.Deck.Draw()); err != nil {
			return err
		}
	}

	playerScore := g.Player.Score()
	dealerScore := g.Dealer.Score()

	switch {
	case dealerScore > 21:
		return g.settle(ctx, OutcomeWin, g.Bet)
	case playerScore > dealerScore:
		return g.settle(ctx, OutcomeWin, g.Bet)
	case dealerScore > playerScore:
		return g.settle(ctx, OutcomeLose, -g.Bet)
	default:
		return g.settle(ctx, OutcomePush, 0)
	}
}

// settle records the terminal outcome and issues exactly one ledger
// update for the round.
func (g *Game) settle(ctx context.Context, outcome Outcome, payout int64) error {
	g.Outcome = outcome
	g.Payout = payout
	g.Phase = PhaseFinished

	verb := "Push"
	txType := entities.TransactionTypeBonus // zero-delta push entries keep the original app's type
	switch {
	case payout > 0:
		verb = "Won"
		txType = entities.TransactionTypeWin
	case payout < 0:
		verb = "Lost"
		txType = entities.TransactionTypeLoss
	}

	amount := payout
	if amount < 0 {
		amount = -amount
	}

	_, err := g.ledger.UpdateBalance(ctx, payout, &entities.TransactionMeta{
		Type:        txType,
		Amount:      amount,
		Game:        GameLabel,
		Description: verb + " - Blackjack",
	})
	return err
}

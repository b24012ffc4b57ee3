package blackjack

import (
	"errors"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

var (
	ErrHandBust    = errors.New("hand is bust")
	ErrHandStand   = errors.New("hand is stand")
	ErrInvalidCard = errors.New("invalid card")
)

// Status represents the current state of the hand
type Status string

const (
	StatusPlaying Status = "PLAYING"
	StatusBust    Status = "BUST"
	StatusStand   Status = "STAND"
)

// Hand represents the cards held by the player or the dealer

type Hand struct {
	Cards  []*entities.Card
	Status Status
}

// NewHand creates a new blackjack hand
func NewHand() *Hand {
	return &Hand{
		Cards:  make([]*entities.Card, 0),
		Status: StatusPlaying,
	}
}

// AddCard adds a card to the hand, busting it automatically when the
// score exceeds 21.
func (h *Hand) AddCard(card *entities.Card) error {
	if h.Status != StatusPlaying {
		switch h.Status {
		case StatusBust:
			return ErrHandBust
		case StatusStand:
			return ErrHandStand
		}
	}

	if card == nil {
		return ErrInvalidCard
	}

	h.Cards = append(h.Cards, card)

	if GetBestScore(h.Cards) > 21 {
		h.Status = StatusBust
	}

	return nil
}

// Stand marks the hand as stood
func (h *Hand) Stand() error {
	if h.Status != StatusPlaying {
		switch h.Status {
		case StatusBust:
			return ErrHandBust
		case StatusStand:
			return ErrHandStand
		}
	}

	h.Status = StatusStand
	return nil
}

// Score returns the best possible score for the hand
func (h *Hand) Score() int {
	return GetBestScore(h.Cards)
}

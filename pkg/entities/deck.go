package entities

import (
	"math/rand"
	"time"
)

// Deck is a single 52-card deck consumed from the front.
type Deck struct {
	Cards []*Card
}

// NewDeck creates a full 52-card deck, one of each rank and suit,
// already shuffled.
func NewDeck() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	d := &Deck{Cards: cards}
	d.Shuffle()
	return d
}

// Shuffle randomly permutes the remaining cards.
func (d *Deck) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card. A depleted deck is
// transparently replaced by a fresh shuffled one, so Draw never
// returns nil.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		d.Cards = NewDeck().Cards
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}

// Remaining returns the number of cards left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

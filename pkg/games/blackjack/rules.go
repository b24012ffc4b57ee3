package blackjack

import (
	"strconv"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// DealerStandScore is the total the dealer stands on, soft or hard.
const DealerStandScore = 17

func GetCardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// GetBestScore returns the highest score not exceeding 21 when
// possible: aces count 11 each, then reduce by 10 per ace while the
// total is over 21.
func GetBestScore(cards []*entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += GetCardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsNatural checks for a two-card 21
func IsNatural(cards []*entities.Card) bool {
	return len(cards) == 2 && GetBestScore(cards) == 21
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return GetBestScore(cards) > 21
}

// BlackjackPayout returns the 3:2 winnings for a natural, rounded
// down.
func BlackjackPayout(bet int64) int64 {
	return bet * 3 / 2
}

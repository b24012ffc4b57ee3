package baccarat

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/goldchip/pocketcasino/pkg/entities"
)

// Payout multipliers.
const (
	PlayerPayout   = 1
	TiePayout      = 8
	bankerTakeRate = 0.95 // 1:1 minus the 5% banker commission
)

// GetCardValue returns the baccarat point value: aces count 1, tens
// and face cards count 0, everything else its face value.
func GetCardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 1
	case entities.Ten, entities.Jack, entities.Queen, entities.King:
		return 0
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// Score returns the hand total modulo 10.
func Score(cards []*entities.Card) int {
	total := 0
	for _, card := range cards {
		total += GetCardValue(card)
	}
	return total % 10
}

// BankerWinnings returns the commission-adjusted winnings for a banker
// bet, rounded down to whole chips.
func BankerWinnings(amount int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(bankerTakeRate)).
		IntPart()
}

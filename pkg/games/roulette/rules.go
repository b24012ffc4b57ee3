package roulette

// WheelSize is the number of pockets on a single-zero wheel (0-36).
const WheelSize = 37

// Payout multipliers, expressed as net winnings per chip staked.
const (
	StraightPayout  = 35
	EvenMoneyPayout = 1
)

// redNumbers is the standard table layout's red set; every other
// non-zero number is black.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// IsRed reports whether the number is in the red set.
func IsRed(number int) bool {
	return redNumbers[number]
}

// ColorOf returns the display color for a number: green for zero, red
// or black otherwise.
func ColorOf(number int) string {
	switch {
	case number == 0:
		return "green"
	case IsRed(number):
		return "red"
	default:
		return "black"
	}
}

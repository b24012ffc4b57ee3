package rules

// builtinSheets holds the rule text for the three shipped games.
var builtinSheets = map[string]*Sheet{
	"blackjack": {
		Title:     "Blackjack 21",
		Objective: "Get as close to 21 as possible without going over, while beating the dealer's hand.",
		Rules: []string{
			"Cards 2-10 are worth their face value",
			"Face cards (J, Q, K) are worth 10 points",
			"Aces can be worth 1 or 11 points",
			"If your first two cards total 21, you have \"Blackjack\" and win 3:2",
			"If you go over 21, you \"bust\" and lose immediately",
			"Dealer must hit on 16 and stand on 17",
			"You can \"Hit\" to take another card or \"Stand\" to keep your current total",
			"You can \"Double\" your bet and take exactly one more card",
		},
		Strategy: []string{
			"Always hit if your total is 11 or less",
			"Always stand if your total is 17 or more",
			"Consider the dealer's up card when deciding",
			"Double down on 11 against dealer 2-10",
			"Double down on 10 against dealer 2-9",
		},
	},
	"roulette": {
		Title:     "Roulette",
		Objective: "Predict where the ball will land on the spinning wheel.",
		Rules: []string{
			"The wheel has numbers 0-36",
			"Numbers 1-36 are either red or black",
			"Zero (0) is green",
			"You can bet on individual numbers, colors, or groups",
			"Red/Black, Even/Odd pay 1:1",
			"Straight number bets pay 35:1",
			"All bets lose if the ball lands on 0 (except 0 bets)",
		},
		Strategy: []string{
			"Even money bets (red/black, even/odd) have the best odds",
			"Straight number bets have the highest payout but lowest probability",
			"The house edge comes from the green zero",
			"Manage your bankroll carefully",
		},
	},
	"baccarat": {
		Title:     "Baccarat",
		Objective: "Bet on whether the Player or Banker hand will have a total closest to 9.",
		Rules: []string{
			"Cards 2-9 are worth their face value",
			"Aces are worth 1 point",
			"Face cards and 10s are worth 0 points",
			"Hand values are calculated by adding cards and taking the last digit",
			"Both Player and Banker receive 2 cards initially",
			"Player bet pays 1:1",
			"Banker bet pays 1:1 minus 5% commission",
			"Tie bet pays 8:1",
		},
		Strategy: []string{
			"Banker bet has the lowest house edge (1.06%)",
			"Player bet has slightly higher house edge (1.24%)",
			"Tie bet has very high house edge (14.4%) - avoid it",
			"Baccarat is largely a game of chance",
		},
	},
}

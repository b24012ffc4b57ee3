package baccarat

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldchip/pocketcasino/pkg/entities"
	"github.com/goldchip/pocketcasino/pkg/services/wallet"
	memorystore "github.com/goldchip/pocketcasino/pkg/storage/memory"
)

func newTestWallet(t *testing.T, balance int64) *wallet.Service {
	t.Helper()
	s := wallet.NewService(memorystore.New(), zerolog.Nop())
	if delta := balance - s.Balance(); delta != 0 {
		_, err := s.UpdateBalance(context.Background(), delta, nil)
		require.NoError(t, err)
	}
	return s
}

// rig replaces the deck so cards come off the top in the listed order.
// Deal order: player [0,1], banker [2,3].
func rig(g *Game, ranks ...entities.Rank) {
	deck := make([]*entities.Card, 0, len(ranks))
	for _, rank := range ranks {
		deck = append(deck, entities.NewCard(entities.Spades, rank))
	}
	g.Deck = &entities.Deck{Cards: deck}
}

func TestGetCardValue(t *testing.T) {
	assert.Equal(t, 1, GetCardValue(entities.NewCard(entities.Hearts, entities.Ace)))
	assert.Equal(t, 0, GetCardValue(entities.NewCard(entities.Hearts, entities.Ten)))
	assert.Equal(t, 0, GetCardValue(entities.NewCard(entities.Hearts, entities.King)))
	assert.Equal(t, 0, GetCardValue(entities.NewCard(entities.Hearts, entities.Queen)))
	assert.Equal(t, 0, GetCardValue(entities.NewCard(entities.Hearts, entities.Jack)))
	assert.Equal(t, 7, GetCardValue(entities.NewCard(entities.Hearts, entities.Seven)))
}

func TestScoreWrapsAtTen(t *testing.T) {
	assert.Equal(t, 8, Score([]*entities.Card{
		entities.NewCard(entities.Hearts, entities.Nine),
		entities.NewCard(entities.Clubs, entities.Nine),
	}))
	assert.Equal(t, 0, Score([]*entities.Card{
		entities.NewCard(entities.Hearts, entities.Five),
		entities.NewCard(entities.Clubs, entities.Five),
	}))
	assert.Equal(t, 9, Score([]*entities.Card{
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Clubs, entities.Nine),
	}))
}

func TestBankerWinningsTakesCommission(t *testing.T) {
	assert.Equal(t, int64(95), BankerWinnings(100))
	assert.Equal(t, int64(9), BankerWinnings(10), "commission truncates fractional chips")
	assert.Equal(t, int64(0), BankerWinnings(1))
}

func TestPlaceBetValidation(t *testing.T) {
	g := NewGame(newTestWallet(t, 100))

	assert.ErrorIs(t, g.PlaceBet(SidePlayer, 0), ErrInvalidBet)
	assert.ErrorIs(t, g.PlaceBet(SidePlayer, -10), ErrInvalidBet)
	assert.ErrorIs(t, g.PlaceBet(Side("dragon"), 10), ErrInvalidBet)
	assert.ErrorIs(t, g.PlaceBet(SidePlayer, 500), ErrInsufficientFunds)
	assert.Zero(t, g.TotalBet())
}

func TestPlaceBetAccumulatesPerSide(t *testing.T) {
	g := NewGame(newTestWallet(t, 1000))

	require.NoError(t, g.PlaceBet(SidePlayer, 10))
	require.NoError(t, g.PlaceBet(SidePlayer, 15))
	require.NoError(t, g.PlaceBet(SideBanker, 20))

	assert.Equal(t, int64(25), g.BetOn(SidePlayer))
	assert.Equal(t, int64(20), g.BetOn(SideBanker))
	assert.Equal(t, int64(45), g.TotalBet())
}

func TestDealRequiresBets(t *testing.T) {
	g := NewGame(newTestWallet(t, 100))
	_, err := g.Deal(context.Background())
	assert.ErrorIs(t, err, ErrNoBets)
}

func TestPlayerWinPaysEvenMoney(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 100)
	g := NewGame(w)
	// Player: 9 + K = 9. Banker: 5 + 2 = 7.
	rig(g, entities.Nine, entities.King, entities.Five, entities.Two)

	require.NoError(t, g.PlaceBet(SidePlayer, 10))
	result, err := g.Deal(ctx)
	require.NoError(t, err)

	assert.Equal(t, SidePlayer, result.Winner)
	assert.Equal(t, 9, result.PlayerScore)
	assert.Equal(t, 7, result.BankerScore)
	assert.Equal(t, int64(10), result.Net)
	assert.Equal(t, int64(110), w.Balance())
	assert.Equal(t, PhaseFinished, g.Phase)

	transactions := w.Transactions()
	require.NotEmpty(t, transactions)
	assert.Equal(t, entities.TransactionTypeWin, transactions[0].Type)
	assert.Equal(t, GameLabel, transactions[0].Game)
	assert.Equal(t, "Won - Player wins", transactions[0].Description)
}

func TestBankerWinPaysWithCommission(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 1000)
	g := NewGame(w)
	// Player: 3 + 2 = 5. Banker: 4 + 4 = 8.
	rig(g, entities.Three, entities.Two, entities.Four, entities.Four)

	require.NoError(t, g.PlaceBet(SideBanker, 100))
	result, err := g.Deal(ctx)
	require.NoError(t, err)

	assert.Equal(t, SideBanker, result.Winner)
	assert.Equal(t, int64(95), result.Winnings)
	assert.Equal(t, int64(95), result.Net)
	assert.Equal(t, int64(1095), w.Balance())
}

func TestTiePaysEightToOneAndSideBetsLose(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 1000)
	g := NewGame(w)
	// Player: 4 + 3 = 7. Banker: 5 + 2 = 7.
	rig(g, entities.Four, entities.Three, entities.Five, entities.Two)

	require.NoError(t, g.PlaceBet(SideTie, 10))
	require.NoError(t, g.PlaceBet(SidePlayer, 20))
	require.NoError(t, g.PlaceBet(SideBanker, 30))

	result, err := g.Deal(ctx)
	require.NoError(t, err)

	assert.Equal(t, SideTie, result.Winner)
	assert.Equal(t, int64(80), result.Winnings)
	assert.Equal(t, int64(50), result.Losses, "player and banker stakes lose on a tie")
	assert.Equal(t, int64(30), result.Net)
	assert.Equal(t, int64(1030), w.Balance())
	assert.Equal(t, "Won - Tie wins", w.Transactions()[0].Description)
}

func TestLosingBetSettlesAsLoss(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 100)
	g := NewGame(w)
	// Player: 9 + K = 9. Banker: 5 + 2 = 7.
	rig(g, entities.Nine, entities.King, entities.Five, entities.Two)

	require.NoError(t, g.PlaceBet(SideBanker, 10))
	result, err := g.Deal(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(-10), result.Net)
	assert.Equal(t, int64(90), w.Balance())
	assert.Equal(t, entities.TransactionTypeLoss, w.Transactions()[0].Type)
	assert.Equal(t, "Lost - Player wins", w.Transactions()[0].Description)
}

func TestRoundIssuesSingleLedgerUpdate(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 1000)
	g := NewGame(w)
	rig(g, entities.Four, entities.Three, entities.Five, entities.Two)

	require.NoError(t, g.PlaceBet(SideTie, 10))
	require.NoError(t, g.PlaceBet(SidePlayer, 20))

	before := len(w.Transactions())
	_, err := g.Deal(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, len(w.Transactions()))
}

func TestPhaseGuards(t *testing.T) {
	ctx := context.Background()
	w := newTestWallet(t, 100)
	g := NewGame(w)

	assert.ErrorIs(t, g.NewRound(), ErrInvalidAction)

	rig(g, entities.Nine, entities.King, entities.Five, entities.Two)
	require.NoError(t, g.PlaceBet(SidePlayer, 10))
	_, err := g.Deal(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, g.PlaceBet(SidePlayer, 10), ErrInvalidAction)
	assert.ErrorIs(t, g.ClearBets(), ErrInvalidAction)
	_, err = g.Deal(ctx)
	assert.ErrorIs(t, err, ErrInvalidAction)

	require.NoError(t, g.NewRound())
	assert.Equal(t, PhaseBetting, g.Phase)
	assert.Empty(t, g.PlayerHand)
	assert.Zero(t, g.TotalBet())
	assert.Empty(t, g.Winner)
}

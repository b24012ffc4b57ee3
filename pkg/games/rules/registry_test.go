package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldchip/pocketcasino/internal/types"
)

func TestBuiltinSheetsAreRegistered(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{"baccarat", "blackjack", "roulette"}, r.List())

	sheet, err := r.Get("blackjack")
	require.NoError(t, err)
	assert.Equal(t, "Blackjack 21", sheet.Title)
	assert.NotEmpty(t, sheet.Objective)
	assert.NotEmpty(t, sheet.Rules)
}

func TestGetUnknownGame(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("pai-gow")
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrGameNotFound))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	sheet := &Sheet{Title: "Video Poker", Objective: "Make the best five-card hand"}
	require.NoError(t, r.Register("video-poker", sheet))

	got, err := r.Get("video-poker")
	require.NoError(t, err)
	assert.Equal(t, sheet, got)

	err = r.Register("video-poker", sheet)
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrInvalidAction))

	err = r.Register("blackjack", sheet)
	assert.Error(t, err, "built-ins cannot be replaced")
}

package whr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whr"
	"github.com/katalvlaran/whr/whrcore"
)

// TestCanonicalThreeGameScenario reproduces the end-to-end reference case:
// shusaku beats shusai on day 1, then loses on days 2 and 3.
func TestCanonicalThreeGameScenario(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)

	require.NoError(t, reg.CreateGame("shusaku", "shusai", "B", 1, 0))
	require.NoError(t, reg.CreateGame("shusaku", "shusai", "W", 2, 0))
	require.NoError(t, reg.CreateGame("shusaku", "shusai", "W", 3, 0))
	require.NoError(t, reg.Iterate(50))

	shusaku, err := reg.RatingsForPlayer("shusaku")
	require.NoError(t, err)
	require.Len(t, shusaku, 3)
	wantShusaku := []float64{-43, -45, -45}
	for i, e := range shusaku {
		assert.InDelta(t, wantShusaku[i], e.Elo, 2, "day %d", e.Day)
		assert.InDelta(t, 84, e.UncertaintyElo, 6, "day %d", e.Day)
	}

	shusai, err := reg.RatingsForPlayer("shusai")
	require.NoError(t, err)
	require.Len(t, shusai, 3)
	wantShusai := []float64{43, 45, 45}
	for i, e := range shusai {
		assert.InDelta(t, wantShusai[i], e.Elo, 2, "day %d", e.Day)
	}
}

// TestProbabilityFutureMatch_KnownPlayers checks the headline prediction
// on the converged three-game state above.
func TestProbabilityFutureMatch_KnownPlayers(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, reg.CreateGame("shusaku", "shusai", "B", 1, 0))
	require.NoError(t, reg.CreateGame("shusaku", "shusai", "W", 2, 0))
	require.NoError(t, reg.CreateGame("shusaku", "shusai", "W", 3, 0))
	require.NoError(t, reg.Iterate(50))

	pBlack, pWhite := reg.ProbabilityFutureMatch("shusaku", "shusai", 0)
	assert.InDelta(t, 0.3724, pBlack, 0.02)
	assert.InDelta(t, 0.6276, pWhite, 0.02)
	assert.InDelta(t, 1.0, pBlack+pWhite, 1e-9)
}

// TestProbabilityFutureMatch_UnknownPlayers checks that an unseen player
// is treated as rating 0: the call never errors, and yields an even split.
func TestProbabilityFutureMatch_UnknownPlayers(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)

	pBlack, pWhite := reg.ProbabilityFutureMatch("ghost_a", "ghost_b", 0)
	assert.InDelta(t, 0.5, pBlack, 1e-9)
	assert.InDelta(t, 0.5, pWhite, 1e-9)
}

// TestHandicapSymmetry checks that a 100-Elo handicap produces the same
// learned |r_A - r_B| regardless of which side is recorded as black.
func TestHandicapSymmetry(t *testing.T) {
	regAB, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, regAB.CreateGame("A", "B", "B", 1, 100))
	require.NoError(t, regAB.Iterate(100))

	regBA, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, regBA.CreateGame("B", "A", "W", 1, 100))
	require.NoError(t, regBA.Iterate(100))

	abA, err := regAB.RatingsForPlayer("A")
	require.NoError(t, err)
	abB, err := regAB.RatingsForPlayer("B")
	require.NoError(t, err)
	baA, err := regBA.RatingsForPlayer("A")
	require.NoError(t, err)
	baB, err := regBA.RatingsForPlayer("B")
	require.NoError(t, err)

	diffAB := abA[0].Elo - abB[0].Elo
	diffBA := baA[0].Elo - baB[0].Elo
	assert.InDelta(t, diffAB, diffBA, 1)
}

// TestCaseFolding checks that uncased=true merges "Shu" and "SHU" into
// one Player accumulating both games.
func TestCaseFolding(t *testing.T) {
	reg, err := whr.New(whr.WithUncased(true))
	require.NoError(t, err)
	require.NoError(t, reg.CreateGame("Shu", "X", "B", 1, 0))
	require.NoError(t, reg.CreateGame("SHU", "X", "B", 2, 0))

	ratings, err := reg.RatingsForPlayer("shu")
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

// TestLoadGamesEquivalentToCreateGame checks that a parsed LoadGames call
// produces the same state as the equivalent CreateGame calls, with
// handicap defaulted to 0 when omitted.
func TestLoadGamesEquivalentToCreateGame(t *testing.T) {
	viaLoad, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, viaLoad.LoadGames([]string{"A B B 1", "A B W 2 0"}, ' '))

	viaCreate, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, viaCreate.CreateGame("A", "B", "B", 1, 0))
	require.NoError(t, viaCreate.CreateGame("A", "B", "W", 2, 0))

	require.NoError(t, viaLoad.Iterate(10))
	require.NoError(t, viaCreate.Iterate(10))

	loadRatings, err := viaLoad.RatingsForPlayer("A")
	require.NoError(t, err)
	createRatings, err := viaCreate.RatingsForPlayer("A")
	require.NoError(t, err)
	require.Equal(t, len(createRatings), len(loadRatings))
	for i := range createRatings {
		assert.InDelta(t, createRatings[i].Elo, loadRatings[i].Elo, 1e-9)
	}
}

func TestLoadGames_MalformedLineWrapsSentinel(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	err = reg.LoadGames([]string{"A B B"}, ' ')
	require.True(t, errors.Is(err, whr.ErrMalformedLine))
}

func TestCreateGame_InvalidWinnerPropagatesSentinel(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	err = reg.CreateGame("A", "B", "D", 1, 0)
	require.True(t, errors.Is(err, whrcore.ErrInvalidWinner))
}

func TestRatingsForPlayer_UnknownPlayer(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	_, err = reg.RatingsForPlayer("nobody")
	require.True(t, errors.Is(err, whrcore.ErrUnknownPlayer))
}

func TestGetOrderedRatings_TieBreaksByNameAscending(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	// Two players who never face each other stay tied at Elo 0.
	require.NoError(t, reg.CreateGame("zed", "zed-opponent", "B", 1, 0))
	require.NoError(t, reg.CreateGame("zed", "zed-opponent", "W", 1, 0))
	require.NoError(t, reg.CreateGame("amy", "amy-opponent", "B", 1, 0))
	require.NoError(t, reg.CreateGame("amy", "amy-opponent", "W", 1, 0))

	ordered := reg.GetOrderedRatings(true, true)
	require.True(t, len(ordered) >= 2)
	// All four are tied at 0 Elo (one win, one loss each); name ascending
	// breaks the tie.
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Elo == ordered[i].Elo {
			assert.Less(t, ordered[i-1].Name, ordered[i].Name)
		}
	}
}

// TestExtraWinIsMonotonic checks that adding one more A-beats-B game on a
// day the two already share never decreases A's rating on that day, and
// never increases B's: more evidence for the same outcome can only push
// ratings further apart, never back toward each other.
func TestExtraWinIsMonotonic(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, reg.CreateGame("A", "B", "B", 1, 0))
	require.NoError(t, reg.CreateGame("A", "B", "B", 2, 0))
	require.NoError(t, reg.Iterate(100))

	before, err := reg.RatingsForPlayer("A")
	require.NoError(t, err)
	beforeA := before[0].Elo
	beforeB, err := reg.RatingsForPlayer("B")
	require.NoError(t, err)
	beforeBElo := beforeB[0].Elo

	require.NoError(t, reg.CreateGame("A", "B", "B", 1, 0))
	require.NoError(t, reg.Iterate(100))

	after, err := reg.RatingsForPlayer("A")
	require.NoError(t, err)
	afterA := after[0].Elo
	afterB, err := reg.RatingsForPlayer("B")
	require.NoError(t, err)
	afterBElo := afterB[0].Elo

	assert.GreaterOrEqual(t, afterA, beforeA)
	assert.LessOrEqual(t, afterBElo, beforeBElo)
}

func TestGetOrderedRatings_CompactOmitsUncertainty(t *testing.T) {
	reg, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, reg.CreateGame("a", "b", "B", 1, 0))

	compact := reg.GetOrderedRatings(true, true)
	for _, r := range compact {
		assert.Zero(t, r.UncertaintyElo)
	}

	full := reg.GetOrderedRatings(true, false)
	for _, r := range full {
		assert.Greater(t, r.UncertaintyElo, 0.0)
	}
}

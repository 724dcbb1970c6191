package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whr/solver"
	"github.com/katalvlaran/whr/whrcore"
)

func TestVariances_EmptyHistory(t *testing.T) {
	p := &whrcore.Player{}
	b, _ := whrcore.NewBase(whrcore.DefaultW2, false)
	assert.Nil(t, solver.Variances(b, p))
}

func TestVariances_MoreGamesMeansLessUncertainty(t *testing.T) {
	lonely, _ := whrcore.NewBase(whrcore.DefaultW2, false)
	require.NoError(t, lonely.CreateGame("a", "b", whrcore.WinnerBlack, 1, 0))

	busy, _ := whrcore.NewBase(whrcore.DefaultW2, false)
	for day := 1; day <= 10; day++ {
		require.NoError(t, busy.CreateGame("a", "b", whrcore.WinnerBlack, day, 0))
	}

	lonelyA, _ := lonely.Player("a")
	busyA, _ := busy.Player("a")

	lonelyV := solver.Variances(lonely, lonelyA)
	busyV := solver.Variances(busy, busyA)

	assert.Greater(t, lonelyV[0], busyV[len(busyV)-1])
}

func TestUncertaintyElo_OnePositiveEntryPerPlayerDay(t *testing.T) {
	b, _ := whrcore.NewBase(whrcore.DefaultW2, false)
	require.NoError(t, b.CreateGame("a", "b", whrcore.WinnerBlack, 1, 0))
	require.NoError(t, b.CreateGame("a", "b", whrcore.WinnerWhite, 9, 0))

	a, _ := b.Player("a")
	elos := solver.UncertaintyElo(b, a)
	require.Len(t, elos, 2)
	for _, e := range elos {
		assert.Greater(t, e, 0.0)
	}
}

package whr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/whr"
)

// TestSaveLoadIdempotence checks the persistence round-trip: save -> load
// -> save produces byte-identical output, and the loaded Registry answers
// identically to the original for every query.
func TestSaveLoadIdempotence(t *testing.T) {
	original, err := whr.New()
	require.NoError(t, err)
	require.NoError(t, original.CreateGame("shusaku", "shusai", "B", 1, 0))
	require.NoError(t, original.CreateGame("shusaku", "shusai", "W", 2, 0))
	require.NoError(t, original.Iterate(20))

	data1, err := original.Save()
	require.NoError(t, err)

	loaded, err := whr.Load(data1)
	require.NoError(t, err)

	data2, err := loaded.Save()
	require.NoError(t, err)
	assert.Equal(t, data1, data2)

	originalRatings, err := original.RatingsForPlayer("shusaku")
	require.NoError(t, err)
	loadedRatings, err := loaded.RatingsForPlayer("shusaku")
	require.NoError(t, err)
	require.Equal(t, len(originalRatings), len(loadedRatings))
	for i := range originalRatings {
		assert.Equal(t, originalRatings[i], loadedRatings[i])
	}
}

// TestLoad_ContinuesIterating checks that a loaded Registry's solver
// wiring survives the round trip: further Iterate calls keep converging
// rather than operating on disconnected navigation links.
func TestLoad_ContinuesIterating(t *testing.T) {
	original, err := whr.New()
	require.NoError(t, err)
	for day := 1; day <= 5; day++ {
		require.NoError(t, original.CreateGame("winner", "loser", "B", day, 0))
	}
	require.NoError(t, original.Iterate(5))

	data, err := original.Save()
	require.NoError(t, err)
	loaded, err := whr.Load(data)
	require.NoError(t, err)

	require.NoError(t, loaded.Iterate(50))
	ratings, err := loaded.RatingsForPlayer("winner")
	require.NoError(t, err)
	assert.Greater(t, ratings[len(ratings)-1].Elo, 0.0)
}

func TestLoad_BadDataReturnsPersistenceError(t *testing.T) {
	_, err := whr.Load([]byte("not a gob stream"))
	require.Error(t, err)
	assert.ErrorIs(t, err, whr.ErrPersistence)
}

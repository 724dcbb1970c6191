package solver

import (
	"github.com/katalvlaran/whr/whrcore"
)

// Variances returns, for every PlayerDay of player in order, the Laplace
// approximation's variance: the diagonal of the inverse of player's
// tridiagonal Hessian, computed via a two-pass backward recurrence
// rather than a dense matrix inversion. It is always recomputed fresh
// from player's current ratings, never cached.
func Variances(base *whrcore.Base, player *whrcore.Player) []float64 {
	n := len(player.Days)
	if n == 0 {
		return nil
	}
	diag, off := assembleHessian(base, player, nil, nil)
	if n == 1 {
		return []float64{1 / diag[0]}
	}
	m, cp := thomasDecompose(off, diag)
	return computeVariances(m, cp)
}

// UncertaintyElo returns player's per-day rating uncertainty in Elo
// units, in the same day order as player.Days.
func UncertaintyElo(base *whrcore.Base, player *whrcore.Player) []float64 {
	v := Variances(base, player)
	elo := make([]float64, len(v))
	for i, v2 := range v {
		elo[i] = whrcore.UncertaintyElo(v2)
	}
	return elo
}

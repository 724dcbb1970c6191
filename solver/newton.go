package solver

import (
	"math"

	"github.com/katalvlaran/whr/numerics"
	"github.com/katalvlaran/whr/whrcore"
)

// assembleHessian builds the tridiagonal Hessian diagonal and
// off-diagonal of player's negative log posterior (Bradley-Terry
// likelihood plus Wiener prior), from player's PlayerDay terms under
// snap. The first PlayerDay also carries one virtual win and one virtual
// loss against a virtual opponent of rating 0, which keeps the posterior
// bounded when a player has only wins or only losses. If grad is non-nil it is accumulated with the matching gradient
// contributions in the same pass; pass nil when only the Hessian is
// needed (the uncertainty computer's use case).
func assembleHessian(base *whrcore.Base, player *whrcore.Player, snap whrcore.RatingSnapshot, grad []float64) (diag, off []float64) {
	n := len(player.Days)
	diag = make([]float64, n)

	for i, pd := range player.Days {
		for _, term := range pd.GameTerms(base, snap) {
			s := numerics.Sigmoid(pd.R + term.SelfHandicap - math.Log(term.OpponentGamma))
			diag[i] += numerics.ClampVariance(s * (1 - s))
			if grad != nil {
				outcome := 0.0
				if term.Won {
					outcome = 1.0
				}
				grad[i] += s - outcome
			}
		}
	}

	if n > 0 {
		s0 := numerics.Sigmoid(player.Days[0].R)
		diag[0] += 2 * numerics.ClampVariance(s0*(1-s0))
		if grad != nil {
			grad[0] += 2*s0 - 1
		}
	}

	off = make([]float64, 0, n-1)
	for i := 0; i < n-1; i++ {
		deltaDay := float64(player.Days[i+1].Day - player.Days[i].Day)
		a := 1 / (player.Omega2Natural * deltaDay)
		off = append(off, -a)
		diag[i] += a
		diag[i+1] += a
		if grad != nil {
			grad[i] += a * (player.Days[i].R - player.Days[i+1].R)
			grad[i+1] += a * (player.Days[i+1].R - player.Days[i].R)
		}
	}
	return diag, off
}

// NewtonStep performs one Newton-Raphson update across every PlayerDay of
// player, holding every opponent's rating fixed at whatever snap resolves
// (nil reads live ratings, the Gauss-Seidel default; a non-nil
// whrcore.RatingSnapshot freezes them, for the Jacobi driver variant).
//
// It builds the gradient and Hessian (assembleHessian, above), solves
// for the step (Thomas algorithm, or a direct 1x1 divide for a
// single-day history), and applies it (r -= delta). It returns the
// largest |delta r| applied, for the caller's convergence metric, and a
// *NumericalFaultError if any resulting rating leaves the sanity bound.
func NewtonStep(base *whrcore.Base, player *whrcore.Player, snap whrcore.RatingSnapshot) (float64, error) {
	n := len(player.Days)
	if n == 0 {
		return 0, ErrNoPlayerDays
	}

	grad := make([]float64, n)
	diag, off := assembleHessian(base, player, snap, grad)

	var delta []float64
	if n == 1 {
		delta = []float64{grad[0] / diag[0]}
	} else {
		m, cp := thomasDecompose(off, diag)
		delta = thomasSolve(off, m, cp, grad)
	}

	maxAbs := 0.0
	for i, pd := range player.Days {
		pd.R -= delta[i]
		if d := math.Abs(delta[i]); d > maxAbs {
			maxAbs = d
		}
		if math.Abs(pd.R) > numerics.SanityBound {
			return 0, &NumericalFaultError{Player: player.Name, Day: pd.Day, R: pd.R}
		}
	}
	return maxAbs, nil
}

// Package whr implements Remi Coulom's Whole-History Rating: a batch
// Bayesian dynamic rating model in which every player's skill is a
// latent time series (one PlayerDay per day they played) and every
// recorded game contributes Bradley-Terry likelihood evidence, coupled
// across a player's days by a Wiener prior.
//
// Package whr is the public facade: Registry wraps a whrcore.Base and a
// solver.Driver, and exposes the query surface and persistence format
// described below. The hard numerical work — assembling a player's
// tridiagonal Hessian and solving the Newton step with a hand-written
// Thomas algorithm, then the Laplace-approximation uncertainty — lives
// in package solver; the owned data graph (Player, PlayerDay, Game,
// Base) lives in package whrcore. See those packages' docs for the
// details; this package only wires them together and exposes the
// surface an external loader, CLI wrapper or persistence layer needs:
//
//	reg, err := whr.New(whr.WithW2(300), whr.WithUncased(false))
//	err = reg.CreateGame("shusaku", "shusai", "B", 1, 0)
//	converged, err := reg.AutoIterate(0, 1e-6, 10)
//	ratings, err := reg.RatingsForPlayer("shusaku")
//
// Configuration is the closed two-field model set (w2, uncased) plus
// WithParallelWorkers for the solver's sweep variant, expressed as
// functional options rather than a dynamic dictionary, so there is no
// such thing as an unrecognized configuration key to reject at runtime
// — the compiler rejects it instead.
//
// Persistence round-trips a Registry exactly (every Player, History,
// Game and the configuration) through encoding/gob; see Save and Load.
package whr

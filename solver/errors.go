package solver

import "errors"

// ErrNoPlayerDays indicates NewtonStep was called for a player with an
// empty History, which cannot occur through whrcore.Base.CreateGame but
// is guarded against defensively.
var ErrNoPlayerDays = errors.New("solver: player has no PlayerDay nodes")

// NumericalFaultError reports that a player's rating left the sanity
// bound during a sweep: the bound catches divergence before it can
// propagate into every other player's Hessian. Iterate and AutoIterate
// halt as soon as one is produced; wrap/unwrap it with errors.As to
// recover the offending player, day and value.
type NumericalFaultError struct {
	Player string
	Day    int
	R      float64
}

func (e *NumericalFaultError) Error() string {
	return "solver: numerical fault: player " + e.Player + " exceeded the rating sanity bound"
}

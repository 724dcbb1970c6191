package solver

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/whr/whrcore"
)

// Driver sweeps every player in a *whrcore.Base to convergence. The
// default sweep order is the Base's player insertion order, which is
// stable within a run: sweep order need not be globally deterministic
// across different runs, but repeated Iterate calls on the same Driver
// always visit players in the same order.
type Driver struct {
	base *whrcore.Base
	opts Options
}

// NewDriver builds a Driver over base. Pass WithParallel to opt into the
// Jacobi sweep variant; with no options the driver is the sequential
// Gauss-Seidel default.
func NewDriver(base *whrcore.Base, opts ...Option) *Driver {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{base: base, opts: o}
}

// Iterate performs n full sweeps over every player, unconditionally. It
// returns as soon as any sweep produces a *NumericalFaultError.
func (d *Driver) Iterate(n int) error {
	for i := 0; i < n; i++ {
		if _, err := d.sweep(); err != nil {
			return err
		}
	}
	return nil
}

// AutoIterate repeatedly runs Iterate(batchSize), checking after each
// batch whether the largest |delta r| observed during that batch has
// fallen to or below precision. It stops and reports converged=true as
// soon as that happens, or converged=false if timeLimit elapses first
// (timeLimit <= 0 means no limit). Because the deadline is only checked
// at batch boundaries, a call can run up to batchSize sweeps past the
// deadline; this amortizes the cost of checking the wall clock instead
// of paying it on every single sweep.
func (d *Driver) AutoIterate(timeLimit time.Duration, precision float64, batchSize int) (bool, error) {
	var deadline time.Time
	if timeLimit > 0 {
		deadline = time.Now().Add(timeLimit)
	}

	for {
		maxDelta := 0.0
		for i := 0; i < batchSize; i++ {
			delta, err := d.sweep()
			if err != nil {
				return false, err
			}
			if delta > maxDelta {
				maxDelta = delta
			}
		}
		if maxDelta <= precision {
			return true, nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false, nil
		}
	}
}

// sweep runs one Newton update per player and returns the largest
// |delta r| observed across every player and day touched.
func (d *Driver) sweep() (float64, error) {
	if d.opts.workers > 1 {
		return d.sweepJacobi()
	}
	return d.sweepGaussSeidel()
}

// sweepGaussSeidel is the default: each player's Newton step reads its
// opponents' ratings live, as written by every earlier player in this
// same sweep and by every prior sweep.
func (d *Driver) sweepGaussSeidel() (float64, error) {
	maxDelta := 0.0
	for _, p := range d.base.Players {
		delta, err := NewtonStep(d.base, p, nil)
		if err != nil {
			return 0, err
		}
		if delta > maxDelta {
			maxDelta = delta
		}
	}
	return maxDelta, nil
}

// sweepJacobi snapshots every rating before the sweep, then solves all
// players concurrently against that frozen snapshot, bounded to
// d.opts.workers goroutines at a time via errgroup.Group.SetLimit. Each
// goroutine only ever mutates its own player's PlayerDay.R values, so
// concurrent writes never race; concurrent reads of other players' live
// ratings never happen because every read goes through the snapshot.
func (d *Driver) sweepJacobi() (float64, error) {
	snap := d.base.Snapshot()

	var g errgroup.Group
	g.SetLimit(d.opts.workers)

	deltas := make([]float64, len(d.base.Players))
	for i, p := range d.base.Players {
		i, p := i, p
		g.Go(func() error {
			delta, err := NewtonStep(d.base, p, snap)
			if err != nil {
				return err
			}
			deltas[i] = delta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	maxDelta := 0.0
	for _, delta := range deltas {
		maxDelta = math.Max(maxDelta, delta)
	}
	return maxDelta, nil
}

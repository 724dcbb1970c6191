package whr

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/whr/solver"
	"github.com/katalvlaran/whr/whrcore"
)

// Registry owns every Player and Game and is the entry point for
// recording games, running inference, and querying ratings. Multiple
// independent Registries may coexist; none of this package's state is
// global.
type Registry struct {
	base   *whrcore.Base
	driver *solver.Driver
}

// New constructs an empty Registry. With no options it uses the default
// configuration: w2=300 (Elo^2), uncased=false, sequential Gauss-Seidel
// sweeps.
func New(opts ...Option) (*Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base, err := whrcore.NewBase(o.w2, o.uncased)
	if err != nil {
		return nil, err
	}

	var driverOpts []solver.Option
	if o.parallel > 1 {
		driverOpts = append(driverOpts, solver.WithParallel(o.parallel))
	}

	return &Registry{
		base:   base,
		driver: solver.NewDriver(base, driverOpts...),
	}, nil
}

// parseWinner accepts "B"/"W" case-insensitively: tolerating case on an
// otherwise rigid two-letter alphabet costs nothing and saves callers
// from normalizing loader input themselves.
func parseWinner(s string) (whrcore.Winner, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B":
		return whrcore.WinnerBlack, nil
	case "W":
		return whrcore.WinnerWhite, nil
	default:
		return "", fmt.Errorf("%w: %q", whrcore.ErrInvalidWinner, s)
	}
}

// CreateGame records one pairwise result. winner must be "B" or "W"
// (case-insensitive); handicap defaults to 0 by simply passing 0.
func (r *Registry) CreateGame(black, white, winner string, day int, handicap float64) error {
	w, err := parseWinner(winner)
	if err != nil {
		return err
	}
	return r.base.CreateGame(black, white, w, day, handicap)
}

// Iterate performs n full Gauss-Seidel (or, with WithParallelWorkers,
// Jacobi) sweeps over every player, unconditionally.
func (r *Registry) Iterate(n int) error {
	return r.driver.Iterate(n)
}

// AutoIterate repeatedly sweeps in batches of batchSize until the
// largest |delta r| observed in a batch falls to or below precision, or
// timeLimit elapses (timeLimit <= 0 means no limit). It returns whether
// convergence was reached.
func (r *Registry) AutoIterate(timeLimit time.Duration, precision float64, batchSize int) (bool, error) {
	return r.driver.AutoIterate(timeLimit, precision, batchSize)
}

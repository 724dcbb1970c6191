package solver

// Options configures a Driver. The zero value is the default: sequential
// Gauss-Seidel sweeps.
type Options struct {
	workers int // > 1 selects the parallel Jacobi variant
}

// Option is a functional option for NewDriver, following this module's
// functional-options idiom, as used by whr.Option.
type Option func(*Options)

// WithParallel selects the Jacobi sweep variant: every sweep snapshots
// all ratings first, then solves up to workers players concurrently
// against that snapshot. workers <= 1 is equivalent to not passing this
// option at all. This is never the default: plain NewDriver(base) is
// always sequential Gauss-Seidel.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.workers = workers
	}
}

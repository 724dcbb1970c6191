package whr

import "github.com/katalvlaran/whr/whrcore"

// Options holds the two recognized model configuration fields (w2,
// uncased) plus the solver's parallel worker count. Its fields are
// unexported; set them only through New's ...Option parameter,
// following this module's functional-options idiom throughout.
type Options struct {
	w2       float64
	uncased  bool
	parallel int
}

// Option configures a Registry at construction time.
type Option func(*Options)

// WithW2 sets the rating-variance-per-day, in Elo^2 units. The default,
// used when this option is omitted, is whrcore.DefaultW2 (300).
func WithW2(w2 float64) Option {
	return func(o *Options) { o.w2 = w2 }
}

// WithUncased enables case-folded player-name lookup: "Shu" and "SHU"
// resolve to the same Player. Off by default.
func WithUncased(uncased bool) Option {
	return func(o *Options) { o.uncased = uncased }
}

// WithParallelWorkers opts the Registry's Iterate/AutoIterate into the
// Jacobi sweep variant (solver.WithParallel) instead of the default
// sequential Gauss-Seidel sweep. workers <= 1 leaves the default in
// place.
func WithParallelWorkers(workers int) Option {
	return func(o *Options) { o.parallel = workers }
}

func defaultOptions() Options {
	return Options{w2: whrcore.DefaultW2, uncased: false, parallel: 0}
}

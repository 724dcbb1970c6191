// Package solver implements the numerical heart of whole-history rating:
// for one player at a time, it assembles the gradient and tridiagonal
// Hessian of the negative log posterior (Bradley-Terry likelihood, a
// Wiener prior between days, and one virtual win and one virtual loss
// against a rating-0 opponent on each player's first day) and solves for the Newton step with a hand-written
// Thomas algorithm (LDL^T specialized to tridiagonal systems) rather than
// a generic sparse solver — the matrix structure is fixed and tridiagonal,
// so a bespoke O(n) solve is both shorter and faster than reaching for a
// general sparse-matrix library.
//
// Driver sweeps every player in a *whrcore.Base once per call to Iterate,
// holding opponents' ratings at their current values while updating one
// player at a time (Gauss-Seidel); this is the default for both Iterate
// and AutoIterate. WithParallel selects a Jacobi
// variant instead, snapshotting every rating before the sweep and
// solving all players concurrently with golang.org/x/sync/errgroup; it
// is never the default because holding every opponent fixed for an
// entire sweep converges slower than letting each player see its
// opponents' freshest ratings immediately.
//
// Variances produces, for every PlayerDay of a player, the Laplace
// approximation's variance, read off the diagonal of the same tridiagonal
// Hessian's inverse via a two-pass backward recurrence. It is always
// recomputed on demand, never cached.
package solver

// Package numerics provides the small set of stable floating-point
// primitives shared by the rest of the whole-history-rating module:
// a branch-stable logistic sigmoid, conversions between the natural
// rating scale (r, where gamma = e^r) and Elo, and the sanity bounds
// the solver enforces to detect divergence.
//
// Nothing here allocates and nothing here can produce NaN for finite
// input: Sigmoid branches on the sign of its argument so the exponential
// it evaluates is always of a non-positive number, so its denominator is
// never below 1, and ClampVariance floors variance terms at Epsilon.
package numerics

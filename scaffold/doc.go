// Package scaffold implements two associative-reduction building
// blocks: an inception reducer (cumulative since the first observation)
// and a fixed-window reducer (the last N knots, or the last Δ of time).
// Both are generic over an input type, an accumulator ("Data") type,
// and an output type, and both produce a plain op.Operator — package
// ops instantiates them to build sum, mean, variance, standard
// deviation, EMA and the knot count (covariance and correlation use
// their own operator in package ops), and nothing here hardcodes any
// particular numeric reduction.
//
// The window reducer's O(1) amortized query comes from an invertible
// accumulator (add one knot, subtract one evicted knot) rather than
// re-scanning the buffer — valid for every reduction package ops builds
// on top of it, since sums and second moments are invertible under
// real subtraction. A reduction that is associative
// but NOT invertible (and so cannot evict in O(1)) is out of scope for
// this scaffold.
package scaffold

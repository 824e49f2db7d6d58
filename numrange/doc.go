// Package numrange answers questions about a scalar and a pair of range
// boundaries: containment, distance, clamping, overlap, intersection, the
// bounding envelope of two ranges and containment of one range in another.
//
// Ranges are bidirectional. A range given as (19, 0) is the same range as
// (0, 19); every function normalizes its boundaries before use. A range whose
// boundaries are equal is a single point. In exclusive mode it contains nothing.
//
// Scalars live in one of two domains: float64 reals and arbitrary-precision
// integers. Each public function picks its domain once, on entry:
//
//   - if any operand is a big integer and every operand is finite, the call is
//     evaluated with math/big. Integral floats convert exactly. Non-integral
//     floats are rejected with ErrNotIntegral under Options.Strict and truncated
//     toward zero otherwise.
//   - in every other case the call is evaluated in float64, and big integers
//     are rounded to the nearest float64.
//
// The zero Scalar is absent. Strict calls reject absent operands with
// ErrAbsentBound. Non-strict calls treat them as NaN, so predicates answer
// false and measurements return NaN.
package numrange

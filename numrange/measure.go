package numrange

// DistanceToRange returns how far value lies outside the inclusive range:
// zero inside, otherwise the gap to the nearer boundary.
func DistanceToRange(value, start, end Scalar) Scalar {
	xs, _ := promote(false, value, start, end)
	if hasNaN(xs...) {
		return nan()
	}
	v := xs[0]
	lower, upper := normalize(xs[1], xs[2])
	switch {
	case compare(v, lower) < 0:
		return sub(lower, v)
	case compare(v, upper) > 0:
		return sub(v, upper)
	default:
		return zeroLike(v)
	}
}

// ClampToRange returns value when it lies in the inclusive range and the
// nearer boundary otherwise.
func ClampToRange(value, start, end Scalar) Scalar {
	xs, _ := promote(false, value, start, end)
	if hasNaN(xs...) {
		return nan()
	}
	v := xs[0]
	lower, upper := normalize(xs[1], xs[2])
	switch {
	case compare(v, lower) < 0:
		return lower
	case compare(v, upper) > 0:
		return upper
	default:
		return v
	}
}

// RangeSize returns upper - lower.
func RangeSize(start, end Scalar) Scalar {
	xs, _ := promote(false, start, end)
	if hasNaN(xs...) {
		return nan()
	}
	lower, upper := normalize(xs[0], xs[1])
	return sub(upper, lower)
}

// RangeCenter returns (start + end) / 2. In the big domain the division
// truncates toward zero, so RangeCenter(Int(-3), Int(0)) is -1.
func RangeCenter(start, end Scalar) Scalar {
	xs, _ := promote(false, start, end)
	if hasNaN(xs...) {
		return nan()
	}
	return half(add(xs[0], xs[1]))
}

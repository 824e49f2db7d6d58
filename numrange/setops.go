package numrange

// Range is a pair of boundaries in either order.
type Range struct {
	Start Scalar
	End   Scalar
}

// Lower returns the smaller boundary, promoted to the range's domain.
func (r Range) Lower() Scalar {
	lower, _ := r.bounds()
	return lower
}

// Upper returns the larger boundary, promoted to the range's domain.
func (r Range) Upper() Scalar {
	_, upper := r.bounds()
	return upper
}

func (r Range) bounds() (Scalar, Scalar) {
	xs, _ := promote(false, r.Start, r.End)
	if hasNaN(xs...) {
		return nan(), nan()
	}
	return normalize(xs[0], xs[1])
}

func (r Range) String() string {
	return "[" + r.Start.String() + "," + r.End.String() + "]"
}

// pairBounds promotes both ranges together and normalizes each. ok is false
// when a boundary is NaN.
func pairBounds(strict bool, r1, r2 Range) (l1, u1, l2, u2 Scalar, ok bool, err error) {
	xs, err := promote(strict, r1.Start, r1.End, r2.Start, r2.End)
	if err != nil {
		return
	}
	if hasNaN(xs...) {
		return
	}
	l1, u1 = normalize(xs[0], xs[1])
	l2, u2 = normalize(xs[2], xs[3])
	ok = true
	return
}

// RangesOverlap reports whether r1 and r2 share at least one point. Ranges
// that only touch at a boundary overlap unless opts.Exclusive is set.
func RangesOverlap(r1, r2 Range, opts Options) (bool, error) {
	l1, u1, l2, u2, ok, err := pairBounds(opts.Strict, r1, r2)
	if err != nil || !ok {
		return false, err
	}
	if opts.Exclusive {
		return compare(l1, u2) < 0 && compare(l2, u1) < 0, nil
	}
	return compare(l1, u2) <= 0 && compare(l2, u1) <= 0, nil
}

// RangeIntersection returns the common part of r1 and r2. The boolean is
// false when the ranges do not overlap inclusively.
func RangeIntersection(r1, r2 Range) (Range, bool) {
	l1, u1, l2, u2, ok, _ := pairBounds(false, r1, r2)
	if !ok || compare(l1, u2) > 0 || compare(l2, u1) > 0 {
		return Range{}, false
	}
	return Range{Start: maxOf(l1, l2), End: minOf(u1, u2)}, true
}

// RangeUnion returns the bounding envelope of r1 and r2: the smallest single
// range covering both. Disjoint inputs still yield one contiguous range that
// includes the gap between them; this is not a set union.
func RangeUnion(r1, r2 Range) Range {
	l1, u1, l2, u2, ok, _ := pairBounds(false, r1, r2)
	if !ok {
		return Range{Start: nan(), End: nan()}
	}
	return Range{Start: minOf(l1, l2), End: maxOf(u1, u2)}
}

// RangeContains reports whether inner lies within outer. With
// opts.Exclusive both ends must be strictly inside, so a range does not
// contain itself.
func RangeContains(outer, inner Range, opts Options) (bool, error) {
	ol, ou, il, iu, ok, err := pairBounds(opts.Strict, outer, inner)
	if err != nil || !ok {
		return false, err
	}
	if opts.Exclusive {
		return compare(ol, il) < 0 && compare(iu, ou) < 0, nil
	}
	return compare(ol, il) <= 0 && compare(iu, ou) <= 0, nil
}

// RangeFromValues returns the range spanning the smallest and largest of
// values. It fails with ErrEmptyInput when values is empty.
func RangeFromValues(values []Scalar) (Range, error) {
	if len(values) == 0 {
		return Range{}, ErrEmptyInput
	}
	xs, _ := promote(false, values...)
	if hasNaN(xs...) {
		return Range{Start: nan(), End: nan()}, nil
	}
	lower, upper := xs[0], xs[0]
	for _, x := range xs[1:] {
		if compare(x, lower) < 0 {
			lower = x
		}
		if compare(x, upper) > 0 {
			upper = x
		}
	}
	return Range{Start: lower, End: upper}, nil
}

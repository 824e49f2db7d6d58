package numrange

// Options tune containment, overlap and range-containment checks.
type Options struct {
	// Exclusive excludes both boundaries.
	Exclusive bool
	// Strict turns absent operands and lossy float to big-integer
	// conversions into errors instead of coercing them.
	Strict bool
	// Cache memoizes IsInRange results when non-nil.
	Cache *Cache
}

// Definition is a range together with the options used to test against it.
type Definition struct {
	Start   Scalar
	End     Scalar
	Options Options
}

// Validator reports whether a value lies in the range it was created for.
type Validator func(value Scalar) (bool, error)

// IsInRange reports whether value lies between start and end, in either
// order. Boundaries are included unless opts.Exclusive is set. The only
// errors come from opts.Strict validation.
func IsInRange(value, start, end Scalar, opts Options) (bool, error) {
	xs, err := promote(opts.Strict, value, start, end)
	if err != nil {
		return false, err
	}
	v := xs[0]
	lower, upper := normalize(xs[1], xs[2])
	if opts.Cache != nil {
		return opts.Cache.lookup(cacheKey(v, lower, upper, opts.Exclusive), func() bool {
			return within(v, lower, upper, opts.Exclusive)
		}), nil
	}
	return within(v, lower, upper, opts.Exclusive), nil
}

// IsInRange is the method form of the package-level IsInRange.
func (s Scalar) IsInRange(start, end Scalar, opts Options) (bool, error) {
	return IsInRange(s, start, end, opts)
}

func within(v, lower, upper Scalar, exclusive bool) bool {
	if hasNaN(v, lower, upper) {
		return false
	}
	lo, hi := compare(v, lower), compare(v, upper)
	if exclusive {
		return lo > 0 && hi < 0
	}
	return lo >= 0 && hi <= 0
}

// NewValidator binds start, end and opts into a Validator.
func NewValidator(start, end Scalar, opts Options) Validator {
	return func(value Scalar) (bool, error) {
		return IsInRange(value, start, end, opts)
	}
}

// IsInAnyRange reports whether value lies in at least one of defs. An empty
// defs yields false.
func IsInAnyRange(value Scalar, defs []Definition) (bool, error) {
	for _, d := range defs {
		ok, err := IsInRange(value, d.Start, d.End, d.Options)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// IsInAllRanges reports whether value lies in every one of defs. An empty
// defs yields true.
func IsInAllRanges(value Scalar, defs []Definition) (bool, error) {
	for _, d := range defs {
		ok, err := IsInRange(value, d.Start, d.End, d.Options)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsAtBoundary reports whether value equals the lower or upper boundary
// exactly.
func IsAtBoundary(value, start, end Scalar) bool {
	xs, _ := promote(false, value, start, end)
	if hasNaN(xs...) {
		return false
	}
	lower, upper := normalize(xs[1], xs[2])
	return compare(xs[0], lower) == 0 || compare(xs[0], upper) == 0
}

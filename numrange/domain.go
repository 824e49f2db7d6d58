package numrange

import (
	"fmt"
	"math"
	"math/big"
)

// promote brings xs into a single domain, see the package documentation for
// the rules. The returned slice never aliases xs.
func promote(strict bool, xs ...Scalar) ([]Scalar, error) {
	anyBig, allFinite := false, true
	for _, x := range xs {
		switch x.kind {
		case KindAbsent:
			if strict {
				return nil, ErrAbsentBound
			}
			allFinite = false
		case KindBig:
			anyBig = true
		case KindFloat:
			if !x.isFinite() {
				allFinite = false
			}
		}
	}

	out := make([]Scalar, len(xs))
	if anyBig && allFinite {
		for i, x := range xs {
			if x.kind == KindBig {
				out[i] = x
				continue
			}
			if strict && x.f != math.Trunc(x.f) {
				return nil, fmt.Errorf("%w: %v", ErrNotIntegral, x.f)
			}
			// big.Float.Int truncates toward zero
			b, _ := new(big.Float).SetFloat64(x.f).Int(nil)
			out[i] = bigOwned(b)
		}
		return out, nil
	}

	for i, x := range xs {
		switch x.kind {
		case KindFloat:
			out[i] = x
		case KindBig:
			out[i] = Float(x.Float64())
		default:
			out[i] = Float(math.NaN())
		}
	}
	return out, nil
}

func hasNaN(xs ...Scalar) bool {
	for _, x := range xs {
		if x.isNaN() {
			return true
		}
	}
	return false
}

// compare orders two promoted, non-NaN scalars of the same domain.
func compare(a, b Scalar) int {
	if a.kind == KindBig {
		return a.b.Cmp(b.b)
	}
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	default:
		return 0
	}
}

// normalize returns the two boundaries as (lower, upper).
func normalize(a, b Scalar) (Scalar, Scalar) {
	if compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}

func minOf(a, b Scalar) Scalar {
	lower, _ := normalize(a, b)
	return lower
}

func maxOf(a, b Scalar) Scalar {
	_, upper := normalize(a, b)
	return upper
}

func add(a, b Scalar) Scalar {
	if a.kind == KindBig {
		return bigOwned(new(big.Int).Add(a.b, b.b))
	}
	return Float(a.f + b.f)
}

func sub(a, b Scalar) Scalar {
	if a.kind == KindBig {
		return bigOwned(new(big.Int).Sub(a.b, b.b))
	}
	return Float(a.f - b.f)
}

// half divides by two; big integers truncate toward zero.
func half(a Scalar) Scalar {
	if a.kind == KindBig {
		return bigOwned(new(big.Int).Quo(a.b, big.NewInt(2)))
	}
	return Float(a.f / 2)
}

// zeroLike returns zero in the domain of a.
func zeroLike(a Scalar) Scalar {
	if a.kind == KindBig {
		return bigOwned(new(big.Int))
	}
	return Float(0)
}

func nan() Scalar {
	return Float(math.NaN())
}

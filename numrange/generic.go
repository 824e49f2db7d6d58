package numrange

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Of converts a native Go number into a Scalar. Integer types map to the
// big domain so that int64 and uint64 values keep every bit; float types map
// to the float domain.
func Of[T Number](v T) Scalar {
	var one T = 1
	if one/2*2 == one {
		return Float(float64(v))
	}
	if v < 0 {
		return bigOwned(big.NewInt(int64(v)))
	}
	return bigOwned(new(big.Int).SetUint64(uint64(v)))
}

// Contains is IsInRange for native Go numbers.
func Contains[T Number](v, start, end T, opts Options) (bool, error) {
	return IsInRange(Of(v), Of(start), Of(end), opts)
}

// Clamp is ClampToRange for native Go numbers, computed in T.
func Clamp[T Number](v, start, end T) T {
	lower, upper := min(start, end), max(start, end)
	return min(upper, max(lower, v))
}

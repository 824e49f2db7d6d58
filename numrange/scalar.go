package numrange

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the numeric domain of a Scalar.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindFloat
	KindBig
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBig:
		return "big"
	default:
		return "absent"
	}
}

// Scalar is a float64 or an arbitrary-precision integer. The zero value is
// absent. A Scalar never shares or mutates the *big.Int it holds, so it can
// be copied freely and used from several goroutines.
type Scalar struct {
	kind Kind
	f    float64
	b    *big.Int
}

// Float returns a float-domain scalar.
func Float(f float64) Scalar {
	return Scalar{kind: KindFloat, f: f}
}

// Int returns a big-domain scalar holding i.
func Int(i int64) Scalar {
	return Scalar{kind: KindBig, b: big.NewInt(i)}
}

// Big returns a big-domain scalar holding a copy of b. A nil b is absent.
func Big(b *big.Int) Scalar {
	if b == nil {
		return Scalar{}
	}
	return Scalar{kind: KindBig, b: new(big.Int).Set(b)}
}

// bigOwned wraps b without copying; b must not be touched afterwards.
func bigOwned(b *big.Int) Scalar {
	return Scalar{kind: KindBig, b: b}
}

// ParseScalar parses the textual form used by String.
//
// Supported forms:
//   - "", "null", "undefined": absent
//   - "123n", "-7n": big integer
//   - anything strconv.ParseFloat accepts, including "inf", "-Inf" and "NaN": float
//
// Surrounding spaces are ignored.
func ParseScalar(s string) (Scalar, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "undefined":
		return Scalar{}, nil
	case "nan":
		return Float(math.NaN()), nil
	}
	if digits, ok := strings.CutSuffix(s, "n"); ok {
		b, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return Scalar{}, fmt.Errorf("invalid big integer %q", s)
		}
		return bigOwned(b), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Scalar{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float(f), nil
}

func (s Scalar) Kind() Kind {
	return s.kind
}

func (s Scalar) IsAbsent() bool {
	return s.kind == KindAbsent
}

// Float64 returns the value as a float64. Big integers are rounded to the
// nearest float64 and an absent scalar yields NaN.
func (s Scalar) Float64() float64 {
	switch s.kind {
	case KindFloat:
		return s.f
	case KindBig:
		f, _ := new(big.Float).SetInt(s.b).Float64()
		return f
	default:
		return math.NaN()
	}
}

// BigInt returns a copy of the held integer, or nil unless s is in the big domain.
func (s Scalar) BigInt() *big.Int {
	if s.kind != KindBig {
		return nil
	}
	return new(big.Int).Set(s.b)
}

// Equal reports whether s and o are in the same domain and hold the same
// value. NaN is not equal to itself.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindFloat:
		return s.f == o.f
	case KindBig:
		return s.b.Cmp(o.b) == 0
	default:
		return true
	}
}

// String returns a form ParseScalar accepts: big integers carry an "n"
// suffix and absent scalars print as "null".
func (s Scalar) String() string {
	switch s.kind {
	case KindFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case KindBig:
		return s.b.String() + "n"
	default:
		return "null"
	}
}

func (s Scalar) isNaN() bool {
	return s.kind == KindFloat && math.IsNaN(s.f)
}

func (s Scalar) isFinite() bool {
	switch s.kind {
	case KindBig:
		return true
	case KindFloat:
		return !math.IsNaN(s.f) && !math.IsInf(s.f, 0)
	default:
		return false
	}
}

package numrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fr(start, end float64) Range {
	return Range{Start: Float(start), End: Float(end)}
}

func requireRange(t *testing.T, want, got Range) {
	t.Helper()
	requireScalar(t, want.Start, got.Start)
	requireScalar(t, want.End, got.End)
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name      string
		r1, r2    Range
		inclusive bool
		exclusive bool
	}{
		{"partial", fr(0, 10), fr(5, 15), true, true},
		{"touching", fr(0, 10), fr(10, 20), true, false},
		{"disjoint", fr(0, 10), fr(20, 30), false, false},
		{"nested", fr(0, 100), fr(40, 60), true, true},
		{"reversed", fr(10, 0), fr(15, 5), true, true},
		{"point_on_edge", fr(0, 10), fr(10, 10), true, false},
		{"big", Range{Int(0), Int(10)}, Range{Int(10), Int(20)}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RangesOverlap(tc.r1, tc.r2, Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.inclusive, got, "inclusive")

			got, err = RangesOverlap(tc.r1, tc.r2, Options{Exclusive: true})
			require.NoError(t, err)
			assert.Equal(t, tc.exclusive, got, "exclusive")

			got, err = RangesOverlap(tc.r2, tc.r1, Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.inclusive, got, "swapped")
		})
	}

	_, err := RangesOverlap(Range{End: Float(1)}, fr(0, 1), Options{Strict: true})
	require.ErrorIs(t, err, ErrAbsentBound)
}

func TestRangeIntersection(t *testing.T) {
	got, ok := RangeIntersection(fr(0, 10), fr(5, 15))
	require.True(t, ok)
	requireRange(t, fr(5, 10), got)

	_, ok = RangeIntersection(fr(0, 10), fr(20, 30))
	require.False(t, ok)

	got, ok = RangeIntersection(fr(0, 10), fr(10, 20))
	require.True(t, ok)
	requireRange(t, fr(10, 10), got)

	got, ok = RangeIntersection(Range{Int(19), Int(0)}, Range{Int(5), Int(40)})
	require.True(t, ok)
	requireRange(t, Range{Int(5), Int(19)}, got)
}

func TestRangeIntersection_MatchesOverlap(t *testing.T) {
	points := []float64{-4, 0, 1.5, 3, 8}
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				for _, d := range points {
					r1, r2 := fr(a, b), fr(c, d)
					overlap, err := RangesOverlap(r1, r2, Options{})
					require.NoError(t, err)
					inter, ok := RangeIntersection(r1, r2)
					require.Equal(t, overlap, ok, "%v %v", r1, r2)
					if !ok {
						continue
					}
					for _, r := range []Range{r1, r2} {
						in, err := RangeContains(r, inter, Options{})
						require.NoError(t, err)
						require.True(t, in, "intersection %v escapes %v", inter, r)
					}
				}
			}
		}
	}
}

func TestRangeUnion(t *testing.T) {
	requireRange(t, fr(0, 15), RangeUnion(fr(0, 10), fr(5, 15)))
	// bounding envelope, the gap is covered
	requireRange(t, fr(0, 30), RangeUnion(fr(10, 0), fr(30, 20)))
	requireRange(t, Range{Int(-5), Int(19)}, RangeUnion(Range{Int(0), Int(19)}, Range{Float(-5), Int(3)}))
}

func TestRangeContains(t *testing.T) {
	cases := []struct {
		name         string
		outer, inner Range
		inclusive    bool
		exclusive    bool
	}{
		{"strictly_inside", fr(0, 100), fr(10, 20), true, true},
		{"identical", fr(0, 10), fr(0, 10), true, false},
		{"shared_lower", fr(0, 10), fr(0, 5), true, false},
		{"sticking_out", fr(0, 10), fr(5, 15), false, false},
		{"reversed", fr(100, 0), fr(20, 10), true, true},
		{"outer_smaller", fr(10, 20), fr(0, 100), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RangeContains(tc.outer, tc.inner, Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.inclusive, got, "inclusive")

			got, err = RangeContains(tc.outer, tc.inner, Options{Exclusive: true})
			require.NoError(t, err)
			assert.Equal(t, tc.exclusive, got, "exclusive")
		})
	}
}

func TestRangeFromValues(t *testing.T) {
	values := []Scalar{Float(1), Float(5), Float(10), Float(3), Float(8), Float(-2), Float(15)}
	got, err := RangeFromValues(values)
	require.NoError(t, err)
	requireRange(t, fr(-2, 15), got)

	got, err = RangeFromValues([]Scalar{Int(3), Float(-2), Int(10)})
	require.NoError(t, err)
	requireRange(t, Range{Int(-2), Int(10)}, got)

	got, err = RangeFromValues([]Scalar{Float(4)})
	require.NoError(t, err)
	requireRange(t, fr(4, 4), got)

	_, err = RangeFromValues(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	require.ErrorIs(t, err, ErrValidation)
	_, err = RangeFromValues([]Scalar{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestRange_LowerUpper(t *testing.T) {
	r := Range{Start: Int(19), End: Float(0)}
	requireScalar(t, Int(0), r.Lower())
	requireScalar(t, Int(19), r.Upper())
	assert.Equal(t, "[19n,0]", r.String())
}

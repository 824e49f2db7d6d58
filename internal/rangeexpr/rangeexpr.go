// Package rangeexpr parses and formats the textual ranges and value lists
// accepted by the inrange command line.
package rangeexpr

import (
	"fmt"
	"strings"

	"github.com/vipcxj/inrange/numrange"
)

// Parse parses a range expression into a Definition.
//
// Supported formats:
//   - [a,b]  inclusive
//   - (a,b)  exclusive
//   - a,b    inclusive
//   - N      single point, same as [N,N]
//
// Spaces are ignored. Boundaries use numrange.ParseScalar, so "10n" is a big
// integer and an empty side is absent. Exclusivity applies to both ends, so
// mixed brackets such as "[a,b)" are rejected. The boundaries may be given in
// either order.
func Parse(value string) (numrange.Definition, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return numrange.Definition{}, fmt.Errorf("empty range")
	}

	exclusive := false
	if first, last := s[0], s[len(s)-1]; first == '(' || first == '[' || last == ')' || last == ']' {
		if len(s) < 2 {
			return numrange.Definition{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		switch {
		case first == '[' && last == ']':
		case first == '(' && last == ')':
			exclusive = true
		default:
			return numrange.Definition{}, fmt.Errorf("mixed or unbalanced brackets: %s", value)
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return numrange.Definition{}, fmt.Errorf("empty interval: %s", value)
		}
	}

	parts := strings.SplitN(s, ",", 2)
	if len(parts) == 1 {
		n, err := parseBound(parts[0], value)
		if err != nil {
			return numrange.Definition{}, err
		}
		return numrange.Definition{Start: n, End: n, Options: numrange.Options{Exclusive: exclusive}}, nil
	}

	start, err := parseBound(parts[0], value)
	if err != nil {
		return numrange.Definition{}, err
	}
	end, err := parseBound(parts[1], value)
	if err != nil {
		return numrange.Definition{}, err
	}
	return numrange.Definition{Start: start, End: end, Options: numrange.Options{Exclusive: exclusive}}, nil
}

func parseBound(tok string, value string) (numrange.Scalar, error) {
	if strings.Contains(tok, ",") {
		return numrange.Scalar{}, fmt.Errorf("too many boundaries: %s", value)
	}
	n, err := numrange.ParseScalar(tok)
	if err != nil {
		return numrange.Scalar{}, fmt.Errorf("invalid boundary in %s: %w", value, err)
	}
	return n, nil
}

// ParseRange is Parse without the options.
func ParseRange(value string) (numrange.Range, bool, error) {
	d, err := Parse(value)
	if err != nil {
		return numrange.Range{}, false, err
	}
	return numrange.Range{Start: d.Start, End: d.End}, d.Options.Exclusive, nil
}

// Format returns a string Parse accepts. The boundaries keep their order.
func Format(r numrange.Range, exclusive bool) string {
	if exclusive {
		return "(" + r.Start.String() + "," + r.End.String() + ")"
	}
	return r.String()
}

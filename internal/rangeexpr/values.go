package rangeexpr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/vipcxj/inrange/numrange"
)

var AllowedFormats = []string{"comma", "newline", "space", "json"}

// DefaultFormats splits on commas, whitespace and line breaks.
var DefaultFormats = []string{"comma", "space", "newline"}

// CheckFormats validates a list of value formats. "json" cannot be combined
// with the others.
func CheckFormats(formats []string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedFormats, format) {
			return fmt.Errorf("invalid value format: %s, allowed formats are: %v", format, AllowedFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("value format 'json' cannot be combined with other formats")
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // drops empty fields
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseValues splits every raw input according to formats and parses each
// piece with numrange.ParseScalar.
//
// With the json format every raw input is either a JSON array or a single
// JSON value. Numbers are floats, strings go through ParseScalar (so "10n" is a
// big integer), and null is absent.
func ParseValues(formats []string, raws []string) ([]numrange.Scalar, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	if err := CheckFormats(formats); err != nil {
		return nil, err
	}
	if slices.Contains(formats, "json") {
		var result []numrange.Scalar
		for _, raw := range raws {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			values, err := parseJSON(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid json values %s: %w", raw, err)
			}
			result = append(result, values...)
		}
		return result, nil
	}

	var sb strings.Builder
	for _, format := range formats {
		switch format {
		case "comma":
			sb.WriteString(",")
		case "newline":
			sb.WriteString("\r\n")
		case "space":
			sb.WriteString(" \t")
		}
	}
	seps := sb.String()
	var result []numrange.Scalar
	for _, raw := range raws {
		for _, tok := range splitAndTrim(raw, seps) {
			v, err := numrange.ParseScalar(tok)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		}
	}
	return result, nil
}

func parseJSON(raw string) ([]numrange.Scalar, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}
	result := make([]numrange.Scalar, 0, len(items))
	for _, item := range items {
		var (
			s   numrange.Scalar
			err error
		)
		switch x := item.(type) {
		case nil:
		case json.Number:
			s, err = numrange.ParseScalar(x.String())
		case string:
			s, err = numrange.ParseScalar(x)
		default:
			err = fmt.Errorf("unsupported json value %v", x)
		}
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

package game

import (
	"fmt"
	"strings"

	"cgt/dyadic"
	"cgt/nimber"
)

// String renders v per the canonical-form text grammar: "0" for
// zero, a bare number for pure numbers, a number/nimber concatenation
// for number-plus-nimber shapes (e.g. "3*2" for 3+*2, "*" for *1), and
// "{L | R}" braces for switches and general forms.
func (v Value) String() string {
	n := v.node()
	switch n.tag {
	case tagNumber:
		return n.number.String()
	case tagNumberPlusNimber:
		if n.number.IsZero() {
			return n.nim.String()
		}
		return n.number.String() + n.nim.String()
	default:
		return fmt.Sprintf("{%s | %s}", joinValues(n.left), joinValues(n.right))
	}
}

func joinValues(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Parse is the symmetric inverse of String: leaf shapes (integers, dyadic
// fractions, nimbers) parse directly, and brace forms "{L1, L2, ... | R1,
// R2, ...}" split on the top-level '|' and ','s (respecting nesting, so
// an option that is itself a brace form splits correctly) and pass the
// parsed option values through FromOptions, re-canonicalizing rather
// than trusting the text's own shape.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("value: empty input")
	}
	if strings.HasPrefix(s, "{") {
		return parseBraces(s)
	}
	if s == "*" {
		return Star(nimber.MustNew(1)), nil
	}
	if strings.HasPrefix(s, "*") {
		n, err := parseNimberSuffix(s[1:])
		if err != nil {
			return Value{}, err
		}
		return Star(n), nil
	}
	if idx := strings.LastIndexByte(s, '*'); idx > 0 {
		numPart, nimPart := s[:idx], s[idx+1:]
		d, err := dyadic.Parse(numPart)
		if err != nil {
			return Value{}, err
		}
		var n nimber.Nimber
		if nimPart == "" {
			n = nimber.MustNew(1)
		} else {
			n, err = parseNimberSuffix(nimPart)
			if err != nil {
				return Value{}, err
			}
		}
		return NumberPlusNimber(d, n), nil
	}
	d, err := dyadic.Parse(s)
	if err != nil {
		return Value{}, err
	}
	return Number(d), nil
}

// parseBraces parses a "{left | right}" brace form.
func parseBraces(s string) (Value, error) {
	if !strings.HasSuffix(s, "}") {
		return Value{}, fmt.Errorf("value: unterminated brace form %q", s)
	}
	inner := s[1 : len(s)-1]
	sides := splitTopLevel(inner, '|')
	if len(sides) != 2 {
		return Value{}, fmt.Errorf("value: brace form %q needs exactly one '|'", s)
	}
	left, err := parseOptionList(sides[0])
	if err != nil {
		return Value{}, err
	}
	right, err := parseOptionList(sides[1])
	if err != nil {
		return Value{}, err
	}
	return FromOptions(left, right), nil
}

// parseOptionList parses a comma-separated list of options, nil for an
// empty (all-whitespace) list.
func parseOptionList(s string) ([]Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := splitTopLevel(s, ',')
	vals := make([]Value, len(parts))
	for i, p := range parts {
		v, err := Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// splitTopLevel splits s on sep, skipping occurrences nested inside
// brace pairs so that an option which is itself a brace form does not
// get split apart.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func parseNimberSuffix(s string) (nimber.Nimber, error) {
	var raw int64
	if _, err := fmt.Sscanf(s, "%d", &raw); err != nil {
		return 0, fmt.Errorf("value: bad nimber suffix %q: %w", s, err)
	}
	return nimber.New(raw)
}

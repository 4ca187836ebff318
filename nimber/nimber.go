// Package nimber implements nimbers: non-negative integers under XOR,
// representing Sprague-Grundy values of impartial game positions.
package nimber

import (
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned when a nimber is constructed from a
// negative value.
type ErrInvalidArgument struct {
	Value int64
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("nimber: negative value %d", e.Value)
}

// Nimber is a non-negative integer under XOR, *n in CGT notation.
type Nimber uint32

// Zero is *0 = 0.
const Zero Nimber = 0

// New constructs *n. Fails with ErrInvalidArgument if n is negative.
func New(n int64) (Nimber, error) {
	if n < 0 {
		return 0, &ErrInvalidArgument{Value: n}
	}
	return Nimber(n), nil
}

// MustNew is New but panics on error, for call sites that already know n
// is non-negative (literal constants, loop counters).
func MustNew(n int64) Nimber {
	v, err := New(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the underlying non-negative integer.
func (n Nimber) Value() uint32 { return uint32(n) }

// Add computes the nim-sum n+m = n XOR m.
func Add(n, m Nimber) Nimber { return n ^ m }

// Sub is identical to Add: nimbers are their own additive inverse.
func Sub(n, m Nimber) Nimber { return n ^ m }

// Neg returns n, since nimbers are self-inverse under addition.
func Neg(n Nimber) Nimber { return n }

// Mex returns the least non-negative integer not present in s.
// See https://en.wikipedia.org/wiki/Mex_(mathematics).
func Mex(s []Nimber) Nimber {
	sorted := make([]Nimber, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var current Nimber
	for _, n := range sorted {
		switch {
		case current < n:
			return current
		case current == n:
			current++
		}
	}
	return current
}

// String renders *n per the canonical-form grammar: "0" for *0, "*" for
// *1, "*n" otherwise.
func (n Nimber) String() string {
	switch {
	case n == 0:
		return "0"
	case n == 1:
		return "*"
	default:
		return fmt.Sprintf("*%d", uint32(n))
	}
}

// Package dyadic implements exact arithmetic on dyadic rational numbers,
// numbers of the form p/2^k with k >= 0. Dyadic numbers are the exact
// arithmetic backing the number component of every short-game value and
// every thermograph breakpoint: sums, differences, and the simplicity rule
// used during canonicalization never lose precision.
package dyadic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned by constructors given a fraction that is
// not representable as a dyadic rational, or a negative denominator
// exponent.
var ErrInvalidArgument = errors.New("dyadic: invalid argument")

// Number is a dyadic rational p/2^k, always stored in lowest terms: the
// numerator is odd whenever the denominator exponent is positive, and
// integers (including zero) have denominator exponent zero.
// The zero value is the number 0.
type Number struct {
	numerator     int64
	denomExponent uint32
}

// Zero is the dyadic number 0.
var Zero = Number{}

// Int constructs the dyadic representation of an integer.
func Int(n int64) Number {
	return Number{numerator: n}.normalized()
}

// New constructs numerator/2^denomExponent, normalizing to lowest terms.
func New(numerator int64, denomExponent uint32) Number {
	return Number{numerator: numerator, denomExponent: denomExponent}.normalized()
}

// NewFraction constructs numerator/denominator. It fails with
// ErrInvalidArgument if the denominator is zero or not a power of two.
func NewFraction(numerator int64, denominator int64) (Number, error) {
	if denominator == 0 {
		return Number{}, fmt.Errorf("%w: zero denominator", ErrInvalidArgument)
	}
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	var exp uint32
	for denominator > 1 {
		if denominator%2 != 0 {
			return Number{}, fmt.Errorf("%w: %d is not a power of two", ErrInvalidArgument, denominator)
		}
		denominator /= 2
		exp++
	}
	return New(numerator, exp), nil
}

func (d Number) normalized() Number {
	for d.numerator != 0 && d.numerator%2 == 0 && d.denomExponent > 0 {
		d.numerator /= 2
		d.denomExponent--
	}
	if d.numerator == 0 {
		d.denomExponent = 0
	}
	return d
}

// Numerator returns the reduced numerator.
func (d Number) Numerator() int64 { return d.numerator }

// DenomExponent returns k such that the denominator is 2^k.
func (d Number) DenomExponent() uint32 { return d.denomExponent }

// Denominator returns 2^DenomExponent as an int64. Panics on overflow
// (denominator exponents beyond 62 never arise from well-formed short
// games; this is the Overflow failure class of the design's error
// taxonomy).
func (d Number) Denominator() int64 {
	if d.denomExponent >= 62 {
		panic("dyadic: denominator exponent overflow")
	}
	return int64(1) << d.denomExponent
}

// IsInteger reports whether the number has denominator 1.
func (d Number) IsInteger() bool { return d.denomExponent == 0 }

// Int64 returns the integer value. Panics if the number is not an integer.
func (d Number) Int64() int64 {
	if !d.IsInteger() {
		panic("dyadic: not an integer")
	}
	return d.numerator
}

// IsZero reports whether the number is zero.
func (d Number) IsZero() bool { return d.numerator == 0 }

// Sign returns -1, 0, or 1.
func (d Number) Sign() int {
	switch {
	case d.numerator < 0:
		return -1
	case d.numerator > 0:
		return 1
	default:
		return 0
	}
}

// commonExponent returns a and b rescaled to a shared denominator exponent.
func commonExponent(a, b Number) (an, bn int64, exp uint32) {
	if a.denomExponent >= b.denomExponent {
		shift := a.denomExponent - b.denomExponent
		return a.numerator, shiftLeft(b.numerator, shift), a.denomExponent
	}
	shift := b.denomExponent - a.denomExponent
	return shiftLeft(a.numerator, shift), b.numerator, b.denomExponent
}

func shiftLeft(n int64, by uint32) int64 {
	if by >= 62 {
		panic("dyadic: shift overflow")
	}
	return n << by
}

// Add returns a+b, exactly.
func Add(a, b Number) Number {
	an, bn, exp := commonExponent(a, b)
	return New(an+bn, exp)
}

// Sub returns a-b, exactly.
func Sub(a, b Number) Number {
	return Add(a, Neg(b))
}

// Neg returns -a.
func Neg(a Number) Number {
	return Number{numerator: -a.numerator, denomExponent: a.denomExponent}
}

// MulInt returns k*a, exactly.
func MulInt(a Number, k int64) Number {
	return New(a.numerator*k, a.denomExponent)
}

// Half returns a/2, exactly.
func Half(a Number) Number {
	return New(a.numerator, a.denomExponent+1)
}

// Double returns 2*a, exactly.
func Double(a Number) Number {
	if a.denomExponent == 0 {
		return New(a.numerator*2, 0)
	}
	return New(a.numerator, a.denomExponent-1)
}

// Mean returns the arithmetic mean (a+b)/2, exactly.
func Mean(a, b Number) Number {
	return Half(Add(a, b))
}

// Cmp returns -1, 0, or 1 as a<b, a==b, or a>b.
func Cmp(a, b Number) int {
	an, bn, _ := commonExponent(a, b)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// Less reports whether a<b.
func Less(a, b Number) bool { return Cmp(a, b) < 0 }

// LessEq reports whether a<=b.
func LessEq(a, b Number) bool { return Cmp(a, b) <= 0 }

// Equal reports whether a==b.
func Equal(a, b Number) bool { return Cmp(a, b) == 0 }

// Max returns the larger of a and b.
func Max(a, b Number) Number {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Number) Number {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// Step adds n directly to the raw numerator, leaving the denominator
// exponent unchanged, then renormalizes. This is not "d + n": at
// denomExponent 1, Step(1) on 1/2 gives 2/2 = 1, the predecessor/successor
// one unit of the denominator away, not a whole integer away. Used where
// a caller already holds a raw numerator and wants the adjacent dyadic at
// the same exponent.
func (d Number) Step(n int64) Number {
	return New(d.numerator+n, d.denomExponent)
}

// Round returns the nearest integer, rounding toward negative infinity on
// exact ties (so 1/2 rounds to 0 and -1/2 to -1).
func (d Number) Round() int64 {
	return Sub(d, New(1, 1)).Ceil()
}

// Ceil returns the smallest integer >= d.
func (d Number) Ceil() int64 {
	den := d.Denominator()
	if d.numerator%den == 0 {
		return d.numerator / den
	}
	if d.numerator > 0 {
		return d.numerator/den + 1
	}
	return d.numerator / den
}

// Floor returns the largest integer <= d.
func (d Number) Floor() int64 {
	den := d.Denominator()
	if d.numerator%den == 0 {
		return d.numerator / den
	}
	if d.numerator > 0 {
		return d.numerator / den
	}
	return d.numerator/den - 1
}

// SimplestBetween returns the simplest dyadic strictly between lo and
// hi per the Simplicity Rule: zero if the interval straddles it,
// otherwise the integer nearest zero strictly between them if one exists, or
// the dyadic of least denominator exponent strictly between them.
// Panics if lo >= hi.
//
// If the interval spans zero, zero itself is simplest and no search is
// needed. If the interval lies entirely at or below zero, the search
// runs on the negated, entirely-nonnegative interval and the result is
// negated back: this keeps the search below in terms of "smallest
// candidate greater than lo", which is simplest only when the whole
// interval is nonnegative (the value nearest lo is then also nearest
// zero).
//
// The integer case is just k=0 of the same search: at denominator
// exponent k, the smallest value strictly greater than lo*2^k is
// floor(lo*2^k)+1, and the loop returns as soon as that candidate is also
// strictly less than hi*2^k.
func SimplestBetween(lo, hi Number) Number {
	if !Less(lo, hi) {
		panic("dyadic: SimplestBetween requires lo < hi")
	}
	if lo.Sign() < 0 && hi.Sign() > 0 {
		return Zero
	}
	if hi.Sign() <= 0 {
		return Neg(SimplestBetween(Neg(hi), Neg(lo)))
	}

	loRat := d2rat(lo)
	hiRat := d2rat(hi)
	two := big.NewRat(2, 1)
	scale := big.NewRat(1, 1)
	for k := uint32(0); k < 62; k++ {
		loScaled := new(big.Rat).Mul(loRat, scale)
		hiScaled := new(big.Rat).Mul(hiRat, scale)
		m := new(big.Int).Add(floorRat(loScaled), big.NewInt(1))
		if new(big.Rat).SetInt(m).Cmp(hiScaled) < 0 {
			if !m.IsInt64() {
				panic("dyadic: SimplestBetween overflow")
			}
			return New(m.Int64(), k)
		}
		scale.Mul(scale, two)
	}
	panic("dyadic: SimplestBetween did not converge")
}

// Less is a method form of Less(a,b) for readability at call sites.
func (d Number) Less(other Number) bool { return Less(d, other) }

func d2rat(d Number) *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(d.numerator), big.NewInt(d.Denominator()))
}

// floorRat returns floor(r) as a big.Int, correct for negative r (Euclidean
// DivMod gives a non-negative remainder, which already implements floor
// division for the quotient).
func floorRat(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return q
}

// String renders the number per the canonical-form text grammar:
// integers as decimal, non-integer dyadics as "p/q".
func (d Number) String() string {
	if d.IsInteger() {
		return strconv.FormatInt(d.numerator, 10)
	}
	return fmt.Sprintf("%d/%d", d.numerator, d.Denominator())
}

// jsonNumber mirrors the {"num": ..., "den_exp": ...} wire shape used
// by persisted search records.
type jsonNumber struct {
	Num    int64  `json:"num"`
	DenExp uint32 `json:"den_exp"`
}

// MarshalJSON renders d as {"num": p, "den_exp": k} for p/2^k.
func (d Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNumber{Num: d.numerator, DenExp: d.denomExponent})
}

// UnmarshalJSON parses the inverse of MarshalJSON.
func (d *Number) UnmarshalJSON(b []byte) error {
	var j jsonNumber
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*d = New(j.Num, j.DenExp)
	return nil
}

// Parse parses the inverse of String: an integer, or "p/q" with q a power
// of two.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return Number{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		den, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return Number{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return NewFraction(num, den)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Int(n), nil
}

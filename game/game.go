// Package game implements the short-game value engine: canonical-form
// construction, the CGT game order, and arithmetic; the thermograph
// queries built on top of it live in package thermo. Every Value is immutable and
// interned; two values compare equal with == iff they are the same
// canonical form.
package game

import (
	"fmt"
	"sort"
	"strings"

	"cgt/cache"
	"cgt/dyadic"
	"cgt/nimber"
)

type tag uint8

const (
	tagNumber tag = iota
	tagNumberPlusNimber
	tagSwitch
	tagGeneral
)

// Value is a handle into the process-wide intern table. The zero Value is
// not meaningful on its own; use Zero() to obtain the game 0.
type Value struct {
	h cache.Handle
}

type node struct {
	tag    tag
	number dyadic.Number
	nim    nimber.Nimber
	left   []Value
	right  []Value
}

// canonKey is the structural key two equal canonical forms always share,
// used to deduplicate in the interner. Option slices must already be
// sorted by handle before a key is built, so set equality of options maps
// to string equality of keys regardless of construction order.
type canonKey string

func (k canonKey) String() string { return string(k) }

var interner = cache.New[canonKey, *node]()

// addCache, negCache and leqCache are the secondary memoization layers
// over recursive operations, keyed on operand handles.
var addCache = cache.NewPairCache[Value](1 << 16)
var leqCache = cache.NewPairCache[bool](1 << 16)
var negCache = cache.NewPairCache[Value](1 << 14)

func buildKey(t tag, number dyadic.Number, nim nimber.Nimber, left, right []Value) canonKey {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%s|", t, number.String(), nim.String())
	for i, l := range left {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", l.h)
	}
	b.WriteByte('|')
	for i, r := range right {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", r.h)
	}
	return canonKey(b.String())
}

func intern(t tag, number dyadic.Number, nim nimber.Nimber, left, right []Value) Value {
	key := buildKey(t, number, nim, left, right)
	h, _ := interner.Intern(key, func() *node {
		return &node{tag: t, number: number, nim: nim, left: left, right: right}
	})
	return Value{h: h}
}

func (v Value) node() *node { return interner.At(v.h) }

// Tag identifiers for callers that want to pattern-match on shape without
// reaching into internals.
const (
	TagNumber           = tagNumber
	TagNumberPlusNimber = tagNumberPlusNimber
	TagSwitch           = tagSwitch
	TagGeneral          = tagGeneral
)

// Handle exposes the intern handle backing v, for use as a cache key by
// callers building their own memoization layers (e.g. search.Driver's
// per-ruleset position cache does not need this; it is exposed for
// symmetry with the rest of the value cache's exported contract).
func (v Value) Handle() int32 { return int32(v.h) }

// Zero is the short-game value 0, the game {|} with no options, stored
// as the number 0.
func Zero() Value { return Number(dyadic.Zero) }

// Number constructs the number d as a short-game value.
func Number(d dyadic.Number) Value {
	return intern(tagNumber, d, nimber.Zero, nil, nil)
}

// Integer constructs the integer k as a short-game value.
func Integer(k int64) Value { return Number(dyadic.Int(k)) }

// Star constructs the nimber n as a short-game value. Star(0) is Zero().
func Star(n nimber.Nimber) Value {
	if n == nimber.Zero {
		return Zero()
	}
	return intern(tagNumberPlusNimber, dyadic.Zero, n, nil, nil)
}

// NumberPlusNimber constructs d + *n. NumberPlusNimber(d, 0) is Number(d).
func NumberPlusNimber(d dyadic.Number, n nimber.Nimber) Value {
	if n == nimber.Zero {
		return Number(d)
	}
	return intern(tagNumberPlusNimber, d, n, nil, nil)
}

// Switch constructs {a | b}. If a and b do not satisfy the switch
// condition (a ≥ b as numbers), the general canonicalization in
// FromOptions decides the actual resulting shape: a switch is simply the
// case where {a|b} fails to collapse to a number.
func Switch(a, b Value) Value {
	return FromOptions([]Value{a}, []Value{b})
}

// IsNumber reports whether v's canonical form is a pure number.
func (v Value) IsNumber() bool { return v.node().tag == tagNumber }

// IsNumberPlusNimber reports whether v's canonical form is d + *n with
// n > 0 (a pure number is not reported here; see IsNumber).
func (v Value) IsNumberPlusNimber() bool { return v.node().tag == tagNumberPlusNimber }

// IsSwitch reports whether v's canonical form is a switch {a|b}.
func (v Value) IsSwitch() bool { return v.node().tag == tagSwitch }

// AsNumber returns the number component of v. Valid for Number and
// NumberPlusNimber tags (the nimber part is ignored); panics otherwise.
func (v Value) AsNumber() dyadic.Number {
	n := v.node()
	if n.tag != tagNumber && n.tag != tagNumberPlusNimber {
		panic("value: AsNumber on a non-number-shaped value")
	}
	return n.number
}

// AsNimber returns the nimber component of v. Valid for Number (always
// zero) and NumberPlusNimber; panics otherwise.
func (v Value) AsNimber() nimber.Nimber {
	n := v.node()
	if n.tag != tagNumber && n.tag != tagNumberPlusNimber {
		panic("value: AsNimber on a non-number-shaped value")
	}
	return n.nim
}

// SwitchOptions returns (a, b) for a switch {a|b}. Panics if v is not a
// switch.
func (v Value) SwitchOptions() (Value, Value) {
	n := v.node()
	if n.tag != tagSwitch {
		panic("value: SwitchOptions on a non-switch value")
	}
	return n.left[0], n.right[0]
}

// Eq reports whether v and w are the same canonical form. Interning
// guarantees this is equivalent to v == w.
func Eq(v, w Value) bool { return v.h == w.h }

// FromOptions canonicalizes {left | right} into its unique canonical
// form: numbers-bypass, then repeated dominated-option elimination and
// reversible-option bypass to a fixpoint, then recognized-shape
// detection (numbers-bypass retried against the reduced set, since
// elimination/bypass can expose a number that wasn't visible in the
// original options, then number-plus-nimber, then switch), then
// interning.
func FromOptions(left, right []Value) Value {
	left = dedupe(left)
	right = dedupe(right)

	if v, ok := tryNumber(left, right); ok {
		return v
	}

	left, right = reduceToFixpoint(left, right)

	if v, ok := tryNumber(left, right); ok {
		return v
	}

	if v, ok := tryNumberPlusNimberShape(left, right); ok {
		return v
	}

	left = sortValues(left)
	right = sortValues(right)

	if len(left) == 1 && len(right) == 1 && left[0].IsNumber() && right[0].IsNumber() &&
		!dyadic.Less(left[0].AsNumber(), right[0].AsNumber()) {
		return intern(tagSwitch, dyadic.Zero, nimber.Zero, left, right)
	}

	return intern(tagGeneral, dyadic.Zero, nimber.Zero, left, right)
}

// tryNumber implements step 1 of the canonicalization algorithm: the
// numbers-bypass / Simplicity Rule collapse. It only applies when every
// option on both sides is itself a number.
func tryNumber(left, right []Value) (Value, bool) {
	for _, l := range left {
		if !l.IsNumber() {
			return Value{}, false
		}
	}
	for _, r := range right {
		if !r.IsNumber() {
			return Value{}, false
		}
	}

	switch {
	case len(left) == 0 && len(right) == 0:
		return Zero(), true
	case len(left) == 0:
		minR := right[0].AsNumber()
		for _, r := range right[1:] {
			minR = dyadic.Min(minR, r.AsNumber())
		}
		if minR.Sign() > 0 {
			return Zero(), true
		}
		return Integer(minR.Ceil() - 1), true
	case len(right) == 0:
		maxL := left[0].AsNumber()
		for _, l := range left[1:] {
			maxL = dyadic.Max(maxL, l.AsNumber())
		}
		if maxL.Sign() < 0 {
			return Zero(), true
		}
		return Integer(maxL.Floor() + 1), true
	default:
		maxL := left[0].AsNumber()
		for _, l := range left[1:] {
			maxL = dyadic.Max(maxL, l.AsNumber())
		}
		minR := right[0].AsNumber()
		for _, r := range right[1:] {
			minR = dyadic.Min(minR, r.AsNumber())
		}
		if !dyadic.Less(maxL, minR) {
			return Value{}, false
		}
		return Number(dyadic.SimplestBetween(maxL, minR)), true
	}
}

// tryNumberPlusNimberShape recognizes the reduced {L|R} as d + *n: both
// sides equal, of the form {d, d+*1, ..., d+*(n-1)}.
func tryNumberPlusNimberShape(left, right []Value) (Value, bool) {
	if len(left) == 0 || len(left) != len(right) {
		return Value{}, false
	}
	if !sameSet(left, right) {
		return Value{}, false
	}
	var d dyadic.Number
	found := false
	for _, l := range left {
		if l.IsNumber() {
			d, found = l.AsNumber(), true
			break
		}
	}
	n := nimber.Nimber(len(left))
	if !found || !sameSet(left, nimberLadder(d, n)) {
		return Value{}, false
	}
	return NumberPlusNimber(d, n), true
}

func dedupe(vals []Value) []Value {
	seen := make(map[Value]bool, len(vals))
	out := make([]Value, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func sortValues(vals []Value) []Value {
	sort.Slice(vals, func(i, j int) bool { return vals[i].h < vals[j].h })
	return vals
}

func containsValue(vals []Value, v Value) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

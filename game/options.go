package game

import "cgt/dyadic"
import "cgt/nimber"

// LeftOptions returns v's left options. For number and number-plus-nimber
// shapes these are generated by the recursive number/nimber option rule
// rather than stored; for switch and general forms they are the stored
// option set.
func LeftOptions(v Value) []Value {
	n := v.node()
	switch n.tag {
	case tagNumber:
		return numberLeftOptions(n.number)
	case tagNumberPlusNimber:
		return nimberLadder(n.number, n.nim)
	default:
		return n.left
	}
}

// RightOptions returns v's right options, symmetric to LeftOptions.
func RightOptions(v Value) []Value {
	n := v.node()
	switch n.tag {
	case tagNumber:
		return numberRightOptions(n.number)
	case tagNumberPlusNimber:
		return nimberLadder(n.number, n.nim)
	default:
		return n.right
	}
}

// numberLeftOptions implements the standard recursive definition of a
// number as a game: positive integers have a single left option (one
// less); non-integers have a single left option, the adjacent dyadic at
// the same denominator exponent (numerator minus one), via dyadic.Step(-1).
func numberLeftOptions(d dyadic.Number) []Value {
	if d.IsInteger() {
		if d.Int64() > 0 {
			return []Value{Number(dyadic.Int(d.Int64() - 1))}
		}
		return nil
	}
	return []Value{Number(d.Step(-1))}
}

func numberRightOptions(d dyadic.Number) []Value {
	if d.IsInteger() {
		if d.Int64() < 0 {
			return []Value{Number(dyadic.Int(d.Int64() + 1))}
		}
		return nil
	}
	return []Value{Number(d.Step(1))}
}

// nimberLadder returns {d, d+*1, ..., d+*(n-1)}, the shared left and
// right option set of d + *n.
func nimberLadder(d dyadic.Number, n nimber.Nimber) []Value {
	opts := make([]Value, 0, n.Value())
	for m := uint32(0); m < n.Value(); m++ {
		opts = append(opts, NumberPlusNimber(d, nimber.Nimber(m)))
	}
	return opts
}

package game

// reduceToFixpoint applies dominated-option elimination and
// reversible-option bypass repeatedly until neither side changes.
// Bypassing a reversible option can expose new dominated options and
// vice versa, so a single pass of each is not always enough; the loop
// is bounded as a safety net against a canonicalization bug rather
// than as an expected code path (birthday strictly decreases, so real
// inputs converge quickly).
func reduceToFixpoint(left, right []Value) ([]Value, []Value) {
	const maxIterations = 4096
	for i := 0; i < maxIterations; i++ {
		left = eliminateDominated(left, true)
		right = eliminateDominated(right, false)

		newLeft := bypassReversibleLeft(left, right)
		newRight := bypassReversibleRight(left, right)
		newLeft = dedupe(newLeft)
		newRight = dedupe(newRight)

		if sameSet(newLeft, left) && sameSet(newRight, right) {
			return newLeft, newRight
		}
		left, right = newLeft, newRight
	}
	panic("value: canonicalization did not converge")
}

// eliminateDominated removes any option dominated by another option on
// the same side: in L (isLeft), ℓ is removed if some other ℓ' ≥ ℓ
// exists; symmetrically in R, r is removed if some other r' ≤ r exists.
func eliminateDominated(options []Value, isLeft bool) []Value {
	keep := make([]Value, 0, len(options))
	for i, o := range options {
		dominated := false
		for j, other := range options {
			if i == j {
				continue
			}
			beaten := Leq(o, other)
			if !isLeft {
				beaten = Leq(other, o)
			}
			if beaten && o != other {
				dominated = true
				break
			}
		}
		if !dominated {
			keep = append(keep, o)
		}
	}
	return keep
}

// bypassReversibleLeft implements step 3 for the left side: for each
// ℓ ∈ left, if some right option r* of ℓ satisfies r* ≤ G (the
// in-progress value being built from left|right), ℓ is reversible
// through r* and is replaced by r*'s left options.
func bypassReversibleLeft(left, right []Value) []Value {
	out := make([]Value, 0, len(left))
	for _, l := range left {
		replaced := false
		for _, rStar := range RightOptions(l) {
			if leqArrays(rStar, left, right) {
				out = append(out, LeftOptions(rStar)...)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, l)
		}
	}
	return out
}

// bypassReversibleRight is the mirror of bypassReversibleLeft: for each
// r ∈ right, if some left option ℓ* of r satisfies ℓ* ≥ G, r is
// reversible through ℓ* and is replaced by ℓ*'s right options.
func bypassReversibleRight(left, right []Value) []Value {
	out := make([]Value, 0, len(right))
	for _, r := range right {
		replaced := false
		for _, lStar := range LeftOptions(r) {
			if geqArrays(lStar, left, right) {
				out = append(out, RightOptions(lStar)...)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, r)
		}
	}
	return out
}

func sameSet(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !containsValue(b, v) {
			return false
		}
	}
	return true
}

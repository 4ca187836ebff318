package game

// Leq implements the CGT game order v ≤ w: no left option of v
// dominates w, and no right option of w is dominated by v. Memoized on
// the ordered pair of handles; terminating because options are
// structurally smaller than their parent.
func Leq(v, w Value) bool {
	if v.h == w.h {
		return true
	}
	if cached, ok := leqCache.Get(v.h, w.h); ok {
		return cached
	}
	result := leqUncached(v, w)
	leqCache.Put(v.h, w.h, result)
	return result
}

func leqUncached(v, w Value) bool {
	for _, l := range LeftOptions(v) {
		if Leq(w, l) {
			return false
		}
	}
	for _, r := range RightOptions(w) {
		if Leq(r, v) {
			return false
		}
	}
	return true
}

// leqArrays reports x ≤ H, where H is the in-progress option set
// (leftArr | rightArr) of a value still being canonicalized and not yet
// materialized. Used only during reversible-option bypass, where the
// comparison target cannot be interned without first resolving the
// comparison (that would be circular).
func leqArrays(x Value, leftArr, rightArr []Value) bool {
	for _, r := range rightArr {
		if Leq(r, x) {
			return false
		}
	}
	for _, l := range LeftOptions(x) {
		if geqArrays(l, leftArr, rightArr) {
			return false
		}
	}
	return true
}

// geqArrays reports x ≥ H, i.e. H ≤ x, the mirror of leqArrays.
func geqArrays(x Value, leftArr, rightArr []Value) bool {
	for _, l := range leftArr {
		if Leq(x, l) {
			return false
		}
	}
	for _, r := range RightOptions(x) {
		if leqArrays(r, leftArr, rightArr) {
			return false
		}
	}
	return true
}

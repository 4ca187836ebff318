package thermo

import "cgt/dyadic"

// segment is one linear piece of a scaffold trajectory, valid from tStart
// up to (but not including) the next segment's tStart, or forever for the
// last segment. slope is always a small integer: CGT thermography walls
// only ever carry slope -1 or 0 (left-style curves) and 0 or 1
// (right-style curves), and combining or shifting such curves keeps the
// slopes within {-2,...,2}, which is why every crossing computed below
// divides by a slope difference that is always exactly representable as a
// dyadic (division by 1 or 2).
type segment struct {
	tStart dyadic.Number
	value  dyadic.Number
	slope  int64
}

// trajectory is a non-empty, tStart-ascending sequence of segments, the
// first always starting at t=-1 (the domain floor for thermographs).
type trajectory struct {
	segments []segment
}

func constantTrajectory(v dyadic.Number) trajectory {
	return trajectory{segments: []segment{{tStart: dyadic.Int(-1), value: v, slope: 0}}}
}

func (tr trajectory) activeIndex(t dyadic.Number) int {
	idx := 0
	for i, s := range tr.segments {
		if dyadic.LessEq(s.tStart, t) {
			idx = i
		} else {
			break
		}
	}
	return idx
}

func (tr trajectory) valueAt(t dyadic.Number) dyadic.Number {
	s := tr.segments[tr.activeIndex(t)]
	return dyadic.Add(s.value, dyadic.MulInt(dyadic.Sub(t, s.tStart), s.slope))
}

func (tr trajectory) slopeAt(t dyadic.Number) int64 {
	return tr.segments[tr.activeIndex(t)].slope
}

// shiftMinusT returns the trajectory f(t) = tr(t) - t.
func (tr trajectory) shiftMinusT() trajectory {
	out := make([]segment, len(tr.segments))
	for i, s := range tr.segments {
		out[i] = segment{tStart: s.tStart, value: dyadic.Sub(s.value, s.tStart), slope: s.slope - 1}
	}
	return trajectory{segments: out}
}

// shiftPlusT returns the trajectory f(t) = tr(t) + t.
func (tr trajectory) shiftPlusT() trajectory {
	out := make([]segment, len(tr.segments))
	for i, s := range tr.segments {
		out[i] = segment{tStart: s.tStart, value: dyadic.Add(s.value, s.tStart), slope: s.slope + 1}
	}
	return trajectory{segments: out}
}

func (tr trajectory) negate() trajectory {
	out := make([]segment, len(tr.segments))
	for i, s := range tr.segments {
		out[i] = segment{tStart: s.tStart, value: dyadic.Neg(s.value), slope: -s.slope}
	}
	return trajectory{segments: out}
}

func unionBreakpoints(a, b trajectory) []dyadic.Number {
	out := make([]dyadic.Number, 0, len(a.segments)+len(b.segments))
	i, j := 0, 0
	for i < len(a.segments) || j < len(b.segments) {
		switch {
		case j >= len(b.segments) || (i < len(a.segments) && dyadic.Less(a.segments[i].tStart, b.segments[j].tStart)):
			out = append(out, a.segments[i].tStart)
			i++
		case i >= len(a.segments) || dyadic.Less(b.segments[j].tStart, a.segments[i].tStart):
			out = append(out, b.segments[j].tStart)
			j++
		default:
			out = append(out, a.segments[i].tStart)
			i++
			j++
		}
	}
	return out
}

// divSmall divides a dyadic by a small nonzero integer slope difference,
// always exactly: thermography slope differences are bounded to
// {-2,-1,1,2} (see segment's doc comment), and dividing a dyadic by 1 or
// 2 never loses precision.
func divSmall(d dyadic.Number, k int64) dyadic.Number {
	switch k {
	case 1:
		return d
	case -1:
		return dyadic.Neg(d)
	case 2:
		return dyadic.Half(d)
	case -2:
		return dyadic.Neg(dyadic.Half(d))
	default:
		panic("thermo: slope difference out of the exact-division range")
	}
}

// maxTrajectory returns the pointwise maximum of a and b, exactly, by
// walking their union of breakpoints and inserting an exact crossing
// breakpoint wherever the two linear pieces swap dominance mid-interval.
func maxTrajectory(a, b trajectory) trajectory {
	breakpoints := unionBreakpoints(a, b)
	var out []segment
	for i, t := range breakpoints {
		var next dyadic.Number
		hasNext := i+1 < len(breakpoints)
		if hasNext {
			next = breakpoints[i+1]
		}

		av, bv := a.valueAt(t), b.valueAt(t)
		aSlope, bSlope := a.slopeAt(t), b.slopeAt(t)

		if aSlope != bSlope {
			delta := divSmall(dyadic.Sub(bv, av), aSlope-bSlope)
			cross := dyadic.Add(t, delta)
			validCross := dyadic.Less(t, cross) && (!hasNext || dyadic.Less(cross, next))
			if validCross {
				if dyadic.LessEq(av, bv) {
					out = append(out, segment{tStart: t, value: bv, slope: bSlope})
					out = append(out, segment{tStart: cross, value: a.valueAt(cross), slope: aSlope})
				} else {
					out = append(out, segment{tStart: t, value: av, slope: aSlope})
					out = append(out, segment{tStart: cross, value: b.valueAt(cross), slope: bSlope})
				}
				continue
			}
		}

		if dyadic.LessEq(av, bv) {
			out = append(out, segment{tStart: t, value: bv, slope: bSlope})
		} else {
			out = append(out, segment{tStart: t, value: av, slope: aSlope})
		}
	}
	return dedupeSegments(trajectory{segments: out})
}

func minTrajectory(a, b trajectory) trajectory {
	return maxTrajectory(a.negate(), b.negate()).negate()
}

// addTrajectory returns the pointwise sum of a and b. No crossing
// detection is needed: the sum of two linear pieces over an interval is
// itself linear, so the union of existing breakpoints is already enough.
func addTrajectory(a, b trajectory) trajectory {
	breakpoints := unionBreakpoints(a, b)
	out := make([]segment, 0, len(breakpoints))
	for _, t := range breakpoints {
		out = append(out, segment{
			tStart: t,
			value:  dyadic.Add(a.valueAt(t), b.valueAt(t)),
			slope:  a.slopeAt(t) + b.slopeAt(t),
		})
	}
	return dedupeSegments(trajectory{segments: out})
}

// dedupeSegments merges consecutive segments that turned out to carry
// the same slope (the max/min walk can produce these when neither curve
// changes which is dominant across a breakpoint).
func dedupeSegments(tr trajectory) trajectory {
	out := tr.segments[:0:0]
	for _, s := range tr.segments {
		if n := len(out); n > 0 && out[n-1].slope == s.slope {
			continue
		}
		out = append(out, s)
	}
	return trajectory{segments: out}
}

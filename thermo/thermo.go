// Package thermo implements thermography: the left and right scaffold
// trajectories of a short-game value, its temperature, mast value (mean),
// left/right stops, and the cooling/heating operators built on top of
// them. All arithmetic is exact dyadic arithmetic: thermograph slopes
// stay within a small integer range for the reasons documented on
// trajectory's segment type, so no floating point or unbounded-rational
// arithmetic is ever needed.
package thermo

import (
	"cgt/dyadic"
	"cgt/game"
)

// Breakpoint is one point of a rendered scaffold: a temperature and the
// scaffold's value at that temperature.
type Breakpoint struct {
	T dyadic.Number
	V dyadic.Number
}

// Thermograph is the pair of scaffolds (left wall, right wall) of a
// value, merging into a single mast at the value's temperature.
type Thermograph struct {
	left  trajectory
	right trajectory
	mast  dyadic.Number
	mean  dyadic.Number
}

// Of computes the thermograph of v.
func Of(v game.Value) Thermograph {
	if v.IsNumber() {
		d := v.AsNumber()
		return Thermograph{
			left:  constantTrajectory(d),
			right: constantTrajectory(d),
			mast:  dyadic.Int(-1),
			mean:  d,
		}
	}
	leftOpts := game.LeftOptions(v)
	rightOpts := game.RightOptions(v)
	if len(leftOpts) == 0 || len(rightOpts) == 0 {
		panic("thermo: thermograph of a one-sided ender position is not supported")
	}

	rawLeft := Of(leftOpts[0]).right.shiftMinusT()
	for _, l := range leftOpts[1:] {
		rawLeft = maxTrajectory(rawLeft, Of(l).right.shiftMinusT())
	}
	rawRight := Of(rightOpts[0]).left.shiftPlusT()
	for _, r := range rightOpts[1:] {
		rawRight = minTrajectory(rawRight, Of(r).left.shiftPlusT())
	}

	mast, mean := findMast(addTrajectory(rawLeft, rawRight.negate()), rawLeft)

	clampedLeft := maxTrajectory(rawLeft, constantTrajectory(mean))
	clampedRight := minTrajectory(rawRight, constantTrajectory(mean))

	return Thermograph{left: clampedLeft, right: clampedRight, mast: mast, mean: mean}
}

// findMast locates the smallest t>=-1 where diff(t)<=0 (diff = rawLeft -
// rawRight), returning that t and rawLeft's value there (the mean).
// Finite short games are guaranteed to reach this crossing; failure to
// converge indicates malformed input, not a valid thermograph.
func findMast(diff trajectory, rawLeft trajectory) (dyadic.Number, dyadic.Number) {
	for i, s := range diff.segments {
		if s.value.Sign() <= 0 {
			if i == 0 {
				return s.tStart, rawLeft.valueAt(s.tStart)
			}
			prev := diff.segments[i-1]
			if prev.slope >= 0 {
				panic("thermo: non-increasing diff trajectory expected below the mast")
			}
			delta := divSmall(dyadic.Neg(prev.value), prev.slope)
			cross := dyadic.Add(prev.tStart, delta)
			return cross, rawLeft.valueAt(cross)
		}
	}
	last := diff.segments[len(diff.segments)-1]
	if last.slope >= 0 {
		panic("thermo: thermograph does not converge to a mast")
	}
	delta := divSmall(dyadic.Neg(last.value), last.slope)
	cross := dyadic.Add(last.tStart, delta)
	return cross, rawLeft.valueAt(cross)
}

// Temperature returns τ(v), the mast temperature.
func Temperature(v game.Value) dyadic.Number { return Of(v).mast }

// Mean returns the mast value L̂(τ(v)) = R̂(τ(v)).
func Mean(v game.Value) dyadic.Number { return Of(v).mean }

// LeftStop returns L̂(0).
func LeftStop(v game.Value) dyadic.Number { return Of(v).left.valueAt(dyadic.Zero) }

// RightStop returns R̂(0).
func RightStop(v game.Value) dyadic.Number { return Of(v).right.valueAt(dyadic.Zero) }

// Breakpoints renders the left and right scaffolds as breakpoint
// sequences, for display or persistence as a search record field.
func (th Thermograph) Breakpoints() (left, right []Breakpoint) {
	return renderSegments(th.left), renderSegments(th.right)
}

func renderSegments(tr trajectory) []Breakpoint {
	out := make([]Breakpoint, len(tr.segments))
	for i, s := range tr.segments {
		out[i] = Breakpoint{T: s.tStart, V: s.value}
	}
	return out
}

// Cool returns cool(v, t): if v is a number, v unchanged; otherwise the
// recursively-cooled option set, collapsed to its mean when doing so
// makes the left and right stops agree.
func Cool(v game.Value, t dyadic.Number) game.Value {
	if v.IsNumber() {
		return v
	}
	tValue := game.Number(t)
	left := make([]game.Value, 0, len(game.LeftOptions(v)))
	for _, l := range game.LeftOptions(v) {
		left = append(left, game.Sub(Cool(l, t), tValue))
	}
	right := make([]game.Value, 0, len(game.RightOptions(v)))
	for _, r := range game.RightOptions(v) {
		right = append(right, game.Add(Cool(r, t), tValue))
	}
	result := game.FromOptions(left, right)

	ls, rs := LeftStop(result), RightStop(result)
	if dyadic.Equal(ls, rs) {
		return game.Number(ls)
	}
	return result
}

// Heat returns heat(v, t), the inverse of Cool: numbers are left
// unchanged, otherwise each left option is heated and shifted up by t,
// each right option heated and shifted down by t.
func Heat(v game.Value, t dyadic.Number) game.Value {
	if v.IsNumber() {
		return v
	}
	tValue := game.Number(t)
	left := make([]game.Value, 0, len(game.LeftOptions(v)))
	for _, l := range game.LeftOptions(v) {
		left = append(left, game.Add(Heat(l, t), tValue))
	}
	right := make([]game.Value, 0, len(game.RightOptions(v)))
	for _, r := range game.RightOptions(v) {
		right = append(right, game.Sub(Heat(r, t), tValue))
	}
	return game.FromOptions(left, right)
}

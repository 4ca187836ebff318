package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/dyadic"
	"cgt/nimber"
)

func TestFromOptionsZeroZeroIsStar(t *testing.T) {
	v := FromOptions([]Value{Zero()}, []Value{Zero()})
	require.True(t, v.IsNumberPlusNimber())
	require.Equal(t, nimber.MustNew(1), v.AsNimber())
	require.Equal(t, "*", v.String())
}

func TestFromOptionsOneMinusOneIsSwitch(t *testing.T) {
	v := FromOptions([]Value{Integer(1)}, []Value{Integer(-1)})
	require.True(t, v.IsSwitch())
	a, b := v.SwitchOptions()
	require.Equal(t, Integer(1), a)
	require.Equal(t, Integer(-1), b)
}

func TestNumberAddition(t *testing.T) {
	one := Integer(1)
	require.Equal(t, Integer(2), Add(one, one))

	half, err := dyadic.NewFraction(1, 2)
	require.NoError(t, err)
	halfValue := Number(half)
	require.Equal(t, Integer(1), Add(halfValue, halfValue))
}

func TestFromOptionsEmptyIsZero(t *testing.T) {
	require.Equal(t, Zero(), FromOptions(nil, nil))
}

func TestFromOptionsRecognizesNumberAfterReduction(t *testing.T) {
	// {*1, 2 | 10}: *1 is dominated by 2 and eliminated; 10 is then
	// reversible through 9 and bypassed to 9's (empty) right options.
	// The reduced set {2 | } is all-number and must collapse to 3, not
	// a general form.
	v := FromOptions([]Value{Star(nimber.MustNew(1)), Integer(2)}, []Value{Integer(10)})
	require.Equal(t, Integer(3), v)
	require.True(t, v.IsNumber())
}

func TestFromOptionsCollapsesToInteger(t *testing.T) {
	require.Equal(t, Integer(3), FromOptions([]Value{Integer(2)}, nil))
	require.Equal(t, Integer(-3), FromOptions(nil, []Value{Integer(-2)}))
}

func TestNegationInvolution(t *testing.T) {
	for _, v := range sampleValues() {
		require.Equal(t, v, Neg(Neg(v)), "neg(neg(%v)) should be %v", v, v)
	}
}

func TestNegationIsAdditiveInverse(t *testing.T) {
	for _, v := range sampleValues() {
		require.Equal(t, Zero(), Add(v, Neg(v)), "%v + neg(%v) should be 0", v, v)
	}
}

func TestAdditionCommutative(t *testing.T) {
	vs := sampleValues()
	for _, v := range vs {
		for _, w := range vs {
			require.Equal(t, Add(v, w), Add(w, v))
		}
	}
}

func TestAdditionAssociative(t *testing.T) {
	vs := sampleValues()
	for _, u := range vs {
		for _, v := range vs {
			for _, w := range vs {
				require.Equal(t, Add(Add(u, v), w), Add(u, Add(v, w)))
			}
		}
	}
}

func TestAdditionIdentity(t *testing.T) {
	for _, v := range sampleValues() {
		require.Equal(t, v, Add(v, Zero()))
	}
}

func TestOrderReflexive(t *testing.T) {
	for _, v := range sampleValues() {
		require.True(t, Leq(v, v))
	}
}

func TestOrderAntisymmetric(t *testing.T) {
	vs := sampleValues()
	for _, v := range vs {
		for _, w := range vs {
			if Leq(v, w) && Leq(w, v) {
				require.True(t, Eq(v, w))
			}
		}
	}
}

func TestOrderCompatibleWithAddition(t *testing.T) {
	vs := sampleValues()
	for _, v := range vs {
		for _, w := range vs {
			if !Leq(v, w) {
				continue
			}
			for _, u := range vs {
				require.True(t, Leq(Add(v, u), Add(w, u)),
					"%v <= %v should give %v+%v <= %v+%v", v, w, v, u, w, u)
			}
		}
	}
}

func TestCanonicalFormIdempotence(t *testing.T) {
	for _, v := range sampleValues() {
		require.Equal(t, v, FromOptions(LeftOptions(v), RightOptions(v)))
	}
}

func TestInterningUniqueness(t *testing.T) {
	a := FromOptions([]Value{Zero()}, []Value{Zero()})
	b := FromOptions([]Value{Zero()}, []Value{Zero()})
	require.Equal(t, a, b)
	require.True(t, Eq(a, b))

	c := Integer(1)
	require.False(t, Eq(a, c))
}

func TestNimberRoundtrip(t *testing.T) {
	three := Star(nimber.MustNew(3))
	require.Equal(t, Zero(), Add(three, three))

	five := Star(nimber.MustNew(5))
	six := Star(nimber.MustNew(6))
	require.Equal(t, Star(nimber.Add(nimber.MustNew(5), nimber.MustNew(6))), Add(five, six))
}

func TestBirthday(t *testing.T) {
	require.Equal(t, 0, Birthday(Zero()))
	require.Equal(t, 1, Birthday(Integer(1)))
	star := FromOptions([]Value{Zero()}, []Value{Zero()})
	require.Equal(t, 1, Birthday(star))
}

// sampleValues returns a small, fixed set of well-formed values exercising
// every tag, used by the property tests above.
func sampleValues() []Value {
	half, _ := dyadic.NewFraction(1, 2)
	quarter, _ := dyadic.NewFraction(1, 4)
	return []Value{
		Zero(),
		Integer(1),
		Integer(-1),
		Integer(2),
		Number(half),
		Number(quarter),
		Star(nimber.MustNew(1)),
		Star(nimber.MustNew(2)),
		NumberPlusNimber(dyadic.Int(1), nimber.MustNew(1)),
		FromOptions([]Value{Integer(1)}, []Value{Integer(-1)}),
		FromOptions([]Value{Zero()}, []Value{Star(nimber.MustNew(1))}),
	}
}

package thermo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/dyadic"
	"cgt/game"
)

func TestNumberTemperatureIsSentinel(t *testing.T) {
	require.Equal(t, dyadic.Int(-1), Temperature(game.Integer(3)))
	require.Equal(t, dyadic.Int(3), Mean(game.Integer(3)))
}

func TestStarTemperatureIsZero(t *testing.T) {
	star := game.FromOptions([]game.Value{game.Zero()}, []game.Value{game.Zero()})
	require.Equal(t, dyadic.Zero, Temperature(star))
	require.Equal(t, dyadic.Zero, Mean(star))
	require.Equal(t, dyadic.Zero, LeftStop(star))
	require.Equal(t, dyadic.Zero, RightStop(star))
}

func TestSwitchTemperatureAndMean(t *testing.T) {
	sw := game.FromOptions([]game.Value{game.Integer(1)}, []game.Value{game.Integer(-1)})
	require.Equal(t, dyadic.Int(1), Temperature(sw))
	require.Equal(t, dyadic.Zero, Mean(sw))
	require.Equal(t, dyadic.Int(1), LeftStop(sw))
	require.Equal(t, dyadic.Int(-1), RightStop(sw))
}

func TestLeftStopGeqMeanGeqRightStop(t *testing.T) {
	values := []game.Value{
		game.Integer(2),
		game.FromOptions([]game.Value{game.Zero()}, []game.Value{game.Zero()}),
		game.FromOptions([]game.Value{game.Integer(1)}, []game.Value{game.Integer(-1)}),
		game.FromOptions([]game.Value{game.Integer(2)}, []game.Value{game.Integer(-2)}),
	}
	for _, v := range values {
		ls, rs, mean := LeftStop(v), RightStop(v), Mean(v)
		require.True(t, dyadic.LessEq(rs, mean), "right_stop <= mean for %v", v)
		require.True(t, dyadic.LessEq(mean, ls), "mean <= left_stop for %v", v)
	}
}

func TestCoolNumberIsUnchanged(t *testing.T) {
	three := game.Integer(3)
	require.Equal(t, three, Cool(three, dyadic.Int(2)))
}

func TestCoolSwitchByTemperatureCollapsesToMean(t *testing.T) {
	sw := game.FromOptions([]game.Value{game.Integer(1)}, []game.Value{game.Integer(-1)})
	cooled := Cool(sw, dyadic.Int(1))
	require.True(t, cooled.IsNumber())
	require.Equal(t, dyadic.Zero, cooled.AsNumber())
}

func TestHeatNumberIsUnchanged(t *testing.T) {
	three := game.Integer(3)
	require.Equal(t, three, Heat(three, dyadic.Int(2)))
}

func TestBreakpointsNonEmpty(t *testing.T) {
	sw := game.FromOptions([]game.Value{game.Integer(1)}, []game.Value{game.Integer(-1)})
	th := Of(sw)
	left, right := th.Breakpoints()
	require.NotEmpty(t, left)
	require.NotEmpty(t, right)
}

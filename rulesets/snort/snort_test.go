package snort

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/dyadic"
	"cgt/game"
	"cgt/ruleset"
	"cgt/search"
	"cgt/thermo"
)

func path3() Position {
	pos := New(3)
	pos = pos.AddEdge(0, 1)
	pos = pos.AddEdge(1, 2)
	return pos
}

func TestIsolatedVertexHasOneMoveEachSide(t *testing.T) {
	pos := New(1)
	left := Ruleset{}.Moves(pos, ruleset.Left)
	right := Ruleset{}.Moves(pos, ruleset.Right)
	require.Len(t, left, 1)
	require.Len(t, right, 1)
}

func TestColoringBlocksAdjacentOpponent(t *testing.T) {
	pos := path3()
	leftMoves := Ruleset{}.Moves(pos, ruleset.Left)
	require.Len(t, leftMoves, 3)

	afterLeftTakesMiddle := leftMoves[1]
	rightMoves := Ruleset{}.Moves(afterLeftTakesMiddle, ruleset.Right)
	require.Empty(t, rightMoves, "both remaining vertices are adjacent to Left's middle vertex")
}

func TestDecomposeSplitsComponents(t *testing.T) {
	pos := New(4)
	pos = pos.AddEdge(0, 1)
	parts := Ruleset{}.Decompose(pos)
	require.Len(t, parts, 3)
}

func TestDecomposeSingleComponentReturnsNil(t *testing.T) {
	pos := path3()
	require.Nil(t, Ruleset{}.Decompose(pos))
}

func TestPathGraphValueIsSwitchWithTemperatureHalf(t *testing.T) {
	d := search.NewDriver[Position](Ruleset{})
	value := d.ValueOf(path3())
	require.True(t, value.IsSwitch())

	half, err := dyadic.NewFraction(1, 2)
	require.NoError(t, err)
	require.True(t, dyadic.Equal(thermo.Temperature(value), half))
}

func TestDecompositionMatchesDirectComputation(t *testing.T) {
	d := search.NewDriver[Position](Ruleset{})

	whole := New(4)
	whole = whole.AddEdge(0, 1)
	whole = whole.AddEdge(1, 2)

	parts := Ruleset{}.Decompose(whole)
	require.Len(t, parts, 2, "the path 0-1-2 and the isolated vertex 3 are separate components")

	viaDecomposition := d.ValueOf(whole)
	viaDirectSum := game.Add(d.ValueOf(path3()), d.ValueOf(New(1)))
	require.True(t, game.Eq(viaDecomposition, viaDirectSum))
}

package domineering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/ruleset"
)

func TestTwoByTwoMovesCollapseToOneCanonicalEachSide(t *testing.T) {
	pos := New(2, 2)
	left := Ruleset{}.Moves(pos, ruleset.Left)
	right := Ruleset{}.Moves(pos, ruleset.Right)
	require.Len(t, left, 1)
	require.Len(t, right, 1)
}

func TestSingleColumnHasNoRightMoves(t *testing.T) {
	pos := New(2, 1)
	right := Ruleset{}.Moves(pos, ruleset.Right)
	require.Empty(t, right)
	left := Ruleset{}.Moves(pos, ruleset.Left)
	require.Len(t, left, 1)
}

func TestFromStringRoundTrips(t *testing.T) {
	pos, err := FromString("..#|.#.|##.")
	require.NoError(t, err)
	require.Equal(t, "..#|.#.|##.", pos.String())
}

func TestDecomposeSplitsDisconnectedRegions(t *testing.T) {
	pos, err := FromString("..#|.#.|##.")
	require.NoError(t, err)
	parts := Ruleset{}.Decompose(pos)
	require.Len(t, parts, 2)
}

func TestDecomposeSingleRegionReturnsNil(t *testing.T) {
	pos := New(2, 2)
	require.Nil(t, Ruleset{}.Decompose(pos))
}

func TestCanonicalFormIsStableUnderFlip(t *testing.T) {
	pos, err := FromString("#.|..")
	require.NoError(t, err)
	flipped, err := FromString(".#|..")
	require.NoError(t, err)
	require.Equal(t, Ruleset{}.CanonicalForm(pos).Fingerprint(), Ruleset{}.CanonicalForm(flipped).Fingerprint())
}

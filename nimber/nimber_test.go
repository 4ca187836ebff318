package nimber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddIsXor(t *testing.T) {
	require.Equal(t, MustNew(6), Add(MustNew(5), MustNew(3)))
}

func TestSelfInverse(t *testing.T) {
	n := MustNew(7)
	require.Equal(t, Zero, Add(n, n))
}

func TestMexExamples(t *testing.T) {
	require.Equal(t, MustNew(3), Mex([]Nimber{0, 0, 2, 5, 1}))
	require.Equal(t, MustNew(3), Mex([]Nimber{0, 1, 2}))
	require.Equal(t, MustNew(2), Mex([]Nimber{0, 1, 1}))
	require.Equal(t, Zero, Mex(nil))
}

func TestNewRejectsNegative(t *testing.T) {
	_, err := New(-1)
	require.Error(t, err)
}

func TestString(t *testing.T) {
	require.Equal(t, "0", Zero.String())
	require.Equal(t, "*", MustNew(1).String())
	require.Equal(t, "*4", MustNew(4).String())
}

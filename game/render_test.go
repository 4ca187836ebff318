package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/nimber"
)

func TestParseRoundTripsLeafShapes(t *testing.T) {
	for _, v := range []Value{Zero(), Integer(1), Integer(-3), Star(nimber.MustNew(1)), Star(nimber.MustNew(4))} {
		parsed, err := Parse(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
}

func TestParseRoundTripsSwitch(t *testing.T) {
	v := FromOptions([]Value{Integer(1)}, []Value{Integer(-1)})
	require.True(t, v.IsSwitch())

	parsed, err := Parse(v.String())
	require.NoError(t, err)
	require.Equal(t, v, parsed)
}

func TestParseRoundTripsGeneralForm(t *testing.T) {
	v := FromOptions([]Value{Zero()}, []Value{Star(nimber.MustNew(1))})

	parsed, err := Parse(v.String())
	require.NoError(t, err)
	require.Equal(t, v, parsed)
}

func TestParseBraceFormWithNestedBraceOption(t *testing.T) {
	inner := FromOptions([]Value{Zero()}, []Value{Star(nimber.MustNew(1))})
	v := FromOptions([]Value{inner}, []Value{Integer(-1)})

	parsed, err := Parse(v.String())
	require.NoError(t, err)
	require.Equal(t, v, parsed)
}

func TestParseBraceFormWithOneSidedOptions(t *testing.T) {
	v, err := Parse("{2 | }")
	require.NoError(t, err)
	require.Equal(t, Integer(3), v)
}

func TestParseRejectsUnterminatedBrace(t *testing.T) {
	_, err := Parse("{1 | -1")
	require.Error(t, err)
}

func TestParseRejectsMultiplePipes(t *testing.T) {
	_, err := Parse("{1 | 2 | 3}")
	require.Error(t, err)
}

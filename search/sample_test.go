package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSampleReturnsRequestedCount(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	sample := RandomSample(items, 3, 42)
	require.Len(t, sample, 3)
}

func TestRandomSampleCapsAtInputLength(t *testing.T) {
	items := []int{1, 2, 3}
	sample := RandomSample(items, 10, 7)
	require.ElementsMatch(t, items, sample)
}

func TestRandomSampleIsDeterministicForSameSeed(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	first := RandomSample(items, 5, 99)
	second := RandomSample(items, 5, 99)
	require.Equal(t, first, second)
}

package search

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"cgt/rulesets/domineering"
)

func TestValueOfTwoByOneIsOne(t *testing.T) {
	d := NewDriver[domineering.Position](domineering.Ruleset{})
	value := d.ValueOf(domineering.New(2, 1))
	require.Equal(t, "1", value.String())
}

func TestValueOfTwoByTwoIsStar(t *testing.T) {
	d := NewDriver[domineering.Position](domineering.Ruleset{})
	value := d.ValueOf(domineering.New(2, 2))
	require.Equal(t, "*", value.String())
}

func TestRunEmitsOneRecordPerPosition(t *testing.T) {
	d := NewDriver[domineering.Position](domineering.Ruleset{}, WithWorkers(2))
	positions := []domineering.Position{
		domineering.New(1, 1),
		domineering.New(2, 1),
		domineering.New(1, 2),
	}

	var mu sync.Mutex
	var records []Record
	err := d.Run(context.Background(), positions, func(r Record) {
		mu.Lock()
		records = append(records, r)
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestCancelStopsEarlyCleanly(t *testing.T) {
	d := NewDriver[domineering.Position](domineering.Ruleset{})
	d.Cancel()
	positions := []domineering.Position{domineering.New(2, 2)}
	err := d.Run(context.Background(), positions, func(Record) {})
	require.NoError(t, err)
}

func TestValueOfMemoizesRepeatedPositions(t *testing.T) {
	d := NewDriver[domineering.Position](domineering.Ruleset{})
	pos := domineering.New(2, 1)
	first := d.ValueOf(pos)
	second := d.ValueOf(pos)
	require.Equal(t, first, second)
}

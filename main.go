package main

import (
	"context"
	"fmt"
	"time"

	"cgt/rulesets/domineering"
	"cgt/search"
)

type config struct {
	goroutines int
}

func main() {
	tabulateBoards()
	runSpeedupExperiment()
}

func tabulateBoards() {
	fmt.Printf("Tabulating Domineering boards up to 3x3...\n")
	driver := search.NewDriver[domineering.Position](domineering.Ruleset{})
	var positions []domineering.Position
	for rows := 1; rows <= 3; rows++ {
		for cols := 1; cols <= 3; cols++ {
			positions = append(positions, domineering.New(rows, cols))
		}
	}

	err := driver.Run(context.Background(), positions, func(rec search.Record) {
		fmt.Printf("%-9s -> %-8s temperature=%s mean=%s\n",
			rec.Position, rec.CanonicalForm, rec.Temperature, rec.Mean)
	})
	if err != nil {
		fmt.Printf("tabulation failed: %v\n", err)
	}
}

func runSpeedupExperiment() {
	configs := []config{
		{goroutines: 1},
		{goroutines: 8},
		{goroutines: 64},
	}

	var positions []domineering.Position
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			positions = append(positions, domineering.New(rows, cols))
		}
	}

	fmt.Printf("Running speedup experiment...\n")
	for _, cfg := range configs {
		fmt.Printf("Tabulating with %d workers:\n", cfg.goroutines)
		start := time.Now()
		count := runTabulation(cfg, positions)
		fmt.Printf("workers=%-3d positions=%-3d elapsed=%s\n", cfg.goroutines, count, time.Since(start))
	}
	fmt.Printf("Finished speedup experiment.\n")
}

// runTabulation runs the driver over positions with the given worker
// count and returns how many records it emitted.
func runTabulation(cfg config, positions []domineering.Position) int {
	driver := search.NewDriver[domineering.Position](
		domineering.Ruleset{},
		search.WithWorkers(cfg.goroutines),
	)
	count := 0
	_ = driver.Run(context.Background(), positions, func(search.Record) {
		count++
	})
	return count
}

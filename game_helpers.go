package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame builds and seeds the starting grid
func initializeGame(config utils.Config) (*model.Grid, error) {
	grid := model.NewGrid(config.Rows, config.Cols)

	if config.RandomDensity > 0 {
		grid.Randomize(rand.New(rand.NewPCG(config.Seed, 0)), config.RandomDensity)
	}

	if config.Pattern != "" {
		pattern, err := model.PatternByName(config.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame]")
		}
		if err = grid.Place(pattern, config.OriginX, config.OriginY); err != nil {
			return nil, errors.Wrap(err, "[initializeGame]")
		}
	}

	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Pattern: %q | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), config.Pattern, grid.CountLivingCells())
	fmt.Printf("Parallel: %v | Step every %d frames of %v\n",
		config.UseParallel, config.FramesPerCycle, config.FrameRate)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// advance runs one simulation step and records it in history and stats.
// It reports whether the new generation repeats a recent one.
func advance(
	ctx context.Context,
	grid *model.Grid,
	generation int,
	config utils.Config,
	history *model.History,
	stats *utils.Stats,
) (*model.Grid, bool, error) {
	history.Record(grid)

	start := time.Now()
	next, err := model.Step(ctx, grid, config.UseParallel, config.Workers)
	if err != nil {
		return nil, false, errors.Wrapf(err, "[advance] generation %d", generation)
	}
	stats.Update(generation, next.CountLivingCells(), time.Since(start))

	return next, history.Repeats(next), nil
}

// gameStatus describes the grid for the status line
func gameStatus(livingCells int, stagnant bool) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, grid *model.Grid, stagnant bool, stats *utils.Stats) {
	var (
		livingCells = grid.CountLivingCells()
		density     float64
	)
	if cells := grid.Rows() * grid.Cols(); cells > 0 {
		density = float64(livingCells) / float64(cells) * 100
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, gameStatus(livingCells, stagnant))
	fmt.Printf("Performance: %.1f gen/sec | Last step: %v | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.LastStep, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the loop should end
func checkStopConditions(livingCells, generation int, stagnant bool, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if config.StopOnStagnation {
		if livingCells == 0 {
			return true, "extinction"
		}
		if stagnant {
			return true, "stagnation detected"
		}
	}
	return false, ""
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	grid, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to seed grid: %+v", err)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, grid, config, model.NewTerminalRenderer()); err != nil {
		stop()
		log.Fatalf("simulation aborted: %+v", err)
	}
}

// gridDisplay is the presentation side of the frame loop
type gridDisplay interface {
	Clear() error
	Display(g *model.Grid) error
}

// run drives the frame loop: it redraws the grid and steps the simulation
// once every config.FramesPerCycle frames.
func run(ctx context.Context, grid *model.Grid, config utils.Config, renderer gridDisplay) error {
	var (
		history      = model.NewHistory(config.HistorySize)
		stats        = utils.NewStats()
		ticker       = time.NewTicker(config.FrameRate)
		generation   = 0
		passedFrames = 0
		stagnant     = false
		redraw       = true
	)
	defer ticker.Stop()

	for {
		if redraw {
			if err := renderer.Clear(); err != nil {
				fmt.Println("Error clearing terminal:", err)
			}
			displayGameStatus(generation, grid, stagnant, stats)
			if err := renderer.Display(grid); err != nil {
				return err
			}
			redraw = false

			if done, reason := checkStopConditions(grid.CountLivingCells(), generation, stagnant, config); done {
				fmt.Printf("\n🏁 Stopping: %s\n", reason)
				return nil
			}
		}

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			return nil
		case <-ticker.C:
		}

		passedFrames++
		if passedFrames < config.FramesPerCycle {
			continue
		}
		passedFrames = 0

		next, repeats, err := advance(ctx, grid, generation+1, config, history, stats)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			return err
		}
		grid, stagnant, redraw = next, repeats, true
		generation++
	}
}

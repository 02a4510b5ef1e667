package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Simulate computes the next generation of g. Every neighbour count is read
// from g and every result is written to a new grid, so g is left untouched.
func Simulate(g *Grid) (*Grid, error) {
	if g == nil {
		return nil, errors.Wrap(ErrNilGrid, "[Simulate]")
	}

	next := NewGrid(g.rows, g.cols)
	if err := g.stepRows(next, 0, g.rows); err != nil {
		return nil, errors.Wrap(err, "[Simulate]")
	}
	return next, nil
}

// SimulateParallel computes the same generation as Simulate, splitting rows
// across workers. workers <= 0 uses one worker per CPU.
func SimulateParallel(ctx context.Context, g *Grid, workers int) (*Grid, error) {
	if g == nil {
		return nil, errors.Wrap(ErrNilGrid, "[SimulateParallel]")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		next          = NewGrid(g.rows, g.cols)
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return g.stepRows(next, startRow, endRow)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[SimulateParallel]")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "[SimulateParallel]")
	}
	return next, nil
}

// Step advances g by one generation using the sequential or parallel path
func Step(ctx context.Context, g *Grid, parallel bool, workers int) (*Grid, error) {
	if parallel {
		return SimulateParallel(ctx, g, workers)
	}
	return Simulate(g)
}

// stepRows writes the next state of rows [startRow, endRow) into next.
func (g *Grid) stepRows(next *Grid, startRow, endRow int) error {
	for y := startRow; y < endRow; y++ {
		for x := range g.cols {
			n, err := g.Neighbours(x, y)
			if err != nil {
				return err
			}
			i, err := g.offset(x, y)
			if err != nil {
				return err
			}
			next.cells[i] = rules.NextState(n, g.cells[i])
		}
	}
	return nil
}

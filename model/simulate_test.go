package model

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func gridWith(t *testing.T, rows, cols int, points ...Point) *Grid {
	t.Helper()
	g := NewGrid(rows, cols)
	for _, p := range points {
		mustSet(t, g, p.X, p.Y)
	}
	return g
}

func expectLive(t *testing.T, g *Grid, want ...Point) {
	t.Helper()
	expects := make(map[Point]bool, len(want))
	for _, p := range want {
		expects[p] = true
	}
	for y := range g.Rows() {
		for x := range g.Cols() {
			alive := mustGet(t, g, x, y)
			if alive != expects[Point{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[Point{x, y}])
			}
		}
	}
}

func mustSimulate(t *testing.T, g *Grid) *Grid {
	t.Helper()
	next, err := Simulate(g)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return next
}

func TestSimulateBlockIsStill(t *testing.T) {
	block := []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	g := gridWith(t, 4, 4, block...)
	expectLive(t, mustSimulate(t, g), block...)

	// flush against the far corner
	corner := []Point{{8, 8}, {9, 8}, {8, 9}, {9, 9}}
	g = gridWith(t, 10, 10, corner...)
	expectLive(t, mustSimulate(t, g), corner...)

	// flush against the origin
	origin := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	g = gridWith(t, 4, 4, origin...)
	expectLive(t, mustSimulate(t, g), origin...)
}

func TestSimulateBlinker(t *testing.T) {
	g := gridWith(t, 5, 5, Point{1, 2}, Point{2, 2}, Point{3, 2})

	g = mustSimulate(t, g)
	expectLive(t, g, Point{2, 1}, Point{2, 2}, Point{2, 3})

	g = mustSimulate(t, g)
	expectLive(t, g, Point{1, 2}, Point{2, 2}, Point{3, 2})
}

func TestSimulateLauncherSeed(t *testing.T) {
	g := NewGrid(20, 20)
	if err := g.Place(LauncherSeed, 9, 9); err != nil {
		t.Fatalf("Place: %v", err)
	}
	expectLive(t, g,
		Point{10, 10},
		Point{9, 11}, Point{10, 11}, Point{11, 11},
		Point{9, 12}, Point{11, 12},
		Point{10, 13},
	)

	next := mustSimulate(t, g)
	expectLive(t, next,
		Point{9, 10}, Point{10, 10}, Point{11, 10},
		Point{9, 11}, Point{11, 11},
		Point{9, 12}, Point{11, 12},
		Point{10, 13},
	)
}

func TestSimulateGliderTranslates(t *testing.T) {
	g := NewGrid(20, 20)
	if err := g.Place(Glider, 2, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	for range 4 {
		g = mustSimulate(t, g)
	}

	want := NewGrid(20, 20)
	if err := want.Place(Glider, 3, 3); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if !g.Equal(want) {
		t.Fatalf("glider after 4 steps = %v, expected %v", g.LiveCells(), want.LiveCells())
	}
}

func TestSimulateRules(t *testing.T) {
	// lonely cells die, crowded cells die, three neighbours give birth
	g := gridWith(t, 5, 5,
		Point{4, 4},
		Point{2, 1}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{2, 3},
	)
	next := mustSimulate(t, g)

	if alive := mustGet(t, next, 4, 4); alive {
		t.Fatalf("isolated cell survived")
	}
	if alive := mustGet(t, next, 2, 2); alive {
		t.Fatalf("cell with four neighbours survived")
	}
	if alive := mustGet(t, next, 1, 1); !alive {
		t.Fatalf("dead cell with three neighbours was not born")
	}
	if alive := mustGet(t, next, 2, 1); !alive {
		t.Fatalf("cell with three neighbours died")
	}
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	g := NewGrid(12, 9)
	g.Randomize(rand.New(rand.NewPCG(7, 7)), 0.4)
	before := g.Clone()

	next := mustSimulate(t, g)
	if !g.Equal(before) {
		t.Fatalf("Simulate mutated its input")
	}
	if next.Rows() != g.Rows() || next.Cols() != g.Cols() {
		t.Fatalf("Simulate changed dimensions to %dx%d", next.Rows(), next.Cols())
	}

	// the result owns its own buffer
	mustSet(t, next, 0, 0)
	if !g.Equal(before) {
		t.Fatalf("writing the next generation changed the previous one")
	}
}

func TestSimulateDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		next := mustSimulate(t, NewGrid(dims[0], dims[1]))
		if next.Rows() != dims[0] || next.Cols() != dims[1] {
			t.Fatalf("Simulate(%dx%d) returned %dx%d", dims[0], dims[1], next.Rows(), next.Cols())
		}
	}

	single := gridWith(t, 1, 1, Point{0, 0})
	expectLive(t, mustSimulate(t, single))

	if _, err := Simulate(nil); !errors.Is(err, ErrNilGrid) {
		t.Fatalf("Simulate(nil) err=%v, expected ErrNilGrid", err)
	}
}

func TestSimulateParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for _, dims := range [][2]int{{1, 1}, {7, 3}, {3, 7}, {33, 41}, {64, 64}} {
		g := NewGrid(dims[0], dims[1])
		g.Randomize(rng, 0.35)

		want := mustSimulate(t, g)
		for _, workers := range []int{0, 1, 2, 5, 100} {
			got, err := SimulateParallel(context.Background(), g, workers)
			if err != nil {
				t.Fatalf("SimulateParallel(%dx%d, %d): %v", dims[0], dims[1], workers, err)
			}
			if !got.Equal(want) {
				t.Fatalf("SimulateParallel(%dx%d, %d) differs from Simulate", dims[0], dims[1], workers)
			}
		}
	}
}

func TestSimulateParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGrid(16, 16)
	next, err := SimulateParallel(ctx, g, 4)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("SimulateParallel err=%v, expected context.Canceled", err)
	}
	if next != nil {
		t.Fatalf("cancelled step returned a grid")
	}

	if _, err = SimulateParallel(context.Background(), nil, 2); !errors.Is(err, ErrNilGrid) {
		t.Fatalf("SimulateParallel(nil) err=%v, expected ErrNilGrid", err)
	}
}

func TestStep(t *testing.T) {
	blinker := []Point{{1, 2}, {2, 2}, {3, 2}}
	for _, parallel := range []bool{false, true} {
		next, err := Step(context.Background(), gridWith(t, 5, 5, blinker...), parallel, 2)
		if err != nil {
			t.Fatalf("Step(parallel=%v): %v", parallel, err)
		}
		expectLive(t, next, Point{2, 1}, Point{2, 2}, Point{2, 3})
	}
}

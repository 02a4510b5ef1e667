package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named shape given as offsets from its top-left origin
type Pattern struct {
	Name   string
	Points []Point
}

var (
	// LauncherSeed is the seven-cell starting shape of the terminal launcher
	LauncherSeed = Pattern{
		Name: "launcher",
		Points: []Point{
			{1, 1},
			{0, 2}, {1, 2}, {2, 2},
			{0, 3}, {2, 3},
			{1, 4},
		},
	}

	// Glider travels one cell down and right every four generations
	Glider = Pattern{
		Name:   "glider",
		Points: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}

	// Blinker is a period-two horizontal oscillator
	Blinker = Pattern{
		Name:   "blinker",
		Points: []Point{{0, 0}, {1, 0}, {2, 0}},
	}

	// Block is a two-by-two still life
	Block = Pattern{
		Name:   "block",
		Points: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}

	patterns = map[string]Pattern{
		LauncherSeed.Name: LauncherSeed,
		Glider.Name:       Glider,
		Blinker.Name:      Blinker,
		Block.Name:        Block,
	}
)

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return p, nil
}

// PatternNames returns the names of all built-in patterns, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets every cell of p alive, offset by (originX, originY).
// It stops at the first point that falls outside the grid.
func (g *Grid) Place(p Pattern, originX, originY int) error {
	for _, pt := range p.Points {
		if err := g.Set(originX+pt.X, originY+pt.Y, true); err != nil {
			return errors.Wrapf(err, "[Place] pattern %q", p.Name)
		}
	}
	return nil
}

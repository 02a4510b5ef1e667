package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Point is a cell coordinate, x indexes columns and y indexes rows
type Point struct {
	X, Y int
}

// Grid is a fixed-size board of live/dead cells stored in a flat buffer with a
// stride of cols. Cells outside the board do not exist: there is no wraparound.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates a grid with the specified dimensions and every cell dead
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// offset is the single place that maps (x, y) onto the flat buffer.
func (g *Grid) offset(x, y int) (int, error) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d, %d) on %dx%d grid", x, y, g.rows, g.cols)
	}
	return x + y*g.cols, nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	i, err := g.offset(x, y)
	if err != nil {
		return false, errors.Wrap(err, "[Get]")
	}
	return g.cells[i], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	i, err := g.offset(x, y)
	if err != nil {
		return errors.Wrap(err, "[Set]")
	}
	g.cells[i] = alive
	return nil
}

// window is an inclusive rectangle of cells
type window struct {
	minX, maxX, minY, maxY int
}

// neighbourWindow clamps the 3x3 block centred on (x, y) to the grid, each
// axis independently and inclusive on both ends.
func (g *Grid) neighbourWindow(x, y int) window {
	return window{
		minX: max(x-1, 0),
		maxX: min(x+1, g.cols-1),
		minY: max(y-1, 0),
		maxY: min(y+1, g.rows-1),
	}
}

// Neighbours counts the living cells around (x, y), excluding the cell itself
func (g *Grid) Neighbours(x, y int) (int, error) {
	centre, err := g.offset(x, y)
	if err != nil {
		return 0, errors.Wrap(err, "[Neighbours]")
	}

	w := g.neighbourWindow(x, y)
	count := 0
	for ny := w.minY; ny <= w.maxY; ny++ {
		for nx := w.minX; nx <= w.maxX; nx++ {
			i, err := g.offset(nx, ny)
			if err != nil {
				return 0, errors.Wrapf(err, "[Neighbours] window of (%d, %d)", x, y)
			}
			if g.cells[i] {
				count++
			}
		}
	}

	// the window includes the centre
	if g.cells[centre] {
		count--
	}
	return count, nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() []Point {
	var points []Point
	for i, alive := range g.cells {
		if alive {
			points = append(points, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return points
}

// Clone returns a deep copy that shares no memory with g
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.rows, g.cols)
	copy(next.cells, g.cells)
	return next
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()

	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.rows))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.cols))
	h.Write(dims[:])

	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the grid with living cells at the given density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInvalidDimension is returned when a grid is built with a non-positive width or height
var ErrInvalidDimension = errors.New("grid dimensions must be positive")

// Grid represents the game board. Its width and height are fixed for its
// lifetime; the cells are replaced wholesale on every generation.
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	generation int
}

// NewGrid creates a new grid with the specified dimensions, every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] got %dx%d", width, height)
	}
	g := &Grid{width: width, height: height}
	g.cells = g.buildCells(func(int, int) bool { return false })
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns how many generations have been advanced since the grid
// was created or last reset
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) lookup(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// CellAt returns a handle on the cell at (x, y). Out-of-range coordinates
// report false.
func (g *Grid) CellAt(x, y int) (CellRef, bool) {
	if !g.inBounds(x, y) {
		return CellRef{}, false
	}
	return CellRef{grid: g, x: x, y: y}, true
}

// Get returns the state of a cell, false when out of range
func (g *Grid) Get(x, y int) bool {
	c, ok := g.lookup(x, y)
	return ok && c.alive
}

// Set sets a cell to alive (true) or dead (false). It reports false when
// (x, y) is out of range.
func (g *Grid) Set(x, y int, alive bool) bool {
	ref, ok := g.CellAt(x, y)
	if ok {
		ref.SetAlive(alive)
	}
	return ok
}

// buildCells creates a fresh height x width board with state decided per coordinate
func (g *Grid) buildCells(alive func(x, y int) bool) [][]Cell {
	cells := make([][]Cell, g.height)
	for y := range cells {
		cells[y] = make([]Cell, g.width)
		for x := range cells[y] {
			cells[y][x] = NewCell(x, y, alive(x, y))
		}
	}
	return cells
}

// AdvanceGeneration computes the next generation from the current board,
// swaps the new board in once it is complete and returns a snapshot of it.
func (g *Grid) AdvanceGeneration() Board {
	// every read goes to g.cells, which is untouched until the swap below
	next := g.buildCells(func(x, y int) bool {
		return g.cells[y][x].NextGenerationAlive(g.lookup)
	})

	g.cells = next
	g.generation++
	return newBoard(next)
}

// Snapshot returns the current board without advancing
func (g *Grid) Snapshot() Board {
	return newBoard(g.cells)
}

// Reset kills every cell and sets the generation back to zero
func (g *Grid) Reset() {
	g.cells = g.buildCells(func(int, int) bool { return false })
	g.generation = 0
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].alive {
				count++
			}
		}
	}
	return
}

// Randomize sets each cell alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x].alive = rng.Float64() < density
		}
	}
}

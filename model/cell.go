package model

import "github.com/sheikhrachel/go-life/rules"

// Lookup resolves a coordinate to the cell stored there. The bool is false
// for coordinates outside the grid.
type Lookup func(x, y int) (Cell, bool)

// Cell is a single grid position and its alive/dead state
type Cell struct {
	x, y  int
	alive bool
}

// NewCell creates a cell at (x, y) with the given state
func NewCell(x, y int, alive bool) Cell {
	return Cell{x: x, y: y, alive: alive}
}

func (c Cell) X() int { return c.x }

func (c Cell) Y() int { return c.y }

func (c Cell) IsAlive() bool { return c.alive }

// CountAliveNeighbors counts living cells in the 3x3 block around c.
// The scan covers the center too, so one is taken off when c is alive.
func (c Cell) CountAliveNeighbors(lookup Lookup) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if n, ok := lookup(c.x+dx, c.y+dy); ok && n.alive {
				count++
			}
		}
	}
	if c.alive {
		count--
	}
	return count
}

// NextGenerationAlive reports whether c is alive in the next generation.
// It only reads through lookup and never mutates a cell.
func (c Cell) NextGenerationAlive(lookup Lookup) bool {
	return rules.NextState(c.alive, c.CountAliveNeighbors(lookup))
}

// CellRef is a handle on one coordinate of a Grid. It always reads and
// writes the grid's current board.
type CellRef struct {
	grid *Grid
	x, y int
}

func (r CellRef) X() int { return r.x }

func (r CellRef) Y() int { return r.y }

// IsAlive returns the current state of the cell
func (r CellRef) IsAlive() bool {
	return r.grid.cells[r.y][r.x].alive
}

// SetAlive sets the current state of the cell
func (r CellRef) SetAlive(alive bool) {
	r.grid.cells[r.y][r.x].alive = alive
}

// Toggle flips the cell and returns its new state
func (r CellRef) Toggle() bool {
	c := &r.grid.cells[r.y][r.x]
	c.alive = !c.alive
	return c.alive
}

// Cell returns a value copy of the cell
func (r CellRef) Cell() Cell {
	return r.grid.cells[r.y][r.x]
}

func (r CellRef) CountAliveNeighbors() int {
	return r.Cell().CountAliveNeighbors(r.grid.lookup)
}

func (r CellRef) NextGenerationAlive() bool {
	return r.Cell().NextGenerationAlive(r.grid.lookup)
}

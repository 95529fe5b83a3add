package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	boardAlive = '#'
	boardDead  = '.'
)

// Board is a detached snapshot of a grid's cells, stored row-major
type Board struct {
	width  int
	height int
	cells  []Cell
}

func newBoard(cells [][]Cell) Board {
	b := Board{height: len(cells)}
	if b.height > 0 {
		b.width = len(cells[0])
	}
	b.cells = make([]Cell, 0, b.width*b.height)
	for _, row := range cells {
		b.cells = append(b.cells, row...)
	}
	return b
}

func (b Board) Width() int { return b.width }

func (b Board) Height() int { return b.height }

// At returns the cell at (x, y), or false when out of range
func (b Board) At(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Cells returns a copy of every cell, row by row
func (b Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Alive returns the living cells, row by row
func (b Board) Alive() []Cell {
	var out []Cell
	for _, c := range b.cells {
		if c.alive {
			out = append(out, c)
		}
	}
	return out
}

// CountAlive returns the number of living cells
func (b Board) CountAlive() (count int) {
	for _, c := range b.cells {
		if c.alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the board layout
func (b Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.width, b.height)
	for _, c := range b.cells {
		if c.alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for i, c := range b.cells {
		if c.alive {
			sb.WriteByte(boardAlive)
		} else {
			sb.WriteByte(boardDead)
		}
		if (i+1)%b.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

type point struct{ x, y int }

func newTestGrid(t *testing.T, width, height int, alive ...point) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	for _, p := range alive {
		if !g.Set(p.x, p.y, true) {
			t.Fatalf("Set(%d, %d) out of range", p.x, p.y)
		}
	}
	return g
}

func aliveSet(b Board) map[point]bool {
	out := make(map[point]bool)
	for _, c := range b.Alive() {
		out[point{c.X(), c.Y()}] = true
	}
	return out
}

func assertAlive(t *testing.T, b Board, want ...point) {
	t.Helper()
	got := aliveSet(b)
	if len(got) != len(want) {
		t.Fatalf("got %d alive cells, want %d\n%s", len(got), len(want), b)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("expected (%d, %d) alive\n%s", p.x, p.y, b)
		}
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	for _, dims := range []point{{0, 3}, {3, 0}, {-1, 3}, {3, -2}, {0, 0}} {
		g, err := NewGrid(dims.x, dims.y)
		if errors.Cause(err) != ErrInvalidDimension {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims.x, dims.y, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid alongside the error", dims.x, dims.y)
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := newTestGrid(t, 5, 4)
	if g.GetWidth() != 5 || g.GetHeight() != 4 {
		t.Fatalf("dimensions = %dx%d, want 5x4", g.GetWidth(), g.GetHeight())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("new grid has %d living cells", n)
	}
	if g.Generation() != 0 {
		t.Fatalf("new grid generation = %d", g.Generation())
	}
}

func TestCellAtBounds(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	for _, p := range []point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		if _, ok := g.CellAt(p.x, p.y); ok {
			t.Errorf("CellAt(%d, %d) resolved outside the grid", p.x, p.y)
		}
		if g.Set(p.x, p.y, true) {
			t.Errorf("Set(%d, %d) reported success outside the grid", p.x, p.y)
		}
	}
	ref, ok := g.CellAt(2, 1)
	if !ok {
		t.Fatal("CellAt(2, 1) not found")
	}
	if ref.X() != 2 || ref.Y() != 1 {
		t.Fatalf("CellAt(2, 1) = (%d, %d)", ref.X(), ref.Y())
	}
}

func TestCellRefSetAliveAndToggle(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	ref, _ := g.CellAt(1, 2)

	ref.SetAlive(true)
	if !g.Get(1, 2) || !ref.IsAlive() {
		t.Fatal("SetAlive(true) not visible through the grid")
	}
	if ref.Toggle() {
		t.Fatal("Toggle on a live cell should return false")
	}
	if g.Get(1, 2) {
		t.Fatal("Toggle did not kill the cell")
	}
	if !ref.Toggle() || !g.Get(1, 2) {
		t.Fatal("Toggle did not revive the cell")
	}
}

func TestCellRefFollowsCurrentBoard(t *testing.T) {
	g := newTestGrid(t, 3, 3, point{0, 1}, point{1, 1}, point{2, 1})
	top, _ := g.CellAt(1, 0)
	if top.IsAlive() {
		t.Fatal("(1, 0) should start dead")
	}
	g.AdvanceGeneration()
	if !top.IsAlive() {
		t.Fatal("handle taken before the step should see the new board")
	}
	top.SetAlive(false)
	if g.Get(1, 0) {
		t.Fatal("SetAlive after a step did not reach the current board")
	}
}

func TestAdvanceGenerationCoversEveryCell(t *testing.T) {
	g := newTestGrid(t, 7, 4)
	g.Randomize(rand.New(rand.NewSource(1)), 0.4)

	b := g.AdvanceGeneration()
	if b.Width() != 7 || b.Height() != 4 {
		t.Fatalf("board is %dx%d, want 7x4", b.Width(), b.Height())
	}
	cells := b.Cells()
	if len(cells) != 28 {
		t.Fatalf("board has %d cells, want 28", len(cells))
	}
	seen := make(map[point]bool)
	for _, c := range cells {
		p := point{c.X(), c.Y()}
		if seen[p] {
			t.Fatalf("(%d, %d) appears twice", p.x, p.y)
		}
		seen[p] = true
	}
	for y := range 4 {
		for x := range 7 {
			if !seen[point{x, y}] {
				t.Fatalf("(%d, %d) missing from board", x, y)
			}
		}
	}
}

func TestAdvanceGenerationAllDeadStaysDead(t *testing.T) {
	for _, dims := range []point{{1, 1}, {1, 5}, {3, 3}, {10, 6}} {
		g := newTestGrid(t, dims.x, dims.y)
		for range 3 {
			if n := g.AdvanceGeneration().CountAlive(); n != 0 {
				t.Fatalf("%dx%d all-dead grid produced %d living cells", dims.x, dims.y, n)
			}
		}
	}
}

func TestAdvanceGenerationDeterministic(t *testing.T) {
	a := newTestGrid(t, 12, 9)
	b := newTestGrid(t, 12, 9)
	a.Randomize(rand.New(rand.NewSource(42)), 0.35)
	b.Randomize(rand.New(rand.NewSource(42)), 0.35)

	for i := range 5 {
		ba, bb := a.AdvanceGeneration(), b.AdvanceGeneration()
		if ba.Hash() != bb.Hash() {
			t.Fatalf("generation %d diverged\n%s\nvs\n%s", i+1, ba, bb)
		}
	}
}

func TestBlinker(t *testing.T) {
	g := newTestGrid(t, 3, 3, point{0, 1}, point{1, 1}, point{2, 1})

	b := g.AdvanceGeneration()
	assertAlive(t, b, point{1, 0}, point{1, 1}, point{1, 2})

	b = g.AdvanceGeneration()
	assertAlive(t, b, point{0, 1}, point{1, 1}, point{2, 1})
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := newTestGrid(t, 3, 3, point{1, 1})
	assertAlive(t, g.AdvanceGeneration())
}

func TestBlockStillLife(t *testing.T) {
	block := []point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	g := newTestGrid(t, 4, 4, block...)
	assertAlive(t, g.AdvanceGeneration(), block...)
}

func TestCornerReproduction(t *testing.T) {
	g := newTestGrid(t, 3, 3, point{0, 0}, point{1, 0}, point{0, 1})
	b := g.AdvanceGeneration()
	c, ok := b.At(1, 1)
	if !ok || !c.IsAlive() {
		t.Fatalf("(1, 1) should be born\n%s", b)
	}
	// the three live cells each have two neighbors and survive: a block
	assertAlive(t, b, point{0, 0}, point{1, 0}, point{0, 1}, point{1, 1})
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGrid(t, 3, 3, point{0, 1}, point{1, 1}, point{2, 1})
	b := g.AdvanceGeneration()
	g.Set(0, 0, true)
	g.AdvanceGeneration()
	assertAlive(t, b, point{1, 0}, point{1, 1}, point{1, 2})

	snap := g.Snapshot()
	if snap.CountAlive() != g.CountLivingCells() {
		t.Fatalf("snapshot has %d living cells, grid has %d", snap.CountAlive(), g.CountLivingCells())
	}
}

func TestReset(t *testing.T) {
	g := newTestGrid(t, 4, 4, point{1, 1}, point{2, 1}, point{1, 2}, point{2, 2})
	g.AdvanceGeneration()
	g.Reset()
	if g.CountLivingCells() != 0 || g.Generation() != 0 {
		t.Fatalf("after Reset: %d living, generation %d", g.CountLivingCells(), g.Generation())
	}
	if g.GetWidth() != 4 || g.GetHeight() != 4 {
		t.Fatal("Reset changed the dimensions")
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	g := newTestGrid(t, 6, 6)
	rng := rand.New(rand.NewSource(7))
	g.Randomize(rng, 1)
	if g.CountLivingCells() != 36 {
		t.Fatalf("density 1 gave %d living cells", g.CountLivingCells())
	}
	g.Randomize(rng, 0)
	if g.CountLivingCells() != 0 {
		t.Fatalf("density 0 gave %d living cells", g.CountLivingCells())
	}
}

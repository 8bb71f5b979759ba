package life

import (
	"testing"

	"conway-live/internal/core"
)

func emptyLife(w, h int) *Life {
	l := New(Config{Width: w, Height: h, Seed: 7})
	l.Grid().Clear()
	return l
}

func assertAlive(t *testing.T, l *Life, expects map[[2]int]bool, stage string) {
	t.Helper()
	size := l.Size()
	cells := l.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := cells[y*size.W+x] == 1
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestNeighborCountClipsAtEdges(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(0, 0, 1)
	g.Set(1, 1, 1)
	g.Set(2, 1, 1)

	want := [3][3]int{
		{1, 3, 2},
		{2, 2, 1},
		{1, 2, 2},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := NeighborCount(g, x, y); got != want[y][x] {
				t.Fatalf("NeighborCount(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestNeighborCountFullGrid(t *testing.T) {
	g := core.NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}

	want := [3][3]int{
		{3, 5, 3},
		{5, 8, 5},
		{3, 5, 3},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := NeighborCount(g, x, y); got != want[y][x] {
				t.Fatalf("NeighborCount(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestRule(t *testing.T) {
	tests := []struct {
		cell      uint8
		neighbors int
		want      uint8
	}{
		{1, 0, 0},
		{1, 1, 0},
		{1, 2, 1},
		{1, 3, 1},
		{1, 4, 0},
		{1, 8, 0},
		{0, 2, 0},
		{0, 3, 1},
		{0, 4, 0},
		{0, 6, 0},
	}
	for _, tt := range tests {
		if got := rule(tt.cell, tt.neighbors); got != tt.want {
			t.Fatalf("rule(%d, %d) = %d, want %d", tt.cell, tt.neighbors, got, tt.want)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	life := emptyLife(6, 6)
	g := life.Grid()
	g.Set(2, 2, 1)
	g.Set(3, 2, 1)
	g.Set(2, 3, 1)
	g.Set(3, 3, 1)

	expects := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	for i := 0; i < 20; i++ {
		life.Step()
		assertAlive(t, life, expects, "block")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := emptyLife(5, 5)
	g := life.Grid()
	g.Set(1, 2, 1)
	g.Set(2, 2, 1)
	g.Set(3, 2, 1)

	life.Step()
	assertAlive(t, life, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after first step")

	life.Step()
	assertAlive(t, life, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after second step")
}

func TestBlinkerAtEdgeDoesNotWrap(t *testing.T) {
	life := emptyLife(5, 5)
	g := life.Grid()
	g.Set(0, 0, 1)
	g.Set(1, 0, 1)
	g.Set(2, 0, 1)

	life.Step()
	// The cell above the centre is off the grid, so only two survive.
	assertAlive(t, life, map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
	}, "edge blinker")
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	life := emptyLife(16, 12)
	for i := 0; i < 10; i++ {
		life.Step()
		if n := life.Population(); n != 0 {
			t.Fatalf("step %d: population %d, want 0", i+1, n)
		}
	}
	if life.Generation() != 10 {
		t.Fatalf("generation = %d, want 10", life.Generation())
	}
}

func TestStepDoesNotAliasPrior(t *testing.T) {
	prior := core.NewGrid(5, 5)
	prior.Set(1, 2, 1)
	prior.Set(2, 2, 1)
	prior.Set(3, 2, 1)
	snapshot := append([]uint8(nil), prior.Cells()...)

	next := core.NewGrid(5, 5)
	Step(prior, next)

	for i, c := range prior.Cells() {
		if c != snapshot[i] {
			t.Fatalf("prior grid mutated at %d", i)
		}
	}
	if next.At(2, 1) != 1 || next.At(1, 2) != 0 {
		t.Fatal("next grid does not hold the vertical blinker")
	}
}

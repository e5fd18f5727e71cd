package life

import (
	"slices"
	"testing"

	"c64life/internal/display"
)

// seedWrapped sets pattern cells with toroidal wrapping so tests can place
// shapes across the seam, which Stamp deliberately refuses to do.
func seedWrapped(w *World, p Pattern, x0, y0 int) {
	ww, hh := w.Size()
	for _, pt := range p.Cells {
		x := ((x0+pt.X)%ww + ww) % ww
		y := ((y0+pt.Y)%hh + hh) % hh
		w.board.SetCell(x, y, 1)
	}
	w.RebuildScreen()
}

func liveSet(w *World) map[[2]int]bool {
	ww, hh := w.Size()
	set := map[[2]int]bool{}
	for y := 0; y < hh; y++ {
		for x := 0; x < ww; x++ {
			if w.Cell(x, y) == 1 {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func sameSet(t *testing.T, got, want map[[2]int]bool) {
	t.Helper()
	for p := range want {
		if !got[p] {
			t.Fatalf("cell (%d,%d) dead, expected alive", p[0], p[1])
		}
	}
	for p := range got {
		if !want[p] {
			t.Fatalf("cell (%d,%d) alive, expected dead", p[0], p[1])
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	anchors := [][2]int{{3, 2}, {0, 0}, {7, 5}} // the last wraps both edges
	for _, a := range anchors {
		world := New(8, 6)
		seedWrapped(world, Block, a[0], a[1])
		before := liveSet(world)

		world.Step()

		sameSet(t, liveSet(world), before)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	world := New(5, 5)
	seedWrapped(world, Blinker, 1, 2)

	world.Step()
	sameSet(t, liveSet(world), map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	world.Step()
	sameSet(t, liveSet(world), map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

func TestGliderTranslation(t *testing.T) {
	anchors := [][2]int{{2, 2}, {6, 6}} // the second crosses the seam mid-flight
	for _, a := range anchors {
		world := New(9, 9)
		seedWrapped(world, Glider, a[0], a[1])

		for i := 0; i < 4; i++ {
			world.Step()
		}

		want := map[[2]int]bool{}
		ww, hh := world.Size()
		for _, pt := range Glider.Cells {
			x := ((a[0]+pt.X+1)%ww + ww) % ww
			y := ((a[1]+pt.Y+1)%hh + hh) % hh
			want[[2]int{x, y}] = true
		}
		sameSet(t, liveSet(world), want)
	}
}

func TestScreenMatchesGridAfterStep(t *testing.T) {
	world := NewDefault()
	world.Reset(123)
	world.Step()

	w, h := world.Size()
	screen := world.Screen()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := display.Glyph(world.Cell(x, y))
			if screen[y*w+x] != want {
				t.Fatalf("glyph at (%d,%d) = %q, want %q", x, y, screen[y*w+x], want)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := NewDefault(), NewDefault()
	a.Reset(99)
	b.Reset(99)

	if !slices.Equal(a.Screen(), b.Screen()) {
		t.Fatal("same seed produced different frames")
	}
	w, h := a.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				t.Fatalf("same seed produced different cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestResetBuildsFirstFrame(t *testing.T) {
	world := NewDefault()
	world.Reset(7)

	w, h := world.Size()
	screen := world.Screen()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if screen[y*w+x] != display.Glyph(world.Cell(x, y)) {
				t.Fatalf("seeded frame inconsistent at (%d,%d)", x, y)
			}
		}
	}
}

func TestToggleKeepsFrameConsistent(t *testing.T) {
	world := New(6, 4)

	world.Toggle(2, 1)
	if world.Cell(2, 1) != 1 || world.Screen()[1*6+2] != display.Live {
		t.Fatal("toggle did not set cell and glyph")
	}

	world.Toggle(2, 1)
	if world.Cell(2, 1) != 0 || world.Screen()[1*6+2] != display.Dead {
		t.Fatal("toggle did not clear cell and glyph")
	}

	// Out-of-range toggles are dropped.
	world.Toggle(-1, 0)
	world.Toggle(6, 0)
	world.Toggle(0, 4)
	for _, g := range world.Screen() {
		if g != display.Dead {
			t.Fatal("out-of-range toggle changed the frame")
		}
	}
}

func TestClearRow(t *testing.T) {
	world := New(6, 4)
	seedWrapped(world, Blinker, 1, 2)
	world.Toggle(0, 1)

	world.ClearRow(2)

	for x := 0; x < 6; x++ {
		if world.Cell(x, 2) != 0 {
			t.Fatalf("cell (%d,2) survived ClearRow", x)
		}
		if world.Screen()[2*6+x] != display.Dead {
			t.Fatalf("glyph (%d,2) survived ClearRow", x)
		}
	}
	if world.Cell(0, 1) != 1 {
		t.Fatal("ClearRow touched another row")
	}

	world.ClearRow(-1)
	world.ClearRow(4)
	if world.Cell(0, 1) != 1 {
		t.Fatal("out-of-range ClearRow changed the grid")
	}
}

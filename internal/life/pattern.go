package life

import "c64life/internal/display"

// Point is a pattern cell offset relative to the stamp anchor.
type Point struct {
	X, Y int
}

// Pattern is a set of live cells described relative to an anchor.
type Pattern struct {
	Name  string
	Cells []Point
}

// The preset library carried over from the original program.
var (
	Block = Pattern{Name: "block", Cells: []Point{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	}}

	Blinker = Pattern{Name: "blinker", Cells: []Point{
		{0, 0}, {1, 0}, {2, 0},
	}}

	Glider = Pattern{Name: "glider", Cells: []Point{
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	}}

	GliderGun = Pattern{Name: "glider gun", Cells: []Point{
		{0, 4}, {1, 4}, {0, 5}, {1, 5},
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8},
		{13, 2}, {13, 8}, {14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5},
		{16, 6}, {17, 5},
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1},
		{22, 5}, {24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	}}
)

// Presets lists the stampable patterns in menu order.
func Presets() []Pattern {
	return []Pattern{Block, Blinker, Glider, GliderGun}
}

// Stamp sets the pattern's cells live with the anchor at (x0, y0), keeping
// the frame consistent. Points landing outside the grid are silently
// dropped; stamping never wraps, unlike the running simulation.
func (w *World) Stamp(p Pattern, x0, y0 int) {
	for _, pt := range p.Cells {
		x, y := x0+pt.X, y0+pt.Y
		if x < 0 || x >= w.w || y < 0 || y >= w.h {
			continue
		}
		w.board.SetCell(x, y, 1)
		w.screen[y*w.w+x] = display.Live
	}
}

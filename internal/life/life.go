// Package life implements Conway's Game of Life on a fixed-size toroidal
// grid, together with the seeding and editing operations the menus need.
//
// The transition pass computes the next generation and the character frame
// for that generation in the same sweep, so presenting a frame is only a
// flat copy. Combined with the cycle ordering in Loop this means the
// display never sees partially computed data and the expensive per-cell
// work always runs behind a frame that is already on screen.
package life

import (
	"c64life/internal/core"
	"c64life/internal/display"
)

// Reference dimensions: the 40x25 character display the original program
// was written for.
const (
	DefaultWidth  = 40
	DefaultHeight = 25
)

// World couples the double-buffered board with the glyph frame prepared
// for the next presentation. All storage is allocated once in New and
// reused for the lifetime of the world.
type World struct {
	w, h   int
	board  *core.Board
	screen []byte
}

// New returns a cleared world with a w*h logical grid.
func New(w, h int) *World {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	wd := &World{w: w, h: h, board: core.NewBoard(w, h), screen: make([]byte, w*h)}
	for i := range wd.screen {
		wd.screen[i] = display.Dead
	}
	return wd
}

// NewDefault returns a world at the reference 40x25 size.
func NewDefault() *World { return New(DefaultWidth, DefaultHeight) }

// Size returns the logical grid dimensions.
func (w *World) Size() (int, int) { return w.w, w.h }

// Screen returns the glyph frame prepared for the next presentation.
func (w *World) Screen() []byte { return w.screen }

// Cell returns the state of a logical cell in the current generation.
func (w *World) Cell(x, y int) uint8 { return w.board.Cell(x, y) }

// Reset randomizes every logical cell using the provided seed and builds
// the matching first frame in the same pass.
func (w *World) Reset(seed int64) {
	w.board.Clear()
	rng := core.NewRNG(seed)
	cur := w.board.Current()
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			v := rng.Bit()
			cur[w.board.Index(x, y)] = v
			w.screen[y*w.w+x] = display.Glyph(v)
		}
	}
}

// Toggle flips one logical cell and its glyph. Out-of-range coordinates
// are dropped.
func (w *World) Toggle(x, y int) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	v := w.board.Cell(x, y) ^ 1
	w.board.SetCell(x, y, v)
	w.screen[y*w.w+x] = display.Glyph(v)
}

// Clear kills every cell and blanks the frame.
func (w *World) Clear() {
	w.board.Clear()
	for i := range w.screen {
		w.screen[i] = display.Dead
	}
}

// ClearRow kills every cell in one logical row. Out-of-range rows are
// dropped.
func (w *World) ClearRow(y int) {
	if y < 0 || y >= w.h {
		return
	}
	for x := 0; x < w.w; x++ {
		w.board.SetCell(x, y, 0)
		w.screen[y*w.w+x] = display.Dead
	}
}

// RebuildScreen reconstructs the frame from the current generation. Called
// after collaborators have written cells directly, before the loop
// resumes.
func (w *World) RebuildScreen() {
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			w.screen[y*w.w+x] = display.Glyph(w.board.Cell(x, y))
		}
	}
}

// Step advances the world by one generation: refresh the border ring, run
// the transition, swap buffers.
func (w *World) Step() {
	w.board.MirrorBorders()
	w.transition()
	w.board.Swap()
}

// Cycle runs one full loop iteration against a device: present the frame
// prepared by the previous cycle, then compute the following generation.
// Presenting first keeps the device ahead of the per-cell work.
func (w *World) Cycle(dev display.Device) {
	dev.Present(w.screen)
	w.Step()
}

// transition computes the next generation from the current buffer and
// writes the frame for that generation as it goes. It requires the border
// ring to be freshly mirrored, reads only the current buffer and is the
// only writer of the next buffer.
func (w *World) transition() {
	cur, nxt := w.board.Current(), w.board.Next()
	bw := w.board.BorderedWidth()
	for y := 1; y <= w.h; y++ {
		base := y * bw
		srow := (y - 1) * w.w
		for x := 1; x <= w.w; x++ {
			i := base + x
			n := cur[i-bw-1] + cur[i-bw] + cur[i-bw+1] +
				cur[i-1] + cur[i+1] +
				cur[i+bw-1] + cur[i+bw] + cur[i+bw+1]

			var v uint8
			if cur[i] != 0 {
				v = nextFromAlive[n]
			} else {
				v = nextFromDead[n]
			}
			nxt[i] = v
			w.screen[srow+x-1] = display.Glyph(v)
		}
	}
}

// Package display holds the character-cell output side of the simulation:
// the glyph constants, the device abstraction frames are presented to, and
// a couple of concrete devices.
package display

// Glyphs used in prepared frames. The original ran on hardware where the
// live glyph was a filled circle in screen RAM; any non-blank byte counts
// as live here.
const (
	Live byte = 'O'
	Dead byte = ' '
)

// Glyph maps a cell state to its display glyph.
func Glyph(v uint8) byte {
	if v != 0 {
		return Live
	}
	return Dead
}

// Device is anything that can show a frame of W*H glyphs. Present receives
// a fully prepared frame and must treat it as read-only; it must not
// retain the slice past the call.
type Device interface {
	Present(frame []byte)
}

// Buffer is an in-memory device. Present is a single flat copy into a
// fixed cell region, the portable stand-in for memory-mapped screen RAM.
type Buffer struct {
	cells []byte
}

// NewBuffer allocates a buffer device with w*h glyph cells.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{cells: make([]byte, w*h)}
}

// Present copies the frame into the cell region.
func (b *Buffer) Present(frame []byte) {
	copy(b.cells, frame)
}

// Cells exposes the most recently presented frame.
func (b *Buffer) Cells() []byte { return b.cells }

// Null discards every frame. Used when timing the engine alone.
type Null struct{}

// Present drops the frame.
func (Null) Present([]byte) {}

package display

import (
	"bufio"
	"io"
)

// Term renders frames to an ANSI terminal, one text row per grid row. The
// cursor is homed instead of the screen being cleared, so successive
// frames overwrite each other in place without flicker.
type Term struct {
	w, h int
	out  *bufio.Writer
}

// NewTerm creates a terminal device for frames of w*h glyphs.
func NewTerm(out io.Writer, w, h int) *Term {
	return &Term{w: w, h: h, out: bufio.NewWriterSize(out, (w+1)*h+8)}
}

// Present writes the frame row by row after homing the cursor.
func (t *Term) Present(frame []byte) {
	t.out.WriteString("\x1b[H")
	for y := 0; y < t.h; y++ {
		t.out.Write(frame[y*t.w : (y+1)*t.w])
		t.out.WriteByte('\n')
	}
	t.out.Flush()
}

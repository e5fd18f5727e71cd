//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter updates a single RGBA image from a glyph frame and draws it
// scaled so each character cell covers a square of pixels.
type CellPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCellPainter allocates a painter for frames of size w*h.
func NewCellPainter(w, h int) *CellPainter {
	cp := &CellPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit uploads the frame into the painter image and draws it onto dst.
// cursor is a cell index to draw inverted, or -1 for none.
func (cp *CellPainter) Blit(dst *ebiten.Image, frame []byte, on, off color.Color, scale, cursor int) {
	if len(frame) != cp.w*cp.h {
		return
	}
	fillGlyphRGBA(cp.buf, frame, on, off, cursor)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CellPainter) Size() (int, int) { return cp.w, cp.h }

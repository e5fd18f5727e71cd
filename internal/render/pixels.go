package render

import (
	"image/color"

	"c64life/internal/display"
)

// fillGlyphRGBA converts a glyph frame into RGBA pixels in buf: blank
// glyphs get the off color, anything else the on color. A non-negative
// cursor index inverts that one cell, which is how the editor highlights
// its position.
func fillGlyphRGBA(buf []byte, frame []byte, on, off color.Color, cursor int) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, g := range frame {
		live := g != display.Dead
		if i == cursor {
			live = !live
		}
		base := i * 4
		if live {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

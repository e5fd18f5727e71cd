package core

// Board owns the two bordered generation buffers of a toroidal cell grid.
// Each buffer is (W+2)*(H+2) bytes in row-major order; the outer ring
// mirrors the opposite interior edge so the transition pass can sum
// neighbors without wrapping arithmetic. A selector index names the buffer
// that holds the authoritative generation; the other buffer is exclusively
// a write target until Swap.
type Board struct {
	W, H int

	bw   int
	bufs [2][]uint8
	cur  int
}

// NewBoard allocates both buffers for a w*h logical grid. The buffers live
// for the lifetime of the Board and are never reallocated.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := &Board{W: w, H: h, bw: w + 2}
	total := (w + 2) * (h + 2)
	b.bufs[0] = make([]uint8, total)
	b.bufs[1] = make([]uint8, total)
	return b
}

// Current returns the authoritative generation buffer.
func (b *Board) Current() []uint8 { return b.bufs[b.cur] }

// Next returns the scratch buffer the upcoming generation is written into.
func (b *Board) Next() []uint8 { return b.bufs[b.cur^1] }

// Swap flips which buffer is authoritative in O(1). Call exactly once per
// generation, after the next buffer has been fully written.
func (b *Board) Swap() { b.cur ^= 1 }

// BorderedWidth returns the physical row stride, W+2.
func (b *Board) BorderedWidth() int { return b.bw }

// Index returns the physical slice index for logical coordinates (x, y).
// The border ring shifts logical (0, 0) to physical (1, 1).
func (b *Board) Index(x, y int) int { return (y+1)*b.bw + x + 1 }

// Cell returns the logical cell value, or 0 for out-of-range coordinates.
func (b *Board) Cell(x, y int) uint8 {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return 0
	}
	return b.Current()[b.Index(x, y)]
}

// SetCell writes a logical cell. Out-of-range coordinates are dropped so a
// stray edit can never touch the border ring.
func (b *Board) SetCell(x, y int, v uint8) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.Current()[b.Index(x, y)] = v
}

// Clear zeroes the current buffer, border ring included.
func (b *Board) Clear() {
	cur := b.Current()
	for i := range cur {
		cur[i] = 0
	}
}

// MirrorBorders rebuilds the border ring of the current buffer from the
// opposite interior edges. The left/right columns are fixed row by row
// first; the top and bottom border rows are then whole-row copies of the
// opposite interior rows. The row copies include the just-written side
// columns, which is what makes the four corner cells equal their
// diagonally opposite interior corners.
func (b *Board) MirrorBorders() {
	cur := b.Current()
	bw := b.bw
	for y := 1; y <= b.H; y++ {
		row := cur[y*bw : (y+1)*bw]
		row[0] = row[b.W]
		row[bw-1] = row[1]
	}
	copy(cur[:bw], cur[b.H*bw:(b.H+1)*bw])
	copy(cur[(b.H+1)*bw:], cur[bw:2*bw])
}

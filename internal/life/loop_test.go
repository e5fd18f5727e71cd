package life

import (
	"bytes"
	"testing"

	"c64life/internal/display"

	"github.com/retroenv/retrogolib/assert"
)

// recorder keeps a copy of every presented frame.
type recorder struct {
	frames [][]byte
}

func (r *recorder) Present(frame []byte) {
	r.frames = append(r.frames, append([]byte(nil), frame...))
}

func TestLoopPresentsPreviousCycleFrame(t *testing.T) {
	world := New(8, 6)
	world.Reset(7)
	seedFrame := append([]byte(nil), world.Screen()...)

	twin := New(8, 6)
	twin.Reset(7)

	rec := &recorder{}
	cycles := 0
	Loop(world, rec, func() bool {
		cycles++
		return cycles >= 3
	})

	assert.Len(t, rec.frames, 3)
	// The first presented frame is the seeded one; each later frame shows
	// the generation computed during the previous cycle.
	assert.True(t, bytes.Equal(seedFrame, rec.frames[0]))

	twin.Step()
	assert.True(t, bytes.Equal(twin.Screen(), rec.frames[1]))
	twin.Step()
	assert.True(t, bytes.Equal(twin.Screen(), rec.frames[2]))
}

func TestCycleIsPresentThenStep(t *testing.T) {
	world := New(8, 6)
	world.Reset(3)
	twin := New(8, 6)
	twin.Reset(3)

	dev := display.NewBuffer(8, 6)
	world.Cycle(dev)

	// The device shows the frame from before the step; the world itself
	// has advanced exactly one generation.
	assert.True(t, bytes.Equal(twin.Screen(), dev.Cells()))
	twin.Step()
	assert.True(t, bytes.Equal(twin.Screen(), world.Screen()))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, twin.Cell(x, y), world.Cell(x, y))
		}
	}
}

func TestLoopStopsAtCycleBoundary(t *testing.T) {
	world := New(8, 6)
	world.Reset(1)
	twin := New(8, 6)
	twin.Reset(1)

	Loop(world, display.Null{}, func() bool { return true })
	twin.Step()

	// Exactly one full cycle ran and the grid was left intact.
	assert.True(t, bytes.Equal(twin.Screen(), world.Screen()))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, twin.Cell(x, y), world.Cell(x, y))
		}
	}
}

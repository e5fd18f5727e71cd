package life

import "c64life/internal/display"

// Loop drives the simulation against a device until stop reports true.
// Each cycle presents the frame prepared by the previous cycle (or by the
// seeder, for the first one), refreshes the border ring, computes the next
// generation and swaps buffers. The stop poll must be non-blocking; it is
// checked once per cycle, after the swap, so the loop always returns with
// the grid in a consistent state and its contents untouched.
func Loop(w *World, dev display.Device, stop func() bool) {
	for {
		w.Cycle(dev)
		if stop() {
			return
		}
	}
}

package app

import (
	"flag"

	"c64life/internal/life"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Width  int
	Height int
	Scale  int
	Rate   int
	Seed   int64
	Debug  bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Width: life.DefaultWidth, Height: life.DefaultHeight, Scale: 16, Rate: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one character cell")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

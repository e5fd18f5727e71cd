package app

import (
	"flag"
	"testing"

	"c64life/internal/life"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, life.DefaultWidth, cfg.Width)
	assert.Equal(t, life.DefaultHeight, cfg.Height)
	assert.True(t, cfg.Scale > 0)
	assert.True(t, cfg.Rate > 0)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-width", "64", "-height", "32", "-rate", "30", "-seed", "9", "-debug"})

	assert.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, 30, cfg.Rate)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Debug)
}

//go:build ebiten

// Package main runs the GUI build of the simulation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"c64life/internal/app"
	"c64life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := newLogger(cfg.Debug)
	logger.Info("Conway's Life",
		log.String("version", buildinfo.Version(version, commit, date)))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Configuration",
		log.String("grid", gridLabel(cfg.Width, cfg.Height)),
		log.Int64("seed", seed))

	world := life.New(cfg.Width, cfg.Height)
	game := app.New(world, cfg, seed)

	ebiten.SetWindowTitle("c64life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("Simulation failed", log.Err(err))
	}
}

func newLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

func gridLabel(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

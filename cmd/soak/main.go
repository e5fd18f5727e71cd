// Package main runs the Life engine headless, either rendering to the
// terminal or timing raw generation throughput against a null device.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"c64life/internal/core"
	"c64life/internal/display"
	"c64life/internal/life"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type options struct {
	width  int
	height int
	gens   int
	rate   int
	seed   int64
	render bool
	debug  bool
	quiet  bool
}

func main() {
	opts := readArguments()
	logger := newLogger(opts.debug, opts.quiet)

	logger.Info("c64life soak runner",
		log.String("version", buildinfo.Version(version, commit, date)))

	if err := run(app.Context(), logger, opts); err != nil {
		logger.Fatal("Run failed", log.Err(err))
	}
}

func readArguments() options {
	opts := options{}
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.IntVar(&opts.width, "width", life.DefaultWidth, "grid width in cells")
	fs.IntVar(&opts.height, "height", life.DefaultHeight, "grid height in cells")
	fs.IntVar(&opts.gens, "gens", 0, "number of generations to run, 0 runs until interrupted")
	fs.IntVar(&opts.rate, "rate", 10, "generations per second when rendering, 0 runs flat out")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.BoolVar(&opts.render, "render", false, "render frames to the terminal instead of discarding them")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.quiet, "q", false, "only log errors")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	return opts
}

func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(ctx context.Context, logger *log.Logger, opts options) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := life.New(opts.width, opts.height)
	world.Reset(seed)

	var dev display.Device = display.Null{}
	var pacer *core.FixedStep
	if opts.render {
		fmt.Print("\x1b[2J")
		dev = display.NewTerm(os.Stdout, opts.width, opts.height)
		if opts.rate > 0 {
			pacer = core.NewFixedStep(opts.rate)
		}
	}

	logger.Debug("Starting loop",
		log.Int64("seed", seed),
		log.Int("generations", opts.gens))

	loopCtx, loopDone := context.WithCancel(ctx)
	var gens atomic.Int64
	start := time.Now()

	var g errgroup.Group
	g.Go(func() error {
		defer loopDone()
		life.Loop(world, dev, func() bool {
			n := gens.Add(1)
			if opts.gens > 0 && n >= int64(opts.gens) {
				return true
			}
			select {
			case <-ctx.Done():
				return true
			default:
			}
			if pacer != nil {
				for !pacer.ShouldStep() {
					time.Sleep(time.Millisecond)
				}
			}
			return false
		})
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return nil
			case <-ticker.C:
				logger.Debug("Progress", log.Int64("generations", gens.Load()))
			}
		}
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("running simulation loop: %w", err)
	}

	elapsed := time.Since(start)
	total := gens.Load()
	rate := float64(total) / elapsed.Seconds()
	logger.Info("Run complete",
		log.Int64("generations", total),
		log.String("elapsed", elapsed.Round(time.Millisecond).String()),
		log.String("rate", fmt.Sprintf("%.0f gens/s", rate)))

	if busy, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(busy) > 0 {
		logger.Info("CPU sample", log.String("busy", fmt.Sprintf("%.1f%%", busy[0])))
	}
	return nil
}

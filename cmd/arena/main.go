package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/injector"
	"github.com/zeusync/arena/internal/simulation"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a .yaml, .yml or .json config file")
		frames     = flag.Int("frames", 600, "number of frames to simulate")
		strategy   = flag.String("strategy", "", "override the detection strategy (all-pairs, sweep-and-prune)")
		compare    = flag.Bool("compare", false, "run every strategy side by side and report pair checks")
		pngPath    = flag.String("png", "", "write the final frame to this PNG file")
		pngScale   = flag.Float64("png-scale", 1, "resample the PNG by this factor")
		logLevel   = flag.String("log-level", "", "override the log level (debug, info, warn, error, none)")
	)
	flag.Parse()

	if err := run(*configPath, *frames, *strategy, *compare, *pngPath, *pngScale, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func run(configPath string, frames int, strategy string, compare bool, pngPath string, pngScale float64, logLevel string) error {
	config := simulation.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = simulation.LoadFile(configPath); err != nil {
			return err
		}
	}
	if strategy != "" {
		config.Strategy = strategy
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := injector.InitializeLogger(log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if compare {
		summaries, err := simulation.Compare(ctx, config, frames, logger)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Printf("%-16s frames=%d checks=%d contacts=%d particles=%d momentum=%.2f elapsed=%s\n",
				s.Strategy, s.Frames, s.Checks, s.Contacts, s.Particles, s.Momentum, s.Elapsed)
		}
		return nil
	}

	sim, err := injector.InitializeSimulation(config, logger)
	if err != nil {
		return err
	}
	if err = sim.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := sim.Stop(context.Background()); err != nil {
			logger.Error("error stopping simulation", log.Error(err))
		}
	}()

	summary, err := sim.Run(ctx, frames)
	if errors.Is(err, context.Canceled) {
		logger.Warn("simulation interrupted", log.Uint64("frames", summary.Frames))
	} else if err != nil {
		return err
	}

	fmt.Printf("run=%s strategy=%s frames=%d checks=%d contacts=%d particles=%d momentum=%.2f checksum=%016x\n",
		summary.RunID, summary.Strategy, summary.Frames, summary.Checks, summary.Contacts,
		summary.Particles, summary.Momentum, summary.Checksum)

	if pngPath != "" {
		return writePNG(sim, pngPath, pngScale)
	}
	return nil
}

func writePNG(sim *simulation.Simulation, path string, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	fb := sim.Render(nil)
	width, height := int(float64(fb.Width)*scale), int(float64(fb.Height)*scale)
	if err = fb.WriteScaledPNG(f, width, height); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// locosim runs scripted characters through the locomotion core and writes
// a per-tick CSV trace.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/learnedmm/internal/config"
	"github.com/Faultbox/learnedmm/internal/logger"
	"github.com/Faultbox/learnedmm/internal/scenario"
	"github.com/Faultbox/learnedmm/internal/sim"
)

var flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagDumpConfig != "" {
		if err := cfg.SaveTo(*flagDumpConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("locosim failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger.Info("=== locosim ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sc := scenario.Default()
	if cfg.Simulation.Scenario != "" {
		loaded, err := scenario.Load(cfg.Simulation.Scenario)
		if err != nil {
			return err
		}
		sc = loaded
	}

	world, err := sim.New(cfg, sc)
	if err != nil {
		return fmt.Errorf("creating world: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticks := cfg.Simulation.Ticks()
	if err := world.Run(ctx, ticks); err != nil {
		// Keep what was simulated before the interrupt
		logger.Warn("simulation stopped early", zap.Int("ticks", world.Tick()), zap.Int("wanted", ticks))
	}

	summary := world.Summarize()
	logger.Info("simulation done", summary.Field())

	if cfg.Simulation.Output == "" {
		return nil
	}
	return writeTrace(world, cfg.Simulation.Output)
}

func writeTrace(world *sim.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace: %w", err)
	}
	defer f.Close()

	if err := world.WriteTrace(f); err != nil {
		return err
	}
	logger.Info("trace written", zap.String("path", path), zap.Int("rows", len(world.Trace())))
	return f.Close()
}

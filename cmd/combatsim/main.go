package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/udisondev/elemental/internal/config"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/logger"
	"github.com/udisondev/elemental/internal/sim"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := config.Path()
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closer := logger.New(cfg.Log, os.Stdout)
	defer closer.Close()
	slog.SetDefault(log)

	slog.Info("config loaded",
		"path", cfgPath,
		"trials", cfg.Trials,
		"workers", cfg.Workers,
		"duration", cfg.Duration,
		"enemies", len(cfg.Enemies),
		"rotation", len(cfg.Rotation),
	)

	start := time.Now()
	report, err := sim.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	slog.Info("simulation complete",
		"took", time.Since(start),
		"trials", report.Trials,
		"mean", report.Mean,
		"min", report.Min,
		"max", report.Max,
		"dps", report.DPS(),
		"hits", report.Hits,
		"crit_rate", report.CritRate(),
	)
	for i := range element.ReactionCount {
		t := element.ReactionType(i)
		if n := report.Reactions[t]; n > 0 {
			slog.Info("reaction", "type", t.String(), "count", n, "per_trial", float64(n)/float64(report.Trials))
		}
	}
	return nil
}

package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/elemental/internal/config"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/rng"
)

// Result is the outcome of one trial.
type Result struct {
	Total     float64
	Hits      int
	Crits     int
	Reactions map[element.ReactionType]int
}

// Report aggregates every trial of a run.
type Report struct {
	Trials    int
	Duration  time.Duration
	Mean      float64
	Min       float64
	Max       float64
	Hits      int
	Crits     int
	Reactions map[element.ReactionType]int
}

// DPS returns the mean damage per second of combat time.
func (r Report) DPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return r.Mean / r.Duration.Seconds()
}

// CritRate returns the observed share of critical hits.
func (r Report) CritRate() float64 {
	if r.Hits == 0 {
		return 0
	}
	return float64(r.Crits) / float64(r.Hits)
}

// Run plays the scenario until ctx is done or the configured duration elapses.
func (s *Scenario) Run(ctx context.Context, duration, step time.Duration) (Result, error) {
	for s.arena.Elapsed() < duration {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.Step(step)
	}
	return s.result(), nil
}

func (s *Scenario) result() Result {
	res := Result{Reactions: make(map[element.ReactionType]int)}
	for _, ev := range s.arena.Events() {
		res.Total += ev.Amount
		res.Hits++
		if ev.Critical {
			res.Crits++
		}
		if ev.Reacted {
			res.Reactions[ev.Reaction]++
		}
	}
	return res
}

// Run executes cfg.Trials independent trials on up to cfg.Workers
// goroutines. Trial i rolls from rng.New(cfg.Seed + i), so a report only
// depends on the config.
func Run(ctx context.Context, cfg config.Simulator) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	results := make([]Result, cfg.Trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := Build(cfg, rng.New(cfg.Seed+uint64(i)))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			res, err := sc.Run(ctx, cfg.Duration, cfg.Step)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := aggregate(results)
	report.Duration = cfg.Duration
	slog.Debug("simulation finished", "trials", report.Trials, "mean", report.Mean)
	return report, nil
}

func aggregate(results []Result) Report {
	r := Report{
		Trials:    len(results),
		Min:       math.Inf(1),
		Max:       math.Inf(-1),
		Reactions: make(map[element.ReactionType]int),
	}
	if len(results) == 0 {
		r.Min, r.Max = 0, 0
		return r
	}

	var sum float64
	for _, res := range results {
		sum += res.Total
		r.Min = min(r.Min, res.Total)
		r.Max = max(r.Max, res.Total)
		r.Hits += res.Hits
		r.Crits += res.Crits
		for t, n := range res.Reactions {
			r.Reactions[t] += n
		}
	}
	r.Mean = sum / float64(len(results))
	return r
}

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/coder/quartz"
	"github.com/lox/drawround/internal/fileutil"
	"github.com/lox/drawround/internal/randutil"
	"github.com/lox/drawround/internal/simulator"
	"github.com/lox/drawround/internal/statistics"
	"github.com/lox/drawround/poker"
)

// SimulateCmd plays automated rounds with a hold strategy.
type SimulateCmd struct {
	RulesFlags `embed:""`

	Rounds   int    `short:"n" default:"10000" help:"Number of rounds to simulate"`
	Strategy string `short:"s" default:"pairs" enum:"pairs,stand,random" help:"Hold strategy: pairs, stand, random"`
	Workers  int    `short:"w" default:"0" help:"Parallel workers (0 = GOMAXPROCS)"`
	Report   string `type:"path" help:"Write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	logger, err := setupLogger(os.Stderr, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	ctx, stop := signalContext(logger)
	defer stop()

	_, seed := randutil.Resolve(g.Seed, quartz.NewReal())
	rules := c.apply(cfg.GameRules())

	sim, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Strategy: c.Strategy,
		Seed:     seed,
		Workers:  c.Workers,
		Rules:    rules,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting simulation", "rounds", c.Rounds, "strategy", c.Strategy, "seed", seed)
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := printSummary(os.Stdout, stats, c.Strategy, seed); err != nil {
		return err
	}

	if c.Report != "" {
		report := struct {
			Strategy string             `json:"strategy"`
			Seed     int64              `json:"seed"`
			Hands    int                `json:"hands_per_round"`
			Discards int                `json:"discards_per_round"`
			Target   int                `json:"target"`
			Summary  statistics.Summary `json:"summary"`
		}{c.Strategy, seed, rules.Hands, rules.Discards, rules.Target, stats.Summary()}

		if err := fileutil.WriteJSON(c.Report, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}

func printSummary(w io.Writer, stats *statistics.Statistics, strategy string, seed int64) error {
	low, high := stats.ConfidenceInterval95()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Strategy:\t%s\n", strategy)
	fmt.Fprintf(tw, "Seed:\t%d\n", seed)
	fmt.Fprintf(tw, "Rounds:\t%d\n", stats.Rounds)
	fmt.Fprintf(tw, "Cleared:\t%d (%.2f%%)\n", stats.Cleared, stats.ClearRate()*100)
	fmt.Fprintf(tw, "Mean chips:\t%.2f (95%% CI %.2f to %.2f)\n", stats.Mean(), low, high)
	fmt.Fprintf(tw, "Median chips:\t%.1f\n", stats.Median())
	fmt.Fprintf(tw, "Best round:\t%d chips (seed %d)\n", stats.MaxChips, stats.BestSeed)
	fmt.Fprintf(tw, "Discards used:\t%d\n", stats.Discards)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Hand\tCount\tRate")
	for i := len(poker.HandTypes) - 1; i >= 0; i-- {
		ht := poker.HandTypes[i]
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\n", ht, stats.HandTypes[ht], stats.HandTypeRate(ht)*100)
	}
	return tw.Flush()
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/drawround/internal/config"
	"github.com/lox/drawround/internal/game"
	"github.com/muesli/termenv"
)

// RulesFlags override the rules block of the config file.
type RulesFlags struct {
	Hands    *int `help:"Hands per round"`
	Discards *int `help:"Discards per round"`
	Target   *int `help:"Chips needed to clear the round"`
}

// apply returns the config rules with any flag overrides.
func (f RulesFlags) apply(base game.Rules) game.Rules {
	if f.Hands != nil {
		base.Hands = *f.Hands
	}
	if f.Discards != nil {
		base.Discards = *f.Discards
	}
	if f.Target != nil {
		base.Target = *f.Target
	}
	return base
}

// loadConfig reads the config file and folds in global flags.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if g.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return cfg, nil
}

// setupLogger builds a leveled logger writing to w.
func setupLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "drawround",
	}), nil
}

// openLogFile opens path for the diagnostic log, truncating earlier runs.
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// signalContext returns a context cancelled on interrupt signals.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		logger.Debug("Context done, shutting down")
	}()
	return ctx, stop
}

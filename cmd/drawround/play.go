package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/drawround/internal/game"
	"github.com/lox/drawround/internal/randutil"
	"github.com/lox/drawround/internal/tui"
)

// PlayCmd runs an interactive round in the terminal.
type PlayCmd struct {
	RulesFlags `embed:""`

	LogFile string `help:"Diagnostic log file (overrides config)"`
	Theme   string `help:"Colour theme: default, dark, light (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
	}

	logFile, err := openLogFile(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := setupLogger(logFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	rng, seed := randutil.Resolve(g.Seed, clock)
	rules := c.apply(cfg.GameRules())

	session, err := game.NewSession(game.SessionConfig{
		Rules:  rules,
		RNG:    rng,
		Clock:  clock,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("Starting session",
		"seed", seed,
		"hands", rules.Hands,
		"discards", rules.Discards,
		"target", rules.Target)

	model := tui.NewModel(session, logger, tui.ThemeByName(cfg.UI.Theme))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	snap := session.Snapshot()
	logger.Info("Session ended", "chips", snap.Chips, "outcome", snap.Outcome)
	fmt.Printf("Chips: %d/%d (%s) • seed %d\n", snap.Chips, snap.Target, snap.Outcome, seed)
	return nil
}

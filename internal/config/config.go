// Package config loads drawround settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/drawround/internal/game"
)

// Config represents the complete configuration file.
type Config struct {
	Rules *RulesSettings `hcl:"rules,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// RulesSettings overrides the round budgets.
type RulesSettings struct {
	Hands    int  `hcl:"hands,optional"`
	Discards *int `hcl:"discards,optional"`
	Target   int  `hcl:"target,optional"`
}

// UISettings contains terminal and logging settings.
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Theme    string `hcl:"theme,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rules := game.DefaultRules()
	discards := rules.Discards
	return &Config{
		Rules: &RulesSettings{
			Hands:    rules.Hands,
			Discards: &discards,
			Target:   rules.Target,
		},
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "drawround.log",
			Theme:    "default",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; settings absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Rules == nil {
		c.Rules = defaults.Rules
	}
	if c.Rules.Hands == 0 {
		c.Rules.Hands = defaults.Rules.Hands
	}
	if c.Rules.Discards == nil {
		c.Rules.Discards = defaults.Rules.Discards
	}
	if c.Rules.Target == 0 {
		c.Rules.Target = defaults.Rules.Target
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// GameRules converts the rules block into engine rules.
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		Hands:    c.Rules.Hands,
		Discards: *c.Rules.Discards,
		Target:   c.Rules.Target,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rules == nil || c.UI == nil || c.Rules.Discards == nil {
		return fmt.Errorf("configuration is incomplete")
	}
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/drawround/internal/game"
	"github.com/lox/drawround/internal/statistics"
	"github.com/lox/drawround/poker"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestParseHand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "concatenated", input: "AsAhAdAcKs", want: 5},
		{name: "spaced", input: "As Ah Ad Ac Ks", want: 5},
		{name: "duplicate ten", input: "10h Th 2c 3d 4s", wantErr: true},
		{name: "four cards", input: "AsAhAdAc", wantErr: true},
		{name: "six cards", input: "AsAhAdAcKsKh", wantErr: true},
		{name: "duplicate", input: "AsAsAdAcKs", wantErr: true},
		{name: "garbage", input: "ZzAhAdAcKs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := parseHand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cards, tt.want)
		})
	}
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printScore(&buf, "AsAhAdAcKs"))

	out := buf.String()
	assert.Contains(t, out, "A♠ A♥ A♦ A♣ K♠")
	assert.Contains(t, out, "Four of a Kind")
	assert.Contains(t, out, "+50 chips")
}

func TestRulesFlagsApply(t *testing.T) {
	hands, target := 5, 250
	flags := RulesFlags{Hands: &hands, Target: &target}

	got := flags.apply(game.DefaultRules())
	assert.Equal(t, game.Rules{Hands: 5, Discards: 2, Target: 250}, got)

	assert.Equal(t, game.DefaultRules(), RulesFlags{}.apply(game.DefaultRules()))
}

func TestLoadConfigAppliesGlobals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.hcl")

	cfg, err := loadConfig(&Globals{Config: path, Debug: true, NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`rules { hands = -1 }`), 0o644))

	_, err := loadConfig(&Globals{Config: path})
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var stats statistics.Statistics
	stats.Add(statistics.RoundResult{Seed: 7, Chips: 120, Target: 100, Cleared: true, Discards: 1,
		HandTypes: []poker.HandType{poker.Pair, poker.FourOfAKind, poker.HighCard}})
	stats.Add(statistics.RoundResult{Seed: 8, Chips: 30, Target: 100, HandTypes: []poker.HandType{poker.TwoPair}})

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, &stats, "pairs", 42))

	out := buf.String()
	assert.Contains(t, out, "Strategy:")
	assert.Contains(t, out, "pairs")
	assert.Contains(t, out, "1 (50.00%)")
	assert.Contains(t, out, "120 chips (seed 7)")
	assert.Contains(t, out, "Four of a Kind")
}

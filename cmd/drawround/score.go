package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/drawround/poker"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	chipsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// ScoreCmd evaluates a hand given on the command line.
type ScoreCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'AsAhAdAcKs' or 'As Ah Ad Ac Ks'"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	if _, err := loadConfig(g); err != nil {
		return err
	}
	return printScore(os.Stdout, strings.Join(c.Cards, " "))
}

// parseHand parses exactly five distinct cards.
func parseHand(input string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(input)
	if err != nil {
		return nil, err
	}
	if len(cards) != poker.HandSize {
		return nil, fmt.Errorf("need exactly %d cards, got %d", poker.HandSize, len(cards))
	}

	seen := make(map[poker.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return nil, fmt.Errorf("duplicate card %s", card)
		}
		seen[card] = true
	}
	return cards, nil
}

func printScore(w io.Writer, input string) error {
	cards, err := parseHand(input)
	if err != nil {
		return err
	}
	score := poker.Evaluate(cards)

	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			formatted[i] = redCardStyle.Render(card.String())
		} else {
			formatted[i] = card.String()
		}
	}

	_, err = fmt.Fprintf(w, "%s  %s  %s\n",
		strings.Join(formatted, " "),
		labelStyle.Render(score.Label),
		chipsStyle.Render(fmt.Sprintf("+%d chips", score.Value)))
	return err
}

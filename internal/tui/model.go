// Package tui is the terminal front end. It forwards key presses to a
// game.Session and renders the session's snapshot; it never changes game
// state directly.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/drawround/internal/game"
	"github.com/lox/drawround/poker"
)

const (
	cardWidth     = 7
	cardHeight    = 4
	sidebarWidth  = 24
	minLogHeight  = 3
	maxLogEntries = 100
)

// Model is the Bubble Tea model for a drawround session
type Model struct {
	session *game.Session
	logger  *log.Logger
	theme   Theme
	keys    keyMap
	help    help.Model

	logViewport viewport.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving session.
func NewModel(session *game.Session, logger *log.Logger, theme Theme) *Model {
	vp := viewport.New(10, minLogHeight)
	m := &Model{
		session:     session,
		logger:      logger.WithPrefix("tui"),
		theme:       theme,
		keys:        defaultKeyMap(),
		help:        help.New(),
		logViewport: vp,
	}
	m.refreshLog()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.resizeLog()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeLog()
		return m, nil

	case key.Matches(msg, m.keys.Deal):
		m.run("deal", m.session.Deal)

	case key.Matches(msg, m.keys.Discard):
		m.run("discard", m.session.Discard)

	case key.Matches(msg, m.keys.Play):
		m.run("play", func() error {
			_, err := m.session.Play()
			return err
		})

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()

	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		return m, nil

	default:
		for i, b := range m.keys.Hold {
			if key.Matches(msg, b) {
				m.toggle(i)
				break
			}
		}
	}

	m.refreshLog()
	return m, nil
}

// run executes a session command. Rejections are already in the event log,
// so they are only traced here.
func (m *Model) run(name string, cmd func() error) {
	if err := cmd(); err != nil {
		m.logger.Debug("Command rejected", "command", name, "error", err)
	}
}

func (m *Model) toggle(slot int) {
	if !m.session.Snapshot().Dealt() {
		return
	}
	if err := m.session.ToggleHold(slot); err != nil {
		m.logger.Debug("Toggle ignored", "slot", slot, "error", err)
	}
}

func (m *Model) refreshLog() {
	entries := m.session.Events().Recent(maxLogEntries)
	lines := make([]string, len(entries))
	for i, e := range entries {
		line := e.String()
		switch e.Kind {
		case game.EventRejected, game.EventFailed:
			line = m.theme.Error.Render(line)
		case game.EventCleared:
			line = m.theme.Success.Render(line)
		default:
			line = m.theme.GameLog.Render(line)
		}
		lines[i] = line
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	m.logViewport.GotoTop()
}

func (m *Model) resizeLog() {
	if m.width == 0 || m.height == 0 {
		return
	}
	used := lipgloss.Height(m.renderTable()) + lipgloss.Height(m.help.View(m.keys)) + 3
	height := m.height - used
	if height < minLogHeight {
		height = minLogHeight
	}
	m.logViewport.Width = m.width - 2
	m.logViewport.Height = height
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Pane)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTable(),
		logStyle.Render(m.logViewport.View()),
		m.help.View(m.keys),
	)
}

func (m *Model) renderTable() string {
	snap := m.session.Snapshot()
	header := m.theme.Header.Render("♠ ♥ Draw Round ♦ ♣")
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.renderHand(snap), "  ", m.renderSidebar(snap))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", top)
}

func (m *Model) renderHand(snap game.Snapshot) string {
	if !snap.Dealt() {
		empty := lipgloss.NewStyle().
			Width((cardWidth+3)*poker.HandSize).
			Height(cardHeight+3).
			Align(lipgloss.Center, lipgloss.Center)
		return empty.Render(m.theme.Info.Render("Press d to deal"))
	}

	cards := make([]string, len(snap.Hand))
	for i, c := range snap.Hand {
		cards[i] = m.renderCard(i, c, snap.Held[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderCard(slot int, c poker.Card, held bool) string {
	border := m.theme.CardBorder
	if held {
		border = m.theme.HeldBorder
	}

	style := m.theme.BlackCard
	if c.IsRed() {
		style = m.theme.RedCard
	}

	center := c.Suit.String()
	if glyph := faceGlyph(c.Rank); glyph != "" {
		center = m.theme.Face.Render(glyph)
	}

	face := lipgloss.JoinVertical(lipgloss.Left,
		style.Render(c.String()),
		lipgloss.PlaceHorizontal(cardWidth, lipgloss.Center, center),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Height(cardHeight).
		MarginRight(1).
		Render(face)

	label := m.theme.Info.Render(fmt.Sprintf("   %d", slot+1))
	if held {
		label = m.theme.Held.Render(" HELD")
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, label)
}

// faceGlyph returns the shape drawn on face cards.
func faceGlyph(r poker.Rank) string {
	switch r {
	case poker.Jack:
		return "⏢"
	case poker.Queen:
		return "▱"
	case poker.King:
		return "★"
	default:
		return ""
	}
}

func (m *Model) renderSidebar(snap game.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", m.theme.Warning.Render(fmt.Sprintf("Chips: %d/%d", snap.Chips, snap.Target)))
	fmt.Fprintf(&b, "Hands left: %d\n", snap.HandsLeft)
	fmt.Fprintf(&b, "Discards left: %d\n", snap.DiscardsLeft)
	fmt.Fprintf(&b, "%s\n", m.theme.Info.Render(fmt.Sprintf("Deck: %d cards", snap.DeckRemaining)))

	if n := len(snap.Played); n > 0 {
		last := snap.Played[n-1].Score
		fmt.Fprintf(&b, "Last: %s +%d\n", last.Label, last.Value)
	}

	switch snap.Outcome {
	case game.Cleared:
		b.WriteString(m.theme.Success.Render("Round cleared!"))
	case game.Failed:
		b.WriteString(m.theme.Error.Render("Round failed"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Pane).
		Width(sidebarWidth).
		Render(strings.TrimRight(b.String(), "\n"))
}

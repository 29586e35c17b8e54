package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Deal    key.Binding
	Hold    []key.Binding
	Discard key.Binding
	Play    key.Binding
	Reset   key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	hold := make([]key.Binding, 5)
	for i := range hold {
		k := string(rune('1' + i))
		hold[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "hold"))
	}
	return keyMap{
		Deal:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deal")),
		Hold:    hold,
		Discard: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
		Play:    key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "play")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll log")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll log")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// holdHelp stands in for the five hold bindings in the help line.
var holdHelp = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "hold"))

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, holdHelp, k.Discard, k.Play, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Deal, holdHelp, k.Discard, k.Play},
		{k.Reset, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

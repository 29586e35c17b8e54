package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used to draw the table.
type Theme struct {
	Header     lipgloss.Style
	GameLog    lipgloss.Style
	HandInfo   lipgloss.Style
	RedCard    lipgloss.Style
	BlackCard  lipgloss.Style
	Face       lipgloss.Style
	CardBorder lipgloss.Color
	HeldBorder lipgloss.Color
	Held       lipgloss.Style
	Pane       lipgloss.Color
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	case "dark":
		return darkTheme()
	default:
		return defaultTheme()
	}
}

func defaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		GameLog: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Face: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0055")),
		CardBorder: lipgloss.Color("#626262"),
		HeldBorder: lipgloss.Color("#F0A500"),
		Held: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0A500")).
			Bold(true),
		Pane: lipgloss.Color("#626262"),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

func darkTheme() Theme {
	t := defaultTheme()
	t.Header = t.Header.Background(lipgloss.Color("#1F1F1F"))
	t.CardBorder = lipgloss.Color("#3C3C3C")
	t.Pane = lipgloss.Color("#3C3C3C")
	return t
}

func lightTheme() Theme {
	t := defaultTheme()
	t.GameLog = t.GameLog.Foreground(lipgloss.Color("#1A1A1A"))
	t.BlackCard = t.BlackCard.Foreground(lipgloss.Color("#000000"))
	t.Info = t.Info.Foreground(lipgloss.Color("#4A4A4A"))
	t.CardBorder = lipgloss.Color("#000000")
	return t
}

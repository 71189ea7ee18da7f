package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	// ThemeWarming follows the spiral's blue-white-red anomaly ramp.
	ThemeWarming = Theme{
		Name:      "warming",
		Primary:   lipgloss.Color("#ff4444"),
		Secondary: lipgloss.Color("#4488ff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#ffffff"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	// ThemePendulum follows the pendulum field's default palette.
	ThemePendulum = Theme{
		Name:      "pendulum",
		Primary:   lipgloss.Color("#f765a3"),
		Secondary: lipgloss.Color("#165baa"),
		Muted:     lipgloss.Color("#a155b9"),
		Success:   lipgloss.Color("#f9d1d1"),
		Warning:   lipgloss.Color("#ffa4b6"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeWarming,
		ThemePendulum,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

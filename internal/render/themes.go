package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the pyramid chart and surrounding UI.
type Theme struct {
	Name    string
	Male    lipgloss.Color
	Female  lipgloss.Color
	Axis    lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeOcean = Theme{
		Name:    "ocean",
		Male:    lipgloss.Color("#00a8cc"),
		Female:  lipgloss.Color("#ff6b9d"),
		Axis:    lipgloss.Color("#4488aa"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#557799"),
		Accent:  lipgloss.Color("#ffd700"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Male:    lipgloss.Color("#feca57"),
		Female:  lipgloss.Color("#ff6b6b"),
		Axis:    lipgloss.Color("#8b6b8c"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#a88ba9"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Male:    lipgloss.Color("#00ff00"),
		Female:  lipgloss.Color("#88ff88"),
		Axis:    lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#007700"),
		Accent:  lipgloss.Color("#ffff00"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Male:    lipgloss.Color("#cccccc"),
		Female:  lipgloss.Color("#ffffff"),
		Axis:    lipgloss.Color("#555555"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Accent:  lipgloss.Color("#0088ff"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{ThemeOcean, ThemeSunset, ThemeRetro, ThemeMinimal}
)

// GetTheme returns a theme by name, defaulting to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeOcean
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

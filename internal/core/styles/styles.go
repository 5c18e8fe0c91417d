// Package styles provides shared lipgloss styles and status icons for
// CLI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette = themes[DefaultTheme]

// Semantic styles derived from the active palette.
var (
	StyleHeader  lipgloss.Style
	StyleSection lipgloss.Style
	StyleID      lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleWarning lipgloss.Style
	StyleError   lipgloss.Style
)

func init() {
	SetTheme(CurrentPalette)
}

// SetTheme activates a palette and rebuilds the derived styles.
func SetTheme(p Palette) {
	CurrentPalette = p
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	StyleSection = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	StyleID = lipgloss.NewStyle().Foreground(p.Muted)
	StyleMuted = lipgloss.NewStyle().Foreground(p.Muted)
	StyleSuccess = lipgloss.NewStyle().Foreground(p.Success)
	StyleWarning = lipgloss.NewStyle().Foreground(p.Warning)
	StyleError = lipgloss.NewStyle().Foreground(p.Error)
}

// AgeStyle maps a task's age in days to a staleness color band:
// fresh, aging at the threshold, stale at twice the threshold.
func AgeStyle(daysOld, staleDays int) lipgloss.Style {
	switch {
	case daysOld >= 2*staleDays:
		return StyleError
	case daysOld >= staleDays:
		return StyleWarning
	}
	return StyleSuccess
}

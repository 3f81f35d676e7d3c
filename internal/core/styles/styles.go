// Package styles provides shared lipgloss styles for CLI and TUI output.
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
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"ansi": {
		Primary:    lipgloss.Color("12"),
		Secondary:  lipgloss.Color("14"),
		Foreground: lipgloss.Color("15"),
		Muted:      lipgloss.Color("8"),
		Background: lipgloss.Color("0"),
		Surface:    lipgloss.Color("236"),
		Success:    lipgloss.Color("10"),
		Warning:    lipgloss.Color("11"),
		Error:      lipgloss.Color("9"),
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
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Drill screen.
	KeyStyle         lipgloss.Style
	ValueStyle       lipgloss.Style
	HiddenStyle      lipgloss.Style
	PositionStyle    lipgloss.Style
	CorrectStyle     lipgloss.Style
	IncorrectStyle   lipgloss.Style
	BadgeStyle       lipgloss.Style
	BadgeOffStyle    lipgloss.Style
	StatusStyle      lipgloss.Style
	CardFrameStyle   lipgloss.Style
	LookupFrameStyle lipgloss.Style

	// Panels.
	PanelStyle         lipgloss.Style
	PanelTitleStyle    lipgloss.Style
	PanelSelectedStyle lipgloss.Style
	PanelNormalStyle   lipgloss.Style
	HelpStyle          lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	WarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning)

	KeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	ValueStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	HiddenStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
	PositionStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CorrectStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	IncorrectStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	BadgeStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)
	BadgeOffStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)
	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	CardFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	LookupFrameStyle = CardFrameStyle.
		BorderForeground(p.Warning)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	PanelSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	PanelNormalStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

func init() {
	SetTheme(themes[DefaultTheme])
}

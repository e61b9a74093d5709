package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named terminal color scheme.
type Theme struct {
	Name    string
	Prompt  lipgloss.Color
	Text    lipgloss.Color
	Key     lipgloss.Color
	Hidden  lipgloss.Color
	Invalid lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "matrix"

var themes = []Theme{
	{
		Name:    "matrix",
		Prompt:  lipgloss.Color("#00FF41"),
		Text:    lipgloss.Color("#00FF41"),
		Key:     lipgloss.Color("#008F11"),
		Hidden:  lipgloss.Color("#FFD700"),
		Invalid: lipgloss.Color("#FF3131"),
		Muted:   lipgloss.Color("#003B00"),
		Border:  lipgloss.Color("#00FF41"),
	},
	{
		Name:    "dracula",
		Prompt:  lipgloss.Color("#BD93F9"),
		Text:    lipgloss.Color("#F8F8F2"),
		Key:     lipgloss.Color("#8BE9FD"),
		Hidden:  lipgloss.Color("#FF79C6"),
		Invalid: lipgloss.Color("#FF5555"),
		Muted:   lipgloss.Color("#6272A4"),
		Border:  lipgloss.Color("#44475A"),
	},
	{
		Name:    "monokai",
		Prompt:  lipgloss.Color("#A6E22E"),
		Text:    lipgloss.Color("#F8F8F2"),
		Key:     lipgloss.Color("#66D9EF"),
		Hidden:  lipgloss.Color("#E6DB74"),
		Invalid: lipgloss.Color("#F92672"),
		Muted:   lipgloss.Color("#75715E"),
		Border:  lipgloss.Color("#49483E"),
	},
	{
		Name:    "cyberpunk",
		Prompt:  lipgloss.Color("#F706CF"),
		Text:    lipgloss.Color("#00F0FF"),
		Key:     lipgloss.Color("#FCEE0A"),
		Hidden:  lipgloss.Color("#F706CF"),
		Invalid: lipgloss.Color("#FF003C"),
		Muted:   lipgloss.Color("#5B5F97"),
		Border:  lipgloss.Color("#00F0FF"),
	},
	{
		Name:    "minimal",
		Prompt:  lipgloss.Color("252"),
		Text:    lipgloss.Color("252"),
		Key:     lipgloss.Color("245"),
		Hidden:  lipgloss.Color("255"),
		Invalid: lipgloss.Color("240"),
		Muted:   lipgloss.Color("240"),
		Border:  lipgloss.Color("240"),
	},
}

// ThemeNames returns the available theme names in display order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme returns the theme called name, case-insensitively.
func LookupTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Theme Theme

	Prompt  lipgloss.Style
	Text    lipgloss.Style
	Key     lipgloss.Style
	Hidden  lipgloss.Style
	Invalid lipgloss.Style
	Muted   lipgloss.Style
	Title   lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles creates the styles for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Prompt).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(theme.Text),

		Key: lipgloss.NewStyle().
			Foreground(theme.Key).
			Bold(true),

		Hidden: lipgloss.NewStyle().
			Foreground(theme.Hidden).
			Bold(true),

		Invalid: lipgloss.NewStyle().
			Foreground(theme.Invalid),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Prompt).
			Bold(true).
			Underline(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

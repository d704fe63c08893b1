package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Danger  string
	Warning string
	Success string
	Surface string
}

var themes = map[string]Theme{
	"dracula": {
		Name:    "dracula",
		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Accent:  "#BD93F9",
		Danger:  "#FF5555",
		Warning: "#F1FA8C",
		Success: "#50FA7B",
		Surface: "#44475A",
	},
	"plain": {
		Name:    "plain",
		Text:    "7",
		Muted:   "8",
		Accent:  "6",
		Danger:  "1",
		Warning: "3",
		Success: "2",
		Surface: "0",
	},
}

// GetTheme returns the named theme, or the default when unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["dracula"]
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Header      lipgloss.Style
	HeaderLabel lipgloss.Style
	HeaderValue lipgloss.Style
	Connected   lipgloss.Style
	Listening   lipgloss.Style
	Stopped     lipgloss.Style

	ErrorLine   lipgloss.Style
	CommentLine lipgloss.Style

	Hint    lipgloss.Style
	HintKey lipgloss.Style
	Danger  lipgloss.Style
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		HeaderLabel: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
		HeaderValue: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Connected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Listening: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
		Stopped: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		ErrorLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
		CommentLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
	}
}

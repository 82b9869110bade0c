package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/logrec"
)

// ansiColors maps config color names to ANSI palette indices.
var ansiColors = map[string]lipgloss.Color{
	"black":          lipgloss.Color("0"),
	"red":            lipgloss.Color("1"),
	"green":          lipgloss.Color("2"),
	"yellow":         lipgloss.Color("3"),
	"blue":           lipgloss.Color("4"),
	"magenta":        lipgloss.Color("5"),
	"cyan":           lipgloss.Color("6"),
	"white":          lipgloss.Color("7"),
	"bright-black":   lipgloss.Color("8"),
	"bright-red":     lipgloss.Color("9"),
	"bright-green":   lipgloss.Color("10"),
	"bright-yellow":  lipgloss.Color("11"),
	"bright-blue":    lipgloss.Color("12"),
	"bright-magenta": lipgloss.Color("13"),
	"bright-cyan":    lipgloss.Color("14"),
	"bright-white":   lipgloss.Color("15"),
}

// colorByName resolves a validated config color name. Unknown names
// fall back to the default foreground.
func colorByName(name string) lipgloss.Color {
	if c, ok := ansiColors[name]; ok {
		return c
	}
	return lipgloss.Color("7")
}

// Styles bundles the lipgloss styles derived from the configuration.
type Styles struct {
	Severity map[logrec.Severity]lipgloss.Style

	// Highlight marks search-term spans: black on yellow.
	Highlight lipgloss.Style

	Text   lipgloss.Style
	Faint  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Cursor lipgloss.Style
	Header lipgloss.Style
}

// NewStyles builds the style bundle for the given configuration.
func NewStyles(cfg config.Config) Styles {
	severity := make(map[logrec.Severity]lipgloss.Style, logrec.SeverityCount)
	for _, sev := range logrec.Severities() {
		severity[sev] = lipgloss.NewStyle().Foreground(colorByName(cfg.Colors[sev]))
	}
	return Styles{
		Severity: severity,
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("3")),
		Text:   lipgloss.NewStyle(),
		Faint:  lipgloss.NewStyle().Faint(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Cursor: lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true),
	}
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	sections := []helpSection{
		{
			title: "Filtering",
			items: []helpItem{
				{"+/-", "Raise/lower severity threshold"},
				{"0-4", "Set threshold by level"},
				{"c", "Context query <level>-<window>"},
				{"r", "Reset view"},
			},
		},
		{
			title: "Search",
			items: []helpItem{
				{"/", "Add highlighted search term"},
				{"esc", "Cancel prompt"},
			},
		},
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move cursor down/up"},
				{"g/G", "Go to first/last record"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"h/?", "Toggle help"},
				{"q", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := m.styles.Accent.Width(8)
	for i, section := range sections {
		b.WriteString(m.styles.Accent.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(m.styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
	)
}

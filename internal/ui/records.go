package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loglens/loglens/internal/logrec"
	"github.com/loglens/loglens/internal/session"
)

const cursorMarker = "> "

// renderMain composes the full frame: header, record viewport, status
// bar, prompt line.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderPromptLine())
	return b.String()
}

// renderHeader summarizes the session: file, counts, threshold, terms.
func (m Model) renderHeader() string {
	view := m.sess.Snapshot()

	parts := []string{
		m.styles.Header.Render(m.logName),
		m.styles.Faint.Render(fmt.Sprintf("%d records", view.StoreLen)),
	}
	if m.dropped > 0 {
		parts = append(parts, m.styles.Faint.Render(fmt.Sprintf("%d dropped", m.dropped)))
	}
	parts = append(parts,
		m.styles.Accent.Render("level ≥ "+levelLabel(view.Threshold)),
		m.styles.Faint.Render(fmt.Sprintf("%d visible", len(view.Rows))),
	)
	if len(view.Terms) > 0 {
		parts = append(parts, m.styles.Highlight.Render(strings.Join(view.Terms, ", ")))
	}
	return strings.Join(parts, m.styles.Faint.Render("  •  "))
}

// renderStatusBar shows transient errors or the key hint line.
func (m Model) renderStatusBar() string {
	if m.status != "" {
		return m.status
	}
	return m.styles.Faint.Render("+/- level  0-4 set  / search  c context  j/k move  r reset  h help  q quit")
}

// renderPromptLine shows the active prompt, or nothing.
func (m Model) renderPromptLine() string {
	switch m.mode {
	case promptSearch:
		return m.styles.Accent.Render("/") + m.prompt.View()
	case promptRange:
		return m.styles.Accent.Render("range: ") + m.prompt.View()
	default:
		return ""
	}
}

// renderRows renders the visible subset, one line per row.
func (m Model) renderRows(view session.View) string {
	if len(view.Rows) == 0 {
		return m.styles.Faint.Render("No records match the current filter")
	}
	lines := make([]string, len(view.Rows))
	for i, row := range view.Rows {
		lines[i] = m.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a single record with its cursor marker, severity
// coloring, and search highlights.
func (m Model) renderRow(row session.Row) string {
	rec := row.Record
	sevStyle := m.styles.Severity[rec.Severity]

	prefix := "  "
	if row.IsCursor {
		prefix = m.styles.Cursor.Render(cursorMarker)
	}

	message := m.renderSpans(rec.Message, row.Spans, m.messageStyle(rec.Severity))

	if m.cfg.HighlightFullLine {
		head := sevStyle.Render(fmt.Sprintf("%s [%s] %s - ", rec.Timestamp, rec.Severity, rec.Source))
		return prefix + head + message
	}

	return prefix +
		m.styles.Faint.Render(rec.Timestamp) + " " +
		sevStyle.Bold(true).Render("["+rec.Severity.String()+"]") + " " +
		m.styles.Text.Render(rec.Source) +
		m.styles.Faint.Render(" - ") +
		message
}

// messageStyle chooses the base style for message text.
func (m Model) messageStyle(sev logrec.Severity) lipgloss.Style {
	if m.cfg.HighlightFullLine {
		return m.styles.Severity[sev]
	}
	return m.styles.Text
}

// renderSpans renders message text, switching to the highlight style
// inside each span. Spans are sorted and non-overlapping.
func (m Model) renderSpans(text string, spans []session.Span, base lipgloss.Style) string {
	if len(spans) == 0 {
		return base.Render(text)
	}
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start > len(text) {
			break
		}
		end := sp.End
		if end > len(text) {
			end = len(text)
		}
		if sp.Start > pos {
			b.WriteString(base.Render(text[pos:sp.Start]))
		}
		b.WriteString(m.styles.Highlight.Render(text[sp.Start:end]))
		pos = end
	}
	if pos < len(text) {
		b.WriteString(base.Render(text[pos:]))
	}
	return b.String()
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handlePromptKey routes keys while a search or range prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		mode := m.mode
		value := m.prompt.Value()
		m.closePrompt()
		switch mode {
		case promptSearch:
			m.commitSearch(value)
		case promptRange:
			m.commitRange(value)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = promptNone
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// commitSearch adds a search term. Terms accumulate; the cursor and
// the visible subset never move on search.
func (m *Model) commitSearch(value string) {
	term := strings.TrimSpace(value)
	if term == "" {
		m.status = ""
		return
	}
	if !m.sess.AddTerm(term) {
		m.status = m.styles.Faint.Render(fmt.Sprintf("term %q already active", strings.ToLower(term)))
		return
	}
	m.status = ""
}

// commitRange parses and runs a <level>-<window> context query.
// Malformed input is reported and leaves the engine untouched.
func (m *Model) commitRange(value string) {
	index, window, err := parseRangeCommand(value)
	if err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return
	}
	if err := m.sess.RangeQueryIndex(index, window); err != nil {
		m.status = m.styles.Error.Render(fmt.Sprintf("invalid range query: %v", err))
		return
	}
	m.status = ""
}

// parseRangeCommand splits "<level>-<window>" into its two integers.
func parseRangeCommand(input string) (index, window int, err error) {
	parts := strings.SplitN(strings.TrimSpace(input), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range format, use <level>-<window>, e.g. 4-20")
	}
	index, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range level %q", parts[0])
	}
	window, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window size %q", parts[1])
	}
	return index, window, nil
}

// Package ui provides the Bubble Tea terminal interface for loglens.
package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/logrec"
	"github.com/loglens/loglens/internal/session"
)

// promptMode selects which prompt, if any, owns the keyboard.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptRange
)

// Options configure the UI.
type Options struct {
	Session *session.Session
	Config  config.Config
	LogPath string
	Dropped int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	sess    *session.Session
	cfg     config.Config
	styles  Styles
	keys    keyMap
	logName string
	dropped int

	width  int
	height int
	ready  bool

	viewport viewport.Model
	prompt   textinput.Model
	mode     promptMode

	status   string
	showHelp bool
}

// New creates the root model.
func New(opts Options) Model {
	prompt := textinput.New()
	prompt.CharLimit = 100

	return Model{
		sess:    opts.Session,
		cfg:     opts.Config,
		styles:  NewStyles(opts.Config),
		keys:    defaultKeyMap(),
		logName: filepath.Base(opts.LogPath),
		dropped: opts.Dropped,
		prompt:  prompt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.contentHeight()
		}
		m.refresh()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// contentHeight is the viewport height: total minus header, status
// bar, and prompt line.
func (m Model) contentHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// handleKey processes keyboard input. One key is one engine transition
// followed by a full refresh of the rendered view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.mode != promptNone {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.RaiseLevel):
		m.sess.RaiseThreshold()
		m.status = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.LowerLevel):
		m.sess.LowerThreshold()
		m.status = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SetLevel):
		index := int(msg.Runes[0] - '0')
		if err := m.sess.SetThresholdIndex(index); err != nil {
			m.status = m.styles.Error.Render(fmt.Sprintf("invalid level %d", index))
			return m, nil
		}
		m.status = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = promptSearch
		m.prompt.Placeholder = "search term"
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.RangeQuery):
		m.mode = promptRange
		m.prompt.Placeholder = "<level>-<window>, e.g. 3-2"
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
		m.status = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.sess.StepCursor(session.Up)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.sess.StepCursor(session.Down)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.sess.CursorToStart()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.sess.CursorToEnd()
		m.refresh()
		return m, nil
	}

	return m, nil
}

// refresh re-renders the viewport content from a fresh session
// snapshot and keeps the cursor row in view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	view := m.sess.Snapshot()
	m.viewport.SetContent(m.renderRows(view))
	m.scrollToCursor(view.Cursor)
}

// scrollToCursor adjusts the viewport offset so the cursor row is
// visible.
func (m *Model) scrollToCursor(cursor int) {
	top := m.viewport.YOffset
	height := m.viewport.Height
	if height <= 0 {
		return
	}
	if cursor < top {
		m.viewport.SetYOffset(cursor)
	} else if cursor >= top+height {
		m.viewport.SetYOffset(cursor - height + 1)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// levelLabel formats a severity with its ordinal for the header.
func levelLabel(sev logrec.Severity) string {
	return fmt.Sprintf("%s (%d)", sev, sev.Index())
}

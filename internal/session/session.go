package session

import (
	"errors"
	"sort"
	"strings"

	"github.com/loglens/loglens/internal/logrec"
)

// ErrInvalidLevel reports a severity index outside the 0-4 scale.
var ErrInvalidLevel = errors.New("invalid severity level")

// ErrInvalidWindow reports a negative context-window size.
var ErrInvalidWindow = errors.New("invalid window size")

// Direction selects a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
)

// Options configure a session.
type Options struct {
	// ClearTermsOnReset controls whether Reset also drops the active
	// search terms.
	ClearTermsOnReset bool
}

// Session owns the viewer's mutable state: the severity threshold, the
// derived visible subset, the cursor, and the active search terms. The
// record store itself is immutable after New.
type Session struct {
	store     []logrec.Record
	threshold logrec.Severity
	visible   []int // store indices; a multiset after a range query
	cursor    int
	terms     []string // lowercase, insertion order
	opts      Options
}

// New creates a session over a loaded record store. The initial view
// shows every record with the cursor on the first one.
func New(store []logrec.Record, opts Options) *Session {
	s := &Session{store: store, opts: opts}
	s.showAll()
	return s
}

// Store returns the full record store.
func (s *Session) Store() []logrec.Record {
	return s.store
}

// Threshold returns the current severity threshold.
func (s *Session) Threshold() logrec.Severity {
	return s.threshold
}

// Cursor returns the current cursor position within the visible subset.
func (s *Session) Cursor() int {
	return s.cursor
}

// VisibleLen returns the size of the visible subset.
func (s *Session) VisibleLen() int {
	return len(s.visible)
}

// SetThreshold recomputes the visible subset to every record at or
// above level, preserving store order, and resets the cursor.
func (s *Session) SetThreshold(level logrec.Severity) {
	s.threshold = level
	s.visible = s.visible[:0]
	for i, rec := range s.store {
		if rec.Severity >= level {
			s.visible = append(s.visible, i)
		}
	}
	s.cursor = 0
}

// SetThresholdIndex is SetThreshold keyed by ordinal. An out-of-range
// index leaves the session untouched.
func (s *Session) SetThresholdIndex(index int) error {
	level, ok := logrec.SeverityFromIndex(index)
	if !ok {
		return ErrInvalidLevel
	}
	s.SetThreshold(level)
	return nil
}

// RaiseThreshold moves the threshold one level up, clamped at Critical.
func (s *Session) RaiseThreshold() {
	if s.threshold < logrec.Critical {
		s.SetThreshold(s.threshold + 1)
	}
}

// LowerThreshold moves the threshold one level down, clamped at Debug.
func (s *Session) LowerThreshold() {
	if s.threshold > logrec.Debug {
		s.SetThreshold(s.threshold - 1)
	}
}

// StepCursor moves the cursor one row in the given direction, clamping
// silently at both ends of the visible subset.
func (s *Session) StepCursor(dir Direction) {
	switch dir {
	case Up:
		if s.cursor > 0 {
			s.cursor--
		}
	case Down:
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	}
}

// CursorToStart moves the cursor to the first visible row.
func (s *Session) CursorToStart() {
	s.cursor = 0
}

// CursorToEnd moves the cursor to the last visible row.
func (s *Session) CursorToEnd() {
	if len(s.visible) > 0 {
		s.cursor = len(s.visible) - 1
	}
}

// RangeQuery replaces the visible subset with a context window around
// every record at or above level: the window preceding store records
// plus the record itself, clipped at the store start. Overlapping
// windows are kept as-is, so a record may appear more than once.
func (s *Session) RangeQuery(level logrec.Severity, window int) error {
	if window < 0 {
		return ErrInvalidWindow
	}
	visible := make([]int, 0, len(s.store))
	for i, rec := range s.store {
		if rec.Severity < level {
			continue
		}
		start := i - window
		if start < 0 {
			start = 0
		}
		for j := start; j <= i; j++ {
			visible = append(visible, j)
		}
	}
	s.threshold = level
	s.visible = visible
	s.cursor = 0
	return nil
}

// RangeQueryIndex is RangeQuery keyed by ordinal. Invalid input leaves
// the session untouched.
func (s *Session) RangeQueryIndex(index, window int) error {
	level, ok := logrec.SeverityFromIndex(index)
	if !ok {
		return ErrInvalidLevel
	}
	return s.RangeQuery(level, window)
}

// Reset restores the initial view: full store visible, threshold at
// Debug, cursor on the first row. Search terms are cleared when the
// session was configured to do so.
func (s *Session) Reset() {
	s.showAll()
	if s.opts.ClearTermsOnReset {
		s.terms = nil
	}
}

// AddTerm registers a search term for highlighting. Terms are
// lowercase-normalized; blank and duplicate terms are rejected. Adding
// a term never changes the visible subset or the cursor.
func (s *Session) AddTerm(term string) bool {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return false
	}
	for _, existing := range s.terms {
		if existing == normalized {
			return false
		}
	}
	s.terms = append(s.terms, normalized)
	return true
}

// Terms returns the active search terms in insertion order.
func (s *Session) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

func (s *Session) showAll() {
	s.threshold = logrec.Debug
	s.visible = make([]int, len(s.store))
	for i := range s.store {
		s.visible[i] = i
	}
	s.cursor = 0
}

// Span is a half-open byte range [Start, End) within a message marked
// for highlighting.
type Span struct {
	Start int
	End   int
}

// Highlights computes the highlight spans for text: every
// case-insensitive occurrence of an active term, scanned left to right
// term by term in insertion order. Occurrences overlapping a span
// already claimed by an earlier term are skipped. The result is sorted
// by start offset and spans never overlap.
func (s *Session) Highlights(text string) []Span {
	if len(s.terms) == 0 || text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var spans []Span
	for _, term := range s.terms {
		from := 0
		for {
			i := strings.Index(lower[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(term)
			if overlapsAny(spans, start, end) {
				from = start + 1
				continue
			}
			spans = append(spans, Span{Start: start, End: end})
			from = end
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func overlapsAny(spans []Span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.End && end > sp.Start {
			return true
		}
	}
	return false
}

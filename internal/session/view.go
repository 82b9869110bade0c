package session

import "github.com/loglens/loglens/internal/logrec"

// Row is one visible record annotated for rendering.
type Row struct {
	Record   logrec.Record
	IsCursor bool
	Spans    []Span
}

// View is a read-only snapshot of the session handed to rendering.
// It is a value copy; mutating the session afterwards never changes a
// view already taken.
type View struct {
	Rows      []Row
	Threshold logrec.Severity
	Terms     []string
	StoreLen  int
	Cursor    int
}

// Snapshot derives the current view. Highlight spans are computed per
// message from the active terms.
func (s *Session) Snapshot() View {
	rows := make([]Row, len(s.visible))
	for pos, idx := range s.visible {
		rec := s.store[idx]
		rows[pos] = Row{
			Record:   rec,
			IsCursor: pos == s.cursor && len(s.visible) > 0,
			Spans:    s.Highlights(rec.Message),
		}
	}
	return View{
		Rows:      rows,
		Threshold: s.threshold,
		Terms:     s.Terms(),
		StoreLen:  len(s.store),
		Cursor:    s.cursor,
	}
}

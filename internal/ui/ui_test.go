package ui

import (
	"strings"
	"testing"

	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/logrec"
	"github.com/loglens/loglens/internal/session"
)

func testModel(t *testing.T, records []logrec.Record, cfg config.Config) Model {
	t.Helper()
	sess := session.New(records, session.Options{ClearTermsOnReset: cfg.ResetClearsSearch})
	return New(Options{
		Session: sess,
		Config:  cfg,
		LogPath: "/var/log/app.log",
		Dropped: 0,
	})
}

func sampleRecords() []logrec.Record {
	return []logrec.Record{
		{Timestamp: "2025-03-01 10:00:00,000", Severity: logrec.Debug, Source: "app", Message: "starting up"},
		{Timestamp: "2025-03-01 10:00:01,000", Severity: logrec.Error, Source: "db:pool", Message: "connection refused"},
	}
}

func TestParseRangeCommand(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		index   int
		window  int
		wantErr bool
	}{
		{"basic", "3-2", 3, 2, false},
		{"large_window", "4-20", 4, 20, false},
		{"spaces", " 2 - 5 ", 2, 5, false},
		{"negative_window", "3--1", 3, -1, false},
		{"no_dash", "32", 0, 0, true},
		{"non_numeric_level", "x-2", 0, 0, true},
		{"non_numeric_window", "3-y", 0, 0, true},
		{"empty", "", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			index, window, err := parseRangeCommand(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseRangeCommand(%q) = %d, %d, want error", tc.in, index, window)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRangeCommand(%q) returned error: %v", tc.in, err)
			}
			if index != tc.index || window != tc.window {
				t.Fatalf("parseRangeCommand(%q) = %d, %d, want %d, %d", tc.in, index, window, tc.index, tc.window)
			}
		})
	}
}

func TestRenderRow_CursorMarker(t *testing.T) {
	m := testModel(t, sampleRecords(), config.Default())
	view := m.sess.Snapshot()

	withCursor := m.renderRow(view.Rows[0])
	if !strings.Contains(withCursor, cursorMarker) {
		t.Fatalf("cursor row = %q, want it to contain %q", withCursor, cursorMarker)
	}
	without := m.renderRow(view.Rows[1])
	if strings.Contains(without, cursorMarker) {
		t.Fatalf("non-cursor row = %q, want no marker", without)
	}
}

func TestRenderRow_ContainsRecordFields(t *testing.T) {
	m := testModel(t, sampleRecords(), config.Default())
	view := m.sess.Snapshot()

	line := m.renderRow(view.Rows[1])
	for _, want := range []string{"2025-03-01 10:00:01,000", "[ERROR]", "db:pool", "connection refused"} {
		if !strings.Contains(line, want) {
			t.Fatalf("rendered row = %q, want it to contain %q", line, want)
		}
	}
}

func TestRenderSpans_SegmentsText(t *testing.T) {
	m := testModel(t, sampleRecords(), config.Default())

	got := m.renderSpans("connection refused", []session.Span{{Start: 11, End: 18}}, m.styles.Text)
	if !strings.Contains(got, "connection ") || !strings.Contains(got, "refused") {
		t.Fatalf("renderSpans = %q, want both segments present", got)
	}

	// Span clamped at text end.
	got = m.renderSpans("short", []session.Span{{Start: 2, End: 99}}, m.styles.Text)
	if !strings.Contains(got, "sh") || !strings.Contains(got, "ort") {
		t.Fatalf("renderSpans clamp = %q, want full text preserved", got)
	}
}

func TestRenderRows_EmptyView(t *testing.T) {
	m := testModel(t, sampleRecords(), config.Default())
	m.sess.SetThreshold(logrec.Critical)

	got := m.renderRows(m.sess.Snapshot())
	if !strings.Contains(got, "No records match") {
		t.Fatalf("renderRows = %q, want empty-state message", got)
	}
}

func TestRenderHeader_ShowsThresholdAndTerms(t *testing.T) {
	m := testModel(t, sampleRecords(), config.Default())
	m.sess.SetThreshold(logrec.Error)
	m.sess.AddTerm("refused")

	header := m.renderHeader()
	for _, want := range []string{"app.log", "2 records", "ERROR (3)", "1 visible", "refused"} {
		if !strings.Contains(header, want) {
			t.Fatalf("header = %q, want it to contain %q", header, want)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	if got := levelLabel(logrec.Critical); got != "CRITICAL (4)" {
		t.Fatalf("levelLabel = %q, want %q", got, "CRITICAL (4)")
	}
}

func TestColorByName(t *testing.T) {
	if got := colorByName("magenta"); got != "5" {
		t.Fatalf("colorByName(magenta) = %q, want 5", got)
	}
	if got := colorByName("bright-red"); got != "9" {
		t.Fatalf("colorByName(bright-red) = %q, want 9", got)
	}
	if got := colorByName("nonsense"); got != "7" {
		t.Fatalf("colorByName fallback = %q, want 7", got)
	}
}

package logrec

import (
	"testing"
	"time"
)

func TestParse_ValidLine(t *testing.T) {
	rec, ok := Parse("2025-03-01 14:22:01,337 [ERROR] worker:encode - failed to open input")
	if !ok {
		t.Fatalf("Parse reported no match for a valid line")
	}
	if rec.Timestamp != "2025-03-01 14:22:01,337" {
		t.Fatalf("Timestamp = %q, want %q", rec.Timestamp, "2025-03-01 14:22:01,337")
	}
	if rec.Severity != Error {
		t.Fatalf("Severity = %v, want %v", rec.Severity, Error)
	}
	if rec.Source != "worker:encode" {
		t.Fatalf("Source = %q, want %q", rec.Source, "worker:encode")
	}
	if rec.Message != "failed to open input" {
		t.Fatalf("Message = %q, want %q", rec.Message, "failed to open input")
	}
}

func TestParse_MessageMayContainDelimiter(t *testing.T) {
	rec, ok := Parse("2025-03-01 14:22:01,337 [INFO] app - a - b - c")
	if !ok {
		t.Fatalf("Parse reported no match")
	}
	if rec.Message != "a - b - c" {
		t.Fatalf("Message = %q, want %q", rec.Message, "a - b - c")
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"free_text", "not a log line"},
		{"empty", ""},
		{"missing_severity", "2025-03-01 14:22:01,337 app - hello"},
		{"lowercase_severity", "2025-03-01 14:22:01,337 [info] app - hello"},
		{"unknown_severity", "2025-03-01 14:22:01,337 [TRACE] app - hello"},
		{"no_millis", "2025-03-01 14:22:01 [INFO] app - hello"},
		{"bad_source_chars", "2025-03-01 14:22:01,337 [INFO] a pp - hello"},
		{"empty_message", "2025-03-01 14:22:01,337 [INFO] app - "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Parse(tc.line); ok {
				t.Fatalf("Parse(%q) matched, want no match", tc.line)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	line := "2025-03-01 14:22:01,337 [WARNING] db:pool - connection churn detected"
	rec, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse reported no match")
	}
	if rec.String() != line {
		t.Fatalf("String = %q, want %q", rec.String(), line)
	}
	again, ok := Parse(rec.String())
	if !ok {
		t.Fatalf("re-Parse reported no match")
	}
	if again != rec {
		t.Fatalf("re-Parse = %+v, want %+v", again, rec)
	}
}

func TestRecordTime(t *testing.T) {
	rec := Record{Timestamp: "2025-03-01 14:22:01,337"}
	want := time.Date(2025, 3, 1, 14, 22, 1, 337_000_000, time.UTC)
	if got := rec.Time(); !got.Equal(want) {
		t.Fatalf("Time = %v, want %v", got, want)
	}

	bad := Record{Timestamp: "not a timestamp"}
	if got := bad.Time(); !got.IsZero() {
		t.Fatalf("Time for invalid timestamp = %v, want zero", got)
	}
}

func TestSeverityOrdering(t *testing.T) {
	order := []Severity{Debug, Info, Warning, Error, Critical}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("%v not below %v", order[i-1], order[i])
		}
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"DEBUG", Debug, true},
		{"info", Info, true},
		{" Warning ", Warning, true},
		{"ERROR", Error, true},
		{"CRITICAL", Critical, true},
		{"TRACE", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseSeverity(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseSeverity(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSeverityFromIndex(t *testing.T) {
	if sev, ok := SeverityFromIndex(4); !ok || sev != Critical {
		t.Fatalf("SeverityFromIndex(4) = %v, %v, want Critical, true", sev, ok)
	}
	if _, ok := SeverityFromIndex(5); ok {
		t.Fatalf("SeverityFromIndex(5) matched, want out of range")
	}
	if _, ok := SeverityFromIndex(-1); ok {
		t.Fatalf("SeverityFromIndex(-1) matched, want out of range")
	}
}

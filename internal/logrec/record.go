// Package logrec defines the parsed log record and its line format.
//
// The wire contract with upstream log producers is one record per line:
//
//	2025-03-01 14:22:01,337 [ERROR] worker:encode - failed to open input
//
// A line either matches the full pattern or produces no record; partial
// matches are dropped by the loader.
package logrec

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the layout of the timestamp field.
const TimestampLayout = "2006-01-02 15:04:05,000"

var lineFormat = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}) \[([A-Z]+)\] ([\w:]+) - (.+)$`)

// Record is a single parsed log line. Immutable once created.
type Record struct {
	Timestamp string
	Severity  Severity
	Source    string
	Message   string
}

// Parse matches a raw line against the record pattern. The second
// return value reports whether the line matched; a severity token
// outside the known scale is treated as a non-match.
func Parse(line string) (Record, bool) {
	m := lineFormat.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	sev, ok := ParseSeverity(m[2])
	if !ok {
		return Record{}, false
	}
	return Record{
		Timestamp: m[1],
		Severity:  sev,
		Source:    m[3],
		Message:   m[4],
	}, true
}

// Time parses the timestamp field. A timestamp that fails to parse
// returns the zero time; it never invalidates the record itself.
func (r Record) Time() time.Time {
	t, err := time.Parse(TimestampLayout, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// String reconstructs the wire-format line for the record.
func (r Record) String() string {
	return fmt.Sprintf("%s [%s] %s - %s", r.Timestamp, r.Severity, r.Source, r.Message)
}

package logrec

import "strings"

// Severity is an ordered log level. The zero value is Debug.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Critical
)

// SeverityCount is the number of severity levels.
const SeverityCount = 5

var severityNames = [SeverityCount]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// String returns the uppercase wire name for the severity.
func (s Severity) String() string {
	if s < 0 || int(s) >= SeverityCount {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// Index returns the ordinal position of the severity within the scale.
func (s Severity) Index() int {
	return int(s)
}

// ParseSeverity maps a wire name to a Severity. Matching is
// case-insensitive; unknown names report false.
func ParseSeverity(name string) (Severity, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == upper {
			return Severity(i), true
		}
	}
	return 0, false
}

// SeverityFromIndex maps an ordinal 0-4 to a Severity.
func SeverityFromIndex(index int) (Severity, bool) {
	if index < 0 || index >= SeverityCount {
		return 0, false
	}
	return Severity(index), true
}

// Severities returns all levels in ascending order.
func Severities() []Severity {
	out := make([]Severity, SeverityCount)
	for i := range out {
		out[i] = Severity(i)
	}
	return out
}

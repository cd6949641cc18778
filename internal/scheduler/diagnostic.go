package scheduler

import "fmt"

// Severity classifies a translation diagnostic.
// None of the severities alter control flow; ERROR is advisory too.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the label printed in front of a diagnostic
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one message raised while rewriting a script
type Diagnostic struct {
	Severity Severity
	Rule     string // Name of the rule that raised it (e.g., "resources")
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Diagnostics collects the messages raised by every rule of one conversion.
// The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

// Info records an informational message
func (d *Diagnostics) Info(rule, format string, a ...interface{}) {
	d.add(SeverityInfo, rule, format, a...)
}

// Warn records a warning
func (d *Diagnostics) Warn(rule, format string, a ...interface{}) {
	d.add(SeverityWarning, rule, format, a...)
}

// Error records an error-labelled message. Processing continues.
func (d *Diagnostics) Error(rule, format string, a ...interface{}) {
	d.add(SeverityError, rule, format, a...)
}

func (d *Diagnostics) add(sev Severity, rule, format string, a ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: sev,
		Rule:     rule,
		Message:  fmt.Sprintf(format, a...),
	})
}

// Items returns the recorded diagnostics in the order they were raised
func (d *Diagnostics) Items() []Diagnostic {
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of recorded diagnostics
func (d *Diagnostics) Len() int {
	return len(d.items)
}

// Count returns how many diagnostics have the given severity
func (d *Diagnostics) Count(sev Severity) int {
	n := 0
	for _, item := range d.items {
		if item.Severity == sev {
			n++
		}
	}
	return n
}

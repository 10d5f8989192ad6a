// Package types contains shared types used across the application.
package types

import "strings"

// Toast is a single notification message. Immutable once enqueued.
type Toast struct {
	Text     string
	Icon     string
	Severity Severity
}

// Severity indicates the kind of a toast and drives its coloring only;
// truncation behavior is identical across severities.
type Severity int

const (
	SeverityDefault Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// ParseSeverity maps a severity name to its value. Unknown names,
// including the empty string, fall back to SeverityDefault.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "success":
		return SeveritySuccess
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityDefault
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "default"
	}
}

// Body returns the display text of the toast: the icon, a single
// separating space, then the text. An empty icon yields no leading
// space or placeholder glyph.
func (t Toast) Body() string {
	if t.Icon == "" {
		return t.Text
	}
	if t.Text == "" {
		return t.Icon
	}
	return t.Icon + " " + t.Text
}

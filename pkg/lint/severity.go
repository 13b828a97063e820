package lint

import "fmt"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics, most severe first.
const (
	// SeverityError indicates a violation that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s <= min
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ParseSeverity converts a severity name to a Severity value.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q (want error, warning, info, or hint)", name)
	}
}

// Status summarizes the outcome of linting one file.
type Status int

// Run statuses.
const (
	// StatusClean means no diagnostics at error severity were produced.
	StatusClean Status = iota
	// StatusViolations means one or more error-severity diagnostics were produced.
	StatusViolations
	// StatusParseFailed means the parser could not build a tree; no rules ran.
	StatusParseFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusViolations:
		return "violations"
	case StatusParseFailed:
		return "parse-failed"
	default:
		return "unknown"
	}
}

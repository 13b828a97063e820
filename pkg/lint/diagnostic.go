package lint

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/lintkit/pkg/token"
)

// Finding is the raw output of one rule invocation, before canonicalization.
// Rules fill in Span, Message, and optionally Fix; the analyzer stamps
// RuleID and Severity.
type Finding struct {
	RuleID   string
	Severity Severity
	Span     token.Span
	Message  string
	Fix      *Fix
}

// Fix is a suggested correction attached to a finding.
type Fix struct {
	Description string
	Edits       []TextEdit
}

// TextEdit is a proposed text replacement over a span. RuleID records which
// rule proposed the edit; the fix engine stamps it when collecting edits.
type TextEdit struct {
	Span    token.Span
	NewText string
	RuleID  string
}

// Diagnostic is the canonical, reportable unit: severity-resolved,
// deduplicated, and ordered. Diagnostics are immutable once constructed.
type Diagnostic struct {
	RuleID   string     `json:"rule"`
	Severity Severity   `json:"severity"`
	Span     token.Span `json:"span"`
	Message  string     `json:"message"`
	Fixes    []Fix      `json:"-"`
}

// String renders the diagnostic as "line:col severity rule message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s %s", d.Span.Start, d.Severity, d.RuleID, d.Message)
}

// dedupKey identifies findings that report the same issue: structural
// patterns can nest and trigger a rule more than once on the same region.
func (d Diagnostic) dedupKey() string {
	return fmt.Sprintf("%s|%d|%d|%s", d.RuleID, d.Span.Start.Offset, d.Span.End.Offset, d.Message)
}

// Result is the outcome of linting one file.
type Result struct {
	Diagnostics []Diagnostic
	Status      Status
}

// HasErrors returns true if any diagnostic is at error severity.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity.AtLeast(SeverityError) {
			return true
		}
	}
	return false
}

// canonicalize turns raw findings into the ordered diagnostic sequence:
// severity overrides applied, disabled rules dropped, duplicates collapsed,
// and the result sorted by (start position, rule ID) so that output does
// not depend on rule registration order.
func canonicalize(findings []Finding, cfg *Config) []Diagnostic {
	seen := make(map[string]bool, len(findings))
	diags := make([]Diagnostic, 0, len(findings))

	for _, f := range findings {
		if cfg.IsDisabled(f.RuleID) {
			continue
		}
		d := Diagnostic{
			RuleID:   f.RuleID,
			Severity: cfg.GetSeverity(f.RuleID, f.Severity),
			Span:     f.Span,
			Message:  f.Message,
		}
		if f.Fix != nil {
			d.Fixes = []Fix{*f.Fix}
		}
		key := d.dedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		diags = append(diags, d)
	}

	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i], diags[j]
		if di.Span.Start.Offset != dj.Span.Start.Offset {
			return di.Span.Start.Offset < dj.Span.Start.Offset
		}
		if di.RuleID != dj.RuleID {
			return di.RuleID < dj.RuleID
		}
		if di.Span.End.Offset != dj.Span.End.Offset {
			return di.Span.End.Offset < dj.Span.End.Offset
		}
		return di.Message < dj.Message
	})

	return diags
}

// statusFor derives the run status from canonical diagnostics.
func statusFor(diags []Diagnostic) Status {
	for _, d := range diags {
		if d.Severity.AtLeast(SeverityError) {
			return StatusViolations
		}
	}
	return StatusClean
}

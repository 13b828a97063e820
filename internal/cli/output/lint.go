package output

// JSON payload types for the lint and fix commands.

// LintDiagnostic is one issue in the JSON report.
type LintDiagnostic struct {
	RuleID   string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	EndLine  int    `json:"end_line,omitempty"`
	EndCol   int    `json:"end_column,omitempty"`
	Fixable  bool   `json:"fixable,omitempty"`
}

// LintFileResult groups diagnostics by file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Status      string           `json:"status"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []LintDiagnostic `json:"diagnostics,omitempty"`
}

// LintSummary holds aggregate counts.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesFailed   int `json:"files_failed,omitempty"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintOutput is the top-level JSON report for the lint command.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// FixFileResult reports the fix outcome for one file.
type FixFileResult struct {
	Path         string           `json:"path"`
	Changed      bool             `json:"changed"`
	EditsApplied int              `json:"edits_applied"`
	Iterations   int              `json:"iterations"`
	Conflicts    []string         `json:"conflicts,omitempty"`
	Error        string           `json:"error,omitempty"`
	Remaining    []LintDiagnostic `json:"remaining,omitempty"`
}

// FixOutput is the top-level JSON report for the fix command.
type FixOutput struct {
	Files []FixFileResult `json:"files"`
}

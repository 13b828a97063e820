package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintkit/internal/cli/output"
	"github.com/leapstack-labs/lintkit/internal/runner"
	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format   string   // Output format: text, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <path>...",
		Short: "Run lint rules on configuration files",
		Long: `Analyze configuration files for potential issues.

Runs the registered lint rules against each file and reports any
violations found. Rules can be configured in lintkit.yaml.`,
		Example: `  # Lint a directory
  lintkit lint ./conf

  # Lint specific files
  lintkit lint app.conf deploy.conf

  # Output as JSON
  lintkit lint --format json ./conf

  # Disable specific rules
  lintkit lint --disable WS01,ST03 ./conf

  # Only report errors (ignore warnings/hints)
  lintkit lint --severity error ./conf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	applyRuleFilters(cmdCtx.LintCfg, opts.Disable, opts.Rules)
	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), cmdCtx.LintCfg)

	paths, err := expandPaths(args, cmdCtx.Cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched")
	}

	run := runner.New(runner.Options{
		Analyzer: analyzer,
		Parser:   conf.NewParser(),
	})
	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	threshold, err := parseSeverityThreshold(opts.Severity)
	if err != nil {
		return err
	}
	results = filterBySeverity(results, threshold)

	renderLintResults(r, results)

	summary := runner.Summarize(results)
	switch summary.ExitCode() {
	case runner.ExitError:
		return fmt.Errorf("%d files could not be processed", summary.FilesFailed)
	case runner.ExitIssues:
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// applyRuleFilters applies CLI rule overrides on top of the config file.
func applyRuleFilters(cfg *lint.Config, disable, only []string) {
	for _, id := range disable {
		cfg.Disable(strings.TrimSpace(id))
	}

	// If --rule is given, disable everything not named.
	if len(only) > 0 {
		keep := make(map[string]bool)
		for _, id := range only {
			keep[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.DefaultRegistry().Rules() {
			if !keep[rule.ID()] {
				cfg.Disable(rule.ID())
			}
		}
	}
}

func parseSeverityThreshold(s string) (lint.Severity, error) {
	sev, err := lint.ParseSeverity(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --severity: %w", err)
	}
	return sev, nil
}

// filterBySeverity drops diagnostics below the threshold. Syntax errors
// always pass.
func filterBySeverity(results []runner.FileResult, threshold lint.Severity) []runner.FileResult {
	filtered := make([]runner.FileResult, 0, len(results))
	for _, res := range results {
		var diags []lint.Diagnostic
		for _, d := range res.Diagnostics {
			if d.RuleID == lint.SyntaxRuleID || d.Severity.AtLeast(threshold) {
				diags = append(diags, d)
			}
		}
		res.Diagnostics = diags
		filtered = append(filtered, res)
	}
	return filtered
}

func renderLintResults(r *output.Renderer, results []runner.FileResult) {
	summary := output.LintSummary{FilesAnalyzed: len(results)}
	for _, res := range results {
		if res.Err != nil {
			summary.FilesFailed++
			continue
		}
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}

	if r.Mode() == output.ModeJSON {
		report := output.LintOutput{Summary: summary}
		for _, res := range results {
			fileResult := output.LintFileResult{
				Path:   res.Path,
				Status: res.Status.String(),
			}
			if res.Err != nil {
				fileResult.Status = "failed"
				fileResult.Error = res.Err.Error()
			}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, toJSONDiagnostic(d))
			}
			report.Files = append(report.Files, fileResult)
		}
		_ = r.JSON(report)
		return
	}

	for _, res := range results {
		if res.Err != nil {
			r.Errorf("%s: %v\n", res.Path, res.Err)
			continue
		}
		if len(res.Diagnostics) == 0 {
			continue
		}
		r.Println(res.Path)
		for _, d := range res.Diagnostics {
			r.Printf("  %-7s %s  %s  %s\n",
				formatLocation(d),
				fmt.Sprintf("%-7s", d.Severity),
				d.RuleID,
				d.Message,
			)
		}
		r.Println("")
	}

	if summary.TotalIssues == 0 && summary.FilesFailed == 0 {
		r.Println("No lint issues found")
		return
	}

	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(parts, ", "), summary.FilesAnalyzed)
}

func formatLocation(d lint.Diagnostic) string {
	if d.Span.Start.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
}

func toJSONDiagnostic(d lint.Diagnostic) output.LintDiagnostic {
	return output.LintDiagnostic{
		RuleID:   d.RuleID,
		Severity: d.Severity.String(),
		Message:  d.Message,
		Line:     d.Span.Start.Line,
		Column:   d.Span.Start.Column,
		EndLine:  d.Span.End.Line,
		EndCol:   d.Span.End.Column,
		Fixable:  len(d.Fixes) > 0,
	}
}

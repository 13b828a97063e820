// Package runner orchestrates the load -> parse -> lint -> fix pipeline
// over a set of files.
package runner

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// Options configures the runner behavior.
type Options struct {
	// Analyzer is the frozen rule engine shared by all files.
	Analyzer *lint.Analyzer

	// Parser produces the tree for each file.
	Parser tree.Parser

	// Fix applies auto-fixes before reporting.
	Fix bool

	// Write rewrites fixed files in place. Ignored unless Fix is set.
	Write bool

	// MaxFixIterations bounds the fix convergence loop per file.
	MaxFixIterations int

	// Concurrency limits the number of files processed at once.
	// Zero means GOMAXPROCS.
	Concurrency int
}

// FileResult is the outcome of processing one file. Exactly one of Err or
// the lint fields is meaningful: when Err is set the file could not be read
// or written and was skipped.
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Status      lint.Status

	// Fix results, set when fixing was requested.
	Fixed   *lint.FixResult
	Changed bool

	Err error
}

// Runner processes files against a shared analyzer.
type Runner struct {
	opts Options
}

// New creates a Runner. The analyzer and parser must be set.
func New(opts Options) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.MaxFixIterations <= 0 {
		opts.MaxFixIterations = 1
	}
	return &Runner{opts: opts}
}

// Run processes all paths and returns one result per path, in input order.
// Per-file failures are recorded on the result, not returned; the error is
// non-nil only when the context is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.processFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) processFile(path string) FileResult {
	res := FileResult{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	if !r.opts.Fix {
		lr := r.opts.Analyzer.Lint(src, r.opts.Parser)
		res.Diagnostics = lr.Diagnostics
		res.Status = lr.Status
		return res
	}

	fr := r.opts.Analyzer.Fix(src, r.opts.Parser, r.opts.MaxFixIterations)
	res.Fixed = &fr
	res.Diagnostics = fr.Remaining
	res.Status = statusOf(fr.Remaining)
	res.Changed = string(fr.Output) != string(src)

	if res.Changed && r.opts.Write {
		if err := os.WriteFile(path, fr.Output, 0o644); err != nil {
			res.Err = err
		}
	}
	return res
}

// statusOf derives a status for the fix path's remaining diagnostics using
// the same rule the engine applies after a lint pass: a file is clean unless
// something at error severity remains.
func statusOf(diags []lint.Diagnostic) lint.Status {
	status := lint.StatusClean
	for _, d := range diags {
		if d.RuleID == lint.SyntaxRuleID {
			return lint.StatusParseFailed
		}
		if d.Severity.AtLeast(lint.SeverityError) {
			status = lint.StatusViolations
		}
	}
	return status
}

// Summary aggregates results for exit-status reporting.
type Summary struct {
	Files       int
	FilesFailed int
	Issues      int
	Errors      int
}

// Summarize counts issues across results. Errors counts diagnostics at or
// above error severity plus per-file failures.
func Summarize(results []FileResult) Summary {
	var s Summary
	s.Files = len(results)
	for _, res := range results {
		if res.Err != nil {
			s.FilesFailed++
			continue
		}
		s.Issues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			if d.Severity == lint.SeverityError {
				s.Errors++
			}
		}
	}
	return s
}

// ExitCode maps a summary to a process exit code.
func (s Summary) ExitCode() int {
	if s.FilesFailed > 0 {
		return ExitError
	}
	if s.Issues > 0 {
		return ExitIssues
	}
	return ExitOK
}

package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintkit/internal/runner"
	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	_ "github.com/leapstack-labs/lintkit/pkg/lint/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newRunner(opts runner.Options) *runner.Runner {
	if opts.Analyzer == nil {
		opts.Analyzer = lint.NewAnalyzer(lint.DefaultRegistry(), lint.NewConfig())
	}
	if opts.Parser == nil {
		opts.Parser = conf.NewParser()
	}
	return runner.New(opts)
}

func TestRunLint(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.conf", "[server]\nhost = localhost\n")
	dirty := writeFile(t, dir, "dirty.conf", "[server]\nhost = localhost  \n")
	missing := filepath.Join(dir, "missing.conf")

	results, err := newRunner(runner.Options{}).Run(context.Background(), []string{clean, dirty, missing})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results come back in input order regardless of scheduling.
	assert.Equal(t, clean, results[0].Path)
	assert.Equal(t, dirty, results[1].Path)
	assert.Equal(t, missing, results[2].Path)

	assert.Equal(t, lint.StatusClean, results[0].Status)
	assert.Empty(t, results[0].Diagnostics)

	// A warning does not change the status; only error severity does.
	assert.Equal(t, lint.StatusClean, results[1].Status)
	require.Len(t, results[1].Diagnostics, 1)
	assert.Equal(t, "WS01", results[1].Diagnostics[0].RuleID)

	assert.Error(t, results[2].Err)
}

func TestRunStatusTracksErrorSeverity(t *testing.T) {
	dir := t.TempDir()
	dup := writeFile(t, dir, "dup.conf", "[server]\nhost = a\nhost = b\n")
	hint := writeFile(t, dir, "hint.conf", "loose = 1\n")

	results, err := newRunner(runner.Options{}).Run(context.Background(), []string{dup, hint})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// ST02 reports at error severity.
	assert.Equal(t, lint.StatusViolations, results[0].Status)
	require.Len(t, results[0].Diagnostics, 1)
	assert.Equal(t, "ST02", results[0].Diagnostics[0].RuleID)

	assert.Equal(t, lint.StatusClean, results[1].Status)
	assert.NotEmpty(t, results[1].Diagnostics)

	// The fix path judges remaining diagnostics by the same rule: nothing
	// fixable in hint.conf, so its hint remains and the file stays clean.
	fixed, err := newRunner(runner.Options{Fix: true, MaxFixIterations: 3}).Run(context.Background(), []string{hint, dup})
	require.NoError(t, err)
	assert.Equal(t, lint.StatusClean, fixed[0].Status)
	assert.NotEmpty(t, fixed[0].Fixed.Remaining)
	assert.Equal(t, lint.StatusViolations, fixed[1].Status)
}

func TestRunParseFailure(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.conf", "[unterminated\n")

	results, err := newRunner(runner.Options{}).Run(context.Background(), []string{bad})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, lint.StatusParseFailed, results[0].Status)
	require.Len(t, results[0].Diagnostics, 1)
	assert.Equal(t, lint.SyntaxRuleID, results[0].Diagnostics[0].RuleID)
}

func TestRunFixWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fixme.conf", "[server]\nhost = localhost  \n")

	r := newRunner(runner.Options{Fix: true, Write: true, MaxFixIterations: 5})
	results, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	require.NotNil(t, res.Fixed)
	assert.Empty(t, res.Diagnostics)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[server]\nhost = localhost\n", string(got))
}

func TestRunFixWithoutWriteLeavesFile(t *testing.T) {
	dir := t.TempDir()
	const src = "[server]\nhost = localhost  \n"
	path := writeFile(t, dir, "fixme.conf", src)

	r := newRunner(runner.Options{Fix: true, MaxFixIterations: 5})
	results, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.True(t, results[0].Changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(got))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.conf", "[s]\nk = v\n")

	_, err := newRunner(runner.Options{Concurrency: 1}).Run(ctx, []string{path, path, path})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	results := []runner.FileResult{
		{Path: "a.conf", Status: lint.StatusClean},
		{Path: "b.conf", Status: lint.StatusViolations, Diagnostics: []lint.Diagnostic{
			{RuleID: "WS01", Severity: lint.SeverityWarning},
			{RuleID: "ST02", Severity: lint.SeverityError},
		}},
	}

	s := runner.Summarize(results)
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 0, s.FilesFailed)
	assert.Equal(t, 2, s.Issues)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, runner.ExitIssues, s.ExitCode())

	assert.Equal(t, runner.ExitOK, runner.Summarize(results[:1]).ExitCode())

	failed := append(results, runner.FileResult{Path: "c.conf", Err: os.ErrNotExist})
	assert.Equal(t, runner.ExitError, runner.Summarize(failed).ExitCode())
}

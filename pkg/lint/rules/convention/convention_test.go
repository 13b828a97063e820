package convention_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

func lintWith(t *testing.T, cfg *lint.Config, src string) []lint.Diagnostic {
	t.Helper()
	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), cfg)
	result := analyzer.Lint([]byte(src), conf.NewParser())
	require.NotEqual(t, lint.StatusParseFailed, result.Status, "fixture must parse: %q", src)
	return result.Diagnostics
}

func byRule(diags []lint.Diagnostic, id string) []lint.Diagnostic {
	var out []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == id {
			out = append(out, d)
		}
	}
	return out
}

func TestKeyStyleSnakeDefault(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDiag bool
	}{
		{
			name: "snake case key",
			src:  "[s]\nretry_count = 3\n",
		},
		{
			name:     "camel case key",
			src:      "[s]\nretryCount = 3\n",
			wantDiag: true,
		},
		{
			name:     "kebab key under snake style",
			src:      "[s]\nretry-count = 3\n",
			wantDiag: true,
		},
		{
			name: "digits allowed",
			src:  "[s]\nipv6_addr = ::1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := byRule(lintWith(t, lint.NewConfig(), tt.src), "CV01")
			if tt.wantDiag {
				require.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestKeyStyleKebabOption(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.SetRuleOptions("CV01", map[string]any{"style": "kebab"})

	assert.Empty(t, byRule(lintWith(t, cfg, "[s]\nretry-count = 3\n"), "CV01"))
	assert.Len(t, byRule(lintWith(t, cfg, "[s]\nretry_count = 3\n"), "CV01"), 1)
}

func TestKeyStyleSuggestsRename(t *testing.T) {
	diags := byRule(lintWith(t, lint.NewConfig(), "[s]\nretryCount = 3\n"), "CV01")
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 1)
	assert.Contains(t, diags[0].Fixes[0].Description, "retry_count")
}

func TestKeyStyleIsNotAutoFixed(t *testing.T) {
	// Renaming keys changes meaning, so the suggested rewrite must not be
	// applied by fix runs.
	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), lint.NewConfig())
	result := analyzer.Fix([]byte("[s]\nretryCount = 3\n"), conf.NewParser(), 3)

	assert.Contains(t, string(result.Output), "retryCount")
	assert.NotEmpty(t, byRule(result.Remaining, "CV01"))
}

func TestSectionCase(t *testing.T) {
	assert.Empty(t, byRule(lintWith(t, lint.NewConfig(), "[server]\nk = v\n"), "CV02"))

	diags := byRule(lintWith(t, lint.NewConfig(), "[Server]\nk = v\n"), "CV02")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Server")
}

func TestSectionCaseFix(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), lint.NewConfig())
	result := analyzer.Fix([]byte("[Server]\nk = v\n"), conf.NewParser(), 3)

	assert.Contains(t, string(result.Output), "[server]")
	assert.Empty(t, byRule(result.Remaining, "CV02"))
}

func TestBlockedKeys(t *testing.T) {
	src := "[auth]\npassword = hunter2\nuser = bob\n"

	assert.Empty(t, byRule(lintWith(t, lint.NewConfig(), src), "CV03"),
		"no deny list configured means no findings")

	cfg := lint.NewConfig()
	cfg.SetRuleOptions("CV03", map[string]any{"keys": []string{"password", "secret"}})

	diags := byRule(lintWith(t, cfg, src), "CV03")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "password")
}

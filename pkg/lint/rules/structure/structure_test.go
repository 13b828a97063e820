package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

func lintSource(t *testing.T, src string) []lint.Diagnostic {
	t.Helper()
	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), lint.NewConfig())
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

func TestEmptySection(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDiag bool
	}{
		{
			name: "section with entries",
			src:  "[s]\nkey = value\n",
		},
		{
			name:     "empty section",
			src:      "[s]\n\n[t]\nkey = value\n",
			wantDiag: true,
		},
		{
			name:     "section with only comments",
			src:      "[s]\n# nothing here\n",
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := byRule(lintSource(t, tt.src), "ST01")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Contains(t, diags[0].Message, `"s"`)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestDuplicateKey(t *testing.T) {
	t.Run("duplicate in same section", func(t *testing.T) {
		diags := byRule(lintSource(t, "[s]\nkey = 1\nother = 2\nkey = 3\n"), "ST02")
		require.Len(t, diags, 1)
		assert.Equal(t, 4, diags[0].Span.Start.Line)
		assert.Contains(t, diags[0].Message, "line 2")
	})

	t.Run("same key in different sections is fine", func(t *testing.T) {
		diags := byRule(lintSource(t, "[a]\nkey = 1\n[b]\nkey = 2\n"), "ST02")
		assert.Empty(t, diags)
	})

	t.Run("duplicate at top level", func(t *testing.T) {
		diags := byRule(lintSource(t, "key = 1\nkey = 2\n"), "ST02")
		require.Len(t, diags, 1)
	})

	t.Run("top level and section scopes are separate", func(t *testing.T) {
		diags := byRule(lintSource(t, "key = 1\n[s]\nkey = 2\n"), "ST02")
		assert.Empty(t, diags)
	})
}

func TestTopLevelEntry(t *testing.T) {
	diags := byRule(lintSource(t, "loose = 1\n[s]\ngrouped = 2\n"), "ST03")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityHint, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "loose")

	assert.Empty(t, byRule(lintSource(t, "[s]\ngrouped = 2\n"), "ST03"))
}

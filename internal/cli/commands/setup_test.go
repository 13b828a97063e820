package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintkit/internal/config"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	write := func(path string) string {
		require.NoError(t, os.WriteFile(path, []byte("k = v\n"), 0o644))
		return path
	}
	a := write(filepath.Join(dir, "a.conf"))
	b := write(filepath.Join(sub, "b.conf"))
	write(filepath.Join(dir, "skip.txt"))
	local := write(filepath.Join(dir, "local.conf"))

	cfg := &config.ProjectConfig{
		Include: []string{"**/*.conf"},
		Exclude: []string{"local.conf"},
	}

	paths, err := expandPaths([]string{dir}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths)

	// Explicit file arguments bypass the include/exclude patterns.
	paths, err = expandPaths([]string{local}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{local}, paths)

	_, err = expandPaths([]string{filepath.Join(dir, "missing.conf")}, cfg)
	assert.Error(t, err)
}

func TestApplyRuleFilters(t *testing.T) {
	cfg := lint.NewConfig()
	applyRuleFilters(cfg, []string{" WS01 "}, nil)
	assert.True(t, cfg.IsDisabled("WS01"))
	assert.False(t, cfg.IsDisabled("WS02"))

	cfg = lint.NewConfig()
	applyRuleFilters(cfg, nil, []string{"CV01"})
	assert.False(t, cfg.IsDisabled("CV01"))
	assert.True(t, cfg.IsDisabled("WS01"))
	assert.True(t, cfg.IsDisabled("ST02"))
}

// Package commands implements the lintkit subcommands.
package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintkit/internal/cli/output"
	"github.com/leapstack-labs/lintkit/internal/config"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	_ "github.com/leapstack-labs/lintkit/pkg/lint/rules" // register built-in rules
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.ProjectConfig
	LintCfg  *lint.Config
	Renderer *output.Renderer
}

// NewCommandContext loads the project config and builds the shared command
// state. The format argument overrides the persistent --output flag when
// non-empty. Unknown rule names in the config are reported as warnings on
// the error stream.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return nil, err
	}

	lintCfg, warnings, err := cfg.ToLintConfig(lint.DefaultRegistry())
	if err != nil {
		return nil, err
	}

	mode := output.Mode(format)
	if mode == "" {
		if v, err := cmd.Root().PersistentFlags().GetString("output"); err == nil {
			mode = output.Mode(v)
		}
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	for _, w := range warnings {
		r.Errorf("warning: %s\n", w)
	}

	return &CommandContext{
		Cfg:      cfg,
		LintCfg:  lintCfg,
		Renderer: r,
	}, nil
}

// loadProjectConfig resolves the config file from the --config flag, or by
// walking up from the working directory, and layers the command's flags on
// top.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
	if cfgPath != "" {
		return config.Load(cfgPath, cmd.Flags())
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if root := config.FindProjectRoot(wd); root != "" {
		return config.LoadFromDir(root, cmd.Flags())
	}
	return config.Load("", cmd.Flags())
}

// expandPaths resolves command arguments to a sorted list of files.
// Directory arguments are walked recursively; files inside them must match
// the config's include patterns and not match an exclude pattern. Explicit
// file arguments are taken as-is.
func expandPaths(args []string, cfg *config.ProjectConfig) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if matchesAny(path, cfg.Include) && !matchesAny(path, cfg.Exclude) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// matchesAny matches the file's base name against the base of each pattern,
// so "**/*.conf" matches any .conf file at any depth.
func matchesAny(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, p := range patterns {
		if ok, err := filepath.Match(filepath.Base(p), base); err == nil && ok {
			return true
		}
	}
	return false
}

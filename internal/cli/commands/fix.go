package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintkit/internal/cli/output"
	"github.com/leapstack-labs/lintkit/internal/runner"
	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	Format string // Output format: text, json
	Write  bool   // Rewrite files in place
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix <path>...",
		Short: "Apply automatic fixes to configuration files",
		Long: `Apply fixes from auto-fixable lint rules.

Fixes are applied iteratively: after each batch of edits the file is
re-parsed and re-linted until no fixable issues remain or the iteration
limit is reached. Edits from different rules that touch overlapping
regions are skipped and reported as conflicts.

Without --write the fixed content is printed to standard output.`,
		Example: `  # Preview fixes
  lintkit fix app.conf

  # Rewrite files in place
  lintkit fix --write ./conf

  # Raise the convergence limit
  lintkit fix --write --max-fix-iterations 20 ./conf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().Int("max-fix-iterations", 0, "Maximum fix/re-lint iterations per file")

	return cmd
}

func runFix(cmd *cobra.Command, args []string, opts *FixOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	analyzer := lint.NewAnalyzer(lint.DefaultRegistry(), cmdCtx.LintCfg)

	paths, err := expandPaths(args, cmdCtx.Cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched")
	}

	run := runner.New(runner.Options{
		Analyzer:         analyzer,
		Parser:           conf.NewParser(),
		Fix:              true,
		Write:            opts.Write,
		MaxFixIterations: cmdCtx.Cfg.MaxFixIterations,
	})
	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	renderFixResults(r, results, opts.Write)

	summary := runner.Summarize(results)
	if summary.FilesFailed > 0 {
		return fmt.Errorf("%d files could not be processed", summary.FilesFailed)
	}
	return nil
}

func renderFixResults(r *output.Renderer, results []runner.FileResult, write bool) {
	if r.Mode() == output.ModeJSON {
		report := output.FixOutput{}
		for _, res := range results {
			fileResult := output.FixFileResult{Path: res.Path}
			if res.Err != nil {
				fileResult.Error = res.Err.Error()
			}
			if res.Fixed != nil {
				fileResult.Changed = res.Changed
				fileResult.EditsApplied = res.Fixed.EditsApplied
				fileResult.Iterations = res.Fixed.IterationsUsed
				for _, c := range res.Fixed.Conflicts {
					fileResult.Conflicts = append(fileResult.Conflicts, c.Error())
				}
				for _, d := range res.Fixed.Remaining {
					fileResult.Remaining = append(fileResult.Remaining, toJSONDiagnostic(d))
				}
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
		fr := res.Fixed

		if !write {
			// Preview mode: print the fixed content.
			r.Printf("%s", fr.Output)
			continue
		}

		if res.Changed {
			r.Printf("%s: applied %d edits in %d iterations\n",
				res.Path, fr.EditsApplied, fr.IterationsUsed)
		}
		for _, c := range fr.Conflicts {
			r.Errorf("%s: %v\n", res.Path, c)
		}
		if n := len(fr.Remaining); n > 0 {
			r.Errorf("%s: %d issues remain\n", res.Path, n)
		}
	}
}

package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintkit/internal/cli/output"
	"github.com/leapstack-labs/lintkit/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules.

Rules are organized by group (e.g., whitespace, structure). Pass a rule
ID to see the full details for one rule, including its config keys.`,
		Example: `  # List all rules
  lintkit rules

  # Show details for a specific rule
  lintkit rules WS01

  # List rules in the structure group
  lintkit rules --group structure

  # Output as JSON
  lintkit rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), rendererMode(cmd, opts.Format))

	rules := lint.AllRules()
	if opts.Group != "" {
		var filtered []lint.RuleInfo
		for _, info := range rules {
			if info.Group == opts.Group {
				filtered = append(filtered, info)
			}
		}
		rules = filtered
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].ID < rules[j].ID
	})

	if r.Mode() == output.ModeJSON {
		return r.JSON(rules)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Fixable", "Description"})
	for _, info := range rules {
		t.AppendRow(table.Row{
			info.ID,
			info.Name,
			info.Group,
			info.DefaultSeverity.String(),
			info.Fixable,
			info.Description,
		})
	}
	t.Render()
	r.Printf("(%d rules)\n", len(rules))
	return nil
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), rendererMode(cmd, opts.Format))

	rule, ok := lint.DefaultRegistry().Get(ruleID)
	if !ok {
		return fmt.Errorf("unknown rule: %s", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	if r.Mode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Printf("%s: %s\n", info.ID, info.Name)
	r.Printf("  Group:    %s\n", info.Group)
	r.Printf("  Severity: %s\n", info.DefaultSeverity)
	r.Printf("  Fixable:  %t\n", info.Fixable)
	r.Printf("  Kinds:    %s\n", strings.Join(info.Kinds, ", "))
	if len(info.ConfigKeys) > 0 {
		r.Printf("  Options:  %s\n", strings.Join(info.ConfigKeys, ", "))
	}
	r.Printf("\n  %s\n", info.Description)
	return nil
}

// rendererMode resolves the output mode from the command flag, falling
// back to the persistent --output flag.
func rendererMode(cmd *cobra.Command, format string) output.Mode {
	if format != "" {
		return output.Mode(format)
	}
	if v, err := cmd.Root().PersistentFlags().GetString("output"); err == nil {
		return output.Mode(v)
	}
	return output.ModeText
}

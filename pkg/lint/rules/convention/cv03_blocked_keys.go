package convention

import (
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(BlockedKeys)
}

// BlockedKeys flags keys on a configured deny list. With no "keys" option
// configured the rule reports nothing.
var BlockedKeys = lint.RuleDef{
	ID:          "CV03",
	Name:        "convention.blocked_keys",
	Group:       "convention",
	Description: "Keys on the configured deny list must not be used.",
	Severity:    lint.SeverityError,
	Kinds:       []tree.NodeKind{conf.KindKey},
	Check:       checkBlockedKeys,
	ConfigKeys:  []string{"keys"},
}

func checkBlockedKeys(node *tree.Node, ctx *lint.RuleContext) []lint.Finding {
	blocked := lint.GetStringSliceOption(ctx.Options(), "keys", nil)
	for _, name := range blocked {
		if node.Text == name {
			return []lint.Finding{{
				Span:    node.Span,
				Message: fmt.Sprintf("key %q is blocked by configuration", node.Text),
			}}
		}
	}
	return nil
}

package structure

import (
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(TopLevelEntry)
}

// TopLevelEntry suggests grouping entries under a section.
var TopLevelEntry = lint.RuleDef{
	ID:          "ST03",
	Name:        "structure.top_level_entry",
	Group:       "structure",
	Description: "Entry is not grouped under any section.",
	Severity:    lint.SeverityHint,
	Kinds:       []tree.NodeKind{conf.KindEntry},
	Check:       checkTopLevelEntry,
}

func checkTopLevelEntry(node *tree.Node, ctx *lint.RuleContext) []lint.Finding {
	parent := ctx.Parent(node)
	if parent == nil || parent.Kind != conf.KindFile {
		return nil
	}
	key := node.FirstChild(conf.KindKey)
	if key == nil {
		return nil
	}
	return []lint.Finding{{
		Span:    node.Span,
		Message: fmt.Sprintf("entry %q is outside any section", key.Text),
	}}
}

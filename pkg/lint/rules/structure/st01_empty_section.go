package structure

import (
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(EmptySection)
}

// EmptySection warns about sections that contain no entries.
var EmptySection = lint.RuleDef{
	ID:          "ST01",
	Name:        "structure.empty_section",
	Group:       "structure",
	Description: "Section contains no entries.",
	Severity:    lint.SeverityWarning,
	Kinds:       []tree.NodeKind{conf.KindSection},
	Check:       checkEmptySection,
}

func checkEmptySection(node *tree.Node, _ *lint.RuleContext) []lint.Finding {
	if len(node.ChildrenOfKind(conf.KindEntry)) > 0 {
		return nil
	}
	name := node.FirstChild(conf.KindSectionName)
	if name == nil {
		return nil
	}
	return []lint.Finding{{
		Span:    name.Span,
		Message: fmt.Sprintf("section %q has no entries", name.Text),
	}}
}

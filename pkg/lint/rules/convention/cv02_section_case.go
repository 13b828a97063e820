package convention

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(SectionCase)
}

// SectionCase requires section names to be lowercase.
var SectionCase = lint.RuleDef{
	ID:          "CV02",
	Name:        "convention.section_case",
	Group:       "convention",
	Description: "Section names must be lowercase.",
	Severity:    lint.SeverityWarning,
	Kinds:       []tree.NodeKind{conf.KindSectionName},
	Fixable:     true,
	Check:       checkSectionCase,
}

func checkSectionCase(node *tree.Node, _ *lint.RuleContext) []lint.Finding {
	lowered := strings.ToLower(node.Text)
	if lowered == node.Text {
		return nil
	}
	return []lint.Finding{{
		Span:    node.Span,
		Message: fmt.Sprintf("section name %q is not lowercase", node.Text),
		Fix: &lint.Fix{
			Description: fmt.Sprintf("rename to %q", lowered),
			Edits:       []lint.TextEdit{{Span: node.Span, NewText: lowered}},
		},
	}}
}

package whitespace

import (
	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/token"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(FinalNewline)
}

// FinalNewline requires files to end with a newline.
var FinalNewline = lint.RuleDef{
	ID:          "WS02",
	Name:        "whitespace.final_newline",
	Group:       "whitespace",
	Description: "Files must end with a newline.",
	Severity:    lint.SeverityInfo,
	Kinds:       []tree.NodeKind{conf.KindFile},
	Fixable:     true,
	Check:       checkFinalNewline,
}

func checkFinalNewline(node *tree.Node, ctx *lint.RuleContext) []lint.Finding {
	src := ctx.Source()
	if len(src) == 0 || src[len(src)-1] == '\n' {
		return nil
	}

	// The file node's span ends exactly at EOF.
	eof := token.Span{Start: node.Span.End, End: node.Span.End}
	return []lint.Finding{{
		Span:    eof,
		Message: "missing newline at end of file",
		Fix: &lint.Fix{
			Description: "add final newline",
			Edits:       []lint.TextEdit{{Span: eof, NewText: "\n"}},
		},
	}}
}

package whitespace

import (
	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/token"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(TrailingWhitespace)
}

// TrailingWhitespace flags spaces and tabs at the end of a line.
var TrailingWhitespace = lint.RuleDef{
	ID:          "WS01",
	Name:        "whitespace.trailing",
	Group:       "whitespace",
	Description: "Lines must not end with whitespace.",
	Severity:    lint.SeverityWarning,
	Kinds:       []tree.NodeKind{conf.KindFile},
	Fixable:     true,
	Check:       checkTrailingWhitespace,
}

func checkTrailingWhitespace(_ *tree.Node, ctx *lint.RuleContext) []lint.Finding {
	src := ctx.Source()
	var findings []lint.Finding

	line := 0
	lineStart := 0
	for lineStart <= len(src) {
		line++
		lineEnd := lineStart
		for lineEnd < len(src) && src[lineEnd] != '\n' {
			lineEnd++
		}

		// A carriage return belongs to the line terminator, not the content.
		contentEnd := lineEnd
		if contentEnd > lineStart && src[contentEnd-1] == '\r' {
			contentEnd--
		}
		wsStart := contentEnd
		for wsStart > lineStart && (src[wsStart-1] == ' ' || src[wsStart-1] == '\t') {
			wsStart--
		}

		// Whitespace-only lines are left to the eye; flagging them is more
		// noise than signal for indented blank lines.
		if wsStart < contentEnd && wsStart > lineStart {
			span := token.Span{
				Start: token.Position{Line: line, Column: wsStart - lineStart + 1, Offset: wsStart},
				End:   token.Position{Line: line, Column: contentEnd - lineStart + 1, Offset: contentEnd},
			}
			findings = append(findings, lint.Finding{
				Span:    span,
				Message: "trailing whitespace",
				Fix: &lint.Fix{
					Description: "remove trailing whitespace",
					Edits:       []lint.TextEdit{{Span: span, NewText: ""}},
				},
			})
		}

		if lineEnd >= len(src) {
			break
		}
		lineStart = lineEnd + 1
	}
	return findings
}

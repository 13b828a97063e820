package convention

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(KeyStyle)
}

// KeyStyle enforces a naming style for entry keys. The "style" option
// selects snake_case (default) or kebab-case.
//
// The rule suggests a rewrite but is not auto-fixable: renaming a key
// changes meaning for whatever reads the file.
var KeyStyle = lint.RuleDef{
	ID:          "CV01",
	Name:        "convention.key_style",
	Group:       "convention",
	Description: "Keys must follow the configured naming style.",
	Severity:    lint.SeverityWarning,
	Kinds:       []tree.NodeKind{conf.KindKey},
	Check:       checkKeyStyle,
	ConfigKeys:  []string{"style"},
}

func checkKeyStyle(node *tree.Node, ctx *lint.RuleContext) []lint.Finding {
	style := lint.GetStringOption(ctx.Options(), "style", "snake")
	sep := byte('_')
	if style == "kebab" {
		sep = '-'
	}

	if keyMatchesStyle(node.Text, sep) {
		return nil
	}

	finding := lint.Finding{
		Span:    node.Span,
		Message: fmt.Sprintf("key %q does not follow %s style", node.Text, styleName(sep)),
	}
	if suggestion := normalizeKey(node.Text, sep); suggestion != node.Text && keyMatchesStyle(suggestion, sep) {
		finding.Fix = &lint.Fix{
			Description: fmt.Sprintf("rename to %q", suggestion),
			Edits:       []lint.TextEdit{{Span: node.Span, NewText: suggestion}},
		}
	}
	return []lint.Finding{finding}
}

func styleName(sep byte) string {
	if sep == '-' {
		return "kebab-case"
	}
	return "snake_case"
}

func keyMatchesStyle(key string, sep byte) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == sep:
		default:
			return false
		}
	}
	return true
}

// normalizeKey converts a key to the desired style: lowercase, with any
// run of separators or uppercase boundaries collapsed to sep.
func normalizeKey(key string, sep byte) string {
	var b strings.Builder
	b.Grow(len(key) + 2)
	prevSep := true
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if !prevSep && i > 0 {
				b.WriteByte(sep)
			}
			b.WriteByte(c - 'A' + 'a')
			prevSep = false
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteByte(c)
			prevSep = false
		default:
			if !prevSep {
				b.WriteByte(sep)
			}
			prevSep = true
		}
	}
	return strings.Trim(b.String(), string(sep))
}

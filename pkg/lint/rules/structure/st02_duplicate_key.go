package structure

import (
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/conf"
	"github.com/leapstack-labs/lintkit/pkg/lint"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

func init() {
	lint.Register(DuplicateKey)
}

// DuplicateKey flags a key that repeats within one scope. Top-level entries
// and each section form separate scopes, so the rule subscribes to both the
// file and section kinds and inspects only direct entry children.
var DuplicateKey = lint.RuleDef{
	ID:          "ST02",
	Name:        "structure.duplicate_key",
	Group:       "structure",
	Description: "Key is defined more than once in the same scope.",
	Severity:    lint.SeverityError,
	Kinds:       []tree.NodeKind{conf.KindFile, conf.KindSection},
	Check:       checkDuplicateKey,
}

func checkDuplicateKey(node *tree.Node, _ *lint.RuleContext) []lint.Finding {
	var findings []lint.Finding
	first := make(map[string]*tree.Node)
	for _, entry := range node.ChildrenOfKind(conf.KindEntry) {
		key := entry.FirstChild(conf.KindKey)
		if key == nil {
			continue
		}
		if prev, seen := first[key.Text]; seen {
			findings = append(findings, lint.Finding{
				Span: key.Span,
				Message: fmt.Sprintf("key %q already defined at line %d",
					key.Text, prev.Span.Start.Line),
			})
			continue
		}
		first[key.Text] = key
	}
	return findings
}

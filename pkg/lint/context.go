package lint

import (
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// RuleContext exposes read-only traversal context to a rule invocation.
//
// The context is valid only for the duration of one Check call; rules must
// not retain it or anything reachable from it.
type RuleContext struct {
	parents *tree.ParentIndex
	src     []byte
	options map[string]any
}

// Parent returns the parent of n, or nil for the root.
func (c *RuleContext) Parent(n *tree.Node) *tree.Node {
	return c.parents.Parent(n)
}

// Ancestors returns the chain of ancestors of n, nearest first.
func (c *RuleContext) Ancestors(n *tree.Node) []*tree.Node {
	return c.parents.Ancestors(n)
}

// SiblingIndex returns n's position among its parent's children.
func (c *RuleContext) SiblingIndex(n *tree.Node) int {
	return c.parents.SiblingIndex(n)
}

// NearestAncestor returns the closest ancestor of n with the given kind.
func (c *RuleContext) NearestAncestor(n *tree.Node, kind tree.NodeKind) *tree.Node {
	return c.parents.NearestAncestor(n, kind)
}

// Source returns the raw source text of the file under analysis.
// The returned slice must not be modified.
func (c *RuleContext) Source() []byte {
	return c.src
}

// Text returns the source text covered by the node's span.
func (c *RuleContext) Text(n *tree.Node) string {
	start, end := n.Span.Start.Offset, n.Span.End.Offset
	if start < 0 || end > len(c.src) || start > end {
		return ""
	}
	return string(c.src[start:end])
}

// Options returns the rule-specific configuration options, or nil if none
// were configured. Use the GetOption helpers for typed access.
func (c *RuleContext) Options() map[string]any {
	return c.options
}

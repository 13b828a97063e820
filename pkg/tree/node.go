// Package tree defines the structural model the lint engine operates on:
// an immutable, position-annotated node tree produced by a language parser.
//
// The engine is language-agnostic. Each parser owns its closed set of node
// kinds and exposes them as NodeKind constants; the engine only uses kinds
// as dispatch keys for rule interest sets.
package tree

import "github.com/leapstack-labs/lintkit/pkg/token"

// NodeKind identifies the syntactic category of a node. The set of kinds
// is closed per language and owned by that language's parser.
type NodeKind string

// Node is a structural unit of a parsed source file.
//
// Nodes are immutable once built: parsers construct the tree bottom-up and
// hand ownership to the lint pipeline, which never mutates it. Children are
// ordered by start position and owned by their parent; there are no parent
// back-pointers (see ParentIndex for upward navigation).
type Node struct {
	Kind     NodeKind
	Span     token.Span
	Text     string // leaf token text; empty for interior nodes
	Children []*Node
}

// NewNode constructs an interior node over the given children.
func NewNode(kind NodeKind, span token.Span, children ...*Node) *Node {
	return &Node{Kind: kind, Span: span, Children: children}
}

// NewLeaf constructs a leaf node carrying token text.
func NewLeaf(kind NodeKind, span token.Span, text string) *Node {
	return &Node{Kind: kind, Span: span, Text: text}
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// FirstChild returns the first child of the given kind, or nil.
func (n *Node) FirstChild(kind NodeKind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children of the given kind.
func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Walk performs a pre-order depth-first traversal rooted at n, calling fn
// for each node. If fn returns false the node's subtree is skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}

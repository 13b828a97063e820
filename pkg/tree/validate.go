package tree

import "fmt"

// Validate checks the structural invariants required of parser output:
// every node's span contains the union of its children's spans, and sibling
// spans are disjoint and ordered by start position.
//
// Parsers are expected to produce valid trees; Validate exists for parser
// test suites and for guarding against misbehaving external parsers.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("tree: nil root")
	}
	var check func(n *Node) error
	check = func(n *Node) error {
		if !n.Span.IsValid() {
			return fmt.Errorf("tree: %s node has invalid span %s", n.Kind, n.Span)
		}
		prevEnd := -1
		for i, c := range n.Children {
			if c == nil {
				return fmt.Errorf("tree: %s node has nil child at index %d", n.Kind, i)
			}
			if !n.Span.ContainsSpan(c.Span) {
				return fmt.Errorf("tree: %s child span %s escapes parent %s span %s", c.Kind, c.Span, n.Kind, n.Span)
			}
			if c.Span.Start.Offset < prevEnd {
				return fmt.Errorf("tree: %s children overlap or are unordered at index %d (span %s)", n.Kind, i, c.Span)
			}
			prevEnd = c.Span.End.Offset
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	return check(root)
}

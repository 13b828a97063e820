package tree

// ParentIndex provides upward navigation for a tree whose nodes carry no
// parent back-pointers.
//
// The index is built once per traversal and discarded with it; it must not
// outlive the tree it was built from. Nodes are keyed by identity, which is
// safe because the tree is immutable for the index's lifetime.
type ParentIndex struct {
	parents  map[*Node]*Node
	siblings map[*Node]int // position among the parent's children
}

// BuildParentIndex walks the tree once and records each node's parent and
// sibling position.
func BuildParentIndex(root *Node) *ParentIndex {
	idx := &ParentIndex{
		parents:  make(map[*Node]*Node),
		siblings: make(map[*Node]int),
	}
	Walk(root, func(n *Node) bool {
		for i, c := range n.Children {
			idx.parents[c] = n
			idx.siblings[c] = i
		}
		return true
	})
	return idx
}

// Parent returns the parent of n, or nil for the root or unknown nodes.
func (idx *ParentIndex) Parent(n *Node) *Node {
	return idx.parents[n]
}

// Ancestors returns the chain of ancestors of n, nearest first.
func (idx *ParentIndex) Ancestors(n *Node) []*Node {
	var out []*Node
	for p := idx.parents[n]; p != nil; p = idx.parents[p] {
		out = append(out, p)
	}
	return out
}

// SiblingIndex returns n's position among its parent's children.
// The root has index 0.
func (idx *ParentIndex) SiblingIndex(n *Node) int {
	return idx.siblings[n]
}

// NearestAncestor returns the closest ancestor of n with the given kind,
// or nil if there is none.
func (idx *ParentIndex) NearestAncestor(n *Node, kind NodeKind) *Node {
	for p := idx.parents[n]; p != nil; p = idx.parents[p] {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

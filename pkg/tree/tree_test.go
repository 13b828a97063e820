package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintkit/pkg/token"
)

const (
	kindFile  NodeKind = "file"
	kindBlock NodeKind = "block"
	kindIdent NodeKind = "ident"
)

func sp(start, end int) token.Span {
	return token.Span{
		Start: token.Position{Line: 1, Column: start + 1, Offset: start},
		End:   token.Position{Line: 1, Column: end + 1, Offset: end},
	}
}

// buildTree returns:
//
//	file [0,10)
//	├── block [0,4)
//	│   └── ident [1,3)
//	└── ident [5,9)
func buildTree() (*Node, *Node, *Node, *Node) {
	inner := NewLeaf(kindIdent, sp(1, 3), "ab")
	block := NewNode(kindBlock, sp(0, 4), inner)
	second := NewLeaf(kindIdent, sp(5, 9), "cdef")
	file := NewNode(kindFile, sp(0, 10), block, second)
	return file, block, inner, second
}

func TestWalkPreOrder(t *testing.T) {
	file, _, _, _ := buildTree()

	var kinds []NodeKind
	Walk(file, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	assert.Equal(t, []NodeKind{kindFile, kindBlock, kindIdent, kindIdent}, kinds)
	assert.Equal(t, 4, Count(file))
}

func TestWalkSkipsSubtree(t *testing.T) {
	file, _, _, _ := buildTree()

	var kinds []NodeKind
	Walk(file, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != kindBlock
	})

	assert.Equal(t, []NodeKind{kindFile, kindBlock, kindIdent}, kinds)
}

func TestParentIndex(t *testing.T) {
	file, block, inner, second := buildTree()
	idx := BuildParentIndex(file)

	assert.Nil(t, idx.Parent(file))
	assert.Same(t, file, idx.Parent(block))
	assert.Same(t, block, idx.Parent(inner))

	assert.Equal(t, []*Node{block, file}, idx.Ancestors(inner))
	assert.Empty(t, idx.Ancestors(file))

	assert.Equal(t, 0, idx.SiblingIndex(block))
	assert.Equal(t, 1, idx.SiblingIndex(second))

	assert.Same(t, file, idx.NearestAncestor(inner, kindFile))
	assert.Nil(t, idx.NearestAncestor(inner, kindIdent))
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	file, _, _, _ := buildTree()
	require.NoError(t, Validate(file))
}

func TestValidateRejectsEscapingChild(t *testing.T) {
	child := NewLeaf(kindIdent, sp(5, 15), "x")
	root := NewNode(kindFile, sp(0, 10), child)

	err := Validate(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes parent")
}

func TestValidateRejectsOverlappingSiblings(t *testing.T) {
	a := NewLeaf(kindIdent, sp(0, 5), "a")
	b := NewLeaf(kindIdent, sp(4, 8), "b")
	root := NewNode(kindFile, sp(0, 10), a, b)

	err := Validate(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestValidateRejectsUnorderedSiblings(t *testing.T) {
	a := NewLeaf(kindIdent, sp(6, 8), "a")
	b := NewLeaf(kindIdent, sp(0, 5), "b")
	root := NewNode(kindFile, sp(0, 10), a, b)

	require.Error(t, Validate(root))
}

func TestNodeChildLookup(t *testing.T) {
	file, block, _, second := buildTree()

	assert.Same(t, block, file.FirstChild(kindBlock))
	assert.Nil(t, file.FirstChild("missing"))
	assert.Equal(t, []*Node{second}, file.ChildrenOfKind(kindIdent))
	assert.True(t, second.IsLeaf())
	assert.False(t, file.IsLeaf())
}

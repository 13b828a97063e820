package lint

import (
	"bytes"

	"github.com/leapstack-labs/lintkit/pkg/token"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// Test language: whitespace-separated words. The parser rejects any input
// containing "<bad>" so tests can trigger parse failures on demand.
const (
	kindFile tree.NodeKind = "test.file"
	kindWord tree.NodeKind = "test.word"
)

type testParser struct{}

func (testParser) Name() string { return "testlang" }

func (testParser) Parse(src []byte) (*tree.Node, error) {
	if i := bytes.Index(src, []byte("<bad>")); i >= 0 {
		return nil, &tree.SyntaxError{
			Span:    wordSpan(src, i, i+5),
			Message: "malformed input",
		}
	}

	var words []*tree.Node
	start := -1
	for i := 0; i <= len(src); i++ {
		boundary := i == len(src) || src[i] == ' ' || src[i] == '\n' || src[i] == '\t'
		switch {
		case !boundary && start < 0:
			start = i
		case boundary && start >= 0:
			words = append(words, tree.NewLeaf(kindWord, wordSpan(src, start, i), string(src[start:i])))
			start = -1
		}
	}

	return tree.NewNode(kindFile, wordSpan(src, 0, len(src)), words...), nil
}

// wordSpan computes line/column positions for a byte range of src.
func wordSpan(src []byte, start, end int) token.Span {
	return token.Span{Start: posAt(src, start), End: posAt(src, end)}
}

func posAt(src []byte, offset int) token.Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return token.Position{Line: line, Column: col, Offset: offset}
}

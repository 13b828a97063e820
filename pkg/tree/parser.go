package tree

import (
	"fmt"

	"github.com/leapstack-labs/lintkit/pkg/token"
)

// Parser converts source text into a node tree.
//
// Implementations must either return a tree that satisfies Validate (spans
// contained in parents, siblings disjoint and ordered) or a *SyntaxError
// locating the first offending construct. Any other error type is treated
// as a parser bug by the pipeline.
type Parser interface {
	// Name returns the language name, e.g. "conf".
	Name() string

	// Parse builds a node tree from src.
	Parse(src []byte) (*Node, error)
}

// SyntaxError reports malformed input that prevented tree construction.
type SyntaxError struct {
	Span    token.Span
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// Package token provides source positions and spans shared by parsers,
// rules, and the fix engine.
package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
	Offset int `json:"-"`      // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes before other in the source.
// Comparison is by byte offset.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in source code. The range is half-open over
// byte offsets: [Start.Offset, End.Offset).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NewSpan constructs a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// IsValid returns true if both positions are valid and start <= end.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Offset <= s.End.Offset
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Empty returns true if the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// ContainsSpan returns true if other lies entirely within s.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start.Offset >= s.Start.Offset && other.End.Offset <= s.End.Offset
}

// Overlaps reports whether two spans share at least one byte. An empty
// span overlaps a non-empty one when its position falls inside the
// other's range. Two empty spans never overlap.
func (s Span) Overlaps(other Span) bool {
	if s.Empty() && other.Empty() {
		return false
	}
	if s.Empty() {
		return other.Start.Offset <= s.Start.Offset && s.Start.Offset < other.End.Offset
	}
	if other.Empty() {
		return s.Start.Offset <= other.Start.Offset && other.Start.Offset < s.End.Offset
	}
	return s.Start.Offset < other.End.Offset && other.Start.Offset < s.End.Offset
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start.Offset < s.Start.Offset {
		s.Start = other.Start
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

// String returns the span as "startLine:startCol-endLine:endCol".
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

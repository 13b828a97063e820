package conf

import (
	"bytes"

	"github.com/leapstack-labs/lintkit/pkg/token"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// Parser parses the conf language: "[section]" headers, "key = value"
// entries, and "#" comments, one construct per line.
type Parser struct{}

// NewParser creates a conf parser.
func NewParser() *Parser {
	return &Parser{}
}

// Name returns the language name.
func (p *Parser) Name() string {
	return "conf"
}

// Parse builds a node tree from src. The returned tree satisfies
// tree.Validate: sibling spans are disjoint and ordered, and every parent
// span contains its children.
func (p *Parser) Parse(src []byte) (*tree.Node, error) {
	b := &builder{src: src}
	if err := b.run(); err != nil {
		return nil, err
	}
	return b.finish(), nil
}

// builder accumulates file and section children while scanning lines.
type builder struct {
	src []byte

	fileChildren []*tree.Node

	// Open section state; sectionName is nil when no section is open.
	sectionName     *tree.Node
	sectionStart    token.Position
	sectionEnd      token.Position // end of the last construct in the section
	sectionChildren []*tree.Node
}

// pos returns the position of the byte at offset, given the line it is on
// and that line's starting offset.
func (b *builder) pos(line, lineStart, offset int) token.Position {
	return token.Position{Line: line, Column: offset - lineStart + 1, Offset: offset}
}

func (b *builder) run() error {
	line := 0
	lineStart := 0
	for lineStart <= len(b.src) {
		line++
		lineEnd := lineStart
		for lineEnd < len(b.src) && b.src[lineEnd] != '\n' {
			lineEnd++
		}
		if err := b.scanLine(line, lineStart, lineEnd); err != nil {
			return err
		}
		if lineEnd >= len(b.src) {
			break
		}
		lineStart = lineEnd + 1
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// scanLine classifies one line and appends the resulting node.
func (b *builder) scanLine(line, lineStart, lineEnd int) error {
	first := lineStart
	for first < lineEnd && isSpace(b.src[first]) {
		first++
	}
	if first == lineEnd {
		return nil // blank line
	}
	// Trailing whitespace stays outside node spans; the whitespace rules
	// inspect raw source lines instead.
	last := lineEnd
	for last > first && isSpace(b.src[last-1]) {
		last--
	}

	switch b.src[first] {
	case '#':
		b.append(tree.NewLeaf(KindComment, b.span(line, lineStart, first, last), string(b.src[first:last])))
		return nil
	case '[':
		return b.scanSectionHeader(line, lineStart, first, last)
	default:
		return b.scanEntry(line, lineStart, first, last)
	}
}

func (b *builder) scanSectionHeader(line, lineStart, first, last int) error {
	rbracket := bytes.IndexByte(b.src[first:last], ']')
	if rbracket < 0 {
		return &tree.SyntaxError{
			Span:    b.span(line, lineStart, first, last),
			Message: "unterminated section header",
		}
	}
	rbracket += first

	nameStart := first + 1
	nameEnd := rbracket
	for nameStart < nameEnd && isSpace(b.src[nameStart]) {
		nameStart++
	}
	for nameEnd > nameStart && isSpace(b.src[nameEnd-1]) {
		nameEnd--
	}
	if nameStart == nameEnd {
		return &tree.SyntaxError{
			Span:    b.span(line, lineStart, first, rbracket+1),
			Message: "empty section name",
		}
	}

	rest := rbracket + 1
	for rest < last && isSpace(b.src[rest]) {
		rest++
	}
	if rest < last && b.src[rest] != '#' {
		return &tree.SyntaxError{
			Span:    b.span(line, lineStart, rest, last),
			Message: "unexpected text after section header",
		}
	}

	b.flushSection()
	b.sectionName = tree.NewLeaf(KindSectionName, b.span(line, lineStart, nameStart, nameEnd), string(b.src[nameStart:nameEnd]))
	b.sectionStart = b.pos(line, lineStart, first)
	b.sectionEnd = b.pos(line, lineStart, rbracket+1)

	if rest < last {
		// Trailing comment on the header line belongs to the section.
		b.append(tree.NewLeaf(KindComment, b.span(line, lineStart, rest, last), string(b.src[rest:last])))
	}
	return nil
}

func (b *builder) scanEntry(line, lineStart, first, last int) error {
	eq := bytes.IndexByte(b.src[first:last], '=')
	if eq < 0 {
		return &tree.SyntaxError{
			Span:    b.span(line, lineStart, first, last),
			Message: "expected 'key = value'",
		}
	}
	eq += first

	keyEnd := eq
	for keyEnd > first && isSpace(b.src[keyEnd-1]) {
		keyEnd--
	}
	if keyEnd == first {
		return &tree.SyntaxError{
			Span:    b.span(line, lineStart, first, eq+1),
			Message: "empty key",
		}
	}

	valStart := eq + 1
	for valStart < last && isSpace(b.src[valStart]) {
		valStart++
	}

	key := tree.NewLeaf(KindKey, b.span(line, lineStart, first, keyEnd), string(b.src[first:keyEnd]))
	value := tree.NewLeaf(KindValue, b.span(line, lineStart, valStart, last), string(b.src[valStart:last]))
	entry := tree.NewNode(KindEntry, b.span(line, lineStart, first, last), key, value)
	b.append(entry)
	return nil
}

func (b *builder) span(line, lineStart, start, end int) token.Span {
	return token.Span{
		Start: b.pos(line, lineStart, start),
		End:   b.pos(line, lineStart, end),
	}
}

// append adds a node to the open section, or to the file when no section
// is open.
func (b *builder) append(n *tree.Node) {
	if b.sectionName != nil {
		b.sectionChildren = append(b.sectionChildren, n)
		if n.Span.End.Offset > b.sectionEnd.Offset {
			b.sectionEnd = n.Span.End
		}
		return
	}
	b.fileChildren = append(b.fileChildren, n)
}

// flushSection closes the open section, if any, and appends it to the file.
func (b *builder) flushSection() {
	if b.sectionName == nil {
		return
	}
	children := make([]*tree.Node, 0, len(b.sectionChildren)+1)
	children = append(children, b.sectionName)
	children = append(children, b.sectionChildren...)
	span := token.Span{Start: b.sectionStart, End: b.sectionEnd}
	b.fileChildren = append(b.fileChildren, tree.NewNode(KindSection, span, children...))
	b.sectionName = nil
	b.sectionChildren = nil
}

// finish closes any open section and wraps everything in the file node.
func (b *builder) finish() *tree.Node {
	b.flushSection()
	end := token.Position{Line: 1, Column: 1, Offset: 0}
	if n := len(b.src); n > 0 {
		lines := 1 + bytes.Count(b.src, []byte{'\n'})
		lastNL := bytes.LastIndexByte(b.src, '\n')
		end = token.Position{Line: lines, Column: n - lastNL, Offset: n}
	}
	span := token.Span{
		Start: token.Position{Line: 1, Column: 1, Offset: 0},
		End:   end,
	}
	return tree.NewNode(KindFile, span, b.fileChildren...)
}

// Package jsx locates JSX elements and their attributes inside a JavaScript
// or TypeScript source unit and applies text edits back to that source.
//
// It does not build a syntax tree. The unit is walked with the tdewolff
// JavaScript lexer, and whenever a "<" appears in expression position the
// element is scanned by hand. Every element and attribute records byte
// offsets into the original source so callers can rewrite attributes in
// place without reprinting the rest of the file.
package jsx

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// AttributeKind describes how an attribute value was written.
type AttributeKind int

const (
	// AttributeBoolean is a bare attribute name: <div hidden />
	AttributeBoolean AttributeKind = iota
	// AttributeString is a quoted value: <div id="a" />
	AttributeString
	// AttributeExpression is a container value: <div mb={2} />
	AttributeExpression
	// AttributeSpread is a spread container: <div {...props} />
	AttributeSpread
)

func (k AttributeKind) String() string {
	switch k {
	case AttributeBoolean:
		return "boolean"
	case AttributeString:
		return "string"
	case AttributeExpression:
		return "expression"
	case AttributeSpread:
		return "spread"
	}
	return fmt.Sprintf("AttributeKind(%d)", int(k))
}

// Attribute is one attribute of an opening tag.
type Attribute struct {
	Name  string
	Kind  AttributeKind
	Value string // string content without quotes, or expression source without braces
	Quote byte   // quote character of a string value

	Start int // first byte of the name (or "{" of a spread)
	End   int // byte after the value

	ValueStart int // first byte of Value
	ValueEnd   int // byte after Value
}

// Element is a JSX element or fragment.
type Element struct {
	Name        string // "" for fragments
	Fragment    bool
	SelfClosing bool
	Attributes  []*Attribute

	Start   int // offset of "<"
	AttrEnd int // offset right after the tag name or the last attribute
	End     int // offset after "/>" or after the closing tag
}

// Attribute returns the first attribute called name, or nil.
func (e *Element) Attribute(name string) *Attribute {
	for _, attr := range e.Attributes {
		if attr.Kind != AttributeSpread && attr.Name == name {
			return attr
		}
	}
	return nil
}

// Document is a scanned source unit.
type Document struct {
	Name     string
	Source   string
	Elements []*Element // document order: parents before children
}

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// Position converts a byte offset of the source into a line and column.
func (d *Document) Position(offset int) Position {
	return position(d.Source, offset)
}

// Line returns the source line containing offset, without its terminator.
func (d *Document) Line(offset int) string {
	if offset < 0 || offset > len(d.Source) {
		return ""
	}
	start := strings.LastIndexByte(d.Source[:offset], '\n') + 1
	end := strings.IndexByte(d.Source[offset:], '\n')
	if end < 0 {
		end = len(d.Source)
	} else {
		end += offset
	}
	return strings.TrimRight(d.Source[start:end], "\r")
}

func position(src string, offset int) Position {
	line, col, _ := parse.Position(strings.NewReader(src), offset)
	return Position{Line: line, Column: col}
}

// ParseError reports malformed markup or script.
type ParseError struct {
	Name    string
	Offset  int
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Pos.Line, e.Pos.Column, e.Message)
}

// Parse scans src and returns every JSX element it contains.
func Parse(name, src string) (*Document, error) {
	s := newScanner(name, src)
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

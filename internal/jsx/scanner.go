package jsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// scanner shares one parse.Input between the JavaScript lexer and the
// hand-written JSX reader. Before the lexer resumes, the input selection is
// collapsed with Skip so the lexer starts at the current position.
type scanner struct {
	src   string
	in    *parse.Input
	lexer *js.Lexer
	doc   *Document
}

func newScanner(name, src string) *scanner {
	in := parse.NewInputString(src)
	return &scanner{
		src:   src,
		in:    in,
		lexer: js.NewLexer(in),
		doc:   &Document{Name: name, Source: src},
	}
}

func (s *scanner) run() error {
	_, err := s.script(false)
	return err
}

func (s *scanner) errorf(offset int, format string, args ...interface{}) error {
	return &ParseError{
		Name:    s.doc.Name,
		Offset:  offset,
		Pos:     position(s.src, offset),
		Message: fmt.Sprintf(format, args...),
	}
}

func (s *scanner) offset() int { return s.in.Offset() }

// peek returns the byte i positions ahead, or 0 past the end.
func (s *scanner) peek(i int) byte {
	if s.in.Offset()+i >= s.in.Len() {
		return 0
	}
	return s.in.Peek(i)
}

func (s *scanner) eof() bool { return s.in.Offset() >= s.in.Len() }

func (s *scanner) move(n int) { s.in.Move(n) }

func (s *scanner) next() (js.TokenType, []byte) {
	s.in.Skip()
	return s.lexer.Next()
}

// script lexes JavaScript. With inContainer set it stops after the brace
// closing the current container and returns the offset of that brace.
func (s *scanner) script(inContainer bool) (int, error) {
	depth := 0
	prev := js.ErrorToken
	for {
		tt, text := s.next()
		switch tt {
		case js.ErrorToken:
			if err := s.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return 0, s.errorf(s.offset(), "%s", lexerMessage(err))
			}
			if inContainer {
				return 0, s.errorf(s.offset(), "unterminated expression container")
			}
			return s.offset(), nil

		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue

		case js.OpenBraceToken:
			depth++

		case js.CloseBraceToken:
			if depth == 0 {
				if inContainer {
					return s.offset() - len(text), nil
				}
				return 0, s.errorf(s.offset()-1, "unexpected }")
			}
			depth--

		case js.LtToken:
			if !endsValue(prev) && s.startsElement() {
				if err := s.element(s.offset() - 1); err != nil {
					return 0, err
				}
				prev = js.IdentifierToken
				continue
			}

		case js.DivToken, js.DivEqToken:
			if !endsValue(prev) {
				if tt, _ = s.lexer.RegExp(); tt == js.ErrorToken {
					return 0, s.errorf(s.offset(), "%s", lexerMessage(s.lexer.Err()))
				}
			}
		}
		prev = tt
	}
}

// endsValue reports whether a token can end an operand, in which case a
// following "<" or "/" is an operator.
func endsValue(tt js.TokenType) bool {
	if js.IsIdentifier(tt) || js.IsNumeric(tt) {
		return true
	}
	switch tt {
	case js.StringToken, js.TemplateToken, js.TemplateEndToken, js.RegExpToken,
		js.PrivateIdentifierToken, js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken,
		js.ThisToken, js.SuperToken, js.TrueToken, js.FalseToken, js.NullToken,
		js.IncrToken, js.DecrToken:
		return true
	}
	return false
}

func lexerMessage(err error) string {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}

// startsElement reports whether the "<" just consumed opens a JSX element.
func (s *scanner) startsElement() bool {
	c := s.peek(0)
	return c == '>' || isNameStart(c)
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$' || c >= 0x80
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-'
}

func (s *scanner) name(extra byte) string {
	start := s.offset()
	for !s.eof() {
		c := s.peek(0)
		if !isNameChar(c) && c != ':' && c != extra {
			break
		}
		s.move(1)
	}
	return s.src[start:s.offset()]
}

// skipSpace skips whitespace and comments inside a tag.
func (s *scanner) skipSpace() error {
	for !s.eof() {
		switch c := s.peek(0); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			s.move(1)
		case c == '/' && s.peek(1) == '*':
			start := s.offset()
			end := strings.Index(s.src[start+2:], "*/")
			if end < 0 {
				return s.errorf(start, "unterminated comment")
			}
			s.move(end + 4)
		case c == '/' && s.peek(1) == '/':
			end := strings.IndexByte(s.src[s.offset():], '\n')
			if end < 0 {
				end = len(s.src) - s.offset()
			}
			s.move(end)
		default:
			return nil
		}
	}
	return nil
}

// element scans an element whose "<" is at start; the input is positioned
// right after it.
func (s *scanner) element(start int) error {
	el := &Element{Start: start}
	s.doc.Elements = append(s.doc.Elements, el)

	if err := s.skipSpace(); err != nil {
		return err
	}
	if s.peek(0) == '>' {
		el.Fragment = true
		el.AttrEnd = s.offset()
		s.move(1)
		return s.children(el)
	}

	el.Name = s.name('.')
	if el.Name == "" {
		return s.errorf(s.offset(), "expected element name")
	}
	el.AttrEnd = s.offset()

	for {
		if err := s.skipSpace(); err != nil {
			return err
		}
		c := s.peek(0)
		switch {
		case s.eof():
			return s.errorf(el.Start, "unterminated <%s> tag", el.Name)
		case c == '/' && s.peek(1) == '>':
			s.move(2)
			el.SelfClosing = true
			el.End = s.offset()
			return nil
		case c == '>':
			s.move(1)
			return s.children(el)
		case c == '{':
			attr, err := s.spread()
			if err != nil {
				return err
			}
			el.Attributes = append(el.Attributes, attr)
			el.AttrEnd = attr.End
		case isNameStart(c):
			attr, err := s.attribute()
			if err != nil {
				return err
			}
			el.Attributes = append(el.Attributes, attr)
			el.AttrEnd = attr.End
		default:
			return s.errorf(s.offset(), "unexpected %q in <%s> tag", c, el.Name)
		}
	}
}

func (s *scanner) attribute() (*Attribute, error) {
	attr := &Attribute{Start: s.offset(), Kind: AttributeBoolean}
	attr.Name = s.name(0)
	attr.End = s.offset()
	attr.ValueStart, attr.ValueEnd = attr.End, attr.End

	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	if s.peek(0) != '=' {
		return attr, nil
	}
	s.move(1)
	if err := s.skipSpace(); err != nil {
		return nil, err
	}

	switch c := s.peek(0); c {
	case '"', '\'':
		end := strings.IndexByte(s.src[s.offset()+1:], c)
		if end < 0 {
			return nil, s.errorf(s.offset(), "unterminated string in attribute %s", attr.Name)
		}
		attr.Kind = AttributeString
		attr.Quote = c
		attr.ValueStart = s.offset() + 1
		attr.ValueEnd = attr.ValueStart + end
		s.move(end + 2)
	case '{':
		attr.Kind = AttributeExpression
		if tt, _ := s.next(); tt != js.OpenBraceToken {
			return nil, s.errorf(s.offset(), "expected { in attribute %s", attr.Name)
		}
		attr.ValueStart = s.offset()
		end, err := s.script(true)
		if err != nil {
			return nil, err
		}
		attr.ValueEnd = end
	case '<':
		attr.Kind = AttributeExpression
		attr.ValueStart = s.offset()
		s.move(1)
		if err := s.element(attr.ValueStart); err != nil {
			return nil, err
		}
		attr.ValueEnd = s.offset()
	default:
		return nil, s.errorf(s.offset(), "expected value for attribute %s", attr.Name)
	}

	attr.End = s.offset()
	attr.Value = s.src[attr.ValueStart:attr.ValueEnd]
	if attr.Kind == AttributeExpression {
		attr.Value = strings.TrimSpace(attr.Value)
	}
	return attr, nil
}

func (s *scanner) spread() (*Attribute, error) {
	attr := &Attribute{Start: s.offset(), Kind: AttributeSpread}
	if tt, _ := s.next(); tt != js.OpenBraceToken {
		return nil, s.errorf(attr.Start, "expected {")
	}
	inner := s.offset()
	end, err := s.script(true)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(s.src[inner:end])
	if !strings.HasPrefix(value, "...") {
		return nil, s.errorf(attr.Start, "expected spread attribute")
	}
	attr.Value = strings.TrimSpace(value[3:])
	attr.ValueStart = inner
	attr.ValueEnd = end
	attr.End = s.offset()
	return attr, nil
}

// children scans element content up to and including the closing tag.
func (s *scanner) children(el *Element) error {
	for {
		if s.eof() {
			return s.errorf(el.Start, "unterminated <%s> element", el.Name)
		}
		switch s.peek(0) {
		case '<':
			if s.peek(1) == '/' {
				return s.closing(el)
			}
			start := s.offset()
			s.move(1)
			if err := s.element(start); err != nil {
				return err
			}
		case '{':
			s.next()
			if _, err := s.script(true); err != nil {
				return err
			}
		default:
			s.move(1)
		}
	}
}

func (s *scanner) closing(el *Element) error {
	start := s.offset()
	s.move(2)
	if err := s.skipSpace(); err != nil {
		return err
	}
	name := s.name('.')
	if err := s.skipSpace(); err != nil {
		return err
	}
	if s.peek(0) != '>' {
		return s.errorf(s.offset(), "expected > in closing tag")
	}
	s.move(1)
	if name != el.Name {
		return s.errorf(start, "closing tag </%s> does not match <%s>", name, el.Name)
	}
	el.End = s.offset()
	return nil
}

package expr

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// splitElements cuts the text between the brackets of an array literal at
// its top-level commas. Strings, templates and comments are skipped by the
// lexer so commas inside them do not split, and comments are dropped from
// the parts. A trailing comma produces no element. Empty input yields no
// elements.
func splitElements(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return nil
	}

	var parts []string
	lexer := js.NewLexer(parse.NewInputString(inner))
	depth, start, pos := 0, 0, 0
	for {
		tt, text := lexer.Next()
		if tt == js.ErrorToken {
			break
		}
		switch tt {
		case js.OpenParenToken, js.OpenBracketToken, js.OpenBraceToken, js.TemplateStartToken:
			depth++
		case js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken, js.TemplateEndToken:
			depth--
		case js.CommaToken:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(stripComments(inner[start:pos])))
				start = pos + len(text)
			}
		}
		pos += len(text)
	}

	if last := strings.TrimSpace(stripComments(inner[start:])); last != "" {
		parts = append(parts, last)
	}
	return parts
}

// stripComments replaces every comment in src with a single space. Source
// the lexer cannot read is returned unchanged.
func stripComments(src string) string {
	if !strings.Contains(src, "/") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	lexer := js.NewLexer(parse.NewInputString(src))
	for {
		tt, text := lexer.Next()
		switch tt {
		case js.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return src
			}
			return b.String()
		case js.CommentToken, js.CommentLineTerminatorToken:
			b.WriteByte(' ')
		default:
			b.Write(text)
		}
	}
}

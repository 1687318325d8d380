package spacing

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Stylesheet renders every rule of table: unconditional rules first, then one
// media query per breakpoint in configured order. The result is
// whitespace-stripped.
func Stylesheet(table *RuleTable, opts Options) (string, error) {
	buckets, err := orderBuckets(table.Drain(), opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, bucket := range buckets {
		if bucket.Key == DefaultBreakpoint {
			writeRules(&b, bucket.Rules, "")
			continue
		}
		minWidth, _ := opts.MinWidth(bucket.Key)
		fmt.Fprintf(&b, "@media (min-width: %s) {\n", minWidth)
		writeRules(&b, bucket.Rules, "  ")
		b.WriteString("}\n")
	}
	return StripWhitespace(b.String())
}

func writeRules(b *strings.Builder, rules []Rule, indent string) {
	for _, r := range rules {
		fmt.Fprintf(b, "%s.%s { %s }\n", indent, r.Class, r.Declaration)
	}
}

// orderBuckets puts the default bucket first and the rest in breakpoint order.
func orderBuckets(buckets []Bucket, opts Options) ([]Bucket, error) {
	rank := map[string]int{DefaultBreakpoint: 0}
	for i, bp := range opts.Breakpoints {
		rank[bp.Label] = i + 1
	}
	for _, b := range buckets {
		if _, ok := rank[b.Key]; !ok {
			return nil, fmt.Errorf("no breakpoint configured for rules under %q", b.Key)
		}
	}

	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Key] < rank[out[j].Key]
	})
	return out, nil
}

// StripWhitespace removes whitespace and comments from CSS. A single space
// survives after an at-keyword and between two value tokens that would
// otherwise merge, as in "0 auto" or "1rem + 2px". Dropping those would
// turn valid declarations into different or invalid ones ("0auto").
func StripWhitespace(src string) (string, error) {
	lexer := css.NewLexer(parse.NewInputString(src))

	var b strings.Builder
	b.Grow(len(src))
	prev := css.ErrorToken
	gap := false
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("stripping stylesheet: %w", err)
			}
			return b.String(), nil
		case css.WhitespaceToken, css.CommentToken:
			gap = true
			continue
		}

		if gap && needsSpace(prev, tt) {
			b.WriteByte(' ')
		}
		gap = false
		b.Write(text)
		prev = tt
	}
}

func needsSpace(prev, next css.TokenType) bool {
	if prev == css.AtKeywordToken {
		return true
	}
	switch prev {
	case css.ErrorToken, css.FunctionToken, css.ColonToken, css.SemicolonToken, css.CommaToken,
		css.LeftBraceToken, css.RightBraceToken, css.LeftParenthesisToken, css.LeftBracketToken,
		css.CDOToken, css.CDCToken:
		return false
	}
	switch next {
	case css.ColonToken, css.SemicolonToken, css.CommaToken,
		css.LeftBraceToken, css.RightBraceToken, css.RightParenthesisToken, css.RightBracketToken:
		return false
	}
	return true
}

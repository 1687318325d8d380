// Package expr classifies the JavaScript expressions found inside JSX
// attribute containers into the small set of shapes the spacing compiler
// understands.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"
	"github.com/dop251/goja/token"
)

// Value is one of Number, String, Dynamic or Array.
type Value interface {
	isValue()
}

// Number is a numeric literal, optionally negated.
type Number struct {
	Value float64
	Raw   string // literal text as written, "-2", "1.5", "0x10"
}

// String is a string literal or a template literal without substitutions.
type String struct {
	Value string // cooked value
	Raw   string // literal text including quotes
}

// Dynamic is a runtime value the compiler can only reference by source.
type Dynamic struct {
	Source string // exact source text
	Shape  string // "identifier", "conditional expression", ...
}

// Array is a responsive value list; element i targets breakpoint position i.
type Array struct {
	Elements []Value
	Sources  []string
}

func (Number) isValue()  {}
func (String) isValue()  {}
func (Dynamic) isValue() {}
func (Array) isValue()   {}

// Shapes reported for dynamic values.
const (
	ShapeIdentifier  = "identifier"
	ShapeConditional = "conditional expression"
	ShapeLogical     = "logical expression"
	ShapeTemplate    = "template literal"
)

// UnsupportedError reports an expression whose shape has no meaning as a
// spacing value.
type UnsupportedError struct {
	Shape  string
	Source string
	Offset int // byte offset of the offending node inside the parsed source
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Shape, e.Source)
}

// SyntaxError wraps a parse failure of an attribute expression.
type SyntaxError struct {
	Source string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression %q: %v", e.Source, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// ErrNotTemplate is returned by ParseTemplate when the source is not a single
// untagged template literal.
var ErrNotTemplate = errors.New("not an untagged template literal")

// parseExpression parses src as a single parenthesised expression. The
// returned offset converts goja indices into byte offsets of src.
func parseExpression(src string) (ast.Expression, int, error) {
	// base 1 plus the leading paren
	const shift = 2

	program, err := parser.ParseFile(nil, "", "("+src+"\n)", 0, parser.WithDisableSourceMaps)
	if err != nil {
		return nil, 0, &SyntaxError{Source: src, Err: err}
	}
	if len(program.Body) != 1 {
		return nil, 0, &SyntaxError{Source: src, Err: errors.New("expected a single expression")}
	}
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, 0, &SyntaxError{Source: src, Err: errors.New("expected an expression")}
	}
	return stmt.Expression, shift, nil
}

// Parse classifies the source of one attribute expression.
func Parse(src string) (Value, error) {
	node, shift, err := parseExpression(src)
	if err != nil {
		return nil, err
	}
	c := classifier{src: src, shift: shift}
	return c.value(node, strings.TrimSpace(stripComments(src)), true)
}

// ParseTemplate checks that src is exactly one untagged template literal.
func ParseTemplate(src string) error {
	node, shift, err := parseExpression(src)
	if err != nil {
		return err
	}
	tpl, ok := node.(*ast.TemplateLiteral)
	if !ok || tpl.Tag != nil {
		return ErrNotTemplate
	}
	if int(tpl.Idx0())-shift != 0 || int(tpl.Idx1())-shift != len(src) {
		return ErrNotTemplate
	}
	return nil
}

type classifier struct {
	src   string
	shift int
}

func (c classifier) slice(node ast.Node) string {
	start := int(node.Idx0()) - c.shift
	end := int(node.Idx1()) - c.shift
	if start < 0 || end > len(c.src) || start > end {
		return ""
	}
	return c.src[start:end]
}

func (c classifier) unsupported(node ast.Node, shape string) error {
	return &UnsupportedError{
		Shape:  shape,
		Source: c.slice(node),
		Offset: int(node.Idx0()) - c.shift,
	}
}

// value maps a goja node to a Value. source is the text the node came from,
// including any wrapping parentheses and without comments.
func (c classifier) value(node ast.Expression, source string, top bool) (Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return Number{Value: numberValue(n.Value), Raw: n.Literal}, nil

	case *ast.UnaryExpression:
		lit, ok := n.Operand.(*ast.NumberLiteral)
		if !ok || n.Postfix || (n.Operator != token.MINUS && n.Operator != token.PLUS) {
			return nil, c.unsupported(n, ShapeOf(n))
		}
		v := numberValue(lit.Value)
		if n.Operator == token.MINUS {
			v = -v
		}
		return Number{Value: v, Raw: strings.TrimSpace(source)}, nil

	case *ast.StringLiteral:
		return String{Value: n.Value.String(), Raw: n.Literal}, nil

	case *ast.TemplateLiteral:
		if n.Tag != nil {
			return nil, c.unsupported(n, ShapeOf(n))
		}
		if len(n.Expressions) == 0 && len(n.Elements) == 1 {
			return String{Value: n.Elements[0].Parsed.String(), Raw: c.slice(n)}, nil
		}
		return Dynamic{Source: source, Shape: ShapeTemplate}, nil

	case *ast.Identifier:
		return Dynamic{Source: source, Shape: ShapeIdentifier}, nil

	case *ast.ConditionalExpression:
		return Dynamic{Source: source, Shape: ShapeConditional}, nil

	case *ast.BinaryExpression:
		switch n.Operator {
		case token.LOGICAL_AND, token.LOGICAL_OR, token.COALESCE:
			return Dynamic{Source: source, Shape: ShapeLogical}, nil
		}
		return nil, c.unsupported(n, ShapeOf(n))

	case *ast.ArrayLiteral:
		if !top {
			return nil, c.unsupported(n, "nested array")
		}
		return c.array(n)
	}

	return nil, c.unsupported(node, ShapeOf(node))
}

func (c classifier) array(n *ast.ArrayLiteral) (Value, error) {
	for _, el := range n.Value {
		if el == nil {
			return nil, &UnsupportedError{Shape: "array hole", Source: c.slice(n), Offset: int(n.Idx0()) - c.shift}
		}
		if spread, ok := el.(*ast.SpreadElement); ok {
			return nil, c.unsupported(spread.Expression, "spread element")
		}
	}

	inner := c.src[int(n.LeftBracket)-c.shift+1 : int(n.RightBracket)-c.shift]
	sources := splitElements(inner)
	if len(sources) != len(n.Value) {
		sources = make([]string, len(n.Value))
		for i, el := range n.Value {
			sources[i] = c.slice(el)
		}
	}

	arr := Array{
		Elements: make([]Value, 0, len(n.Value)),
		Sources:  sources,
	}
	for i, el := range n.Value {
		v, err := c.value(el, sources[i], false)
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, v)
	}
	return arr, nil
}

func numberValue(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return math.NaN()
}

// ShapeOf names the kind of an expression node for diagnostics.
func ShapeOf(node ast.Node) string {
	switch n := node.(type) {
	case *ast.DotExpression, *ast.BracketExpression, *ast.PrivateDotExpression:
		return "member expression"
	case *ast.OptionalChain, *ast.Optional:
		return "optional chain"
	case *ast.CallExpression:
		return "call expression"
	case *ast.NewExpression:
		return "new expression"
	case *ast.ObjectLiteral:
		return "object literal"
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral:
		return "function"
	case *ast.ClassLiteral:
		return "class expression"
	case *ast.BooleanLiteral:
		return "boolean literal"
	case *ast.NullLiteral:
		return "null literal"
	case *ast.RegExpLiteral:
		return "regular expression"
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			return "tagged template"
		}
		return ShapeTemplate
	case *ast.BinaryExpression:
		return "binary expression"
	case *ast.UnaryExpression:
		return "unary expression"
	case *ast.AssignExpression:
		return "assignment"
	case *ast.SequenceExpression:
		return "sequence expression"
	case *ast.ThisExpression:
		return "this"
	case *ast.AwaitExpression:
		return "await expression"
	case *ast.YieldExpression:
		return "yield expression"
	case *ast.ArrayLiteral:
		return "array"
	case *ast.Identifier:
		return ShapeIdentifier
	case *ast.ConditionalExpression:
		return ShapeConditional
	}
	return "expression"
}

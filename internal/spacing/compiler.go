// Package spacing compiles JSX spacing shorthand attributes (m, mt, px, ...)
// into class names and the stylesheet rules behind them.
//
// A Compiler is owned by one run: it accumulates rules across every document
// it compiles and must not be shared between goroutines.
package spacing

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/jsxspace/internal/expr"
	"github.com/yacobolo/jsxspace/internal/jsx"
)

// DefaultClassAttribute is the attribute that receives generated classes.
const DefaultClassAttribute = "className"

// Compiler rewrites elements and accumulates their rules.
type Compiler struct {
	opts      Options
	classAttr string
	rules     *RuleTable
	log       *zap.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithClassAttribute sets the attribute that receives generated classes,
// e.g. "class" for Preact or Solid.
func WithClassAttribute(name string) Option {
	return func(c *Compiler) {
		if name != "" {
			c.classAttr = name
		}
	}
}

// NewCompiler validates opts and returns a Compiler with an empty rule table.
func NewCompiler(opts Options, log *zap.Logger, optFns ...Option) (*Compiler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spacing options: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Compiler{
		opts:      opts,
		classAttr: DefaultClassAttribute,
		rules:     NewRuleTable(),
		log:       log.Named("compiler"),
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c, nil
}

// Options returns the options the compiler was built with.
func (c *Compiler) Options() Options { return c.opts }

// ClassAttribute returns the name of the consolidated class attribute.
func (c *Compiler) ClassAttribute() string { return c.classAttr }

// Rules returns the accumulated rule table.
func (c *Compiler) Rules() *RuleTable { return c.rules }

// ElementPlan is the read-only classification of one element.
type ElementPlan struct {
	Element    *jsx.Element
	Attributes []AttributePlan
	Existing   *jsx.Attribute // class attribute already on the element
}

// Static returns the literal class names of the plan, in attribute order.
func (p *ElementPlan) Static() []string {
	var out []string
	for _, attr := range p.Attributes {
		for _, class := range attr.Classes {
			if !class.Interpolated {
				out = append(out, class.Name)
			}
		}
	}
	return out
}

// Interpolated returns the placeholder class names of the plan.
func (p *ElementPlan) Interpolated() []string {
	var out []string
	for _, attr := range p.Attributes {
		for _, class := range attr.Classes {
			if class.Interpolated {
				out = append(out, class.Name)
			}
		}
	}
	return out
}

// Plan classifies the shorthand attributes of el. It returns nil when the
// element has none. Plan stops at the first unsupported value.
func (c *Compiler) Plan(doc *jsx.Document, el *jsx.Element) (*ElementPlan, error) {
	var plan *ElementPlan
	for _, attr := range el.Attributes {
		if attr.Kind == jsx.AttributeSpread {
			continue
		}
		prop, ok := LookupProperty(attr.Name)
		if !ok {
			continue
		}
		ap, err := c.classify(doc, attr, prop)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			plan = &ElementPlan{Element: el, Existing: el.Attribute(c.classAttr)}
		}
		plan.Attributes = append(plan.Attributes, ap)
	}
	return plan, nil
}

// Diagnose classifies every shorthand attribute of doc and returns all
// problems instead of stopping at the first. Nothing is recorded.
func (c *Compiler) Diagnose(doc *jsx.Document) []error {
	var errs []error
	for _, el := range doc.Elements {
		seen := make(map[string]bool)
		for _, attr := range el.Attributes {
			if attr.Kind == jsx.AttributeSpread {
				continue
			}
			prop, ok := LookupProperty(attr.Name)
			if !ok {
				continue
			}
			if seen[attr.Name] {
				errs = append(errs, &DuplicateAttributeWarning{
					Location:  locate(doc, attr.Start),
					Attribute: attr.Name,
					Element:   el.Name,
				})
			}
			seen[attr.Name] = true

			if _, err := c.classify(doc, attr, prop); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

// Result describes one compiled document.
type Result struct {
	Source     string // rewritten source
	Elements   int    // elements scanned
	Rewritten  int    // elements that carried shorthand attributes
	Attributes int    // shorthand attributes removed
}

// Compile plans every element of doc, records the literal rules and returns
// the rewritten source. On error nothing is recorded.
func (c *Compiler) Compile(doc *jsx.Document) (*Result, error) {
	var plans []*ElementPlan
	for _, el := range doc.Elements {
		plan, err := c.Plan(doc, el)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, plan)
		}
	}

	result := &Result{Elements: len(doc.Elements), Rewritten: len(plans)}
	var edits []jsx.Edit
	for _, plan := range plans {
		e, err := c.rewrite(doc, plan)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e...)
		result.Attributes += len(plan.Attributes)
	}

	source, err := jsx.Apply(doc.Source, edits)
	if err != nil {
		return nil, fmt.Errorf("rewriting %s: %w", doc.Name, err)
	}
	result.Source = source

	for _, plan := range plans {
		c.record(plan)
	}
	return result, nil
}

func (c *Compiler) record(plan *ElementPlan) {
	for _, attr := range plan.Attributes {
		for _, class := range attr.Classes {
			if class.Interpolated {
				continue
			}
			c.rules.Record(class.Key(), class.Name, class.Declaration)
		}
	}
}

// rewrite builds the edits that remove the shorthand attributes of plan and
// write the consolidated class attribute.
func (c *Compiler) rewrite(doc *jsx.Document, plan *ElementPlan) ([]jsx.Edit, error) {
	el := plan.Element
	var static, interpolated []string

	if existing := plan.Existing; existing != nil {
		switch existing.Kind {
		case jsx.AttributeString:
			static = appendUnique(static, strings.Fields(existing.Value)...)
		case jsx.AttributeExpression:
			if existing.Value != "" {
				interpolated = append(interpolated, Placeholder(existing.Value))
			}
		default:
			c.log.Warn("replacing valueless class attribute",
				zap.String("attribute", existing.Name),
				zap.Stringer("at", locate(doc, existing.Start)))
		}
	}
	static = appendUnique(static, plan.Static()...)
	interpolated = append(plan.Interpolated(), interpolated...)

	edits := make([]jsx.Edit, 0, len(plan.Attributes)+1)
	for _, attr := range plan.Attributes {
		edits = append(edits, jsx.Removal(doc.Source, attr.Attribute))
	}

	if len(static) == 0 && len(interpolated) == 0 {
		return edits, nil
	}

	value, err := c.classValue(doc, el, static, interpolated)
	if err != nil {
		return nil, err
	}
	attrText := c.classAttr + "=" + value

	if existing := plan.Existing; existing != nil {
		edits = append(edits, jsx.Edit{Start: existing.Start, End: existing.End, Text: attrText})
	} else {
		edits = append(edits, jsx.Edit{Start: el.AttrEnd, End: el.AttrEnd, Text: " " + attrText})
	}

	c.log.Debug("rewrote element",
		zap.String("element", el.Name),
		zap.Stringer("at", locate(doc, el.Start)),
		zap.Strings("static", static),
		zap.Strings("interpolated", interpolated))
	return edits, nil
}

// classValue renders the attribute value: a string literal when every class
// is static, otherwise a template literal with the interpolated fragments
// first.
func (c *Compiler) classValue(doc *jsx.Document, el *jsx.Element, static, interpolated []string) (string, error) {
	if len(interpolated) == 0 {
		joined := strings.Join(static, " ")
		switch {
		case !strings.Contains(joined, `"`):
			return `"` + joined + `"`, nil
		case !strings.Contains(joined, `'`):
			return `'` + joined + `'`, nil
		}
		return "{" + strconv.Quote(joined) + "}", nil
	}

	parts := make([]string, 0, len(interpolated)+len(static))
	parts = append(parts, interpolated...)
	for _, s := range static {
		parts = append(parts, escapeTemplate(s))
	}
	tpl := "`" + strings.Join(parts, " ") + "`"
	if err := expr.ParseTemplate(tpl); err != nil {
		return "", &TemplateError{Location: locate(doc, el.Start), Template: tpl, Err: err}
	}
	return "{" + tpl + "}", nil
}

var templateEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")

func escapeTemplate(s string) string {
	return templateEscaper.Replace(s)
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst)+len(values))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v)
		}
	}
	return dst
}

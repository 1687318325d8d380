package spacing

import (
	"errors"
	"math"
	"strings"

	"github.com/yacobolo/jsxspace/internal/expr"
	"github.com/yacobolo/jsxspace/internal/jsx"
)

// PlannedClass is one class an attribute contributes to its element.
type PlannedClass struct {
	Name         string // "mb-md-2", or "mb-md-${x}" when Interpolated
	Breakpoint   string // "" when the value has no breakpoint
	Declaration  string // empty when Interpolated
	Interpolated bool
}

// Key returns the rule table key of the class.
func (p PlannedClass) Key() string {
	if p.Breakpoint == "" {
		return DefaultBreakpoint
	}
	return p.Breakpoint
}

// AttributePlan is the classification of one shorthand attribute.
type AttributePlan struct {
	Attribute *jsx.Attribute
	Property  Property
	Value     expr.Value
	Classes   []PlannedClass
}

// classify turns one shorthand attribute into planned classes without
// touching the rule table.
func (c *Compiler) classify(doc *jsx.Document, attr *jsx.Attribute, prop Property) (AttributePlan, error) {
	plan := AttributePlan{Attribute: attr, Property: prop}

	value, err := attributeValue(doc, attr)
	if err != nil {
		return plan, err
	}
	plan.Value = value

	if arr, ok := value.(expr.Array); ok {
		if len(arr.Elements) > c.opts.Positions() {
			return plan, &TooManyValuesError{
				Location:  locate(doc, attr.ValueStart),
				Attribute: attr.Name,
				Count:     len(arr.Elements),
				Max:       c.opts.Positions(),
			}
		}
		for i, el := range arr.Elements {
			bp, _ := c.opts.BreakpointAt(i)
			class, err := c.leaf(prop, bp, el)
			if err != nil {
				return plan, unsupportedAt(doc, attr, err)
			}
			plan.Classes = append(plan.Classes, class)
		}
		return plan, nil
	}

	class, err := c.leaf(prop, "", value)
	if err != nil {
		return plan, unsupportedAt(doc, attr, err)
	}
	plan.Classes = append(plan.Classes, class)
	return plan, nil
}

// leafError carries the shape of a value leaf() refused.
type leafError struct {
	shape string
}

func (e *leafError) Error() string { return "unsupported " + e.shape }

func (c *Compiler) leaf(prop Property, bp string, value expr.Value) (PlannedClass, error) {
	switch v := value.(type) {
	case expr.Number:
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return PlannedClass{}, &leafError{shape: "non-finite number"}
		}
		return PlannedClass{
			Name:        BuildClassName(prop.Name, bp, NumberPart(v.Value)),
			Breakpoint:  bp,
			Declaration: prop.Declaration(c.opts.ResolveNumber(v.Value)),
		}, nil

	case expr.String:
		if strings.TrimSpace(v.Value) == "" {
			return PlannedClass{}, &leafError{shape: "empty string"}
		}
		return PlannedClass{
			Name:        BuildClassName(prop.Name, bp, StringPart(v.Value)),
			Breakpoint:  bp,
			Declaration: prop.Declaration(c.opts.ResolveString(strings.TrimSpace(v.Value))),
		}, nil

	case expr.Dynamic:
		return PlannedClass{
			Name:         BuildClassName(prop.Name, bp, Placeholder(v.Source)),
			Breakpoint:   bp,
			Interpolated: true,
		}, nil

	case expr.Array:
		return PlannedClass{}, &leafError{shape: "nested array"}
	}
	return PlannedClass{}, &leafError{shape: "value"}
}

func unsupportedAt(doc *jsx.Document, attr *jsx.Attribute, err error) error {
	var leaf *leafError
	shape := "value"
	if errors.As(err, &leaf) {
		shape = leaf.shape
	}
	return &UnsupportedValueError{
		Location:  locate(doc, attr.ValueStart),
		Attribute: attr.Name,
		Shape:     shape,
		Source:    attr.Value,
	}
}

// attributeValue reads the value of a shorthand attribute.
func attributeValue(doc *jsx.Document, attr *jsx.Attribute) (expr.Value, error) {
	switch attr.Kind {
	case jsx.AttributeString:
		return expr.String{Value: attr.Value, Raw: string(attr.Quote) + attr.Value + string(attr.Quote)}, nil

	case jsx.AttributeExpression:
		value, err := expr.Parse(attr.Value)
		if err == nil {
			return value, nil
		}
		raw := doc.Source[attr.ValueStart:attr.ValueEnd]
		offset := attr.ValueStart + len(raw) - len(strings.TrimLeft(raw, " \t\r\n"))

		var unsupported *expr.UnsupportedError
		if errors.As(err, &unsupported) {
			if unsupported.Offset > 0 {
				offset += unsupported.Offset
			}
			return nil, &UnsupportedValueError{
				Location:  locate(doc, offset),
				Attribute: attr.Name,
				Shape:     unsupported.Shape,
				Source:    attr.Value,
				Err:       err,
			}
		}
		return nil, &UnsupportedValueError{
			Location:  locate(doc, offset),
			Attribute: attr.Name,
			Shape:     "invalid expression",
			Source:    attr.Value,
			Err:       err,
		}
	}

	return nil, &UnsupportedValueError{
		Location:  locate(doc, attr.Start),
		Attribute: attr.Name,
		Shape:     "boolean attribute",
	}
}

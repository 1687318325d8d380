package jsxspace

import (
	"fmt"
	"os"

	"github.com/xlab/treeprint"

	"github.com/yacobolo/jsxspace/internal/expr"
	"github.com/yacobolo/jsxspace/internal/jsx"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

// Inspect renders how each element of the file at path would be compiled:
// every shorthand attribute, its value shape and the classes it plans.
// Elements without shorthand attributes are left out. Nothing is written.
func Inspect(path string, opts spacing.Options, classAttr string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	doc, err := jsx.Parse(path, string(src))
	if err != nil {
		return "", fmt.Errorf("parse failed: %w", err)
	}

	compiler, err := spacing.NewCompiler(spacingOptions(opts), nil, spacing.WithClassAttribute(classAttr))
	if err != nil {
		return "", err
	}

	tree := treeprint.NewWithRoot(path)
	for _, el := range doc.Elements {
		pos := doc.Position(el.Start)
		plan, err := compiler.Plan(doc, el)
		if err != nil {
			tree.AddMetaNode(fmt.Sprintf("%d:%d", pos.Line, pos.Column), fmt.Sprintf("<%s> error: %v", elementName(el), err))
			continue
		}
		if plan == nil {
			continue
		}

		branch := tree.AddMetaBranch(fmt.Sprintf("%d:%d", pos.Line, pos.Column), "<"+elementName(el)+">")
		if plan.Existing != nil {
			branch.AddNode(fmt.Sprintf("merges %s (%s)", plan.Existing.Name, plan.Existing.Kind))
		}
		for _, attr := range plan.Attributes {
			attrBranch := branch.AddBranch(fmt.Sprintf("%s (%s)", attr.Attribute.Name, shapeName(attr.Value)))
			for _, class := range attr.Classes {
				bp := class.Key()
				if class.Interpolated {
					attrBranch.AddMetaNode(bp, class.Name+" (runtime)")
					continue
				}
				attrBranch.AddMetaNode(bp, class.Name+" { "+class.Declaration+" }")
			}
		}
	}

	return tree.String(), nil
}

func elementName(el *jsx.Element) string {
	if el.Fragment {
		return ""
	}
	return el.Name
}

// shapeName names a classified value for display.
func shapeName(v expr.Value) string {
	switch v := v.(type) {
	case expr.Number:
		return "number"
	case expr.String:
		return "string"
	case expr.Dynamic:
		return v.Shape
	case expr.Array:
		return fmt.Sprintf("array of %d", len(v.Elements))
	}
	return "value"
}

package spacing

import (
	"fmt"

	"github.com/yacobolo/jsxspace/internal/jsx"
)

// Location points at a byte in a source unit.
type Location struct {
	File   string
	Offset int
	jsx.Position
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

func locate(doc *jsx.Document, offset int) Location {
	return Location{File: doc.Name, Offset: offset, Position: doc.Position(offset)}
}

// Located is implemented by diagnostics that carry a source location.
type Located interface {
	error
	Where() Location
}

// UnsupportedValueError reports a shorthand attribute whose value has a
// shape the compiler cannot turn into classes.
type UnsupportedValueError struct {
	Location
	Attribute string
	Shape     string
	Source    string
	Err       error
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s: unsupported value shape %s for shorthand attribute %q", e.Location, e.Shape, e.Attribute)
}

func (e *UnsupportedValueError) Unwrap() error { return e.Err }

// Where returns the location of the offending value.
func (e *UnsupportedValueError) Where() Location { return e.Location }

// TooManyValuesError reports a responsive array longer than the number of
// configured breakpoint positions.
type TooManyValuesError struct {
	Location
	Attribute string
	Count     int
	Max       int
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("%s: shorthand attribute %q has %d responsive values but only %d breakpoints are configured",
		e.Location, e.Attribute, e.Count, e.Max-1)
}

// Where returns the location of the array.
func (e *TooManyValuesError) Where() Location { return e.Location }

// DuplicateAttributeWarning reports a shorthand attribute written more than
// once on the same element. It never fails a build.
type DuplicateAttributeWarning struct {
	Location
	Attribute string
	Element   string
}

func (e *DuplicateAttributeWarning) Error() string {
	return fmt.Sprintf("%s: shorthand attribute %q is repeated on <%s>", e.Location, e.Attribute, e.Element)
}

// Where returns the location of the repeated attribute.
func (e *DuplicateAttributeWarning) Where() Location { return e.Location }

// TemplateError means the composed class template did not re-parse. It
// signals a bug in the compiler, not in the input.
type TemplateError struct {
	Location
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: internal error: generated class template %s is invalid: %v", e.Location, e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Where returns the location of the element being rewritten.
func (e *TemplateError) Where() Location { return e.Location }

package spacing

import "strings"

// Property is a shorthand spacing attribute and the CSS properties it sets.
type Property struct {
	Name          string   // "mx"
	CSSProperties []string // ["margin-left", "margin-right"]
}

// Declaration renders the CSS declarations for a resolved value:
// "margin-left: 8rem; margin-right: 8rem;"
func (p Property) Declaration(value string) string {
	parts := make([]string, len(p.CSSProperties))
	for i, prop := range p.CSSProperties {
		parts[i] = prop + ": " + value + ";"
	}
	return strings.Join(parts, " ")
}

var properties = []Property{
	{Name: "m", CSSProperties: []string{"margin"}},
	{Name: "mt", CSSProperties: []string{"margin-top"}},
	{Name: "mr", CSSProperties: []string{"margin-right"}},
	{Name: "mb", CSSProperties: []string{"margin-bottom"}},
	{Name: "ml", CSSProperties: []string{"margin-left"}},
	{Name: "mx", CSSProperties: []string{"margin-left", "margin-right"}},
	{Name: "my", CSSProperties: []string{"margin-top", "margin-bottom"}},
	{Name: "p", CSSProperties: []string{"padding"}},
	{Name: "pt", CSSProperties: []string{"padding-top"}},
	{Name: "pr", CSSProperties: []string{"padding-right"}},
	{Name: "pb", CSSProperties: []string{"padding-bottom"}},
	{Name: "pl", CSSProperties: []string{"padding-left"}},
	{Name: "px", CSSProperties: []string{"padding-left", "padding-right"}},
	{Name: "py", CSSProperties: []string{"padding-top", "padding-bottom"}},
}

var propertyIndex = func() map[string]Property {
	m := make(map[string]Property, len(properties))
	for _, p := range properties {
		m[p.Name] = p
	}
	return m
}()

// LookupProperty returns the shorthand called name.
func LookupProperty(name string) (Property, bool) {
	p, ok := propertyIndex[name]
	return p, ok
}

// Properties returns the shorthand table in declaration order.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

package spacing

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/gosimple/slug"
)

var classSubstitutions = map[string]string{
	"%": "pct",
	".": "_",
}

// BuildClassName joins the non-empty parts with "-": ("pt", "md", "3") ->
// "pt-md-3", ("mb", "", "2") -> "mb-2".
func BuildClassName(property, breakpoint, value string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{property, breakpoint, value} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// Placeholder is the class value part of a runtime value.
func Placeholder(source string) string {
	return "${" + source + "}"
}

// NumberPart is the class value part of a numeric value: the rounded number,
// with negatives prefixed by "n" instead of "-".
func NumberPart(n float64) string {
	r := round(n)
	if r < 0 {
		return "n" + formatNumber(-r)
	}
	return formatNumber(r)
}

// StringPart is the class value part of a string value. Numeric strings
// behave like numbers; other strings are reduced to class-safe characters.
// When that reduction loses information ("Auto", "var(--gap)") a hash of the
// value is appended after "--", which a reduced value never contains.
func StringPart(s string) string {
	if n, ok := parseNumber(s); ok {
		return NumberPart(n)
	}

	v := strings.TrimSpace(s)
	prefix := ""
	if strings.HasPrefix(v, "-") {
		prefix = "n"
		v = v[1:]
	}
	substituted := slug.Substitute(v, classSubstitutions)
	clean := slug.Make(substituted)
	switch {
	case clean == "":
		return "x" + valueHash(s)
	case clean != substituted:
		clean += "--" + valueHash(strings.TrimSpace(s))
	}
	return prefix + clean
}

func valueHash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}

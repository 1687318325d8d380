package jsx

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces src[Start:End] with Text. Start == End inserts.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Apply returns src with all edits applied. Edits may be given in any order
// but must not overlap; insertions at the same offset keep their order.
func Apply(src string, edits []Edit) (string, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, e := range sorted {
		if e.Start < last || e.End < e.Start || e.End > len(src) {
			return "", fmt.Errorf("edit [%d,%d) overlaps or is out of range", e.Start, e.End)
		}
		b.WriteString(src[last:e.Start])
		b.WriteString(e.Text)
		last = e.End
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

// Removal returns an edit deleting attr together with the whitespace that
// separates it from the previous token.
func Removal(src string, attr *Attribute) Edit {
	start := attr.Start
	for start > 0 && isSpace(src[start-1]) {
		start--
	}
	return Edit{Start: start, End: attr.End}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

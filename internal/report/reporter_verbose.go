package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// VerboseReporter prints statistics and the generated class list.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs shorthand usage statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Shorthand Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	fmt.Fprintf(r.w, "Files Scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files With Shorthand: %d\n", result.FilesWithShorthand)
	fmt.Fprintf(r.w, "Elements Rewritten:   %d\n", result.Elements)
	fmt.Fprintf(r.w, "Shorthand Attributes: %d\n", result.Attributes)
	fmt.Fprintf(r.w, "Static Classes:       %d (%.1f%%)\n", result.StaticClasses, result.StaticPercentage())
	fmt.Fprintf(r.w, "Interpolated Classes: %d\n", result.InterpolatedClasses)
	fmt.Fprintf(r.w, "Distinct Rules:       %d\n", len(result.Classes))
}

// PrintResolution shows the static share as a bar.
func (r *VerboseReporter) PrintResolution(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Build-time Resolution", r.useColors))
	fmt.Fprintln(r.w, "---------------------")
	printProgressBar(r.w, result.StaticPercentage())
}

// PrintClasses lists the distinct class names in natural order.
func (r *VerboseReporter) PrintClasses(result Result) {
	if len(result.Classes) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Generated Classes", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	for _, class := range SortedClasses(result.Classes) {
		fmt.Fprintf(r.w, "• %s\n", class)
	}
}

// SortedClasses returns a naturally sorted copy of classes, so "mb-2"
// precedes "mb-10".
func SortedClasses(classes []string) []string {
	out := make([]string, len(classes))
	copy(out, classes)
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out
}

func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), percentage)
}

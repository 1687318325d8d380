package spacing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
)

// DefaultBreakpoint is the rule table key for values without a breakpoint.
const DefaultBreakpoint = "default"

// Breakpoint is a labeled min-width media query threshold.
type Breakpoint struct {
	Label    string `koanf:"label" json:"label"`
	MinWidth string `koanf:"min-width" json:"min-width"`
}

// Options control value resolution and responsive output.
type Options struct {
	Scale       float64      `koanf:"scale" json:"scale"`
	Unit        string       `koanf:"unit" json:"unit"`
	Breakpoints []Breakpoint `koanf:"breakpoints" json:"breakpoints"` // array positions 1..N
}

// DefaultOptions returns a scale of 4rem and the xs, md and lg breakpoints.
func DefaultOptions() Options {
	return Options{
		Scale: 4,
		Unit:  "rem",
		Breakpoints: []Breakpoint{
			{Label: "xs", MinWidth: "36rem"},
			{Label: "md", MinWidth: "62rem"},
			{Label: "lg", MinWidth: "80rem"},
		},
	}
}

// Validate reports every problem with the options at once.
func (o Options) Validate() error {
	var err error
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		err = multierr.Append(err, fmt.Errorf("scale must be a positive number, got %v", o.Scale))
	}
	if strings.TrimSpace(o.Unit) == "" {
		err = multierr.Append(err, errors.New("unit must not be empty"))
	}

	seen := make(map[string]bool, len(o.Breakpoints))
	for i, bp := range o.Breakpoints {
		switch {
		case bp.Label == "":
			err = multierr.Append(err, fmt.Errorf("breakpoint %d: label must not be empty", i+1))
		case bp.Label == DefaultBreakpoint:
			err = multierr.Append(err, fmt.Errorf("breakpoint %d: label %q is reserved", i+1, bp.Label))
		case !slug.IsSlug(bp.Label):
			err = multierr.Append(err, fmt.Errorf("breakpoint %d: label %q is not usable in a class name", i+1, bp.Label))
		case seen[bp.Label]:
			err = multierr.Append(err, fmt.Errorf("breakpoint %d: duplicate label %q", i+1, bp.Label))
		}
		seen[bp.Label] = true

		if strings.TrimSpace(bp.MinWidth) == "" {
			err = multierr.Append(err, fmt.Errorf("breakpoint %d: min-width must not be empty", i+1))
		}
	}
	return err
}

// Positions returns how many array entries a responsive value may have.
func (o Options) Positions() int {
	return len(o.Breakpoints) + 1
}

// BreakpointAt returns the label for array position i. Position 0 has no
// breakpoint and yields "".
func (o Options) BreakpointAt(i int) (string, bool) {
	if i == 0 {
		return "", true
	}
	if i < 0 || i > len(o.Breakpoints) {
		return "", false
	}
	return o.Breakpoints[i-1].Label, true
}

// MinWidth returns the threshold of a breakpoint label.
func (o Options) MinWidth(label string) (string, bool) {
	for _, bp := range o.Breakpoints {
		if bp.Label == label {
			return bp.MinWidth, true
		}
	}
	return "", false
}

// ResolveNumber scales a rounded number and appends the unit: 2 -> "8rem".
func (o Options) ResolveNumber(n float64) string {
	return formatNumber(round(n)*o.Scale) + o.Unit
}

// ResolveString treats numeric strings as numbers and passes anything else
// through unchanged.
func (o Options) ResolveString(s string) string {
	if n, ok := parseNumber(s); ok {
		return o.ResolveNumber(n)
	}
	return s
}

// round matches JavaScript's Math.round: halves go towards +Inf.
func round(n float64) float64 {
	return math.Floor(n + 0.5)
}

func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

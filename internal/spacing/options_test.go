package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestResolveNumber(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0rem"},
		{in: 1, want: "4rem"},
		{in: 2, want: "8rem"},
		{in: 1.4, want: "4rem"},
		{in: 1.5, want: "8rem"},
		{in: -1, want: "-4rem"},
		{in: -2.5, want: "-8rem"},
		{in: -0.2, want: "0rem"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, opts.ResolveNumber(tt.in), "ResolveNumber(%v)", tt.in)
	}
}

func TestResolveNumber_CustomScale(t *testing.T) {
	opts := Options{Scale: 0.25, Unit: "rem"}
	assert.Equal(t, "0.5rem", opts.ResolveNumber(2))

	opts = Options{Scale: 8, Unit: "px"}
	assert.Equal(t, "24px", opts.ResolveNumber(3))
}

func TestResolveString(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "20rem", opts.ResolveString("5"))
	assert.Equal(t, "8rem", opts.ResolveString(" 2 "))
	assert.Equal(t, "auto", opts.ResolveString("auto"))
	assert.Equal(t, "1.5rem", opts.ResolveString("1.5rem"))
	assert.Equal(t, "50%", opts.ResolveString("50%"))
	assert.Equal(t, "Infinity", opts.ResolveString("Infinity"))
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	opts := Options{
		Scale: 0,
		Unit:  "",
		Breakpoints: []Breakpoint{
			{Label: "md", MinWidth: "62rem"},
			{Label: "md", MinWidth: "80rem"},
			{Label: "default", MinWidth: "1rem"},
			{Label: "Big Screen", MinWidth: "90rem"},
			{Label: "", MinWidth: ""},
		},
	}
	err := opts.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 7)
	assert.Contains(t, err.Error(), "scale must be a positive number")
	assert.Contains(t, err.Error(), "unit must not be empty")
	assert.Contains(t, err.Error(), `duplicate label "md"`)
	assert.Contains(t, err.Error(), `label "default" is reserved`)
	assert.Contains(t, err.Error(), `label "Big Screen" is not usable in a class name`)
	assert.Contains(t, err.Error(), "breakpoint 5: label must not be empty")
	assert.Contains(t, err.Error(), "breakpoint 5: min-width must not be empty")
}

func TestBreakpointAt(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 4, opts.Positions())

	tests := []struct {
		index int
		label string
		ok    bool
	}{
		{index: 0, label: "", ok: true},
		{index: 1, label: "xs", ok: true},
		{index: 2, label: "md", ok: true},
		{index: 3, label: "lg", ok: true},
		{index: 4, label: "", ok: false},
		{index: -1, label: "", ok: false},
	}
	for _, tt := range tests {
		label, ok := opts.BreakpointAt(tt.index)
		assert.Equal(t, tt.label, label)
		assert.Equal(t, tt.ok, ok)
	}

	minWidth, ok := opts.MinWidth("md")
	assert.True(t, ok)
	assert.Equal(t, "62rem", minWidth)
}

func TestPropertyTable(t *testing.T) {
	names := make([]string, 0, len(Properties()))
	for _, p := range Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"m", "mt", "mr", "mb", "ml", "mx", "my", "p", "pt", "pr", "pb", "pl", "px", "py"}, names)

	mb, ok := LookupProperty("mb")
	require.True(t, ok)
	assert.Equal(t, "margin-bottom: 8rem;", mb.Declaration("8rem"))

	px, ok := LookupProperty("px")
	require.True(t, ok)
	assert.Equal(t, "padding-left: 4rem; padding-right: 4rem;", px.Declaration("4rem"))

	_, ok = LookupProperty("gap")
	assert.False(t, ok)
}

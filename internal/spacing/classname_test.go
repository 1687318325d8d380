package spacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildClassName(t *testing.T) {
	assert.Equal(t, "mb-2", BuildClassName("mb", "", "2"))
	assert.Equal(t, "pt-md-3", BuildClassName("pt", "md", "3"))
	assert.Equal(t, "mx-lg-${gap}", BuildClassName("mx", "lg", Placeholder("gap")))
	assert.Equal(t, "p", BuildClassName("p", "", ""))
}

func TestNumberPart(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 2, want: "2"},
		{in: 2.4, want: "2"},
		{in: 2.5, want: "3"},
		{in: 0, want: "0"},
		{in: -2, want: "n2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberPart(tt.in), "NumberPart(%v)", tt.in)
	}
}

func TestStringPart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "5", want: "5"},
		{in: "-1", want: "n1"},
		{in: "auto", want: "auto"},
		{in: "Auto", want: "auto--126befb6"},
		{in: "50%", want: "50pct"},
		{in: "1.5rem", want: "1_5rem"},
		{in: "-2px", want: "n2px"},
		{in: "var(--gutter)", want: "var-gutter--b4c61232"},
		{in: "calc(100% - 8px)", want: "calc-100pct-8px--1cfba14c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringPart(tt.in))
		})
	}
}

func TestStringPart_HashesUnprintableValues(t *testing.T) {
	got := StringPart("!!!")
	assert.Len(t, got, 9)
	assert.Equal(t, byte('x'), got[0])
	assert.Equal(t, got, StringPart("!!!"))
	assert.NotEqual(t, got, StringPart("???"))
}

func TestStringPart_DistinguishesValuesThatReduceAlike(t *testing.T) {
	upper, lower := StringPart("var(--Gap)"), StringPart("var(--gap)")
	assert.Equal(t, "var-gap--a200c037", upper)
	assert.Equal(t, "var-gap--21d47417", lower)
	assert.NotEqual(t, StringPart("calc(1rem+2px)"), StringPart("calc(1rem - 2px)"))
}

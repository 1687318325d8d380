package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		edits []Edit
		want  string
	}{
		{
			name: "no edits",
			src:  "abc",
			want: "abc",
		},
		{
			name:  "replace and insert out of order",
			src:   "<div mb={2} />",
			edits: []Edit{{Start: 11, End: 11, Text: ` className="mb-2"`}, {Start: 4, End: 11}},
			want:  `<div className="mb-2" />`,
		},
		{
			name:  "insertions at the same offset keep order",
			src:   "ab",
			edits: []Edit{{Start: 1, End: 1, Text: "1"}, {Start: 1, End: 1, Text: "2"}},
			want:  "a12b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.src, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Overlap(t *testing.T) {
	_, err := Apply("abcdef", []Edit{{Start: 0, End: 3}, {Start: 2, End: 4}})
	require.Error(t, err)

	_, err = Apply("abc", []Edit{{Start: 2, End: 9}})
	require.Error(t, err)
}

func TestRemoval(t *testing.T) {
	src := "<div\n  mb={2}\n  id=\"x\" />"
	doc, err := Parse("r.jsx", src)
	require.NoError(t, err)

	edit := Removal(src, doc.Elements[0].Attribute("mb"))
	got, err := Apply(src, []Edit{edit})
	require.NoError(t, err)
	assert.Equal(t, "<div\n  id=\"x\" />", got)
}

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div mb={theme.gap}>",
			column:     12,
			want:       "           ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<section px={[1, a.b]}>",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "multibyte prefix",
			sourceLine: "é<div m={a.b}>",
			column:     10,
			want:       "         ^",
		},
		{
			name:       "start of line",
			sourceLine: "<div m />",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	issues := []Issue{
		{
			FromLinter: LinterName,
			Text:       "x",
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "b.jsx", Line: 2, Column: 5},
		},
		{
			FromLinter:  LinterName,
			Text:        "y",
			Severity:    SeverityWarning,
			SourceLines: []string{"<a m m />"},
			Pos:         IssuePos{Filename: "a.jsx", Line: 1, Column: 3},
		},
	}

	var buf bytes.Buffer
	r := NewReporter(&buf, Config{PrintLines: true, PrintLinterName: true})
	assert.False(t, r.UseColors())
	r.PrintIssues(issues)

	assert.Equal(t,
		"a.jsx:1:3: warning: y (jsxspace)\n\t<a m m />\n\t  ^\n"+
			"b.jsx:2:5: x (jsxspace)\n",
		buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "clean",
			result: Result{},
			want:   "\n0 issues\n",
		},
		{
			name: "errors only",
			result: Result{Issues: []Issue{
				{Severity: SeverityError},
			}},
			want: "\n1 issue\n",
		},
		{
			name: "mixed and truncated",
			result: Result{
				Issues: []Issue{
					{Severity: SeverityError},
					{Severity: SeverityWarning},
					{Severity: SeverityWarning},
				},
				TruncatedCount: 1,
			},
			want: "\n3 issues (1 error, 2 warnings; 1 issue truncated)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, Config{}).PrintSummary(tt.result)

			got := buf.String()
			assert.Equal(t, tt.want, got[:len(tt.want)])
			if len(tt.result.Issues) > 0 {
				assert.Contains(t, got, "Hint:")
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSortedClasses(t *testing.T) {
	in := []string{"mb-10", "mb-2", "m-1", "mb-xs-2", "mb-1"}
	assert.Equal(t, []string{"m-1", "mb-1", "mb-2", "mb-10", "mb-xs-2"}, SortedClasses(in))
	assert.Equal(t, "mb-10", in[0], "input is not modified")
}

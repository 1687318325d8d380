package report

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and the generated class list only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues, statistics and classes
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format
	OutputJSON OutputFormat = "json"
)

// Config controls how results are limited and printed.
type Config struct {
	UseColors       bool
	PrintLines      bool // print source lines under each issue
	PrintLinterName bool
	MaxIssues       int // 0 = unlimited
	MaxSameIssues   int // 0 = unlimited
}

// Result is the outcome of checking a set of files.
type Result struct {
	Issues         []Issue
	TruncatedCount int

	FilesScanned        int
	FilesWithShorthand  int
	Elements            int // elements carrying shorthand attributes
	Attributes          int // shorthand attributes
	StaticClasses       int
	InterpolatedClasses int
	Classes             []string // distinct class names that would get a rule
}

// Counts returns the number of error and warning issues.
func (r *Result) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// StaticPercentage is the share of planned classes resolved at build time.
func (r *Result) StaticPercentage() float64 {
	total := r.StaticClasses + r.InterpolatedClasses
	if total == 0 {
		return 0
	}
	return float64(r.StaticClasses) / float64(total) * 100
}

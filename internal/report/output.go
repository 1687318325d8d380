package report

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to the default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}
	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format: issues
// only, golangci-lint style.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes result in the given format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, ShouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintResolution(*result)
		verboseReporter.PrintClasses(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintResolution(*result)
		verboseReporter.PrintClasses(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Classes   []string    `json:"classes"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains shorthand usage statistics
type JSONStats struct {
	FilesWithShorthand  int     `json:"files_with_shorthand"`
	Elements            int     `json:"elements"`
	Attributes          int     `json:"attributes"`
	StaticClasses       int     `json:"static_classes"`
	InterpolatedClasses int     `json:"interpolated_classes"`
	StaticPercentage    float64 `json:"static_percentage"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *Result) JSONOutput {
	errors, warnings := result.Counts()

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesWithShorthand:  result.FilesWithShorthand,
			Elements:            result.Elements,
			Attributes:          result.Attributes,
			StaticClasses:       result.StaticClasses,
			InterpolatedClasses: result.InterpolatedClasses,
			StaticPercentage:    result.StaticPercentage(),
		},
		Issues:  issues,
		Classes: SortedClasses(result.Classes),
	}
}

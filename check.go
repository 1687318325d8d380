package jsxspace

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yacobolo/jsxspace/internal/jsx"
	"github.com/yacobolo/jsxspace/internal/report"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

// Check diagnoses every shorthand attribute in the files matched by
// config.Paths. Unlike Transform it reports every problem instead of
// stopping at the first, and writes nothing.
func Check(config CheckConfig) (*CheckResult, error) {
	log := logger(config.Logger).Named("check")

	files, stats, err := expandGlobPatternsWithStats(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	if stats.FilesSkipped > 0 {
		log.Debug("skipped files",
			zap.Int("skipped", stats.FilesSkipped),
			zap.Int("scanned", stats.FilesScanned))
	}

	compiler, err := spacing.NewCompiler(spacingOptions(config.Spacing), log,
		spacing.WithClassAttribute(config.ClassAttribute))
	if err != nil {
		return nil, err
	}

	result := &CheckResult{FilesScanned: len(files)}
	seen := make(map[string]bool)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		doc, err := jsx.Parse(file, string(src))
		if err != nil {
			log.Debug("parse failed", zap.String("file", file), zap.Error(err))
			result.Issues = append(result.Issues, parseIssue(file, string(src), err))
			continue
		}

		for _, diag := range compiler.Diagnose(doc) {
			result.Issues = append(result.Issues, diagnosticIssue(doc, diag))
		}

		withShorthand := false
		for _, el := range doc.Elements {
			plan, err := compiler.Plan(doc, el)
			if err != nil || plan == nil {
				continue
			}
			withShorthand = true
			result.Elements++
			result.Attributes += len(plan.Attributes)
			for _, attr := range plan.Attributes {
				for _, class := range attr.Classes {
					if class.Interpolated {
						result.InterpolatedClasses++
						continue
					}
					result.StaticClasses++
					if !seen[class.Name] {
						seen[class.Name] = true
						result.Classes = append(result.Classes, class.Name)
					}
				}
			}
		}
		if withShorthand {
			result.FilesWithShorthand++
		}
	}

	report.SortIssues(result.Issues)
	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = report.LimitIssues(result.Issues, report.Config{
			MaxIssues:     config.MaxIssues,
			MaxSameIssues: config.MaxSameIssues,
		})
	}

	return result, nil
}

// diagnosticIssue converts a compiler diagnostic into a report issue.
func diagnosticIssue(doc *jsx.Document, err error) report.Issue {
	issue := report.Issue{
		FromLinter: report.LinterName,
		Severity:   report.SeverityError,
		Text:       err.Error(),
	}

	var (
		unsupported *spacing.UnsupportedValueError
		tooMany     *spacing.TooManyValuesError
		repeated    *spacing.DuplicateAttributeWarning
	)
	switch {
	case errors.As(err, &unsupported):
		issue.Text = fmt.Sprintf(report.IssueUnsupportedShape, unsupported.Shape, unsupported.Attribute)
	case errors.As(err, &tooMany):
		issue.Text = fmt.Sprintf(report.IssueTooManyValues, tooMany.Attribute, tooMany.Count, tooMany.Max-1)
	case errors.As(err, &repeated):
		issue.Text = fmt.Sprintf(report.IssueRepeatedShorthand, repeated.Attribute, repeated.Element)
		issue.Severity = report.SeverityWarning
	}

	var located spacing.Located
	if errors.As(err, &located) {
		where := located.Where()
		issue.Pos = report.IssuePos{Filename: doc.Name, Line: where.Line, Column: where.Column}
		issue.SourceLines = []string{doc.Line(where.Offset)}
	} else {
		issue.Pos = report.IssuePos{Filename: doc.Name}
	}
	return issue
}

// parseIssue reports a file the JSX scanner rejected.
func parseIssue(file, src string, err error) report.Issue {
	issue := report.Issue{
		FromLinter: report.LinterName,
		Severity:   report.SeverityError,
		Text:       fmt.Sprintf(report.IssueParseError, err),
		Pos:        report.IssuePos{Filename: file, Line: 1, Column: 1},
	}

	var perr *jsx.ParseError
	if errors.As(err, &perr) {
		issue.Text = fmt.Sprintf(report.IssueParseError, perr.Message)
		issue.Pos.Line, issue.Pos.Column = perr.Pos.Line, perr.Pos.Column
		doc := &jsx.Document{Name: file, Source: src}
		issue.SourceLines = []string{doc.Line(perr.Offset)}
	}
	return issue
}

package jsxspace

import (
	"go.uber.org/zap"

	"github.com/yacobolo/jsxspace/internal/report"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

// DefaultStylesheet is the stylesheet path used when none is configured.
const DefaultStylesheet = "style.css"

// Config holds transform configuration
type Config struct {
	Input          string          // "src/App.jsx"
	Output         string          // rewritten source; empty = not written
	Stylesheet     string          // default "style.css"
	DryRun         bool            // compile only, write nothing
	Spacing        spacing.Options // zero value = spacing.DefaultOptions()
	ClassAttribute string          // default "className"
	Logger         *zap.Logger
}

// TransformResult contains the output and stats of one transform
type TransformResult struct {
	Source         string // rewritten source
	Stylesheet     string // minified CSS
	StylesheetPath string

	Elements   int // elements scanned
	Rewritten  int // elements that carried shorthand attributes
	Attributes int // shorthand attributes removed
	Rules      int // rules in the stylesheet
}

// CheckConfig holds check configuration
type CheckConfig struct {
	Paths          []string // doublestar globs: ["src/**/*.jsx"]
	Spacing        spacing.Options
	ClassAttribute string
	MaxIssues      int // 0 = unlimited
	MaxSameIssues  int // 0 = unlimited
	Logger         *zap.Logger
}

// CheckResult is the outcome of a check run.
type CheckResult = report.Result

func spacingOptions(opts spacing.Options) spacing.Options {
	if opts.Scale == 0 && opts.Unit == "" && len(opts.Breakpoints) == 0 {
		return spacing.DefaultOptions()
	}
	return opts
}

func logger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

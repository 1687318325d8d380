package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/jsxspace"
	"github.com/yacobolo/jsxspace/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report shorthand attributes that cannot be compiled",
	Long: `Scan JSX files for spacing shorthand attributes and report every value
the compiler would reject, plus repeated shorthands. Nothing is written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (jsxspace) suffix on issues")
}

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := buildCheckConfig(args)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := jsxspace.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", false)
	format := report.DetermineOutputFormat(getStringWithFallback("check.output-format", ""), quiet)

	if !quiet {
		if err := report.WriteOutput(cmd.OutOrStdout(), result, format, buildReportConfig()); err != nil {
			return err
		}
	}

	// Errors always fail; --strict fails on warnings as well.
	errors, warnings := result.Counts()
	if errors > 0 || (getBoolWithFallback("check.strict", false) && warnings > 0) {
		return &exitError{code: 1}
	}
	return nil
}

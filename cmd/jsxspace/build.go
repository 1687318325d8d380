package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/jsxspace"
	"github.com/yacobolo/jsxspace/internal/report"
)

var buildCmd = &cobra.Command{
	Use:     "build [input]",
	Aliases: []string{"b"},
	Short:   "Compile shorthand attributes and write the stylesheet",
	Long: `Rewrite the spacing shorthand attributes of one JSX file into class names
and write the matching rules to the stylesheet. The rewritten source goes to
--output, or to stdout when --output is not set.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().AddFlagSet(buildFlags())
}

// buildFlags returns a fresh set of build flags; the root command accepts
// them too because build is its default.
func buildFlags() *pflag.FlagSet {
	f := pflag.NewFlagSet("build", pflag.ContinueOnError)
	f.StringP("output", "o", "", "Write the rewritten source to this file (default: stdout)")
	f.String("stylesheet", jsxspace.DefaultStylesheet, "Stylesheet output path")
	f.Bool("dry-run", false, "Compile without writing any file")
	return f
}

func runBuild(cmd *cobra.Command, args []string) error {
	config, err := buildTransformConfig(args)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := jsxspace.Transform(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if getBoolWithFallback("quiet", false) {
		return nil
	}

	if config.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Source)
	}

	useColors := report.ShouldUseColors(buildReportConfig())
	w := cmd.ErrOrStderr()
	verb := "Wrote"
	if config.DryRun {
		verb = "Would write"
	}
	fmt.Fprintf(w, "%s %s\n", renderStatus(verb, useColors), result.StylesheetPath)
	fmt.Fprintf(w, "  Elements rewritten: %d of %d\n", result.Rewritten, result.Elements)
	fmt.Fprintf(w, "  Attributes removed: %d\n", result.Attributes)
	fmt.Fprintf(w, "  Rules:              %d\n", result.Rules)
	if config.Output != "" {
		fmt.Fprintf(w, "  Source:             %s\n", config.Output)
	}
	return nil
}

// renderStatus renders a status word in the success style.
func renderStatus(s string, useColors bool) string {
	return report.RenderStyle(report.StyleGreen, s, useColors)
}

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsxspace",
	Short: "Compile JSX spacing shorthands into classes and a stylesheet",
	Long: `Rewrites spacing shorthand attributes (m, mt, px, ...) on JSX elements
into a single className and writes the matching rules to style.css.

  <div mb={[1, 2]} />  ->  <div className="mb-1 mb-xs-2" />`,
	// Default behavior: run build when no subcommand is given.
	// We must call loadConfig here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", ".jsxspace.yaml", "Config file path")
	f.String("class-attribute", "className", "Attribute that receives generated classes")
	f.Float64("scale", 4, "Multiplier for numeric shorthand values")
	f.String("unit", "rem", "Unit appended to numeric shorthand values")
	f.String("breakpoints", "", "Breakpoints as label=min-width pairs, e.g. xs=36rem,md=62rem")

	// build flags are also accepted by the default command
	rootCmd.Flags().AddFlagSet(buildFlags())

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/jsxspace"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how each element of a file would be compiled",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildSpacingOptions()
		if err != nil {
			return err
		}
		out, err := jsxspace.Inspect(args[0], opts,
			getStringWithFallback("class-attribute", spacing.DefaultClassAttribute))
		if err != nil {
			return fmt.Errorf("inspect failed: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

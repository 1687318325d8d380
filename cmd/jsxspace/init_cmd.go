package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .jsxspace.yaml config file",
	Long:  `Create a .jsxspace.yaml configuration file in the current directory with the default scale, unit and breakpoints.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# jsxspace configuration

verbose: false
class-attribute: className   # class for Preact or Solid

# Value resolution: numbers become round(n) * scale + unit
spacing:
  scale: 4
  unit: rem
  breakpoints:                # array positions 1..N of responsive values
    - label: xs
      min-width: 36rem
    - label: md
      min-width: 62rem
    - label: lg
      min-width: 80rem

# Build settings
build:
  input: src/App.jsx
  output: ""                 # rewritten source; empty = stdout
  stylesheet: style.css

# Check settings
check:
  paths:
    - "src/**/*.jsx"
    - "src/**/*.tsx"
  strict: false
  output-format: issues      # issues | summary | full | json
  max-issues: 0              # 0 = unlimited
  max-same-issues: 0         # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

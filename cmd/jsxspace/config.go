package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/jsxspace"
	"github.com/yacobolo/jsxspace/internal/report"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

const defaultConfigPath = ".jsxspace.yaml"

var k = koanf.New(".")

// flagKeys maps flag names onto configuration keys. Flags not listed use
// their own name.
var flagKeys = map[string]string{
	"output":            "build.output",
	"stylesheet":        "build.stylesheet",
	"dry-run":           "build.dry-run",
	"scale":             "spacing.scale",
	"unit":              "spacing.unit",
	"output-format":     "check.output-format",
	"strict":            "check.strict",
	"max-issues":        "check.max-issues",
	"max-same-issues":   "check.max-same-issues",
	"print-lines":       "check.print-lines",
	"print-linter-name": "check.print-linter-name",
}

// hyphenatedKeys restores dashes that the env mapping turned into dots.
// Longer keys come first.
var hyphenatedKeys = []string{
	"class-attribute",
	"max-same-issues",
	"max-issues",
	"print-linter-name",
	"print-lines",
	"output-format",
	"dry-run",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Flag defaults only apply when no other provider set the key.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagKey(f.Name), posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("JSXSPACE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// envKey maps JSXSPACE_BUILD_STYLESHEET to build.stylesheet and
// JSXSPACE_CHECK_MAX_SAME_ISSUES to check.max-same-issues.
func envKey(s string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "JSXSPACE_")), "_", ".")
	for _, hyphenated := range hyphenatedKeys {
		key = strings.ReplaceAll(key, strings.ReplaceAll(hyphenated, "-", "."), hyphenated)
	}
	return key
}

// buildSpacingOptions constructs the compiler options from koanf state.
func buildSpacingOptions() (spacing.Options, error) {
	opts := spacing.DefaultOptions()
	opts.Scale = getFloat64WithFallback("spacing.scale", opts.Scale)
	opts.Unit = getStringWithFallback("spacing.unit", opts.Unit)

	switch {
	case k.String("breakpoints") != "":
		bps, err := parseBreakpoints(k.String("breakpoints"))
		if err != nil {
			return opts, err
		}
		opts.Breakpoints = bps
	case k.Exists("spacing.breakpoints"):
		var bps []spacing.Breakpoint
		if err := k.Unmarshal("spacing.breakpoints", &bps); err != nil {
			return opts, fmt.Errorf("reading spacing.breakpoints: %w", err)
		}
		opts.Breakpoints = bps
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid spacing configuration: %w", err)
	}
	return opts, nil
}

// parseBreakpoints reads "xs=36rem,md=62rem".
func parseBreakpoints(s string) ([]spacing.Breakpoint, error) {
	var bps []spacing.Breakpoint
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, minWidth, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("breakpoint %q: expected label=min-width", pair)
		}
		bps = append(bps, spacing.Breakpoint{
			Label:    strings.TrimSpace(label),
			MinWidth: strings.TrimSpace(minWidth),
		})
	}
	return bps, nil
}

// buildTransformConfig constructs the library's Config struct from koanf state.
func buildTransformConfig(args []string) (jsxspace.Config, error) {
	opts, err := buildSpacingOptions()
	if err != nil {
		return jsxspace.Config{}, err
	}

	config := jsxspace.Config{
		Input:          getStringWithFallback("build.input", ""),
		Output:         getStringWithFallback("build.output", ""),
		Stylesheet:     getStringWithFallback("build.stylesheet", jsxspace.DefaultStylesheet),
		DryRun:         getBoolWithFallback("build.dry-run", false),
		Spacing:        opts,
		ClassAttribute: getStringWithFallback("class-attribute", spacing.DefaultClassAttribute),
	}
	if len(args) > 0 {
		config.Input = args[0]
	}
	if config.Input == "" {
		return config, fmt.Errorf("no input file: pass one or set build.input in %s", defaultConfigPath)
	}
	return config, nil
}

// defaultCheckPaths are scanned when neither arguments nor check.paths are given.
var defaultCheckPaths = []string{"src/**/*.jsx", "src/**/*.tsx"}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
func buildCheckConfig(args []string) (jsxspace.CheckConfig, error) {
	opts, err := buildSpacingOptions()
	if err != nil {
		return jsxspace.CheckConfig{}, err
	}

	paths := args
	if len(paths) == 0 {
		paths = k.Strings("check.paths")
	}
	if len(paths) == 0 {
		paths = defaultCheckPaths
	}

	return jsxspace.CheckConfig{
		Paths:          paths,
		Spacing:        opts,
		ClassAttribute: getStringWithFallback("class-attribute", spacing.DefaultClassAttribute),
		MaxIssues:      getIntWithFallback("check.max-issues", 0),
		MaxSameIssues:  getIntWithFallback("check.max-same-issues", 0),
	}, nil
}

// buildReportConfig constructs the reporter configuration from koanf state.
func buildReportConfig() report.Config {
	return report.Config{
		UseColors:       getBoolWithFallback("color", false),
		PrintLines:      getBoolWithFallback("check.print-lines", true),
		PrintLinterName: getBoolWithFallback("check.print-linter-name", true),
		MaxIssues:       getIntWithFallback("check.max-issues", 0),
		MaxSameIssues:   getIntWithFallback("check.max-same-issues", 0),
	}
}

// getStringWithFallback returns the value at key, or defaultVal when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the value at key, or defaultVal when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the value at key, or defaultVal when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getFloat64WithFallback returns the value at key, or defaultVal when unset.
func getFloat64WithFallback(key string, defaultVal float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return defaultVal
}

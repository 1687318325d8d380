package jsxspace

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yacobolo/jsxspace/internal/jsx"
	"github.com/yacobolo/jsxspace/internal/spacing"
)

// Transform compiles config.Input, writes the stylesheet and, when
// config.Output is set, the rewritten source. Nothing is written when
// compilation fails or config.DryRun is set.
func Transform(config Config) (*TransformResult, error) {
	log := logger(config.Logger)

	src, err := os.ReadFile(config.Input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	doc, err := jsx.Parse(config.Input, string(src))
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	compiler, err := spacing.NewCompiler(spacingOptions(config.Spacing), log,
		spacing.WithClassAttribute(config.ClassAttribute))
	if err != nil {
		return nil, err
	}

	compiled, err := compiler.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("compile failed: %w", err)
	}

	css, err := spacing.Stylesheet(compiler.Rules(), compiler.Options())
	if err != nil {
		return nil, fmt.Errorf("stylesheet failed: %w", err)
	}

	result := &TransformResult{
		Source:         compiled.Source,
		Stylesheet:     css,
		StylesheetPath: config.Stylesheet,
		Elements:       compiled.Elements,
		Rewritten:      compiled.Rewritten,
		Attributes:     compiled.Attributes,
		Rules:          compiler.Rules().Len(),
	}
	if result.StylesheetPath == "" {
		result.StylesheetPath = DefaultStylesheet
	}

	log.Debug("compiled",
		zap.String("input", config.Input),
		zap.Int("elements", result.Elements),
		zap.Int("rewritten", result.Rewritten),
		zap.Int("rules", result.Rules))

	if config.DryRun {
		log.Debug("dry run, nothing written", zap.String("input", config.Input))
		return result, nil
	}

	if err := writeFileAtomic(result.StylesheetPath, []byte(css), 0o644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	log.Debug("wrote stylesheet",
		zap.String("path", result.StylesheetPath),
		zap.Int("rules", result.Rules))

	if config.Output != "" {
		if err := writeFileAtomic(config.Output, []byte(compiled.Source), 0o644); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		log.Debug("wrote source", zap.String("path", config.Output))
	}

	return result, nil
}

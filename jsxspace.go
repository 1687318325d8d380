// Package jsxspace compiles JSX spacing shorthand attributes into class
// names and a minified stylesheet.
//
// An element written as
//
//	<div mb={[1, 2]} px="auto" />
//
// is rewritten to
//
//	<div className="mb-1 mb-xs-2 px-auto" />
//
// and the rules behind those classes are collected into style.css.
//
// # Transform
//
// Compile one file and write the stylesheet:
//
//	result, err := jsxspace.Transform(jsxspace.Config{
//		Input:      "src/App.jsx",
//		Output:     "build/App.jsx",
//		Stylesheet: "build/style.css",
//		Spacing:    spacing.DefaultOptions(),
//	})
//
// # Check
//
// Report unsupported shorthand values without writing anything:
//
//	result, err := jsxspace.Check(jsxspace.CheckConfig{
//		Paths: []string{"src/**/*.jsx"},
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/jsxspace/cmd/jsxspace@latest
package jsxspace

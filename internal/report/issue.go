package report

// LinterName is the FromLinter value of every issue jsxspace reports.
const LinterName = "jsxspace"

// Issue represents a single diagnostic in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "jsxspace"
	Text        string   `json:"Text"`        // "unsupported value shape member expression for shorthand attribute \"mb\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Card.jsx"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based, start of the offending value)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue messages
const (
	IssueUnsupportedShape  = "unsupported value shape %s for shorthand attribute %q"
	IssueTooManyValues     = "shorthand attribute %q has %d responsive values but only %d breakpoints are configured"
	IssueParseError        = "cannot parse JSX: %s"
	IssueRepeatedShorthand = "shorthand attribute %q is repeated on <%s>"
)

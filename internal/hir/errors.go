package hir

import "github.com/jscore-dev/jscore/internal/span"

// CompilerOutputMode selects how Pipeline.Run treats a stage's
// CompilerErrors (§4.9): Client and Ssr are the two real compile targets,
// where a single error must abort lowering rather than ship a function the
// pipeline only partially processed; Lint collects every stage's errors
// across the whole pipeline instead, the way a linter rule reports every
// finding in a file rather than stopping at its first.
type CompilerOutputMode uint8

const (
	Client CompilerOutputMode = iota
	Ssr
	Lint
)

// Label attaches a human-facing note to one span of the source a
// CompilerError is about; a single error can carry more than one (e.g. one
// label on the offending call, one on the declaration it conflicts with).
type Label struct {
	Span span.Span
	Text string
}

// ErrorCategory groups a CompilerError for reporting/filtering purposes;
// it deliberately doesn't try to cover every possible failure, only the
// ones the stages in this package actually raise.
type ErrorCategory string

const (
	CategoryUnsupported  ErrorCategory = "unsupported-syntax"
	CategoryInvalidInput ErrorCategory = "invalid-input"
	CategoryInvariant    ErrorCategory = "invariant-violation"
)

// CompilerError is the typed error channel every Stage reports through
// (§4.9): Category classifies it, Message is the primary description, Help
// is an optional suggestion for fixing it, and Labels point at the
// specific source spans involved.
type CompilerError struct {
	Category ErrorCategory
	Message  string
	Help     string
	Labels   []Label
}

func (e *CompilerError) Error() string { return e.Message }

// Diagnostic is what Build reports for a function this pipeline's scoped
// lowering can't represent at all (a loop, a switch, a try/catch): shaped
// like internal/parser.Diagnostic and internal/semantic.Diagnostic so a
// caller already handling those can handle this the same way.
type Diagnostic struct {
	Message string
	Start   uint32
	End     uint32
}

package linter

import "github.com/jscore-dev/jscore/internal/span"

// Label pairs a span with an optional explanatory message, used for both
// a diagnostic's primary location and any secondary, supporting spans
// (§6.2 "Rule diagnostic format").
type Label struct {
	Span    span.Span
	Message string
}

// Edit is one text replacement: replace the bytes in Span with
// Replacement. An empty Replacement is a deletion; a zero-length Span is
// an insertion at that position.
type Edit struct {
	Span        span.Span
	Replacement string
}

// FixProposal is one or more edits a rule attaches to a diagnostic.
// Dangerous marks a fix the engine only applies when the caller has
// explicitly opted in (§4.8 "safe vs dangerous fix filtering").
type FixProposal struct {
	Dangerous bool
	Edits     []Edit
}

// Diagnostic is the uniform record every rule emits and every downstream
// formatter (terminal, JSON, LSP) consumes (§6.2).
type Diagnostic struct {
	RuleID    string
	Severity  Severity
	Message   string
	Primary   Label
	Secondary []Label
	Help      string
	Code      string
	Fix       *FixProposal
}

package linter

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// Context is the per-file mutable state a rule sees while running: the
// parsed program, its semantic tables, project settings, and the
// diagnostic sink (§4.8 "Lint Context"). Every field a rule can read is
// exported; diagnostics are only ever appended through the emit methods
// below, never by touching the slice directly, so RuleID/severity
// defaulting stays in one place.
type Context struct {
	Program  *ast.Program
	Tables   *semantic.Tables
	Path     string
	Source   []byte
	Settings map[string]any
	Globals  map[string]bool

	// BufferID and Buffer carry the zero-copy plugin-bridge handle for this
	// file's arena chunk (§4.7): BufferID is always set once a plugin
	// bridge is in play, Buffer is non-nil only on the chunk's first send.
	// A Context never populates these itself — whatever drives Lint (the
	// pipeline wiring internal/plugin to internal/linter) resolves them
	// from the arena chunk before calling Lint.
	BufferID string
	Buffer   []byte

	allowDangerous bool
	currentRule    Metadata
	diagnostics    []Diagnostic
}

// Diagnostics returns every diagnostic emitted so far, in emission order:
// every enabled rule's RunOnce in registration order first, then the
// shared walk's per-node Run calls in traversal order, with registration
// order breaking ties on the same node.
func (c *Context) Diagnostics() []Diagnostic { return c.diagnostics }

// fill stamps defaults a rule left unset. RuleID and Severity are only
// filled when still zero-valued, rather than overwritten unconditionally:
// a rule proxying diagnostics it did not itself classify (internal/plugin's
// group rule, forwarding one diagnostic per underlying plugin rule id) sets
// both explicitly per diagnostic and must not have them clobbered with the
// proxying rule's own identity.
func (c *Context) fill(d *Diagnostic) {
	if d.RuleID == "" {
		d.RuleID = c.currentRule.QualifiedName()
	}
	if d.Severity == SeverityOff {
		d.Severity = c.currentRule.DefaultSeverity
	}
}

// Diagnostic emits d as-is, with no fix proposal.
func (c *Context) Diagnostic(d Diagnostic) {
	c.fill(&d)
	c.diagnostics = append(c.diagnostics, d)
}

// DiagnosticWithFix emits d with a safe fix built by build, which receives
// a fresh *Fixer to record edits on.
func (c *Context) DiagnosticWithFix(d Diagnostic, build func(f *Fixer)) {
	f := &Fixer{}
	build(f)
	d.Fix = &FixProposal{Edits: f.edits}
	c.fill(&d)
	c.diagnostics = append(c.diagnostics, d)
}

// DiagnosticWithDangerousFix is DiagnosticWithFix's dangerous-fix
// counterpart: the proposal is still recorded and surfaced, but
// ApplyFixes silently drops it unless the caller opted into dangerous
// fixes (§4.8 "dangerous fixes are filtered out unless explicitly
// enabled").
func (c *Context) DiagnosticWithDangerousFix(d Diagnostic, build func(f *Fixer)) {
	f := &Fixer{}
	build(f)
	d.Fix = &FixProposal{Dangerous: true, Edits: f.edits}
	c.fill(&d)
	c.diagnostics = append(c.diagnostics, d)
}

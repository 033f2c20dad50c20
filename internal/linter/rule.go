// Package linter implements the rule registry and shared-walk runner (§4.7,
// §4.8): a uniform Rule contract, a single AST traversal per file dispatching
// to every enabled rule via a per-kind lookup table, and a LintContext/Fixer
// pair each rule uses to emit diagnostics and propose edits. The "one walk,
// many rules" shape is carried over from funvibe-funxy/internal/analyzer's
// single-pass processor, generalized from a fixed analysis pass to an open
// set of pluggable rules.
package linter

import "github.com/jscore-dev/jscore/internal/ast"

// Category classifies a rule's intent, independent of its configured
// severity (§4.7 "rule contract").
type Category string

const (
	CategoryCorrectness Category = "correctness"
	CategoryStyle       Category = "style"
	CategoryPedantic    Category = "pedantic"
	CategorySuspicious  Category = "suspicious"
	CategoryRestriction Category = "restriction"
	CategoryPerf        Category = "perf"
)

// Severity orders how seriously a diagnostic should be treated; Off means
// the rule is configured out entirely and never runs.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityHint
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	default:
		return "off"
	}
}

// FixCapability declares what kind of edit, if any, a rule can propose —
// the runner uses this (plus the per-call choice of emit method) to decide
// whether a fix is ever offered and whether it is safe to apply silently
// (§4.7 "fix capability").
type FixCapability int

const (
	FixNone FixCapability = iota
	FixSafe
	FixSuggestion
	FixDangerous
	FixConditional
)

// Metadata is a rule's stable, static identity: its registration name, an
// optional plugin namespace (empty for a built-in rule), its category,
// default severity, fix capability, and the node kinds its Run wants to
// see. NodeKinds drives the runner's per-kind dispatch table; a rule that
// only implements RunOnce can leave it empty.
type Metadata struct {
	Name            string
	Plugin          string
	Category        Category
	DefaultSeverity Severity
	Fix             FixCapability
	NodeKinds       []ast.Kind
}

// QualifiedName is "plugin/name" for a plugin-hosted rule, or bare Name
// for a built-in one — the id diagnostics and configuration both key on.
func (m Metadata) QualifiedName() string {
	if m.Plugin == "" {
		return m.Name
	}
	return m.Plugin + "/" + m.Name
}

// Rule is the uniform interface every lint rule — built-in or, via
// internal/plugin, foreign — presents to the runner (§4.7 "rule contract").
// Run is called once per visited node whose kind appears in
// Metadata().NodeKinds; RunOnce once per file regardless of NodeKinds, for
// rules that need a whole-program view (e.g. unused-bindings); ShouldRun
// gates the rule out entirely before either is ever called.
type Rule interface {
	Metadata() Metadata
	ShouldRun(ctx *Context) bool
	Run(ctx *Context, node ast.Node)
	RunOnce(ctx *Context)
}

// Base is embedded by rules that only need one of Run/RunOnce, so they
// don't have to write no-op bodies for the other two contract methods.
type Base struct{}

func (Base) ShouldRun(ctx *Context) bool  { return true }
func (Base) Run(ctx *Context, node ast.Node) {}
func (Base) RunOnce(ctx *Context)         {}

package linter

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// Registry holds every rule known to the runner, built-in or loaded from a
// plugin (internal/plugin registers its proxy rules here the same way a
// built-in package does). Registration order is preserved and becomes
// diagnostic emission order for same-node ties.
type Registry struct {
	rules []Rule
}

// NewRegistry returns an empty registry; callers Register built-in rule
// packages and any plugin-backed rules into it before calling Lint.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(rules ...Rule) {
	r.rules = append(r.rules, rules...)
}

func (r *Registry) Rules() []Rule {
	return r.rules
}

// Options configures one Lint call.
type Options struct {
	Path           string
	Source         []byte
	Settings       map[string]any
	Globals        map[string]bool
	BufferID       string
	Buffer         []byte
	AllowDangerous bool
}

// Lint runs every registered, enabled rule over prog in a single shared
// traversal (§4.7 "the runner performs one shared AST walk per file"),
// returning the accumulated diagnostics in emission order. tables may be
// nil for a rule set that never reads semantic.Tables; a rule that does
// and gets a nil Tables is a configuration error, not something this
// function guards against.
func (r *Registry) Lint(prog *ast.Program, tables *semantic.Tables, opts Options) []Diagnostic {
	ctx := &Context{
		Program:        prog,
		Tables:         tables,
		Path:           opts.Path,
		Source:         opts.Source,
		Settings:       opts.Settings,
		Globals:        opts.Globals,
		BufferID:       opts.BufferID,
		Buffer:         opts.Buffer,
		allowDangerous: opts.AllowDangerous,
	}

	enabled := make([]Rule, 0, len(r.rules))
	byKind := make(map[ast.Kind][]Rule)
	for _, rule := range r.rules {
		meta := rule.Metadata()
		ctx.currentRule = meta
		if !rule.ShouldRun(ctx) {
			continue
		}
		enabled = append(enabled, rule)
		for _, k := range meta.NodeKinds {
			byKind[k] = append(byKind[k], rule)
		}
	}

	for _, rule := range enabled {
		ctx.currentRule = rule.Metadata()
		rule.RunOnce(ctx)
	}

	if len(byKind) > 0 {
		walk(prog, nil, func(node ast.Node, _ []ast.Node) {
			for _, rule := range byKind[node.Kind()] {
				ctx.currentRule = rule.Metadata()
				rule.Run(ctx, node)
			}
		})
	}

	return ctx.Diagnostics()
}

// Lint is a convenience wrapper for a one-off registry built from rules,
// useful for callers (tests, a single-rule CLI invocation) that don't need
// a standing Registry.
func Lint(prog *ast.Program, tables *semantic.Tables, rules []Rule, opts Options) []Diagnostic {
	reg := NewRegistry()
	reg.Register(rules...)
	return reg.Lint(prog, tables, opts)
}

package rules

import "github.com/jscore-dev/jscore/internal/linter"

// All returns one instance of every built-in rule, in a stable order, the
// entry point a front-end registers into a fresh linter.Registry (§4.7).
// Plugin-sourced rules are not part of this list; they come from
// internal/plugin.GroupRule instead.
func All() []linter.Rule {
	return []linter.Rule{
		InitDeclarations{},
		NoDebugger{},
		NoDupeKeys{},
		NoUnusedVars{},
		NoWith{},
	}
}

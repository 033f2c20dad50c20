// Package rules holds the built-in lint rules: the first, smallest
// concrete instances of the internal/linter.Rule contract, grounded on
// funvibe-funxy/internal/analyzer's per-concern check files (one rule's
// logic per file, never one giant switch).
package rules

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/linter"
)

// NoDebugger flags a `debugger;` statement left in source (§4.7 "restriction
// rules"): almost always a forgotten breakpoint, never something a
// production bundle should ship.
type NoDebugger struct{ linter.Base }

func (NoDebugger) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            "no-debugger",
		Category:        linter.CategoryRestriction,
		DefaultSeverity: linter.SeverityError,
		Fix:             linter.FixSafe,
		NodeKinds:       []ast.Kind{ast.KindDebuggerStatement},
	}
}

func (NoDebugger) Run(ctx *linter.Context, node ast.Node) {
	stmt := node.(*ast.DebuggerStatement)
	ctx.DiagnosticWithFix(linter.Diagnostic{
		Message: "unexpected 'debugger' statement",
		Primary: linter.Label{Span: stmt.Span()},
		Help:    "remove the debugger statement",
	}, func(f *linter.Fixer) {
		f.Delete(stmt.Span())
	})
}

package rules

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/linter"
)

// NoWith flags a `with` statement. Its body resolves names dynamically
// against the with-object at runtime, which the semantic builder does not
// model (it walks a with's body as an ordinary nested ScopeWith scope and
// resolves the names in it statically); this rule is
// where that gap actually surfaces to a user, rather than silently
// mis-resolving a reference.
type NoWith struct{ linter.Base }

func (NoWith) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            "no-with",
		Category:        linter.CategoryRestriction,
		DefaultSeverity: linter.SeverityError,
		NodeKinds:       []ast.Kind{ast.KindWithStatement},
	}
}

func (NoWith) Run(ctx *linter.Context, node ast.Node) {
	stmt := node.(*ast.WithStatement)
	ctx.Diagnostic(linter.Diagnostic{
		Message: "'with' statements are not allowed",
		Primary: linter.Label{Span: stmt.Span()},
		Help:    "with-blocks make identifier resolution ambiguous; use a temporary variable instead",
	})
}

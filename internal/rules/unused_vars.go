package rules

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// NoUnusedVars flags a var/let/const/function/class/import binding that is
// never referenced anywhere in the file. It runs once per file rather than
// per node (its NodeKinds is left empty) since the answer depends on the
// whole symbol table, not any single declaration site — the same
// whole-program-view case internal/linter.Rule's RunOnce exists for.
// Parameters and catch parameters are excluded: an unused parameter is
// routine (matching a callback signature, destructuring for a later
// positional arg) and flagging it produces far more noise than signal.
type NoUnusedVars struct{ linter.Base }

func (NoUnusedVars) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            "no-unused-vars",
		Category:        linter.CategorySuspicious,
		DefaultSeverity: linter.SeverityWarning,
	}
}

const flaggedUnusedKinds = semantic.SymVar | semantic.SymLet | semantic.SymConst |
	semantic.SymFunction | semantic.SymClass | semantic.SymImport

func (NoUnusedVars) RunOnce(ctx *linter.Context) {
	if ctx.Tables == nil {
		return
	}
	for _, sym := range ctx.Tables.Symbols {
		if sym == nil || sym.Decl == nil {
			continue
		}
		if sym.Flags&flaggedUnusedKinds == 0 {
			continue
		}
		if len(sym.Refs) > 0 {
			continue
		}
		ctx.Diagnostic(linter.Diagnostic{
			Message: fmt.Sprintf("%q is declared but never used", sym.Name),
			Primary: linter.Label{Span: sym.Decl.Span()},
		})
	}
}

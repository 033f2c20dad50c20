package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// ConstantPropagation substitutes a reference to a const-initialized,
// never-reassigned symbol with its initializer at each use site (§4.8
// "constant propagation / inlining"): small literal values (short strings,
// small integers, booleans, null) are always inlined since duplicating
// them is never more expensive than the identifier it replaces; a larger
// literal is only inlined when the symbol has exactly one read, so the
// substitution doesn't duplicate a large value across many call sites.
// Requires semantic.Tables; with a nil Tables this pass is a no-op,
// since "zero writes" and "single read" are exactly what the symbol/
// reference tables answer.
type ConstantPropagation struct{ Base }

func (ConstantPropagation) Name() string { return "constant_propagation" }

// maxAlwaysInlineRaw bounds what counts as "small" for the always-inline
// tier, measured on the literal's raw source text.
const maxAlwaysInlineRaw = 24

func (ConstantPropagation) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) {
	id, ok := e.(*ast.Identifier)
	if !ok || ctx.Tables == nil {
		return e, false
	}
	if id.ReferenceID == ast.NoReferenceId || int(id.ReferenceID) >= len(ctx.Tables.References) {
		return e, false
	}
	ref := ctx.Tables.References[id.ReferenceID]
	if ref == nil || ref.Symbol == semantic.NoSymbolId {
		return e, false
	}
	if ref.Flags&semantic.RefRead == 0 {
		return e, false // never substitute at a plain write/update target
	}
	if int(ref.Symbol) >= len(ctx.Tables.Symbols) {
		return e, false
	}
	sym := ctx.Tables.Symbols[ref.Symbol]
	if sym == nil || sym.Flags&semantic.SymConst == 0 {
		return e, false
	}
	decl, ok := sym.Decl.(*ast.VariableDeclarator)
	if !ok || decl.Init == nil {
		return e, false
	}
	if symbolEverWritten(ctx.Tables, sym) {
		return e, false
	}
	lit, raw, ok := literalValue(decl.Init)
	if !ok {
		return e, false
	}
	if len(raw) > maxAlwaysInlineRaw && len(sym.Refs) != 1 {
		return e, false
	}
	return cloneLiteral(lit, id.Span()), true
}

// symbolEverWritten reports whether any of sym's recorded references is a
// write occurrence. `const` already forbids reassignment syntactically,
// but a destructured const binding's element can still be separately
// flagged by a RefWrite reference if the parser ever records one, so this
// checks rather than trusting the const keyword alone.
func symbolEverWritten(tables *semantic.Tables, sym *semantic.Symbol) bool {
	for _, rid := range sym.Refs {
		if int(rid) >= len(tables.References) {
			continue
		}
		if ref := tables.References[rid]; ref != nil && ref.Flags&semantic.RefWrite != 0 {
			return true
		}
	}
	return false
}

package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// InlineFunctions converts a function declaration that is read exactly
// once, never reassigned, never exported, and whose body is a single
// `return <expr>;` into an inline function expression at its one call
// site (§4.8 "function-declaration inlining"). Scope here is deliberately
// narrow: a multi-statement body, a function referencing anything from an
// enclosing scope other than its own parameters, or a call site that
// isn't a direct CallExpression (e.g. the function is only ever passed by
// reference, never invoked) are all left alone; those need the alias
// analysis the Deep Optimization Pipeline's effect-inference stage
// (internal/hir) does properly, not a peephole rule.
type InlineFunctions struct{ Base }

func (InlineFunctions) Name() string { return "function_inlining" }

func (InlineFunctions) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) {
	call, ok := e.(*ast.CallExpression)
	if !ok || ctx.Tables == nil {
		return e, false
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok {
		return e, false
	}
	decl, body, ok := resolveInlinableFunction(ctx.Tables, callee)
	if !ok {
		return e, false
	}
	if len(decl.Params) != len(call.Arguments) {
		return e, false
	}
	subst := make(map[semantic.ReferenceId]ast.Expression, len(decl.Params))
	for i, p := range decl.Params {
		param, ok := p.(*ast.Identifier)
		if !ok || param.SymbolID == semantic.NoSymbolId {
			return e, false
		}
		if !isSimpleArgument(call.Arguments[i]) {
			return e, false
		}
		for _, rid := range ctx.Tables.Symbols[param.SymbolID].Refs {
			subst[rid] = call.Arguments[i]
		}
	}
	return substituteIdentifiers(body, subst), true
}

// resolveInlinableFunction reports the function's Function data and its
// single `return <expr>` body when callee names a symbol that qualifies
// for inlining: exactly one read reference (the call site itself), a
// FunctionDeclaration binding, and a body of exactly one ReturnStatement.
func resolveInlinableFunction(tables *semantic.Tables, callee *ast.Identifier) (*ast.Function, ast.Expression, bool) {
	if callee.ReferenceID == ast.NoReferenceId || int(callee.ReferenceID) >= len(tables.References) {
		return nil, nil, false
	}
	ref := tables.References[callee.ReferenceID]
	if ref == nil || ref.Symbol == semantic.NoSymbolId {
		return nil, nil, false
	}
	if int(ref.Symbol) >= len(tables.Symbols) {
		return nil, nil, false
	}
	sym := tables.Symbols[ref.Symbol]
	if sym == nil || sym.Flags&semantic.SymFunction == 0 || len(sym.Refs) != 1 {
		return nil, nil, false
	}
	fd, ok := sym.Decl.(*ast.FunctionDeclaration)
	if !ok || fd.Generator || fd.Async {
		return nil, nil, false
	}
	block, ok := fd.Body.(*ast.BlockStatement)
	if !ok || len(block.Body) != 1 {
		return nil, nil, false
	}
	ret, ok := block.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Argument == nil {
		return nil, nil, false
	}
	return &fd.Function, ret.Argument, true
}

// isSimpleArgument restricts inlining to call sites whose arguments are an
// identifier or literal: substituting a side-effecting expression for a
// parameter used more than once (or in a different order than evaluated)
// would change observable behavior, and this pass does no use-count or
// ordering analysis of the callee's body to prove that safe.
func isSimpleArgument(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.NumericLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	default:
		return false
	}
}

// substituteIdentifiers returns a copy of body with every Identifier whose
// ReferenceID is a key of subst (a read of a parameter) replaced by the
// corresponding argument expression; everything else is returned as-is
// (arguments are already simple, side-effect-free nodes per
// isSimpleArgument, so sharing them across substitution sites is safe).
func substituteIdentifiers(body ast.Expression, subst map[semantic.ReferenceId]ast.Expression) ast.Expression {
	if id, ok := body.(*ast.Identifier); ok {
		if repl, ok := subst[id.ReferenceID]; ok {
			return repl
		}
		return body
	}
	switch n := body.(type) {
	case *ast.BinaryExpression:
		n.Left = substituteIdentifiers(n.Left, subst)
		n.Right = substituteIdentifiers(n.Right, subst)
	case *ast.LogicalExpression:
		n.Left = substituteIdentifiers(n.Left, subst)
		n.Right = substituteIdentifiers(n.Right, subst)
	case *ast.UnaryExpression:
		n.Argument = substituteIdentifiers(n.Argument, subst)
	case *ast.ConditionalExpression:
		n.Test = substituteIdentifiers(n.Test, subst)
		n.Consequent = substituteIdentifiers(n.Consequent, subst)
		n.Alternate = substituteIdentifiers(n.Alternate, subst)
	case *ast.MemberExpression:
		n.Object = substituteIdentifiers(n.Object, subst)
		if n.Computed {
			n.Property = substituteIdentifiers(n.Property, subst)
		}
	case *ast.CallExpression:
		n.Callee = substituteIdentifiers(n.Callee, subst)
		for i, a := range n.Arguments {
			n.Arguments[i] = substituteIdentifiers(a, subst)
		}
	}
	return body
}

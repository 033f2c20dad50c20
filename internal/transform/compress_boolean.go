package transform

import "github.com/jscore-dev/jscore/internal/ast"

// CompressBoolean rewrites a `true`/`false` literal to `!0`/`!1`, one byte
// shorter in the common case and never observably different, except where
// the boolean's own identity as a boolean (not just its truthiness) leaks
// through a parent operator: `true + 1` (`1` vs `2`), `x instanceof true`
// (a TypeError either way, but the rewrite must not be the thing that
// changes which values throw), `"a" in false`, and `true === x` (`!0 ===
// x` still works since `!0` is strictly `true`, so this one is actually
// safe; it is excluded here anyway since distinguishing it from the unsafe
// arithmetic/instanceof/in cases isn't worth the risk for one byte).
// Everywhere else (if/while/for tests, `&&`/`||`/`??` operands, `!`,
// ternary tests, call arguments, plain statements) only truthiness is ever
// observed, so the rewrite is safe.
type CompressBoolean struct{ Base }

func (CompressBoolean) Name() string { return "compress_boolean" }

func (CompressBoolean) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) {
	lit, ok := e.(*ast.BooleanLiteral)
	if !ok {
		return e, false
	}
	if parentForbids(ctx.Parent()) {
		return e, false
	}
	arg := &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, lit.Span())}
	if lit.Value {
		arg.Value, arg.Raw = 0, "0"
	} else {
		arg.Value, arg.Raw = 1, "1"
	}
	return &ast.UnaryExpression{
		Base:     ast.NewBase(ast.KindUnaryExpression, lit.Span()),
		Operator: "!",
		Argument: arg,
		Prefix:   true,
	}, true
}

func parentForbids(parent ast.Node) bool {
	bin, ok := parent.(*ast.BinaryExpression)
	if !ok {
		return false
	}
	switch bin.Operator {
	case "+", "instanceof", "in", "===", "!==":
		return true
	default:
		return false
	}
}

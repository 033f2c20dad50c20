package transform

import "github.com/jscore-dev/jscore/internal/ast"

// CompressTypeofUndefined rewrites `typeof x == "undefined"` (and its
// strict/negated/commuted forms) to `typeof x > "u"`: every typeof result
// string other than "undefined" sorts before "u" lexicographically except
// "undefined" itself, so the `>` comparison is equivalent but shorter and
// avoids quoting the full word twice in the minified output.
type CompressTypeofUndefined struct{ Base }

func (CompressTypeofUndefined) Name() string { return "compress_typeof_undefined" }

func (CompressTypeofUndefined) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) {
	bin, ok := e.(*ast.BinaryExpression)
	if !ok {
		return e, false
	}
	typeofSide, strSide, negate, ok := classify(bin)
	if !ok {
		return e, false
	}
	if !isTypeofExpr(typeofSide) || !isUndefinedStringLiteral(strSide) {
		return e, false
	}
	gt := &ast.BinaryExpression{
		Base:     ast.NewBase(ast.KindBinaryExpression, bin.Span()),
		Operator: ">",
		Left:     typeofSide,
		Right:    &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, strSide.Span()), Value: "u", Raw: `"u"`},
	}
	if negate {
		return &ast.UnaryExpression{
			Base:     ast.NewBase(ast.KindUnaryExpression, bin.Span()),
			Operator: "!",
			Argument: gt,
			Prefix:   true,
		}, true
	}
	return gt, true
}

// classify reports whether bin is an (in)equality comparison and, if so,
// its two operands in (typeof-side, string-side) order along with whether
// the comparison is a negated form (!=/!==).
func classify(bin *ast.BinaryExpression) (typeofSide, strSide ast.Expression, negate, ok bool) {
	switch bin.Operator {
	case "==", "===":
	case "!=", "!==":
		negate = true
	default:
		return nil, nil, false, false
	}
	if isTypeofExpr(bin.Left) {
		return bin.Left, bin.Right, negate, true
	}
	if isTypeofExpr(bin.Right) {
		return bin.Right, bin.Left, negate, true
	}
	return nil, nil, false, false
}

func isTypeofExpr(e ast.Expression) bool {
	u, ok := e.(*ast.UnaryExpression)
	return ok && u.Operator == "typeof"
}

func isUndefinedStringLiteral(e ast.Expression) bool {
	s, ok := e.(*ast.StringLiteral)
	return ok && s.Value == "undefined"
}

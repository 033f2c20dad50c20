package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// literalValue reports whether e is a literal simple enough for
// ConstantPropagation to duplicate at a use site, along with the raw
// source text used to size it. Template literals, arrays, objects, and
// anything else that could itself contain side-effecting sub-expressions
// are deliberately excluded.
func literalValue(e ast.Expression) (lit ast.Expression, raw string, ok bool) {
	switch n := e.(type) {
	case *ast.NumericLiteral:
		return n, n.Raw, true
	case *ast.StringLiteral:
		return n, n.Raw, true
	case *ast.BooleanLiteral:
		return n, "true", true // length is irrelevant for a bool, always small
	case *ast.NullLiteral:
		return n, "null", true
	default:
		return nil, "", false
	}
}

// cloneLiteral copies lit with a fresh span so the substituted copy at a
// use site doesn't alias the declaration's own node (callers that later
// walk the tree by identity, e.g. a source-map pass, must see two nodes).
func cloneLiteral(lit ast.Expression, at span.Span) ast.Expression {
	switch n := lit.(type) {
	case *ast.NumericLiteral:
		return &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, at), Value: n.Value, Raw: n.Raw}
	case *ast.StringLiteral:
		return &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, at), Value: n.Value, Raw: n.Raw}
	case *ast.BooleanLiteral:
		return &ast.BooleanLiteral{Base: ast.NewBase(ast.KindBooleanLiteral, at), Value: n.Value}
	case *ast.NullLiteral:
		return &ast.NullLiteral{Base: ast.NewBase(ast.KindNullLiteral, at)}
	default:
		return lit
	}
}

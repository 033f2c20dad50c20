package visitor

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

func ident(name string) *ast.Identifier {
	return ast.NewIdentifier(span.New(0, uint32(len(name))), name)
}

func TestWalkVisitsNestedBinaryExpression(t *testing.T) {
	left := ident("a")
	right := ident("b")
	bin := &ast.BinaryExpression{Operator: "+", Left: left, Right: right}
	stmt := &ast.ExpressionStatement{Expression: bin}
	prog := &ast.Program{Body: []ast.Statement{stmt}}

	var seen []string
	err := Walk(prog, func(n ast.Node, ancestors []ast.Node) error {
		if id, ok := n.(*ast.Identifier); ok {
			seen = append(seen, id.Name)
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("expected [a b], got %v", seen)
	}
}

func TestWalkSkipSuppressesChildren(t *testing.T) {
	inner := ident("inner")
	outer := &ast.UnaryExpression{Operator: "!", Argument: inner}
	stmt := &ast.ExpressionStatement{Expression: outer}
	prog := &ast.Program{Body: []ast.Statement{stmt}}

	var sawInner bool
	err := Walk(prog, func(n ast.Node, ancestors []ast.Node) error {
		if _, ok := n.(*ast.UnaryExpression); ok {
			return ErrSkip
		}
		if _, ok := n.(*ast.Identifier); ok {
			sawInner = true
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawInner {
		t.Fatalf("expected ErrSkip to suppress descent into UnaryExpression's children")
	}
}

func TestWalkAncestorStack(t *testing.T) {
	id := ident("x")
	stmt := &ast.ExpressionStatement{Expression: id}
	prog := &ast.Program{Body: []ast.Statement{stmt}}

	var depth int
	err := Walk(prog, func(n ast.Node, ancestors []ast.Node) error {
		if _, ok := n.(*ast.Identifier); ok {
			depth = len(ancestors)
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth != 2 {
		t.Fatalf("expected identifier to have 2 ancestors (Program, ExpressionStatement), got %d", depth)
	}
}

func TestFunctionExpressionWithNilIDDoesNotPanic(t *testing.T) {
	fn := &ast.FunctionExpression{Function: ast.Function{Body: &ast.BlockStatement{}}}
	stmt := &ast.ExpressionStatement{Expression: fn}
	prog := &ast.Program{Body: []ast.Statement{stmt}}

	if err := Walk(prog, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestInlineFunctionsSubstitutesSingleCallSite(t *testing.T) {
	prog, tables := parseProgram(t, `function add(a, b) { return a + b; } var r = add(1, 2);`)
	transform.NewDriver(transform.InlineFunctions{}).Run(prog, tables)

	decl := prog.Body[1].(*ast.VariableDeclaration)
	bin, ok := decl.Declarations[0].Init.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("want `add(1, 2)` inlined to `1 + 2`, got %#v", decl.Declarations[0].Init)
	}
	left, ok := bin.Left.(*ast.NumericLiteral)
	if !ok || left.Value != 1 {
		t.Fatalf("want left operand substituted with argument 1, got %#v", bin.Left)
	}
	right, ok := bin.Right.(*ast.NumericLiteral)
	if !ok || right.Value != 2 {
		t.Fatalf("want right operand substituted with argument 2, got %#v", bin.Right)
	}
}

func TestInlineFunctionsSkipsMultiplyCalledFunction(t *testing.T) {
	prog, tables := parseProgram(t, `function add(a, b) { return a + b; } var r = add(1, 2); var s = add(3, 4);`)
	transform.NewDriver(transform.InlineFunctions{}).Run(prog, tables)

	decl := prog.Body[1].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.CallExpression); !ok {
		t.Fatalf("want a function called more than once left as a call, got %#v", decl.Declarations[0].Init)
	}
}

func TestInlineFunctionsSkipsMultiStatementBody(t *testing.T) {
	prog, tables := parseProgram(t, `function add(a, b) { var t = a; return t + b; } var r = add(1, 2);`)
	transform.NewDriver(transform.InlineFunctions{}).Run(prog, tables)

	decl := prog.Body[1].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.CallExpression); !ok {
		t.Fatalf("want a multi-statement function body left un-inlined, got %#v", decl.Declarations[0].Init)
	}
}

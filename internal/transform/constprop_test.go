package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestConstantPropagationInlinesSmallLiteral(t *testing.T) {
	prog, tables := parseProgram(t, `const a = 1; var b = a + 2;`)
	transform.NewDriver(transform.ConstantPropagation{}).Run(prog, tables)

	decl := prog.Body[1].(*ast.VariableDeclaration)
	bin := decl.Declarations[0].Init.(*ast.BinaryExpression)
	num, ok := bin.Left.(*ast.NumericLiteral)
	if !ok || num.Value != 1 {
		t.Fatalf("want `a` inlined to the literal 1, got %#v", bin.Left)
	}
}

func TestConstantPropagationSkipsMultiplyReferencedLargeLiteral(t *testing.T) {
	const src = `const big = "this raw text is deliberately over twenty four bytes long";
var x = big;
var y = big;`
	prog, tables := parseProgram(t, src)
	transform.NewDriver(transform.ConstantPropagation{}).Run(prog, tables)

	xDecl := prog.Body[1].(*ast.VariableDeclaration)
	if _, ok := xDecl.Declarations[0].Init.(*ast.Identifier); !ok {
		t.Fatalf("want a large literal with more than one use left as a reference, got %#v", xDecl.Declarations[0].Init)
	}
}

func TestConstantPropagationInlinesSingleUseLargeLiteral(t *testing.T) {
	const src = `const big = "this raw text is deliberately over twenty four bytes long";
var x = big;`
	prog, tables := parseProgram(t, src)
	transform.NewDriver(transform.ConstantPropagation{}).Run(prog, tables)

	xDecl := prog.Body[1].(*ast.VariableDeclaration)
	str, ok := xDecl.Declarations[0].Init.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("want a single-use large literal inlined, got %#v", xDecl.Declarations[0].Init)
	}
	if str.Value != "this raw text is deliberately over twenty four bytes long" {
		t.Fatalf("unexpected inlined value %q", str.Value)
	}
}

func TestConstantPropagationNoopWithoutTables(t *testing.T) {
	prog, _ := parseProgram(t, `const a = 1; var b = a + 2;`)
	transform.NewDriver(transform.ConstantPropagation{}).Run(prog, nil)

	decl := prog.Body[1].(*ast.VariableDeclaration)
	bin := decl.Declarations[0].Init.(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.Identifier); !ok {
		t.Fatalf("want untouched Identifier when run without semantic tables, got %#v", bin.Left)
	}
}

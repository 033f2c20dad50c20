package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestCompressBooleanRewritesPlainLiteral(t *testing.T) {
	prog, tables := parseProgram(t, `var a = true;`)
	transform.NewDriver(transform.CompressBoolean{}).Run(prog, tables)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	u, ok := decl.Declarations[0].Init.(*ast.UnaryExpression)
	if !ok || u.Operator != "!" {
		t.Fatalf("want !0, got %#v", decl.Declarations[0].Init)
	}
	num, ok := u.Argument.(*ast.NumericLiteral)
	if !ok || num.Value != 0 {
		t.Fatalf("want argument 0, got %#v", u.Argument)
	}
}

func TestCompressBooleanSkipsArithmeticOperand(t *testing.T) {
	prog, tables := parseProgram(t, `var b = true + 1;`)
	transform.NewDriver(transform.CompressBoolean{}).Run(prog, tables)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	bin := decl.Declarations[0].Init.(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.BooleanLiteral); !ok {
		t.Fatalf("want left operand of '+' left untouched, got %#v", bin.Left)
	}
}

func TestCompressBooleanRewritesLogicalOperand(t *testing.T) {
	prog, tables := parseProgram(t, `var c = true && foo();`)
	transform.NewDriver(transform.CompressBoolean{}).Run(prog, tables)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	logical := decl.Declarations[0].Init.(*ast.LogicalExpression)
	if _, ok := logical.Left.(*ast.UnaryExpression); !ok {
		t.Fatalf("want left operand of '&&' rewritten, got %#v", logical.Left)
	}
}

package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestCompressBlockUnwrapsSingleStatement(t *testing.T) {
	prog, tables := parseProgram(t, `if (x) { y(); }`)
	transform.NewDriver(transform.CompressBlock{}).Run(prog, tables)

	ifStmt := prog.Body[0].(*ast.IfStatement)
	if _, ok := ifStmt.Consequent.(*ast.ExpressionStatement); !ok {
		t.Fatalf("want consequent unwrapped to ExpressionStatement, got %T", ifStmt.Consequent)
	}
}

func TestCompressBlockLeavesDeclarationWrapped(t *testing.T) {
	prog, tables := parseProgram(t, `if (x) { let y = 1; }`)
	transform.NewDriver(transform.CompressBlock{}).Run(prog, tables)

	ifStmt := prog.Body[0].(*ast.IfStatement)
	if _, ok := ifStmt.Consequent.(*ast.BlockStatement); !ok {
		t.Fatalf("want consequent left as BlockStatement (declaration must not escape), got %T", ifStmt.Consequent)
	}
}

func TestCompressBlockLeavesMultiStatementBlock(t *testing.T) {
	prog, tables := parseProgram(t, `if (x) { y(); z(); }`)
	transform.NewDriver(transform.CompressBlock{}).Run(prog, tables)

	ifStmt := prog.Body[0].(*ast.IfStatement)
	block, ok := ifStmt.Consequent.(*ast.BlockStatement)
	if !ok || len(block.Body) != 2 {
		t.Fatalf("want 2-statement block left alone, got %#v", ifStmt.Consequent)
	}
}

package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
)

// mustParse parses src as a plain script and fails the test on any
// diagnostic, the entry point most grammar tests in this package use.
func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceScript})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return prog
}

func firstStmt(t *testing.T, prog *ast.Program) ast.Statement {
	t.Helper()
	if len(prog.Body) == 0 {
		t.Fatalf("program has no statements")
	}
	return prog.Body[0]
}

func exprOf(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("want *ast.ExpressionStatement, got %T", stmt)
	}
	return es.Expression
}

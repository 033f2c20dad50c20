package printer_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
)

// parseProgram parses src as a plain script, the same entry point a caller
// upstream of internal/printer would use to build the tree it hands off
// for printing. Printing has no dependency on semantic.Build, so unlike
// internal/transform's own helper this one stops at the parser.
func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceScript})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return prog
}

func parseJSXProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceModule, JSX: true, TypeScript: true})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return prog
}

package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// parseProgram parses src as a script and runs semantic analysis, the same
// way a caller upstream of internal/transform would build a Driver's inputs.
func parseProgram(t *testing.T, src string) (*ast.Program, *semantic.Tables) {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceScript})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	tables, semDiags := semantic.Build(prog)
	if len(semDiags) != 0 {
		t.Fatalf("semantic build %q: %v", src, semDiags)
	}
	return prog, tables
}

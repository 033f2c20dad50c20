package hir_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/hir"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
)

// parseFunction parses src (expected to be a single function declaration
// statement) and returns the *ast.Function embedded in it, the same shape
// internal/hir.Build takes as its argument.
func parseFunction(t *testing.T, src string) *ast.Function {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceScript})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	if len(prog.Body) == 0 {
		t.Fatalf("parse %q: empty program", src)
	}
	decl, ok := prog.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("parse %q: want FunctionDeclaration, got %T", src, prog.Body[0])
	}
	return &decl.Function
}

// buildAndRun is the common path most pipeline-stage tests need: lower src's
// function to HIR, run the full Deep Optimization Pipeline over it, and fail
// the test immediately on either a lowering diagnostic or a stage error.
func buildAndRun(t *testing.T, src string) *hir.HIRFunction {
	t.Helper()
	fn, diags := hir.Build(parseFunction(t, src))
	if len(diags) != 0 {
		t.Fatalf("build %q: %v", src, diags)
	}
	if errs := hir.DefaultPipeline().Run(fn, hir.Client); len(errs) != 0 {
		t.Fatalf("pipeline %q: %v", src, errs)
	}
	return fn
}

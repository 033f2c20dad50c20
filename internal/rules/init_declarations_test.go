package rules_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/parser"
	"github.com/jscore-dev/jscore/internal/rules"
)

func lintTS(t *testing.T, src string) []linter.Diagnostic {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceModule, TypeScript: true})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return linter.Lint(prog, nil, []linter.Rule{rules.InitDeclarations{}}, linter.Options{})
}

func TestInitDeclarationsFlagsUninitializedBinding(t *testing.T) {
	diags := lintTS(t, "let x;")
	if len(diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %+v", diags)
	}
	if diags[0].RuleID != "init-declarations" {
		t.Fatalf("want init-declarations, got %q", diags[0].RuleID)
	}
}

func TestInitDeclarationsAllowsInitializedBinding(t *testing.T) {
	diags := lintTS(t, "let x = 1;")
	if len(diags) != 0 {
		t.Fatalf("want no diagnostics, got %+v", diags)
	}
}

func TestInitDeclarationsExemptsDeclareNamespaceBody(t *testing.T) {
	diags := lintTS(t, "declare namespace App { const version; }")
	if len(diags) != 0 {
		t.Fatalf("want declare namespace body exempt, got %+v", diags)
	}
}

func TestInitDeclarationsStillChecksPlainNamespaceBody(t *testing.T) {
	diags := lintTS(t, "namespace App { let version; }")
	if len(diags) != 1 {
		t.Fatalf("want a plain (non-declare) namespace body still checked, got %+v", diags)
	}
}

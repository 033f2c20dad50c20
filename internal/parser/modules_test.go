package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
)

func mustParseModule(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceModule})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return prog
}

func TestParseImportSideEffectOnly(t *testing.T) {
	prog := mustParseModule(t, `import "polyfill";`)
	imp := firstStmt(t, prog).(*ast.ImportDeclaration)
	if imp.Source.Value != "polyfill" || len(imp.Specifiers) != 0 {
		t.Fatalf("want a bare side-effect import, got %+v", imp)
	}
}

func TestParseImportDefaultNamedAndNamespace(t *testing.T) {
	prog := mustParseModule(t, `import Def, { a, b as c } from "mod";`)
	imp := firstStmt(t, prog).(*ast.ImportDeclaration)
	if len(imp.Specifiers) != 3 {
		t.Fatalf("want 3 specifiers, got %d", len(imp.Specifiers))
	}
	def, ok := imp.Specifiers[0].(*ast.ImportDefaultSpecifier)
	if !ok || def.Local.Name != "Def" {
		t.Fatalf("want a default specifier named Def, got %#v", imp.Specifiers[0])
	}
	named, ok := imp.Specifiers[1].(*ast.ImportSpecifier)
	if !ok || named.Imported.Name != "a" || named.Local.Name != "a" {
		t.Fatalf("want a named specifier a, got %#v", imp.Specifiers[1])
	}
	aliased, ok := imp.Specifiers[2].(*ast.ImportSpecifier)
	if !ok || aliased.Imported.Name != "b" || aliased.Local.Name != "c" {
		t.Fatalf("want b aliased to c, got %#v", imp.Specifiers[2])
	}
}

func TestParseImportNamespace(t *testing.T) {
	prog := mustParseModule(t, `import * as ns from "mod";`)
	imp := firstStmt(t, prog).(*ast.ImportDeclaration)
	ns, ok := imp.Specifiers[0].(*ast.ImportNamespaceSpecifier)
	if !ok || ns.Local.Name != "ns" {
		t.Fatalf("want a namespace specifier ns, got %#v", imp.Specifiers[0])
	}
}

func TestParseImportType(t *testing.T) {
	prog := mustParseModule(t, `import type { T } from "mod";`)
	imp := firstStmt(t, prog).(*ast.ImportDeclaration)
	if !imp.TypeOnly {
		t.Fatalf("want TypeOnly=true")
	}
}

func TestParseExportNamedDeclarationForm(t *testing.T) {
	prog := mustParseModule(t, `export const x = 1;`)
	exp := firstStmt(t, prog).(*ast.ExportNamedDeclaration)
	if exp.Declaration == nil || len(exp.Specifiers) != 0 {
		t.Fatalf("want a wrapped declaration and no specifiers, got %+v", exp)
	}
	if _, ok := exp.Declaration.(*ast.VariableDeclaration); !ok {
		t.Fatalf("want the wrapped declaration to be a var decl, got %T", exp.Declaration)
	}
}

func TestParseExportSpecifierListForm(t *testing.T) {
	prog := mustParseModule(t, `export { a, b as c };`)
	exp := firstStmt(t, prog).(*ast.ExportNamedDeclaration)
	if exp.Declaration != nil {
		t.Fatalf("want a nil Declaration for a specifier-list export, got %#v", exp.Declaration)
	}
	if len(exp.Specifiers) != 2 {
		t.Fatalf("want 2 specifiers, got %d", len(exp.Specifiers))
	}
	if exp.Specifiers[1].Local.Name != "b" || exp.Specifiers[1].Exported.Name != "c" {
		t.Fatalf("want b exported as c, got %+v", exp.Specifiers[1])
	}
}

func TestParseExportDefault(t *testing.T) {
	prog := mustParseModule(t, `export default function f() {}`)
	exp := firstStmt(t, prog).(*ast.ExportDefaultDeclaration)
	if _, ok := exp.Declaration.(*ast.FunctionDeclaration); !ok {
		t.Fatalf("want a wrapped FunctionDeclaration, got %T", exp.Declaration)
	}
}

func TestParseExportAll(t *testing.T) {
	prog := mustParseModule(t, `export * from "mod"; export * as ns from "mod";`)
	bare := firstStmt(t, prog).(*ast.ExportAllDeclaration)
	if bare.Exported != nil {
		t.Fatalf("want a nil Exported for a bare export *, got %#v", bare.Exported)
	}
	aliased := prog.Body[1].(*ast.ExportAllDeclaration)
	if aliased.Exported == nil || aliased.Exported.Name != "ns" {
		t.Fatalf("want Exported=ns, got %#v", aliased.Exported)
	}
}

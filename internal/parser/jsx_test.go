package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
)

func mustParseJSX(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src)
	prog, diags := parser.ParseProgram(lx, lx, parser.Options{SourceType: ast.SourceModule, JSX: true})
	if len(diags) != 0 {
		t.Fatalf("parse %q: %v", src, diags)
	}
	return prog
}

func TestParseJSXSelfClosingElement(t *testing.T) {
	prog := mustParseJSX(t, `const el = <Foo bar="baz" />;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	elem := decl.Declarations[0].Init.(*ast.JSXElement)
	if !elem.SelfClosing {
		t.Fatalf("want SelfClosing=true")
	}
	if len(elem.Attributes) != 1 {
		t.Fatalf("want 1 attribute, got %d", len(elem.Attributes))
	}
	attr := elem.Attributes[0].(*ast.JSXAttribute)
	if attr.Name.Name != "bar" {
		t.Fatalf("want attribute name bar, got %q", attr.Name.Name)
	}
	str, ok := attr.Value.(*ast.StringLiteral)
	if !ok || str.Value != "baz" {
		t.Fatalf("want attribute value baz, got %#v", attr.Value)
	}
}

func TestParseJSXChildrenTextAndExpression(t *testing.T) {
	prog := mustParseJSX(t, `const el = <div>hi {name}</div>;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	elem := decl.Declarations[0].Init.(*ast.JSXElement)
	if len(elem.Children) != 2 {
		t.Fatalf("want 2 children (text + expression container), got %d: %#v", len(elem.Children), elem.Children)
	}
	text, ok := elem.Children[0].(*ast.JSXText)
	if !ok || text.Value != "hi " {
		t.Fatalf("want JSXText(%q), got %#v", "hi ", elem.Children[0])
	}
	container, ok := elem.Children[1].(*ast.JSXExpressionContainer)
	if !ok {
		t.Fatalf("want *ast.JSXExpressionContainer, got %T", elem.Children[1])
	}
	ident, ok := container.Expression.(*ast.Identifier)
	if !ok || ident.Name != "name" {
		t.Fatalf("want the container to hold identifier `name`, got %#v", container.Expression)
	}
}

func TestParseJSXNestedElements(t *testing.T) {
	prog := mustParseJSX(t, `const el = <div><span>{x}</span></div>;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	outer := decl.Declarations[0].Init.(*ast.JSXElement)
	if len(outer.Children) != 1 {
		t.Fatalf("want 1 child (no whitespace between tags), got %d", len(outer.Children))
	}
	inner, ok := outer.Children[0].(*ast.JSXElement)
	if !ok {
		t.Fatalf("want a nested *ast.JSXElement, got %T", outer.Children[0])
	}
	name, ok := inner.Name.(*ast.JSXIdentifier)
	if !ok || name.Name != "span" {
		t.Fatalf("want inner element named span, got %#v", inner.Name)
	}
}

func TestParseJSXFragment(t *testing.T) {
	prog := mustParseJSX(t, `const el = <><span/></>;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	frag, ok := decl.Declarations[0].Init.(*ast.JSXFragment)
	if !ok {
		t.Fatalf("want *ast.JSXFragment, got %T", decl.Declarations[0].Init)
	}
	if len(frag.Children) != 1 {
		t.Fatalf("want 1 child, got %d", len(frag.Children))
	}
}

func TestParseJSXMemberExpressionName(t *testing.T) {
	prog := mustParseJSX(t, `const el = <Foo.Bar />;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	elem := decl.Declarations[0].Init.(*ast.JSXElement)
	member, ok := elem.Name.(*ast.JSXMemberExpression)
	if !ok {
		t.Fatalf("want *ast.JSXMemberExpression, got %T", elem.Name)
	}
	if member.Property.Name != "Bar" {
		t.Fatalf("want Property=Bar, got %q", member.Property.Name)
	}
}

func TestParseJSXSpreadAttribute(t *testing.T) {
	prog := mustParseJSX(t, `const el = <Foo {...props} />;`)
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	elem := decl.Declarations[0].Init.(*ast.JSXElement)
	spread, ok := elem.Attributes[0].(*ast.JSXSpreadAttribute)
	if !ok {
		t.Fatalf("want *ast.JSXSpreadAttribute, got %T", elem.Attributes[0])
	}
	ident, ok := spread.Argument.(*ast.Identifier)
	if !ok || ident.Name != "props" {
		t.Fatalf("want spread argument `props`, got %#v", spread.Argument)
	}
}

package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestReplaceUndefinedRewritesGlobalReference(t *testing.T) {
	prog, tables := parseProgram(t, `var a = undefined;`)
	transform.NewDriver(transform.ReplaceUndefined{}).Run(prog, tables)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	u, ok := decl.Declarations[0].Init.(*ast.UnaryExpression)
	if !ok || u.Operator != "void" {
		t.Fatalf("want `void 0`, got %#v", decl.Declarations[0].Init)
	}
}

func TestReplaceUndefinedLeavesShadowedParameterAlone(t *testing.T) {
	prog, tables := parseProgram(t, `function f(undefined) { return undefined; }`)
	transform.NewDriver(transform.ReplaceUndefined{}).Run(prog, tables)

	fn := prog.Body[0].(*ast.FunctionDeclaration)
	block := fn.Body.(*ast.BlockStatement)
	ret := block.Body[0].(*ast.ReturnStatement)
	if _, ok := ret.Argument.(*ast.Identifier); !ok {
		t.Fatalf("want shadowed parameter reference left as an Identifier, got %#v", ret.Argument)
	}
}

func TestReplaceUndefinedNoopWithoutTables(t *testing.T) {
	prog, _ := parseProgram(t, `var a = undefined;`)
	transform.NewDriver(transform.ReplaceUndefined{}).Run(prog, nil)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.Identifier); !ok {
		t.Fatalf("want untouched Identifier when run without semantic tables, got %#v", decl.Declarations[0].Init)
	}
}

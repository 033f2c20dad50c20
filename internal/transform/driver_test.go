package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestDriverStopsAtFixpoint(t *testing.T) {
	prog, tables := parseProgram(t, `var a = true;`)
	n := transform.NewDriver(transform.CompressBoolean{}).Run(prog, tables)

	if n != 2 {
		t.Fatalf("want exactly one rewriting iteration followed by one confirming no-change iteration (2 total), got %d", n)
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.UnaryExpression); !ok {
		t.Fatalf("want the literal rewritten despite the iteration count assertion, got %#v", decl.Declarations[0].Init)
	}
}

func TestDriverRunsPassesInRegistrationOrderWithinOneTraversal(t *testing.T) {
	// compress_typeof_undefined must see the raw `typeof x == "undefined"`
	// shape before anything else rewrites it away; chaining it ahead of
	// compress_boolean in one Driver exercises that a later pass receives
	// an earlier pass's output within the same traversal.
	prog, tables := parseProgram(t, `x = typeof x == "undefined";`)
	driver := transform.NewDriver(transform.CompressTypeofUndefined{}, transform.CompressBoolean{})
	driver.Run(prog, tables)

	assign := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	bin, ok := assign.Right.(*ast.BinaryExpression)
	if !ok || bin.Operator != ">" {
		t.Fatalf("want the typeof rewrite to have applied, got %#v", assign.Right)
	}
}

func TestDriverRespectsMaxIterations(t *testing.T) {
	prog, tables := parseProgram(t, `var a = true;`)
	driver := transform.NewDriver(transform.CompressBoolean{})
	driver.MaxIterations = 1
	n := driver.Run(prog, tables)

	if n != 1 {
		t.Fatalf("want the driver capped at MaxIterations, got %d", n)
	}
}

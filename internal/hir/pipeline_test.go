package hir_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/hir"
)

func TestPipelineFoldsConstantsAndDropsDeadLiterals(t *testing.T) {
	fn := buildAndRun(t, `function f() { let a = 1; let b = 2; return a + b; }`)

	if len(fn.Generated.Body) != 2 {
		t.Fatalf("want 2 generated statements (folded let, return), got %d: %#v", len(fn.Generated.Body), fn.Generated.Body)
	}
	decl, ok := fn.Generated.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("want first statement to be a VariableDeclaration, got %T", fn.Generated.Body[0])
	}
	num, ok := decl.Declarations[0].Init.(*ast.NumericLiteral)
	if !ok || num.Value != 3 {
		t.Fatalf("want the addition folded to the literal 3, got %#v", decl.Declarations[0].Init)
	}
	ret, ok := fn.Generated.Body[1].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("want second statement to be a ReturnStatement, got %T", fn.Generated.Body[1])
	}
	id, ok := ret.Argument.(*ast.Identifier)
	if !ok || id.Name != decl.Declarations[0].ID.(*ast.Identifier).Name {
		t.Fatalf("want the return to reference the folded binding, got %#v", ret.Argument)
	}
}

func TestPipelineKeepsImpureCallDespiteUnusedResult(t *testing.T) {
	fn := buildAndRun(t, `function f() { let unused = 1; sideEffect(); return 0; }`)

	var foundCall bool
	for _, stmt := range fn.Generated.Body {
		if expr, ok := stmt.(*ast.ExpressionStatement); ok {
			if _, ok := expr.Expression.(*ast.CallExpression); ok {
				foundCall = true
			}
		}
	}
	if !foundCall {
		t.Fatalf("want the impure call kept even though its result is unused, got %#v", fn.Generated.Body)
	}
	for _, stmt := range fn.Generated.Body {
		if decl, ok := stmt.(*ast.VariableDeclaration); ok {
			if num, ok := decl.Declarations[0].Init.(*ast.NumericLiteral); ok && num.Value == 1 {
				t.Fatalf("want the unused pure literal binding dead-code-eliminated, found %#v", decl)
			}
		}
	}
}

func TestPipelineBareIfOmitsAlternate(t *testing.T) {
	fn := buildAndRun(t, `function f(x) { if (x) { return 1; } return 2; }`)

	if len(fn.Generated.Body) != 3 {
		t.Fatalf("want [if, let, return], got %d statements: %#v", len(fn.Generated.Body), fn.Generated.Body)
	}
	ifStmt, ok := fn.Generated.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("want first statement to be an IfStatement, got %T", fn.Generated.Body[0])
	}
	if ifStmt.Alternate != nil {
		t.Fatalf("want no Alternate on a bare if, got %#v", ifStmt.Alternate)
	}
	if _, ok := fn.Generated.Body[2].(*ast.ReturnStatement); !ok {
		t.Fatalf("want third statement to be the fallthrough return, got %T", fn.Generated.Body[2])
	}
}

func TestPipelineIfElseBothDivergingEmitsNoTrailingStatement(t *testing.T) {
	fn := buildAndRun(t, `function f(x) { if (x) { return 1; } else { return 2; } }`)

	if len(fn.Generated.Body) != 1 {
		t.Fatalf("want exactly 1 generated statement when both arms return, got %d: %#v", len(fn.Generated.Body), fn.Generated.Body)
	}
	ifStmt, ok := fn.Generated.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("want an IfStatement, got %T", fn.Generated.Body[0])
	}
	if ifStmt.Alternate == nil {
		t.Fatalf("want an Alternate block present")
	}
}

func TestPipelineIfDivergesElseFallsThrough(t *testing.T) {
	fn := buildAndRun(t, `function f(x) { let y = 0; if (x) { return 1; } else { y = 2; } return y; }`)

	// entry's own `let y = 0;` binding precedes the if; once the then-arm
	// diverges and the else-arm falls through, reconstruction should still
	// rejoin at the phi-bearing block for the trailing `return y;` rather
	// than treating the diverging arm as if it had no continuation at all.
	if len(fn.Generated.Body) != 3 {
		t.Fatalf("want [let, if, return], got %d statements: %#v", len(fn.Generated.Body), fn.Generated.Body)
	}
	if _, ok := fn.Generated.Body[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("want first statement to be the entry block's own binding, got %T", fn.Generated.Body[0])
	}
	ifStmt, ok := fn.Generated.Body[1].(*ast.IfStatement)
	if !ok {
		t.Fatalf("want second statement to be an IfStatement, got %T", fn.Generated.Body[1])
	}
	if ifStmt.Alternate == nil {
		t.Fatalf("want the else-arm preserved")
	}
	if _, ok := fn.Generated.Body[2].(*ast.ReturnStatement); !ok {
		t.Fatalf("want third statement to be the rejoined ReturnStatement, got %T", fn.Generated.Body[2])
	}
}

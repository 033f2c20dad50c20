package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
)

func TestParseVariableDeclarationKinds(t *testing.T) {
	for _, kind := range []string{"var", "let", "const"} {
		prog := mustParse(t, kind+" x = 1;")
		decl, ok := firstStmt(t, prog).(*ast.VariableDeclaration)
		if !ok {
			t.Fatalf("%s: want *ast.VariableDeclaration, got %T", kind, prog.Body[0])
		}
		if decl.Kind != kind {
			t.Fatalf("want Kind=%q, got %q", kind, decl.Kind)
		}
		if len(decl.Declarations) != 1 {
			t.Fatalf("want 1 declarator, got %d", len(decl.Declarations))
		}
		id, ok := decl.Declarations[0].ID.(*ast.Identifier)
		if !ok || id.Name != "x" {
			t.Fatalf("want declarator ID=x, got %#v", decl.Declarations[0].ID)
		}
		if decl.Declarations[0].Init == nil {
			t.Fatalf("want an initializer")
		}
	}
}

func TestParseMultipleDeclarators(t *testing.T) {
	prog := mustParse(t, "let a = 1, b = 2, c;")
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	if len(decl.Declarations) != 3 {
		t.Fatalf("want 3 declarators, got %d", len(decl.Declarations))
	}
	if decl.Declarations[2].Init != nil {
		t.Fatalf("want the bare `c` declarator to have a nil Init")
	}
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, "if (a) { b(); } else { c(); }")
	ifStmt := firstStmt(t, prog).(*ast.IfStatement)
	if ifStmt.Test == nil || ifStmt.Consequent == nil || ifStmt.Alternate == nil {
		t.Fatalf("want Test/Consequent/Alternate all set, got %+v", ifStmt)
	}
	if _, ok := ifStmt.Consequent.(*ast.BlockStatement); !ok {
		t.Fatalf("want Consequent to be a block, got %T", ifStmt.Consequent)
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := mustParse(t, "if (a) b();")
	ifStmt := firstStmt(t, prog).(*ast.IfStatement)
	if ifStmt.Alternate != nil {
		t.Fatalf("want nil Alternate, got %#v", ifStmt.Alternate)
	}
}

func TestParseForClassic(t *testing.T) {
	prog := mustParse(t, "for (let i = 0; i < 10; i++) { f(i); }")
	forStmt := firstStmt(t, prog).(*ast.ForStatement)
	if _, ok := forStmt.Init.(*ast.VariableDeclaration); !ok {
		t.Fatalf("want Init to be a var decl, got %T", forStmt.Init)
	}
	if forStmt.Test == nil || forStmt.Update == nil || forStmt.Body == nil {
		t.Fatalf("want Test/Update/Body all set, got %+v", forStmt)
	}
}

func TestParseForIn(t *testing.T) {
	prog := mustParse(t, "for (let k in obj) { f(k); }")
	forIn := firstStmt(t, prog).(*ast.ForInStatement)
	if forIn.Right == nil {
		t.Fatalf("want a non-nil Right, got %+v", forIn)
	}
}

func TestParseForOfAwait(t *testing.T) {
	prog := mustParse(t, "async function f() { for await (const x of xs) { g(x); } }")
	fn := firstStmt(t, prog).(*ast.FunctionDeclaration)
	block := fn.Body.(*ast.BlockStatement)
	forOf := block.Body[0].(*ast.ForOfStatement)
	if !forOf.Await {
		t.Fatalf("want Await=true for `for await`")
	}
}

func TestParseWhileAndDoWhile(t *testing.T) {
	prog := mustParse(t, "while (a) { b(); }")
	while := firstStmt(t, prog).(*ast.WhileStatement)
	if while.Test == nil || while.Body == nil {
		t.Fatalf("want Test/Body set, got %+v", while)
	}

	prog2 := mustParse(t, "do { b(); } while (a);")
	doWhile := firstStmt(t, prog2).(*ast.DoWhileStatement)
	if doWhile.Test == nil || doWhile.Body == nil {
		t.Fatalf("want Test/Body set, got %+v", doWhile)
	}
}

func TestParseSwitch(t *testing.T) {
	prog := mustParse(t, `switch (a) {
		case 1: f(); break;
		case 2:
		default: g();
	}`)
	sw := firstStmt(t, prog).(*ast.SwitchStatement)
	if len(sw.Cases) != 3 {
		t.Fatalf("want 3 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[0].Test == nil {
		t.Fatalf("want case 1 to have a Test")
	}
	if sw.Cases[2].Test != nil {
		t.Fatalf("want the default case to have a nil Test")
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := mustParse(t, "try { f(); } catch (e) { g(e); } finally { h(); }")
	tryStmt := firstStmt(t, prog).(*ast.TryStatement)
	if tryStmt.Block == nil || tryStmt.Handler == nil || tryStmt.Finalizer == nil {
		t.Fatalf("want Block/Handler/Finalizer all set, got %+v", tryStmt)
	}
	if tryStmt.Handler.Param == nil {
		t.Fatalf("want a catch binding")
	}
}

func TestParseTryCatchWithoutBinding(t *testing.T) {
	prog := mustParse(t, "try { f(); } catch { g(); }")
	tryStmt := firstStmt(t, prog).(*ast.TryStatement)
	if tryStmt.Handler.Param != nil {
		t.Fatalf("want a nil catch Param for binding-less catch, got %#v", tryStmt.Handler.Param)
	}
}

func TestParseBreakContinueLabels(t *testing.T) {
	prog := mustParse(t, "outer: while (a) { break outer; }")
	labeled := firstStmt(t, prog).(*ast.LabeledStatement)
	if labeled.Label.Name != "outer" {
		t.Fatalf("want Label=outer, got %q", labeled.Label.Name)
	}
	while := labeled.Body.(*ast.WhileStatement)
	block := while.Body.(*ast.BlockStatement)
	brk := block.Body[0].(*ast.BreakStatement)
	if brk.Label == nil || brk.Label.Name != "outer" {
		t.Fatalf("want break's Label=outer, got %#v", brk.Label)
	}
}

func TestParseThrowAndReturn(t *testing.T) {
	prog := mustParse(t, "function f() { return 1; }")
	fn := firstStmt(t, prog).(*ast.FunctionDeclaration)
	block := fn.Body.(*ast.BlockStatement)
	ret := block.Body[0].(*ast.ReturnStatement)
	if ret.Argument == nil {
		t.Fatalf("want a return argument")
	}

	prog2 := mustParse(t, "throw new Error('x');")
	throwStmt := firstStmt(t, prog2).(*ast.ThrowStatement)
	if throwStmt.Argument == nil {
		t.Fatalf("want a throw argument")
	}
}

func TestParseBareReturnHasNilArgument(t *testing.T) {
	prog := mustParse(t, "function f() { return; }")
	fn := firstStmt(t, prog).(*ast.FunctionDeclaration)
	block := fn.Body.(*ast.BlockStatement)
	ret := block.Body[0].(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Fatalf("want a nil Argument for a bare return, got %#v", ret.Argument)
	}
}

func TestParseDirectivePrologue(t *testing.T) {
	prog := mustParse(t, `"use strict"; f();`)
	directive, ok := firstStmt(t, prog).(*ast.Directive)
	if !ok {
		t.Fatalf("want *ast.Directive, got %T", prog.Body[0])
	}
	if directive.Value != "use strict" {
		t.Fatalf("want Value=%q, got %q", "use strict", directive.Value)
	}
}

func TestParseDebuggerStatement(t *testing.T) {
	prog := mustParse(t, "debugger;")
	if _, ok := firstStmt(t, prog).(*ast.DebuggerStatement); !ok {
		t.Fatalf("want *ast.DebuggerStatement, got %T", prog.Body[0])
	}
}

func TestParseEmptyStatement(t *testing.T) {
	prog := mustParse(t, ";")
	if _, ok := firstStmt(t, prog).(*ast.EmptyStatement); !ok {
		t.Fatalf("want *ast.EmptyStatement, got %T", prog.Body[0])
	}
}

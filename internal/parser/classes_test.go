package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
)

func TestParseClassDeclarationWithExtends(t *testing.T) {
	prog := mustParse(t, "class Dog extends Animal {}")
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	if cls.ID == nil || cls.ID.Name != "Dog" {
		t.Fatalf("want ID=Dog, got %#v", cls.ID)
	}
	if cls.SuperClass == nil {
		t.Fatalf("want a SuperClass")
	}
}

func TestParseClassConstructorAndMethods(t *testing.T) {
	prog := mustParse(t, `class C {
		constructor(x) { this.x = x; }
		greet() { return this.x; }
		static make() { return new C(1); }
		get value() { return this.x; }
		set value(v) { this.x = v; }
	}`)
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	if len(cls.Body) != 5 {
		t.Fatalf("want 5 members, got %d", len(cls.Body))
	}

	ctor := cls.Body[0].(*ast.MethodDefinition)
	if ctor.Kind != "constructor" {
		t.Fatalf("want Kind=constructor, got %q", ctor.Kind)
	}

	method := cls.Body[1].(*ast.MethodDefinition)
	if method.Kind != "method" || method.Static {
		t.Fatalf("want a non-static method, got %+v", method)
	}

	staticMethod := cls.Body[2].(*ast.MethodDefinition)
	if !staticMethod.Static {
		t.Fatalf("want Static=true for `static make()`")
	}

	getter := cls.Body[3].(*ast.MethodDefinition)
	if getter.Kind != "get" {
		t.Fatalf("want Kind=get, got %q", getter.Kind)
	}

	setter := cls.Body[4].(*ast.MethodDefinition)
	if setter.Kind != "set" {
		t.Fatalf("want Kind=set, got %q", setter.Kind)
	}
}

func TestParseClassFieldsAndStaticBlock(t *testing.T) {
	prog := mustParse(t, `class C {
		x = 1;
		static y;
		static { C.z = 2; }
	}`)
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	if len(cls.Body) != 3 {
		t.Fatalf("want 3 members, got %d", len(cls.Body))
	}

	field := cls.Body[0].(*ast.PropertyDefinition)
	if field.Value == nil {
		t.Fatalf("want field `x` to have an initializer")
	}

	staticField := cls.Body[1].(*ast.PropertyDefinition)
	if !staticField.Static || staticField.Value != nil {
		t.Fatalf("want Static=true and a nil Value for `static y;`, got %+v", staticField)
	}

	if _, ok := cls.Body[2].(*ast.StaticBlock); !ok {
		t.Fatalf("want a StaticBlock, got %T", cls.Body[2])
	}
}

func TestParseClassPrivateFieldAndComputedKey(t *testing.T) {
	prog := mustParse(t, `class C {
		#secret = 1;
		[computedKey()]() {}
	}`)
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	private := cls.Body[0].(*ast.PropertyDefinition)
	if _, ok := private.Key.(*ast.PrivateIdentifier); !ok {
		t.Fatalf("want a PrivateIdentifier key, got %T", private.Key)
	}

	computed := cls.Body[1].(*ast.MethodDefinition)
	if !computed.Computed {
		t.Fatalf("want Computed=true for a bracketed method key")
	}
}

func TestParseClassExpression(t *testing.T) {
	prog := mustParse(t, "const C = class Named {};")
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	cls := decl.Declarations[0].Init.(*ast.ClassExpression)
	if cls.ID == nil || cls.ID.Name != "Named" {
		t.Fatalf("want ID=Named, got %#v", cls.ID)
	}
}

func TestParseAsyncGeneratorMethod(t *testing.T) {
	prog := mustParse(t, "class C { async *gen() { yield 1; } }")
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	method := cls.Body[0].(*ast.MethodDefinition)
	if !method.Value.Async || !method.Value.Generator {
		t.Fatalf("want Async=true and Generator=true, got %+v", method.Value.Function)
	}
}

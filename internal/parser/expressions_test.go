package parser_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
)

func TestParseNumericStringBooleanNullLiterals(t *testing.T) {
	prog := mustParse(t, "1; 'a'; true; false; null;")
	if len(prog.Body) != 5 {
		t.Fatalf("want 5 statements, got %d", len(prog.Body))
	}
	if _, ok := exprOf(t, prog.Body[0]).(*ast.NumericLiteral); !ok {
		t.Fatalf("want *ast.NumericLiteral, got %T", exprOf(t, prog.Body[0]))
	}
	if s, ok := exprOf(t, prog.Body[1]).(*ast.StringLiteral); !ok || s.Value != "a" {
		t.Fatalf("want StringLiteral(a), got %#v", exprOf(t, prog.Body[1]))
	}
	if b, ok := exprOf(t, prog.Body[2]).(*ast.BooleanLiteral); !ok || b.Value != true {
		t.Fatalf("want BooleanLiteral(true), got %#v", exprOf(t, prog.Body[2]))
	}
	if _, ok := exprOf(t, prog.Body[4]).(*ast.NullLiteral); !ok {
		t.Fatalf("want *ast.NullLiteral, got %T", exprOf(t, prog.Body[4]))
	}
}

func TestParseBinaryOperatorPrecedence(t *testing.T) {
	// a + b * c must group as a + (b * c): the outer node is `+`.
	prog := mustParse(t, "a + b * c;")
	bin := exprOf(t, firstStmt(t, prog)).(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("want outer operator +, got %q", bin.Operator)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || rhs.Operator != "*" {
		t.Fatalf("want Right to be a * expression, got %#v", bin.Right)
	}
}

func TestParseBinaryLeftAssociative(t *testing.T) {
	// a - b - c must group as (a - b) - c.
	prog := mustParse(t, "a - b - c;")
	bin := exprOf(t, firstStmt(t, prog)).(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("want Left to be the nested a - b, got %#v", bin.Left)
	}
	if _, ok := bin.Right.(*ast.Identifier); !ok {
		t.Fatalf("want Right to be the bare identifier c, got %#v", bin.Right)
	}
}

func TestParseExponentiationRightAssociative(t *testing.T) {
	// a ** b ** c must group as a ** (b ** c).
	prog := mustParse(t, "a ** b ** c;")
	bin := exprOf(t, firstStmt(t, prog)).(*ast.BinaryExpression)
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Fatalf("want Right to be the nested b ** c, got %#v", bin.Right)
	}
	if _, ok := bin.Left.(*ast.Identifier); !ok {
		t.Fatalf("want Left to be the bare identifier a, got %#v", bin.Left)
	}
}

func TestParseLogicalAndOrPrecedence(t *testing.T) {
	// a || b && c must group as a || (b && c).
	prog := mustParse(t, "a || b && c;")
	or := exprOf(t, firstStmt(t, prog)).(*ast.LogicalExpression)
	if or.Operator != "||" {
		t.Fatalf("want outer ||, got %q", or.Operator)
	}
	and, ok := or.Right.(*ast.LogicalExpression)
	if !ok || and.Operator != "&&" {
		t.Fatalf("want Right to be a && expression, got %#v", or.Right)
	}
}

func TestParseNullishCoalescing(t *testing.T) {
	prog := mustParse(t, "a ?? b;")
	log := exprOf(t, firstStmt(t, prog)).(*ast.LogicalExpression)
	if log.Operator != "??" {
		t.Fatalf("want ??, got %q", log.Operator)
	}
}

func TestParseUnaryAndUpdateExpressions(t *testing.T) {
	prog := mustParse(t, "!a; typeof a; ++a; a++;")
	un := exprOf(t, prog.Body[0]).(*ast.UnaryExpression)
	if un.Operator != "!" || !un.Prefix {
		t.Fatalf("want prefix !, got %+v", un)
	}
	typeofExpr := exprOf(t, prog.Body[1]).(*ast.UnaryExpression)
	if typeofExpr.Operator != "typeof" {
		t.Fatalf("want typeof, got %q", typeofExpr.Operator)
	}
	preInc := exprOf(t, prog.Body[2]).(*ast.UpdateExpression)
	if !preInc.Prefix || preInc.Operator != "++" {
		t.Fatalf("want prefix ++, got %+v", preInc)
	}
	postInc := exprOf(t, prog.Body[3]).(*ast.UpdateExpression)
	if postInc.Prefix {
		t.Fatalf("want postfix ++, got prefix")
	}
}

func TestParseConditionalExpression(t *testing.T) {
	prog := mustParse(t, "a ? b : c;")
	cond := exprOf(t, firstStmt(t, prog)).(*ast.ConditionalExpression)
	if cond.Test == nil || cond.Consequent == nil || cond.Alternate == nil {
		t.Fatalf("want Test/Consequent/Alternate all set, got %+v", cond)
	}
}

func TestParseAssignmentOperators(t *testing.T) {
	for _, op := range []string{"=", "+=", "-=", "*=", "&&=", "||=", "??="} {
		prog := mustParse(t, "a "+op+" b;")
		assign, ok := exprOf(t, firstStmt(t, prog)).(*ast.AssignmentExpression)
		if !ok || assign.Operator != op {
			t.Fatalf("op %q: want AssignmentExpression with that operator, got %#v", op, exprOf(t, firstStmt(t, prog)))
		}
	}
}

func TestParseSequenceExpression(t *testing.T) {
	prog := mustParse(t, "a, b, c;")
	seq := exprOf(t, firstStmt(t, prog)).(*ast.SequenceExpression)
	if len(seq.Expressions) != 3 {
		t.Fatalf("want 3 expressions, got %d", len(seq.Expressions))
	}
}

func TestParseCallAndNewExpressions(t *testing.T) {
	prog := mustParse(t, "f(1, 2); new C(1);")
	call := exprOf(t, prog.Body[0]).(*ast.CallExpression)
	if len(call.Arguments) != 2 {
		t.Fatalf("want 2 call arguments, got %d", len(call.Arguments))
	}
	newExpr := exprOf(t, prog.Body[1]).(*ast.NewExpression)
	if len(newExpr.Arguments) != 1 {
		t.Fatalf("want 1 new argument, got %d", len(newExpr.Arguments))
	}
}

func TestParseMemberExpressionComputedAndOptional(t *testing.T) {
	prog := mustParse(t, "a.b; a['b']; a?.b;")
	dot := exprOf(t, prog.Body[0]).(*ast.MemberExpression)
	if dot.Computed {
		t.Fatalf("want Computed=false for a.b")
	}
	bracket := exprOf(t, prog.Body[1]).(*ast.MemberExpression)
	if !bracket.Computed {
		t.Fatalf("want Computed=true for a['b']")
	}
	optional := exprOf(t, prog.Body[2]).(*ast.MemberExpression)
	if !optional.Optional {
		t.Fatalf("want Optional=true for a?.b")
	}
}

func TestParseArrayAndObjectExpressions(t *testing.T) {
	prog := mustParse(t, "[1, , 3]; ({a: 1, b});")
	arr := exprOf(t, prog.Body[0]).(*ast.ArrayExpression)
	if len(arr.Elements) != 3 || arr.Elements[1] != nil {
		t.Fatalf("want a 3-element array with a nil elision at index 1, got %#v", arr.Elements)
	}
	paren := exprOf(t, prog.Body[1]).(*ast.ParenthesizedExpression)
	obj := paren.Expression.(*ast.ObjectExpression)
	if len(obj.Properties) != 2 {
		t.Fatalf("want 2 properties, got %d", len(obj.Properties))
	}
	shorthand := obj.Properties[1].(*ast.Property)
	if !shorthand.Shorthand {
		t.Fatalf("want the bare `b` property to be Shorthand")
	}
}

func TestParseSpreadInArrayAndCall(t *testing.T) {
	prog := mustParse(t, "[...a]; f(...a);")
	arr := exprOf(t, prog.Body[0]).(*ast.ArrayExpression)
	if _, ok := arr.Elements[0].(*ast.SpreadElement); !ok {
		t.Fatalf("want a SpreadElement, got %T", arr.Elements[0])
	}
	call := exprOf(t, prog.Body[1]).(*ast.CallExpression)
	if _, ok := call.Arguments[0].(*ast.SpreadElement); !ok {
		t.Fatalf("want a SpreadElement argument, got %T", call.Arguments[0])
	}
}

func TestParseTemplateLiteralAndTagged(t *testing.T) {
	prog := mustParse(t, "`a${b}c`; tag`x`;")
	tpl := exprOf(t, prog.Body[0]).(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Fatalf("want 2 quasis and 1 expression, got %d/%d", len(tpl.Quasis), len(tpl.Expressions))
	}
	tagged := exprOf(t, prog.Body[1]).(*ast.TaggedTemplateExpression)
	if tagged.Tag == nil || tagged.Quasi == nil {
		t.Fatalf("want Tag/Quasi both set, got %+v", tagged)
	}
}

func TestParseArrowFunctions(t *testing.T) {
	prog := mustParse(t, "const f = (a, b) => a + b; const g = a => { return a; };")
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	arrow := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	if len(arrow.Params) != 2 || !arrow.ExpressionBody {
		t.Fatalf("want 2 params and an expression body, got %+v", arrow)
	}

	decl2 := prog.Body[1].(*ast.VariableDeclaration)
	arrow2 := decl2.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	if arrow2.ExpressionBody {
		t.Fatalf("want a block body for the single-param arrow")
	}
	if len(arrow2.Params) != 1 {
		t.Fatalf("want 1 shorthand param, got %d", len(arrow2.Params))
	}
}

func TestParseAsyncArrowFunction(t *testing.T) {
	prog := mustParse(t, "const f = async (a) => a;")
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	arrow := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	if !arrow.Async {
		t.Fatalf("want Async=true")
	}
}

func TestParseFunctionExpressionAnonymous(t *testing.T) {
	prog := mustParse(t, "const f = function() { return 1; };")
	decl := firstStmt(t, prog).(*ast.VariableDeclaration)
	fn := decl.Declarations[0].Init.(*ast.FunctionExpression)
	if fn.ID != nil {
		t.Fatalf("want a nil ID for an anonymous function expression, got %#v", fn.ID)
	}
}

func TestParseGeneratorFunction(t *testing.T) {
	prog := mustParse(t, "function* gen() { yield 1; }")
	fn := firstStmt(t, prog).(*ast.FunctionDeclaration)
	if !fn.Generator {
		t.Fatalf("want Generator=true")
	}
	block := fn.Body.(*ast.BlockStatement)
	yieldExpr := exprOf(t, block.Body[0]).(*ast.YieldExpression)
	if yieldExpr.Argument == nil {
		t.Fatalf("want a yield argument")
	}
}

func TestParseAsyncFunctionAwait(t *testing.T) {
	prog := mustParse(t, "async function f() { await g(); }")
	fn := firstStmt(t, prog).(*ast.FunctionDeclaration)
	if !fn.Async {
		t.Fatalf("want Async=true")
	}
	block := fn.Body.(*ast.BlockStatement)
	awaitExpr := exprOf(t, block.Body[0]).(*ast.AwaitExpression)
	if awaitExpr.Argument == nil {
		t.Fatalf("want an await argument")
	}
}

func TestParseParenthesizedGroupingPreservesNode(t *testing.T) {
	prog := mustParse(t, "(a + b) * c;")
	bin := exprOf(t, firstStmt(t, prog)).(*ast.BinaryExpression)
	if bin.Operator != "*" {
		t.Fatalf("want outer *, got %q", bin.Operator)
	}
	paren, ok := bin.Left.(*ast.ParenthesizedExpression)
	if !ok {
		t.Fatalf("want a ParenthesizedExpression wrapping the left side, got %T", bin.Left)
	}
	if _, ok := paren.Expression.(*ast.BinaryExpression); !ok {
		t.Fatalf("want the parenthesized inner node to be a + expression, got %T", paren.Expression)
	}
}

func TestParseThisAndSuper(t *testing.T) {
	prog := mustParse(t, "class C extends Base { m() { this.x; super.m(); } }")
	cls := firstStmt(t, prog).(*ast.ClassDeclaration)
	method := cls.Body[0].(*ast.MethodDefinition)
	block := method.Value.Body.(*ast.BlockStatement)

	thisMember := exprOf(t, block.Body[0]).(*ast.MemberExpression)
	if _, ok := thisMember.Object.(*ast.ThisExpression); !ok {
		t.Fatalf("want ThisExpression, got %T", thisMember.Object)
	}

	superCall := exprOf(t, block.Body[1]).(*ast.CallExpression)
	superMember := superCall.Callee.(*ast.MemberExpression)
	if _, ok := superMember.Object.(*ast.SuperExpression); !ok {
		t.Fatalf("want SuperExpression, got %T", superMember.Object)
	}
}

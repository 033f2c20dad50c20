package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestCompressTypeofUndefinedLooseEquality(t *testing.T) {
	prog, tables := parseProgram(t, `x = typeof x == "undefined";`)
	transform.NewDriver(transform.CompressTypeofUndefined{}).Run(prog, tables)

	assign := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	bin, ok := assign.Right.(*ast.BinaryExpression)
	if !ok || bin.Operator != ">" {
		t.Fatalf("want `typeof x > \"u\"`, got %#v", assign.Right)
	}
	str, ok := bin.Right.(*ast.StringLiteral)
	if !ok || str.Value != "u" {
		t.Fatalf("want right operand \"u\", got %#v", bin.Right)
	}
	if _, ok := bin.Left.(*ast.UnaryExpression); !ok {
		t.Fatalf("want left operand to remain the typeof expression, got %#v", bin.Left)
	}
}

func TestCompressTypeofUndefinedNegatedCommuted(t *testing.T) {
	prog, tables := parseProgram(t, `x = "undefined" !== typeof y;`)
	transform.NewDriver(transform.CompressTypeofUndefined{}).Run(prog, tables)

	assign := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	not, ok := assign.Right.(*ast.UnaryExpression)
	if !ok || not.Operator != "!" {
		t.Fatalf("want negated form wrapped in '!', got %#v", assign.Right)
	}
	bin, ok := not.Argument.(*ast.BinaryExpression)
	if !ok || bin.Operator != ">" {
		t.Fatalf("want inner `typeof y > \"u\"`, got %#v", not.Argument)
	}
}

func TestCompressTypeofUndefinedIgnoresOtherComparisons(t *testing.T) {
	prog, tables := parseProgram(t, `x = typeof x == "function";`)
	transform.NewDriver(transform.CompressTypeofUndefined{}).Run(prog, tables)

	assign := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	bin, ok := assign.Right.(*ast.BinaryExpression)
	if !ok || bin.Operator != "==" {
		t.Fatalf("want comparison against \"function\" left untouched, got %#v", assign.Right)
	}
}

package transform_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
	"github.com/jscore-dev/jscore/internal/transform"
)

func TestGlobalDefinesSubstitutesDottedPath(t *testing.T) {
	prog, tables := parseProgram(t, `if (process.env.NODE_ENV === "production") { ship(); }`)

	defines := transform.NewGlobalDefines(map[string]ast.Expression{
		"process.env.NODE_ENV": &ast.StringLiteral{
			Base:  ast.NewBase(ast.KindStringLiteral, span.New(0, 0)),
			Value: "production",
			Raw:   `"production"`,
		},
	})
	transform.NewDriver(defines).Run(prog, tables)

	ifStmt := prog.Body[0].(*ast.IfStatement)
	bin := ifStmt.Test.(*ast.BinaryExpression)
	str, ok := bin.Left.(*ast.StringLiteral)
	if !ok || str.Value != "production" {
		t.Fatalf("want process.env.NODE_ENV replaced by the configured literal, got %#v", bin.Left)
	}
}

func TestGlobalDefinesIgnoresShadowedRoot(t *testing.T) {
	prog, tables := parseProgram(t, `var process = {env: {}}; x = process.env.NODE_ENV;`)

	defines := transform.NewGlobalDefines(map[string]ast.Expression{
		"process.env.NODE_ENV": &ast.StringLiteral{
			Base:  ast.NewBase(ast.KindStringLiteral, span.New(0, 0)),
			Value: "production",
			Raw:   `"production"`,
		},
	})
	transform.NewDriver(defines).Run(prog, tables)

	assign := prog.Body[1].(*ast.ExpressionStatement).Expression.(*ast.AssignmentExpression)
	if _, ok := assign.Right.(*ast.MemberExpression); !ok {
		t.Fatalf("want a locally declared `process` left untouched, got %#v", assign.Right)
	}
}

package linter

import "github.com/jscore-dev/jscore/internal/ast"

// visitFunc is called once per node, pre-order, with the stack of nodes
// enclosing it (outermost first, immediate parent last).
type visitFunc func(node ast.Node, ancestors []ast.Node)

// walk traverses the full node set the runner dispatches rules over. It
// does not reuse internal/visitor.Walk: several composite node kinds the
// AST gives an empty Accept body (VariableDeclarator, CatchClause,
// SwitchCase, MethodDefinition, PropertyDefinition) are only reachable
// through their *parent's* dispatcher method there, which stops short of
// descending into them — fine for a tree-shaped rewrite pass, not enough
// for "every enabled rule sees every node of a kind it cares about"
// (§4.7). This walk visits those nodes and their children directly, the
// same choice internal/semantic's builder makes and for the same reason.
func walk(node ast.Node, ancestors []ast.Node, visit visitFunc) {
	if node == nil {
		return
	}
	visit(node, ancestors)
	next := append(ancestors, node)
	descend(node, next, visit)
}

func descend(node ast.Node, ancestors []ast.Node, visit visitFunc) {
	switch n := node.(type) {
	case *ast.Program:
		for _, s := range n.Body {
			walk(s, ancestors, visit)
		}

	case *ast.ExpressionStatement:
		walk(n.Expression, ancestors, visit)
	case *ast.BlockStatement:
		for _, s := range n.Body {
			walk(s, ancestors, visit)
		}
	case *ast.IfStatement:
		walk(n.Test, ancestors, visit)
		walk(n.Consequent, ancestors, visit)
		walk(n.Alternate, ancestors, visit)
	case *ast.SwitchStatement:
		walk(n.Discriminant, ancestors, visit)
		for _, c := range n.Cases {
			walk(c, ancestors, visit)
		}
	case *ast.SwitchCase:
		walk(n.Test, ancestors, visit)
		for _, s := range n.Consequent {
			walk(s, ancestors, visit)
		}
	case *ast.ForStatement:
		walk(n.Init, ancestors, visit)
		walk(n.Test, ancestors, visit)
		walk(n.Update, ancestors, visit)
		walk(n.Body, ancestors, visit)
	case *ast.ForInStatement:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
		walk(n.Body, ancestors, visit)
	case *ast.ForOfStatement:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
		walk(n.Body, ancestors, visit)
	case *ast.WhileStatement:
		walk(n.Test, ancestors, visit)
		walk(n.Body, ancestors, visit)
	case *ast.DoWhileStatement:
		walk(n.Body, ancestors, visit)
		walk(n.Test, ancestors, visit)
	case *ast.ReturnStatement:
		walk(n.Argument, ancestors, visit)
	case *ast.ThrowStatement:
		walk(n.Argument, ancestors, visit)
	case *ast.TryStatement:
		walk(n.Block, ancestors, visit)
		if n.Handler != nil {
			walk(n.Handler, ancestors, visit)
		}
		if n.Finalizer != nil {
			walk(n.Finalizer, ancestors, visit)
		}
	case *ast.CatchClause:
		walk(n.Param, ancestors, visit)
		walk(n.Body, ancestors, visit)
	case *ast.LabeledStatement:
		walk(n.Body, ancestors, visit)
	case *ast.WithStatement:
		walk(n.Object, ancestors, visit)
		walk(n.Body, ancestors, visit)

	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			walk(d, ancestors, visit)
		}
	case *ast.VariableDeclarator:
		walk(n.ID, ancestors, visit)
		walk(n.Init, ancestors, visit)
	case *ast.FunctionDeclaration:
		walkFunction(&n.Function, ancestors, visit)
	case *ast.ClassDeclaration:
		walkClass(&n.Class, ancestors, visit)

	case *ast.ImportDeclaration:
		for _, s := range n.Specifiers {
			walk(s, ancestors, visit)
		}
		walk(n.Source, ancestors, visit)
	case *ast.ExportNamedDeclaration:
		if n.Declaration != nil {
			walk(n.Declaration, ancestors, visit)
		}
		for _, s := range n.Specifiers {
			walk(s, ancestors, visit)
		}
	case *ast.ExportDefaultDeclaration:
		walk(n.Declaration, ancestors, visit)
	case *ast.ExportAllDeclaration:
		if n.Exported != nil {
			walk(n.Exported, ancestors, visit)
		}
		walk(n.Source, ancestors, visit)

	case *ast.TemplateLiteral:
		for _, e := range n.Expressions {
			walk(e, ancestors, visit)
		}
	case *ast.TaggedTemplateExpression:
		walk(n.Tag, ancestors, visit)
		walk(n.Quasi, ancestors, visit)
	case *ast.ArrayExpression:
		for _, e := range n.Elements {
			walk(e, ancestors, visit)
		}
	case *ast.ObjectExpression:
		for _, m := range n.Properties {
			walk(m, ancestors, visit)
		}
	case *ast.Property:
		if n.Computed {
			walk(n.Key, ancestors, visit)
		}
		walk(n.Value, ancestors, visit)
	case *ast.FunctionExpression:
		walkFunction(&n.Function, ancestors, visit)
	case *ast.ArrowFunctionExpression:
		walkFunction(&n.Function, ancestors, visit)
	case *ast.ClassExpression:
		walkClass(&n.Class, ancestors, visit)
	case *ast.UnaryExpression:
		walk(n.Argument, ancestors, visit)
	case *ast.UpdateExpression:
		walk(n.Argument, ancestors, visit)
	case *ast.BinaryExpression:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
	case *ast.LogicalExpression:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
	case *ast.AssignmentExpression:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
	case *ast.ConditionalExpression:
		walk(n.Test, ancestors, visit)
		walk(n.Consequent, ancestors, visit)
		walk(n.Alternate, ancestors, visit)
	case *ast.CallExpression:
		walk(n.Callee, ancestors, visit)
		for _, a := range n.Arguments {
			walk(a, ancestors, visit)
		}
	case *ast.NewExpression:
		walk(n.Callee, ancestors, visit)
		for _, a := range n.Arguments {
			walk(a, ancestors, visit)
		}
	case *ast.MemberExpression:
		walk(n.Object, ancestors, visit)
		if n.Computed {
			walk(n.Property, ancestors, visit)
		}
	case *ast.SequenceExpression:
		for _, e := range n.Expressions {
			walk(e, ancestors, visit)
		}
	case *ast.SpreadElement:
		walk(n.Argument, ancestors, visit)
	case *ast.YieldExpression:
		walk(n.Argument, ancestors, visit)
	case *ast.AwaitExpression:
		walk(n.Argument, ancestors, visit)
	case *ast.ParenthesizedExpression:
		walk(n.Expression, ancestors, visit)

	case *ast.JSXElement:
		walk(n.Name, ancestors, visit)
		for _, a := range n.Attributes {
			walk(a, ancestors, visit)
		}
		for _, c := range n.Children {
			walk(c, ancestors, visit)
		}
	case *ast.JSXFragment:
		for _, c := range n.Children {
			walk(c, ancestors, visit)
		}
	case *ast.JSXAttribute:
		if n.Value != nil {
			walk(n.Value, ancestors, visit)
		}
	case *ast.JSXSpreadAttribute:
		walk(n.Argument, ancestors, visit)
	case *ast.JSXExpressionContainer:
		if n.Expression != nil {
			walk(n.Expression, ancestors, visit)
		}
	case *ast.JSXMemberExpression:
		walk(n.Object, ancestors, visit)

	case *ast.ArrayPattern:
		for _, e := range n.Elements {
			walk(e, ancestors, visit)
		}
	case *ast.ObjectPattern:
		for _, p := range n.Properties {
			walk(p, ancestors, visit)
		}
	case *ast.ObjectPatternField:
		if n.Computed {
			walk(n.Key, ancestors, visit)
		}
		walk(n.Value, ancestors, visit)
	case *ast.AssignmentPattern:
		walk(n.Left, ancestors, visit)
		walk(n.Right, ancestors, visit)
	case *ast.RestElement:
		walk(n.Argument, ancestors, visit)

	case *ast.MethodDefinition:
		if n.Computed {
			walk(n.Key, ancestors, visit)
		}
		if n.Value != nil {
			walk(n.Value, ancestors, visit)
		}
	case *ast.PropertyDefinition:
		if n.Computed {
			walk(n.Key, ancestors, visit)
		}
		if n.Value != nil {
			walk(n.Value, ancestors, visit)
		}
	case *ast.StaticBlock:
		for _, s := range n.Body {
			walk(s, ancestors, visit)
		}

	default:
		// Identifiers, literals, OpaqueType, TS ambient declarations, and
		// other leaf/opaque nodes have no children a rule would walk into.
	}
}

func walkFunction(fn *ast.Function, ancestors []ast.Node, visit visitFunc) {
	if fn.ID != nil {
		walk(fn.ID, ancestors, visit)
	}
	for _, p := range fn.Params {
		walk(p, ancestors, visit)
	}
	walk(fn.Body, ancestors, visit)
}

func walkClass(cls *ast.Class, ancestors []ast.Node, visit visitFunc) {
	if cls.ID != nil {
		walk(cls.ID, ancestors, visit)
	}
	if cls.SuperClass != nil {
		walk(cls.SuperClass, ancestors, visit)
	}
	for _, m := range cls.Body {
		switch member := m.(type) {
		case *ast.MethodDefinition:
			walk(member, ancestors, visit)
		case *ast.PropertyDefinition:
			walk(member, ancestors, visit)
		case *ast.StaticBlock:
			walk(member, ancestors, visit)
		}
	}
}

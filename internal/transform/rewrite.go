// Package transform implements the single-pass AST rewrites and the
// peephole fixpoint driver of spec §4.8 (C10): each Pass is the mutable
// visitor trait doing in-place rewrites, and Driver iterates the
// registered passes over the whole program until none of them reports a
// change or a bounded iteration count is hit. The traversal shape mirrors
// internal/linter/walk.go's dedicated full-coverage walk rather than
// internal/visitor's read-only dispatcher, since a rewrite has to replace
// a child field, not just visit it.
package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// Context carries the state a pass may need beyond the node it was handed:
// the semantic tables (nil if the driver was run without one, in which
// case a pass needing symbol data should treat itself as disabled) and the
// ancestor stack, innermost last, for passes whose legality check depends
// on where a node sits (compress_boolean's parent-operator check,
// compress_block's declaration-escape check).
type Context struct {
	Tables    *semantic.Tables
	ancestors []ast.Node
}

// Parent returns the immediately enclosing node, or nil at the program root.
func (c *Context) Parent() ast.Node {
	if len(c.ancestors) == 0 {
		return nil
	}
	return c.ancestors[len(c.ancestors)-1]
}

// Pass is one named rewrite rule. RewriteExpr/RewriteStmt are called
// post-order (children already rewritten) and return the replacement node
// plus whether a change was made; a pass that only cares about one of the
// two embeds Base for the other.
type Pass interface {
	Name() string
	RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool)
	RewriteStmt(ctx *Context, s ast.Statement) (ast.Statement, bool)
}

// Base supplies no-op defaults so a Pass only implements the method it uses.
type Base struct{}

func (Base) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) { return e, false }
func (Base) RewriteStmt(ctx *Context, s ast.Statement) (ast.Statement, bool)   { return s, false }

// applyExpr runs every pass against e in registration order, feeding each
// pass's output to the next, and reports whether any pass changed it.
func applyExpr(ctx *Context, e ast.Expression, passes []Pass) (ast.Expression, bool) {
	changed := false
	for _, p := range passes {
		if e == nil {
			break
		}
		out, ok := p.RewriteExpr(ctx, e)
		if ok {
			e, changed = out, true
		}
	}
	return e, changed
}

func applyStmt(ctx *Context, s ast.Statement, passes []Pass) (ast.Statement, bool) {
	changed := false
	for _, p := range passes {
		if s == nil {
			break
		}
		out, ok := p.RewriteStmt(ctx, s)
		if ok {
			s, changed = out, true
		}
	}
	return s, changed
}

// rewriteProgram rewrites every top-level statement in place, reporting
// whether anything changed anywhere in the tree this traversal, including
// a mutation buried in a child field that leaves the top-level statement's
// own identity untouched, which is why this threads the child calls'
// changed bool rather than comparing node pointers.
func rewriteProgram(ctx *Context, prog *ast.Program, passes []Pass) bool {
	changed := false
	for i, s := range prog.Body {
		ns, c := rewriteStmt(ctx, s, passes)
		if c {
			changed = true
		}
		prog.Body[i] = ns
	}
	return changed
}

func push(ctx *Context, n ast.Node) func() {
	ctx.ancestors = append(ctx.ancestors, n)
	return func() { ctx.ancestors = ctx.ancestors[:len(ctx.ancestors)-1] }
}

// rewriteStmtList rewrites list in place, reporting whether any element
// changed.
func rewriteStmtList(ctx *Context, list []ast.Statement, passes []Pass) bool {
	changed := false
	for i, s := range list {
		ns, c := rewriteStmt(ctx, s, passes)
		list[i] = ns
		changed = changed || c
	}
	return changed
}

// rewriteStmt recurses into s's children, rewriting them in place, then
// hands s itself to every pass's RewriteStmt. The returned bool is true if
// either a child changed or a pass rewrote s itself.
func rewriteStmt(ctx *Context, s ast.Statement, passes []Pass) (ast.Statement, bool) {
	if s == nil {
		return nil, false
	}
	pop := push(ctx, s)
	childChanged := false
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		var c bool
		n.Expression, c = rewriteExpr(ctx, n.Expression, passes)
		childChanged = c
	case *ast.BlockStatement:
		childChanged = rewriteStmtList(ctx, n.Body, passes)
	case *ast.IfStatement:
		test, c1 := rewriteExpr(ctx, n.Test, passes)
		cons, c2 := rewriteStmt(ctx, n.Consequent, passes)
		alt, c3 := rewriteStmt(ctx, n.Alternate, passes)
		n.Test, n.Consequent, n.Alternate = test, cons, alt
		childChanged = c1 || c2 || c3
	case *ast.SwitchStatement:
		disc, c1 := rewriteExpr(ctx, n.Discriminant, passes)
		n.Discriminant = disc
		childChanged = c1
		for _, c := range n.Cases {
			cpop := push(ctx, c)
			test, c2 := rewriteExpr(ctx, c.Test, passes)
			c.Test = test
			c3 := rewriteStmtList(ctx, c.Consequent, passes)
			cpop()
			childChanged = childChanged || c2 || c3
		}
	case *ast.ForStatement:
		if init, ok := n.Init.(ast.Statement); ok {
			ni, c := rewriteStmt(ctx, init, passes)
			n.Init, childChanged = ni, childChanged || c
		} else if init, ok := n.Init.(ast.Expression); ok {
			ni, c := rewriteExpr(ctx, init, passes)
			n.Init, childChanged = ni, childChanged || c
		}
		test, c2 := rewriteExpr(ctx, n.Test, passes)
		update, c3 := rewriteExpr(ctx, n.Update, passes)
		body, c4 := rewriteStmt(ctx, n.Body, passes)
		n.Test, n.Update, n.Body = test, update, body
		childChanged = childChanged || c2 || c3 || c4
	case *ast.ForInStatement:
		right, c1 := rewriteExpr(ctx, n.Right, passes)
		body, c2 := rewriteStmt(ctx, n.Body, passes)
		n.Right, n.Body = right, body
		childChanged = c1 || c2
	case *ast.ForOfStatement:
		right, c1 := rewriteExpr(ctx, n.Right, passes)
		body, c2 := rewriteStmt(ctx, n.Body, passes)
		n.Right, n.Body = right, body
		childChanged = c1 || c2
	case *ast.WhileStatement:
		test, c1 := rewriteExpr(ctx, n.Test, passes)
		body, c2 := rewriteStmt(ctx, n.Body, passes)
		n.Test, n.Body = test, body
		childChanged = c1 || c2
	case *ast.DoWhileStatement:
		body, c1 := rewriteStmt(ctx, n.Body, passes)
		test, c2 := rewriteExpr(ctx, n.Test, passes)
		n.Body, n.Test = body, test
		childChanged = c1 || c2
	case *ast.ReturnStatement:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.ThrowStatement:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.TryStatement:
		c1 := rewriteStmtList(ctx, n.Block.Body, passes)
		childChanged = c1
		if n.Handler != nil {
			childChanged = childChanged || rewriteStmtList(ctx, n.Handler.Body.Body, passes)
		}
		if n.Finalizer != nil {
			childChanged = childChanged || rewriteStmtList(ctx, n.Finalizer.Body, passes)
		}
	case *ast.LabeledStatement:
		body, c := rewriteStmt(ctx, n.Body, passes)
		n.Body, childChanged = body, c
	case *ast.WithStatement:
		obj, c1 := rewriteExpr(ctx, n.Object, passes)
		body, c2 := rewriteStmt(ctx, n.Body, passes)
		n.Object, n.Body = obj, body
		childChanged = c1 || c2
	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			dpop := push(ctx, d)
			init, c := rewriteExpr(ctx, d.Init, passes)
			d.Init = init
			dpop()
			childChanged = childChanged || c
		}
	case *ast.FunctionDeclaration:
		childChanged = rewriteFunctionBody(ctx, &n.Function, passes)
	case *ast.ClassDeclaration:
		childChanged = rewriteClassBody(ctx, &n.Class, passes)
	default:
		// Import/export declarations, empty/debugger statements, and
		// directives carry no rewritable expression/statement children.
	}
	pop()

	out, passChanged := applyStmt(ctx, s, passes)
	return out, childChanged || passChanged
}

func rewriteFunctionBody(ctx *Context, fn *ast.Function, passes []Pass) bool {
	if block, ok := fn.Body.(*ast.BlockStatement); ok {
		return rewriteStmtList(ctx, block.Body, passes)
	}
	if expr, ok := fn.Body.(ast.Expression); ok {
		out, changed := rewriteExpr(ctx, expr, passes)
		fn.Body = out
		return changed
	}
	return false
}

func rewriteClassBody(ctx *Context, cls *ast.Class, passes []Pass) bool {
	changed := false
	for _, m := range cls.Body {
		switch member := m.(type) {
		case *ast.MethodDefinition:
			if member.Value != nil {
				changed = rewriteFunctionBody(ctx, &member.Value.Function, passes) || changed
			}
		case *ast.PropertyDefinition:
			out, c := rewriteExpr(ctx, member.Value, passes)
			member.Value = out
			changed = changed || c
		case *ast.StaticBlock:
			changed = rewriteStmtList(ctx, member.Body, passes) || changed
		}
	}
	return changed
}

// rewriteExpr recurses into e's children, rewriting them in place, then
// hands e itself to every pass's RewriteExpr. The returned bool is true if
// either a child changed or a pass rewrote e itself.
func rewriteExpr(ctx *Context, e ast.Expression, passes []Pass) (ast.Expression, bool) {
	if e == nil {
		return nil, false
	}
	pop := push(ctx, e)
	childChanged := false
	switch n := e.(type) {
	case *ast.TemplateLiteral:
		for i, x := range n.Expressions {
			out, c := rewriteExpr(ctx, x, passes)
			n.Expressions[i] = out
			childChanged = childChanged || c
		}
	case *ast.TaggedTemplateExpression:
		tag, c := rewriteExpr(ctx, n.Tag, passes)
		n.Tag, childChanged = tag, c
	case *ast.ArrayExpression:
		for i, el := range n.Elements {
			out, c := rewriteExpr(ctx, el, passes)
			n.Elements[i] = out
			childChanged = childChanged || c
		}
	case *ast.ObjectExpression:
		for _, m := range n.Properties {
			if prop, ok := m.(*ast.Property); ok {
				if prop.Computed {
					key, c := rewriteExpr(ctx, prop.Key, passes)
					prop.Key, childChanged = key, childChanged || c
				}
				val, c := rewriteExpr(ctx, prop.Value, passes)
				prop.Value, childChanged = val, childChanged || c
			}
		}
	case *ast.FunctionExpression:
		childChanged = rewriteFunctionBody(ctx, &n.Function, passes)
	case *ast.ArrowFunctionExpression:
		childChanged = rewriteFunctionBody(ctx, &n.Function, passes)
	case *ast.ClassExpression:
		childChanged = rewriteClassBody(ctx, &n.Class, passes)
	case *ast.UnaryExpression:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.UpdateExpression:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.BinaryExpression:
		left, c1 := rewriteExpr(ctx, n.Left, passes)
		right, c2 := rewriteExpr(ctx, n.Right, passes)
		n.Left, n.Right = left, right
		childChanged = c1 || c2
	case *ast.LogicalExpression:
		left, c1 := rewriteExpr(ctx, n.Left, passes)
		right, c2 := rewriteExpr(ctx, n.Right, passes)
		n.Left, n.Right = left, right
		childChanged = c1 || c2
	case *ast.AssignmentExpression:
		right, c := rewriteExpr(ctx, n.Right, passes)
		n.Right, childChanged = right, c
	case *ast.ConditionalExpression:
		test, c1 := rewriteExpr(ctx, n.Test, passes)
		cons, c2 := rewriteExpr(ctx, n.Consequent, passes)
		alt, c3 := rewriteExpr(ctx, n.Alternate, passes)
		n.Test, n.Consequent, n.Alternate = test, cons, alt
		childChanged = c1 || c2 || c3
	case *ast.CallExpression:
		callee, c := rewriteExpr(ctx, n.Callee, passes)
		n.Callee, childChanged = callee, c
		for i, a := range n.Arguments {
			out, c2 := rewriteExpr(ctx, a, passes)
			n.Arguments[i] = out
			childChanged = childChanged || c2
		}
	case *ast.NewExpression:
		callee, c := rewriteExpr(ctx, n.Callee, passes)
		n.Callee, childChanged = callee, c
		for i, a := range n.Arguments {
			out, c2 := rewriteExpr(ctx, a, passes)
			n.Arguments[i] = out
			childChanged = childChanged || c2
		}
	case *ast.MemberExpression:
		obj, c1 := rewriteExpr(ctx, n.Object, passes)
		n.Object, childChanged = obj, c1
		if n.Computed {
			prop, c2 := rewriteExpr(ctx, n.Property, passes)
			n.Property, childChanged = prop, childChanged || c2
		}
	case *ast.SequenceExpression:
		for i, x := range n.Expressions {
			out, c := rewriteExpr(ctx, x, passes)
			n.Expressions[i] = out
			childChanged = childChanged || c
		}
	case *ast.SpreadElement:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.YieldExpression:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.AwaitExpression:
		arg, c := rewriteExpr(ctx, n.Argument, passes)
		n.Argument, childChanged = arg, c
	case *ast.ParenthesizedExpression:
		inner, c := rewriteExpr(ctx, n.Expression, passes)
		n.Expression, childChanged = inner, c
	default:
		// Identifiers, literals, this/super, JSX, and TS-only expression
		// wrappers have no child an optimizer pass here would rewrite.
	}
	pop()

	out, passChanged := applyExpr(ctx, e, passes)
	return out, childChanged || passChanged
}

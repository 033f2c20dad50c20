package hir

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// lowerStmtList lowers each statement into b.cur in order, stopping (and
// returning false) at the first one this pipeline's scope can't represent.
// allowIf is false inside an if/else branch body, enforcing the
// single-level restriction: a nested IfStatement there is reported as
// unsupported rather than silently flattened or recursively lowered, since
// this pipeline's Phi placement only ever reasons about one merge point at
// a time.
func (b *builder) lowerStmtList(stmts []ast.Statement, allowIf bool) bool {
	for _, s := range stmts {
		if !b.lowerStmt(s, allowIf) {
			return false
		}
		if b.cur.Terminal != nil {
			// A Return/Branch already closed this block; any statement
			// after it is dead. build.go's scope doesn't prune dead code
			// itself (dce.go does, later in the pipeline), so stop lowering
			// rather than append instructions to a block that already has
			// a terminal.
			break
		}
	}
	return true
}

func (b *builder) lowerStmt(s ast.Statement, allowIf bool) bool {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		_, ok := b.lowerExpr(n.Expression)
		return ok

	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			id, ok := d.ID.(*ast.Identifier)
			if !ok {
				b.unsupported(d.Span(), fmt.Sprintf("destructuring declarator %T is outside this pipeline's scope", d.ID))
				return false
			}
			if d.Init == nil {
				ident := b.f.NewIdentifier(id.Name)
				b.env[id.Name] = Place{Identifier: ident}
				continue
			}
			place, ok := b.lowerExpr(d.Init)
			if !ok {
				return false
			}
			b.env[id.Name] = place
		}
		return true

	case *ast.ReturnStatement:
		if n.Argument == nil {
			b.cur.Terminal = Return{Span: n.Span()}
			return true
		}
		place, ok := b.lowerExpr(n.Argument)
		if !ok {
			return false
		}
		b.cur.Terminal = Return{Value: place, Span: n.Span()}
		return true

	case *ast.BlockStatement:
		return b.lowerStmtList(n.Body, allowIf)

	case *ast.IfStatement:
		if !allowIf {
			b.unsupported(n.Span(), "nested if/else is outside this pipeline's scope")
			return false
		}
		return b.lowerIf(n)

	default:
		b.unsupported(s.Span(), fmt.Sprintf("statement %T is outside this pipeline's scope", s))
		return false
	}
}

// lowerIf lowers a single-level if/else: the test in the current block,
// each branch into its own fresh block (never itself containing another
// IfStatement), and a join block where any name reassigned differently by
// the two branches gets a Phi (§3.7's merge-point invariant).
func (b *builder) lowerIf(n *ast.IfStatement) bool {
	test, ok := b.lowerExpr(n.Test)
	if !ok {
		return false
	}
	condBlock := b.cur
	envBefore := cloneEnv(b.env)

	thenBlock := b.f.Blocks.New()
	b.cur, b.env = thenBlock, cloneEnv(envBefore)
	if !b.lowerStmt(n.Consequent, false) {
		return false
	}
	thenExit := b.cur
	envThen := b.env

	var elseBlock *Block
	elseTarget := NoBlockId
	envElse := envBefore
	elsePred := condBlock.ID
	elseExit := condBlock
	if n.Alternate != nil {
		elseBlock = b.f.Blocks.New()
		elseTarget = elseBlock.ID
		b.cur, b.env = elseBlock, cloneEnv(envBefore)
		if !b.lowerStmt(n.Alternate, false) {
			return false
		}
		elseExit = b.cur
		envElse = b.env
		elsePred = elseExit.ID
	}

	join := b.f.Blocks.New()
	if n.Alternate == nil {
		elseTarget = join.ID
	}
	condBlock.Terminal = Branch{Test: test, Then: thenBlock.ID, Else: elseTarget, HasElse: n.Alternate != nil}
	if thenExit.Terminal == nil {
		thenExit.Terminal = Jump{Target: join.ID}
	}
	if n.Alternate != nil && elseExit.Terminal == nil {
		elseExit.Terminal = Jump{Target: join.ID}
	}

	b.env = mergeEnvs(b.f, join, envThen, envElse, thenExit.ID, elsePred)
	b.cur = join
	return true
}

func cloneEnv(env map[string]Place) map[string]Place {
	out := make(map[string]Place, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

// mergeEnvs builds join's Phis for every name the two branch-exit
// environments disagree on, returning the environment to continue lowering
// with after the if/else. A name both branches still bind to the same
// Place (never reassigned by either branch) needs no Phi. Two branches
// that assign equal literal values still bind distinct Identifiers and so
// get a Phi; ssa.go's redundant-phi elimination compares Identifiers, not
// values, and leaves such a Phi in place.
func mergeEnvs(f *HIRFunction, join *Block, envThen, envElse map[string]Place, thenPred, elsePred BlockId) map[string]Place {
	merged := make(map[string]Place, len(envThen))
	seen := make(map[string]bool, len(envThen))
	for name, pt := range envThen {
		seen[name] = true
		pe, ok := envElse[name]
		if !ok {
			pe = pt
		}
		merged[name] = mergeOne(f, join, name, pt, pe, thenPred, elsePred)
	}
	for name, pe := range envElse {
		if seen[name] {
			continue
		}
		merged[name] = mergeOne(f, join, name, pe, pe, thenPred, elsePred)
	}
	return merged
}

func mergeOne(f *HIRFunction, join *Block, name string, pt, pe Place, thenPred, elsePred BlockId) Place {
	if pt.Identifier == pe.Identifier {
		return pt
	}
	ident := f.NewIdentifier(name)
	join.Phis = append(join.Phis, &Phi{
		Place:    Place{Identifier: ident},
		Operands: map[BlockId]Place{thenPred: pt, elsePred: pe},
	})
	return Place{Identifier: ident}
}

// lowerExpr lowers e to the Place its value ends up bound to, emitting
// whatever Instr(s) are needed into b.cur. Reading an already-bound name
// needs no new instruction (it returns the Place straight out of b.env),
// nor does a plain assignment (it rebinds the name to its right-hand
// side's Place); every other supported expression emits exactly one Instr
// of its own, after any its operands emit.
func (b *builder) lowerExpr(e ast.Expression) (Place, bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		if place, ok := b.env[n.Name]; ok {
			return place, true
		}
		return b.emit(LoadGlobal{Name: n.Name}, n.Name, n.Span()), true

	case *ast.NumericLiteral:
		return b.emit(Literal{Kind: LiteralNumber, Value: n.Value}, "", n.Span()), true
	case *ast.StringLiteral:
		return b.emit(Literal{Kind: LiteralString, Value: n.Value}, "", n.Span()), true
	case *ast.BooleanLiteral:
		return b.emit(Literal{Kind: LiteralBoolean, Value: n.Value}, "", n.Span()), true
	case *ast.NullLiteral:
		return b.emit(Literal{Kind: LiteralNull}, "", n.Span()), true

	case *ast.BinaryExpression:
		left, ok := b.lowerExpr(n.Left)
		if !ok {
			return Place{}, false
		}
		right, ok := b.lowerExpr(n.Right)
		if !ok {
			return Place{}, false
		}
		return b.emit(BinaryInstr{Operator: n.Operator, Left: left, Right: right}, "", n.Span()), true

	case *ast.LogicalExpression:
		// §4.9 point 3's type-inference stage is the one that would give a
		// logical operator's short-circuit its own control-flow shape; this
		// lowering folds it to a BinaryInstr so straight-line code that
		// never relies on the right operand being skipped (the overwhelming
		// common case for `a ?? b`/`a && b` used as an expression value)
		// gets a usable HIR form, and documents the gap rather than hiding it.
		left, ok := b.lowerExpr(n.Left)
		if !ok {
			return Place{}, false
		}
		right, ok := b.lowerExpr(n.Right)
		if !ok {
			return Place{}, false
		}
		return b.emit(BinaryInstr{Operator: n.Operator, Left: left, Right: right}, "", n.Span()), true

	case *ast.UnaryExpression:
		arg, ok := b.lowerExpr(n.Argument)
		if !ok {
			return Place{}, false
		}
		return b.emit(UnaryInstr{Operator: n.Operator, Operand: arg}, "", n.Span()), true

	case *ast.MemberExpression:
		if n.Computed {
			b.unsupported(n.Span(), "computed member access is outside this pipeline's scope")
			return Place{}, false
		}
		obj, ok := b.lowerExpr(n.Object)
		if !ok {
			return Place{}, false
		}
		prop, ok := n.Property.(*ast.Identifier)
		if !ok {
			b.unsupported(n.Span(), fmt.Sprintf("member property %T is outside this pipeline's scope", n.Property))
			return Place{}, false
		}
		return b.emit(PropertyLoad{Object: obj, Property: prop.Name}, "", n.Span()), true

	case *ast.CallExpression:
		callee, ok := b.lowerExpr(n.Callee)
		if !ok {
			return Place{}, false
		}
		args := make([]Place, len(n.Arguments))
		for i, a := range n.Arguments {
			place, ok := b.lowerExpr(a)
			if !ok {
				return Place{}, false
			}
			args[i] = place
		}
		return b.emit(CallInstr{Callee: callee, Arguments: args}, "", n.Span()), true

	case *ast.AssignmentExpression:
		target, ok := n.Left.(*ast.Identifier)
		if !ok || n.Operator != "=" {
			b.unsupported(n.Span(), "compound or non-identifier assignment is outside this pipeline's scope")
			return Place{}, false
		}
		right, ok := b.lowerExpr(n.Right)
		if !ok {
			return Place{}, false
		}
		b.env[target.Name] = right
		return right, true

	default:
		b.unsupported(e.Span(), fmt.Sprintf("expression %T is outside this pipeline's scope", e))
		return Place{}, false
	}
}

func (b *builder) emit(value InstructionValue, nameHint string, sp span.Span) Place {
	ident := b.f.NewIdentifier(nameHint)
	instr := &Instr{ID: b.f.NewInstr(), Lvalue: Place{Identifier: ident}, Value: value, Span: sp}
	b.cur.Instructions = append(b.cur.Instructions, instr)
	return instr.Lvalue
}

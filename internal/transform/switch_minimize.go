package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// SwitchMinimize folds a switch statement down to the cheapest equivalent
// construct (§4.8 "switch minimization"), in order:
//
//  1. Trailing cases after the last non-empty one, each with an empty body
//     and a side-effect-free test, are dropped; if the last remaining case
//     has a body, its test is erased so it becomes the default.
//  2. A switch with no cases left becomes `discriminant;` if the
//     discriminant may have a side effect, else an empty statement.
//  3. A single case folds to `if (disc === test) { ...body }` (or, for a
//     lone default, a block that evaluates the discriminant first).
//  4. Exactly one case plus one default folds to
//     `if (disc === test) {...} else {...}`.
//
// A case is only ever dropped or folded when, after stripping its own
// terminal `break` (if it has one), it contains no remaining unlabeled
// `break` whose target would change; canBeInlined does the shallow scan
// for that, descending everything except nested switches/loops/labels
// (§4.8 point 5).
type SwitchMinimize struct{ Base }

func (SwitchMinimize) Name() string { return "switch_minimize" }

func (SwitchMinimize) RewriteStmt(ctx *Context, s ast.Statement) (ast.Statement, bool) {
	sw, ok := s.(*ast.SwitchStatement)
	if !ok {
		return s, false
	}

	cases := dropDeadTrailingCases(sw.Cases)
	changed := len(cases) != len(sw.Cases)
	sw.Cases = cases

	switch len(sw.Cases) {
	case 0:
		if mayHaveSideEffect(sw.Discriminant) {
			return &ast.ExpressionStatement{
				Base:       ast.NewBase(ast.KindExpressionStatement, sw.Span()),
				Expression: sw.Discriminant,
			}, true
		}
		return &ast.EmptyStatement{Base: ast.NewBase(ast.KindEmptyStatement, sw.Span())}, true

	case 1:
		c := sw.Cases[0]
		if !canBeInlined(c.Consequent) {
			return sw, changed
		}
		body := blockOf(trimTerminalBreak(c.Consequent), c.Span())
		if c.Test == nil {
			return &ast.BlockStatement{
				Base: ast.NewBase(ast.KindBlockStatement, sw.Span()),
				Body: append([]ast.Statement{&ast.ExpressionStatement{
					Base:       ast.NewBase(ast.KindExpressionStatement, sw.Discriminant.Span()),
					Expression: sw.Discriminant,
				}}, body.Body...),
			}, true
		}
		return &ast.IfStatement{
			Base:       ast.NewBase(ast.KindIfStatement, sw.Span()),
			Test:       strictEq(sw.Discriminant, c.Test),
			Consequent: body,
		}, true

	case 2:
		var def, cased *ast.SwitchCase
		for _, c := range sw.Cases {
			if c.Test == nil {
				def = c
			} else {
				cased = c
			}
		}
		if def == nil || cased == nil {
			return sw, changed
		}
		if !canBeInlined(cased.Consequent) || !canBeInlined(def.Consequent) {
			return sw, changed
		}
		return &ast.IfStatement{
			Base:       ast.NewBase(ast.KindIfStatement, sw.Span()),
			Test:       strictEq(sw.Discriminant, cased.Test),
			Consequent: blockOf(trimTerminalBreak(cased.Consequent), cased.Span()),
			Alternate:  blockOf(trimTerminalBreak(def.Consequent), def.Span()),
		}, true
	}

	return sw, changed
}

func strictEq(disc, test ast.Expression) ast.Expression {
	return &ast.BinaryExpression{
		Base:     ast.NewBase(ast.KindBinaryExpression, disc.Span()),
		Operator: "===",
		Left:     disc,
		Right:    test,
	}
}

func blockOf(body []ast.Statement, sp span.Span) *ast.BlockStatement {
	return &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, sp), Body: body}
}

// dropDeadTrailingCases strips trailing cases, from the end, whose body is
// empty and whose test (if any) cannot have a side effect; if the last
// surviving case has a body, its test is cleared so it becomes the default
// (§4.8 point 1).
func dropDeadTrailingCases(cases []*ast.SwitchCase) []*ast.SwitchCase {
	end := len(cases)
	for end > 0 {
		c := cases[end-1]
		if len(c.Consequent) != 0 {
			break
		}
		if c.Test != nil && mayHaveSideEffect(c.Test) {
			break
		}
		end--
	}
	if end == len(cases) {
		return cases
	}
	kept := cases[:end]
	if len(kept) > 0 && len(kept[len(kept)-1].Consequent) > 0 {
		kept[len(kept)-1].Test = nil
	}
	return kept
}

// mayHaveSideEffect is deliberately conservative: anything other than a
// literal or bare identifier reference is assumed to potentially have one,
// since miscategorizing a side-effecting expression as pure would let this
// pass delete an observable effect.
func mayHaveSideEffect(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.NumericLiteral, *ast.StringLiteral, *ast.BooleanLiteral,
		*ast.NullLiteral, *ast.ThisExpression:
		return false
	default:
		return true
	}
}

// trimTerminalBreak drops a case body's own unlabeled break when it is the
// body's last top-level statement: spec.md §8 scenario 2 folds
// `case 1: b(); break;` to `a === 1 && b();`, the break removed because it
// only ever terminated the case it closes, never anything an enclosing
// construct would otherwise have fallen through to. A break anywhere else
// in the body (non-terminal, or nested inside a conditional) is left alone
// for hasDisqualifyingBreak to judge on its own terms.
func trimTerminalBreak(body []ast.Statement) []ast.Statement {
	if len(body) == 0 {
		return body
	}
	last, ok := body[len(body)-1].(*ast.BreakStatement)
	if !ok || last.Label != nil {
		return body
	}
	return body[:len(body)-1]
}

// canBeInlined scans body for an unlabeled break that would change target
// by being moved out of the switch, descending into everything except
// nested switches, loops, and labeled statements: a break inside one of
// those already targets that construct, not the enclosing switch, so it is
// unaffected by folding the switch away (§4.8 point 5). The case's own
// terminal break, if any, is stripped first since it is safe to drop.
func canBeInlined(body []ast.Statement) bool {
	for _, s := range trimTerminalBreak(body) {
		if hasDisqualifyingBreak(s) {
			return false
		}
	}
	return true
}

func hasDisqualifyingBreak(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.BreakStatement:
		return n.Label == nil
	case *ast.BlockStatement:
		return anyDisqualifyingBreak(n.Body)
	case *ast.IfStatement:
		if hasDisqualifyingBreakStmt(n.Consequent) {
			return true
		}
		return hasDisqualifyingBreakStmt(n.Alternate)
	case *ast.SwitchStatement, *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement,
		*ast.WhileStatement, *ast.DoWhileStatement, *ast.LabeledStatement:
		return false
	case *ast.TryStatement:
		if anyDisqualifyingBreak(n.Block.Body) {
			return true
		}
		if n.Handler != nil && anyDisqualifyingBreak(n.Handler.Body.Body) {
			return true
		}
		if n.Finalizer != nil && anyDisqualifyingBreak(n.Finalizer.Body) {
			return true
		}
		return false
	default:
		return false
	}
}

func hasDisqualifyingBreakStmt(s ast.Statement) bool {
	return s != nil && hasDisqualifyingBreak(s)
}

func anyDisqualifyingBreak(body []ast.Statement) bool {
	for _, s := range body {
		if hasDisqualifyingBreak(s) {
			return true
		}
	}
	return false
}

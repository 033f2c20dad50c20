package printer

import (
	"strings"

	"github.com/jscore-dev/jscore/internal/ast"
)

// Precedence levels (§4.10 "each expression emission knows the minimum
// precedence of its context"). Higher binds tighter. Binary/logical
// operators are looked up in binaryPrecedence; the remaining levels name
// fixed JS grammar productions that aren't binary operators at all.
const (
	precSequence   = 1
	precAssignRHS  = 2 // assignment, yield, arrow, conditional's own branches sit above this
	precConditional = 3
	precExponent   = 14
	precUnary      = 15
	precLHS        = 17 // new/call/member chain
	precPrimary    = 18
)

var binaryPrecedence = map[string]int{
	"??": 4,
	"||": 4,
	"&&": 5,
	"|":  6,
	"^":  7,
	"&":  8,
	"==": 9, "!=": 9, "===": 9, "!==": 9,
	"<": 10, ">": 10, "<=": 10, ">=": 10, "in": 10, "instanceof": 10,
	"<<": 11, ">>": 11, ">>>": 11,
	"+": 12, "-": 12,
	"*": 13, "/": 13, "%": 13,
	"**": precExponent,
}

func precedenceOf(op string) int {
	if p, ok := binaryPrecedence[op]; ok {
		return p
	}
	return precPrimary
}

// printExprPrec emits e, wrapping it in parens iff e's own precedence is
// lower than minPrec (a strictly-lower same-precedence right operand of a
// left-associative operator also needs parens, signalled by isRightOfSame).
func (p *Printer) printExprPrec(e ast.Expression, minPrec int, isRightOfSame bool) {
	if e == nil {
		return
	}
	// TSAsExpression/TSNonNullExpression carry an Accept that's
	// deliberately a no-op (ast.Node's Visitor dispatch only covers nodes
	// this core's semantic/lint passes actually need to walk into, and
	// there is nothing to walk into here beyond the inner Expression), so
	// they're handled directly rather than through printAnnotated/Accept.
	switch n := e.(type) {
	case *ast.TSAsExpression:
		p.printExprPrec(n.Expression, precLHS, false)
		if p.opts.TypeScript {
			p.write(" as ")
			p.printOpaque(n.TypeAnnotation)
		}
		return
	case *ast.TSNonNullExpression:
		p.printExprPrec(n.Expression, precLHS, false)
		if p.opts.TypeScript {
			p.write("!")
		}
		return
	case *ast.ImportExpression:
		p.write("import(")
		p.printExprPrec(n.Source, precAssignRHS, false)
		if n.Options != nil {
			p.write(", ")
			p.printExprPrec(n.Options, precAssignRHS, false)
		}
		p.write(")")
		return
	case *ast.MetaProperty:
		p.write(n.Meta + "." + n.Property)
		return
	}
	prec, rightAssoc := exprPrecedence(e)
	needParens := prec < minPrec || (prec == minPrec && isRightOfSame && !rightAssoc)
	if needParens {
		p.write("(")
	}
	p.printAnnotated(e)
	if needParens {
		p.write(")")
	}
}

// exprPrecedence reports e's own precedence level and whether its operator
// (if any) is right-associative, used by printExprPrec to decide
// whether a same-precedence child on the "wrong" side needs parens.
func exprPrecedence(e ast.Expression) (prec int, rightAssoc bool) {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence, false
	case *ast.AssignmentExpression, *ast.YieldExpression, *ast.ArrowFunctionExpression:
		return precAssignRHS, true
	case *ast.ConditionalExpression:
		return precConditional, true
	case *ast.LogicalExpression:
		return precedenceOf(n.Operator), n.Operator == "**"
	case *ast.BinaryExpression:
		return precedenceOf(n.Operator), n.Operator == "**"
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precUnary, true
	case *ast.UpdateExpression:
		if n.Prefix {
			return precUnary, true
		}
		return precUnary + 1, false
	case *ast.CallExpression, *ast.NewExpression, *ast.MemberExpression,
		*ast.TaggedTemplateExpression:
		return precLHS, false
	default:
		return precPrimary, false
	}
}

func (p *Printer) VisitIdentifier(n *ast.Identifier) {
	p.writeSpanned(n.Name, n.Span())
}

func (p *Printer) VisitPrivateIdentifier(n *ast.PrivateIdentifier) {
	p.write("#" + n.Name)
}

func (p *Printer) VisitNumericLiteral(n *ast.NumericLiteral) {
	p.writeSpanned(formatNumber(n.Value, n.Raw), n.Span())
}

func (p *Printer) VisitBigIntLiteral(n *ast.BigIntLiteral) {
	if n.Value != nil {
		p.write(n.Value.String() + "n")
		return
	}
	p.write(n.Raw)
}

func (p *Printer) VisitStringLiteral(n *ast.StringLiteral) {
	p.writeSpanned(p.quoteString(n.Value, n.Raw), n.Span())
}

func (p *Printer) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	if n.Value {
		p.write("true")
	} else {
		p.write("false")
	}
}

func (p *Printer) VisitNullLiteral(n *ast.NullLiteral) {
	p.write("null")
}

func (p *Printer) VisitRegExpLiteral(n *ast.RegExpLiteral) {
	p.write("/" + n.Pattern + "/" + n.Flags)
}

func (p *Printer) VisitTemplateLiteral(n *ast.TemplateLiteral) {
	p.printTemplateLiteral(n)
}

func (p *Printer) VisitTaggedTemplate(n *ast.TaggedTemplateExpression) {
	p.printExprPrec(n.Tag, precLHS, false)
	p.printTemplateLiteral(n.Quasi)
}

func (p *Printer) VisitArrayExpression(n *ast.ArrayExpression) {
	p.write("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el == nil {
			continue // elision
		}
		p.printExprPrec(el, precAssignRHS, false)
	}
	p.write("]")
}

func (p *Printer) VisitObjectExpression(n *ast.ObjectExpression) {
	if len(n.Properties) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for i, m := range n.Properties {
		p.writeln()
		p.writeIndent()
		p.printObjectMember(m)
		if i < len(n.Properties)-1 {
			p.write(",")
		}
	}
	p.indent--
	p.writeln()
	p.writeIndent()
	p.write("}")
}

func (p *Printer) printObjectMember(m ast.ObjectMember) {
	switch n := m.(type) {
	case *ast.SpreadElement:
		p.write("...")
		p.printExprPrec(n.Argument, precAssignRHS, false)
	case *ast.Property:
		p.printProperty(n)
	}
}

func (p *Printer) printProperty(n *ast.Property) {
	if n.Method {
		if fn, ok := n.Value.(*ast.FunctionExpression); ok {
			if fn.Async {
				p.write("async ")
			}
			if fn.Generator {
				p.write("*")
			}
			p.printPropertyKey(n.Key, n.Computed)
			p.printParams(fn.Params)
			p.write(" ")
			if block, ok := fn.Body.(*ast.BlockStatement); ok {
				p.printBlock(block.Body)
			}
			return
		}
	}
	if n.Kind == "get" || n.Kind == "set" {
		p.write(n.Kind + " ")
		if fn, ok := n.Value.(*ast.FunctionExpression); ok {
			p.printPropertyKey(n.Key, n.Computed)
			p.printParams(fn.Params)
			p.write(" ")
			if block, ok := fn.Body.(*ast.BlockStatement); ok {
				p.printBlock(block.Body)
			}
		}
		return
	}
	if n.Shorthand {
		p.printExprPrec(n.Key, 0, false)
		return
	}
	p.printPropertyKey(n.Key, n.Computed)
	p.write(": ")
	p.printExprPrec(n.Value, precAssignRHS, false)
}

func (p *Printer) VisitFunctionExpression(n *ast.FunctionExpression) {
	p.printFunction("function", &n.Function)
}

func (p *Printer) VisitArrowFunctionExpression(n *ast.ArrowFunctionExpression) {
	if n.Async {
		p.write("async ")
	}
	if len(n.Params) == 1 {
		if id, ok := n.Params[0].(*ast.Identifier); ok {
			p.write(id.Name)
		} else {
			p.printParams(n.Params)
		}
	} else {
		p.printParams(n.Params)
	}
	p.write(" => ")
	if n.ExpressionBody {
		expr, _ := n.Body.(ast.Expression)
		if _, ok := expr.(*ast.ObjectExpression); ok {
			p.write("(")
			p.printExprPrec(expr, precAssignRHS, false)
			p.write(")")
		} else {
			p.printExprPrec(expr, precAssignRHS, false)
		}
		return
	}
	if block, ok := n.Body.(*ast.BlockStatement); ok {
		p.printBlock(block.Body)
	}
}

func (p *Printer) VisitClassExpression(n *ast.ClassExpression) {
	p.printClass(&n.Class)
}

func (p *Printer) VisitUnaryExpression(n *ast.UnaryExpression) {
	if isWordOperator(n.Operator) {
		p.write(n.Operator + " ")
	} else {
		p.write(n.Operator)
	}
	p.printExprPrec(n.Argument, precUnary, false)
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	default:
		return false
	}
}

func (p *Printer) VisitUpdateExpression(n *ast.UpdateExpression) {
	if n.Prefix {
		p.write(n.Operator)
		p.printExprPrec(n.Argument, precUnary, false)
		return
	}
	p.printExprPrec(n.Argument, precUnary+1, false)
	p.write(n.Operator)
}

func (p *Printer) VisitBinaryExpression(n *ast.BinaryExpression) {
	prec := precedenceOf(n.Operator)
	leftMin := prec
	if n.Operator == "**" {
		leftMin = prec + 1 // a same-precedence left operand of right-associative ** needs parens
	}
	p.printExprPrec(n.Left, leftMin, false)
	p.write(" " + n.Operator + " ")
	p.printExprPrec(n.Right, prec, true)
}

func (p *Printer) VisitLogicalExpression(n *ast.LogicalExpression) {
	prec := precedenceOf(n.Operator)
	p.printExprPrec(n.Left, prec, false)
	p.write(" " + n.Operator + " ")
	p.printExprPrec(n.Right, prec, true)
}

func (p *Printer) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	// AssignmentTarget embeds Node, so n.Left (Identifier, MemberExpression,
	// or a destructuring pattern) can be passed straight through.
	p.printAnnotated(n.Left)
	p.write(" " + n.Operator + " ")
	p.printExprPrec(n.Right, precAssignRHS, false)
}

func (p *Printer) VisitConditionalExpression(n *ast.ConditionalExpression) {
	p.printExprPrec(n.Test, precConditional+1, false)
	p.write(" ? ")
	p.printExprPrec(n.Consequent, precAssignRHS, false)
	p.write(" : ")
	p.printExprPrec(n.Alternate, precAssignRHS, false)
}

func (p *Printer) VisitCallExpression(n *ast.CallExpression) {
	p.printExprPrec(n.Callee, precLHS, false)
	if n.Optional {
		p.write("?.")
	}
	p.write("(")
	for i, a := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		p.printExprPrec(a, precAssignRHS, false)
	}
	p.write(")")
}

func (p *Printer) VisitNewExpression(n *ast.NewExpression) {
	p.write("new ")
	p.printExprPrec(n.Callee, precLHS, false)
	p.write("(")
	for i, a := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		p.printExprPrec(a, precAssignRHS, false)
	}
	p.write(")")
}

func (p *Printer) VisitMemberExpression(n *ast.MemberExpression) {
	p.printExprPrec(n.Object, precLHS, false)
	if n.Computed {
		if n.Optional {
			p.write("?.")
		}
		p.write("[")
		p.printExprPrec(n.Property, 0, false)
		p.write("]")
		return
	}
	if n.Optional {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.printExprPrec(n.Property, precPrimary, false)
}

func (p *Printer) VisitSequenceExpression(n *ast.SequenceExpression) {
	for i, e := range n.Expressions {
		if i > 0 {
			p.write(", ")
		}
		p.printExprPrec(e, precAssignRHS, false)
	}
}

func (p *Printer) VisitSpreadElement(n *ast.SpreadElement) {
	p.write("...")
	p.printExprPrec(n.Argument, precAssignRHS, false)
}

func (p *Printer) VisitYieldExpression(n *ast.YieldExpression) {
	p.write("yield")
	if n.Delegate {
		p.write("*")
	}
	if n.Argument != nil {
		p.write(" ")
		p.printExprPrec(n.Argument, precAssignRHS, false)
	}
}

func (p *Printer) VisitAwaitExpression(n *ast.AwaitExpression) {
	p.write("await ")
	p.printExprPrec(n.Argument, precUnary, false)
}

func (p *Printer) VisitThisExpression(n *ast.ThisExpression) {
	p.write("this")
}

func (p *Printer) VisitSuperExpression(n *ast.SuperExpression) {
	p.write("super")
}

func (p *Printer) VisitParenthesizedExpression(n *ast.ParenthesizedExpression) {
	p.write("(")
	p.printExprPrec(n.Expression, 0, false)
	p.write(")")
}

// printTemplateLiteral emits a template literal's interleaved quasis and
// expressions, preserving each quasi's own Cooked value but re-escaping a
// literal "${" or backtick the cooked value happens to contain (§4.10
// "re-escapes `${` inside quasis") since those are the only two sequences
// that would otherwise prematurely close the quasi or open a substitution.
func (p *Printer) printTemplateLiteral(n *ast.TemplateLiteral) {
	p.write("`")
	for i, q := range n.Quasis {
		p.write(escapeTemplateQuasi(q.Cooked))
		if i < len(n.Expressions) {
			p.write("${")
			p.printExprPrec(n.Expressions[i], 0, false)
			p.write("}")
		}
	}
	p.write("`")
}

func escapeTemplateQuasi(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

func formatNumber(v float64, raw string) string {
	// The cooked float64 loses distinctions the source spelling carried
	// (0x1F vs 31, trailing .0, numeric separators); Raw is always
	// preferred when the lexer supplied one, matching §4.10's general
	// "preserve what's unambiguous, normalize only what was actually
	// reconstructed" stance applied to numbers instead of strings.
	if raw != "" {
		return raw
	}
	return trimFloat(v)
}

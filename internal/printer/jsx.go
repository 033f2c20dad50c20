package printer

import (
	"strings"

	"github.com/jscore-dev/jscore/internal/ast"
)

func (p *Printer) VisitJSXElement(n *ast.JSXElement) {
	p.write("<")
	p.printJSXName(n.Name)
	for _, a := range n.Attributes {
		p.write(" ")
		p.printJSXAttribute(a)
	}
	if n.SelfClosing {
		p.write(" />")
		return
	}
	p.write(">")
	for _, c := range n.Children {
		p.printJSXChild(c)
	}
	p.write("</")
	p.printJSXName(n.Name)
	p.write(">")
}

func (p *Printer) VisitJSXFragment(n *ast.JSXFragment) {
	p.write("<>")
	for _, c := range n.Children {
		p.printJSXChild(c)
	}
	p.write("</>")
}

func (p *Printer) printJSXName(e ast.Expression) {
	p.printAnnotated(e)
}

func (p *Printer) printJSXAttribute(a ast.JSXAttributeNode) {
	switch n := a.(type) {
	case *ast.JSXAttribute:
		p.printAnnotated(n)
	case *ast.JSXSpreadAttribute:
		p.printAnnotated(n)
	}
}

func (p *Printer) VisitJSXAttribute(n *ast.JSXAttribute) {
	p.write(n.Name.Name)
	switch v := n.Value.(type) {
	case nil:
		return
	case *ast.StringLiteral:
		p.write("=")
		p.write(p.jsxQuoteString(v.Value))
	case *ast.JSXExpressionContainer:
		p.write("=")
		p.printAnnotated(v)
	}
}

func (p *Printer) VisitJSXSpreadAttribute(n *ast.JSXSpreadAttribute) {
	p.write("{...")
	p.printExprPrec(n.Argument, precAssignRHS, false)
	p.write("}")
}

func (p *Printer) VisitJSXExpressionContainer(n *ast.JSXExpressionContainer) {
	p.write("{")
	if n.Expression != nil {
		p.printExprPrec(n.Expression, 0, false)
	}
	p.write("}")
}

// jsxQuoteString renders a JSX attribute's string value using the
// configured quote character (§4.10 "JSX: quote style is configurable"),
// unlike quoteString's escape-minimizing choice for ordinary string
// literals: JSX attribute values rarely contain the opposite quote, and
// consistency across a file's attributes matters more here than a
// per-attribute escape count.
func (p *Printer) jsxQuoteString(value string) string {
	q := p.preferredQuoteChar()
	return quote1(value, q)
}

func (p *Printer) printJSXChild(c ast.JSXChild) {
	if _, ok := c.(*ast.JSXText); !ok {
		p.printAnnotated(c)
		return
	}
	p.VisitJSXText(c.(*ast.JSXText))
}

// VisitJSXText emits a JSX text child, special-casing the whitespace-only
// run a source author wrote to keep a single significant space between two
// elements/expressions: `{' '}` (quote per Options.Quote), matching §4.10
// "when a JSX text must carry a raw space, emit {' '}". Any other text
// (including blank lines between elements, already collapsed away by the
// lexer's own JSX-text cooking) is emitted as its cooked Value verbatim.
func (p *Printer) VisitJSXText(n *ast.JSXText) {
	if n.Value != "" && strings.TrimSpace(n.Value) == "" && !strings.Contains(n.Value, "\n") {
		p.write("{" + p.jsxQuoteString(" ") + "}")
		return
	}
	p.write(n.Value)
}

func (p *Printer) VisitJSXIdentifier(n *ast.JSXIdentifier) {
	p.write(n.Name)
}

func (p *Printer) VisitJSXMemberExpression(n *ast.JSXMemberExpression) {
	p.printJSXName(n.Object)
	p.write(".")
	p.write(n.Property.Name)
}

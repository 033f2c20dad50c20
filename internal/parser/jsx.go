package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

// parseJSXElementOrFragment is the entry point reached from parsePrefix
// when curToken is `<` and the JSX dialect is enabled. The returned
// expression is always either *ast.JSXElement or *ast.JSXFragment.
func (p *Parser) parseJSXElementOrFragment() ast.Expression {
	return p.parseJSXElementOrFragmentIn(false)
}

// parseJSXElementOrFragmentIn parses one element/fragment starting at `<`.
// asChild tells finishGT what lexical context follows the element's final
// `>`: true when this element sits inside a parent's children list (so the
// lexer must resume scanning JSX text for the next sibling), false when it
// is a standalone expression (so ordinary tokenization resumes).
func (p *Parser) parseJSXElementOrFragmentIn(asChild bool) ast.Expression {
	start := p.curToken
	p.nextToken() // consume '<'

	if p.curTokenIs(token.GT) {
		return p.finishJSXFragment(start, asChild)
	}

	name := p.parseJSXName()
	attrs := p.parseJSXAttributes()

	if p.curTokenIs(token.Slash) {
		p.nextToken() // consume '/'
		elem := &ast.JSXElement{Name: name, Attributes: attrs, SelfClosing: true}
		p.finishGT(asChild)
		elem.SetSpan(spanOf(start, p.curToken))
		return elem
	}

	elem := &ast.JSXElement{Name: name, Attributes: attrs}
	p.finishGT(true) // entering this element's own children: always JSX text
	elem.Children = p.parseJSXChildren()

	if !p.curTokenIs(token.LT) || !p.peekTokenIs(token.Slash) {
		p.errorf(p.curToken, "expected closing JSX tag")
		elem.SetSpan(spanOf(start, p.curToken))
		return elem
	}
	p.nextToken() // consume '<'
	p.nextToken() // consume '/'
	if !p.curTokenIs(token.GT) {
		p.parseJSXName() // closing tag name, discarded: the opening name is authoritative
	}
	p.finishGT(asChild)
	elem.SetSpan(spanOf(start, p.curToken))
	return elem
}

func (p *Parser) finishJSXFragment(start token.Token, asChild bool) ast.Expression {
	frag := &ast.JSXFragment{}
	p.finishGT(true)
	frag.Children = p.parseJSXChildren()
	if p.curTokenIs(token.LT) && p.peekTokenIs(token.Slash) {
		p.nextToken()
		p.nextToken()
	} else {
		p.errorf(p.curToken, "expected closing JSX fragment tag")
	}
	p.finishGT(asChild)
	frag.SetSpan(spanOf(start, p.curToken))
	return frag
}

// finishGT consumes a `>` curToken has already been checked to be sitting
// on, then either re-enters JSX text scanning (asChild) or resumes ordinary
// tokenization — whichever the token that follows actually needs (§4.2,
// §6.1 "Type/JSX grammar disambiguation").
func (p *Parser) finishGT(asChild bool) {
	if !p.curTokenIs(token.GT) {
		p.errorf(p.curToken, "expected '>'")
		return
	}
	end := p.curToken.End
	if asChild {
		p.advanceToJSXText(end)
		return
	}
	p.nextToken()
}

// finishRBrace is finishGT's counterpart for the `}` that closes a JSX
// expression container appearing among an element's children: the text
// that follows it is always scanned in JSX-text mode, never as code.
func (p *Parser) finishRBrace() {
	if !p.curTokenIs(token.RBrace) {
		p.errorf(p.curToken, "expected '}'")
		return
	}
	end := p.curToken.End
	p.advanceToJSXText(end)
}

// parseJSXChildren consumes children until (but not including) the `</`
// that starts a closing tag, or EOF. Callers enter with curToken already
// positioned by a prior finishGT(true)/finishRBrace call, i.e. either on a
// JSXText token or directly on the `<`/`{` that starts the first child.
func (p *Parser) parseJSXChildren() []ast.JSXChild {
	var children []ast.JSXChild
	for {
		if p.curTokenIs(token.JSXText) {
			if p.curToken.Value != "" {
				children = append(children, &ast.JSXText{
					Base:  ast.NewBase(ast.KindJSXText, spanOf(p.curToken, p.curToken)),
					Value: p.curToken.Value, Raw: p.curToken.Value,
				})
			}
			p.nextToken()
		}

		switch {
		case p.curTokenIs(token.LBrace):
			start := p.curToken
			p.nextToken()
			container := &ast.JSXExpressionContainer{}
			if !p.curTokenIs(token.RBrace) {
				container.Expression = p.parseExpression(LOWEST)
				p.nextToken()
			}
			container.SetSpan(spanOf(start, p.curToken))
			children = append(children, container)
			p.finishRBrace()
		case p.curTokenIs(token.LT):
			if p.peekTokenIs(token.Slash) {
				return children
			}
			child := p.parseJSXElementOrFragmentIn(true)
			if jc, ok := child.(ast.JSXChild); ok {
				children = append(children, jc)
			}
		default:
			return children
		}
	}
}

// parseJSXName parses a tag name: a (possibly hyphenated) identifier, with
// any number of `.member` segments building a JSXMemberExpression chain
// (`<Foo.Bar.Baz />`). Attribute names reuse parseJSXIdentifier directly
// since attributes never nest via `.`.
func (p *Parser) parseJSXName() ast.Expression {
	var expr ast.Expression = p.parseJSXIdentifier()
	for p.curTokenIs(token.Dot) {
		p.nextToken()
		prop := p.parseJSXIdentifier()
		expr = &ast.JSXMemberExpression{Object: expr, Property: prop}
	}
	return expr
}

// parseJSXIdentifier merges `ident (- ident)*` into one name, since JSX
// permits hyphenated tag/attribute names (`data-foo`) that the ordinary
// lexer would otherwise split into three tokens.
func (p *Parser) parseJSXIdentifier() *ast.JSXIdentifier {
	start := p.curToken
	name := p.curToken.Value
	end := p.curToken.End
	p.nextToken()
	for p.curTokenIs(token.Minus) && p.curToken.Start == end {
		p.nextToken() // consume '-'
		name += "-" + p.curToken.Value
		end = p.curToken.End
		p.nextToken()
	}
	return &ast.JSXIdentifier{Base: ast.NewBase(ast.KindJSXIdentifier, spanOf(start, start)), Name: name}
}

func (p *Parser) parseJSXAttributes() []ast.JSXAttributeNode {
	var attrs []ast.JSXAttributeNode
	for !p.curTokenIs(token.GT) && !p.curTokenIs(token.Slash) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.LBrace) {
			start := p.curToken
			p.nextToken()
			p.expect(token.DotDotDot)
			arg := p.parseExpression(ASSIGN)
			p.nextToken()
			p.expect(token.RBrace)
			attrs = append(attrs, &ast.JSXSpreadAttribute{
				Base: ast.NewBase(ast.KindJSXSpreadAttribute, spanOf(start, p.curToken)), Argument: arg,
			})
			continue
		}

		start := p.curToken
		name := p.parseJSXIdentifier()
		attr := &ast.JSXAttribute{Name: name}
		if p.curTokenIs(token.Assign) {
			p.nextToken()
			switch {
			case p.curTokenIs(token.StringLiteral):
				attr.Value = p.parseStringLiteral()
				p.nextToken()
			case p.curTokenIs(token.LBrace):
				cstart := p.curToken
				p.nextToken()
				expr := p.parseExpression(ASSIGN)
				container := &ast.JSXExpressionContainer{Expression: expr}
				container.SetSpan(spanOf(cstart, p.curToken))
				p.nextToken()
				p.expect(token.RBrace)
				attr.Value = container
			default:
				p.errorf(p.curToken, "expected JSX attribute value")
			}
		}
		attr.SetSpan(spanOf(start, p.curToken))
		attrs = append(attrs, attr)
	}
	return attrs
}

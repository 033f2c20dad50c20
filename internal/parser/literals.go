package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.curToken
	p.nextToken() // consume '['
	arr := &ast.ArrayExpression{}
	for !p.curTokenIs(token.RBracket) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Comma) {
			arr.Elements = append(arr.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.DotDotDot) {
			arr.Elements = append(arr.Elements, p.parseSpread())
		} else {
			arr.Elements = append(arr.Elements, p.parseExpression(ASSIGN))
		}
		// parseExpression/parseSpread leave curToken on the element's own
		// last token rather than past it (needed so the precedence loop can
		// keep inspecting peekToken); advance once here to reach the
		// separating comma or the closing bracket.
		p.nextToken()
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBracket)
	arr.SetSpan(spanOf(start, p.curToken))
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	start := p.curToken
	p.nextToken() // consume '{'
	obj := &ast.ObjectExpression{}
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DotDotDot) {
			obj.Properties = append(obj.Properties, p.parseSpread().(*ast.SpreadElement))
			p.nextToken() // parseSpread, like parseExpression, stops on its own last token
		} else {
			// parseObjectProperty always finishes with curToken already past
			// its value, unlike the bare expression parsers above.
			obj.Properties = append(obj.Properties, p.parseObjectProperty())
		}
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	obj.SetSpan(spanOf(start, p.curToken))
	return obj
}

func (p *Parser) parseObjectProperty() ast.ObjectMember {
	start := p.curToken
	async := false
	generator := false
	kind := "init"

	for {
		if p.curIsKeyword("async") && !p.peekTokenIs(token.Colon) && !p.peekTokenIs(token.Comma) &&
			!p.peekTokenIs(token.RBrace) && !p.peekTokenIs(token.LParen) {
			async = true
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.Star) {
			generator = true
			p.nextToken()
			continue
		}
		if (p.curIsKeyword("get") || p.curIsKeyword("set")) && !p.peekTokenIs(token.Colon) &&
			!p.peekTokenIs(token.Comma) && !p.peekTokenIs(token.RBrace) && !p.peekTokenIs(token.LParen) {
			kind = p.curToken.Value
			p.nextToken()
			continue
		}
		break
	}

	key, computed := p.parsePropertyKey()

	prop := &ast.Property{Key: key, Computed: computed, Kind: kind}

	switch {
	case p.curTokenIs(token.LParen):
		fn := ast.Function{Async: async, Generator: generator}
		fn.Params = p.parseParams()
		fn.Body = p.parseBlock()
		prop.Value = &ast.FunctionExpression{Function: fn}
		prop.Method = true
	case p.curTokenIs(token.Colon):
		p.nextToken()
		prop.Value = p.parseExpression(ASSIGN)
		p.nextToken()
	case p.curTokenIs(token.Assign):
		// Shorthand with default, only legal when reinterpreted as a
		// destructuring pattern; kept as an AssignmentPattern-shaped value
		// so exprToPattern can narrow it later.
		p.nextToken()
		def := p.parseExpression(ASSIGN)
		p.nextToken()
		prop.Value = &ast.AssignmentExpression{Operator: "=", Left: key.(ast.AssignmentTarget), Right: def}
		prop.Shorthand = true
	default:
		prop.Value = key
		prop.Shorthand = true
	}
	prop.SetSpan(spanOf(start, p.curToken))
	return prop
}

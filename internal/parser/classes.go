package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

func (p *Parser) parseClassExpression() ast.Expression {
	start := p.curToken
	cls := p.parseClassTail()
	return &ast.ClassExpression{Base: ast.NewBase(ast.KindClassExpression, spanOf(start, p.curToken)), Class: cls}
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	start := p.curToken
	cls := p.parseClassTail()
	if cls.ID == nil {
		p.errorf(start, "class declaration requires a name")
	}
	return &ast.ClassDeclaration{Base: ast.NewBase(ast.KindClassDeclaration, spanOf(start, p.curToken)), Class: cls}
}

func (p *Parser) parseClassTail() ast.Class {
	p.nextToken() // consume 'class'
	cls := ast.Class{}
	if p.curTokenIs(token.Ident) {
		cls.ID = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		p.nextToken()
	}
	if p.curIsKeyword("extends") {
		p.nextToken()
		cls.SuperClass = p.parseExpression(CALL)
		p.nextToken()
	}
	if !p.expect(token.LBrace) {
		return cls
	}
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Semicolon) {
			p.nextToken()
			continue
		}
		member := p.parseClassMember()
		if member != nil {
			cls.Body = append(cls.Body, member)
		} else {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	return cls
}

func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.curToken
	static := false
	if p.curIsKeyword("static") && !p.peekTokenIs(token.LParen) && !p.peekTokenIs(token.Assign) {
		static = true
		p.nextToken()
		if p.curTokenIs(token.LBrace) {
			block := p.parseBlock()
			return &ast.StaticBlock{Base: ast.NewBase(ast.KindStaticBlock, spanOf(start, p.curToken)), Body: block.Body}
		}
	}

	async := false
	generator := false
	kind := "method"

	for {
		if p.curIsKeyword("async") && !p.peekTokenIs(token.LParen) && !p.peekTokenIs(token.Assign) {
			async = true
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.Star) {
			generator = true
			p.nextToken()
			continue
		}
		if (p.curIsKeyword("get") || p.curIsKeyword("set")) && !p.peekTokenIs(token.LParen) && !p.peekTokenIs(token.Assign) {
			kind = p.curToken.Value
			p.nextToken()
			continue
		}
		break
	}

	key, computed := p.parsePropertyKey()

	if p.curTokenIs(token.LParen) {
		fn := ast.Function{Async: async, Generator: generator}
		fn.Params = p.parseParams()
		fn.Body = p.parseBlock()
		if kind == "method" {
			if id, ok := key.(*ast.Identifier); ok && id.Name == "constructor" && !static {
				kind = "constructor"
			}
		}
		value := &ast.FunctionExpression{Function: fn}
		return &ast.MethodDefinition{
			Base: ast.NewBase(ast.KindMethodDefinition, spanOf(start, p.curToken)),
			Key: key, Value: value, Kind: kind, Computed: computed, Static: static,
		}
	}

	prop := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		prop.Value = p.parseExpression(ASSIGN)
		p.nextToken()
	}
	p.consumeSemicolon()
	prop.SetSpan(spanOf(start, p.curToken))
	return prop
}

// parsePropertyKey parses an object/class member key: an identifier, a
// string/numeric literal, a private name, or a computed `[expr]` key.
func (p *Parser) parsePropertyKey() (ast.Expression, bool) {
	if p.curTokenIs(token.LBracket) {
		p.nextToken()
		key := p.parseExpression(ASSIGN)
		p.nextToken()
		p.expect(token.RBracket)
		return key, true
	}
	if p.curTokenIs(token.PrivateIdentifier) {
		id := &ast.PrivateIdentifier{Base: ast.NewBase(ast.KindIdentifier, spanOf(p.curToken, p.curToken)), Name: p.curToken.Value}
		p.nextToken()
		return id, false
	}
	if p.curTokenIs(token.StringLiteral) {
		s := p.parseStringLiteral()
		p.nextToken()
		return s, false
	}
	if p.curTokenIs(token.NumericLiteral) {
		n := p.parseNumericLiteral()
		p.nextToken()
		return n, false
	}
	id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	p.nextToken()
	return id, false
}

// consumeSemicolon implements Automatic Semicolon Insertion's common case:
// an explicit `;` is consumed, and its absence is tolerated when the next
// token is `}`, EOF, or begins a new line (§4.3, §9 "ASI").
func (p *Parser) consumeSemicolon() {
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
		return
	}
	if p.curTokenIs(token.RBrace) || p.curTokenIs(token.EOF) || p.curToken.PrecededByNewline {
		return
	}
	p.errorf(p.curToken, "expected ';'")
}

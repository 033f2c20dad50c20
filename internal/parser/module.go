package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

// parseImportDeclaration covers the side-effect-only form (`import "mod"`),
// the default/namespace/named specifier combinations, and `import type`
// (§4.3 "Module record construction").
func (p *Parser) parseImportDeclaration() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'import'

	decl := &ast.ImportDeclaration{}
	if p.curIsKeyword("type") && !p.peekTokenIs(token.Comma) && !p.peekIsKeyword("from") {
		decl.TypeOnly = true
		p.nextToken()
	}

	if p.curTokenIs(token.StringLiteral) {
		decl.Source = p.parseStringLiteral()
		p.nextToken()
		p.consumeSemicolon()
		decl.SetSpan(spanOf(start, p.curToken))
		return decl
	}

	if p.curTokenIs(token.Ident) {
		local := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{Local: local})
		p.nextToken()
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}

	switch {
	case p.curTokenIs(token.Star):
		p.nextToken()
		if p.curIsKeyword("as") {
			p.nextToken()
		}
		local := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespaceSpecifier{Local: local})
		p.nextToken()
	case p.curTokenIs(token.LBrace):
		p.nextToken()
		for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
			sstart := p.curToken
			imported := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
			p.nextToken()
			local := imported
			if p.curIsKeyword("as") {
				p.nextToken()
				local = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
				p.nextToken()
			}
			spec := &ast.ImportSpecifier{Imported: imported, Local: local}
			spec.SetSpan(spanOf(sstart, p.curToken))
			decl.Specifiers = append(decl.Specifiers, spec)
			if p.curTokenIs(token.Comma) {
				p.nextToken()
			}
		}
		p.expect(token.RBrace)
	}

	if p.curIsKeyword("from") {
		p.nextToken()
	} else {
		p.errorf(p.curToken, "expected 'from'")
	}
	decl.Source = p.parseStringLiteral()
	p.nextToken()
	p.consumeSemicolon()
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseExportDeclaration covers `export default ...`, `export * [as ns]
// from "mod"`, `export { ... } [from "mod"]`, and `export <declaration>`.
func (p *Parser) parseExportDeclaration() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'export'

	if p.curIsKeyword("default") {
		p.nextToken()
		return p.finishExportDefault(start)
	}

	if p.curTokenIs(token.Star) {
		p.nextToken()
		exp := &ast.ExportAllDeclaration{}
		if p.curIsKeyword("as") {
			p.nextToken()
			exp.Exported = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
			p.nextToken()
		}
		if p.curIsKeyword("from") {
			p.nextToken()
		} else {
			p.errorf(p.curToken, "expected 'from'")
		}
		exp.Source = p.parseStringLiteral()
		p.nextToken()
		p.consumeSemicolon()
		exp.SetSpan(spanOf(start, p.curToken))
		return exp
	}

	typeOnly := false
	if p.curIsKeyword("type") && p.peekTokenIs(token.LBrace) {
		typeOnly = true
		p.nextToken()
	}

	if p.curTokenIs(token.LBrace) {
		p.nextToken()
		named := &ast.ExportNamedDeclaration{TypeOnly: typeOnly}
		for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
			sstart := p.curToken
			local := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
			p.nextToken()
			exported := local
			if p.curIsKeyword("as") {
				p.nextToken()
				exported = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
				p.nextToken()
			}
			spec := &ast.ExportSpecifier{Local: local, Exported: exported}
			spec.SetSpan(spanOf(sstart, p.curToken))
			named.Specifiers = append(named.Specifiers, spec)
			if p.curTokenIs(token.Comma) {
				p.nextToken()
			}
		}
		p.expect(token.RBrace)
		if p.curIsKeyword("from") {
			p.nextToken()
			named.Source = p.parseStringLiteral()
			p.nextToken()
		}
		p.consumeSemicolon()
		named.SetSpan(spanOf(start, p.curToken))
		return named
	}

	decl := p.parseStatement()
	asDecl, _ := decl.(ast.Declaration)
	named := &ast.ExportNamedDeclaration{Declaration: asDecl}
	named.SetSpan(spanOf(start, p.curToken))
	return named
}

func (p *Parser) finishExportDefault(start token.Token) ast.Statement {
	var inner ast.Node
	switch {
	case p.curIsKeyword("function"):
		inner = p.parseDefaultFunction(false)
	case p.curIsKeyword("async") && p.peekIsKeyword("function"):
		p.nextToken()
		inner = p.parseDefaultFunction(true)
	case p.curIsKeyword("class"):
		inner = p.parseClassExpression()
	default:
		inner = p.parseExpression(ASSIGN)
		p.nextToken()
		p.consumeSemicolon()
	}
	return &ast.ExportDefaultDeclaration{
		Base: ast.NewBase(ast.KindExportDefaultDeclaration, spanOf(start, p.curToken)), Declaration: inner,
	}
}

// parseDefaultFunction parses `export default function ...`, the one place
// the grammar allows a name-less FunctionDeclaration.
func (p *Parser) parseDefaultFunction(async bool) ast.Node {
	start := p.curToken
	p.nextToken() // consume 'function'
	fn := ast.Function{Async: async}
	if p.curTokenIs(token.Star) {
		fn.Generator = true
		p.nextToken()
	}
	if p.curTokenIs(token.Ident) {
		fn.ID = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		p.nextToken()
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return &ast.FunctionDeclaration{Base: ast.NewBase(ast.KindFunctionDeclaration, spanOf(start, p.curToken)), Function: fn}
}

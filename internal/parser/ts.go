package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

// parseTSInterfaceDeclaration parses the declaration's name and extends
// clause structurally, but the member list itself is kept opaque (§ non-goal:
// no type checker, see ast.OpaqueType).
func (p *Parser) parseTSInterfaceDeclaration() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'interface'
	id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	p.nextToken()
	decl := &ast.TSInterfaceDeclaration{ID: id}

	if p.curIsKeyword("extends") {
		p.nextToken()
		decl.Extends = append(decl.Extends, p.parseExpression(CALL))
		p.nextToken()
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			decl.Extends = append(decl.Extends, p.parseExpression(CALL))
			p.nextToken()
		}
	}

	if p.expect(token.LBrace) {
		decl.Body = p.parseOpaqueTypeUntil(token.RBrace)
		p.expect(token.RBrace)
	}
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseTSTypeAliasDeclaration keeps both an optional type-parameter list and
// the aliased type itself opaque; parseOpaqueTypeUntil's depth tracking
// treats the type-parameter list's own `<...>` as nesting, so no special
// casing is needed when one is absent.
func (p *Parser) parseTSTypeAliasDeclaration() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'type'
	id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	p.nextToken()
	decl := &ast.TSTypeAliasDeclaration{ID: id}

	p.parseOpaqueTypeUntil(token.Assign)
	p.expect(token.Assign)
	decl.TypeAnnotation = p.parseOpaqueTypeUntil(token.Semicolon, token.EOF)
	p.consumeSemicolon()
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseTSEnumDeclaration handles both `enum Foo {}` and `const enum Foo {}`;
// the dispatcher in statements.go decides isConst by peeking past 'const'
// before calling in, so curToken may be sitting on either keyword.
func (p *Parser) parseTSEnumDeclaration(isConst bool) ast.Statement {
	start := p.curToken
	if isConst {
		p.nextToken() // consume 'const'
	}
	p.nextToken() // consume 'enum'
	id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	p.nextToken()
	decl := &ast.TSEnumDeclaration{ID: id, Const: isConst}

	if p.expect(token.LBrace) {
		for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
			mstart := p.curToken
			var memberID ast.Expression
			if p.curTokenIs(token.StringLiteral) {
				memberID = p.parseStringLiteral()
				p.nextToken()
			} else {
				memberID = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
				p.nextToken()
			}
			member := &ast.TSEnumMember{ID: memberID}
			if p.curTokenIs(token.Assign) {
				p.nextToken()
				member.Initializer = p.parseExpression(ASSIGN)
				p.nextToken()
			}
			member.SetSpan(spanOf(mstart, p.curToken))
			decl.Members = append(decl.Members, member)
			if p.curTokenIs(token.Comma) {
				p.nextToken()
			}
		}
		p.expect(token.RBrace)
	}
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseTSModuleDeclaration parses `namespace Foo.Bar { ... }` and
// `module "foo" { ... }`/`module Foo;`. declare is threaded in by
// parseTSDeclare when reached via `declare namespace`/`declare module`.
func (p *Parser) parseTSModuleDeclaration(declare bool) ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'namespace' or 'module'
	decl := &ast.TSModuleDeclaration{Declare: declare}

	if p.curTokenIs(token.StringLiteral) {
		decl.ID = p.parseStringLiteral()
		p.nextToken()
	} else {
		idStart := p.curToken
		name := p.curToken.Value
		p.nextToken()
		for p.curTokenIs(token.Dot) {
			p.nextToken()
			name += "." + p.curToken.Value
			p.nextToken()
		}
		decl.ID = ast.NewIdentifier(spanOf(idStart, idStart), name)
	}

	if p.curTokenIs(token.LBrace) {
		decl.Body = p.parseStatementListBlock()
	} else {
		p.consumeSemicolon()
	}
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseTSDeclare handles the `declare` ambient modifier. `declare global {
// ... }` is the one construct it structures itself (as a Global
// TSModuleDeclaration); everything else just has its ambient marker
// stripped and is parsed as the ordinary declaration it announces, since
// this core never emits code for declare-only bindings (no type checker).
func (p *Parser) parseTSDeclare() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'declare'

	if p.curIsKeyword("global") {
		p.nextToken()
		decl := &ast.TSModuleDeclaration{Declare: true, Global: true}
		if p.expect(token.LBrace) {
			decl.Body = p.parseStatementListBlock()
		}
		decl.SetSpan(spanOf(start, p.curToken))
		return decl
	}

	if p.curIsKeyword("namespace") || p.curIsKeyword("module") {
		return p.parseTSModuleDeclaration(true)
	}
	if p.curIsKeyword("const") && p.peekIsKeyword("enum") {
		return p.parseTSEnumDeclaration(true)
	}
	if p.curIsKeyword("enum") {
		return p.parseTSEnumDeclaration(false)
	}

	return p.parseStatement()
}

// parseStatementListBlock consumes a brace-delimited statement list already
// positioned on the opening `{`, as used by module/namespace bodies (which,
// unlike interface/type-alias bodies, are ordinary statement lists rather
// than opaque type-member lists; see ast.TSModuleDeclaration's doc comment).
func (p *Parser) parseStatementListBlock() []ast.Statement {
	p.nextToken() // consume '{'
	var body []ast.Statement
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		} else {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	return body
}

// parseOpaqueTypeUntil consumes tokens up to (not including) the next
// bracket-depth-0 token matching one of stop, treating {([< as nesting opens
// whose matching close doesn't itself end the scan. Used everywhere a
// TS type-level construct is recognized without being structured further.
func (p *Parser) parseOpaqueTypeUntil(stop ...token.Kind) *ast.OpaqueType {
	start := p.curToken
	last := p.curToken
	depth := 0
	for {
		if depth == 0 && p.curTokenMatchesAny(stop) {
			break
		}
		if p.curTokenIs(token.EOF) {
			break
		}
		switch p.curToken.Kind {
		case token.LBrace, token.LParen, token.LBracket, token.LT:
			depth++
		case token.RBrace, token.RParen, token.RBracket, token.GT:
			depth--
		}
		last = p.curToken
		p.nextToken()
	}
	return &ast.OpaqueType{Base: ast.NewBase(ast.KindOpaqueType, spanOf(start, last))}
}

func (p *Parser) curTokenMatchesAny(kinds []token.Kind) bool {
	for _, k := range kinds {
		if p.curTokenIs(k) {
			return true
		}
	}
	return false
}

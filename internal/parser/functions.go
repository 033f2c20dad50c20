package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

func (p *Parser) parseFunctionExpression(async bool) ast.Expression {
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
	return &ast.FunctionExpression{Base: ast.NewBase(ast.KindFunctionExpression, spanOf(start, p.curToken)), Function: fn}
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
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
	} else {
		p.errorf(p.curToken, "function declaration requires a name")
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return &ast.FunctionDeclaration{Base: ast.NewBase(ast.KindFunctionDeclaration, spanOf(start, p.curToken)), Function: fn}
}

// parseParams parses a parenthesized parameter list of Patterns, allowing
// a trailing rest parameter and default-value (AssignmentPattern) entries.
func (p *Parser) parseParams() []ast.Pattern {
	var params []ast.Pattern
	if !p.expect(token.LParen) {
		return params
	}
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DotDotDot) {
			start := p.curToken
			p.nextToken()
			arg := p.parseBindingTarget()
			params = append(params, &ast.RestElement{Base: ast.NewBase(ast.KindRestElement, spanOf(start, p.curToken)), Argument: arg})
		} else {
			target := p.parseBindingTarget()
			if p.curTokenIs(token.Assign) {
				start := target
				p.nextToken()
				def := p.parseExpression(ASSIGN)
				end := p.curToken
				p.nextToken()
				target = &ast.AssignmentPattern{Base: ast.NewBase(ast.KindAssignmentPattern, spanOf(tokenOf(start), end)), Left: target, Right: def}
			}
			params = append(params, target)
		}
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RParen)
	return params
}

// parseBindingTarget parses a single binding position: an identifier, an
// array pattern, or an object pattern (§3.3 "pattern nodes").
func (p *Parser) parseBindingTarget() ast.Pattern {
	switch p.curToken.Kind {
	case token.LBracket:
		return p.parseArrayPattern()
	case token.LBrace:
		return p.parseObjectPattern()
	default:
		id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		p.nextToken()
		return id
	}
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	start := p.curToken
	p.nextToken() // consume '['
	pat := &ast.ArrayPattern{}
	for !p.curTokenIs(token.RBracket) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Comma) {
			pat.Elements = append(pat.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.DotDotDot) {
			rstart := p.curToken
			p.nextToken()
			arg := p.parseBindingTarget()
			pat.Elements = append(pat.Elements, &ast.RestElement{Base: ast.NewBase(ast.KindRestElement, spanOf(rstart, p.curToken)), Argument: arg})
		} else {
			el := p.parseBindingTarget()
			if p.curTokenIs(token.Assign) {
				p.nextToken()
				def := p.parseExpression(ASSIGN)
				p.nextToken()
				el = &ast.AssignmentPattern{Left: el, Right: def}
			}
			pat.Elements = append(pat.Elements, el)
		}
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBracket)
	pat.SetSpan(spanOf(start, p.curToken))
	return pat
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	start := p.curToken
	p.nextToken() // consume '{'
	pat := &ast.ObjectPattern{}
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DotDotDot) {
			rstart := p.curToken
			p.nextToken()
			arg := p.parseBindingTarget()
			pat.Properties = append(pat.Properties, &ast.RestElement{Base: ast.NewBase(ast.KindRestElement, spanOf(rstart, p.curToken)), Argument: arg})
		} else {
			fstart := p.curToken
			key := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
			p.nextToken()
			field := &ast.ObjectPatternField{Key: key, Shorthand: true}
			if p.curTokenIs(token.Colon) {
				field.Shorthand = false
				p.nextToken()
				field.Value = p.parseBindingTarget()
			} else {
				field.Value = key
			}
			if p.curTokenIs(token.Assign) {
				p.nextToken()
				def := p.parseExpression(ASSIGN)
				p.nextToken()
				field.Value = &ast.AssignmentPattern{Left: field.Value, Right: def}
			}
			field.SetSpan(spanOf(fstart, p.curToken))
			pat.Properties = append(pat.Properties, field)
		}
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	pat.SetSpan(spanOf(start, p.curToken))
	return pat
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	start := p.curToken
	if !p.expect(token.LBrace) {
		return &ast.BlockStatement{}
	}
	block := &ast.BlockStatement{}
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Body = append(block.Body, stmt)
		} else {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	block.SetSpan(spanOf(start, p.curToken))
	return block
}

// parseArrowFunction parses both `x => x+1` (single bare identifier
// parameter, already past the identifier check in isArrowAhead) and
// `async (a, b) => {...}`; the parenthesized, possibly-async parameter
// list reuses parseParams.
func (p *Parser) parseArrowFunction(async bool) ast.Expression {
	start := p.curToken
	if async {
		p.nextToken() // consume 'async'
	}
	fn := ast.Function{Async: async}
	if p.curTokenIs(token.LParen) {
		fn.Params = p.parseParams()
	} else {
		id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		p.nextToken()
		fn.Params = []ast.Pattern{id}
	}
	p.expect(token.Arrow)
	arrow := &ast.ArrowFunctionExpression{Function: fn}
	if p.curTokenIs(token.LBrace) {
		fn.Body = p.parseBlock()
	} else {
		arrow.ExpressionBody = true
		fn.Body = p.parseExpression(ASSIGN)
	}
	arrow.Function = fn
	arrow.SetSpan(spanOf(start, p.curToken))
	return arrow
}

// parseParenOrArrow disambiguates `(expr)` from an arrow function's
// parameter list by speculatively parsing as a parenthesized expression
// (or tuple-like comma list) and only reinterpreting as arrow params once
// an `=>` is actually seen following the closing paren (§4.3 "speculative
// arrow-vs-paren reparse").
func (p *Parser) parseParenOrArrow() ast.Expression {
	start := p.curToken
	save := p.snapshot()

	p.nextToken() // consume '('
	if p.curTokenIs(token.RParen) && p.peekTokenIs(token.Arrow) {
		p.nextToken() // consume ')'
		return p.finishArrowAfterParams(start, nil, false)
	}

	var elements []ast.Expression
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DotDotDot) {
			// Only valid as an arrow rest parameter; restore and reparse as params.
			p.restore(save)
			return p.parseArrowFunction(false)
		}
		elements = append(elements, p.parseExpression(ASSIGN))
		p.nextToken()
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RParen) {
		p.errorf(p.curToken, "expected %s, got %s", token.RParen, p.curToken.Kind)
		return nil
	}

	if p.peekTokenIs(token.Arrow) {
		p.nextToken() // consume ')'
		params := make([]ast.Pattern, 0, len(elements))
		for _, e := range elements {
			params = append(params, exprToPattern(e))
		}
		return p.finishArrowAfterParams(start, params, false)
	}

	if len(elements) == 1 {
		return &ast.ParenthesizedExpression{Base: ast.NewBase(ast.KindParenthesizedExpression, spanOf(start, p.curToken)), Expression: elements[0]}
	}
	seq := &ast.SequenceExpression{Expressions: elements}
	seq.SetSpan(spanOf(start, p.curToken))
	return &ast.ParenthesizedExpression{Base: ast.NewBase(ast.KindParenthesizedExpression, spanOf(start, p.curToken)), Expression: seq}
}

func (p *Parser) finishArrowAfterParams(start token.Token, params []ast.Pattern, async bool) ast.Expression {
	p.expect(token.Arrow)
	fn := ast.Function{Params: params, Async: async}
	arrow := &ast.ArrowFunctionExpression{}
	if p.curTokenIs(token.LBrace) {
		fn.Body = p.parseBlock()
	} else {
		arrow.ExpressionBody = true
		fn.Body = p.parseExpression(ASSIGN)
	}
	arrow.Function = fn
	arrow.SetSpan(spanOf(start, p.curToken))
	return arrow
}

// exprToPattern converts an already-parsed expression into the pattern it
// would have been, had the parser known up front it was parsing arrow
// parameters instead of a parenthesized expression list (§3.3).
func exprToPattern(e ast.Expression) ast.Pattern {
	switch v := e.(type) {
	case ast.Pattern:
		return v
	case *ast.AssignmentExpression:
		return &ast.AssignmentPattern{Left: exprToPattern(exprOf(v.Left)), Right: v.Right}
	default:
		return &unresolvedPattern{e}
	}
}

func exprOf(t ast.AssignmentTarget) ast.Expression {
	if e, ok := t.(ast.Expression); ok {
		return e
	}
	return nil
}

type unresolvedPattern struct{ ast.Expression }

func (u *unresolvedPattern) patternNode() {}

// parserSnapshot captures enough state to backtrack a speculative parse.
// Because Parser.buf is append-only (see parser.go), restoring is just
// rewinding pos — no tokens are ever lost to the underlying lexer.
type parserSnapshot struct {
	pos     int
	diagLen int
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{pos: p.pos, diagLen: len(p.Diagnostics)}
}

func (p *Parser) restore(s parserSnapshot) {
	p.pos = s.pos
	p.curToken = p.buf[p.pos-1]
	p.peekToken = p.buf[p.pos]
	p.Diagnostics = p.Diagnostics[:s.diagLen]
}

package parser

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

// parseStatement is the top-level statement dispatcher, reached from
// parseProgram, parseBlock, and every construct whose body is a single
// statement (if/for/while/labeled/...). It shares parseExpression's
// recursion-depth guard rather than a separate counter, since a
// pathologically nested program nests through both equally.
func (p *Parser) parseStatement() ast.Statement {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		if !p.inRecursionRecovery {
			p.errorf(p.curToken, "statement nested too deeply")
			p.inRecursionRecovery = true
		}
		p.skipToStatementBoundary()
		p.inRecursionRecovery = false
		return nil
	}

	switch {
	case p.curTokenIs(token.LBrace):
		return p.parseBlock()
	case p.curTokenIs(token.Semicolon):
		return p.parseEmptyStatement()
	case p.curIsKeyword("debugger"):
		return p.parseDebuggerStatement()
	case p.curIsKeyword("if"):
		return p.parseIfStatement()
	case p.curIsKeyword("for"):
		return p.parseForStatement()
	case p.curIsKeyword("while"):
		return p.parseWhileStatement()
	case p.curIsKeyword("do"):
		return p.parseDoWhileStatement()
	case p.curIsKeyword("switch"):
		return p.parseSwitchStatement()
	case p.curIsKeyword("try"):
		return p.parseTryStatement()
	case p.curIsKeyword("return"):
		return p.parseReturnStatement()
	case p.curIsKeyword("throw"):
		return p.parseThrowStatement()
	case p.curIsKeyword("break"):
		return p.parseBreakOrContinue(true)
	case p.curIsKeyword("continue"):
		return p.parseBreakOrContinue(false)
	case p.curIsKeyword("with"):
		return p.parseWithStatement()
	case p.opt.TypeScript && p.curIsKeyword("const") && p.peekIsKeyword("enum"):
		return p.parseTSEnumDeclaration(true)
	case p.curIsKeyword("var"), p.curIsKeyword("let"), p.curIsKeyword("const"):
		return p.parseVariableStatement()
	case p.curIsKeyword("function"):
		return p.parseFunctionDeclaration(false)
	case p.curIsKeyword("async") && p.peekIsKeyword("function") && !p.peekToken.PrecededByNewline:
		p.nextToken()
		return p.parseFunctionDeclaration(true)
	case p.curIsKeyword("class"):
		return p.parseClassDeclaration()
	case p.curIsKeyword("import") && !p.peekTokenIs(token.LParen) && !p.peekTokenIs(token.Dot):
		return p.parseImportDeclaration()
	case p.curIsKeyword("export"):
		return p.parseExportDeclaration()
	case p.opt.TypeScript && p.curIsKeyword("interface"):
		return p.parseTSInterfaceDeclaration()
	case p.opt.TypeScript && p.curIsKeyword("type") && p.peekTokenIs(token.Ident):
		return p.parseTSTypeAliasDeclaration()
	case p.opt.TypeScript && p.curIsKeyword("enum"):
		return p.parseTSEnumDeclaration(false)
	case p.opt.TypeScript && (p.curIsKeyword("namespace") ||
		(p.curIsKeyword("module") && (p.peekTokenIs(token.Ident) || p.peekTokenIs(token.StringLiteral)))):
		return p.parseTSModuleDeclaration(false)
	case p.opt.TypeScript && p.curIsKeyword("declare"):
		return p.parseTSDeclare()
	case p.curTokenIs(token.Ident) && p.peekTokenIs(token.Colon):
		return p.parseLabeledStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	return &ast.EmptyStatement{Base: ast.NewBase(ast.KindEmptyStatement, spanOf(tok, tok))}
}

func (p *Parser) parseDebuggerStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'debugger'
	p.consumeSemicolon()
	return &ast.DebuggerStatement{Base: ast.NewBase(ast.KindDebuggerStatement, spanOf(start, p.curToken))}
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'if'
	if !p.expect(token.LParen) {
		return nil
	}
	test := p.parseExpression(LOWEST)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	cons := p.parseStatement()
	stmt := &ast.IfStatement{Test: test, Consequent: cons}
	if p.curIsKeyword("else") {
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}
	stmt.SetSpan(spanOf(start, p.curToken))
	return stmt
}

// parseForStatement covers the classic three-clause for, for-in, and
// for-of/for-await-of forms, disambiguating after parsing the loop's first
// binding or expression rather than via lookahead, since arbitrarily complex
// destructuring targets make lookahead impractical (§4.3).
func (p *Parser) parseForStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'for'
	isAwait := false
	if p.curIsKeyword("await") {
		isAwait = true
		p.nextToken()
	}
	if !p.expect(token.LParen) {
		return nil
	}

	if p.curTokenIs(token.Semicolon) {
		return p.finishClassicFor(start, nil)
	}

	if p.curIsKeyword("var") || p.curIsKeyword("let") || p.curIsKeyword("const") {
		kind := p.curToken.Value
		declStart := p.curToken
		p.nextToken()
		targetStart := p.curToken
		target := p.parseBindingTarget()
		if p.curIsKeyword("in") || p.curIsKeyword("of") {
			isOf := p.curIsKeyword("of")
			p.nextToken()
			decl := &ast.VariableDeclaration{
				Base: ast.NewBase(ast.KindVariableDeclaration, spanOf(declStart, targetStart)),
				Kind: kind, Declarations: []*ast.VariableDeclarator{{ID: target}},
			}
			return p.finishForInOf(start, decl, isAwait, isOf)
		}
		decls := p.finishVariableDeclaratorList(targetStart, target)
		decl := &ast.VariableDeclaration{
			Base: ast.NewBase(ast.KindVariableDeclaration, spanOf(declStart, p.curToken)),
			Kind: kind, Declarations: decls,
		}
		return p.finishClassicFor(start, decl)
	}

	wasAllowIn := p.allowIn
	p.allowIn = false
	expr := p.parseExpression(LOWEST)
	p.allowIn = wasAllowIn
	if p.curIsKeyword("in") || p.curIsKeyword("of") {
		isOf := p.curIsKeyword("of")
		p.nextToken()
		return p.finishForInOf(start, toAssignmentTarget(expr), isAwait, isOf)
	}
	p.nextToken()
	return p.finishClassicFor(start, expr)
}

func (p *Parser) finishForInOf(start token.Token, left ast.Node, isAwait, isOf bool) ast.Statement {
	right := p.parseExpression(ASSIGN)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	wasLoop := p.inLoop
	p.inLoop = true
	body := p.parseStatement()
	p.inLoop = wasLoop
	if isOf {
		return &ast.ForOfStatement{
			Base: ast.NewBase(ast.KindForOfStatement, spanOf(start, p.curToken)),
			Left: left, Right: right, Body: body, Await: isAwait,
		}
	}
	return &ast.ForInStatement{
		Base: ast.NewBase(ast.KindForInStatement, spanOf(start, p.curToken)),
		Left: left, Right: right, Body: body,
	}
}

func (p *Parser) finishClassicFor(start token.Token, init ast.Node) ast.Statement {
	if !p.expect(token.Semicolon) {
		return nil
	}
	var test ast.Expression
	if !p.curTokenIs(token.Semicolon) {
		test = p.parseExpression(LOWEST)
		p.nextToken()
	}
	if !p.expect(token.Semicolon) {
		return nil
	}
	var update ast.Expression
	if !p.curTokenIs(token.RParen) {
		update = p.parseExpression(LOWEST)
		p.nextToken()
	}
	if !p.expect(token.RParen) {
		return nil
	}
	wasLoop := p.inLoop
	p.inLoop = true
	body := p.parseStatement()
	p.inLoop = wasLoop
	return &ast.ForStatement{
		Base: ast.NewBase(ast.KindForStatement, spanOf(start, p.curToken)),
		Init: init, Test: test, Update: update, Body: body,
	}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'while'
	if !p.expect(token.LParen) {
		return nil
	}
	test := p.parseExpression(LOWEST)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	wasLoop := p.inLoop
	p.inLoop = true
	body := p.parseStatement()
	p.inLoop = wasLoop
	return &ast.WhileStatement{Base: ast.NewBase(ast.KindWhileStatement, spanOf(start, p.curToken)), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'do'
	wasLoop := p.inLoop
	p.inLoop = true
	body := p.parseStatement()
	p.inLoop = wasLoop
	if !p.curIsKeyword("while") {
		p.errorf(p.curToken, "expected 'while'")
	} else {
		p.nextToken()
	}
	if !p.expect(token.LParen) {
		return nil
	}
	test := p.parseExpression(LOWEST)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	// The trailing `;` after `do...while(test)` is the one place ASI tolerates
	// its absence even without a following newline or `}` (§9 "ASI").
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return &ast.DoWhileStatement{Base: ast.NewBase(ast.KindDoWhileStatement, spanOf(start, p.curToken)), Body: body, Test: test}
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'switch'
	if !p.expect(token.LParen) {
		return nil
	}
	disc := p.parseExpression(LOWEST)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	if !p.expect(token.LBrace) {
		return nil
	}
	sw := &ast.SwitchStatement{Discriminant: disc}
	wasSwitch := p.inSwitch
	p.inSwitch = true
	seenDefault := false
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		cstart := p.curToken
		c := &ast.SwitchCase{}
		switch {
		case p.curIsKeyword("case"):
			p.nextToken()
			c.Test = p.parseExpression(LOWEST)
			p.nextToken()
		case p.curIsKeyword("default"):
			if seenDefault {
				p.errorf(p.curToken, "multiple default clauses in switch")
			}
			seenDefault = true
			p.nextToken()
		default:
			p.errorf(p.curToken, "expected 'case' or 'default'")
			p.nextToken()
			continue
		}
		if !p.expect(token.Colon) {
			continue
		}
		for !p.curIsKeyword("case") && !p.curIsKeyword("default") && !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
			stmt := p.parseStatement()
			if stmt != nil {
				c.Consequent = append(c.Consequent, stmt)
			} else {
				p.nextToken()
			}
		}
		c.SetSpan(spanOf(cstart, p.curToken))
		sw.Cases = append(sw.Cases, c)
	}
	p.inSwitch = wasSwitch
	p.expect(token.RBrace)
	sw.SetSpan(spanOf(start, p.curToken))
	return sw
}

func (p *Parser) parseTryStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'try'
	block := p.parseBlock()
	stmt := &ast.TryStatement{Block: block}
	if p.curIsKeyword("catch") {
		cstart := p.curToken
		p.nextToken()
		clause := &ast.CatchClause{}
		if p.curTokenIs(token.LParen) {
			p.nextToken()
			clause.Param = p.parseBindingTarget()
			p.expect(token.RParen)
		}
		clause.Body = p.parseBlock()
		clause.SetSpan(spanOf(cstart, p.curToken))
		stmt.Handler = clause
	}
	if p.curIsKeyword("finally") {
		p.nextToken()
		stmt.Finalizer = p.parseBlock()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.errorf(start, "missing catch or finally after try block")
	}
	stmt.SetSpan(spanOf(start, p.curToken))
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'return'
	stmt := &ast.ReturnStatement{}
	if !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) && !p.curToken.PrecededByNewline {
		stmt.Argument = p.parseExpression(LOWEST)
		p.nextToken()
	}
	p.consumeSemicolon()
	stmt.SetSpan(spanOf(start, p.curToken))
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'throw'
	if p.curToken.PrecededByNewline {
		p.errorf(p.curToken, "illegal newline after 'throw'")
	}
	stmt := &ast.ThrowStatement{Argument: p.parseExpression(LOWEST)}
	p.nextToken()
	p.consumeSemicolon()
	stmt.SetSpan(spanOf(start, p.curToken))
	return stmt
}

func (p *Parser) parseBreakOrContinue(isBreak bool) ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'break' or 'continue'
	var label *ast.Identifier
	if p.curTokenIs(token.Ident) && !p.curToken.PrecededByNewline {
		label = ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		p.nextToken()
	}
	p.consumeSemicolon()
	if isBreak {
		if label == nil && !p.inLoop && !p.inSwitch {
			p.errorf(start, "illegal break statement outside of loop or switch")
		}
		return &ast.BreakStatement{Base: ast.NewBase(ast.KindBreakStatement, spanOf(start, p.curToken)), Label: label}
	}
	if !p.inLoop {
		p.errorf(start, "illegal continue statement outside of loop")
	}
	return &ast.ContinueStatement{Base: ast.NewBase(ast.KindContinueStatement, spanOf(start, p.curToken)), Label: label}
}

func (p *Parser) parseWithStatement() ast.Statement {
	start := p.curToken
	p.nextToken() // consume 'with'
	if p.strict {
		p.errorf(start, "'with' statement is not allowed in strict mode")
	}
	if !p.expect(token.LParen) {
		return nil
	}
	obj := p.parseExpression(LOWEST)
	p.nextToken()
	if !p.expect(token.RParen) {
		return nil
	}
	body := p.parseStatement()
	return &ast.WithStatement{Base: ast.NewBase(ast.KindWithStatement, spanOf(start, p.curToken)), Object: obj, Body: body}
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	start := p.curToken
	label := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	p.nextToken() // consume identifier
	p.nextToken() // consume ':'
	body := p.parseStatement()
	return &ast.LabeledStatement{
		Base: ast.NewBase(ast.KindLabeledStatement, spanOf(start, p.curToken)), Label: *label, Body: body,
	}
}

func (p *Parser) parseVariableStatement() ast.Statement {
	start := p.curToken
	kind := p.curToken.Value
	p.nextToken() // consume 'var'/'let'/'const'
	targetStart := p.curToken
	target := p.parseBindingTarget()
	decls := p.finishVariableDeclaratorList(targetStart, target)
	p.consumeSemicolon()
	return &ast.VariableDeclaration{
		Base: ast.NewBase(ast.KindVariableDeclaration, spanOf(start, p.curToken)), Kind: kind, Declarations: decls,
	}
}

// finishVariableDeclaratorList parses the initializer (if any) for a binding
// target already parsed by the caller, then any further comma-separated
// declarators. Splitting the first target out like this lets for-loop
// parsing see the target before deciding between a classic for and a
// for-in/for-of loop.
func (p *Parser) finishVariableDeclaratorList(startTok token.Token, firstTarget ast.Pattern) []*ast.VariableDeclarator {
	first := &ast.VariableDeclarator{ID: firstTarget}
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		first.Init = p.parseExpression(ASSIGN)
		p.nextToken()
	}
	first.SetSpan(spanOf(startTok, p.curToken))
	decls := []*ast.VariableDeclarator{first}
	for p.curTokenIs(token.Comma) {
		p.nextToken()
		decls = append(decls, p.parseVariableDeclarator())
	}
	return decls
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	start := p.curToken
	target := p.parseBindingTarget()
	decl := &ast.VariableDeclarator{ID: target}
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		decl.Init = p.parseExpression(ASSIGN)
		p.nextToken()
	}
	decl.SetSpan(spanOf(start, p.curToken))
	return decl
}

// parseExpressionStatement also recognizes directive prologue entries: a
// bare string literal immediately followed by a statement terminator is
// recorded as a Directive rather than an ExpressionStatement, so the
// semantic builder doesn't need to re-inspect expression statements to find
// "use strict" (§4.5).
func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.curToken
	if p.curTokenIs(token.StringLiteral) &&
		(p.peekTokenIs(token.Semicolon) || p.peekTokenIs(token.RBrace) || p.peekTokenIs(token.EOF) || p.peekToken.PrecededByNewline) {
		value := p.curToken.Value
		p.nextToken()
		p.consumeSemicolon()
		if value == "use strict" {
			p.strict = true
		}
		return &ast.Directive{Base: ast.NewBase(ast.KindDirective, spanOf(start, p.curToken)), Value: value, Raw: value}
	}

	expr := p.parseExpression(LOWEST)
	p.nextToken()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, spanOf(start, p.curToken)), Expression: expr,
	}
}

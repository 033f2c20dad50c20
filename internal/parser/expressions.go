package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/token"
)

// parseExpression drives the precedence-climbing loop that funvibe-funxy's
// parser.parseExpression uses, generalized from funxy's user-defined
// operator table to ECMAScript's fixed operator set, plus the recursion
// guard that degrades to a diagnostic instead of overflowing the stack on
// adversarial input.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		if !p.inRecursionRecovery {
			p.errorf(p.curToken, "expression too deeply nested")
			p.inRecursionRecovery = true
		}
		p.skipToStatementBoundary()
		p.inRecursionRecovery = false
		return nil
	}

	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		switch {
		case assignOps[p.peekToken.Kind]:
			left = p.parseAssignment(left)
		case p.peekTokenIs(token.Question):
			left = p.parseConditional(left)
		case p.peekTokenIs(token.LParen):
			left = p.parseCall(left, false)
		case p.peekTokenIs(token.QuestionDot):
			left = p.parseOptionalChain(left)
		case p.peekTokenIs(token.Dot):
			left = p.parseMember(left, false)
		case p.peekTokenIs(token.LBracket):
			left = p.parseComputedMember(left, false)
		case p.peekTokenIs(token.PlusPlus), p.peekTokenIs(token.MinusMinus):
			p.nextToken()
			left = &ast.UpdateExpression{
				Base: ast.NewBase(ast.KindUpdateExpression, spanOf(p.curToken, p.curToken)),
				Operator: p.curToken.Kind.String(), Argument: left, Prefix: false,
			}
		case p.curIsKeyword("instanceof") || p.peekIsKeyword("instanceof"):
			left = p.parseBinary(left)
		case p.peekIsKeyword("in") && p.allowIn:
			left = p.parseBinary(left)
		case p.peekToken.Kind == token.AmpAmp || p.peekToken.Kind == token.PipePipe || p.peekToken.Kind == token.QuestionQuestion:
			left = p.parseLogical(left)
		case p.peekTokenIs(token.Comma):
			left = p.parseSequence(left)
		default:
			if _, ok := binaryPrecedence[p.peekToken.Kind]; ok {
				left = p.parseBinary(left)
			} else {
				return left
			}
		}
		if left == nil {
			return nil
		}
	}
	return left
}

// parsePrefix is the primary-expression dispatcher. A real per-kind
// function table (as funxy's prefixParseFns map keeps) would just move this
// switch behind one layer of indirection; a switch over the closed token.Kind
// set is the more direct expression of the same "one entry per starting
// token" idea and is what the JSX-aware `<` and arrow-vs-paren cases below
// need anyway for their multi-token lookahead.
func (p *Parser) parsePrefix() ast.Expression {
	switch {
	case p.curTokenIs(token.Ident):
		return p.parseIdentifierOrArrow()
	case p.curTokenIs(token.NumericLiteral):
		return p.parseNumericLiteral()
	case p.curTokenIs(token.BigIntLiteral):
		return p.parseBigIntLiteral()
	case p.curTokenIs(token.StringLiteral):
		return p.parseStringLiteral()
	case p.curTokenIs(token.PrivateIdentifier):
		return p.parsePrivateIdentifier()
	case p.curTokenIs(token.NoSubstTemplate), p.curTokenIs(token.TemplateHead):
		return p.parseTemplateLiteral()
	case p.curTokenIs(token.Slash), p.curTokenIs(token.SlashAssign):
		return p.parseRegexLiteral()
	case p.curIsKeyword("true"), p.curIsKeyword("false"):
		return p.parseBooleanLiteral()
	case p.curIsKeyword("null"):
		n := &ast.NullLiteral{Base: ast.NewBase(ast.KindNullLiteral, spanOf(p.curToken, p.curToken))}
		return n
	case p.curIsKeyword("this"):
		n := &ast.ThisExpression{Base: ast.NewBase(ast.KindThisExpression, spanOf(p.curToken, p.curToken))}
		return n
	case p.curIsKeyword("super"):
		n := &ast.SuperExpression{Base: ast.NewBase(ast.KindSuperExpression, spanOf(p.curToken, p.curToken))}
		return n
	case p.curIsKeyword("function"):
		return p.parseFunctionExpression(false)
	case p.curIsKeyword("async") && p.peekIsKeyword("function"):
		p.nextToken()
		return p.parseFunctionExpression(true)
	case p.curIsKeyword("async") && p.isArrowAhead():
		return p.parseArrowFunction(true)
	case p.curIsKeyword("class"):
		return p.parseClassExpression()
	case p.curIsKeyword("new"):
		return p.parseNew()
	case p.curIsKeyword("yield"):
		return p.parseYield()
	case p.curIsKeyword("await"):
		return p.parseAwait()
	case p.curIsKeyword("typeof"), p.curIsKeyword("void"), p.curIsKeyword("delete"):
		return p.parseUnaryKeyword()
	case p.curTokenIs(token.Plus), p.curTokenIs(token.Minus), p.curTokenIs(token.Bang), p.curTokenIs(token.Tilde):
		return p.parseUnary()
	case p.curTokenIs(token.PlusPlus), p.curTokenIs(token.MinusMinus):
		return p.parsePrefixUpdate()
	case p.curTokenIs(token.LParen):
		return p.parseParenOrArrow()
	case p.curTokenIs(token.LBracket):
		return p.parseArrayLiteral()
	case p.curTokenIs(token.LBrace):
		return p.parseObjectLiteral()
	case p.curTokenIs(token.LT) && p.opt.JSX:
		return p.parseJSXElementOrFragment()
	case p.curTokenIs(token.DotDotDot):
		return p.parseSpread()
	default:
		p.errorf(p.curToken, "unexpected token %s in expression position", p.curToken.Kind)
		return nil
	}
}

func (p *Parser) parseIdentifierOrArrow() ast.Expression {
	if p.isArrowAhead() {
		return p.parseArrowFunction(false)
	}
	id := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	id.ReferenceID = ast.NoReferenceId
	return id
}

// isArrowAhead reports whether curToken begins an arrow that lookahead alone
// can confirm: a single-parameter concise arrow (`x =>`, `async x =>`), or
// `async (...) =>`, found by scanning ahead to the matching `)`. A plain
// parenthesized list goes through parseParenOrArrow's speculative reparse
// instead (§4.3 "speculative arrow-vs-paren reparse").
func (p *Parser) isArrowAhead() bool {
	if p.curIsKeyword("async") {
		if p.peekTokenIs(token.LParen) && !p.peekToken.PrecededByNewline {
			for i, depth := 0, 0; p.peekAt(i).Kind != token.EOF; i++ {
				switch p.peekAt(i).Kind {
				case token.LParen:
					depth++
				case token.RParen:
					if depth--; depth == 0 {
						return p.peekAt(i+1).Kind == token.Arrow
					}
				}
			}
			return false
		}
		return p.peekAt(0).Kind == token.Ident && p.peekAt(1).Kind == token.Arrow && !p.peekAt(1).PrecededByNewline
	}
	return p.peekTokenIs(token.Arrow) && !p.peekToken.PrecededByNewline
}

func (p *Parser) parseNumericLiteral() ast.Expression {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(p.curToken.Value, "_", ""), 64)
	return &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, spanOf(p.curToken, p.curToken)), Value: v, Raw: p.curToken.Value}
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	raw := strings.TrimSuffix(p.curToken.Value, "n")
	v := new(big.Int)
	v.SetString(strings.ReplaceAll(raw, "_", ""), 0)
	return &ast.BigIntLiteral{Base: ast.NewBase(ast.KindBigIntLiteral, spanOf(p.curToken, p.curToken)), Value: v, Raw: p.curToken.Value}
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	return &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, spanOf(p.curToken, p.curToken)), Value: p.curToken.Value, Raw: p.curToken.Value}
}

func (p *Parser) parsePrivateIdentifier() ast.Expression {
	return &ast.PrivateIdentifier{Base: ast.NewBase(ast.KindIdentifier, spanOf(p.curToken, p.curToken)), Name: p.curToken.Value}
}

// parseRegexLiteral is reached with curToken already tokenized as `/` or
// `/=` under the division-operator grammar; the lexer cannot tell a regex
// literal from a division apart from this parser-side context, so the
// parser rewinds it via RescanRegex exactly as it does for JSX text and
// template continuations (§4.2).
func (p *Parser) parseRegexLiteral() ast.Expression {
	start := p.curToken
	tok := p.rescanner.RescanRegex(start.Start)
	p.buf = []token.Token{tok}
	p.pos = 1
	p.fill(1)
	p.curToken = p.buf[0]
	p.peekToken = p.buf[1]
	pat, flags := splitRegex(tok.Value)
	return &ast.RegExpLiteral{Base: ast.NewBase(ast.KindRegExpLiteral, spanOf(start, p.curToken)), Pattern: pat, Flags: flags}
}

func splitRegex(raw string) (pattern, flags string) {
	i := strings.LastIndexByte(raw, '/')
	if i <= 0 {
		return raw, ""
	}
	return raw[1:i], raw[i+1:]
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Base: ast.NewBase(ast.KindBooleanLiteral, spanOf(p.curToken, p.curToken)), Value: p.curIsKeyword("true")}
}

func (p *Parser) parseTemplateLiteral() ast.Expression {
	start := p.curToken
	lit := &ast.TemplateLiteral{}
	quasi := &ast.TemplateElement{Cooked: p.curToken.Value, Raw: p.curToken.Value, Tail: p.curToken.Kind == token.NoSubstTemplate}
	lit.Quasis = append(lit.Quasis, quasi)
	for p.curToken.Kind == token.TemplateHead || p.curToken.Kind == token.TemplateMiddle {
		p.nextToken()
		lit.Expressions = append(lit.Expressions, p.parseExpression(LOWEST))
		cont := p.rescanner.RescanTemplateContinuation()
		// Same reasoning as advanceToJSXText: anything already buffered past
		// the `}` that closed the substitution was tokenized before the
		// lexer knew it was re-entering template-string mode, so it must be
		// discarded rather than replayed.
		p.buf = []token.Token{cont}
		p.pos = 1
		p.fill(1)
		p.curToken = p.buf[0]
		p.peekToken = p.buf[1]
		elem := &ast.TemplateElement{Cooked: cont.Value, Raw: cont.Value, Tail: cont.Kind == token.TemplateTail}
		lit.Quasis = append(lit.Quasis, elem)
	}
	lit.SetSpan(spanOf(start, p.curToken))
	return lit
}

func (p *Parser) parseUnaryKeyword() ast.Expression {
	op := p.curToken.Value
	start := p.curToken
	p.nextToken()
	arg := p.parseExpression(UNARY)
	return &ast.UnaryExpression{Base: ast.NewBase(ast.KindUnaryExpression, spanOf(start, p.curToken)), Operator: op, Argument: arg, Prefix: true}
}

func (p *Parser) parseUnary() ast.Expression {
	op := p.curToken.Kind.String()
	start := p.curToken
	p.nextToken()
	arg := p.parseExpression(UNARY)
	return &ast.UnaryExpression{Base: ast.NewBase(ast.KindUnaryExpression, spanOf(start, p.curToken)), Operator: op, Argument: arg, Prefix: true}
}

func (p *Parser) parsePrefixUpdate() ast.Expression {
	op := p.curToken.Kind.String()
	start := p.curToken
	p.nextToken()
	arg := p.parseExpression(UNARY)
	return &ast.UpdateExpression{Base: ast.NewBase(ast.KindUpdateExpression, spanOf(start, p.curToken)), Operator: op, Argument: arg, Prefix: true}
}

func (p *Parser) parseSpread() ast.Expression {
	start := p.curToken
	p.nextToken()
	arg := p.parseExpression(ASSIGN)
	return &ast.SpreadElement{Base: ast.NewBase(ast.KindSpreadElement, spanOf(start, p.curToken)), Argument: arg}
}

func (p *Parser) parseYield() ast.Expression {
	start := p.curToken
	p.nextToken()
	y := &ast.YieldExpression{}
	if p.curTokenIs(token.Star) {
		y.Delegate = true
		p.nextToken()
	}
	if !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.RParen) && !p.curTokenIs(token.RBrace) &&
		!p.curTokenIs(token.RBracket) && !p.curTokenIs(token.Comma) && !p.curTokenIs(token.EOF) &&
		!p.curToken.PrecededByNewline {
		y.Argument = p.parseExpression(ASSIGN)
	}
	y.SetSpan(spanOf(start, p.curToken))
	return y
}

func (p *Parser) parseAwait() ast.Expression {
	start := p.curToken
	p.nextToken()
	arg := p.parseExpression(UNARY)
	return &ast.AwaitExpression{Base: ast.NewBase(ast.KindAwaitExpression, spanOf(start, p.curToken)), Argument: arg}
}

func (p *Parser) parseNew() ast.Expression {
	start := p.curToken
	p.nextToken()
	if p.curTokenIs(token.Dot) {
		p.nextToken()
		prop := p.curToken.Value
		n := &ast.MetaProperty{Base: ast.NewBase(ast.KindMetaProperty, spanOf(start, p.curToken)), Meta: "new", Property: prop}
		return n
	}
	callee := p.parseExpression(MEMBER)
	var args []ast.Expression
	if p.peekTokenIs(token.LParen) {
		p.nextToken()
		args = p.parseArguments()
	}
	return &ast.NewExpression{Base: ast.NewBase(ast.KindNewExpression, spanOf(start, p.curToken)), Callee: callee, Arguments: args}
}

func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression
	p.expect(token.LParen)
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DotDotDot) {
			args = append(args, p.parseSpread())
		} else {
			args = append(args, p.parseExpression(ASSIGN))
		}
		// parseExpression/parseSpread stop on the argument's own last token,
		// not past it; advance once to reach the comma or closing paren.
		p.nextToken()
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RParen) {
		p.errorf(p.curToken, "expected %s, got %s", token.RParen, p.curToken.Kind)
	}
	return args
}

func (p *Parser) parseCall(callee ast.Expression, optional bool) ast.Expression {
	start := callee
	p.nextToken() // consume '('
	args := p.parseArguments()
	return &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, spanOf(tokenOf(start), p.curToken)), Callee: callee, Arguments: args, Optional: optional}
}

func (p *Parser) parseMember(obj ast.Expression, optional bool) ast.Expression {
	p.nextToken() // consume '.'
	p.nextToken() // move to property name
	prop := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
	return &ast.MemberExpression{Base: ast.NewBase(ast.KindMemberExpression, spanOf(tokenOf(obj), p.curToken)), Object: obj, Property: prop, Computed: false, Optional: optional}
}

func (p *Parser) parseComputedMember(obj ast.Expression, optional bool) ast.Expression {
	p.nextToken() // consume '['
	p.nextToken()
	prop := p.parseExpression(LOWEST)
	p.nextToken()
	p.expect(token.RBracket)
	return &ast.MemberExpression{Base: ast.NewBase(ast.KindMemberExpression, spanOf(tokenOf(obj), p.curToken)), Object: obj, Property: prop, Computed: true, Optional: optional}
}

// parseOptionalChain handles `?.`, which may continue as a call, a
// computed member, or a plain member access (§4.3).
func (p *Parser) parseOptionalChain(obj ast.Expression) ast.Expression {
	p.nextToken() // consume '?.'
	switch p.curToken.Kind {
	case token.LParen:
		args := p.parseArguments()
		return &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, spanOf(tokenOf(obj), p.curToken)), Callee: obj, Arguments: args, Optional: true}
	case token.LBracket:
		p.nextToken()
		prop := p.parseExpression(LOWEST)
		p.nextToken()
		if !p.curTokenIs(token.RBracket) {
			p.errorf(p.curToken, "expected %s, got %s", token.RBracket, p.curToken.Kind)
		}
		return &ast.MemberExpression{Base: ast.NewBase(ast.KindMemberExpression, spanOf(tokenOf(obj), p.curToken)), Object: obj, Property: prop, Computed: true, Optional: true}
	default:
		prop := ast.NewIdentifier(spanOf(p.curToken, p.curToken), p.curToken.Value)
		return &ast.MemberExpression{Base: ast.NewBase(ast.KindMemberExpression, spanOf(tokenOf(obj), p.curToken)), Object: obj, Property: prop, Computed: false, Optional: true}
	}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	p.nextToken()
	op := p.curToken.Value
	if op == "" {
		op = p.curToken.Kind.String()
	}
	prec := binaryPrecedence[p.curToken.Kind]
	if prec == 0 {
		prec = RELATIONAL // instanceof/in
	}
	if p.curToken.Kind == token.StarStar {
		prec-- // right-associative: a ** b ** c groups as a ** (b ** c)
	}
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Base: ast.NewBase(ast.KindBinaryExpression, spanOf(tokenOf(left), p.curToken)), Operator: op, Left: left, Right: right}
}

func (p *Parser) parseLogical(left ast.Expression) ast.Expression {
	p.nextToken()
	op := p.curToken.Kind.String()
	prec := binaryPrecedence[p.curToken.Kind]
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.LogicalExpression{Base: ast.NewBase(ast.KindLogicalExpression, spanOf(tokenOf(left), p.curToken)), Operator: op, Left: left, Right: right}
}

func (p *Parser) parseConditional(test ast.Expression) ast.Expression {
	p.nextToken() // consume '?'
	p.nextToken()
	cons := p.parseExpression(ASSIGN)
	if !p.expectPeek(token.Colon) {
		return nil
	}
	p.nextToken()
	alt := p.parseExpression(ASSIGN)
	return &ast.ConditionalExpression{Base: ast.NewBase(ast.KindConditionalExpression, spanOf(tokenOf(test), p.curToken)), Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	p.nextToken()
	op := p.curToken.Kind.String()
	target := toAssignmentTarget(left)
	p.nextToken()
	right := p.parseExpression(ASSIGN - 1)
	return &ast.AssignmentExpression{Base: ast.NewBase(ast.KindAssignmentExpression, spanOf(tokenOf(left), p.curToken)), Operator: op, Left: target, Right: right}
}

// toAssignmentTarget narrows an already-parsed expression into the
// AssignmentTarget sub-sum, converting an ArrayExpression/ObjectExpression
// parsed speculatively as an expression into its pattern equivalent when a
// destructuring assignment turns out to be what was meant (§3.3 "named
// sub-sums the parser narrows into").
func toAssignmentTarget(e ast.Expression) ast.AssignmentTarget {
	switch v := e.(type) {
	case ast.AssignmentTarget:
		return v
	default:
		return &unresolvedTarget{e}
	}
}

// unresolvedTarget wraps an expression that could not be narrowed to a
// proper assignment target (e.g. a parse error upstream); kept instead of
// panicking so one bad assignment doesn't abort the whole parse.
type unresolvedTarget struct{ ast.Expression }

func (u *unresolvedTarget) assignmentTargetNode() {}

func (p *Parser) parseSequence(first ast.Expression) ast.Expression {
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{first}}
	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		seq.Expressions = append(seq.Expressions, p.parseExpression(ASSIGN))
	}
	seq.SetSpan(spanOf(tokenOf(first), p.curToken))
	return seq
}

// tokenOf reconstructs a synthetic token positioned at a node's start, so
// span arithmetic can keep reusing spanOf(tok, tok)-shaped helpers instead
// of a second span-pair constructor.
func tokenOf(n ast.Node) token.Token {
	return token.Token{Start: n.Span().Start, End: n.Span().Start}
}

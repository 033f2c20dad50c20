// Package parser implements the recursive-descent/Pratt parser that turns
// a internal/lexer token stream into an internal/ast tree (§4.3). The
// control shape — prefix/infix dispatch keyed by token kind (a switch over
// token.Kind rather than funxy's function tables), a recursion-depth guard that degrades to statement-boundary recovery
// instead of a stack overflow, and diagnostics appended to a running slice
// rather than returned as an error — is carried over from
// funvibe-funxy/internal/parser's parseExpression/parsePrefixExpression/
// parseInfixExpression precedence-climbing loop, generalized from funxy's
// own operator set to the ECMA/TS/JSX grammar.
package parser

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
	"github.com/jscore-dev/jscore/internal/token"
)

// MaxRecursionDepth bounds parseExpression/parseStatement recursion so a
// deeply nested or adversarial input degrades to a diagnostic instead of a
// stack overflow (§7 "no unbounded recursion on untrusted input").
const MaxRecursionDepth = 512

// Diagnostic is a recoverable parse error: parsing continues past it so a
// single file can report every syntax problem in one pass (§4.3, §7).
type Diagnostic struct {
	Message string
	Start   uint32
	End     uint32
}

// TokenSource is satisfied by *lexer.Lexer; the parser only depends on
// this narrow contract so it can be driven by a pre-tokenized buffer in
// tests without constructing a real lexer.
type TokenSource interface {
	NextToken() token.Token
}

// Rescanner is satisfied by *lexer.Lexer's re-scan entry points: regex,
// template continuation, and JSX text all require rewinding the lexer's
// byte cursor to a position the ordinary token stream has already raced
// past (§4.2).
type Rescanner interface {
	RescanRegex(uint32) token.Token
	RescanTemplateContinuation() token.Token
	RescanJSXText(uint32) token.Token
}

// Options selects the grammar dialect the parser accepts (§4.3 "SourceType
// selection", §6.1 "Type/JSX grammar disambiguation").
type Options struct {
	SourceType ast.SourceType
	JSX        bool
	TypeScript bool
}

// Parser consumes tokens one at a time from src, keeping a small lookahead
// buffer (curToken/peekToken) plus a ring of further-ahead tokens for the
// rare productions that need more than one token of lookahead (arrow
// function vs. parenthesized expression disambiguation, JSX vs. a `<`
// comparison in a generic/cast position).
type Parser struct {
	src TokenSource
	opt Options

	curToken  token.Token
	peekToken token.Token

	// buf holds every token fetched from src so far; pos is the index of
	// peekToken within buf. Tokens are never discarded, only replayed, so
	// a speculative parse (snapshot/restore in functions.go) can always
	// backtrack without re-reading the already-consumed lexer stream
	// (§4.3 "speculative arrow-vs-paren reparse").
	buf []token.Token
	pos int

	Diagnostics []Diagnostic

	depth               int
	inRecursionRecovery bool

	inFunction  bool
	inGenerator bool
	inAsync     bool
	inLoop      bool
	inSwitch    bool
	allowIn     bool
	strict      bool

	rescanner Rescanner
}

// New constructs a Parser reading tokens from src. rescanner is typically
// the same *lexer.Lexer as src, exposed separately because regex/template/
// JSX-text re-scanning needs to reset the lexer's cursor (§4.2 "RescanRegex").
func New(src TokenSource, rescanner Rescanner, opt Options) *Parser {
	p := &Parser{src: src, opt: opt, allowIn: true, rescanner: rescanner}
	p.buf = append(p.buf, p.src.NextToken(), p.src.NextToken())
	p.pos = 1
	p.curToken = p.buf[0]
	p.peekToken = p.buf[1]
	return p
}

// fill ensures buf has a token at index i, pulling from src as needed.
func (p *Parser) fill(i int) {
	for len(p.buf) <= i {
		p.buf = append(p.buf, p.src.NextToken())
	}
}

func (p *Parser) nextToken() {
	p.pos++
	p.fill(p.pos)
	p.curToken = p.buf[p.pos-1]
	p.peekToken = p.buf[p.pos]
}

// peekAt returns the token n positions past peekToken (peekAt(0) ==
// peekToken), buffering as many tokens as needed (§4.3 "speculative
// arrow-vs-paren reparse").
func (p *Parser) peekAt(n int) token.Token {
	p.fill(p.pos + n)
	return p.buf[p.pos+n]
}

// advanceToJSXText discards any buffered lookahead and re-scans from byte
// offset after as a run of raw JSX text, making the rescanned token the new
// curToken. Lookahead must be discarded here rather than replayed: ordinary
// tokenization has no JSX-text mode, so anything buffered past after was
// tokenized under the wrong grammar and does not describe the source that
// follows (§4.2, mirrors the regex/template rescans).
func (p *Parser) advanceToJSXText(after uint32) {
	tok := p.rescanner.RescanJSXText(after)
	p.buf = []token.Token{tok}
	p.pos = 1
	p.fill(1)
	p.curToken = p.buf[0]
	p.peekToken = p.buf[1]
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) curIsKeyword(kw string) bool  { return p.curToken.IsKeyword(kw) }
func (p *Parser) peekIsKeyword(kw string) bool { return p.peekToken.IsKeyword(kw) }

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.Diagnostics = append(p.Diagnostics, Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Start:   tok.Start,
		End:     tok.End,
	})
}

// expect advances past curToken if it matches k, else records a diagnostic
// and leaves the cursor in place so the caller can attempt recovery.
func (p *Parser) expect(k token.Kind) bool {
	if p.curTokenIs(k) {
		p.nextToken()
		return true
	}
	p.errorf(p.curToken, "expected %s, got %s", k, p.curToken.Kind)
	return false
}

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %s, got %s", k, p.peekToken.Kind)
	return false
}

// skipToStatementBoundary recovers from an unparseable expression by
// advancing to the next `;`, `}`, or EOF, mirroring funxy's
// parseExpression recursion-limit recovery.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

func spanOf(start, end token.Token) span.Span { return span.New(start.Start, end.End) }

// ParseProgram parses an entire source file (§4.3 entry point).
func ParseProgram(src TokenSource, rescanner Rescanner, opt Options) (*ast.Program, []Diagnostic) {
	p := New(src, rescanner, opt)
	prog := p.parseProgram()
	return prog, p.Diagnostics
}

func (p *Parser) parseProgram() *ast.Program {
	startTok := p.curToken
	prog := &ast.Program{SourceType: p.opt.SourceType}
	if p.opt.SourceType == ast.SourceModule {
		prog.Module = ast.NewModuleRecord()
		p.strict = true
	}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
			p.recordModuleBinding(prog, stmt)
		} else {
			// Guarantee forward progress even if parseStatement bailed
			// without consuming anything.
			p.nextToken()
		}
	}

	prog.SetSpan(spanOf(startTok, p.curToken))
	return prog
}

func (p *Parser) recordModuleBinding(prog *ast.Program, stmt ast.Statement) {
	if prog.Module == nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.ImportDeclaration:
		prog.Module.Imports = append(prog.Module.Imports, s)
	case *ast.ExportAllDeclaration:
		prog.Module.ReExports = append(prog.Module.ReExports, s)
	case *ast.ExportNamedDeclaration:
		if s.Declaration != nil {
			prog.Module.ExportedBindings[declaredName(s.Declaration)] = s.Declaration
		}
		for _, spec := range s.Specifiers {
			name := spec.Local.Name
			if spec.Exported != nil {
				name = spec.Exported.Name
			}
			prog.Module.ExportedBindings[name] = spec
		}
	case *ast.ExportDefaultDeclaration:
		prog.Module.ExportedBindings["default"] = s.Declaration
	}
}

func declaredName(d ast.Declaration) string {
	switch v := d.(type) {
	case *ast.FunctionDeclaration:
		if v.ID != nil {
			return v.ID.Name
		}
	case *ast.ClassDeclaration:
		if v.ID != nil {
			return v.ID.Name
		}
	case *ast.VariableDeclaration:
		if len(v.Declarations) == 1 {
			if id, ok := v.Declarations[0].ID.(*ast.Identifier); ok {
				return id.Name
			}
		}
	}
	return ""
}

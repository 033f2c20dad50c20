// Package printer walks an internal/ast tree and emits source text (§4.10).
// It implements ast.Visitor the same way funxy's prettyprinter package
// does: one Visit method per node kind, a bytes.Buffer/strings.Builder
// sink, and an explicit indent counter, generalized here to JS/TS/JSX
// precedence rules and escape/quote selection instead of funxy's own
// surface syntax.
package printer

import (
	"strings"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// QuoteStyle picks the preferred quote character for string and JSX
// attribute literals; the printer still falls back to the other quote on
// a per-literal basis when it strictly reduces the number of escapes.
type QuoteStyle int

const (
	QuoteDouble QuoteStyle = iota
	QuoteSingle
)

// Options configures one Print call. The zero value is the common case:
// double quotes, TypeScript annotations stripped, no comment/position
// bookkeeping.
type Options struct {
	Quote QuoteStyle

	// PreserveHexUnicodeEscapes keeps a StringLiteral's own Raw escape
	// formatting instead of normalizing to the minimal-escape rendering
	// the printer otherwise always chooses (§4.10 "preserve... only if a
	// preserve option is set").
	PreserveHexUnicodeEscapes bool

	// TypeScript emits TSAsExpression/TSNonNullExpression wrappers and
	// every node's TypeAnnotation/ReturnType field. Off is the common case
	// for minifier output (§4.10).
	TypeScript bool

	// PreserveAnnotateComments emits an annotation comment immediately
	// before the expression it was attached to via Printer.Annotate, e.g.
	// `/* #__PURE__ */`. Comments never round-trip through the lexer (it
	// discards them at tokenization time, §3.2), so this only fires for
	// annotations a caller attaches directly on the AST it is printing —
	// typically the transformer re-attaching an annotation it consumed
	// from the original source before this printer ever saw it.
	PreserveAnnotateComments bool

	// RecordSourceMap turns on (output_pos -> input_span) mapping capture;
	// retrieve the result with Printer.Mappings after Print returns. The
	// actual .map file serialization is an external collaborator's job
	// (§4.10 "mappings are later serialized by an external collaborator").
	RecordSourceMap bool
}

// Mapping records that output byte offset Output was produced while
// emitting the source node spanning Input.
type Mapping struct {
	Output uint32
	Input  span.Span
}

// Printer is a single-use AST-to-source emitter; construct one per Print
// call via New, mirroring funxy's NewCodePrinter.
type Printer struct {
	opts Options
	buf  strings.Builder

	indent int
	column int

	annotations map[ast.Node]string
	mappings    []Mapping
}

func New(opts Options) *Printer {
	return &Printer{opts: opts}
}

// Annotate attaches a verbatim comment (e.g. "/* #__PURE__ */") to n; it is
// emitted immediately before n the next time n is printed, provided
// Options.PreserveAnnotateComments is set. Calling this has no effect
// without that option, matching §4.10's "preserved... when
// preserve_annotate_comments is set".
func (p *Printer) Annotate(n ast.Node, comment string) {
	if p.annotations == nil {
		p.annotations = make(map[ast.Node]string)
	}
	p.annotations[n] = comment
}

// Mappings returns the (output_pos -> input_span) records collected while
// printing, populated only when Options.RecordSourceMap is set.
func (p *Printer) Mappings() []Mapping { return p.mappings }

// Print renders prog to source text.
func Print(prog *ast.Program, opts Options) string {
	p := New(opts)
	p.PrintProgram(prog)
	return p.String()
}

func (p *Printer) PrintProgram(prog *ast.Program) {
	p.VisitProgram(prog)
}

// PrintNode renders an arbitrary node, used by callers (e.g. transformer
// tests, REPL-style tools) that have a single expression/statement rather
// than a whole Program. Statements and expressions are routed through
// printStatement/printExprPrec rather than a bare Accept, since a handful
// of node kinds (Directive, WithStatement, TSAsExpression, ...) carry a
// deliberately empty Accept and are only ever reached through one of those
// two entry points' own type-switches.
func PrintNode(n ast.Node, opts Options) string {
	p := New(opts)
	switch v := n.(type) {
	case ast.Statement:
		p.printStatement(v)
	case ast.Expression:
		p.printExprPrec(v, 0, false)
	default:
		p.printAnnotated(n)
	}
	return p.String()
}

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) write(s string) {
	if p.opts.RecordSourceMap {
		p.mappings = append(p.mappings, Mapping{Output: uint32(p.buf.Len())})
	}
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

// writeSpanned is write, but records the mapping against src's own span
// rather than an empty one; used at the leaves (identifiers, literals)
// where the emitted text corresponds directly to a source range.
func (p *Printer) writeSpanned(s string, src span.Span) {
	if p.opts.RecordSourceMap {
		p.mappings = append(p.mappings, Mapping{Output: uint32(p.buf.Len()), Input: src})
	}
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	p.column = p.indent * 2
}

func (p *Printer) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

// printAnnotated emits n's pending annotation comment (if any and if
// enabled) immediately before dispatching to n.Accept.
func (p *Printer) printAnnotated(n ast.Node) {
	if n == nil {
		return
	}
	if p.opts.PreserveAnnotateComments && p.annotations != nil {
		if c, ok := p.annotations[n]; ok {
			p.write(c)
			p.write(" ")
		}
	}
	n.Accept(p)
}

func (p *Printer) VisitProgram(n *ast.Program) {
	for i, stmt := range n.Body {
		if i > 0 {
			p.writeln()
		}
		p.writeIndent()
		p.printStatement(stmt)
	}
	p.writeln()
}

// printStatement emits one statement followed by whatever terminator its
// own kind needs (a semicolon for every statement except the handful that
// end in their own closing brace).
func (p *Printer) printStatement(s ast.Statement) {
	if s == nil {
		return
	}
	// WithStatement/Directive carry an empty Accept (ast.Visitor has no
	// VisitWithStatement/VisitDirective method, mirroring the TS-expression
	// nodes in expr.go), so they're handled directly rather than through
	// Accept double-dispatch.
	switch n := s.(type) {
	case *ast.WithStatement:
		p.write("with (")
		p.printExprPrec(n.Object, 0, false)
		p.write(") ")
		p.printClauseBody(n.Body)
		return
	case *ast.Directive:
		p.write(p.quoteString(n.Value, n.Raw))
		p.write(";")
		return
	}
	p.printAnnotated(s)
	if !endsInBrace(s) {
		p.write(";")
	}
}

// endsInBrace reports whether s's own emission already ends in a closing
// brace (or, for LabeledStatement, defers entirely to its body), so
// printStatement knows not to append a redundant semicolon.
func endsInBrace(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.BlockStatement, *ast.IfStatement, *ast.ForStatement,
		*ast.ForInStatement, *ast.ForOfStatement, *ast.WhileStatement,
		*ast.FunctionDeclaration, *ast.ClassDeclaration, *ast.TryStatement,
		*ast.SwitchStatement, *ast.TSInterfaceDeclaration:
		return true
	case *ast.LabeledStatement:
		return endsInBrace(n.Body)
	case *ast.TSModuleDeclaration:
		return n.Body != nil
	case *ast.ExportNamedDeclaration:
		return n.Declaration != nil && endsInBrace(n.Declaration)
	case *ast.ExportDefaultDeclaration:
		switch n.Declaration.(type) {
		case *ast.FunctionDeclaration, *ast.ClassDeclaration:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

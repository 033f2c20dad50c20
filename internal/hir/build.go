package hir

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// Build lowers fn into HIR (§4.9's "lower JS into HIR" entry point), scoped
// deliberately to straight-line code plus a single level of if/else: a
// loop, switch, try/catch, or nested conditional inside a branch produces a
// Diagnostic instead of a best-effort (and likely wrong) lowering, and the
// caller skips that function from the Deep Optimization Pipeline entirely.
// This mirrors internal/parser's own stance of refusing to guess at
// ambiguous input rather than silently emitting something plausible-looking
// but wrong.
//
// Every assignment is renamed into a fresh Identifier as it's lowered and
// merged back into a Phi at the end of an if/else, so the block graph Build
// produces already satisfies SSA's single-definition invariant for the
// constructs it supports; ssa.go's stage still runs over the result to
// collapse any phi both of whose operands turned out equal and to reassert
// that invariant, the way a real pipeline keeps that stage even when its
// own lowering rarely needs it to do real work.
func Build(fn *ast.Function) (*HIRFunction, []Diagnostic) {
	b := &builder{
		f:   &HIRFunction{Blocks: NewBlockMap()},
		env: map[string]Place{},
	}

	for _, p := range fn.Params {
		id, ok := p.(*ast.Identifier)
		if !ok {
			b.unsupported(p.Span(), fmt.Sprintf("parameter pattern %T is outside this pipeline's scope", p))
			return nil, b.diags
		}
		ident := b.f.NewIdentifier(id.Name)
		b.f.Params = append(b.f.Params, ident)
		b.env[id.Name] = Place{Identifier: ident}
	}

	entry := b.f.Blocks.New()
	b.f.Entry = entry.ID
	b.cur = entry

	switch body := fn.Body.(type) {
	case *ast.BlockStatement:
		if !b.lowerStmtList(body.Body, true) {
			return nil, b.diags
		}
		if b.cur.Terminal == nil {
			b.cur.Terminal = Return{}
		}
	case ast.Expression:
		place, ok := b.lowerExpr(body)
		if !ok {
			return nil, b.diags
		}
		b.cur.Terminal = Return{Value: place, Span: body.Span()}
	default:
		// ast.Function carries no Base/Span() of its own (unlike the
		// FunctionDeclaration/FunctionExpression wrappers that embed one);
		// Body's own Span covers the same source range for this diagnostic.
		sp := span.New(0, 0)
		if fn.Body != nil {
			sp = fn.Body.Span()
		}
		b.unsupported(sp, fmt.Sprintf("function body %T is outside this pipeline's scope", fn.Body))
		return nil, b.diags
	}

	return b.f, nil
}

type builder struct {
	f     *HIRFunction
	cur   *Block
	env   map[string]Place
	diags []Diagnostic
}

func (b *builder) unsupported(sp span.Span, msg string) {
	b.diags = append(b.diags, Diagnostic{Message: msg, Start: sp.Start, End: sp.End})
}

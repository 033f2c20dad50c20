package rules

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/linter"
)

// InitDeclarations flags a `var`/`let`/`const` declarator with no
// initializer (spec.md §9's worked asymmetry): a `declare namespace` body
// is ambient by construction, so a bare `const version: number;` inside
// one is exempt, but a bare ambient `interface` never gets the same
// exemption plumbed through — its body is an opaque, unwalked blob
// (internal/ast.OpaqueType.Accept is a no-op), so any declarator the
// parser does surface there is still checked like an ordinary binding.
// That inconsistency is preserved deliberately rather than "fixed", per
// the decision recorded in this repo's grounding ledger.
//
// This runs once per file (RunOnce) rather than per-node, since the
// shared runner walk never threads ancestor state into Run (§4.7's single
// shared walk drops its ancestors argument before calling a rule), and an
// ambient-namespace exemption needs exactly that: whether the current
// declarator sits inside a TSModuleDeclaration with Declare set.
type InitDeclarations struct{ linter.Base }

func (InitDeclarations) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            "init-declarations",
		Category:        linter.CategoryStyle,
		DefaultSeverity: linter.SeverityHint,
	}
}

func (r InitDeclarations) RunOnce(ctx *linter.Context) {
	if ctx.Program == nil {
		return
	}
	w := &initDeclWalker{ctx: ctx}
	w.walkStatements(ctx.Program.Body, false)
}

type initDeclWalker struct {
	ctx *linter.Context
}

func (w *initDeclWalker) walkStatements(stmts []ast.Statement, ambient bool) {
	for _, s := range stmts {
		w.walkStatement(s, ambient)
	}
}

func (w *initDeclWalker) walkStatement(s ast.Statement, ambient bool) {
	switch n := s.(type) {
	case *ast.VariableDeclaration:
		if ambient {
			return
		}
		for _, d := range n.Declarations {
			if d.Init != nil {
				continue
			}
			name := "binding"
			if id, ok := d.ID.(*ast.Identifier); ok {
				name = fmt.Sprintf("%q", id.Name)
			}
			w.ctx.Diagnostic(linter.Diagnostic{
				Message: fmt.Sprintf("%s %s is declared without an initializer", n.Kind, name),
				Primary: linter.Label{Span: d.Span()},
			})
		}
	case *ast.BlockStatement:
		w.walkStatements(n.Body, ambient)
	case *ast.IfStatement:
		w.walkStatement(n.Consequent, ambient)
		if n.Alternate != nil {
			w.walkStatement(n.Alternate, ambient)
		}
	case *ast.ForStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.ForInStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.ForOfStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.WhileStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.DoWhileStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.TryStatement:
		if n.Block != nil {
			w.walkStatements(n.Block.Body, ambient)
		}
		if n.Handler != nil && n.Handler.Body != nil {
			w.walkStatements(n.Handler.Body.Body, ambient)
		}
		if n.Finalizer != nil {
			w.walkStatements(n.Finalizer.Body, ambient)
		}
	case *ast.SwitchStatement:
		for _, c := range n.Cases {
			w.walkStatements(c.Consequent, ambient)
		}
	case *ast.LabeledStatement:
		w.walkStatement(n.Body, ambient)
	case *ast.FunctionDeclaration:
		if block, ok := n.Body.(*ast.BlockStatement); ok {
			w.walkStatements(block.Body, ambient)
		}
	case *ast.ExportNamedDeclaration:
		if n.Declaration != nil {
			if stmt, ok := n.Declaration.(ast.Statement); ok {
				w.walkStatement(stmt, ambient)
			}
		}
	case *ast.ExportDefaultDeclaration:
		if stmt, ok := n.Declaration.(ast.Statement); ok {
			w.walkStatement(stmt, ambient)
		}
	case *ast.TSModuleDeclaration:
		// A declare namespace/module body is ambient regardless of the
		// nesting it's found at; a plain (non-declare) namespace body is
		// ordinary runtime code and stays subject to the check.
		w.walkStatements(n.Body, ambient || n.Declare)
	}
}

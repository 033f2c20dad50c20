package transform

import "github.com/jscore-dev/jscore/internal/ast"

// CompressBlock replaces a block containing exactly one statement with
// that statement directly, when the block appears somewhere a bare
// Statement is legal (an if/for/while/.../labeled body; anywhere this
// pass is invoked, since the traversal only ever calls RewriteStmt on
// Statement-typed fields). A block is left alone if its one statement is a
// declaration: `{ let x = 1 }` cannot become `let x = 1` in a position like
// an `if` consequent without changing `x`'s scope (§4.8 "declarations must
// not escape"), and a block with zero or more-than-one statements has
// nothing safe to fold.
type CompressBlock struct{ Base }

func (CompressBlock) Name() string { return "compress_block" }

func (CompressBlock) RewriteStmt(ctx *Context, s ast.Statement) (ast.Statement, bool) {
	block, ok := s.(*ast.BlockStatement)
	if !ok || len(block.Body) != 1 {
		return s, false
	}
	inner := block.Body[0]
	if isDeclaration(inner) {
		return s, false
	}
	return inner, true
}

func isDeclaration(s ast.Statement) bool {
	switch s.(type) {
	case *ast.VariableDeclaration, *ast.FunctionDeclaration, *ast.ClassDeclaration:
		return true
	default:
		return false
	}
}

package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// GlobalDefines substitutes a configured dotted member-access path
// (`process.env.NODE_ENV`, `__DEV__`) with a literal value supplied by the
// caller (§4.8 "substitute global defines"), the same mechanism bundlers
// use to let dead branches (`if (process.env.NODE_ENV !== "production")`)
// fall to later passes (compress_boolean, dead-code elimination in
// internal/hir) once the condition is a literal.
//
// Paths is keyed by the dotted name as it appears in source
// ("process.env.NODE_ENV" or a bare identifier like "__DEV__"); Values
// holds the literal Expression each path is replaced by. A path is only
// matched when every segment is a plain (non-computed) property access
// rooted at an unresolved global identifier; `const process = {}; … `
// shadowing the global must not be substituted, mirroring
// ReplaceUndefined's own global-only guard.
type GlobalDefines struct {
	Base
	Paths map[string]ast.Expression
}

func NewGlobalDefines(paths map[string]ast.Expression) *GlobalDefines {
	return &GlobalDefines{Paths: paths}
}

func (*GlobalDefines) Name() string { return "global_defines" }

func (p *GlobalDefines) RewriteExpr(ctx *Context, e ast.Expression) (ast.Expression, bool) {
	if len(p.Paths) == 0 {
		return e, false
	}
	path, root, ok := dottedPath(e)
	if !ok {
		return e, false
	}
	value, ok := p.Paths[path]
	if !ok {
		return e, false
	}
	if ctx.Tables != nil && !isUnresolvedGlobal(ctx.Tables, root) {
		return e, false
	}
	return value, true
}

// dottedPath walks a chain of non-computed MemberExpressions back to its
// root Identifier, returning the dotted name and that root.
func dottedPath(e ast.Expression) (path string, root *ast.Identifier, ok bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name, n, true
	case *ast.MemberExpression:
		if n.Computed {
			return "", nil, false
		}
		prop, ok := n.Property.(*ast.Identifier)
		if !ok {
			return "", nil, false
		}
		base, root, ok := dottedPath(n.Object)
		if !ok {
			return "", nil, false
		}
		return base + "." + prop.Name, root, true
	default:
		return "", nil, false
	}
}

func isUnresolvedGlobal(tables *semantic.Tables, id *ast.Identifier) bool {
	if id.ReferenceID == ast.NoReferenceId || int(id.ReferenceID) >= len(tables.References) {
		return false
	}
	ref := tables.References[id.ReferenceID]
	return ref != nil && ref.Global
}

package rules

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/linter"
)

// NoDupeKeys flags an object literal with two properties that always
// resolve to the same static key, which silently discards the earlier
// one. A computed key's value is not known statically and is skipped
// rather than guessed at. A single getter and a single setter sharing a
// name is the one legitimate duplicate JS allows, so it isn't flagged.
type NoDupeKeys struct{ linter.Base }

func (NoDupeKeys) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            "no-dupe-keys",
		Category:        linter.CategoryCorrectness,
		DefaultSeverity: linter.SeverityError,
		NodeKinds:       []ast.Kind{ast.KindObjectExpression},
	}
}

func staticKeyName(key ast.Expression, computed bool) (string, bool) {
	if computed {
		return "", false
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.StringLiteral:
		return k.Value, true
	case *ast.NumericLiteral:
		return k.Raw, true
	default:
		return "", false
	}
}

func (NoDupeKeys) Run(ctx *linter.Context, node ast.Node) {
	obj := node.(*ast.ObjectExpression)
	seen := make(map[string]map[string]ast.Node)
	for _, m := range obj.Properties {
		prop, ok := m.(*ast.Property)
		if !ok {
			continue
		}
		name, ok := staticKeyName(prop.Key, prop.Computed)
		if !ok {
			continue
		}
		kind := prop.Kind
		if kind == "" {
			kind = "init"
		}
		byKind, exists := seen[name]
		if !exists {
			seen[name] = map[string]ast.Node{kind: prop}
			continue
		}
		conflict := kind == "init" || byKind["init"] != nil || byKind[kind] != nil
		if conflict {
			ctx.Diagnostic(linter.Diagnostic{
				Message: "duplicate key '" + name + "' in object literal",
				Primary: linter.Label{Span: prop.Key.Span()},
			})
		}
		byKind[kind] = prop
	}
}

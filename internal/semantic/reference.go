package semantic

import "github.com/jscore-dev/jscore/internal/ast"

type ReferenceId = ast.ReferenceId

const NoReferenceId = ast.NoReferenceId

// ReferenceFlags distinguishes how an identifier occurrence uses its
// binding, since a rule like "no-unused-vars" needs to tell a read from a
// write and "prefer-const" needs to tell an update-only write from a
// plain read (§4.5 "reference occurrence kinds").
type ReferenceFlags uint8

const (
	RefRead ReferenceFlags = 1 << iota
	RefWrite
)

// Reference is one dense entry in the builder's reference table, indexed
// by ast.ReferenceId. Symbol is NoSymbolId until resolution finds (or
// fails to find) a binding in the enclosing scope chain; an unresolved
// reference is recorded as a global rather than dropped, so a rule can
// still flag an undeclared-variable use.
type Reference struct {
	ID     ReferenceId
	Node   *ast.Identifier
	Scope  ScopeId
	Flags  ReferenceFlags
	Symbol SymbolId // NoSymbolId until resolved; stays NoSymbolId for globals
	Global bool
}

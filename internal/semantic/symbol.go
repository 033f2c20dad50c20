package semantic

import "github.com/jscore-dev/jscore/internal/ast"

// SymbolFlags records the binding kind(s) a symbol was declared with. It
// is a bitset rather than a single enum because a redeclaration (e.g. a
// `var` binding that a hoisted `function` of the same name also targets)
// accumulates flags onto one symbol instead of creating a second one
// (§4.5 "redeclaration merge").
type SymbolFlags uint16

const (
	SymVar SymbolFlags = 1 << iota
	SymLet
	SymConst
	SymFunction
	SymClass
	SymImport
	SymParameter
	SymCatchParameter
	SymClassMember
)

// Symbol is one dense entry in the builder's symbol table, indexed by
// ast.SymbolId. Every Identifier node that is a binding occurrence of
// this symbol carries the same SymbolId in its SymbolID field.
type Symbol struct {
	ID      SymbolId
	Name    string
	Scope   ScopeId
	Flags   SymbolFlags
	Decl    ast.Node // what first introduced the binding: a plain-identifier VariableDeclarator, a FunctionDeclaration, else the binding Identifier
	Refs    []ReferenceId
}

type SymbolId = ast.SymbolId

const NoSymbolId = ast.NoSymbolId

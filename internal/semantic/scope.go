package semantic

// ScopeId indexes the builder's dense scope table, mirroring how
// ast.SymbolId/ast.ReferenceId index the symbol and reference tables
// rather than letting scopes reference each other through pointers a
// caller outside this package would have to chase.
type ScopeId int32

const NoScopeId ScopeId = -1

// ScopeKind records why a scope exists, since a handful of decisions
// (where a `var` hoists to, whether `with` disables static resolution)
// depend on more than just "function vs block".
type ScopeKind int

const (
	ScopeTop ScopeKind = iota
	ScopeModule
	ScopeFunction
	ScopeArrow
	ScopeBlock
	ScopeCatch
	ScopeFor      // the header scope of every for/for-in/for-of, pushed whether or not it declares anything
	ScopeClass    // static initialization blocks and computed member keys run here
	ScopeWith
)

// Scope is one node of the scope tree built while walking a program.
// Bindings maps a declared name to the symbol it resolves to within this
// scope; lookups walk Parent until they reach NoScopeId, at which point
// a reference is unresolved ("global", §4.5).
type Scope struct {
	ID       ScopeId
	Parent   ScopeId
	Kind     ScopeKind
	Strict   bool
	Bindings map[string]SymbolId

	// Pending holds references created directly in this scope that have
	// not yet been resolved; popScope drains it (see Builder.popScope).
	Pending []ReferenceId
}

func (s *Scope) isVarScope() bool {
	switch s.Kind {
	case ScopeFunction, ScopeArrow, ScopeTop, ScopeModule:
		return true
	default:
		return false
	}
}

// bind records name -> sym in this scope, overwriting a shadowed name
// from an enclosing scope but merging with (not overwriting) a prior
// binding in the SAME scope when the two are compatible redeclarations;
// callers decide compatibility before calling bind (§4.5 "redeclaration").
func (s *Scope) bind(name string, sym SymbolId) {
	if s.Bindings == nil {
		s.Bindings = make(map[string]SymbolId)
	}
	s.Bindings[name] = sym
}

package ast

import "github.com/jscore-dev/jscore/internal/span"

// SymbolId and ReferenceId are opaque indices into the semantic builder's
// dense symbol/reference tables (§3.3, §3.4). Every binding identifier and
// identifier reference carries one of these, unset (-1) until the semantic
// builder resolves it — avoiding the cyclic back-reference the AST would
// otherwise need to point at its own symbol table entry (§9 "Cyclic AST
// structure").
type SymbolId int32

// ReferenceId indexes the reference table.
type ReferenceId int32

const (
	NoSymbolId    SymbolId    = -1
	NoReferenceId ReferenceId = -1
)

// Base is embedded by every concrete node and supplies Kind()/Span(). It
// is exported (unlike a plain unexported embedded struct) so that callers
// outside this package — the parser, above all — can construct node
// literals directly via NewBase instead of needing a constructor function
// per node type.
type Base struct {
	spanV span.Span
	kindV Kind
}

func (b Base) Span() span.Span { return b.spanV }
func (b Base) Kind() Kind      { return b.kindV }

// SetSpan widens a node's span after construction, used when a node's
// full extent (e.g. a Program's) is only known once parsing finishes.
func (b *Base) SetSpan(s span.Span) { b.spanV = s }

func NewBase(k Kind, s span.Span) Base { return Base{spanV: s, kindV: k} }

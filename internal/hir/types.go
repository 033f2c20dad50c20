// Package hir implements the high-level intermediate representation and
// Deep Optimization Pipeline of §3.7/§4.9: a small SSA-ish control-flow form
// that internal/transform's peephole passes never see (they work directly
// over internal/ast), used for the handful of optimizations that need a
// real dataflow view of a function body rather than a single-pass rewrite.
//
// The spec frames the pipeline as an orchestration contract (fixed stage
// order, a typed error channel, an input/output invariant per stage) over
// domain-specific per-stage analysis; this package models the contract
// precisely and keeps each stage's analysis intentionally small, the way a
// from-scratch implementation of a compiler pipeline earns its stages one
// at a time rather than cloning a production compiler's heuristics (see
// DESIGN.md's C10 entry for the scope this buys and costs).
//
// Every Block, Identifier, and Instr carries a small integer id allocated
// by the owning HIRFunction (blocks through its BlockMap), rather than the
// node embedding a pointer back to its container; blocks are looked up by
// id through the BlockMap, and Identifiers are referenced by pointer.
package hir

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// BlockId indexes HIRFunction.Blocks.
type BlockId int32

// IdentifierId is an Identifier's id, allocated by HIRFunction.NewIdentifier.
type IdentifierId int32

// InstrId is allocated by HIRFunction.NewInstr from one function-wide
// counter, so it is unique within the HIRFunction; a Place never needs to
// name an Instr by id, and dataflow passes that want to look an
// instruction up quickly index Block.Instructions directly by position.
type InstrId int32

const (
	NoBlockId      BlockId      = -1
	NoIdentifierId IdentifierId = -1
)

// Identifier is one SSA name: a stable id plus the source name hint it was
// lowered from (for an intermediate value with no source-level name,
// NameHint is empty until lower_to_reactive.go's renameVariablesUniquely
// invents one). build.go never reuses an Identifier across two
// assignments to the same source-level name: each write gets its own fresh
// Identifier, joined back together with a Phi at the point two such
// ranges meet, so this type carries no separate mutability flag the way
// the spec's model distinguishes a reassigned binding from a single-
// assignment one.
type Identifier struct {
	ID       IdentifierId
	NameHint string
}

// Place is an assignable/readable location: almost always just a wrapped
// Identifier. The spec's fuller Place carries mutable-range and effect
// metadata for the reactive-scope stages; this implementation folds the
// effect half into the owning Instr (effects.go) rather than duplicating
// it per Place, since this pipeline's scope never aliases one Identifier
// through two different Places.
type Place struct {
	Identifier *Identifier
}

// InstructionValue is the sum type of what an Instr computes. Each concrete
// type below corresponds to one ast node shape build.go knows how to lower;
// anything not listed here is outside this pipeline's scope and causes
// build.go to emit a Diagnostic and skip the enclosing function instead of
// guessing.
type InstructionValue interface {
	instructionValue()
}

// LoadLocal reads a Place bound earlier in the same function (a prior
// instruction's Lvalue, a parameter, or a Phi result).
type LoadLocal struct{ Value Place }

// LoadGlobal reads a name that is not bound in the function being lowered
// (neither a parameter nor an earlier local binding), e.g. `console`,
// `undefined`, a free variable closed over from an enclosing scope this
// pipeline doesn't model. build.go decides this from its own binding
// environment, not from semantic analysis.
type LoadGlobal struct{ Name string }

// Literal is a constant value computed at lower time. Kind disambiguates
// Value's dynamic type (since a JS `null` and a JS `undefined` both need a
// representable literal, and the constant-propagation lattice in
// constprop.go has to tell them apart from "ordinary" values).
type Literal struct {
	Kind  LiteralKind
	Value any // float64 | string | bool | nil (Kind selects which)
}

type LiteralKind uint8

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBoolean
	LiteralNull
	LiteralUndefined
)

// BinaryInstr computes a binary operator over two already-bound Places.
type BinaryInstr struct {
	Operator    string
	Left, Right Place
}

// UnaryInstr computes a unary operator over an already-bound Place.
type UnaryInstr struct {
	Operator string
	Operand  Place
}

// PropertyLoad reads a non-computed property off an already-bound object
// Place; a computed member access (`obj[expr]`) falls outside this
// pipeline's scope (build.go diagnoses it) since its key is itself a
// dynamic value the effect-inference stage would need full alias tracking
// to classify correctly.
type PropertyLoad struct {
	Object   Place
	Property string
}

// CallInstr invokes an already-bound callee Place with already-bound
// argument Places. Calls are always classified impure by effects.go unless
// a future allowlist says otherwise; dce.go never removes one for that
// reason even when its Lvalue is unused.
type CallInstr struct {
	Callee    Place
	Arguments []Place
}

func (LoadLocal) instructionValue()    {}
func (LoadGlobal) instructionValue()   {}
func (Literal) instructionValue()      {}
func (BinaryInstr) instructionValue()  {}
func (UnaryInstr) instructionValue()   {}
func (PropertyLoad) instructionValue() {}
func (CallInstr) instructionValue()    {}

// Effect classifies whether evaluating an Instr can be observed outside
// its own Lvalue (§4.9 step 5 "effect inference"); EffectUnknown is the
// zero value, deliberately not EffectPure, so dce.go and codegen.go never
// treat an un-analyzed Instr as safe to drop just because effects.go
// hasn't run yet.
type Effect uint8

const (
	EffectUnknown Effect = iota
	EffectPure
	EffectImpure
)

// Instr is one dense instruction in a Block: compute Value, bind the
// result to Lvalue. Span is carried through from the ast node it was
// lowered from for diagnostics raised by later stages; Effect starts at
// EffectUnknown and is filled in by effects.go.
type Instr struct {
	ID     InstrId
	Lvalue Place
	Value  InstructionValue
	Span   span.Span
	Effect Effect
}

// Phi merges the Place bound to the same Identifier along each incoming
// edge at a join point (§3.7). Operands is keyed by the block the value
// flows in from. build.go's mergeOne creates Phis at each if/else join,
// ssa.go only removes redundant ones, and lower_to_reactive.go rebuilds
// them with renumbered block keys.
type Phi struct {
	Place    Place
	Operands map[BlockId]Place
}

// Terminal is how a Block's control flow ends. Exactly one of the concrete
// types below terminates every Block in a well-formed HIRFunction (the
// "terminal successors exist" invariant of §3.7).
type Terminal interface {
	terminal()
	successors() []BlockId
}

// Return ends the function; it has no successor blocks.
type Return struct {
	Value Place // zero Place (nil Identifier) for a bare `return;`
	Span  span.Span
}

// Jump unconditionally continues at Target (the join block after an
// if/else, or the fallthrough after a pruned-empty branch).
type Jump struct{ Target BlockId }

// Branch splits on Test, landing in Then or Else depending on its runtime
// value; this is the only conditional terminal build.go emits, since the
// lowering scope is single-level if/else only. HasElse distinguishes an
// `if { } else { }` (Else names a genuine else-block) from a bare `if { }`
// (Else already names the block both arms converge at, build.go's own
// join); codegen.go needs this to tell the two shapes apart, since a
// diverging (always-returning) then-arm makes that otherwise ambiguous
// from the block graph alone.
type Branch struct {
	Test       Place
	Then, Else BlockId
	HasElse    bool
}

// Unreachable is a terminal with no successors. No stage in this package
// creates one (cfg.go and dce.go remove unreachable blocks outright), and
// codegen.go reports a block ending in Unreachable as unsupported.
type Unreachable struct{}

func (Return) terminal()      {}
func (Jump) terminal()        {}
func (Branch) terminal()      {}
func (Unreachable) terminal() {}

func (r Return) successors() []BlockId      { return nil }
func (j Jump) successors() []BlockId        { return []BlockId{j.Target} }
func (b Branch) successors() []BlockId      { return []BlockId{b.Then, b.Else} }
func (Unreachable) successors() []BlockId   { return nil }

// Block is one basic block: a straight-line run of Instructions, the Phis
// that must be evaluated on entry (before any Instruction), and the
// Terminal that ends it. A Block stores no edge lists of its own:
// HIRFunction.Successors/Predecessors derive them from the Terminals on
// demand, so a stage that mutates control flow (cfg.go merges; ssa.go
// never changes edges) has no cached edges to keep in sync.
type Block struct {
	ID           BlockId
	Phis         []*Phi
	Instructions []*Instr
	Terminal     Terminal
}

// HIRFunction is the lowered form of one ast.Function: the dense block
// table plus the function's parameter identifiers and its entry block.
// Scopes is filled in by reactive.go's reactiveScopeStage, consumed by its
// own dependencyPropagationStage and remapped by lower_to_reactive.go's
// stabilizeBlockIds; it is nil until that stage runs.
type HIRFunction struct {
	Name      string
	Params    []*Identifier
	Entry     BlockId
	Blocks    *BlockMap
	Scopes    []*ReactiveScope
	// Generated is codegen.go's step-10 output, nil until codegenStage runs.
	Generated *ast.BlockStatement
	nextInstr InstrId
	nextIdent IdentifierId
}

// NewIdentifier allocates a fresh Identifier with the next free id.
func (f *HIRFunction) NewIdentifier(nameHint string) *Identifier {
	id := &Identifier{ID: f.nextIdent, NameHint: nameHint}
	f.nextIdent++
	return id
}

// NewInstr allocates a fresh Instr id for use by a block under
// construction; it does not append the Instr anywhere, the caller does.
func (f *HIRFunction) NewInstr() InstrId {
	id := f.nextInstr
	f.nextInstr++
	return id
}

// Successors returns the blocks id's Terminal can transfer control to,
// or nil if id isn't in the map or has no Terminal yet.
func (f *HIRFunction) Successors(id BlockId) []BlockId {
	b := f.Blocks.Get(id)
	if b == nil || b.Terminal == nil {
		return nil
	}
	return b.Terminal.successors()
}

// Predecessors derives id's incoming edges by scanning every block's
// Terminal; computed on demand rather than cached, since cfg.go's block
// merges would otherwise need to keep a second structure consistent.
func (f *HIRFunction) Predecessors(id BlockId) []BlockId {
	var preds []BlockId
	for _, other := range f.Blocks.Order() {
		for _, s := range f.Successors(other) {
			if s == id {
				preds = append(preds, other)
			}
		}
	}
	return preds
}

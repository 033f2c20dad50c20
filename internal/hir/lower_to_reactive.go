package hir

import "fmt"

// lowerToReactiveFunctionStage is §4.9 step 9: "assert well-formed break
// targets, prune unused labels/scopes, propagate early returns, extract
// destructuring declarations, stabilize block ids, rename variables
// uniquely, prune hoisted contexts". break targets, labels, destructuring,
// and hoisted closures are all constructs build.go already refuses to
// lower in the first place (§4.8-adjacent scope: loops/switch/try/labeled
// statements are diagnosed, destructuring declarators are diagnosed), so
// those sub-steps are no-ops by construction here; "propagate early
// returns" has nothing to do for the same reason (a Return terminal only
// ever appears where build.go placed it, never buried inside a construct
// this pipeline would need to hoist it out of). stabilizeBlockIds and
// renameVariablesUniquely are the two sub-steps that do real work
// regardless of dialect, and always run.
type lowerToReactiveFunctionStage struct{}

func (lowerToReactiveFunctionStage) Name() string { return "lower-to-reactive-function" }

func (lowerToReactiveFunctionStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	stabilizeBlockIds(fn)
	renameVariablesUniquely(fn)
	return nil
}

// stabilizeBlockIds renumbers every surviving block densely from 0 in
// creation order, closing the gaps earlier stages' Remove calls left
// behind, and rewrites every Terminal/Phi/ReactiveScope reference to the
// old ids accordingly.
func stabilizeBlockIds(fn *HIRFunction) {
	old := fn.Blocks.Order()
	remap := make(map[BlockId]BlockId, len(old))
	fresh := NewBlockMap()
	for _, id := range old {
		remap[id] = fresh.New().ID
	}
	for _, id := range old {
		src := fn.Blocks.Get(id)
		dst := fresh.Get(remap[id])
		dst.Instructions = src.Instructions
		dst.Phis = remapPhiBlocks(src.Phis, remap)
		dst.Terminal = remapTerminalBlocks(src.Terminal, remap)
	}
	fn.Entry = remap[fn.Entry]
	for _, scope := range fn.Scopes {
		scope.Block = remap[scope.Block]
	}
	fn.Blocks = fresh
}

func remapPhiBlocks(phis []*Phi, remap map[BlockId]BlockId) []*Phi {
	out := make([]*Phi, len(phis))
	for i, phi := range phis {
		operands := make(map[BlockId]Place, len(phi.Operands))
		for pred, place := range phi.Operands {
			operands[remap[pred]] = place
		}
		out[i] = &Phi{Place: phi.Place, Operands: operands}
	}
	return out
}

func remapTerminalBlocks(t Terminal, remap map[BlockId]BlockId) Terminal {
	switch n := t.(type) {
	case Jump:
		return Jump{Target: remap[n.Target]}
	case Branch:
		return Branch{Test: n.Test, Then: remap[n.Then], Else: remap[n.Else], HasElse: n.HasElse}
	default:
		return t
	}
}

// renameVariablesUniquely assigns every Identifier a final, collision-free
// NameHint: codegen.go emits that name verbatim, so two distinct
// Identifiers both named "t" (the fallback for an empty hint, which every
// literal and intermediate instruction has) must not collide once they're both emitted as
// source-level `let` bindings in the same function.
func renameVariablesUniquely(fn *HIRFunction) {
	used := map[string]int{}
	rename := func(id *Identifier) {
		base := id.NameHint
		if base == "" {
			base = "t"
		}
		n := used[base]
		used[base] = n + 1
		if n == 0 {
			id.NameHint = base
		} else {
			id.NameHint = fmt.Sprintf("%s$%d", base, n)
		}
	}
	for _, p := range fn.Params {
		rename(p)
	}
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			rename(phi.Place.Identifier)
		}
		for _, instr := range b.Instructions {
			rename(instr.Lvalue.Identifier)
		}
	}
}

package hir

// ReactiveScope is §4.9 step 7's grouping unit: a maximal contiguous run of
// pure instructions inside one Block that can be treated as a single
// memoizable unit. The spec's fuller version additionally aligns scopes
// across a reactive-variable's whole mutable range and merges two scopes
// whose ranges overlap; this core's scopes are constructed already
// disjoint and block-local (an EffectImpure instruction always starts a
// scope boundary, never belongs inside a neighboring pure run), so the
// align/merge sub-steps the spec names have nothing left to do here and
// are intentionally not implemented as separate passes.
type ReactiveScope struct {
	ID           int
	Block        BlockId
	Start, End   int // instruction index range [Start, End) into Block.Instructions
	Dependencies []*Identifier
	Outputs      []*Identifier
}

// reactiveScopeStage is §4.9 step 7: "infer reactive vars, align scopes,
// merge overlapping scopes, build terminals, flatten loops/hooks". Loop
// and hook flattening are no-ops here since build.go's scope never
// produces a loop or a hook call in the first place; "build terminals" for
// this core's scopes is nothing more than the Start/End boundary itself,
// since a scope never spans a Block's own Terminal.
type reactiveScopeStage struct{}

func (reactiveScopeStage) Name() string { return "reactive-scope-formation" }

func (reactiveScopeStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	fn.Scopes = buildReactiveScopes(fn)
	return nil
}

func buildReactiveScopes(fn *HIRFunction) []*ReactiveScope {
	var scopes []*ReactiveScope
	next := 0
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		i := 0
		for i < len(b.Instructions) {
			start := i
			if b.Instructions[i].Effect == EffectImpure {
				i++
			} else {
				for i < len(b.Instructions) && b.Instructions[i].Effect != EffectImpure {
					i++
				}
			}
			scopes = append(scopes, &ReactiveScope{ID: next, Block: id, Start: start, End: i})
			next++
		}
	}
	return scopes
}

// dependencyPropagationStage is §4.9 step 8: for each ReactiveScope,
// Dependencies is every identifier the scope reads but doesn't itself
// define (so a later memoization layer knows what invalidates it) and
// Outputs is every identifier the scope defines that something outside the
// scope's own instruction range still reads (so that layer knows what it
// needs to keep live across scope boundaries).
type dependencyPropagationStage struct{}

func (dependencyPropagationStage) Name() string { return "dependency-propagation" }

func (dependencyPropagationStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	definedBy := map[*Identifier]*ReactiveScope{}
	for _, scope := range fn.Scopes {
		b := fn.Blocks.Get(scope.Block)
		for _, instr := range b.Instructions[scope.Start:scope.End] {
			definedBy[instr.Lvalue.Identifier] = scope
		}
	}

	usedOutside := map[*Identifier]bool{}
	visit := func(owner *ReactiveScope, p Place) {
		if p.Identifier == nil {
			return
		}
		if def, ok := definedBy[p.Identifier]; !ok || def != owner {
			usedOutside[p.Identifier] = true
		}
	}

	for _, scope := range fn.Scopes {
		b := fn.Blocks.Get(scope.Block)
		deps := map[*Identifier]bool{}
		for _, instr := range b.Instructions[scope.Start:scope.End] {
			for _, operand := range instructionOperands(instr.Value) {
				if operand.Identifier == nil {
					continue
				}
				if def, ok := definedBy[operand.Identifier]; !ok || def != scope {
					deps[operand.Identifier] = true
				}
			}
		}
		for ident := range deps {
			scope.Dependencies = append(scope.Dependencies, ident)
		}
	}

	// Anything read by a Phi or a Terminal is, by definition, read outside
	// every scope (scopes never span past their own block's instructions),
	// so those are exactly the "read across a boundary" roots alongside any
	// instruction operand landing in a different scope than its definer.
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			for _, operand := range phi.Operands {
				if operand.Identifier != nil {
					usedOutside[operand.Identifier] = true
				}
			}
		}
		switch t := b.Terminal.(type) {
		case Return:
			if t.Value.Identifier != nil {
				usedOutside[t.Value.Identifier] = true
			}
		case Branch:
			if t.Test.Identifier != nil {
				usedOutside[t.Test.Identifier] = true
			}
		}
		for _, scope := range fn.Scopes {
			if scope.Block != id {
				continue
			}
			for _, instr := range b.Instructions[scope.Start:scope.End] {
				for _, operand := range instructionOperands(instr.Value) {
					visit(scope, operand)
				}
			}
		}
	}

	for _, scope := range fn.Scopes {
		b := fn.Blocks.Get(scope.Block)
		for _, instr := range b.Instructions[scope.Start:scope.End] {
			if usedOutside[instr.Lvalue.Identifier] {
				scope.Outputs = append(scope.Outputs, instr.Lvalue.Identifier)
			}
		}
	}
	return nil
}

package hir

// deadCodeEliminationStage is §4.9 step 6: "dead code elimination, second
// pruning pass". Backward liveness over the values effect-inference (step
// 5) already classified: an instruction whose result is never read and
// which effects.go marked pure is dropped; anything EffectImpure (a
// CallInstr) is always kept even with an unused Lvalue, since dropping it
// would remove an observable side effect. The "second pruning pass" is
// pruneUnreachableBlocks (cfg.go) run again, since folding dead
// instructions out of a branch can turn what used to be a live edge into
// one nothing in the function can still reach.
type deadCodeEliminationStage struct{}

func (deadCodeEliminationStage) Name() string { return "dead-code-elimination" }

func (deadCodeEliminationStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	eliminateDeadCode(fn)
	pruneUnreachableBlocks(fn)
	return nil
}

func eliminateDeadCode(fn *HIRFunction) {
	live := map[*Identifier]bool{}
	seed := func(p Place) {
		if p.Identifier != nil {
			live[p.Identifier] = true
		}
	}
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			for _, operand := range phi.Operands {
				seed(operand)
			}
		}
		switch t := b.Terminal.(type) {
		case Return:
			seed(t.Value)
		case Branch:
			seed(t.Test)
		}
	}

	for changed := true; changed; {
		changed = false
		for _, id := range fn.Blocks.Order() {
			b := fn.Blocks.Get(id)
			for _, instr := range b.Instructions {
				if instr.Effect == EffectPure && !live[instr.Lvalue.Identifier] {
					continue
				}
				for _, operand := range instructionOperands(instr.Value) {
					if operand.Identifier != nil && !live[operand.Identifier] {
						live[operand.Identifier] = true
						changed = true
					}
				}
			}
		}
	}

	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)

		keptInstrs := b.Instructions[:0]
		for _, instr := range b.Instructions {
			if instr.Effect != EffectPure || live[instr.Lvalue.Identifier] {
				keptInstrs = append(keptInstrs, instr)
			}
		}
		b.Instructions = keptInstrs

		keptPhis := b.Phis[:0]
		for _, phi := range b.Phis {
			if live[phi.Place.Identifier] {
				keptPhis = append(keptPhis, phi)
			}
		}
		b.Phis = keptPhis
	}
}

package hir

// ssaEntryStage is §4.9 step 2: "enter SSA, eliminate redundant phis,
// reassert invariants". build.go already renames every assignment into a
// fresh Identifier and inserts a Phi at each if/else join as it lowers, so
// the function arriving here is already in SSA form; this stage's real
// work is collapsing a Phi whose operands all resolve to the same
// Identifier (a shape build.go's mergeOne never emits, but a hand-built or
// later-rewritten function can carry) and reasserting that every
// Identifier still has exactly one definition after that collapse.
type ssaEntryStage struct{}

func (ssaEntryStage) Name() string { return "ssa-entry" }

func (ssaEntryStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	eliminateRedundantPhis(fn)
	return assertSingleDefinition(fn)
}

// eliminateRedundantPhis repeatedly removes any Phi all of whose operands
// name the same Identifier, substituting that Identifier for the Phi's own
// everywhere else in the function, until a fixpoint (removing one
// redundant Phi can make another, downstream one redundant in turn).
func eliminateRedundantPhis(fn *HIRFunction) {
	for {
		subst := map[*Identifier]*Identifier{}
		for _, id := range fn.Blocks.Order() {
			b := fn.Blocks.Get(id)
			var kept []*Phi
			for _, phi := range b.Phis {
				if unique, ok := soleDistinctOperand(phi); ok {
					subst[phi.Place.Identifier] = unique
					continue
				}
				kept = append(kept, phi)
			}
			b.Phis = kept
		}
		if len(subst) == 0 {
			return
		}
		applySubstitution(fn, subst)
	}
}

// soleDistinctOperand reports the one Identifier phi's operands all
// resolve to, ignoring an operand that names the Phi's own place (the
// shape a loop-carried phi would have, though build.go's scope never
// produces one); it reports ok=false if two operands genuinely disagree.
func soleDistinctOperand(phi *Phi) (*Identifier, bool) {
	var sole *Identifier
	for _, operand := range phi.Operands {
		if operand.Identifier == phi.Place.Identifier {
			continue
		}
		if sole == nil {
			sole = operand.Identifier
			continue
		}
		if sole != operand.Identifier {
			return nil, false
		}
	}
	return sole, sole != nil
}

func resolveSubst(ident *Identifier, subst map[*Identifier]*Identifier) *Identifier {
	for {
		r, ok := subst[ident]
		if !ok {
			return ident
		}
		ident = r
	}
}

func substPlace(p Place, subst map[*Identifier]*Identifier) Place {
	if p.Identifier == nil {
		return p
	}
	return Place{Identifier: resolveSubst(p.Identifier, subst)}
}

// applySubstitution rewrites every Place in the function (phi operands,
// instruction operands, terminal operands) through subst. Each Instr's
// Lvalue is left untouched: substitution only ever changes where a value
// is *read* from, never renames the definition a still-live Instr produces.
func applySubstitution(fn *HIRFunction, subst map[*Identifier]*Identifier) {
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			for k, v := range phi.Operands {
				phi.Operands[k] = substPlace(v, subst)
			}
		}
		for _, instr := range b.Instructions {
			instr.Value = substInstructionValue(instr.Value, subst)
		}
		switch t := b.Terminal.(type) {
		case Return:
			b.Terminal = Return{Value: substPlace(t.Value, subst), Span: t.Span}
		case Branch:
			b.Terminal = Branch{Test: substPlace(t.Test, subst), Then: t.Then, Else: t.Else, HasElse: t.HasElse}
		}
	}
}

func substInstructionValue(v InstructionValue, subst map[*Identifier]*Identifier) InstructionValue {
	switch n := v.(type) {
	case LoadLocal:
		return LoadLocal{Value: substPlace(n.Value, subst)}
	case BinaryInstr:
		return BinaryInstr{Operator: n.Operator, Left: substPlace(n.Left, subst), Right: substPlace(n.Right, subst)}
	case UnaryInstr:
		return UnaryInstr{Operator: n.Operator, Operand: substPlace(n.Operand, subst)}
	case PropertyLoad:
		return PropertyLoad{Object: substPlace(n.Object, subst), Property: n.Property}
	case CallInstr:
		args := make([]Place, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = substPlace(a, subst)
		}
		return CallInstr{Callee: substPlace(n.Callee, subst), Arguments: args}
	default:
		return v
	}
}

// assertSingleDefinition reasserts SSA's defining invariant: every
// Identifier read by some Place in the function was bound by exactly one
// Instr.Lvalue, Phi.Place, or function parameter.
func assertSingleDefinition(fn *HIRFunction) []CompilerError {
	defs := map[*Identifier]int{}
	for _, p := range fn.Params {
		defs[p]++
	}
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			defs[phi.Place.Identifier]++
		}
		for _, instr := range b.Instructions {
			defs[instr.Lvalue.Identifier]++
		}
	}
	var errs []CompilerError
	for ident, count := range defs {
		if count > 1 {
			errs = append(errs, CompilerError{
				Category: CategoryInvariant,
				Message:  "identifier \"" + ident.NameHint + "\" has more than one definition after phi elimination",
			})
		}
	}
	return errs
}

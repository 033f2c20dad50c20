package hir

// effectInferenceStage is §4.9 step 5: "mutation aliasing effects/ranges,
// reactive-place inference". The full spec version tracks which Places a
// call might mutate through aliasing; this core classifies purity at the
// coarser per-instruction-kind level (a CallInstr is always impure, every
// other instruction kind is always pure) since nothing in this pipeline's
// scope yet needs finer-grained alias tracking to make a correct decision
// -- dce.go only needs "is it ever unsafe to drop", and reactive.go only
// needs "can two adjacent instructions share a reactive scope", both of
// which this classification answers.
type effectInferenceStage struct{}

func (effectInferenceStage) Name() string { return "effect-inference" }

func (effectInferenceStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, instr := range b.Instructions {
			instr.Effect = classifyEffect(instr.Value)
		}
	}
	return nil
}

func classifyEffect(v InstructionValue) Effect {
	switch v.(type) {
	case CallInstr:
		return EffectImpure
	default:
		return EffectPure
	}
}

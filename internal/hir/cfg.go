package hir

// preSSACleanupStage is §4.9 step 1: "prune unreachable, validate lvalues,
// drop manual memoization, inline IIFEs, merge consecutive blocks, assert
// invariants". The memoization-hook and IIFE sub-passes are two of the
// React-Compiler-specific analyses the spec calls out as domain-specific;
// this core has no framework dialect to recognize a memoization hook or an
// IIFE-as-memoization-boundary by, so those two are deliberately no-ops
// here (dropManualMemoization, inlineIIFEs) rather than faked-up
// approximations, while the three structural sub-passes (unreachable
// pruning, consecutive-block merging, invariant assertion) are real.
type preSSACleanupStage struct{}

func (preSSACleanupStage) Name() string { return "pre-ssa-cleanup" }

func (s preSSACleanupStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	pruneUnreachableBlocks(fn)
	dropManualMemoization(fn)
	inlineIIFEs(fn)
	mergeConsecutiveBlocks(fn)
	return assertCFGInvariants(fn)
}

// pruneUnreachableBlocks removes every block, other than the entry block,
// that no surviving block's Terminal can reach, repeating until a fixpoint
// since removing one unreachable block can make another one unreachable
// (a block only reachable through the one just removed).
func pruneUnreachableBlocks(fn *HIRFunction) {
	for {
		reachable := map[BlockId]bool{fn.Entry: true}
		changed := true
		for changed {
			changed = false
			for _, id := range fn.Blocks.Order() {
				if !reachable[id] {
					continue
				}
				for _, s := range fn.Successors(id) {
					if !reachable[s] {
						reachable[s] = true
						changed = true
					}
				}
			}
		}
		var dead []BlockId
		for _, id := range fn.Blocks.Order() {
			if !reachable[id] {
				dead = append(dead, id)
			}
		}
		if len(dead) == 0 {
			return
		}
		for _, id := range dead {
			fn.Blocks.Remove(id)
		}
	}
}

// dropManualMemoization is a no-op in this core: without a React-style
// hooks dialect there is no manual-memoization call shape (useMemo/
// useCallback) to recognize and remove.
func dropManualMemoization(fn *HIRFunction) {}

// inlineIIFEs is a no-op in this core for the same reason: the spec's IIFE
// inlining exists to unwrap a memoization boundary's wrapper closure
// specifically, not IIFEs in general, and this core models no such
// boundary.
func inlineIIFEs(fn *HIRFunction) {}

// mergeConsecutiveBlocks folds a block whose only successor is a Jump
// target with exactly one predecessor into that target, repeating to a
// fixpoint. This is the one sub-pass of step 1 that does real, visible
// work for the control flow build.go produces, since every if/else without
// further branching inside its arms leaves behind a then/else/join chain
// that's often trivially collapsible once dead phi inputs disappear.
func mergeConsecutiveBlocks(fn *HIRFunction) {
	for {
		merged := false
		for _, id := range fn.Blocks.Order() {
			b := fn.Blocks.Get(id)
			if b == nil {
				continue
			}
			jump, ok := b.Terminal.(Jump)
			if !ok || jump.Target == id {
				continue
			}
			target := fn.Blocks.Get(jump.Target)
			if target == nil || len(fn.Predecessors(jump.Target)) != 1 {
				continue
			}
			if len(target.Phis) != 0 {
				// A join point with real phis still needs its own block
				// identity for ssa.go's operand bookkeeping; merging it away
				// would require rewriting every Phi's Operands key, which
				// this pass doesn't attempt.
				continue
			}
			b.Instructions = append(b.Instructions, target.Instructions...)
			b.Terminal = target.Terminal
			fn.Blocks.Remove(target.ID)
			merged = true
		}
		if !merged {
			return
		}
	}
}

// assertCFGInvariants checks §3.7's "terminal successors exist" invariant
// (every block has a Terminal, and every successor it names is present);
// the predecessor/successor-edge invariant holds by construction, since
// Predecessors is always derived from the Terminals. It returns a CompilerError per violation rather than panicking: a caller
// in Lint mode needs to see every broken invariant in one run.
func assertCFGInvariants(fn *HIRFunction) []CompilerError {
	var errs []CompilerError
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		if b.Terminal == nil {
			errs = append(errs, CompilerError{
				Category: CategoryInvariant,
				Message:  "block has no terminal",
			})
			continue
		}
		for _, s := range fn.Successors(id) {
			if fn.Blocks.Get(s) == nil {
				errs = append(errs, CompilerError{
					Category: CategoryInvariant,
					Message:  "terminal names a successor block that does not exist",
				})
			}
		}
	}
	return errs
}

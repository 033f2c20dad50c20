package hir_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/hir"
)

// TestPipelineEliminatesRedundantPhi hand-builds a function whose join
// block carries a Phi both of whose operands already name the same
// Identifier (a shape build.go's own mergeOne never constructs, since it
// only inserts a Phi when the two incoming Places differ, but one ssa.go
// must still collapse correctly wherever it does arise) and checks the
// substitution reaches all the way through to the generated code.
func TestPipelineEliminatesRedundantPhi(t *testing.T) {
	fn := &hir.HIRFunction{Blocks: hir.NewBlockMap()}
	x := fn.NewIdentifier("x")
	fn.Params = []*hir.Identifier{x}

	entry := fn.Blocks.New()
	thenB := fn.Blocks.New()
	elseB := fn.Blocks.New()
	join := fn.Blocks.New()
	fn.Entry = entry.ID

	entry.Terminal = hir.Branch{Test: hir.Place{Identifier: x}, Then: thenB.ID, Else: elseB.ID, HasElse: true}
	thenB.Terminal = hir.Jump{Target: join.ID}
	elseB.Terminal = hir.Jump{Target: join.ID}

	z := fn.NewIdentifier("z")
	join.Phis = []*hir.Phi{{
		Place:    hir.Place{Identifier: z},
		Operands: map[hir.BlockId]hir.Place{thenB.ID: {Identifier: x}, elseB.ID: {Identifier: x}},
	}}
	join.Terminal = hir.Return{Value: hir.Place{Identifier: z}}

	if errs := hir.DefaultPipeline().Run(fn, hir.Client); len(errs) != 0 {
		t.Fatalf("pipeline run: %v", errs)
	}

	if fn.Generated == nil {
		t.Fatalf("want Generated to be set after the pipeline runs")
	}
	if len(fn.Generated.Body) != 2 {
		t.Fatalf("want 2 generated statements (if, return), got %d: %#v", len(fn.Generated.Body), fn.Generated.Body)
	}
	ret, ok := fn.Generated.Body[1].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("want second statement to be a ReturnStatement, got %T", fn.Generated.Body[1])
	}
	if id, ok := ret.Argument.(*ast.Identifier); !ok || id.Name != x.NameHint {
		t.Fatalf("want the return to read the parameter the redundant Phi collapsed to, got %#v", ret.Argument)
	}
}

func TestPipelineLintModeAccumulatesAcrossStages(t *testing.T) {
	fn := &hir.HIRFunction{Blocks: hir.NewBlockMap()}
	undefinedIdent := fn.NewIdentifier("neverDefined")

	entry := fn.Blocks.New()
	fn.Entry = entry.ID
	// A Return reading an Identifier with no definition anywhere in the
	// function doesn't violate any CFG invariant, but validationStage's
	// def-before-use check should catch the dangling read, and Lint mode
	// should keep running the remaining stages instead of aborting on it.
	entry.Terminal = hir.Return{Value: hir.Place{Identifier: undefinedIdent}}

	errs := hir.DefaultPipeline().Run(fn, hir.Lint)
	if len(errs) == 0 {
		t.Fatalf("want at least one CompilerError for a use-before-definition")
	}
	foundInvariant := false
	for _, e := range errs {
		if e.Category == hir.CategoryInvariant {
			foundInvariant = true
		}
	}
	if !foundInvariant {
		t.Fatalf("want a CategoryInvariant error among %v", errs)
	}
	// Lint mode must still have reached codegen: a dangling read doesn't
	// stop later stages from running, only Client/Ssr's abort-on-error
	// policy does that.
	if fn.Generated == nil {
		t.Fatalf("want Lint mode to run every stage through codegen despite the earlier error")
	}
}

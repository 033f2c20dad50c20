package transform

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// DefaultMaxIterations bounds the peephole driver's fixpoint loop (§4.8
// says "the driver iterates them in a fixed order until stable"); bounded
// so a pass pair that oscillates cannot hang the pipeline rather than
// just under-optimize.
const DefaultMaxIterations = 10

// Driver runs a fixed-order list of Pass implementations over a program to
// a fixpoint: after each full-tree traversal, if any pass reported a
// change anywhere, the whole traversal repeats (§4.8 "peephole driver").
type Driver struct {
	Passes        []Pass
	MaxIterations int
}

// NewDriver builds a Driver over passes in the given order. Order matters:
// within one traversal a node is offered to every pass in sequence, each
// seeing the previous pass's output, so e.g. compress_typeof_undefined
// should run before compress_boolean if its output could itself become a
// boolean-literal rewrite target.
func NewDriver(passes ...Pass) *Driver {
	return &Driver{Passes: passes, MaxIterations: DefaultMaxIterations}
}

// Run rewrites prog in place, returning the number of full-tree iterations
// actually performed (1 if the first pass already reached a fixpoint).
// tables may be nil; passes that require it (ConstantPropagation) treat a
// nil Tables as "nothing to propagate" rather than panicking.
func (d *Driver) Run(prog *ast.Program, tables *semantic.Tables) int {
	max := d.MaxIterations
	if max <= 0 {
		max = DefaultMaxIterations
	}
	iterations := 0
	for i := 0; i < max; i++ {
		iterations++
		ctx := &Context{Tables: tables}
		if !rewriteProgram(ctx, prog, d.Passes) {
			break
		}
	}
	return iterations
}

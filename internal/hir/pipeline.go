package hir

// Stage is one numbered step of the Deep Optimization Pipeline (§4.9): Run
// receives a function already satisfying every earlier stage's invariant
// and is responsible for both doing its own transformation and leaving the
// function satisfying whatever invariant this stage adds. A Stage reports
// zero or more CompilerErrors instead of panicking or silently doing
// nothing, so Pipeline.Run can apply mode's accumulate-vs-abort policy
// uniformly across every stage rather than each stage inventing its own.
type Stage interface {
	Name() string
	Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError
}

// Pipeline runs Stages over an HIRFunction in a fixed order (§4.9's ten
// numbered stages); Stages is exported so a caller assembling a partial
// pipeline (e.g. a lint-only run that skips codegen) can slice it, but
// DefaultPipeline is the order every stage's own doc comment assumes its
// predecessor already ran in.
type Pipeline struct {
	Stages []Stage
}

// DefaultPipeline returns the full ten-stage pipeline in spec order. Each
// stage here covers one of §4.9's numbered steps; several spec steps that
// bundle multiple sub-passes (e.g. step 1's "prune unreachable, validate
// lvalues, drop manual memoization, inline IIFEs, merge consecutive
// blocks") are collapsed into a single Stage value since this pipeline's
// per-sub-pass logic is small enough not to need its own Stage boundary,
// but each sub-pass is still its own function inside that Stage's file.
func DefaultPipeline() *Pipeline {
	return &Pipeline{Stages: []Stage{
		preSSACleanupStage{},
		ssaEntryStage{},
		constantPropagationStage{},
		validationStage{},
		effectInferenceStage{},
		deadCodeEliminationStage{},
		reactiveScopeStage{},
		dependencyPropagationStage{},
		lowerToReactiveFunctionStage{},
		codegenStage{},
	}}
}

// Run executes every stage in order against fn. In Client/Ssr mode, the
// first stage to report any CompilerError aborts the run immediately,
// since those modes hand the result to a real compile target that can't
// use a partially-lowered function; in Lint mode every stage still runs
// (collecting errors across the whole pipeline) so a lint pass can surface
// every problem in one run instead of just the first stage's.
func (p *Pipeline) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	var errs []CompilerError
	for _, stage := range p.Stages {
		stageErrs := stage.Run(fn, mode)
		errs = append(errs, stageErrs...)
		if len(stageErrs) > 0 && mode != Lint {
			break
		}
	}
	return errs
}

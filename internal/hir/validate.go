package hir

// ValidationConfig toggles each of §4.9 step 4's named validations. Every
// one of them (hook-call legality, capitalized-component naming, exhaustive
// effect dependencies, no-ref-access-during-render, no-set-state-during-
// render) is specific to a React-style hooks/component dialect this core
// doesn't model. The fields exist, but validationStage implements none of
// these checks, so setting Dialect or any of their flags changes nothing.
// DefBeforeUse is the one validation this core runs, since "a Place is never read before
// its defining Instr/Phi/parameter" is a plain SSA well-formedness
// property, not a framework-specific rule.
type ValidationConfig struct {
	Dialect               bool // true once a caller recognizes hook/component call shapes
	HookCallLegality      bool
	Capitalization        bool
	ExhaustiveEffectDeps  bool
	RefAccessDuringRender bool
	SetStateDuringRender  bool
	DefBeforeUse          bool

	// MaxFixpointIterations is the configurable ceiling, 100 by default,
	// for a derived-computations-in-effects check (a value recomputed
	// inside an effect callback without being declared a dependency),
	// grouped under ExhaustiveEffectDeps above. No such check is
	// implemented in this package, so nothing reads this field.
	// Recognizing an effect callback would take a closure-typed call
	// argument, which build.go's lowering scope has no case for
	// (lowerExpr's CallExpression case lowers every argument through
	// lowerExpr, which diagnoses and aborts on a function literal).
	MaxFixpointIterations int
}

// DefaultValidationConfig enables only the dialect-independent check.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{DefBeforeUse: true, MaxFixpointIterations: 100}
}

type validationStage struct{ Config ValidationConfig }

func (validationStage) Name() string { return "validation" }

func (s validationStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	cfg := s.Config
	if !cfg.DefBeforeUse && !cfg.Dialect {
		cfg = DefaultValidationConfig()
	}
	var errs []CompilerError
	if cfg.DefBeforeUse {
		errs = append(errs, assertDefBeforeUse(fn)...)
	}
	// HookCallLegality, Capitalization, ExhaustiveEffectDeps,
	// RefAccessDuringRender, and SetStateDuringRender have no
	// implementation here; each is a no-op whatever cfg.Dialect says,
	// rather than a false "pass".
	return errs
}

// assertDefBeforeUse walks blocks in creation order (build.go's control-
// flow order) checking that every Place a Phi operand or Instr operand
// reads names an Identifier already bound by an earlier Phi/Instr/param in
// that same linear order, or is itself one of fn.Params.
func assertDefBeforeUse(fn *HIRFunction) []CompilerError {
	defined := map[*Identifier]bool{}
	for _, p := range fn.Params {
		defined[p] = true
	}
	var errs []CompilerError
	use := func(p Place) {
		if p.Identifier != nil && !defined[p.Identifier] {
			errs = append(errs, CompilerError{
				Category: CategoryInvariant,
				Message:  "identifier \"" + p.Identifier.NameHint + "\" used before its definition",
			})
		}
	}
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			for _, operand := range phi.Operands {
				use(operand)
			}
			defined[phi.Place.Identifier] = true
		}
		for _, instr := range b.Instructions {
			for _, operand := range instructionOperands(instr.Value) {
				use(operand)
			}
			defined[instr.Lvalue.Identifier] = true
		}
		switch t := b.Terminal.(type) {
		case Return:
			if t.Value.Identifier != nil {
				use(t.Value)
			}
		case Branch:
			use(t.Test)
		}
	}
	return errs
}

// instructionOperands returns every Place an InstructionValue reads,
// shared by assertDefBeforeUse, dce.go, reactive.go and codegen.go.
func instructionOperands(v InstructionValue) []Place {
	switch n := v.(type) {
	case LoadLocal:
		return []Place{n.Value}
	case BinaryInstr:
		return []Place{n.Left, n.Right}
	case UnaryInstr:
		return []Place{n.Operand}
	case PropertyLoad:
		return []Place{n.Object}
	case CallInstr:
		ops := make([]Place, 0, len(n.Arguments)+1)
		ops = append(ops, n.Callee)
		ops = append(ops, n.Arguments...)
		return ops
	default:
		return nil
	}
}

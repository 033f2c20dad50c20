package hir

import (
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/span"
)

// zeroSpan is used for every node codegen.go synthesizes: a generated
// node has no single byte range in the original source (an Instr may fold
// together several original expressions via constant propagation by the
// time it gets here), so it carries an empty span rather than a borrowed,
// misleading one.
var zeroSpan = span.New(0, 0)

// codegenStage is §4.9 step 10: "lower HIR to JS AST, optional source
// location validation". This core skips the optional source-location
// validation sub-step outright: since every generated node already carries
// zeroSpan instead of a borrowed one, there is no real source position to
// validate against, and claiming one would be misleading rather than
// merely incomplete.
type codegenStage struct{}

func (codegenStage) Name() string { return "codegen" }

func (codegenStage) Run(fn *HIRFunction, mode CompilerOutputMode) []CompilerError {
	body, errs := Codegen(fn)
	if len(errs) > 0 {
		return errs
	}
	fn.Generated = body
	return nil
}

// Codegen reconstructs fn's control flow back into an ast.BlockStatement.
// It only recognizes the control-flow shapes build.go itself produces
// (straight-line code, and single-level if/else whose arms reconverge at a
// common block, both end in Return, or where one arm ends in Return and
// the other continues); anything a
// later stage left in some other shape is reported as a CompilerError
// instead of guessed at, the same stance build.go takes lowering in the
// first place.
func Codegen(fn *HIRFunction) (*ast.BlockStatement, []CompilerError) {
	used := usedIdentifiers(fn)
	stmts, _, errs := reconstruct(fn, fn.Entry, NoBlockId, used)
	if len(errs) > 0 {
		return nil, errs
	}
	return &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, zeroSpan), Body: stmts}, nil
}

// usedIdentifiers collects every Identifier read by some Phi operand,
// instruction operand, or Terminal operand anywhere in fn: the set
// instructionsToStatements needs to tell an impure call whose result
// feeds something else from one kept only for its side effect. By the
// time codegen runs, lowerToReactiveFunctionStage's renaming has already
// given every Identifier a non-empty NameHint, so an empty hint can no
// longer stand in for "nobody reads this value" the way it could right
// after build.go emitted it.
func usedIdentifiers(fn *HIRFunction) map[*Identifier]bool {
	used := map[*Identifier]bool{}
	mark := func(p Place) {
		if p.Identifier != nil {
			used[p.Identifier] = true
		}
	}
	for _, id := range fn.Blocks.Order() {
		b := fn.Blocks.Get(id)
		for _, phi := range b.Phis {
			for _, operand := range phi.Operands {
				mark(operand)
			}
		}
		for _, instr := range b.Instructions {
			for _, operand := range instructionOperands(instr.Value) {
				mark(operand)
			}
		}
		switch t := b.Terminal.(type) {
		case Return:
			mark(t.Value)
		case Branch:
			mark(t.Test)
		}
	}
	return used
}

// reconstruct emits id's own instructions followed by whatever its
// Terminal requires, stopping without recursing further once it reaches
// stopAt (the enclosing call's join block, so a shared tail isn't emitted
// twice when both if/else arms are reconstructed separately). It reports
// the block, if any, where control provably continues past what it
// emitted (NoBlockId if every path reaching here ends in Return).
func reconstruct(fn *HIRFunction, id, stopAt BlockId, used map[*Identifier]bool) ([]ast.Statement, BlockId, []CompilerError) {
	if id == stopAt {
		return nil, id, nil
	}
	b := fn.Blocks.Get(id)
	if b == nil {
		return nil, NoBlockId, []CompilerError{{
			Category: CategoryInvariant,
			Message:  "codegen reached a block id no longer present in the function",
		}}
	}

	stmts := instructionsToStatements(b.Instructions, used)

	switch t := b.Terminal.(type) {
	case Return:
		stmts = append(stmts, &ast.ReturnStatement{
			Base:     ast.NewBase(ast.KindReturnStatement, zeroSpan),
			Argument: placeToExpr(t.Value),
		})
		return stmts, NoBlockId, nil

	case Jump:
		return stmts, t.Target, nil

	case Branch:
		return reconstructBranch(fn, id, stmts, t, used)

	default:
		return nil, NoBlockId, []CompilerError{{
			Category: CategoryUnsupported,
			Message:  "block has no terminal codegen recognizes",
		}}
	}
}

// reconstructBranch handles the Branch case of reconstruct, split out for
// readability: it has to look ahead into both arms before it knows what
// join block (if any) to stop each arm's own reconstruction at.
func reconstructBranch(fn *HIRFunction, condID BlockId, prefix []ast.Statement, t Branch, used map[*Identifier]bool) ([]ast.Statement, BlockId, []CompilerError) {
	thenBlock := fn.Blocks.Get(t.Then)
	if thenBlock == nil {
		return nil, NoBlockId, []CompilerError{{Category: CategoryInvariant, Message: "branch then-target missing"}}
	}
	thenJoin, thenDiverges := continuationOf(thenBlock)

	// HasElse, set by build.go, is authoritative on whether Else names a
	// genuine else-block or the shared join a bare `if` falls through to
	// directly; a diverging then-arm (ends in Return) leaves thenJoin
	// unknown, so this can't be inferred from the block graph alone.
	elseJoin, elseDiverges := NoBlockId, false
	if t.HasElse {
		elseBlock := fn.Blocks.Get(t.Else)
		if elseBlock == nil {
			return nil, NoBlockId, []CompilerError{{Category: CategoryInvariant, Message: "branch else-target missing"}}
		}
		elseJoin, elseDiverges = continuationOf(elseBlock)
	} else {
		elseJoin = t.Else
	}

	// Without an else, the false edge reaches t.Else (the join) no matter
	// whether the then-arm itself diverges; with an else, the join is only
	// ambiguous when neither arm diverges, and only valid then if both
	// arms agree on where they reconverge.
	var join BlockId
	switch {
	case !t.HasElse:
		join = t.Else
	case thenDiverges && elseDiverges:
		join = NoBlockId
	case thenDiverges:
		join = elseJoin
	case elseDiverges:
		join = thenJoin
	case thenJoin == elseJoin:
		join = thenJoin
	default:
		return nil, NoBlockId, []CompilerError{{
			Category: CategoryUnsupported,
			Message:  "if/else arms reconverge at different blocks; outside this pipeline's codegen scope",
		}}
	}

	thenStmts, _, errs := reconstruct(fn, t.Then, join, used)
	if len(errs) > 0 {
		return nil, NoBlockId, errs
	}
	ifStmt := &ast.IfStatement{
		Base:       ast.NewBase(ast.KindIfStatement, zeroSpan),
		Test:       placeToExpr(t.Test),
		Consequent: blockStmt(thenStmts),
	}
	if t.HasElse {
		elseStmts, _, errs := reconstruct(fn, t.Else, join, used)
		if len(errs) > 0 {
			return nil, NoBlockId, errs
		}
		ifStmt.Alternate = blockStmt(elseStmts)
	}
	stmts := append(prefix, ifStmt)

	if join == NoBlockId {
		return stmts, NoBlockId, nil
	}
	rest, cont, errs := reconstruct(fn, join, NoBlockId, used)
	if len(errs) > 0 {
		return nil, NoBlockId, errs
	}
	return append(stmts, rest...), cont, nil
}

// continuationOf reports a block's Jump target, or (NoBlockId, true) if it
// ends in Return, for the single-successor terminals this pipeline's
// if/else arms are ever built with.
func continuationOf(b *Block) (target BlockId, diverges bool) {
	switch t := b.Terminal.(type) {
	case Jump:
		return t.Target, false
	case Return:
		return NoBlockId, true
	default:
		return NoBlockId, true
	}
}

func blockStmt(stmts []ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, zeroSpan), Body: stmts}
}

func instructionsToStatements(instrs []*Instr, used map[*Identifier]bool) []ast.Statement {
	stmts := make([]ast.Statement, 0, len(instrs))
	for _, instr := range instrs {
		expr := instructionValueToExpr(instr.Value)
		if instr.Effect == EffectImpure && instr.Lvalue.Identifier != nil && !used[instr.Lvalue.Identifier] {
			stmts = append(stmts, &ast.ExpressionStatement{
				Base:       ast.NewBase(ast.KindExpressionStatement, zeroSpan),
				Expression: expr,
			})
			continue
		}
		stmts = append(stmts, &ast.VariableDeclaration{
			Base: ast.NewBase(ast.KindVariableDeclaration, zeroSpan),
			Kind: "let",
			Declarations: []*ast.VariableDeclarator{{
				Base: ast.NewBase(ast.KindVariableDeclarator, zeroSpan),
				ID:   identExpr(instr.Lvalue.Identifier),
				Init: expr,
			}},
		})
	}
	return stmts
}

func identExpr(id *Identifier) *ast.Identifier {
	name := id.NameHint
	if name == "" {
		name = "t"
	}
	return &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, zeroSpan), Name: name, SymbolID: ast.NoSymbolId, ReferenceID: ast.NoReferenceId}
}

func placeToExpr(p Place) ast.Expression {
	if p.Identifier == nil {
		return nil
	}
	return identExpr(p.Identifier)
}

func instructionValueToExpr(v InstructionValue) ast.Expression {
	switch n := v.(type) {
	case Literal:
		return literalExpr(n)
	case LoadLocal:
		return placeToExpr(n.Value)
	case LoadGlobal:
		return &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, zeroSpan), Name: n.Name, SymbolID: ast.NoSymbolId, ReferenceID: ast.NoReferenceId}
	case BinaryInstr:
		return &ast.BinaryExpression{
			Base:     ast.NewBase(ast.KindBinaryExpression, zeroSpan),
			Operator: n.Operator,
			Left:     placeToExpr(n.Left),
			Right:    placeToExpr(n.Right),
		}
	case UnaryInstr:
		return &ast.UnaryExpression{
			Base:     ast.NewBase(ast.KindUnaryExpression, zeroSpan),
			Operator: n.Operator,
			Argument: placeToExpr(n.Operand),
			Prefix:   true,
		}
	case PropertyLoad:
		return &ast.MemberExpression{
			Base:     ast.NewBase(ast.KindMemberExpression, zeroSpan),
			Object:   placeToExpr(n.Object),
			Property: &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, zeroSpan), Name: n.Property, SymbolID: ast.NoSymbolId, ReferenceID: ast.NoReferenceId},
			Computed: false,
		}
	case CallInstr:
		args := make([]ast.Expression, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = placeToExpr(a)
		}
		return &ast.CallExpression{
			Base:      ast.NewBase(ast.KindCallExpression, zeroSpan),
			Callee:    placeToExpr(n.Callee),
			Arguments: args,
		}
	default:
		return nil
	}
}

func literalExpr(l Literal) ast.Expression {
	switch l.Kind {
	case LiteralNumber:
		return &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, zeroSpan), Value: l.Value.(float64)}
	case LiteralString:
		return &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, zeroSpan), Value: l.Value.(string)}
	case LiteralBoolean:
		return &ast.BooleanLiteral{Base: ast.NewBase(ast.KindBooleanLiteral, zeroSpan), Value: l.Value.(bool)}
	case LiteralNull:
		return &ast.NullLiteral{Base: ast.NewBase(ast.KindNullLiteral, zeroSpan)}
	default: // LiteralUndefined
		return &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, zeroSpan), Name: "undefined", SymbolID: ast.NoSymbolId, ReferenceID: ast.NoReferenceId}
	}
}

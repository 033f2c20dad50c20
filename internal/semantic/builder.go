// Package semantic builds the scope/symbol/reference tables a linter rule
// needs to answer "what does this identifier refer to" without re-deriving
// it itself. It runs as a single recursive walk over the parsed ast.Program,
// grounded on funvibe-funxy/internal/analyzer's public-Analyzer-wrapping-an-
// internal-walker shape: a small Build entry point drives an unexported
// *Builder that accumulates Diagnostics as it goes, the same separation the
// teacher draws between its Analyzer and its walker.
package semantic

import (
	"fmt"

	"github.com/jscore-dev/jscore/internal/ast"
)

// Diagnostic mirrors parser.Diagnostic's shape deliberately: a span plus a
// message, appended to a running slice rather than returned as an error, so
// one pass can surface every binding problem in a file instead of stopping
// at the first.
type Diagnostic struct {
	Message string
	Start   uint32
	End     uint32
}

// Tables is the full output of Build: every scope, symbol, and reference
// discovered in the program, indexed densely by the ids recorded on the
// AST nodes themselves (ast.Identifier.SymbolID/ReferenceID).
type Tables struct {
	Scopes     []*Scope
	Symbols    []*Symbol
	References []*Reference
}

func (t *Tables) Scope(id ScopeId) *Scope {
	if id == NoScopeId {
		return nil
	}
	return t.Scopes[id]
}

func (t *Tables) Symbol(id SymbolId) *Symbol {
	if id == NoSymbolId {
		return nil
	}
	return t.Symbols[id]
}

func (t *Tables) Reference(id ReferenceId) *Reference {
	if id == NoReferenceId {
		return nil
	}
	return t.References[id]
}

// Builder threads a scope stack through the walk. References created
// inside a scope are resolved lazily when that scope closes (popScope),
// not at the point of use — a reference to a not-yet-declared `let`/`var`
// earlier in the same scope, or to a binding declared by a later sibling
// statement, still resolves correctly once the whole scope has been seen.
type Builder struct {
	tables *Tables
	stack  []ScopeId
	diags  []Diagnostic
}

// Build walks prog once, producing its scope/symbol/reference tables.
func Build(prog *ast.Program) (*Tables, []Diagnostic) {
	b := &Builder{tables: &Tables{}}
	kind := ScopeTop
	if prog.SourceType == ast.SourceModule {
		kind = ScopeModule
	}
	top := b.pushScope(kind)
	top.Strict = prog.SourceType == ast.SourceModule
	if prog.Module != nil {
		b.bindModuleImports(prog.Module)
	}
	b.visitStatements(prog.Body)
	b.popScope()
	return b.tables, b.diags
}

func (b *Builder) errorf(s ast.Node, format string, args ...any) {
	sp := s.Span()
	b.diags = append(b.diags, Diagnostic{Message: fmt.Sprintf(format, args...), Start: sp.Start, End: sp.End})
}

func (b *Builder) current() *Scope { return b.tables.Scopes[b.stack[len(b.stack)-1]] }

func (b *Builder) pushScope(kind ScopeKind) *Scope {
	parent := NoScopeId
	strict := false
	if len(b.stack) > 0 {
		p := b.current()
		parent = p.ID
		strict = p.Strict
	}
	s := &Scope{ID: ScopeId(len(b.tables.Scopes)), Parent: parent, Kind: kind, Strict: strict}
	b.tables.Scopes = append(b.tables.Scopes, s)
	b.stack = append(b.stack, s.ID)
	return s
}

// popScope resolves every reference created directly in the closing scope,
// bubbling whatever doesn't resolve locally up into the parent's own
// pending list rather than resolving it here, since the parent scope may
// still gain bindings from statements that haven't been walked yet.
func (b *Builder) popScope() {
	scope := b.current()
	for _, rid := range scope.Pending {
		b.resolveInScope(rid, scope)
	}
	scope.Pending = nil
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Builder) resolveInScope(rid ReferenceId, scope *Scope) {
	ref := b.tables.References[rid]
	if symID, ok := scope.Bindings[ref.Node.Name]; ok {
		ref.Symbol = symID
		sym := b.tables.Symbols[symID]
		sym.Refs = append(sym.Refs, rid)
		return
	}
	if scope.Parent == NoScopeId {
		ref.Global = true
		return
	}
	parent := b.tables.Scopes[scope.Parent]
	parent.Pending = append(parent.Pending, rid)
}

func (b *Builder) nearestVarScope() *Scope {
	for i := len(b.stack) - 1; i >= 0; i-- {
		s := b.tables.Scopes[b.stack[i]]
		if s.isVarScope() {
			return s
		}
	}
	return b.tables.Scopes[b.stack[0]]
}

func (b *Builder) newSymbol(name string, scope *Scope, flags SymbolFlags, decl ast.Node) SymbolId {
	id := SymbolId(len(b.tables.Symbols))
	b.tables.Symbols = append(b.tables.Symbols, &Symbol{ID: id, Name: name, Scope: scope.ID, Flags: flags, Decl: decl})
	return id
}

// declareBinding records ident as a binding occurrence in scope. A second
// binding of the same name in the same scope merges flags onto the
// existing symbol rather than shadowing it — the var/function hoisting
// merge case — and is flagged as a redeclaration only when either side is
// a let/const, which genuinely cannot coexist with anything else.
func (b *Builder) declareBinding(ident *ast.Identifier, scope *Scope, flags SymbolFlags) {
	name := ident.Name
	if existing, ok := scope.Bindings[name]; ok {
		sym := b.tables.Symbols[existing]
		if flags&(SymLet|SymConst) != 0 || sym.Flags&(SymLet|SymConst) != 0 {
			b.errorf(ident, "%q is already declared in this scope", name)
		}
		sym.Flags |= flags
		ident.SymbolID = sym.ID
		return
	}
	id := b.newSymbol(name, scope, flags, ident)
	scope.bind(name, id)
	ident.SymbolID = id
}

func (b *Builder) reference(ident *ast.Identifier, flags ReferenceFlags) {
	id := ReferenceId(len(b.tables.References))
	scope := b.current()
	b.tables.References = append(b.tables.References, &Reference{ID: id, Node: ident, Scope: scope.ID, Symbol: NoSymbolId, Flags: flags})
	ident.ReferenceID = id
	scope.Pending = append(scope.Pending, id)
}

func (b *Builder) bindModuleImports(mod *ast.ModuleRecord) {
	for _, imp := range mod.Imports {
		for _, spec := range imp.Specifiers {
			var local *ast.Identifier
			switch s := spec.(type) {
			case *ast.ImportSpecifier:
				local = s.Local
			case *ast.ImportDefaultSpecifier:
				local = s.Local
			case *ast.ImportNamespaceSpecifier:
				local = s.Local
			}
			if local != nil {
				b.declareBinding(local, b.current(), SymImport)
			}
		}
	}
}

// --- statements ---

func (b *Builder) visitStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		b.visitStatement(s)
	}
}

func (b *Builder) visitStatement(s ast.Statement) {
	switch n := s.(type) {
	case nil:
		return
	case *ast.ExpressionStatement:
		b.visitExpression(n.Expression)
	case *ast.Directive:
		if n.Value == "use strict" {
			b.current().Strict = true
		}
	case *ast.BlockStatement:
		b.pushScope(ScopeBlock)
		b.visitStatements(n.Body)
		b.popScope()
	case *ast.EmptyStatement, *ast.DebuggerStatement:
		// no bindings, no references
	case *ast.IfStatement:
		b.visitExpression(n.Test)
		b.visitStatement(n.Consequent)
		b.visitStatement(n.Alternate)
	case *ast.SwitchStatement:
		b.visitExpression(n.Discriminant)
		b.pushScope(ScopeBlock)
		for _, c := range n.Cases {
			if c.Test != nil {
				b.visitExpression(c.Test)
			}
			b.visitStatements(c.Consequent)
		}
		b.popScope()
	case *ast.ForStatement:
		b.pushScope(ScopeFor)
		b.visitForInit(n.Init)
		if n.Test != nil {
			b.visitExpression(n.Test)
		}
		if n.Update != nil {
			b.visitExpression(n.Update)
		}
		b.visitStatement(n.Body)
		b.popScope()
	case *ast.ForInStatement:
		b.pushScope(ScopeFor)
		b.visitForLeft(n.Left)
		b.visitExpression(n.Right)
		b.visitStatement(n.Body)
		b.popScope()
	case *ast.ForOfStatement:
		b.pushScope(ScopeFor)
		b.visitForLeft(n.Left)
		b.visitExpression(n.Right)
		b.visitStatement(n.Body)
		b.popScope()
	case *ast.WhileStatement:
		b.visitExpression(n.Test)
		b.visitStatement(n.Body)
	case *ast.DoWhileStatement:
		b.visitStatement(n.Body)
		b.visitExpression(n.Test)
	case *ast.BreakStatement, *ast.ContinueStatement:
		// label is not a variable binding; no scope involvement
	case *ast.ReturnStatement:
		if n.Argument != nil {
			b.visitExpression(n.Argument)
		}
	case *ast.ThrowStatement:
		b.visitExpression(n.Argument)
	case *ast.TryStatement:
		b.visitStatement(n.Block)
		if n.Handler != nil {
			b.pushScope(ScopeCatch)
			if n.Handler.Param != nil {
				b.bindPattern(n.Handler.Param, b.current(), SymCatchParameter)
			}
			b.visitStatements(n.Handler.Body.Body)
			b.popScope()
		}
		if n.Finalizer != nil {
			b.visitStatement(n.Finalizer)
		}
	case *ast.LabeledStatement:
		b.visitStatement(n.Body)
	case *ast.WithStatement:
		b.visitExpression(n.Object)
		b.pushScope(ScopeWith)
		b.visitStatement(n.Body)
		b.popScope()
	case *ast.VariableDeclaration:
		b.visitVariableDeclaration(n)
	case *ast.FunctionDeclaration:
		if n.ID != nil {
			b.declareBinding(n.ID, b.current(), SymFunction)
			if sym := b.tables.Symbols[n.ID.SymbolID]; sym.Decl == n.ID {
				sym.Decl = n
			}
		}
		b.visitFunctionLike(&n.Function, false)
	case *ast.ClassDeclaration:
		if n.ID != nil {
			b.declareBinding(n.ID, b.current(), SymClass)
		}
		b.visitClass(&n.Class)
	case *ast.TSInterfaceDeclaration, *ast.TSTypeAliasDeclaration, *ast.TSEnumDeclaration, *ast.TSModuleDeclaration:
		// type-level and ambient declarations carry no runtime binding this
		// core tracks; their bodies are opaque (no type checker, §4.5).
	case *ast.ImportDeclaration:
		// bindings already recorded from Program.Module in bindModuleImports
	case *ast.ExportNamedDeclaration:
		if n.Declaration != nil {
			b.visitStatement(n.Declaration)
		}
		for _, spec := range n.Specifiers {
			b.reference(spec.Local, RefRead)
		}
	case *ast.ExportDefaultDeclaration:
		b.visitExportDefault(n.Declaration)
	case *ast.ExportAllDeclaration:
		// re-export of another module's bindings; nothing local to bind
	default:
		b.errorf(s, "semantic: unhandled statement kind %v", s.Kind())
	}
}

func (b *Builder) visitExportDefault(decl ast.Node) {
	switch n := decl.(type) {
	case ast.Statement:
		b.visitStatement(n)
	case ast.Expression:
		b.visitExpression(n)
	}
}

func (b *Builder) visitForInit(init ast.Node) {
	switch n := init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		b.visitVariableDeclaration(n)
	case ast.Expression:
		b.visitExpression(n)
	}
}

// visitForLeft handles a for-in/for-of header's left side, which is either
// a single-declarator VariableDeclaration or a bare assignment target.
func (b *Builder) visitForLeft(left ast.Node) {
	switch n := left.(type) {
	case *ast.VariableDeclaration:
		b.visitVariableDeclaration(n)
	case ast.Expression:
		b.visitAssignmentTarget(n)
	}
}

func (b *Builder) visitVariableDeclaration(n *ast.VariableDeclaration) {
	var flags SymbolFlags
	var target *Scope
	switch n.Kind {
	case "var":
		flags = SymVar
		target = b.nearestVarScope()
	case "const":
		flags = SymConst
		target = b.current()
	default: // "let"
		flags = SymLet
		target = b.current()
	}
	for _, d := range n.Declarations {
		b.bindPattern(d.ID, target, flags)
		if id, ok := d.ID.(*ast.Identifier); ok {
			if sym := b.tables.Symbols[id.SymbolID]; sym.Decl == id {
				sym.Decl = d
			}
		}
		if d.Init != nil {
			b.visitExpression(d.Init)
		}
	}
}

// bindPattern declares every identifier leaf of a binding pattern (used
// for var/let/const declarators, parameters, and catch parameters).
// Default-value expressions and computed keys are ordinary reads, visited
// in the builder's current scope regardless of target.
func (b *Builder) bindPattern(p ast.Pattern, target *Scope, flags SymbolFlags) {
	switch n := p.(type) {
	case nil:
	case *ast.Identifier:
		b.declareBinding(n, target, flags)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				b.bindPattern(el, target, flags)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.ObjectPatternField:
				if pr.Computed {
					b.visitExpression(pr.Key)
				}
				b.bindPattern(pr.Value, target, flags)
			case *ast.RestElement:
				b.bindPattern(pr.Argument, target, flags)
			}
		}
	case *ast.AssignmentPattern:
		b.bindPattern(n.Left, target, flags)
		b.visitExpression(n.Right)
	case *ast.RestElement:
		b.bindPattern(n.Argument, target, flags)
	}
}

// visitAssignmentTarget walks a pattern used as a plain assignment's left
// side (not a declaration): every identifier leaf is a write reference to
// whatever it already resolves to, not a new binding.
func (b *Builder) visitAssignmentTarget(target ast.Node) {
	switch n := target.(type) {
	case nil:
	case *ast.Identifier:
		b.reference(n, RefWrite)
	case *ast.MemberExpression:
		b.visitExpression(n)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				b.visitAssignmentTarget(el)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.ObjectPatternField:
				if pr.Computed {
					b.visitExpression(pr.Key)
				}
				b.visitAssignmentTarget(pr.Value)
			case *ast.RestElement:
				b.visitAssignmentTarget(pr.Argument)
			}
		}
	case *ast.AssignmentPattern:
		b.visitAssignmentTarget(n.Left)
		b.visitExpression(n.Right)
	case *ast.RestElement:
		b.visitAssignmentTarget(n.Argument)
	}
}

// --- functions and classes ---

// visitFunctionLike pushes the scope shared by a function/arrow's
// parameters and its own top-level body, rather than a further-nested
// block scope for the body — JS gives parameters and a function's
// directly-declared `var`s the same scope, not two nested ones.
func (b *Builder) visitFunctionLike(fn *ast.Function, isArrow bool) {
	kind := ScopeFunction
	if isArrow {
		kind = ScopeArrow
	}
	scope := b.pushScope(kind)
	for _, p := range fn.Params {
		b.bindPattern(p, scope, SymParameter)
	}
	switch body := fn.Body.(type) {
	case *ast.BlockStatement:
		for _, s := range body.Body {
			if dir, ok := s.(*ast.Directive); ok && dir.Value == "use strict" {
				scope.Strict = true
				continue
			}
			b.visitStatement(s)
		}
	case ast.Expression:
		b.visitExpression(body)
	}
	b.popScope()
}

func (b *Builder) visitClass(cls *ast.Class) {
	if cls.SuperClass != nil {
		b.visitExpression(cls.SuperClass)
	}
	scope := b.pushScope(ScopeClass)
	scope.Strict = true
	for _, m := range cls.Body {
		switch member := m.(type) {
		case *ast.MethodDefinition:
			if member.Computed {
				b.visitExpression(member.Key)
			}
			if member.Value != nil {
				b.visitFunctionLike(&member.Value.Function, false)
			}
		case *ast.PropertyDefinition:
			if member.Computed {
				b.visitExpression(member.Key)
			}
			if member.Value != nil {
				b.visitExpression(member.Value)
			}
		case *ast.StaticBlock:
			b.pushScope(ScopeBlock)
			b.visitStatements(member.Body)
			b.popScope()
		}
	}
	b.popScope()
}

// --- expressions ---

func (b *Builder) visitExpression(e ast.Expression) {
	switch n := e.(type) {
	case nil:
	case *ast.Identifier:
		b.reference(n, RefRead)
	case *ast.PrivateIdentifier, *ast.NumericLiteral, *ast.BigIntLiteral, *ast.StringLiteral,
		*ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral,
		*ast.ThisExpression, *ast.SuperExpression, *ast.JSXIdentifier:
		// no bindings, no references
	case *ast.TemplateLiteral:
		for _, sub := range n.Expressions {
			b.visitExpression(sub)
		}
	case *ast.TaggedTemplateExpression:
		b.visitExpression(n.Tag)
		b.visitExpression(n.Quasi)
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			if el != nil {
				b.visitExpression(el)
			}
		}
	case *ast.ObjectExpression:
		for _, m := range n.Properties {
			switch prop := m.(type) {
			case *ast.Property:
				if prop.Computed {
					b.visitExpression(prop.Key)
				}
				b.visitExpression(prop.Value)
			case *ast.SpreadElement:
				b.visitExpression(prop.Argument)
			}
		}
	case *ast.FunctionExpression:
		b.visitFunctionLike(&n.Function, false)
	case *ast.ArrowFunctionExpression:
		b.visitFunctionLike(&n.Function, true)
	case *ast.ClassExpression:
		b.visitClass(&n.Class)
	case *ast.UnaryExpression:
		b.visitExpression(n.Argument)
	case *ast.UpdateExpression:
		b.visitAssignmentTarget(n.Argument)
	case *ast.BinaryExpression:
		b.visitExpression(n.Left)
		b.visitExpression(n.Right)
	case *ast.LogicalExpression:
		b.visitExpression(n.Left)
		b.visitExpression(n.Right)
	case *ast.AssignmentExpression:
		b.visitAssignmentTarget(n.Left)
		b.visitExpression(n.Right)
	case *ast.ConditionalExpression:
		b.visitExpression(n.Test)
		b.visitExpression(n.Consequent)
		b.visitExpression(n.Alternate)
	case *ast.CallExpression:
		b.visitExpression(n.Callee)
		for _, a := range n.Arguments {
			b.visitExpression(a)
		}
	case *ast.NewExpression:
		b.visitExpression(n.Callee)
		for _, a := range n.Arguments {
			b.visitExpression(a)
		}
	case *ast.MemberExpression:
		b.visitExpression(n.Object)
		if n.Computed {
			b.visitExpression(n.Property)
		}
	case *ast.SequenceExpression:
		for _, sub := range n.Expressions {
			b.visitExpression(sub)
		}
	case *ast.SpreadElement:
		b.visitExpression(n.Argument)
	case *ast.YieldExpression:
		if n.Argument != nil {
			b.visitExpression(n.Argument)
		}
	case *ast.AwaitExpression:
		b.visitExpression(n.Argument)
	case *ast.ParenthesizedExpression:
		b.visitExpression(n.Expression)
	case *ast.JSXElement:
		b.visitJSXName(n.Name)
		for _, a := range n.Attributes {
			switch attr := a.(type) {
			case *ast.JSXAttribute:
				if jc, ok := attr.Value.(*ast.JSXExpressionContainer); ok && jc.Expression != nil {
					b.visitExpression(jc.Expression)
				}
			case *ast.JSXSpreadAttribute:
				b.visitExpression(attr.Argument)
			}
		}
		for _, c := range n.Children {
			if jc, ok := c.(*ast.JSXExpressionContainer); ok && jc.Expression != nil {
				b.visitExpression(jc.Expression)
			} else if child, ok := c.(ast.Expression); ok {
				b.visitExpression(child)
			}
		}
	case *ast.JSXFragment:
		for _, c := range n.Children {
			if jc, ok := c.(*ast.JSXExpressionContainer); ok && jc.Expression != nil {
				b.visitExpression(jc.Expression)
			} else if child, ok := c.(ast.Expression); ok {
				b.visitExpression(child)
			}
		}
	default:
		b.errorf(e, "semantic: unhandled expression kind %v", e.Kind())
	}
}

// visitJSXName does not resolve a component tag to a variable binding
// (JSXIdentifier/JSXMemberExpression live outside the Identifier/SymbolID
// mechanism entirely, §4.2's JSX node set) — an explicit simplification,
// not an oversight: wiring `<Foo/>` to the `Foo` binding would need a
// parallel resolution path keyed on ast.JSXIdentifier.Name instead of
// ast.Identifier.ReferenceID, which no rule in this core currently needs.
func (b *Builder) visitJSXName(name ast.Expression) {}

package ast

// ImportSpecifier is the sum of ImportSpecifier, ImportDefaultSpecifier,
// and ImportNamespaceSpecifier (§4.3 "Module record construction, step 10").
type ImportSpecifierNode interface {
	Node
	importSpecifierNode()
}

type ImportSpecifier struct {
	Base
	Imported *Identifier // source-side name (may differ under `as`)
	Local    *Identifier
}

func (n *ImportSpecifier) importSpecifierNode() {}
func (n *ImportSpecifier) Accept(v Visitor)     {}

type ImportDefaultSpecifier struct {
	Base
	Local *Identifier
}

func (n *ImportDefaultSpecifier) importSpecifierNode() {}
func (n *ImportDefaultSpecifier) Accept(v Visitor)     {}

type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier
}

func (n *ImportNamespaceSpecifier) importSpecifierNode() {}
func (n *ImportNamespaceSpecifier) Accept(v Visitor)     {}

// ImportDeclaration's Source span is the StringLiteral's own span, per
// §3.3's rule that the source string keeps its own span rather than being
// absorbed into the declaration's.
type ImportDeclaration struct {
	Base
	Specifiers []ImportSpecifierNode
	Source     *StringLiteral
	TypeOnly   bool // `import type { ... }`
}

func (n *ImportDeclaration) statementNode()         {}
func (n *ImportDeclaration) moduleDeclarationNode() {}
func (n *ImportDeclaration) Accept(v Visitor)       { v.VisitImportDeclaration(n) }

type ExportSpecifier struct {
	Base
	Local    *Identifier
	Exported *Identifier
}

func (n *ExportSpecifier) Accept(v Visitor) {}

// ExportNamedDeclaration covers both `export const x = 1` (Declaration
// non-nil, Specifiers empty) and `export { a, b as c } from "mod"`
// (Declaration nil, Specifiers populated, Source optionally set).
type ExportNamedDeclaration struct {
	Base
	Declaration Declaration // nil for a specifier-list export
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral // non-nil for a re-export
	TypeOnly    bool
}

func (n *ExportNamedDeclaration) statementNode()         {}
func (n *ExportNamedDeclaration) moduleDeclarationNode() {}
func (n *ExportNamedDeclaration) Accept(v Visitor)       { v.VisitExportNamedDeclaration(n) }

// ExportDefaultDeclaration's Declaration is a Declaration, Expression, or
// *ClassExpression/*FunctionExpression for `export default function() {}`.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

func (n *ExportDefaultDeclaration) statementNode()         {}
func (n *ExportDefaultDeclaration) moduleDeclarationNode() {}
func (n *ExportDefaultDeclaration) Accept(v Visitor)       { v.VisitExportDefaultDeclaration(n) }

type ExportAllDeclaration struct {
	Base
	Exported *Identifier // non-nil for `export * as ns from "mod"`
	Source   *StringLiteral
}

func (n *ExportAllDeclaration) statementNode()         {}
func (n *ExportAllDeclaration) moduleDeclarationNode() {}
func (n *ExportAllDeclaration) Accept(v Visitor)       { v.VisitExportAllDeclaration(n) }

// ModuleRecord is the resolved-bindings summary built at the end of parsing
// a module (§4.3 step 10): the parser walks the top-level ImportDeclaration/
// Export*Declaration nodes once and records which local names are bound to
// which imports, and which local names are re-exported under which
// external names. It does not resolve other modules' exports itself (that
// crosses into a bundler's job, an explicit non-goal) — it only records
// this file's own import/export surface.
type ModuleRecord struct {
	Imports          []*ImportDeclaration
	ExportedBindings map[string]Node // exported name -> declaring node
	ReExports        []*ExportAllDeclaration
}

func NewModuleRecord() *ModuleRecord {
	return &ModuleRecord{ExportedBindings: make(map[string]Node)}
}

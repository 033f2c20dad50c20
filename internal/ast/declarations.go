package ast

// TSInterfaceDeclaration, TSTypeAliasDeclaration, TSEnumDeclaration, and
// TSModuleDeclaration are kept as opaque-body declaration nodes: this core
// does not perform type inference or type checking (explicit non-goal), so
// their type-level bodies are carried as unparsed Node placeholders rather
// than a full TS type-expression grammar. The asymmetry — ModuleDeclaration
// bodies ARE fully parsed statement lists while interface/type-alias bodies
// are opaque — is a deliberate scope boundary, not an oversight (see
// DESIGN.md Open Question decisions).
type TSInterfaceDeclaration struct {
	Base
	ID         *Identifier
	Extends    []Expression
	Body       Node // opaque type-member list
}

func (n *TSInterfaceDeclaration) statementNode()   {}
func (n *TSInterfaceDeclaration) declarationNode() {}
func (n *TSInterfaceDeclaration) Accept(v Visitor) { v.VisitTSInterfaceDeclaration(n) }

type TSTypeAliasDeclaration struct {
	Base
	ID             *Identifier
	TypeAnnotation Node
}

func (n *TSTypeAliasDeclaration) statementNode()   {}
func (n *TSTypeAliasDeclaration) declarationNode() {}
func (n *TSTypeAliasDeclaration) Accept(v Visitor) { v.VisitTSTypeAliasDeclaration(n) }

type TSEnumMember struct {
	Base
	ID          Expression
	Initializer Expression // nil if not explicitly assigned
}

func (n *TSEnumMember) Accept(v Visitor) {}

type TSEnumDeclaration struct {
	Base
	ID      *Identifier
	Const   bool
	Members []*TSEnumMember
}

func (n *TSEnumDeclaration) statementNode()   {}
func (n *TSEnumDeclaration) declarationNode() {}
func (n *TSEnumDeclaration) Accept(v Visitor) { v.VisitTSEnumDeclaration(n) }

// TSModuleDeclaration covers both `namespace Foo { ... }` and
// `declare module "foo" { ... }`; Body is nil for an ambient declaration
// with no block (`declare module "foo";`).
type TSModuleDeclaration struct {
	Base
	ID      Expression // *Identifier for namespace, *StringLiteral for module
	Body    []Statement
	Declare bool
	Global  bool // `declare global { ... }`
}

func (n *TSModuleDeclaration) statementNode()   {}
func (n *TSModuleDeclaration) declarationNode() {}
func (n *TSModuleDeclaration) Accept(v Visitor) { v.VisitTSModuleDeclaration(n) }

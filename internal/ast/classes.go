package ast

// ClassMember is satisfied by MethodDefinition, PropertyDefinition, and
// StaticBlock (§3.3).
type ClassMember interface {
	Node
	classMemberNode()
}

// Class is embedded by ClassDeclaration and ClassExpression to share the
// common shape, mirroring the Function embedding pattern above.
type Class struct {
	ID         *Identifier // nil for anonymous class expressions
	SuperClass Expression  // nil if no `extends`
	Body       []ClassMember
}

type MethodDefinition struct {
	Base
	Key       Expression
	Value     *FunctionExpression
	Kind      string // "method" | "get" | "set" | "constructor"
	Computed  bool
	Static    bool
}

func (n *MethodDefinition) classMemberNode() {}
func (n *MethodDefinition) Accept(v Visitor) {}

type PropertyDefinition struct {
	Base
	Key      Expression
	Value    Expression // nil if uninitialized
	Computed bool
	Static   bool
}

func (n *PropertyDefinition) classMemberNode() {}
func (n *PropertyDefinition) Accept(v Visitor) {}

type StaticBlock struct {
	Base
	Body []Statement
}

func (n *StaticBlock) classMemberNode() {}
func (n *StaticBlock) Accept(v Visitor) {}

type ClassDeclaration struct {
	Base
	Class
}

func (n *ClassDeclaration) statementNode()   {}
func (n *ClassDeclaration) declarationNode() {}
func (n *ClassDeclaration) Accept(v Visitor) { v.VisitClassDeclaration(n) }

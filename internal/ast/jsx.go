package ast

// JSXIdentifier is a tag or attribute name; kept distinct from Identifier
// because JSX names permit hyphens (`data-foo`) that would never lex as a
// single identifier token outside JSX (§3.3).
type JSXIdentifier struct {
	Base
	Name string
}

func (n *JSXIdentifier) expressionNode() {}
func (n *JSXIdentifier) Accept(v Visitor) { v.VisitJSXIdentifier(n) }

// JSXMemberExpression covers dotted tag names like `<Foo.Bar />`.
type JSXMemberExpression struct {
	Base
	Object   Expression // *JSXIdentifier or *JSXMemberExpression
	Property *JSXIdentifier
}

func (n *JSXMemberExpression) expressionNode()  {}
func (n *JSXMemberExpression) Accept(v Visitor) { v.VisitJSXMemberExpression(n) }

// JSXAttribute's Name is always a *JSXIdentifier; there is no separate node
// kind for a namespaced attribute name (`xml:lang`).
type JSXAttribute struct {
	Base
	Name  *JSXIdentifier
	Value Node // nil (boolean attr), *StringLiteral, or *JSXExpressionContainer
}

func (n *JSXAttribute) jsxAttributeNode() {}
func (n *JSXAttribute) Accept(v Visitor)  { v.VisitJSXAttribute(n) }

type JSXSpreadAttribute struct {
	Base
	Argument Expression
}

func (n *JSXSpreadAttribute) jsxAttributeNode() {}
func (n *JSXSpreadAttribute) Accept(v Visitor)  { v.VisitJSXSpreadAttribute(n) }

// JSXAttributeNode is satisfied by JSXAttribute and JSXSpreadAttribute.
type JSXAttributeNode interface {
	Node
	jsxAttributeNode()
}

type JSXExpressionContainer struct {
	Base
	Expression Expression // may be nil for an empty `{}` (used only as a comment slot)
}

func (n *JSXExpressionContainer) expressionNode() {}
func (n *JSXExpressionContainer) jsxChildNode()   {}
func (n *JSXExpressionContainer) Accept(v Visitor) { v.VisitJSXExpressionContainer(n) }

type JSXText struct {
	Base
	Value string
	Raw   string
}

func (n *JSXText) jsxChildNode()   {}
func (n *JSXText) Accept(v Visitor) { v.VisitJSXText(n) }

// JSXChild is satisfied by JSXElement, JSXFragment, JSXExpressionContainer,
// and JSXText.
type JSXChild interface {
	Node
	jsxChildNode()
}

// JSXElement and JSXFragment satisfy Expression per the JSXExpression ⊃
// Expression variant-inheritance rule (§3.3, §9): their Kind values sit in
// the JSX sub-range above kindJSXExprBase, so Kind.IsExpression() still
// reports true for them without any re-encoding.
type JSXElement struct {
	Base
	Name          Expression // *JSXIdentifier or *JSXMemberExpression
	Attributes    []JSXAttributeNode
	Children      []JSXChild
	SelfClosing   bool
}

func (n *JSXElement) expressionNode() {}
func (n *JSXElement) jsxChildNode()   {}
func (n *JSXElement) Accept(v Visitor) { v.VisitJSXElement(n) }

type JSXFragment struct {
	Base
	Children []JSXChild
}

func (n *JSXFragment) expressionNode() {}
func (n *JSXFragment) jsxChildNode()   {}
func (n *JSXFragment) Accept(v Visitor) { v.VisitJSXFragment(n) }

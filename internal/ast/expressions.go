package ast

import (
	"math/big"

	"github.com/jscore-dev/jscore/internal/span"
)

// Expression is the sum type of every expression node (§3.3). JSXElement/
// JSXFragment also satisfy it, implementing the JSXExpression ⊃ Expression
// variant-inheritance rule (§3.3, §9).
type Expression interface {
	Node
	expressionNode()
}

// Identifier is both a binding identifier and an identifier reference,
// carrying an opaque SymbolId/ReferenceId slot filled in by the semantic
// builder (§3.3, §3.4).
type Identifier struct {
	Base
	Name        string
	SymbolID    SymbolId    // set when this is a binding occurrence
	ReferenceID ReferenceId // set when this is a reference occurrence
	TypeAnnotation Node     // optional TS type annotation
}

func NewIdentifier(s span.Span, name string) *Identifier {
	return &Identifier{Base: NewBase(KindIdentifier, s), Name: name, SymbolID: NoSymbolId, ReferenceID: NoReferenceId}
}
func (n *Identifier) expressionNode()  {}
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

type PrivateIdentifier struct {
	Base
	Name string
}

func (n *PrivateIdentifier) expressionNode()  {}
func (n *PrivateIdentifier) Accept(v Visitor) { v.VisitPrivateIdentifier(n) }

type NumericLiteral struct {
	Base
	Value float64
	Raw   string
}

func (n *NumericLiteral) expressionNode()  {}
func (n *NumericLiteral) Accept(v Visitor) { v.VisitNumericLiteral(n) }

type BigIntLiteral struct {
	Base
	Value *big.Int
	Raw   string
}

func (n *BigIntLiteral) expressionNode()  {}
func (n *BigIntLiteral) Accept(v Visitor) { v.VisitBigIntLiteral(n) }

// StringLiteral's Span is the literal's own span, even when it is used as a
// module specifier (§3.3 "For module declarations, the source string's span
// is that of the literal, not the declaration").
type StringLiteral struct {
	Base
	Value string
	Raw   string
}

func (n *StringLiteral) expressionNode()  {}
func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

type BooleanLiteral struct {
	Base
	Value bool
}

func (n *BooleanLiteral) expressionNode()  {}
func (n *BooleanLiteral) Accept(v Visitor) { v.VisitBooleanLiteral(n) }

type NullLiteral struct{ Base }

func (n *NullLiteral) expressionNode()  {}
func (n *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(n) }

type RegExpLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (n *RegExpLiteral) expressionNode()  {}
func (n *RegExpLiteral) Accept(v Visitor) { v.VisitRegExpLiteral(n) }

type TemplateElement struct {
	Base
	Cooked string
	Raw    string
	Tail   bool
}

func (n *TemplateElement) expressionNode()  {}
func (n *TemplateElement) Accept(v Visitor) {}

type TemplateLiteral struct {
	Base
	Quasis      []*TemplateElement
	Expressions []Expression
}

func (n *TemplateLiteral) expressionNode()  {}
func (n *TemplateLiteral) Accept(v Visitor) { v.VisitTemplateLiteral(n) }

type TaggedTemplateExpression struct {
	Base
	Tag   Expression
	Quasi *TemplateLiteral
}

func (n *TaggedTemplateExpression) expressionNode()  {}
func (n *TaggedTemplateExpression) Accept(v Visitor) { v.VisitTaggedTemplate(n) }

type ArrayExpression struct {
	Base
	// Elements may contain nil for elisions (`[1, , 3]`) and *SpreadElement.
	Elements []Expression
}

func (n *ArrayExpression) expressionNode()  {}
func (n *ArrayExpression) Accept(v Visitor) { v.VisitArrayExpression(n) }

// ObjectMember is satisfied by a key:value Property and by a SpreadElement
// (and by RestElement, for object patterns).
type ObjectMember interface {
	Node
	objectMemberNode()
}

type Property struct {
	Base
	Key       Expression
	Value     Expression
	Computed  bool
	Shorthand bool
	Method    bool
	Kind      string // "init" | "get" | "set"
}

func (n *Property) objectMemberNode()  {}
func (n *Property) Accept(v Visitor)   {}
func (n *Property) expressionNode()    {}

type ObjectExpression struct {
	Base
	Properties []ObjectMember
}

func (n *ObjectExpression) expressionNode()  {}
func (n *ObjectExpression) Accept(v Visitor) { v.VisitObjectExpression(n) }

// Function is embedded by FunctionDeclaration/FunctionExpression to share
// the common shape (§3.3's invariant that Function.id may be absent for a
// default-export anonymous function).
type Function struct {
	ID        *Identifier // nil for anonymous function expressions
	Params    []Pattern
	Body      Node // *BlockStatement, or an Expression for concise arrows
	Generator bool
	Async     bool
	ReturnType Node // optional TS return type annotation
}

type FunctionExpression struct {
	Base
	Function
}

func (n *FunctionExpression) expressionNode()  {}
func (n *FunctionExpression) Accept(v Visitor) { v.VisitFunctionExpression(n) }

type ArrowFunctionExpression struct {
	Base
	Function
	ExpressionBody bool // true when Body is a bare Expression, not a block
}

func (n *ArrowFunctionExpression) expressionNode()  {}
func (n *ArrowFunctionExpression) Accept(v Visitor)  { v.VisitArrowFunctionExpression(n) }

type ClassExpression struct {
	Base
	Class
}

func (n *ClassExpression) expressionNode()  {}
func (n *ClassExpression) Accept(v Visitor) { v.VisitClassExpression(n) }

type UnaryExpression struct {
	Base
	Operator string
	Argument Expression
	Prefix   bool
}

func (n *UnaryExpression) expressionNode()  {}
func (n *UnaryExpression) Accept(v Visitor) { v.VisitUnaryExpression(n) }

type UpdateExpression struct {
	Base
	Operator string
	Argument Expression
	Prefix   bool
}

func (n *UpdateExpression) expressionNode()  {}
func (n *UpdateExpression) Accept(v Visitor) { v.VisitUpdateExpression(n) }

type BinaryExpression struct {
	Base
	Operator string
	Left     Expression
	Right    Expression
}

func (n *BinaryExpression) expressionNode()  {}
func (n *BinaryExpression) Accept(v Visitor) { v.VisitBinaryExpression(n) }

type LogicalExpression struct {
	Base
	Operator string // "&&" | "||" | "??"
	Left     Expression
	Right    Expression
}

func (n *LogicalExpression) expressionNode()  {}
func (n *LogicalExpression) Accept(v Visitor) { v.VisitLogicalExpression(n) }

// AssignmentTarget is satisfied by SimpleAssignmentTarget (Identifier,
// MemberExpression) and AssignmentTargetPattern (ArrayPattern/
// ObjectPattern), the "named sub-sums the parser narrows" of §3.3.
type AssignmentTarget interface {
	Node
	assignmentTargetNode()
}

type SimpleAssignmentTarget interface {
	AssignmentTarget
	simpleAssignmentTargetNode()
}

type AssignmentTargetPattern interface {
	AssignmentTarget
	assignmentTargetPatternNode()
}

func (n *Identifier) assignmentTargetNode()       {}
func (n *Identifier) simpleAssignmentTargetNode() {}
func (n *MemberExpression) assignmentTargetNode()       {}
func (n *MemberExpression) simpleAssignmentTargetNode() {}

type AssignmentExpression struct {
	Base
	Operator string
	Left     AssignmentTarget
	Right    Expression
}

func (n *AssignmentExpression) expressionNode()  {}
func (n *AssignmentExpression) Accept(v Visitor) { v.VisitAssignmentExpression(n) }

type ConditionalExpression struct {
	Base
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (n *ConditionalExpression) expressionNode()  {}
func (n *ConditionalExpression) Accept(v Visitor) { v.VisitConditionalExpression(n) }

// Argument is an Expression or a *SpreadElement in a call's argument list.
type CallExpression struct {
	Base
	Callee    Expression
	Arguments []Expression
	Optional  bool // `?.()` — part of an optional chain
}

func (n *CallExpression) expressionNode()  {}
func (n *CallExpression) Accept(v Visitor) { v.VisitCallExpression(n) }

type NewExpression struct {
	Base
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) expressionNode()  {}
func (n *NewExpression) Accept(v Visitor) { v.VisitNewExpression(n) }

// MemberExpression covers both `a.b` (Computed=false, Property is an
// Identifier) and `a[b]` (Computed=true, Property is an Expression), and
// optional-chain `a?.b`/`a?.[b]` via Optional.
type MemberExpression struct {
	Base
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (n *MemberExpression) expressionNode()  {}
func (n *MemberExpression) Accept(v Visitor) { v.VisitMemberExpression(n) }

type SequenceExpression struct {
	Base
	Expressions []Expression
}

func (n *SequenceExpression) expressionNode()  {}
func (n *SequenceExpression) Accept(v Visitor) { v.VisitSequenceExpression(n) }

type SpreadElement struct {
	Base
	Argument Expression
}

func (n *SpreadElement) expressionNode()   {}
func (n *SpreadElement) objectMemberNode() {}
func (n *SpreadElement) Accept(v Visitor)  { v.VisitSpreadElement(n) }

type YieldExpression struct {
	Base
	Argument Expression // may be nil
	Delegate bool       // yield*
}

func (n *YieldExpression) expressionNode()  {}
func (n *YieldExpression) Accept(v Visitor) { v.VisitYieldExpression(n) }

type AwaitExpression struct {
	Base
	Argument Expression
}

func (n *AwaitExpression) expressionNode()  {}
func (n *AwaitExpression) Accept(v Visitor) { v.VisitAwaitExpression(n) }

type ThisExpression struct{ Base }

func (n *ThisExpression) expressionNode()  {}
func (n *ThisExpression) Accept(v Visitor) { v.VisitThisExpression(n) }

type SuperExpression struct{ Base }

func (n *SuperExpression) expressionNode()  {}
func (n *SuperExpression) Accept(v Visitor) { v.VisitSuperExpression(n) }

type ImportExpression struct {
	Base
	Source  Expression
	Options Expression // import assertion/attribute bag, may be nil
}

func (n *ImportExpression) expressionNode() {}
func (n *ImportExpression) Accept(v Visitor) {}

type MetaProperty struct {
	Base
	Meta     string
	Property string
}

func (n *MetaProperty) expressionNode() {}
func (n *MetaProperty) Accept(v Visitor) {}

// ParenthesizedExpression is only ever produced when the printer's
// preserve_parens option is on; the parser itself discards redundant
// parens by default so that precedence, not a wrapper node, drives the
// printer (§8 "Parse-roundtrip ... with preserve_parens=false").
type ParenthesizedExpression struct {
	Base
	Expression Expression
}

func (n *ParenthesizedExpression) expressionNode()  {}
func (n *ParenthesizedExpression) Accept(v Visitor) { v.VisitParenthesizedExpression(n) }

type TSAsExpression struct {
	Base
	Expression Expression
	TypeAnnotation Node
}

func (n *TSAsExpression) expressionNode() {}
func (n *TSAsExpression) Accept(v Visitor) {}

type TSNonNullExpression struct {
	Base
	Expression Expression
}

func (n *TSNonNullExpression) expressionNode() {}
func (n *TSNonNullExpression) Accept(v Visitor) {}

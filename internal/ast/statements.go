package ast

// Statement is the sum type of every statement node, including
// Declaration and ModuleDeclaration as further sum types (§3.3).
type Statement interface {
	Node
	statementNode()
}

type Declaration interface {
	Statement
	declarationNode()
}

type ModuleDeclaration interface {
	Statement
	moduleDeclarationNode()
}

type ExpressionStatement struct {
	Base
	Expression Expression
}

func (n *ExpressionStatement) statementNode() {}
func (n *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(n) }

type BlockStatement struct {
	Base
	Body []Statement
}

func (n *BlockStatement) statementNode()  {}
func (n *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(n) }

type EmptyStatement struct{ Base }

func (n *EmptyStatement) statementNode()  {}
func (n *EmptyStatement) Accept(v Visitor) { v.VisitEmptyStatement(n) }

type DebuggerStatement struct{ Base }

func (n *DebuggerStatement) statementNode()  {}
func (n *DebuggerStatement) Accept(v Visitor) { v.VisitDebuggerStatement(n) }

type IfStatement struct {
	Base
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else
}

func (n *IfStatement) statementNode()  {}
func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }

type SwitchCase struct {
	Base
	Test       Expression // nil for `default:`
	Consequent []Statement
}

func (n *SwitchCase) Accept(v Visitor) {}

type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []*SwitchCase
}

func (n *SwitchStatement) statementNode()  {}
func (n *SwitchStatement) Accept(v Visitor) { v.VisitSwitchStatement(n) }

// ForInit is an Expression, a Declaration (VariableDeclaration), or nil.
type ForStatement struct {
	Base
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (n *ForStatement) statementNode()  {}
func (n *ForStatement) Accept(v Visitor) { v.VisitForStatement(n) }

// ForXLeft is an Expression (AssignmentTarget) or a *VariableDeclaration
// with a single declarator.
type ForInStatement struct {
	Base
	Left  Node
	Right Expression
	Body  Statement
}

func (n *ForInStatement) statementNode()  {}
func (n *ForInStatement) Accept(v Visitor) { v.VisitForInStatement(n) }

type ForOfStatement struct {
	Base
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

func (n *ForOfStatement) statementNode()  {}
func (n *ForOfStatement) Accept(v Visitor) { v.VisitForOfStatement(n) }

type WhileStatement struct {
	Base
	Test Expression
	Body Statement
}

func (n *WhileStatement) statementNode()  {}
func (n *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(n) }

type DoWhileStatement struct {
	Base
	Body Statement
	Test Expression
}

func (n *DoWhileStatement) statementNode()  {}
func (n *DoWhileStatement) Accept(v Visitor) { v.VisitDoWhileStatement(n) }

type BreakStatement struct {
	Base
	Label *Identifier // nil if unlabeled
}

func (n *BreakStatement) statementNode()  {}
func (n *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(n) }

type ContinueStatement struct {
	Base
	Label *Identifier
}

func (n *ContinueStatement) statementNode()  {}
func (n *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(n) }

type ReturnStatement struct {
	Base
	Argument Expression // nil for bare `return;`
}

func (n *ReturnStatement) statementNode()  {}
func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }

type ThrowStatement struct {
	Base
	Argument Expression
}

func (n *ThrowStatement) statementNode()  {}
func (n *ThrowStatement) Accept(v Visitor) { v.VisitThrowStatement(n) }

type CatchClause struct {
	Base
	Param Pattern // nil for catch-without-binding
	Body  *BlockStatement
}

func (n *CatchClause) Accept(v Visitor) {}

type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStatement // nil if no finally
}

func (n *TryStatement) statementNode()  {}
func (n *TryStatement) Accept(v Visitor) { v.VisitTryStatement(n) }

type LabeledStatement struct {
	Base
	Label Identifier
	Body  Statement
}

func (n *LabeledStatement) statementNode()  {}
func (n *LabeledStatement) Accept(v Visitor) { v.VisitLabeledStatement(n) }

type WithStatement struct {
	Base
	Object Expression
	Body   Statement
}

func (n *WithStatement) statementNode() {}
func (n *WithStatement) Accept(v Visitor) {}

// Directive represents a directive prologue entry, e.g. "use strict";
// retained distinct from ExpressionStatement so the semantic builder can
// recognize it without re-parsing the string value (§4.5 strict-mode
// propagation).
type Directive struct {
	Base
	Value string // the cooked directive, e.g. "use strict"
	Raw   string
}

func (n *Directive) statementNode()  {}
func (n *Directive) Accept(v Visitor) {}

type VariableDeclarator struct {
	Base
	ID   Pattern
	Init Expression // nil if uninitialized
}

func (n *VariableDeclarator) Accept(v Visitor) {}

type VariableDeclaration struct {
	Base
	Kind         string // "var" | "let" | "const"
	Declarations []*VariableDeclarator
}

func (n *VariableDeclaration) statementNode()   {}
func (n *VariableDeclaration) declarationNode() {}
func (n *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(n) }

type FunctionDeclaration struct {
	Base
	Function
}

func (n *FunctionDeclaration) statementNode()   {}
func (n *FunctionDeclaration) declarationNode() {}
func (n *FunctionDeclaration) Accept(v Visitor) { v.VisitFunctionDeclaration(n) }

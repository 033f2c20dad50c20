// Package ast defines the closed family of node kinds mirroring the ECMA +
// TypeScript + JSX grammars (§3.3). Every node carries a Span and an
// explicit numeric discriminant (Kind), with inherited variants (e.g.
// JSXExpression extending Expression) occupying the low range of the
// wider type's discriminant space so a narrower value can be viewed as the
// wider type without re-encoding (§3.3 "variant inheritance").
//
// The shape — a closed interface (Node) implemented by every concrete node,
// each with an Accept(Visitor) double-dispatch method — is carried over
// directly from funvibe-funxy/internal/ast/ast_core.go's Node/Statement/
// Expression/Accept/TokenLiteral/GetToken convention, generalized from
// funxy's own expression/statement sum types to the JS/TS/JSX grammar.
package ast

import "github.com/jscore-dev/jscore/internal/span"

// Kind is the explicit numeric discriminant every node carries (§3.3).
// Inherited sub-ranges: ExpressionKind values occupy [0, jsxExprBase);
// JSXExpression-only additions occupy [jsxExprBase, ...) so that a
// *JSXElement (an Expression) can be viewed through either switch without
// re-encoding.
type Kind uint16

const (
	KindInvalid Kind = iota

	// --- Expression kinds (the narrower Expression sum type) -----------
	KindIdentifier
	KindPrivateIdentifier
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTaggedTemplate
	KindArrayExpression
	KindObjectExpression
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSequenceExpression
	KindSpreadElement
	KindYieldExpression
	KindAwaitExpression
	KindThisExpression
	KindSuperExpression
	KindImportExpression
	KindMetaProperty
	KindParenthesizedExpression
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSNonNullExpression
	KindTSTypeAssertion

	// --- JSXExpression additions (⊃ Expression, §3.3) -------------------
	kindJSXExprBase
	KindJSXElement
	KindJSXFragment

	// --- Statement kinds --------------------------------------------
	kindStatementBase
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindIfStatement
	KindSwitchStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBreakStatement
	KindContinueStatement
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindLabeledStatement
	KindWithStatement
	KindDirective

	// --- Declaration kinds (⊂ Statement, §3.3) --------------------------
	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindTSInterfaceDeclaration
	KindTSTypeAliasDeclaration
	KindTSEnumDeclaration
	KindTSModuleDeclaration

	// --- ModuleDeclaration kinds (⊂ Statement, §3.3) -------------------
	KindImportDeclaration
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	// --- Patterns --------------------------------------------------
	KindArrayPattern
	KindObjectPattern
	KindAssignmentPattern
	KindRestElement

	// --- Misc nodes --------------------------------------------------
	KindProgram
	KindVariableDeclarator
	KindProperty
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindCatchClause
	KindSwitchCase
	KindTemplateElement
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportSpecifier
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXExpressionContainer
	KindJSXText
	KindJSXIdentifier
	KindJSXMemberExpression
	KindOpaqueType
)

// IsExpression reports whether k is one of the (possibly inherited)
// Expression variants, implementing the "narrower type viewed as wider
// type" rule of §3.3 without re-encoding: JSX kinds are numerically above
// kindJSXExprBase but still satisfy IsExpression.
func (k Kind) IsExpression() bool {
	return k > KindInvalid && k < kindStatementBase
}

func (k Kind) IsStatement() bool {
	return k > kindStatementBase && k <= KindExportAllDeclaration
}

func (k Kind) IsJSX() bool {
	return k > kindJSXExprBase && k < kindStatementBase
}

// Node is the base interface for every AST node (§3.3).
type Node interface {
	Kind() Kind
	Span() span.Span
	Accept(v Visitor)
}

// Visitor is implemented by the package's Expression/Statement dispatch;
// defined here (rather than in internal/visitor) to avoid an import cycle,
// since every node's Accept method must reference it. internal/visitor
// builds the ancestor-stack-aware walk on top of this contract.
type Visitor interface {
	VisitProgram(*Program)
	VisitIdentifier(*Identifier)
	VisitPrivateIdentifier(*PrivateIdentifier)
	VisitNumericLiteral(*NumericLiteral)
	VisitBigIntLiteral(*BigIntLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitBooleanLiteral(*BooleanLiteral)
	VisitNullLiteral(*NullLiteral)
	VisitRegExpLiteral(*RegExpLiteral)
	VisitTemplateLiteral(*TemplateLiteral)
	VisitTaggedTemplate(*TaggedTemplateExpression)
	VisitArrayExpression(*ArrayExpression)
	VisitObjectExpression(*ObjectExpression)
	VisitFunctionExpression(*FunctionExpression)
	VisitArrowFunctionExpression(*ArrowFunctionExpression)
	VisitClassExpression(*ClassExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitUpdateExpression(*UpdateExpression)
	VisitBinaryExpression(*BinaryExpression)
	VisitLogicalExpression(*LogicalExpression)
	VisitAssignmentExpression(*AssignmentExpression)
	VisitConditionalExpression(*ConditionalExpression)
	VisitCallExpression(*CallExpression)
	VisitNewExpression(*NewExpression)
	VisitMemberExpression(*MemberExpression)
	VisitSequenceExpression(*SequenceExpression)
	VisitSpreadElement(*SpreadElement)
	VisitYieldExpression(*YieldExpression)
	VisitAwaitExpression(*AwaitExpression)
	VisitThisExpression(*ThisExpression)
	VisitSuperExpression(*SuperExpression)
	VisitParenthesizedExpression(*ParenthesizedExpression)
	VisitJSXElement(*JSXElement)
	VisitJSXFragment(*JSXFragment)

	VisitExpressionStatement(*ExpressionStatement)
	VisitBlockStatement(*BlockStatement)
	VisitEmptyStatement(*EmptyStatement)
	VisitDebuggerStatement(*DebuggerStatement)
	VisitIfStatement(*IfStatement)
	VisitSwitchStatement(*SwitchStatement)
	VisitForStatement(*ForStatement)
	VisitForInStatement(*ForInStatement)
	VisitForOfStatement(*ForOfStatement)
	VisitWhileStatement(*WhileStatement)
	VisitDoWhileStatement(*DoWhileStatement)
	VisitBreakStatement(*BreakStatement)
	VisitContinueStatement(*ContinueStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitThrowStatement(*ThrowStatement)
	VisitTryStatement(*TryStatement)
	VisitLabeledStatement(*LabeledStatement)

	VisitVariableDeclaration(*VariableDeclaration)
	VisitFunctionDeclaration(*FunctionDeclaration)
	VisitClassDeclaration(*ClassDeclaration)
	VisitTSInterfaceDeclaration(*TSInterfaceDeclaration)
	VisitTSTypeAliasDeclaration(*TSTypeAliasDeclaration)
	VisitTSEnumDeclaration(*TSEnumDeclaration)
	VisitTSModuleDeclaration(*TSModuleDeclaration)

	VisitImportDeclaration(*ImportDeclaration)
	VisitExportNamedDeclaration(*ExportNamedDeclaration)
	VisitExportDefaultDeclaration(*ExportDefaultDeclaration)
	VisitExportAllDeclaration(*ExportAllDeclaration)

	VisitArrayPattern(*ArrayPattern)
	VisitObjectPattern(*ObjectPattern)
	VisitAssignmentPattern(*AssignmentPattern)
	VisitRestElement(*RestElement)

	VisitJSXAttribute(*JSXAttribute)
	VisitJSXSpreadAttribute(*JSXSpreadAttribute)
	VisitJSXExpressionContainer(*JSXExpressionContainer)
	VisitJSXText(*JSXText)
	VisitJSXIdentifier(*JSXIdentifier)
	VisitJSXMemberExpression(*JSXMemberExpression)
}

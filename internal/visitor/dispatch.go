package visitor

import "github.com/jscore-dev/jscore/internal/ast"

// dispatcher implements ast.Visitor by re-entering Walker.descend for every
// child node. It is an unexported alias of Walker rather than a separate
// struct so descend can hand "(*dispatcher)(w)" straight to Accept without
// an allocation per node.
type dispatcher Walker

func (d *dispatcher) w() *Walker { return (*Walker)(d) }

func (d *dispatcher) VisitProgram(n *ast.Program) {
	for _, s := range n.Body {
		d.w().descend(s)
	}
}

func (d *dispatcher) VisitIdentifier(n *ast.Identifier)               {}
func (d *dispatcher) VisitPrivateIdentifier(n *ast.PrivateIdentifier) {}
func (d *dispatcher) VisitNumericLiteral(n *ast.NumericLiteral)       {}
func (d *dispatcher) VisitBigIntLiteral(n *ast.BigIntLiteral)         {}
func (d *dispatcher) VisitStringLiteral(n *ast.StringLiteral)         {}
func (d *dispatcher) VisitBooleanLiteral(n *ast.BooleanLiteral)       {}
func (d *dispatcher) VisitNullLiteral(n *ast.NullLiteral)             {}
func (d *dispatcher) VisitRegExpLiteral(n *ast.RegExpLiteral)         {}
func (d *dispatcher) VisitThisExpression(n *ast.ThisExpression)       {}
func (d *dispatcher) VisitSuperExpression(n *ast.SuperExpression)     {}

func (d *dispatcher) VisitTemplateLiteral(n *ast.TemplateLiteral) {
	for _, e := range n.Expressions {
		d.w().descend(e)
	}
}

func (d *dispatcher) VisitTaggedTemplate(n *ast.TaggedTemplateExpression) {
	d.w().descend(n.Tag)
	d.w().descend(n.Quasi)
}

func (d *dispatcher) VisitArrayExpression(n *ast.ArrayExpression) {
	for _, e := range n.Elements {
		d.w().descend(e)
	}
}

func (d *dispatcher) VisitObjectExpression(n *ast.ObjectExpression) {
	for _, p := range n.Properties {
		d.w().descend(p)
	}
}

func (d *dispatcher) VisitFunctionExpression(n *ast.FunctionExpression) {
	if n.ID != nil {
		d.w().descend(n.ID)
	}
	for _, p := range n.Params {
		d.w().descend(p)
	}
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitArrowFunctionExpression(n *ast.ArrowFunctionExpression) {
	for _, p := range n.Params {
		d.w().descend(p)
	}
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitClassExpression(n *ast.ClassExpression) {
	if n.ID != nil {
		d.w().descend(n.ID)
	}
	if n.SuperClass != nil {
		d.w().descend(n.SuperClass)
	}
	for _, m := range n.Body {
		d.w().descend(m)
	}
}

func (d *dispatcher) VisitUnaryExpression(n *ast.UnaryExpression) { d.w().descend(n.Argument) }
func (d *dispatcher) VisitUpdateExpression(n *ast.UpdateExpression) { d.w().descend(n.Argument) }

func (d *dispatcher) VisitBinaryExpression(n *ast.BinaryExpression) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
}

func (d *dispatcher) VisitLogicalExpression(n *ast.LogicalExpression) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
}

func (d *dispatcher) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
}

func (d *dispatcher) VisitConditionalExpression(n *ast.ConditionalExpression) {
	d.w().descend(n.Test)
	d.w().descend(n.Consequent)
	d.w().descend(n.Alternate)
}

func (d *dispatcher) VisitCallExpression(n *ast.CallExpression) {
	d.w().descend(n.Callee)
	for _, a := range n.Arguments {
		d.w().descend(a)
	}
}

func (d *dispatcher) VisitNewExpression(n *ast.NewExpression) {
	d.w().descend(n.Callee)
	for _, a := range n.Arguments {
		d.w().descend(a)
	}
}

func (d *dispatcher) VisitMemberExpression(n *ast.MemberExpression) {
	d.w().descend(n.Object)
	d.w().descend(n.Property)
}

func (d *dispatcher) VisitSequenceExpression(n *ast.SequenceExpression) {
	for _, e := range n.Expressions {
		d.w().descend(e)
	}
}

func (d *dispatcher) VisitSpreadElement(n *ast.SpreadElement) { d.w().descend(n.Argument) }

func (d *dispatcher) VisitYieldExpression(n *ast.YieldExpression) {
	if n.Argument != nil {
		d.w().descend(n.Argument)
	}
}

func (d *dispatcher) VisitAwaitExpression(n *ast.AwaitExpression) { d.w().descend(n.Argument) }

func (d *dispatcher) VisitParenthesizedExpression(n *ast.ParenthesizedExpression) {
	d.w().descend(n.Expression)
}

func (d *dispatcher) VisitJSXElement(n *ast.JSXElement) {
	d.w().descend(n.Name)
	for _, a := range n.Attributes {
		d.w().descend(a)
	}
	for _, c := range n.Children {
		d.w().descend(c)
	}
}

func (d *dispatcher) VisitJSXFragment(n *ast.JSXFragment) {
	for _, c := range n.Children {
		d.w().descend(c)
	}
}

func (d *dispatcher) VisitJSXAttribute(n *ast.JSXAttribute) {
	d.w().descend(n.Name)
	if n.Value != nil {
		d.w().descend(n.Value)
	}
}

func (d *dispatcher) VisitJSXSpreadAttribute(n *ast.JSXSpreadAttribute) {
	d.w().descend(n.Argument)
}

func (d *dispatcher) VisitJSXExpressionContainer(n *ast.JSXExpressionContainer) {
	if n.Expression != nil {
		d.w().descend(n.Expression)
	}
}

func (d *dispatcher) VisitJSXText(n *ast.JSXText)             {}
func (d *dispatcher) VisitJSXIdentifier(n *ast.JSXIdentifier) {}

func (d *dispatcher) VisitJSXMemberExpression(n *ast.JSXMemberExpression) {
	d.w().descend(n.Object)
	d.w().descend(n.Property)
}

func (d *dispatcher) VisitExpressionStatement(n *ast.ExpressionStatement) {
	d.w().descend(n.Expression)
}

func (d *dispatcher) VisitBlockStatement(n *ast.BlockStatement) {
	for _, s := range n.Body {
		d.w().descend(s)
	}
}

func (d *dispatcher) VisitEmptyStatement(n *ast.EmptyStatement)       {}
func (d *dispatcher) VisitDebuggerStatement(n *ast.DebuggerStatement) {}

func (d *dispatcher) VisitIfStatement(n *ast.IfStatement) {
	d.w().descend(n.Test)
	d.w().descend(n.Consequent)
	if n.Alternate != nil {
		d.w().descend(n.Alternate)
	}
}

func (d *dispatcher) VisitSwitchStatement(n *ast.SwitchStatement) {
	d.w().descend(n.Discriminant)
	for _, c := range n.Cases {
		if c.Test != nil {
			d.w().descend(c.Test)
		}
		for _, s := range c.Consequent {
			d.w().descend(s)
		}
	}
}

func (d *dispatcher) VisitForStatement(n *ast.ForStatement) {
	if n.Init != nil {
		d.w().descend(n.Init)
	}
	if n.Test != nil {
		d.w().descend(n.Test)
	}
	if n.Update != nil {
		d.w().descend(n.Update)
	}
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitForInStatement(n *ast.ForInStatement) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitForOfStatement(n *ast.ForOfStatement) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitWhileStatement(n *ast.WhileStatement) {
	d.w().descend(n.Test)
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	d.w().descend(n.Body)
	d.w().descend(n.Test)
}

func (d *dispatcher) VisitBreakStatement(n *ast.BreakStatement)       {}
func (d *dispatcher) VisitContinueStatement(n *ast.ContinueStatement) {}

func (d *dispatcher) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Argument != nil {
		d.w().descend(n.Argument)
	}
}

func (d *dispatcher) VisitThrowStatement(n *ast.ThrowStatement) { d.w().descend(n.Argument) }

func (d *dispatcher) VisitTryStatement(n *ast.TryStatement) {
	d.w().descend(n.Block)
	if n.Handler != nil {
		if n.Handler.Param != nil {
			d.w().descend(n.Handler.Param)
		}
		d.w().descend(n.Handler.Body)
	}
	if n.Finalizer != nil {
		d.w().descend(n.Finalizer)
	}
}

func (d *dispatcher) VisitLabeledStatement(n *ast.LabeledStatement) { d.w().descend(n.Body) }

func (d *dispatcher) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, decl := range n.Declarations {
		d.w().descend(decl.ID)
		if decl.Init != nil {
			d.w().descend(decl.Init)
		}
	}
}

func (d *dispatcher) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.ID != nil {
		d.w().descend(n.ID)
	}
	for _, p := range n.Params {
		d.w().descend(p)
	}
	d.w().descend(n.Body)
}

func (d *dispatcher) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.ID != nil {
		d.w().descend(n.ID)
	}
	if n.SuperClass != nil {
		d.w().descend(n.SuperClass)
	}
	for _, m := range n.Body {
		d.w().descend(m)
	}
}

func (d *dispatcher) VisitTSInterfaceDeclaration(n *ast.TSInterfaceDeclaration) {
	d.w().descend(n.ID)
	for _, e := range n.Extends {
		d.w().descend(e)
	}
}

func (d *dispatcher) VisitTSTypeAliasDeclaration(n *ast.TSTypeAliasDeclaration) {
	d.w().descend(n.ID)
}

func (d *dispatcher) VisitTSEnumDeclaration(n *ast.TSEnumDeclaration) {
	d.w().descend(n.ID)
	for _, m := range n.Members {
		if m.Initializer != nil {
			d.w().descend(m.Initializer)
		}
	}
}

func (d *dispatcher) VisitTSModuleDeclaration(n *ast.TSModuleDeclaration) {
	for _, s := range n.Body {
		d.w().descend(s)
	}
}

func (d *dispatcher) VisitImportDeclaration(n *ast.ImportDeclaration) {
	for _, s := range n.Specifiers {
		d.w().descend(s)
	}
	d.w().descend(n.Source)
}

func (d *dispatcher) VisitExportNamedDeclaration(n *ast.ExportNamedDeclaration) {
	if n.Declaration != nil {
		d.w().descend(n.Declaration)
	}
	if n.Source != nil {
		d.w().descend(n.Source)
	}
}

func (d *dispatcher) VisitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	d.w().descend(n.Declaration)
}

func (d *dispatcher) VisitExportAllDeclaration(n *ast.ExportAllDeclaration) {
	if n.Exported != nil {
		d.w().descend(n.Exported)
	}
	d.w().descend(n.Source)
}

func (d *dispatcher) VisitArrayPattern(n *ast.ArrayPattern) {
	for _, e := range n.Elements {
		if e != nil {
			d.w().descend(e)
		}
	}
}

func (d *dispatcher) VisitObjectPattern(n *ast.ObjectPattern) {
	for _, p := range n.Properties {
		d.w().descend(p)
	}
}

func (d *dispatcher) VisitAssignmentPattern(n *ast.AssignmentPattern) {
	d.w().descend(n.Left)
	d.w().descend(n.Right)
}

func (d *dispatcher) VisitRestElement(n *ast.RestElement) { d.w().descend(n.Argument) }

package printer

import "github.com/jscore-dev/jscore/internal/ast"

func (p *Printer) VisitImportDeclaration(n *ast.ImportDeclaration) {
	p.write("import ")
	if n.TypeOnly {
		p.write("type ")
	}
	var def *ast.ImportDefaultSpecifier
	var ns *ast.ImportNamespaceSpecifier
	var named []*ast.ImportSpecifier
	for _, s := range n.Specifiers {
		switch sp := s.(type) {
		case *ast.ImportDefaultSpecifier:
			def = sp
		case *ast.ImportNamespaceSpecifier:
			ns = sp
		case *ast.ImportSpecifier:
			named = append(named, sp)
		}
	}
	wroteClause := false
	if def != nil {
		p.write(def.Local.Name)
		wroteClause = true
	}
	if ns != nil {
		if wroteClause {
			p.write(", ")
		}
		p.write("* as " + ns.Local.Name)
		wroteClause = true
	} else if len(named) > 0 {
		if wroteClause {
			p.write(", ")
		}
		p.write("{ ")
		for i, s := range named {
			if i > 0 {
				p.write(", ")
			}
			if s.Imported.Name != s.Local.Name {
				p.write(s.Imported.Name + " as " + s.Local.Name)
			} else {
				p.write(s.Local.Name)
			}
		}
		p.write(" }")
		wroteClause = true
	}
	if wroteClause {
		p.write(" from ")
	}
	p.write(p.quoteString(n.Source.Value, n.Source.Raw))
}

func (p *Printer) VisitExportNamedDeclaration(n *ast.ExportNamedDeclaration) {
	p.write("export ")
	if n.Declaration != nil {
		// Bare Accept, not printStatement: endsInBrace already recurses
		// into this declaration to decide the *outer* statement's own
		// terminator, so appending one here too would double it up.
		p.printAnnotated(n.Declaration)
		return
	}
	if n.TypeOnly {
		p.write("type ")
	}
	p.write("{ ")
	for i, s := range n.Specifiers {
		if i > 0 {
			p.write(", ")
		}
		if s.Exported.Name != s.Local.Name {
			p.write(s.Local.Name + " as " + s.Exported.Name)
		} else {
			p.write(s.Local.Name)
		}
	}
	p.write(" }")
	if n.Source != nil {
		p.write(" from ")
		p.write(p.quoteString(n.Source.Value, n.Source.Raw))
	}
}

func (p *Printer) VisitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	p.write("export default ")
	switch d := n.Declaration.(type) {
	case ast.Statement:
		p.printAnnotated(d)
	case ast.Expression:
		p.printExprPrec(d, precAssignRHS, false)
	}
}

func (p *Printer) VisitExportAllDeclaration(n *ast.ExportAllDeclaration) {
	p.write("export *")
	if n.Exported != nil {
		p.write(" as " + n.Exported.Name)
	}
	p.write(" from ")
	p.write(p.quoteString(n.Source.Value, n.Source.Raw))
}

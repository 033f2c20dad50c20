package printer

import "github.com/jscore-dev/jscore/internal/ast"

// printPattern is the single entry point every binding-position caller
// (variable declarators, function/arrow params, catch params, destructuring
// targets) routes through, so the identifier type-annotation rule only
// needs to live in one place.
func (p *Printer) printPattern(pat ast.Pattern) {
	if pat == nil {
		return
	}
	if id, ok := pat.(*ast.Identifier); ok {
		p.writeSpanned(id.Name, id.Span())
		if p.opts.TypeScript && id.TypeAnnotation != nil {
			p.write(": ")
			p.printOpaque(id.TypeAnnotation)
		}
		return
	}
	p.printAnnotated(pat)
}

func (p *Printer) VisitArrayPattern(n *ast.ArrayPattern) {
	p.write("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		if el == nil {
			continue
		}
		p.printPattern(el)
	}
	p.write("]")
}

func (p *Printer) VisitObjectPattern(n *ast.ObjectPattern) {
	p.write("{")
	for i, prop := range n.Properties {
		if i > 0 {
			p.write(", ")
		}
		switch m := prop.(type) {
		case *ast.RestElement:
			p.write("...")
			p.printPattern(m.Argument)
		case *ast.ObjectPatternField:
			if m.Shorthand {
				p.printPattern(m.Value)
				continue
			}
			p.printPropertyKey(m.Key, m.Computed)
			p.write(": ")
			p.printPattern(m.Value)
		}
	}
	p.write("}")
}

func (p *Printer) VisitAssignmentPattern(n *ast.AssignmentPattern) {
	p.printPattern(n.Left)
	p.write(" = ")
	p.printExprPrec(n.Right, precAssignRHS, false)
}

func (p *Printer) VisitRestElement(n *ast.RestElement) {
	p.write("...")
	p.printPattern(n.Argument)
}

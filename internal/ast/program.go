package ast

// SourceType distinguishes a module (strict, import/export allowed) from a
// classic script, since the parser's grammar and the semantic builder's
// top-level scope kind both depend on it (§3.3, §4.3).
type SourceType int

const (
	SourceScript SourceType = iota
	SourceModule
)

// Program is the root node produced by parsing one file. Module carries
// the resolved import/export surface built while parsing; it is nil for
// SourceScript programs.
type Program struct {
	Base
	Body       []Statement
	SourceType SourceType
	Module     *ModuleRecord
}

func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

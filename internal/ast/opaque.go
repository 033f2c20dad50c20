package ast

// OpaqueType wraps a run of source the parser recognized as a TypeScript
// type-level construct without further structuring it (§ TS ambient
// declarations are intentionally opaque, see declarations.go). It carries
// only its span; nothing walks into it, since there is nothing inside it to
// walk.
type OpaqueType struct {
	Base
	Raw string
}

func (n *OpaqueType) Accept(v Visitor) {}

// Package visitor implements an ancestor-stack-aware AST walk on top of
// the ast.Visitor double-dispatch contract (§4.4). It never re-declares
// the per-kind Visit methods that every node already dispatches through;
// instead it wraps an ast.Visitor with enter/exit hooks and a Skip signal,
// the same enter_X/exit_X-pair shape funxy's analyzer drives its single
// AST walk with, generalized to the full JS/TS/JSX node set.
package visitor

import "github.com/jscore-dev/jscore/internal/ast"

// ErrSkip, when returned from an EnterFunc, causes Walk to skip the
// current node's children without treating it as a hard error.
var ErrSkip = &skipSignal{}

type skipSignal struct{}

func (*skipSignal) Error() string { return "visitor: skip subtree" }

// EnterFunc is invoked before a node's children are walked. Returning
// ErrSkip suppresses descent into this node's children; any other
// non-nil error aborts the walk and is returned from Walk.
type EnterFunc func(node ast.Node, ancestors []ast.Node) error

// ExitFunc is invoked after a node's children have been walked. It is not
// called for a node whose EnterFunc returned ErrSkip.
type ExitFunc func(node ast.Node, ancestors []ast.Node)

// Walker threads an ancestor stack through a recursive descent driven by
// dispatcher, a generated ast.Visitor implementation that calls back
// into Walker.descend for every child node it encounters.
type Walker struct {
	enter     EnterFunc
	exit      ExitFunc
	ancestors []ast.Node
	err       error
}

// Walk traverses root and every descendant reachable through Accept,
// calling enter before and exit after each node's children, threading an
// ancestor stack (innermost last) so rule implementations can answer
// "is this identifier inside a function parameter list" without their own
// bookkeeping (§4.4 "ancestor-stack-aware walk").
func Walk(root ast.Node, enter EnterFunc, exit ExitFunc) error {
	if root == nil {
		return nil
	}
	w := &Walker{enter: enter, exit: exit}
	w.descend(root)
	return w.err
}

func (w *Walker) descend(n ast.Node) {
	if n == nil || w.err != nil {
		return
	}
	if w.enter != nil {
		if err := w.enter(n, w.ancestors); err != nil {
			if err != ErrSkip {
				w.err = err
			}
			return
		}
	}
	w.ancestors = append(w.ancestors, n)
	n.Accept((*dispatcher)(w))
	w.ancestors = w.ancestors[:len(w.ancestors)-1]
	if w.err == nil && w.exit != nil {
		w.exit(n, w.ancestors)
	}
}

// Ancestors returns the stack of nodes currently enclosing the node being
// visited, outermost first, innermost (immediate parent) last.
func Ancestors(ancestors []ast.Node) []ast.Node { return ancestors }

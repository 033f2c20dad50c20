package linter

import (
	"sort"

	"github.com/jscore-dev/jscore/internal/span"
)

// Fixer collects the edits a rule proposes for one diagnostic. It carries
// no source access itself — a rule computes replacement text from spans
// it already holds on the AST — keeping the recording step a pure
// accumulator the engine applies later, independent of how or when the
// rule decided to fix (§4.8 "Fixer").
type Fixer struct {
	edits []Edit
}

func (f *Fixer) Insert(at uint32, text string) {
	f.edits = append(f.edits, Edit{Span: span.New(at, at), Replacement: text})
}

func (f *Fixer) Replace(s span.Span, text string) {
	f.edits = append(f.edits, Edit{Span: s, Replacement: text})
}

func (f *Fixer) Delete(s span.Span) {
	f.edits = append(f.edits, Edit{Span: s, Replacement: ""})
}

// ApplyFixes applies every safe fix (and every dangerous fix too, if
// allowDangerous) attached to diags onto source, rejecting any edit that
// overlaps one already accepted from an earlier-emitted diagnostic —
// rule order plus declared safety stands in for a more exact priority
// rule, since nothing here distinguishes two same-priority rules further
// (§4.8 "overlapping edits are rejected or merged per a priority rule").
// Accepted edits are applied right-to-left so earlier spans stay valid as
// later ones are rewritten.
func ApplyFixes(source []byte, diags []Diagnostic, allowDangerous bool) []byte {
	type ranked struct {
		Edit
		priority int
	}
	var candidates []ranked
	for i, d := range diags {
		if d.Fix == nil {
			continue
		}
		if d.Fix.Dangerous && !allowDangerous {
			continue
		}
		for _, e := range d.Fix.Edits {
			candidates = append(candidates, ranked{Edit: e, priority: i})
		}
	}
	var accepted []ranked
	for _, c := range candidates {
		overlaps := false
		for _, a := range accepted {
			if c.Span.Start < a.Span.End && a.Span.Start < c.Span.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Span.Start > accepted[j].Span.Start
	})
	out := append([]byte(nil), source...)
	for _, c := range accepted {
		var buf []byte
		buf = append(buf, out[:c.Span.Start]...)
		buf = append(buf, c.Replacement...)
		buf = append(buf, out[c.Span.End:]...)
		out = buf
	}
	return out
}

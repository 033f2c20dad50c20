// Package span implements the byte-offset spans (§3.2) that every AST node
// carries, plus lazy line/column resolution over the original source.
package span

import "sort"

// Span is a half-open [Start, End) byte range into the original source.
type Span struct {
	Start uint32
	End   uint32
}

// New builds a Span, panicking on an inverted range — a parser bug, not a
// recoverable condition.
func New(start, end uint32) Span {
	if end < start {
		panic("span: end before start")
	}
	return Span{Start: start, End: end}
}

// Contains reports whether child lies entirely within s (the span-
// containment invariant of §3.3/§8).
func (s Span) Contains(child Span) bool {
	return s.Start <= child.Start && child.End <= s.End
}

// Len returns the span's byte length.
func (s Span) Len() uint32 { return s.End - s.Start }

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Union returns the smallest span containing both a and b.
func Union(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// Position is a 1-based line and 1-based column, the column counted in
// UTF-8 bytes from the start of the line (see SourceMap.Position); the core
// itself is byte-offset based and only resolves positions on demand.
type Position struct {
	Line   uint32
	Column uint32
}

// SourceMap resolves byte offsets into the original source to (line, column)
// on demand. It is not a source-map in the "generate a .map file" sense —
// that serialization step is an external collaborator's job (§1) — it is
// the rope-like line index described in §3.2/§3.3.
type SourceMap struct {
	source      string
	lineOffsets []uint32 // lineOffsets[i] = byte offset of line i's first byte (0-based)
	built       bool
}

// NewSourceMap wraps source; the line index is built lazily on first query.
func NewSourceMap(source string) *SourceMap {
	return &SourceMap{source: source}
}

func (sm *SourceMap) ensureBuilt() {
	if sm.built {
		return
	}
	offsets := []uint32{0}
	for i := 0; i < len(sm.source); i++ {
		if sm.source[i] == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	sm.lineOffsets = offsets
	sm.built = true
}

// Position resolves a byte offset to a 1-based (line, column) pair. Column
// counts UTF-8 bytes from the start of the line; callers needing UTF-16
// columns (LSP) convert externally, since that conversion is part of the
// excluded LSP plumbing (§1).
func (sm *SourceMap) Position(offset uint32) Position {
	sm.ensureBuilt()
	idx := sort.Search(len(sm.lineOffsets), func(i int) bool {
		return sm.lineOffsets[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return Position{
		Line:   uint32(idx) + 1,
		Column: offset - sm.lineOffsets[idx] + 1,
	}
}

// Range resolves a Span into a pair of Positions.
func (sm *SourceMap) Range(s Span) (start, end Position) {
	return sm.Position(s.Start), sm.Position(s.End)
}

// LineCount returns the number of lines in the source (at least 1).
func (sm *SourceMap) LineCount() int {
	sm.ensureBuilt()
	return len(sm.lineOffsets)
}

package hir

// BlockMap is HIRFunction's block table: dense like internal/semantic's
// Symbols/References slices, but blocks can be removed (cfg.go's
// consecutive-block merge, dce.go's unreachable-block prune) without the
// remaining ids shifting, so a plain slice indexed by BlockId doesn't work;
// this keeps insertion order in a slice alongside a map for O(1) id
// lookup; Remove also scans the order slice, so deletion is linear.
type BlockMap struct {
	blocks map[BlockId]*Block
	order  []BlockId
	next   BlockId
}

// NewBlockMap returns an empty map ready for use.
func NewBlockMap() *BlockMap {
	return &BlockMap{blocks: make(map[BlockId]*Block)}
}

// New allocates a fresh Block with the next free id, registers it, and
// returns it.
func (m *BlockMap) New() *Block {
	b := &Block{ID: m.next}
	m.blocks[b.ID] = b
	m.order = append(m.order, b.ID)
	m.next++
	return b
}

// Get returns the block with id, or nil if it was never added or has
// since been removed.
func (m *BlockMap) Get(id BlockId) *Block {
	return m.blocks[id]
}

// Remove deletes id from the map, including from iteration order; callers
// doing this must already have redirected every surviving edge to id away
// from it (cfg.go's merge folds id's successor's contents in before
// removing it, never the other way around).
func (m *BlockMap) Remove(id BlockId) {
	delete(m.blocks, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Order returns the block ids in the order they were created, which
// pipeline stages use as a stable, deterministic traversal order (the
// entry block first, since build.go always allocates it before any other).
func (m *BlockMap) Order() []BlockId {
	return m.order
}

// Len reports how many blocks remain in the map.
func (m *BlockMap) Len() int {
	return len(m.order)
}

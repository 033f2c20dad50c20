package arena

import (
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"
)

// BlockAlign is the alignment every FixedChunk's start address is rounded
// up to, so a raw pointer into it can be shared with an external runtime
// (§3.1, §4.7). 4096 matches the common page size.
const BlockAlign = 4096

// BufferSize is the fixed size of one plugin-bridge arena chunk (§3.1).
// 1 MiB comfortably holds one file's AST for the overwhelming majority of
// real-world source files, matching the "4-8x source size" resource policy
// of §5 for files up to ~128KB.
const BufferSize = 1 << 20

// chunkMeta lives at a fixed offset within the chunk (§3.1: "Metadata...
// lives at a known offset within the chunk").
type chunkMeta struct {
	bufferID uuid.UUID
	sent     atomic.Bool // "sent-to-foreign-runtime" flag, set atomically once
	refcount atomic.Int32
}

// FixedChunk is one BUFFER_SIZE, BLOCK_ALIGN-aligned allocation owned by a
// single worker unit, shareable by raw pointer with an external process
// (§3.1, §4.7 zero-copy protocol).
type FixedChunk struct {
	raw  []byte // over-allocated to guarantee alignment
	data []byte // the aligned, BufferSize-length window into raw
	meta chunkMeta
}

// Acquire reserves one fresh, page-aligned chunk with a new buffer id and a
// refcount of 1 (the core's own reference); the "sent" flag starts cleared.
func Acquire() *FixedChunk {
	raw := make([]byte, BufferSize+BlockAlign)
	addr := uintptrOf(raw)
	pad := (BlockAlign - int(addr%BlockAlign)) % BlockAlign
	c := &FixedChunk{raw: raw, data: raw[pad : pad+BufferSize]}
	c.meta.bufferID = uuid.New()
	c.meta.refcount.Store(1)
	return c
}

// BufferID returns the chunk's stable identifier, sent once to the foreign
// runtime and referenced by id on every subsequent call (§4.7).
func (c *FixedChunk) BufferID() uuid.UUID { return c.meta.bufferID }

// Bytes exposes the chunk's data window. Returning a Go slice rather than a
// bare unsafe.Pointer keeps in-process callers (tests, same-process
// embedding) memory-safe; the package exposes no separate raw-pointer
// accessor, so a bridge transport takes the address of this slice itself.
func (c *FixedChunk) Bytes() []byte { return c.data }

// Len is the fixed chunk payload length, always BufferSize.
func (c *FixedChunk) Len() int { return len(c.data) }

// MarkSent atomically sets the "sent-to-foreign" flag and bumps the
// refcount exactly once; it reports whether this call was the one that
// transitioned the flag (i.e., whether the raw buffer must actually be
// transmitted, vs. a cache hit on buffer_id alone) — the protocol in §4.7.
func (c *FixedChunk) MarkSent() (firstSend bool) {
	if c.meta.sent.CompareAndSwap(false, true) {
		c.meta.refcount.Add(1)
		return true
	}
	return false
}

// Release relinquishes one reference. The chunk's backing memory is only
// eligible for reuse once both the core and (if ever sent) the foreign
// runtime have relinquished it (§4.1 "release() frees the chunk only after
// both owners have relinquished it").
func (c *FixedChunk) Release() (fullyReleased bool) {
	return c.meta.refcount.Add(-1) <= 0
}

func uintptrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

package arena

import "testing"

type node struct {
	A int64
	B int64
}

func TestAllocGrowsAndZeroes(t *testing.T) {
	a := New()
	for i := 0; i < 10000; i++ {
		n := Alloc[node](a)
		if n.A != 0 || n.B != 0 {
			t.Fatalf("expected zeroed node, got %+v", n)
		}
		n.A = int64(i)
	}
	stats := a.Stats()
	if stats.Allocations != 10000 {
		t.Fatalf("expected 10000 allocations, got %d", stats.Allocations)
	}
}

func TestAllocStringCopiesBytes(t *testing.T) {
	a := New()
	src := []byte("hello")
	s := a.AllocString(string(src))
	src[0] = 'H' // mutate original; arena copy must be unaffected
	if s != "hello" {
		t.Fatalf("expected arena copy to be immune to source mutation, got %q", s)
	}
}

func TestReset(t *testing.T) {
	a := New()
	Alloc[node](a)
	Alloc[node](a)
	a.Reset()
	if a.Stats().Allocations != 0 {
		t.Fatalf("expected 0 allocations after reset")
	}
}

func TestFixedChunkSentFlagAndRefcount(t *testing.T) {
	c := Acquire()
	if len(c.Bytes()) != BufferSize {
		t.Fatalf("expected chunk of %d bytes, got %d", BufferSize, len(c.Bytes()))
	}
	if !c.MarkSent() {
		t.Fatalf("expected first MarkSent to report true")
	}
	if c.MarkSent() {
		t.Fatalf("expected second MarkSent to report false (already sent)")
	}
	if c.Release() {
		t.Fatalf("expected chunk to still be referenced by the foreign runtime")
	}
	if !c.Release() {
		t.Fatalf("expected final release to report fully released")
	}
}

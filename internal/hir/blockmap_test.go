package hir_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/hir"
)

func TestBlockMapRemovePreservesCreationOrder(t *testing.T) {
	m := hir.NewBlockMap()
	b0 := m.New()
	b1 := m.New()
	b2 := m.New()

	m.Remove(b1.ID)

	if m.Len() != 2 {
		t.Fatalf("want 2 blocks after removing one of 3, got %d", m.Len())
	}
	if m.Get(b1.ID) != nil {
		t.Fatalf("want the removed block gone from Get")
	}
	order := m.Order()
	if len(order) != 2 || order[0] != b0.ID || order[1] != b2.ID {
		t.Fatalf("want order [%d %d], got %v", b0.ID, b2.ID, order)
	}
}

func TestBlockMapNewAssignsDenseIncreasingIds(t *testing.T) {
	m := hir.NewBlockMap()
	first := m.New()
	second := m.New()
	if second.ID != first.ID+1 {
		t.Fatalf("want consecutive ids, got %d then %d", first.ID, second.ID)
	}
}

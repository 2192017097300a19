package history

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"dishseed/models"
)

func rec(i int) models.Record {
	return models.Record{Name: fmt.Sprintf("dish-%d", i), Category: "Thai"}
}

func TestPickOnEmpty(t *testing.T) {
	h := New(3)
	if _, ok := h.Pick(rand.New(rand.NewPCG(1, 2))); ok {
		t.Fatal("empty history must not return a record")
	}
}

func TestEvictsOldest(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Add(rec(i))
	}
	if h.Len() != 3 {
		t.Fatalf("expected len 3, got %d", h.Len())
	}
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		r, ok := h.Pick(rng)
		if !ok {
			t.Fatal("expected a record")
		}
		seen[r.Name] = true
	}
	for _, evicted := range []string{"dish-0", "dish-1"} {
		if seen[evicted] {
			t.Errorf("%s should have been evicted", evicted)
		}
	}
	for _, kept := range []string{"dish-2", "dish-3", "dish-4"} {
		if !seen[kept] {
			t.Errorf("%s was never picked", kept)
		}
	}
}

func TestNonPositiveCapacity(t *testing.T) {
	h := New(0)
	h.Add(rec(1))
	h.Add(rec(2))
	if h.Len() != 1 || h.Cap() != 1 {
		t.Fatalf("expected capacity clamp to 1, got len=%d cap=%d", h.Len(), h.Cap())
	}
}

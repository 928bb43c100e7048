package registry_test

import (
	"fmt"
	"testing"

	"shadow-demo/internal/registry"
)

type item struct {
	id    string
	value int
}

func (i *item) ID() string { return i.id }

func TestRegisterThenAll(t *testing.T) {
	r := registry.New[*item]()
	r.Register(&item{id: "b"})
	r.Register(&item{id: "a"})
	r.Register(&item{id: "c"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	for i, want := range []string{"a", "b", "c"} {
		if all[i].ID() != want {
			t.Errorf("Entry %d: expected %q, got %q", i, want, all[i].ID())
		}
	}
}

func TestRegisterOverwrites(t *testing.T) {
	r := registry.New[*item]()
	first := &item{id: "x", value: 1}
	second := &item{id: "x", value: 2}

	if _, replaced := r.Register(first); replaced {
		t.Fatalf("First registration should not replace anything")
	}
	prev, replaced := r.Register(second)
	if !replaced || prev != first {
		t.Fatalf("Expected second registration to replace the first")
	}
	if r.Len() != 1 {
		t.Fatalf("Expected 1 entry after overwrite, got %d", r.Len())
	}
	got, _ := r.Get("x")
	if got.value != 2 {
		t.Errorf("Expected last write to win, got value %d", got.value)
	}
}

func TestDeregister(t *testing.T) {
	r := registry.New[*item]()
	r.Register(&item{id: "a"})
	r.Register(&item{id: "b"})

	if _, ok := r.Deregister("a"); !ok {
		t.Fatalf("Expected a to be removed")
	}
	for _, e := range r.All() {
		if e.ID() == "a" {
			t.Errorf("Deregistered entry still listed")
		}
	}

	// Unknown identifiers are a no-op, repeatedly.
	for i := 0; i < 2; i++ {
		if _, ok := r.Deregister("a"); ok {
			t.Errorf("Deregistering a missing id reported a removal")
		}
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", r.Len())
	}
}

func TestAllIsSnapshot(t *testing.T) {
	r := registry.New[*item]()
	for i := 0; i < 5; i++ {
		r.Register(&item{id: fmt.Sprintf("m%d", i)})
	}

	visited := 0
	for _, e := range r.All() {
		visited++
		// Removing entries mid-iteration must not disturb the snapshot.
		r.Deregister(e.ID())
		r.Deregister("m4")
	}
	if visited != 5 {
		t.Errorf("Expected to visit 5 entries, visited %d", visited)
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", r.Len())
	}
}

func BenchmarkAll(b *testing.B) {
	r := registry.New[*item]()
	for i := 0; i < 64; i++ {
		r.Register(&item{id: fmt.Sprintf("model-%02d", i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.All()
	}
}

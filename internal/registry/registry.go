package registry

import "sort"

// Identifiable is anything that can be stored in a Registry.
type Identifiable interface {
	ID() string
}

// Registry is a keyed collection of entities. Registering an identifier that
// is already present replaces the previous entry.
type Registry[T Identifiable] struct {
	entries map[string]T
}

// New creates an empty registry.
func New[T Identifiable]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register inserts e under its identifier. The replaced entry, if any, is
// returned so owners can release it.
func (r *Registry[T]) Register(e T) (prev T, replaced bool) {
	id := e.ID()
	prev, replaced = r.entries[id]
	r.entries[id] = e
	return prev, replaced
}

// Deregister removes the entry stored under id. Unknown identifiers are ignored.
func (r *Registry[T]) Deregister(id string) (T, bool) {
	e, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return e, ok
}

// Get returns the entry stored under id.
func (r *Registry[T]) Get(id string) (T, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// IDs returns the registered identifiers in ascending order.
func (r *Registry[T]) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns a snapshot of the entries ordered by identifier. The slice is
// owned by the caller, so the registry may be mutated while iterating it.
func (r *Registry[T]) All() []T {
	ids := r.IDs()
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = r.entries[id]
	}
	return out
}

// Clear removes every entry.
func (r *Registry[T]) Clear() {
	for id := range r.entries {
		delete(r.entries, id)
	}
}

package model

import (
	"shadow-demo/internal/profiling"
	"shadow-demo/internal/registry"
)

// Manager owns the registered models for the lifetime of a session.
type Manager struct {
	models *registry.Registry[Model]
}

// NewManager creates an empty model manager.
func NewManager() *Manager {
	return &Manager{
		models: registry.New[Model](),
	}
}

// Register adds m and runs its Init hook. A model registered under the same
// identifier is replaced and deinitialized.
func (mm *Manager) Register(m Model) {
	prev, replaced := mm.models.Register(m)
	if replaced && prev != m {
		prev.Deinit()
	}
	m.Init()
}

// Deregister removes the model stored under id and runs its Deinit hook.
// Unknown identifiers are ignored.
func (mm *Manager) Deregister(id string) {
	if m, ok := mm.models.Deregister(id); ok {
		m.Deinit()
	}
}

// DeregisterModel removes m if it is the model registered under its identifier.
func (mm *Manager) DeregisterModel(m Model) {
	if cur, ok := mm.models.Get(m.ID()); ok && cur == m {
		mm.Deregister(m.ID())
	}
}

// Get returns the model registered under id.
func (mm *Manager) Get(id string) (Model, bool) {
	return mm.models.Get(id)
}

// Contains reports whether m itself is still registered.
func (mm *Manager) Contains(m Model) bool {
	cur, ok := mm.models.Get(m.ID())
	return ok && cur == m
}

// All returns a snapshot of the registered models ordered by identifier.
func (mm *Manager) All() []Model {
	return mm.models.All()
}

// Len returns the number of registered models.
func (mm *Manager) Len() int {
	return mm.models.Len()
}

// UpdateAll runs one update pass over a snapshot of the models. Models
// removed earlier in the same pass are skipped.
func (mm *Manager) UpdateAll(dt float64) {
	defer profiling.Track("model.UpdateAll")()
	for _, m := range mm.models.All() {
		if !mm.Contains(m) {
			continue
		}
		m.Update(dt)
	}
}

// Clear deregisters every model.
func (mm *Manager) Clear() {
	for _, id := range mm.models.IDs() {
		mm.Deregister(id)
	}
}

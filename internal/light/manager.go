package light

import (
	"fmt"

	"shadow-demo/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// Allocator creates and destroys shadow buffers on the graphics backend.
type Allocator interface {
	Allocate(v Variant) (ShadowBuffer, error)
	Release(b ShadowBuffer)
}

// Programs holds the shadow pass shader for each variant.
type Programs struct {
	Simple uint32
	Cube   uint32
}

// For returns the program for the given variant.
func (p Programs) For(v Variant) uint32 {
	if v == Cube {
		return p.Cube
	}
	return p.Simple
}

// Manager owns the registered lights and the placeholder lights used to fill
// unused shadow sampler slots.
type Manager struct {
	lights    *registry.Registry[*Light]
	alloc     Allocator
	programs  Programs
	deadLight map[Variant]*Light
}

// NewManager creates a light manager and allocates one placeholder per variant.
func NewManager(alloc Allocator, programs Programs) (*Manager, error) {
	m := &Manager{
		lights:    registry.New[*Light](),
		alloc:     alloc,
		programs:  programs,
		deadLight: make(map[Variant]*Light, len(Variants)),
	}

	dead := []*Light{
		NewSimple("::DeadSimpleLight", mgl32.Vec3{}, mgl32.Vec3{0, -1, 0}),
		NewCube("::DeadCubeLight", mgl32.Vec3{}),
	}
	for _, l := range dead {
		if err := m.prepare(l); err != nil {
			m.Close()
			return nil, fmt.Errorf("placeholder %s light: %w", l.variant, err)
		}
		m.deadLight[l.variant] = l
	}
	return m, nil
}

func (m *Manager) prepare(l *Light) error {
	if !l.buffer.Valid() {
		b, err := m.alloc.Allocate(l.variant)
		if err != nil {
			return err
		}
		l.buffer = b
	}
	if l.Program == 0 {
		l.Program = m.programs.For(l.variant)
	}
	return nil
}

// Register adds a light, allocating its shadow buffer on first registration.
// A light already registered under the same identifier is replaced and its
// shadow buffer released.
func (m *Manager) Register(l *Light) error {
	if err := m.prepare(l); err != nil {
		return fmt.Errorf("register light %q: %w", l.id, err)
	}
	if prev, replaced := m.lights.Register(l); replaced && prev != l {
		m.release(prev)
	}
	return nil
}

// Deregister removes a light and releases its shadow buffer. Unknown
// identifiers are ignored.
func (m *Manager) Deregister(id string) {
	if l, ok := m.lights.Deregister(id); ok {
		m.release(l)
	}
}

// DeregisterLight removes l if it is the light registered under its identifier.
func (m *Manager) DeregisterLight(l *Light) {
	if cur, ok := m.lights.Get(l.id); ok && cur == l {
		m.Deregister(l.id)
	}
}

func (m *Manager) release(l *Light) {
	if l.buffer.Valid() {
		m.alloc.Release(l.buffer)
		l.buffer = ShadowBuffer{}
	}
}

// Get returns the light registered under id.
func (m *Manager) Get(id string) (*Light, bool) {
	return m.lights.Get(id)
}

// All returns the registered lights ordered by identifier. Placeholders are
// never included.
func (m *Manager) All() []*Light {
	return m.lights.All()
}

// Len returns the number of registered lights.
func (m *Manager) Len() int {
	return m.lights.Len()
}

// Placeholder returns the dead light of the given variant.
func (m *Manager) Placeholder(v Variant) *Light {
	return m.deadLight[v]
}

// Close releases every shadow buffer, placeholders included.
func (m *Manager) Close() {
	for _, l := range m.lights.All() {
		m.release(l)
	}
	m.lights.Clear()
	for _, l := range m.deadLight {
		m.release(l)
	}
}

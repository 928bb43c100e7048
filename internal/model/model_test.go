package model_test

import (
	"testing"

	"shadow-demo/internal/model"
	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// probe records lifecycle calls and can remove other models while updating.
type probe struct {
	model.Base
	manager *model.Manager
	removes []string
	updates int
	inits   int
	deinits int
}

func newProbe(id string, mm *model.Manager, removes ...string) *probe {
	return &probe{
		Base:    model.NewBase(id, "Probe", model.Drawable{}),
		manager: mm,
		removes: removes,
	}
}

func (p *probe) Init() { p.inits++ }
func (p *probe) Deinit() { p.deinits++ }

func (p *probe) Update(dt float64) {
	p.updates++
	for _, id := range p.removes {
		p.manager.Deregister(id)
	}
}

func TestRegisterRunsHooks(t *testing.T) {
	mm := model.NewManager()
	p := newProbe("a", mm)
	mm.Register(p)
	if p.inits != 1 {
		t.Fatalf("Expected Init once, got %d", p.inits)
	}

	mm.Deregister("a")
	mm.Deregister("a")
	if p.deinits != 1 {
		t.Errorf("Expected Deinit once, got %d", p.deinits)
	}
}

func TestRegisterReplaces(t *testing.T) {
	mm := model.NewManager()
	first := newProbe("a", mm)
	second := newProbe("a", mm)
	mm.Register(first)
	mm.Register(second)

	if first.deinits != 1 {
		t.Errorf("Expected replaced model to be deinitialized")
	}
	if got, _ := mm.Get("a"); got != second {
		t.Errorf("Expected last registration to win")
	}

	mm.DeregisterModel(first)
	if mm.Len() != 1 {
		t.Errorf("Stale instance removed the current model")
	}
}

func TestUpdateAllToleratesRemoval(t *testing.T) {
	mm := model.NewManager()
	// "a" updates first and removes itself and "c".
	a := newProbe("a", mm, "a", "c")
	b := newProbe("b", mm)
	c := newProbe("c", mm)
	mm.Register(a)
	mm.Register(b)
	mm.Register(c)

	mm.UpdateAll(0.016)

	if a.updates != 1 || b.updates != 1 {
		t.Errorf("Expected a and b to update once, got %d and %d", a.updates, b.updates)
	}
	if c.updates != 0 {
		t.Errorf("Removed model was still updated")
	}
	if mm.Len() != 1 {
		t.Errorf("Expected 1 model left, got %d", mm.Len())
	}
}

func TestMatrixAndCollider(t *testing.T) {
	b := model.NewBase("m", "Thing", model.Drawable{})
	b.Position = mgl32.Vec3{1, 2, 3}
	b.Scale = mgl32.Vec3{2, 0.5, 1}

	p := b.Matrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	want := mgl32.Vec4{3, 2.5, 4, 1}
	if !p.ApproxEqual(want) {
		t.Errorf("Expected %v, got %v", want, p)
	}

	c := b.Collider()
	if c.Type != physics.ShapeSphere || c.Radius != 2 || c.Center != b.Position {
		t.Errorf("Unexpected sphere collider %+v", c)
	}

	b.Shape = physics.ShapeBox
	c = b.Collider()
	if c.Type != physics.ShapeBox || c.HalfExtents != (mgl32.Vec3{2, 0.5, 1}) {
		t.Errorf("Unexpected box collider %+v", c)
	}
}

func TestClear(t *testing.T) {
	mm := model.NewManager()
	p := newProbe("a", mm)
	mm.Register(p)
	mm.Register(newProbe("b", mm))
	mm.Clear()
	if mm.Len() != 0 || p.deinits != 1 {
		t.Errorf("Expected Clear to deinit and remove every model")
	}
}

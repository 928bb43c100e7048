package entity_test

import (
	"testing"

	"shadow-demo/internal/config"
	"shadow-demo/internal/entity"
	"shadow-demo/internal/input"
	"shadow-demo/internal/light"
	"shadow-demo/internal/model"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeInput struct {
	held    map[input.Action]bool
	pressed map[input.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    make(map[input.Action]bool),
		pressed: make(map[input.Action]bool),
	}
}

func (f *fakeInput) IsActive(a input.Action) bool { return f.held[a] }
func (f *fakeInput) JustPressed(a input.Action) bool { return f.pressed[a] }

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

type fakeAllocator struct {
	next uint32
	live int
}

func (a *fakeAllocator) Allocate(v light.Variant) (light.ShadowBuffer, error) {
	a.next++
	a.live++
	return light.ShadowBuffer{Framebuffer: a.next, Texture: a.next, Width: 8, Height: 8, Variant: v}, nil
}

func (a *fakeAllocator) Release(b light.ShadowBuffer) {
	a.live--
}

type fixture struct {
	world *entity.World
	input *fakeInput
	clock *fakeClock
	alloc *fakeAllocator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	alloc := &fakeAllocator{}
	lights, err := light.NewManager(alloc, light.Programs{Simple: 1, Cube: 2})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	f := &fixture{input: newFakeInput(), clock: &fakeClock{now: 5}, alloc: alloc}
	f.world = entity.NewWorld(model.NewManager(), lights, f.input, f.clock, entity.Assets{})
	return f
}

func TestShotExpiresPastBoundary(t *testing.T) {
	f := newFixture(t)
	shot := entity.NewShot(f.world, mgl32.Vec3{0, 0, -49.9})
	f.world.Models.Register(shot)

	shot.Update(0.002)

	if f.world.Models.Contains(shot) {
		t.Fatalf("Expected shot at z=%.2f to be deregistered", shot.Position.Z())
	}
	for _, m := range f.world.Models.All() {
		if m == model.Model(shot) {
			t.Fatalf("All() still returns the expired shot")
		}
	}
	if _, ok := f.world.Lights.Get(shot.LightID()); ok {
		t.Errorf("Expected shot light to be removed with the shot")
	}
}

func TestShotMovesTowardsBoundary(t *testing.T) {
	f := newFixture(t)
	shot := entity.NewShot(f.world, mgl32.Vec3{0, 0, 0})
	f.world.Models.Register(shot)

	shot.Update(0.1)

	if !f.world.Models.Contains(shot) {
		t.Fatalf("Shot inside the boundary must stay registered")
	}
	if z := shot.Position.Z(); z > -9.99 || z < -10.01 {
		t.Errorf("Expected z=-10, got %v", z)
	}
	l := shot.Light()
	if l == nil {
		t.Fatalf("Expected a light attached while the toggle is on")
	}
	if l.ID() != shot.ID()+"::ShotLight" || l.Variant() != light.Cube {
		t.Errorf("Unexpected shot light %q (%s)", l.ID(), l.Variant())
	}
	if !l.Position.ApproxEqual(shot.Position) {
		t.Errorf("Light at %v does not follow shot at %v", l.Position, shot.Position)
	}
}

func TestToggleDebounce(t *testing.T) {
	toggle := entity.NewShotLightToggle()
	if !toggle.Enabled() {
		t.Fatalf("Expected toggle to start enabled")
	}

	if !toggle.Toggle(1.0) {
		t.Fatalf("First toggle must take effect")
	}
	if toggle.Toggle(1.4) {
		t.Errorf("Toggle 0.4s later must be ignored")
	}
	if toggle.Enabled() {
		t.Errorf("Expected exactly one flip, toggle is enabled again")
	}
	if !toggle.Toggle(1.6) {
		t.Errorf("Toggle after the interval must take effect")
	}
}

func TestToggleIsSharedAcrossShots(t *testing.T) {
	f := newFixture(t)
	a := entity.NewShot(f.world, mgl32.Vec3{-10, 0, 0})
	b := entity.NewShot(f.world, mgl32.Vec3{10, 0, 0})
	f.world.Models.Register(a)
	f.world.Models.Register(b)
	if a.Light() == nil || b.Light() == nil {
		t.Fatalf("Expected both shots to start with lights")
	}

	// Both shots see the same key press in one frame.
	f.input.pressed[input.ActionToggleShotLight] = true
	f.world.Models.UpdateAll(0.01)

	if f.world.ShotLights.Enabled() {
		t.Fatalf("Expected one flip to off for the whole frame")
	}
	if a.Light() != nil || b.Light() != nil {
		t.Errorf("Expected both lights detached")
	}
	if f.world.Lights.Len() != 0 {
		t.Errorf("Expected no registered lights, got %d", f.world.Lights.Len())
	}

	// Pressed again 0.4s later: ignored.
	f.clock.now += 0.4
	f.world.Models.UpdateAll(0.01)
	if f.world.ShotLights.Enabled() {
		t.Errorf("Toggle within the debounce interval took effect")
	}
}

func TestShotHitsOverlappingEnemyOnly(t *testing.T) {
	f := newFixture(t)
	shot := entity.NewShot(f.world, mgl32.Vec3{0, 0, 0})
	hit := entity.NewEnemy(f.world, mgl32.Vec3{0, 0, -1}, 0)
	miss := entity.NewEnemy(f.world, mgl32.Vec3{0, 0, -20}, 0)
	for _, m := range []model.Model{shot, hit, miss} {
		f.world.Models.Register(m)
	}

	shot.Update(0.001)

	if f.world.Models.Contains(shot) {
		t.Errorf("Expected shot to be deregistered")
	}
	if f.world.Models.Contains(hit) {
		t.Errorf("Expected overlapping enemy to be deregistered")
	}
	if !f.world.Models.Contains(miss) {
		t.Errorf("Expected distant enemy to remain registered")
	}
	if f.alloc.live != 2 {
		t.Errorf("Expected only the placeholder buffers to remain, %d live", f.alloc.live)
	}
}

func TestShotResolvesOneCollisionPerUpdate(t *testing.T) {
	f := newFixture(t)
	shot := entity.NewShot(f.world, mgl32.Vec3{0, 0, 0})
	first := entity.NewEnemy(f.world, mgl32.Vec3{0.5, 0, 0}, 0)
	second := entity.NewEnemy(f.world, mgl32.Vec3{-0.5, 0, 0}, 0)
	for _, m := range []model.Model{shot, first, second} {
		f.world.Models.Register(m)
	}

	shot.Update(0)

	if f.world.Count(entity.NameEnemy) != 1 {
		t.Errorf("Expected exactly one enemy destroyed, %d left", f.world.Count(entity.NameEnemy))
	}
}

func TestShipFiresWithCooldown(t *testing.T) {
	f := newFixture(t)
	ship := entity.NewShip(f.world)
	f.world.Models.Register(ship)

	f.input.held[input.ActionFire] = true
	ship.Update(0.01)
	ship.Update(0.01)
	if n := f.world.Count(entity.NameShot); n != 1 {
		t.Fatalf("Expected 1 shot within the cooldown, got %d", n)
	}

	ship.Update(config.ShipFireCooldown)
	if n := f.world.Count(entity.NameShot); n != 2 {
		t.Errorf("Expected 2 shots after the cooldown, got %d", n)
	}
}

func TestShipStaysInBounds(t *testing.T) {
	f := newFixture(t)
	ship := entity.NewShip(f.world)
	f.input.held[input.ActionMoveRight] = true

	ship.Update(10)

	if x := ship.Position.X(); x != config.ShipBoundX {
		t.Errorf("Expected ship clamped at %v, got %v", config.ShipBoundX, x)
	}
}

func TestSpawnWave(t *testing.T) {
	f := newFixture(t)
	enemies := entity.SpawnWave(f.world)

	want := config.EnemyColumns * config.EnemyRows
	if len(enemies) != want || f.world.Count(entity.NameEnemy) != want {
		t.Fatalf("Expected %d enemies, got %d registered", want, f.world.Count(entity.NameEnemy))
	}

	f.world.Models.UpdateAll(0.5)
	for _, e := range enemies {
		if d := e.Position.Sub(enemies[0].Position).Y(); d != 0 {
			t.Errorf("Enemies must stay on their row height, %s off by %v", e.ID(), d)
		}
	}
}

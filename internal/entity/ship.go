package entity

import (
	"shadow-demo/internal/config"
	"shadow-demo/internal/input"
	"shadow-demo/internal/model"
	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Ship is the player. It strafes on X and fires shots while Fire is held.
type Ship struct {
	model.Base

	world    *World
	cooldown float64
}

func NewShip(w *World) *Ship {
	s := &Ship{
		Base:  model.NewBase(NameShip, NameShip, w.Assets.Ship),
		world: w,
	}
	s.Position = mgl32.Vec3{0, 1, config.ShipZ}
	s.Scale = mgl32.Vec3{1.2, 0.4, 1.6}
	s.Shape = physics.ShapeBox
	return s
}

func (s *Ship) Update(dt float64) {
	in := s.world.Input

	dir := float32(0)
	if in.IsActive(input.ActionMoveLeft) {
		dir--
	}
	if in.IsActive(input.ActionMoveRight) {
		dir++
	}
	x := s.Position.X() + dir*float32(config.ShipSpeed*dt)
	s.Position[0] = mgl32.Clamp(x, -config.ShipBoundX, config.ShipBoundX)

	s.cooldown -= dt
	if s.cooldown <= 0 && in.IsActive(input.ActionFire) {
		s.Fire()
	}
}

// Fire spawns a shot just ahead of the ship and restarts the cooldown.
func (s *Ship) Fire() *Shot {
	s.cooldown = config.ShipFireCooldown
	muzzle := s.Position.Sub(mgl32.Vec3{0, 0, s.Scale.Z() + config.ShotRadius})
	shot := NewShot(s.world, muzzle)
	s.world.Models.Register(shot)
	return shot
}

// Ground is the static plane that receives shadows.
type Ground struct {
	model.Base
}

func NewGround(w *World, halfSize float32) *Ground {
	g := &Ground{Base: model.NewBase(NameGround, NameGround, w.Assets.Ground)}
	g.Shape = physics.ShapeBox
	g.HalfExtents = mgl32.Vec3{halfSize, 0.01, halfSize}
	return g
}

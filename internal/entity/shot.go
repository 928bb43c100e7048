package entity

import (
	"log"

	"shadow-demo/internal/config"
	"shadow-demo/internal/input"
	"shadow-demo/internal/light"
	"shadow-demo/internal/model"
	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

var shotLightColor = mgl32.Vec3{1.0, 0.55, 0.2}

// Shot is a projectile flying towards -Z. It expires past the boundary or
// when it hits an enemy, and carries a point light while the world's shot
// light toggle is on.
type Shot struct {
	model.Base

	world *World
	light *light.Light
}

// NewShot creates a shot at position. It is not registered.
func NewShot(w *World, position mgl32.Vec3) *Shot {
	s := &Shot{
		Base:  model.NewBase(w.NextID(NameShot), NameShot, w.Assets.Shot),
		world: w,
	}
	s.Position = position
	s.Scale = mgl32.Vec3{config.ShotScale, config.ShotScale, config.ShotScale}
	s.Shape = physics.ShapeSphere
	s.Radius = config.ShotRadius
	return s
}

// LightID returns the identifier of the light attached to the shot.
func (s *Shot) LightID() string {
	return s.ID() + "::ShotLight"
}

// Light returns the attached light, nil when detached.
func (s *Shot) Light() *light.Light {
	return s.light
}

func (s *Shot) Init() {
	if s.world.ShotLights.Enabled() {
		s.attachLight()
	}
}

func (s *Shot) Deinit() {
	s.detachLight()
}

func (s *Shot) Update(dt float64) {
	w := s.world

	s.Position = s.Position.Add(mgl32.Vec3{0, 0, -float32(config.ShotSpeed * dt)})
	if s.Position.Z() < config.ShotBoundaryZ {
		w.Models.DeregisterModel(s)
		return
	}

	if w.Input.JustPressed(input.ActionToggleShotLight) {
		w.ShotLights.Toggle(w.Clock.Now())
	}
	s.syncLight()

	collider := s.Collider()
	for _, m := range w.Models.All() {
		if m.Name() != NameEnemy || !w.Models.Contains(m) {
			continue
		}
		if physics.Collided(collider, m.Collider()) {
			w.Models.DeregisterModel(m)
			w.Models.DeregisterModel(s)
			break
		}
	}
}

func (s *Shot) syncLight() {
	if !s.world.ShotLights.Enabled() {
		s.detachLight()
		return
	}
	if s.light == nil {
		s.attachLight()
	}
	if s.light != nil {
		s.light.Position = s.Position
	}
}

func (s *Shot) attachLight() {
	if s.light != nil {
		return
	}
	l := light.NewCube(s.LightID(), s.Position)
	l.Color = shotLightColor
	l.Intensity = 0.8
	l.FarPlane = 40
	if err := s.world.Lights.Register(l); err != nil {
		log.Printf("entity: attaching light to %s: %v", s.ID(), err)
		return
	}
	s.light = l
}

func (s *Shot) detachLight() {
	if s.light == nil {
		return
	}
	s.world.Lights.DeregisterLight(s.light)
	s.light = nil
}

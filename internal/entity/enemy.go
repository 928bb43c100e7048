package entity

import (
	"math"

	"shadow-demo/internal/config"
	"shadow-demo/internal/model"
	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Enemy sways sideways around its anchor and spins about Y.
type Enemy struct {
	model.Base

	anchor mgl32.Vec3
	phase  float64
	age    float64
}

func NewEnemy(w *World, anchor mgl32.Vec3, phase float64) *Enemy {
	e := &Enemy{
		Base:   model.NewBase(w.NextID(NameEnemy), NameEnemy, w.Assets.Enemy),
		anchor: anchor,
		phase:  phase,
	}
	e.Position = anchor
	e.Shape = physics.ShapeSphere
	e.Radius = config.EnemyRadius
	return e
}

func (e *Enemy) Update(dt float64) {
	e.age += dt
	offset := float32(config.EnemyDrift * math.Sin(e.age+e.phase))
	e.Position = e.anchor.Add(mgl32.Vec3{offset, 0, 0})

	spin := mgl32.QuatRotate(float32(config.EnemySpin*dt), mgl32.Vec3{0, 1, 0})
	e.Rotation = spin.Mul(e.Rotation).Normalize()
}

// SpawnWave registers a grid of enemies centered on X.
func SpawnWave(w *World) []*Enemy {
	enemies := make([]*Enemy, 0, config.EnemyColumns*config.EnemyRows)
	width := float32(config.EnemyColumns-1) * config.EnemySpacing
	for row := 0; row < config.EnemyRows; row++ {
		for col := 0; col < config.EnemyColumns; col++ {
			anchor := mgl32.Vec3{
				-width/2 + float32(col)*config.EnemySpacing,
				1.5,
				config.EnemyRowZ - float32(row)*config.EnemySpacing,
			}
			e := NewEnemy(w, anchor, float64(row)*math.Pi/2)
			w.Models.Register(e)
			enemies = append(enemies, e)
		}
	}
	return enemies
}

package entity

import (
	"fmt"

	"shadow-demo/internal/input"
	"shadow-demo/internal/light"
	"shadow-demo/internal/model"
)

// Model names used to tag entity kinds.
const (
	NameShip   = "Ship"
	NameShot   = "Shot"
	NameEnemy  = "Enemy"
	NameGround = "Ground"
)

// Input is the subset of input.InputManager gameplay reads.
type Input interface {
	IsActive(action input.Action) bool
	JustPressed(action input.Action) bool
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Now() float64
}

// Assets holds the GPU resources for each entity kind.
type Assets struct {
	Ship   model.Drawable
	Shot   model.Drawable
	Enemy  model.Drawable
	Ground model.Drawable
}

// World is the context every entity is created with. It replaces global
// managers: entities register and deregister models and lights through it.
type World struct {
	Models *model.Manager
	Lights *light.Manager
	Input  Input
	Clock  Clock
	Assets Assets

	// ShotLights is shared by every shot in the world.
	ShotLights *ShotLightToggle

	spawned map[string]int
}

// NewWorld creates a world with a fresh shot light toggle.
func NewWorld(models *model.Manager, lights *light.Manager, in Input, clock Clock, assets Assets) *World {
	return &World{
		Models:     models,
		Lights:     lights,
		Input:      in,
		Clock:      clock,
		Assets:     assets,
		ShotLights: NewShotLightToggle(),
		spawned:    make(map[string]int),
	}
}

// NextID returns a unique model identifier for the given kind.
func (w *World) NextID(kind string) string {
	w.spawned[kind]++
	return fmt.Sprintf("%s-%04d", kind, w.spawned[kind])
}

// Count returns how many registered models carry the given name.
func (w *World) Count(name string) int {
	n := 0
	for _, m := range w.Models.All() {
		if m.Name() == name {
			n++
		}
	}
	return n
}

package model

import (
	"shadow-demo/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds GPU vertex buffers for non-indexed triangle lists.
type Mesh struct {
	Vertices uint32 // vec3 positions
	UVs      uint32 // vec2 texture coordinates
	Normals  uint32 // vec3 normals
	Count    int32  // vertex count
}

// Drawable is everything the renderer needs to submit a model.
type Drawable struct {
	Mesh    Mesh
	Texture uint32
	Program uint32
}

// Model is the capability set shared by every scene entity.
type Model interface {
	ID() string
	// Name tags the model kind, e.g. "Enemy" or "Shot".
	Name() string
	Init()
	Deinit()
	Update(dt float64)
	Matrix() mgl32.Mat4
	Collider() physics.Collider
	Drawable() Drawable
}

// Base implements Model for a static object. Gameplay kinds embed it and
// override Update, Init and Deinit as needed.
type Base struct {
	id   string
	name string

	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	Shape       physics.ShapeType
	Radius      float32    // unscaled sphere radius
	HalfExtents mgl32.Vec3 // unscaled box half extents

	Draw Drawable
}

// NewBase creates a base model at the origin with unit scale and a unit
// sphere collider.
func NewBase(id, name string, draw Drawable) Base {
	return Base{
		id:          id,
		name:        name,
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
		Shape:       physics.ShapeSphere,
		Radius:      1,
		HalfExtents: mgl32.Vec3{1, 1, 1},
		Draw:        draw,
	}
}

func (b *Base) ID() string { return b.id }

func (b *Base) Name() string { return b.name }

// Init is called when the model is registered.
func (b *Base) Init() {}

// Deinit is called when the model is deregistered.
func (b *Base) Deinit() {}

// Update advances the model by dt seconds.
func (b *Base) Update(dt float64) {}

// Matrix composes translation * rotation * scale.
func (b *Base) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z())
	s := mgl32.Scale3D(b.Scale.X(), b.Scale.Y(), b.Scale.Z())
	return t.Mul4(b.Rotation.Mat4()).Mul4(s)
}

// Collider returns the collision shape in world space. Rotation is ignored,
// boxes stay axis aligned.
func (b *Base) Collider() physics.Collider {
	if b.Shape == physics.ShapeBox {
		he := mgl32.Vec3{
			b.HalfExtents.X() * b.Scale.X(),
			b.HalfExtents.Y() * b.Scale.Y(),
			b.HalfExtents.Z() * b.Scale.Z(),
		}
		return physics.Box(b.Position, he)
	}
	s := b.Scale.X()
	if b.Scale.Y() > s {
		s = b.Scale.Y()
	}
	if b.Scale.Z() > s {
		s = b.Scale.Z()
	}
	return physics.Sphere(b.Position, b.Radius*s)
}

func (b *Base) Drawable() Drawable { return b.Draw }

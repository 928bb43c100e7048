package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	id string

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	AspectRatio float32
	FOV         float32 // degrees
	NearPlane   float32
	FarPlane    float32
}

// NewCamera creates a perspective camera looking from position at target.
func NewCamera(id string, width, height int, position, target mgl32.Vec3) *Camera {
	return &Camera{
		id:          id,
		Position:    position,
		Target:      target,
		Up:          mgl32.Vec3{0, 1, 0},
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    200.0,
	}
}

func (c *Camera) ID() string { return c.id }

// SetViewport updates the aspect ratio for a new window size.
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

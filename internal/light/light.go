package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Variant determines how many view/projection pairs a light has and which
// texture target its shadow buffer uses.
type Variant int

const (
	Simple Variant = iota // one view, 2D shadow texture
	Cube                  // six views, cube map shadow texture
)

// Variants lists every variant in binding order.
var Variants = []Variant{Simple, Cube}

// Views returns the number of view/projection pairs for the variant.
func (v Variant) Views() int {
	if v == Cube {
		return 6
	}
	return 1
}

func (v Variant) String() string {
	switch v {
	case Simple:
		return "simple"
	case Cube:
		return "cube"
	default:
		return "unknown"
	}
}

// ShadowBuffer is an off-screen render target plus the depth texture it
// renders into.
type ShadowBuffer struct {
	Framebuffer uint32
	Texture     uint32
	Width       int32
	Height      int32
	Variant     Variant
}

// Valid reports whether the buffer has been allocated.
func (b ShadowBuffer) Valid() bool {
	return b.Framebuffer != 0
}

// cubeFaces holds direction and up vectors for the six cube map faces in
// +X, -X, +Y, -Y, +Z, -Z order.
var cubeFaces = [6][2]mgl32.Vec3{
	{{1, 0, 0}, {0, -1, 0}},
	{{-1, 0, 0}, {0, -1, 0}},
	{{0, 1, 0}, {0, 0, 1}},
	{{0, -1, 0}, {0, 0, -1}},
	{{0, 0, 1}, {0, -1, 0}},
	{{0, 0, -1}, {0, -1, 0}},
}

// Light is a shadow casting light source.
type Light struct {
	id      string
	variant Variant

	Position  mgl32.Vec3
	Direction mgl32.Vec3 // simple lights only
	Color     mgl32.Vec3
	Intensity float32
	NearPlane float32
	FarPlane  float32
	FOV       float32 // degrees, simple lights only

	// Program is the shadow pass shader. Assigned by the Manager when zero.
	Program uint32

	buffer ShadowBuffer
}

// NewSimple creates a spot-like light looking along direction.
func NewSimple(id string, position, direction mgl32.Vec3) *Light {
	return &Light{
		id:        id,
		variant:   Simple,
		Position:  position,
		Direction: direction.Normalize(),
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
		NearPlane: 0.1,
		FarPlane:  100.0,
		FOV:       90.0,
	}
}

// NewCube creates an omnidirectional point light.
func NewCube(id string, position mgl32.Vec3) *Light {
	return &Light{
		id:        id,
		variant:   Cube,
		Position:  position,
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
		NearPlane: 0.1,
		FarPlane:  100.0,
	}
}

// ID returns the light identifier.
func (l *Light) ID() string { return l.id }

// Variant returns the light variant. It never changes after creation.
func (l *Light) Variant() Variant { return l.variant }

// ShadowBuffer returns the light's render target. It is zero until the light
// has been registered with a Manager.
func (l *Light) ShadowBuffer() ShadowBuffer { return l.buffer }

// ViewMatrices returns one view matrix per view, Variant().Views() in total.
func (l *Light) ViewMatrices() []mgl32.Mat4 {
	if l.variant == Cube {
		views := make([]mgl32.Mat4, len(cubeFaces))
		for i, face := range cubeFaces {
			views[i] = mgl32.LookAtV(l.Position, l.Position.Add(face[0]), face[1])
		}
		return views
	}

	dir := l.Direction
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, -1, 0}
	}
	up := mgl32.Vec3{0, 1, 0}
	// Looking straight up or down makes the default up vector degenerate.
	if abs(dir.Normalize().Dot(up)) > 0.999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return []mgl32.Mat4{mgl32.LookAtV(l.Position, l.Position.Add(dir), up)}
}

// ProjectionMatrices returns one projection matrix per view.
func (l *Light) ProjectionMatrices() []mgl32.Mat4 {
	if l.variant == Cube {
		proj := mgl32.Perspective(mgl32.DegToRad(90), 1, l.NearPlane, l.FarPlane)
		out := make([]mgl32.Mat4, 6)
		for i := range out {
			out[i] = proj
		}
		return out
	}

	aspect := float32(1)
	if l.buffer.Height > 0 {
		aspect = float32(l.buffer.Width) / float32(l.buffer.Height)
	}
	return []mgl32.Mat4{mgl32.Perspective(mgl32.DegToRad(l.FOV), aspect, l.NearPlane, l.FarPlane)}
}

// ViewProjection returns projection * view for the first view.
func (l *Light) ViewProjection() mgl32.Mat4 {
	return l.ProjectionMatrices()[0].Mul4(l.ViewMatrices()[0])
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

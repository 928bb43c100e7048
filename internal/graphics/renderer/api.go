package renderer

import (
	"shadow-demo/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Device is the graphics backend the Renderer submits work to.
// graphics.GLDevice is the OpenGL implementation.
type Device interface {
	// BindFramebuffer makes fbo the render target and sets the viewport.
	// Framebuffer 0 is the window.
	BindFramebuffer(fbo uint32, width, height int32)
	// Clear clears color and depth.
	Clear(color mgl32.Vec4)
	UseProgram(program uint32)

	SetInt(program uint32, name string, v int32)
	SetFloat(program uint32, name string, v float32)
	SetVec3(program uint32, name string, v mgl32.Vec3)
	SetMat4(program uint32, name string, m mgl32.Mat4)

	BindTexture(unit int32, target graphics.TextureTarget, texture uint32)
	// BindAttribute enables a vertex attribute reading components floats per
	// vertex from buffer. Call release once the draw has been issued.
	BindAttribute(buffer uint32, components int32) (release func(), err error)
	DrawTriangles(count int32)
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Now() float64
}

// LightDetails is what the main pass needs to know about a rendered light.
type LightDetails struct {
	Position  mgl32.Vec3
	VPMatrix  mgl32.Mat4 // projection * view of the first view
	Color     mgl32.Vec3
	Intensity float32
	MapWidth  int32
	MapHeight int32
	NearPlane float32
	FarPlane  float32
	Texture   uint32
}

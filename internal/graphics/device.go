package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// TextureTarget selects the binding point of a texture.
type TextureTarget int

const (
	Texture2D TextureTarget = iota
	TextureCubeMap
)

func (t TextureTarget) glTarget() uint32 {
	if t == TextureCubeMap {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

type uniformKey struct {
	program uint32
	name    string
}

// GLDevice issues draw state to the current OpenGL context. Uniform locations
// are looked up once per (program, name) and cached.
type GLDevice struct {
	vao        uint32
	attributes *AttributePool
	locations  map[uniformKey]int32
}

// NewGLDevice configures global GL state. A context must be current.
func NewGLDevice() *GLDevice {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	// Core profile needs a bound VAO for attribute state.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var maxAttribs int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &maxAttribs)

	return &GLDevice{
		vao:        vao,
		attributes: NewAttributePool(uint32(maxAttribs)),
		locations:  make(map[uniformKey]int32),
	}
}

// Dispose releases the device VAO.
func (d *GLDevice) Dispose() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &d.vao)
}

func (d *GLDevice) location(program uint32, name string) int32 {
	key := uniformKey{program, name}
	if loc, ok := d.locations[key]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	d.locations[key] = loc
	return loc
}

// BindFramebuffer makes fbo the render target; 0 is the window.
func (d *GLDevice) BindFramebuffer(fbo uint32, width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.Viewport(0, 0, width, height)
}

func (d *GLDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) SetInt(program uint32, name string, v int32) {
	if loc := d.location(program, name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (d *GLDevice) SetFloat(program uint32, name string, v float32) {
	if loc := d.location(program, name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (d *GLDevice) SetVec3(program uint32, name string, v mgl32.Vec3) {
	if loc := d.location(program, name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (d *GLDevice) SetMat4(program uint32, name string, m mgl32.Mat4) {
	if loc := d.location(program, name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (d *GLDevice) BindTexture(unit int32, target TextureTarget, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(target.glTarget(), texture)
}

// BindAttribute enables the smallest free attribute slot and points it at
// buffer. The returned release func disables the slot again.
func (d *GLDevice) BindAttribute(buffer uint32, components int32) (func(), error) {
	id, err := d.attributes.Acquire()
	if err != nil {
		return nil, fmt.Errorf("bind attribute for buffer %d: %w", buffer, err)
	}
	gl.EnableVertexAttribArray(id)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointer(id, components, gl.FLOAT, false, 0, gl.PtrOffset(0))
	return func() {
		gl.DisableVertexAttribArray(id)
		d.attributes.Release(id)
	}, nil
}

func (d *GLDevice) DrawTriangles(count int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}

// ForgetProgram drops cached uniform locations of a deleted program.
func (d *GLDevice) ForgetProgram(program uint32) {
	for k := range d.locations {
		if k.program == program {
			delete(d.locations, k)
		}
	}
}

package renderer

import (
	"errors"
	"fmt"
	"log"

	"shadow-demo/internal/config"
	"shadow-demo/internal/graphics"
	"shadow-demo/internal/light"
	"shadow-demo/internal/model"
	"shadow-demo/internal/profiling"
	"shadow-demo/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoActiveCamera is returned when no camera is registered under the
// active camera identifier.
var ErrNoActiveCamera = errors.New("renderer: no active camera")

var (
	shadowClearColor = mgl32.Vec4{1, 1, 1, 1}
	windowClearColor = mgl32.Vec4{0, 0, 0, 1}
)

// Renderer draws one frame from the registered lights, models and the
// active camera: a shadow pass per light followed by the main pass.
type Renderer struct {
	device Device
	clock  Clock
	lights *light.Manager
	models *model.Manager

	cameras      *registry.Registry[*graphics.Camera]
	activeCamera string

	viewportWidth  int32
	viewportHeight int32

	startTime float64
	lastTime  float64

	// overflow tracks whether lights were dropped for exceeding the caps.
	overflow bool
}

// NewRenderer creates a renderer for the given managers.
func NewRenderer(device Device, clock Clock, lights *light.Manager, models *model.Manager) *Renderer {
	now := clock.Now()
	return &Renderer{
		device:         device,
		clock:          clock,
		lights:         lights,
		models:         models,
		cameras:        registry.New[*graphics.Camera](),
		viewportWidth:  config.WindowWidth,
		viewportHeight: config.WindowHeight,
		startTime:      now,
		lastTime:       now,
	}
}

// RegisterCamera adds a camera, replacing any camera with the same identifier.
func (r *Renderer) RegisterCamera(c *graphics.Camera) {
	r.cameras.Register(c)
}

// DeregisterCamera removes a camera. Unknown identifiers are ignored.
func (r *Renderer) DeregisterCamera(id string) {
	r.cameras.Deregister(id)
}

// SetActiveCamera selects the camera used by the main pass.
func (r *Renderer) SetActiveCamera(id string) {
	r.activeCamera = id
}

// ActiveCamera returns the camera registered under the active identifier.
func (r *Renderer) ActiveCamera() (*graphics.Camera, bool) {
	return r.cameras.Get(r.activeCamera)
}

// SetViewport updates the window size used by the main pass.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportWidth = int32(width)
	r.viewportHeight = int32(height)
	for _, c := range r.cameras.All() {
		c.SetViewport(width, height)
	}
}

// Render produces one frame. Every shadow buffer is written before the main
// pass samples any of them.
func (r *Renderer) Render() error {
	lights, err := r.RenderLights()
	if err != nil {
		return err
	}
	return r.RenderModels(lights)
}

// programCache skips UseProgram when the program does not change between
// consecutive draws.
type programCache struct {
	device  Device
	current uint32
	bound   bool
}

func (p *programCache) use(program uint32) {
	if p.bound && p.current == program {
		return
	}
	p.device.UseProgram(program)
	p.current = program
	p.bound = true
}

// visibleLights returns the lights that fit in the sampler slots, in
// identifier order, and logs when some have to be dropped.
func (r *Renderer) visibleLights() []*light.Light {
	all := r.lights.All()
	counts := map[light.Variant]int{}
	limits := map[light.Variant]int{
		light.Simple: config.MaxSimpleLights,
		light.Cube:   config.MaxCubeLights,
	}

	visible := make([]*light.Light, 0, len(all))
	dropped := 0
	for _, l := range all {
		v := l.Variant()
		if counts[v] >= limits[v] {
			dropped++
			continue
		}
		counts[v]++
		visible = append(visible, l)
	}

	if dropped > 0 && !r.overflow {
		log.Printf("renderer: %d light(s) over the simple/cube limits (%d/%d) are not rendered",
			dropped, config.MaxSimpleLights, config.MaxCubeLights)
	} else if dropped == 0 && r.overflow {
		log.Printf("renderer: light count back within limits")
	}
	r.overflow = dropped > 0
	return visible
}

// RenderLights renders every model into each light's shadow buffer and
// returns the per-variant light details for the main pass.
func (r *Renderer) RenderLights() (map[light.Variant][]LightDetails, error) {
	defer profiling.Track("renderer.RenderLights")()

	categorized := map[light.Variant][]LightDetails{
		light.Simple: {},
		light.Cube:   {},
	}
	programs := programCache{device: r.device}
	models := r.models.All()

	for _, l := range r.visibleLights() {
		buffer := l.ShadowBuffer()
		views := l.ViewMatrices()
		projections := l.ProjectionMatrices()
		vpMatrices := make([]mgl32.Mat4, len(views))
		for i := range views {
			vpMatrices[i] = projections[i].Mul4(views[i])
		}

		details := LightDetails{
			Position:  l.Position,
			VPMatrix:  vpMatrices[0],
			Color:     l.Color,
			Intensity: l.Intensity,
			MapWidth:  buffer.Width,
			MapHeight: buffer.Height,
			NearPlane: l.NearPlane,
			FarPlane:  l.FarPlane,
			Texture:   buffer.Texture,
		}
		categorized[l.Variant()] = append(categorized[l.Variant()], details)

		r.device.BindFramebuffer(buffer.Framebuffer, buffer.Width, buffer.Height)
		r.device.Clear(shadowClearColor)
		programs.use(l.Program)

		for _, m := range models {
			if err := r.drawShadowCaster(l.Program, details, vpMatrices, m); err != nil {
				r.device.BindFramebuffer(0, r.viewportWidth, r.viewportHeight)
				return nil, fmt.Errorf("shadow pass for light %q: %w", l.ID(), err)
			}
		}

		r.device.BindFramebuffer(0, r.viewportWidth, r.viewportHeight)
	}
	return categorized, nil
}

func (r *Renderer) drawShadowCaster(program uint32, details LightDetails, vpMatrices []mgl32.Mat4, m model.Model) error {
	d := r.device
	for s := range shadowStages {
		d.SetInt(program, shadowNames.vpMatrixCount[s], int32(len(vpMatrices)))
		d.SetVec3(program, shadowNames.lightPosition[s], details.Position)
		d.SetFloat(program, shadowNames.nearPlane[s], details.NearPlane)
		d.SetFloat(program, shadowNames.farPlane[s], details.FarPlane)
	}
	d.SetMat4(program, uShadowModelMatrix, m.Matrix())
	for i, vp := range vpMatrices {
		for s := range shadowStages {
			d.SetMat4(program, shadowNames.vpMatrices[i][s], vp)
		}
	}

	mesh := m.Drawable().Mesh
	release, err := d.BindAttribute(mesh.Vertices, 3)
	if err != nil {
		return err
	}
	defer release()

	d.DrawTriangles(mesh.Count)
	return nil
}

// RenderModels draws every model from the active camera, sampling the shadow
// buffers produced by RenderLights.
func (r *Renderer) RenderModels(categorized map[light.Variant][]LightDetails) error {
	defer profiling.Track("renderer.RenderModels")()

	r.device.BindFramebuffer(0, r.viewportWidth, r.viewportHeight)
	r.device.Clear(windowClearColor)

	camera, ok := r.ActiveCamera()
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoActiveCamera, r.activeCamera)
	}
	view := camera.ViewMatrix()
	projection := camera.ProjectionMatrix()

	now := r.clock.Now()
	frame := frameUniforms{
		view:       view,
		projection: projection,
		totalTime:  float32(now - r.startTime),
		deltaTime:  float32(now - r.lastTime),
		ambient:    config.GetAmbientFactor(),
		simple:     categorized[light.Simple],
		cube:       categorized[light.Cube],
	}
	programs := programCache{device: r.device}

	for _, m := range r.models.All() {
		if err := r.drawModel(&programs, frame, m); err != nil {
			return fmt.Errorf("main pass for model %q: %w", m.ID(), err)
		}
	}

	r.lastTime = now
	return nil
}

type frameUniforms struct {
	view       mgl32.Mat4
	projection mgl32.Mat4
	totalTime  float32
	deltaTime  float32
	ambient    float32
	simple     []LightDetails
	cube       []LightDetails
}

func (r *Renderer) drawModel(programs *programCache, f frameUniforms, m model.Model) error {
	d := r.device
	draw := m.Drawable()
	program := draw.Program
	programs.use(program)

	modelMatrix := m.Matrix()
	d.SetMat4(program, uModelMatrix, modelMatrix)
	d.SetMat4(program, uViewMatrix, f.view)
	d.SetMat4(program, uProjectionMatrix, f.projection)
	d.SetMat4(program, uMVPMatrix, f.projection.Mul4(f.view).Mul4(modelMatrix))
	d.SetFloat(program, uTotalTime, f.totalTime)
	d.SetFloat(program, uDeltaTime, f.deltaTime)
	d.SetFloat(program, uAmbientFactor, f.ambient)
	d.SetInt(program, uSimpleLightCount, int32(len(f.simple)))
	d.SetInt(program, uCubeLightCount, int32(len(f.cube)))

	d.BindTexture(config.DiffuseTextureUnit, graphics.Texture2D, draw.Texture)
	d.SetInt(program, uDiffuseTexture, config.DiffuseTextureUnit)

	r.bindLightSlots(program, simpleSlotNames, f.simple, config.SimpleShadowUnitStart,
		graphics.Texture2D, r.lights.Placeholder(light.Simple))
	r.bindLightSlots(program, cubeSlotNames, f.cube, config.CubeShadowUnitStart,
		graphics.TextureCubeMap, r.lights.Placeholder(light.Cube))

	var releases []func()
	defer func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}()
	attributes := []struct {
		buffer     uint32
		components int32
	}{
		{draw.Mesh.Vertices, 3},
		{draw.Mesh.UVs, 2},
		{draw.Mesh.Normals, 3},
	}
	for _, a := range attributes {
		release, err := d.BindAttribute(a.buffer, a.components)
		if err != nil {
			return err
		}
		releases = append(releases, release)
	}

	d.DrawTriangles(draw.Mesh.Count)
	return nil
}

// bindLightSlots uploads the details of each light and binds its shadow
// texture. Every remaining slot up to the cap gets the placeholder texture so
// the whole sampler array is always bound.
func (r *Renderer) bindLightSlots(program uint32, slots []slotUniforms, details []LightDetails,
	firstUnit int32, target graphics.TextureTarget, placeholder *light.Light) {
	d := r.device
	for i, slot := range slots {
		unit := firstUnit + int32(i)
		if i >= len(details) {
			d.BindTexture(unit, target, placeholder.ShadowBuffer().Texture)
			d.SetInt(program, slot.texture, unit)
			continue
		}

		ld := details[i]
		for s := range modelStages {
			d.SetVec3(program, slot.position[s], ld.Position)
			d.SetMat4(program, slot.vpMatrix[s], ld.VPMatrix)
			d.SetVec3(program, slot.color[s], ld.Color)
			d.SetFloat(program, slot.intensity[s], ld.Intensity)
			d.SetInt(program, slot.mapWidth[s], ld.MapWidth)
			d.SetInt(program, slot.mapHeight[s], ld.MapHeight)
			d.SetFloat(program, slot.nearPlane[s], ld.NearPlane)
			d.SetFloat(program, slot.farPlane[s], ld.FarPlane)
		}
		d.BindTexture(unit, target, ld.Texture)
		d.SetInt(program, slot.texture, unit)
	}
}

package game

import (
	"fmt"
	"log"

	"shadow-demo/internal/entity"
	"shadow-demo/internal/graphics"
	"shadow-demo/internal/graphics/renderables/hud"
	"shadow-demo/internal/graphics/renderer"
	standardInput "shadow-demo/internal/input"
	"shadow-demo/internal/light"
	"shadow-demo/internal/model"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	mainCameraID = "MainCamera"
	spotLightID  = "SpotLight"
	lampLightID  = "LampLight"
)

type Session struct {
	Window    *glfw.Window
	Device    *graphics.GLDevice
	Resources *Resources
	Renderer  *renderer.Renderer
	HUD       *hud.HUD
	Lights    *light.Manager
	Models    *model.Manager
	World     *entity.World

	Paused bool
	Waves  int
	FPS    int
}

func NewSession(window *glfw.Window, im *standardInput.InputManager, assetDir string) (*Session, error) {
	resources, err := LoadResources(assetDir)
	if err != nil {
		return nil, err
	}

	lights, err := light.NewManager(graphics.ShadowAllocator{}, resources.Programs)
	if err != nil {
		resources.Dispose()
		return nil, fmt.Errorf("create light manager: %w", err)
	}

	overlay, err := hud.New(assetDir)
	if err != nil {
		lights.Close()
		resources.Dispose()
		return nil, err
	}

	device := graphics.NewGLDevice()
	models := model.NewManager()
	clock := Clock{}
	r := renderer.NewRenderer(device, clock, lights, models)

	s := &Session{
		Window:    window,
		Device:    device,
		Resources: resources,
		Renderer:  r,
		HUD:       overlay,
		Lights:    lights,
		Models:    models,
		World:     entity.NewWorld(models, lights, im, clock, resources.Assets),
	}
	if err := s.setupScene(); err != nil {
		s.Cleanup()
		return nil, err
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			s.setViewport(width, height)
		}
	})
	s.setViewport(window.GetFramebufferSize())

	return s, nil
}

func (s *Session) setupScene() error {
	width, height := s.Window.GetFramebufferSize()
	camera := graphics.NewCamera(mainCameraID, width, height, mgl32.Vec3{0, 18, 38}, mgl32.Vec3{0, 0, -12})
	s.Renderer.RegisterCamera(camera)
	s.Renderer.SetActiveCamera(mainCameraID)

	spot := light.NewSimple(spotLightID, mgl32.Vec3{-12, 30, 20}, mgl32.Vec3{0.35, -1, -0.9})
	spot.Color = mgl32.Vec3{1, 0.95, 0.85}
	spot.FOV = 100
	if err := s.Lights.Register(spot); err != nil {
		return err
	}

	lamp := light.NewCube(lampLightID, mgl32.Vec3{0, 6, -10})
	lamp.Color = mgl32.Vec3{0.5, 0.6, 1}
	lamp.Intensity = 0.7
	lamp.FarPlane = 60
	if err := s.Lights.Register(lamp); err != nil {
		return err
	}

	s.Models.Register(entity.NewGround(s.World, 40))
	s.Models.Register(entity.NewShip(s.World))
	s.spawnWave()
	return nil
}

func (s *Session) spawnWave() {
	entity.SpawnWave(s.World)
	s.Waves++
	log.Printf("Wave %d: %d enemies", s.Waves, s.World.Count(entity.NameEnemy))
}

// HandleInput processes session level actions and reports whether the
// player asked to quit.
func (s *Session) HandleInput(im *standardInput.InputManager) bool {
	if im.JustPressed(standardInput.ActionQuit) {
		return true
	}
	if im.JustPressed(standardInput.ActionPause) {
		s.Paused = !s.Paused
	}
	if im.JustPressed(standardInput.ActionToggleProfiling) {
		s.HUD.ShowProfile = !s.HUD.ShowProfile
	}
	return false
}

func (s *Session) Update(dt float64) {
	if s.Paused {
		return
	}
	s.Models.UpdateAll(dt)

	if s.World.Count(entity.NameEnemy) == 0 {
		s.spawnWave()
	}
}

func (s *Session) setViewport(width, height int) {
	s.Renderer.SetViewport(width, height)
	s.HUD.SetViewport(width, height)
}

func (s *Session) Render() error {
	if err := s.Renderer.Render(); err != nil {
		return err
	}
	s.HUD.Render(s.Status())
	return nil
}

// Status summarizes the session for the overlay.
func (s *Session) Status() hud.Status {
	return hud.Status{
		Wave:       s.Waves,
		Enemies:    s.World.Count(entity.NameEnemy),
		Shots:      s.World.Count(entity.NameShot),
		Lights:     s.Lights.Len(),
		FPS:        s.FPS,
		ShotLights: s.World.ShotLights.Enabled(),
		Paused:     s.Paused,
	}
}

// Cleanup releases GPU resources. Must run on the GL thread.
func (s *Session) Cleanup() {
	s.Window.SetFramebufferSizeCallback(nil)

	// Shots drop their lights in Deinit, so models go first.
	s.Models.Clear()
	s.Lights.Close()
	s.HUD.Dispose()
	s.Resources.Dispose()
	s.Device.Dispose()
}

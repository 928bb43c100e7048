package game

import (
	"log"
	"time"

	standardInput "shadow-demo/internal/input"
	"shadow-demo/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// AssetDir is where shaders and textures are loaded from.
const AssetDir = "assets"

type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager

	session *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames           int
	lastFPSCheckTime time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager) (*App, error) {
	session, err := NewSession(window, im, AssetDir)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &App{
		window:           window,
		inputManager:     im,
		session:          session,
		fpsLimiter:       NewFPSLimiter(),
		lastTime:         now,
		lastFPSCheckTime: now,
	}, nil
}

// Run drives the frame loop until the window closes or rendering fails.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.session.HandleInput(a.inputManager) {
		a.window.SetShouldClose(true)
	}
	a.session.Update(dt)
	if err := a.session.Render(); err != nil {
		return err
	}

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.frames++
	if time.Since(a.lastFPSCheckTime) >= time.Second {
		a.session.FPS = a.frames
		if a.session.HUD.ShowProfile {
			log.Printf("FPS: %d, lights: %d, models: %d. Top tasks: %s",
				a.frames, a.session.Lights.Len(), a.session.Models.Len(), profiling.TopN(5))
		}
		a.frames = 0
		a.lastFPSCheckTime = time.Now()
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait(a.session.Paused)
	return nil
}

// Close tears down the session. Must run on the GL thread.
func (a *App) Close() {
	if a.session != nil {
		a.session.Cleanup()
		a.session = nil
	}
}

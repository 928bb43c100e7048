package hud

import (
	"fmt"
	"path/filepath"
	"time"

	"shadow-demo/internal/graphics"
	"shadow-demo/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	fontPixels = 18
	margin     = 12
)

var (
	textColor   = mgl32.Vec3{0.95, 0.95, 0.9}
	pausedColor = mgl32.Vec3{1.0, 0.8, 0.3}
)

// Status is the game state shown in the overlay.
type Status struct {
	Wave       int
	Enemies    int
	Shots      int
	Lights     int
	FPS        int
	ShotLights bool
	Paused     bool
}

// Lines formats the status for display.
func (s Status) Lines() []string {
	lightState := "off"
	if s.ShotLights {
		lightState = "on"
	}
	lines := []string{
		fmt.Sprintf("Wave %d  Enemies %d  Shots %d", s.Wave, s.Enemies, s.Shots),
		fmt.Sprintf("Lights %d  Shot lights %s [H]", s.Lights, lightState),
	}
	if s.FPS > 0 {
		lines = append(lines, fmt.Sprintf("FPS %d", s.FPS))
	}
	return lines
}

// profileLines reports the tracked timings of the current frame.
func profileLines() []string {
	ms := func(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
	return []string{
		fmt.Sprintf("shadow %.2fms  main %.2fms", ms(profiling.SumWithPrefix("renderer.RenderLights")), ms(profiling.SumWithPrefix("renderer.RenderModels"))),
		fmt.Sprintf("update %.2fms  glfw %.2fms", ms(profiling.SumWithPrefix("model.")), ms(profiling.SumWithPrefix("glfw."))),
	}
}

// HUD draws the status overlay on top of the finished frame.
type HUD struct {
	atlas *graphics.FontAtlas
	text  *graphics.TextRenderer
	width int

	ShowProfile bool
}

func New(assetDir string) (*HUD, error) {
	atlas, err := graphics.NewFontAtlas(gomono.TTF, fontPixels)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	text, err := graphics.NewTextRenderer(atlas, graphics.ShaderPaths{
		Vertex:   filepath.Join(assetDir, "shaders", "vertex", "text.glsl"),
		Fragment: filepath.Join(assetDir, "shaders", "fragment", "text.glsl"),
	})
	if err != nil {
		atlas.Delete()
		return nil, fmt.Errorf("hud text: %w", err)
	}
	return &HUD{atlas: atlas, text: text}, nil
}

func (h *HUD) SetViewport(width, height int) {
	h.width = width
	h.text.SetViewport(width, height)
}

func (h *HUD) Render(s Status) {
	defer profiling.Track("hud.Render")()

	lines := s.Lines()
	if h.ShowProfile {
		lines = append(lines, profileLines()...)
	}
	y := float32(margin + h.atlas.LineHeight)
	h.text.RenderLines(lines, margin, y, 1, textColor)

	if s.Paused {
		w, _ := h.atlas.Measure("PAUSED", 2)
		h.text.RenderLines([]string{"PAUSED"}, (float32(h.width)-w)/2, y*3, 2, pausedColor)
	}
}

func (h *HUD) Dispose() {
	h.text.Delete()
	h.atlas.Delete()
}

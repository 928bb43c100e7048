package config

import "sync"

// Window and shadow buffer geometry, fixed at build time.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "shadow-demo"

	// ShadowBufferScale is the multiple of the window size used for shadow buffers.
	ShadowBufferScale = 2
)

// Light caps. Shader sampler arrays are sized to these values.
const (
	MaxSimpleLights = 7
	MaxCubeLights   = 8
)

// Texture unit layout for the main pass
const (
	DiffuseTextureUnit    = 0
	SimpleShadowUnitStart = DiffuseTextureUnit + 1
	CubeShadowUnitStart   = SimpleShadowUnitStart + MaxSimpleLights
)

// SimpleShadowSize returns the dimensions of a single-view shadow buffer.
func SimpleShadowSize() (width, height int32) {
	return WindowWidth * ShadowBufferScale, WindowHeight * ShadowBufferScale
}

// CubeShadowSize returns the edge length of a cube shadow buffer face.
// Cube map faces must be square.
func CubeShadowSize() int32 {
	side := int32(WindowWidth)
	if WindowHeight > side {
		side = WindowHeight
	}
	return side * ShadowBufferScale
}

// RenderSettings holds render configuration
type RenderSettings struct {
	mu            sync.RWMutex
	ambientFactor float32
	fpsLimit      int // 0 means uncapped
}

var globalRenderSettings = &RenderSettings{
	ambientFactor: 0.25,
	fpsLimit:      0,
}

// GetAmbientFactor returns the global ambient light factor
func GetAmbientFactor() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.ambientFactor
}

// SetAmbientFactor sets the global ambient light factor
func SetAmbientFactor(factor float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	globalRenderSettings.ambientFactor = factor
}

// GetFPSLimit returns the frame cap, 0 when only vsync limits the loop
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

package entity

import (
	"math"

	"shadow-demo/internal/config"
)

// ShotLightToggle is the light switch shared by all shots. Flips closer
// together than Interval seconds are ignored.
type ShotLightToggle struct {
	Interval float64

	enabled    bool
	lastChange float64
}

// NewShotLightToggle returns an enabled toggle that accepts its first flip
// immediately.
func NewShotLightToggle() *ShotLightToggle {
	return &ShotLightToggle{
		Interval:   config.ShotLightToggleInterval,
		enabled:    true,
		lastChange: math.Inf(-1),
	}
}

// Enabled reports whether shots carry a light.
func (t *ShotLightToggle) Enabled() bool {
	return t.enabled
}

// Toggle flips the switch at time now and reports whether the flip took effect.
func (t *ShotLightToggle) Toggle(now float64) bool {
	if now-t.lastChange <= t.Interval {
		return false
	}
	t.enabled = !t.enabled
	t.lastChange = now
	return true
}

package game

import (
	"time"

	"shadow-demo/internal/config"
)

// pausedFPS caps the loop while paused so the demo idles cheaply.
const pausedFPS = 30

// spinWindow is how long before the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the frame rate on top of vsync
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// interval returns the target frame duration, 0 when uncapped.
func (f *FPSLimiter) interval(paused bool) time.Duration {
	limit := config.GetFPSLimit()
	if paused && (limit <= 0 || limit > pausedFPS) {
		limit = pausedFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.interval(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for remaining := time.Until(f.next); remaining > 0; remaining = time.Until(f.next) {
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

package config

import "sync"

// RenderSettings holds settings that can change while the scene is running
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	lighting bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120, // default value
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values; 0 disables the cap
	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 15 {
		limit = 15
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetLighting returns whether point lighting starts enabled
func GetLighting() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.lighting
}

// SetLighting sets whether point lighting starts enabled
func SetLighting(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.lighting = enabled
}

// Apply copies the runtime-tunable parts of c into the global settings
func Apply(c Config) {
	SetFPSLimit(c.Render.FPSLimit)
	SetLighting(c.Render.Lighting)
}

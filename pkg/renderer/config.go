package renderer

import "runtime"

// SamplingConfig controls how each pixel is sampled
type SamplingConfig struct {
	SamplesPerPixel int     // Number of jittered rays per pixel
	Aperture        float64 // Lens radius, 0 disables depth of field
	FocusDistance   float64 // Distance along each primary ray that stays in focus
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		Aperture:        0.0,
		FocusDistance:   10.0,
	}
}

// Normalize replaces out-of-range values: fewer than one sample becomes one,
// a negative aperture becomes zero and a non-positive focus distance falls
// back to the default
func (c SamplingConfig) Normalize() SamplingConfig {
	if c.SamplesPerPixel <= 0 {
		c.SamplesPerPixel = 1
	}
	if c.Aperture < 0 {
		c.Aperture = 0
	}
	if c.FocusDistance <= 0 {
		c.FocusDistance = DefaultSamplingConfig().FocusDistance
	}
	return c
}

// RenderConfig controls image size and parallelism
type RenderConfig struct {
	Width      int   // Image width in pixels
	Height     int   // Image height in pixels
	TileSize   int   // Edge length of the square tiles handed to workers
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for per-tile random generators
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      800,
		Height:     600,
		TileSize:   32,
		NumWorkers: runtime.NumCPU(),
		Seed:       42,
	}
}

// Normalize replaces out-of-range values with defaults
func (c RenderConfig) Normalize() RenderConfig {
	def := DefaultRenderConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TileSize <= 0 {
		c.TileSize = def.TileSize
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = def.NumWorkers
	}
	return c
}

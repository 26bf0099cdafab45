package renderer

import (
	"fmt"
	"image"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Raytracer renders pixels of a validated scene
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	width      int
	height     int
	config     SamplingConfig
}

// NewRaytracer creates a raytracer for a width x height image. The scene is
// validated first and must not be modified while rendering.
func NewRaytracer(s *scene.Scene, width, height int, config SamplingConfig) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render scene: %w", err)
	}

	config = config.Normalize()
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewWhittedIntegrator(),
		camera:     NewCamera(s.Camera, width, height, config),
		width:      width,
		height:     height,
		config:     config,
	}, nil
}

// SamplingConfig returns the normalized sampling configuration in use
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// RenderPixel averages SamplesPerPixel jittered samples for pixel (x, y) and
// converts the result to 8-bit channels
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) [3]uint8 {
	colorAccum := core.Vec3{}
	for i := 0; i < rt.config.SamplesPerPixel; i++ {
		ray := rt.camera.GetRay(x, y, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene))
	}

	avg := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
	return [3]uint8{toByte(avg.X), toByte(avg.Y), toByte(avg.Z)}
}

// RenderBounds renders every pixel inside bounds into fb and returns the
// number of samples taken
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *FrameBuffer, sampler core.Sampler) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			fb.Set(x, y, rt.RenderPixel(x, y, sampler))
		}
	}
	return bounds.Dx() * bounds.Dy() * rt.config.SamplesPerPixel
}

// toByte maps a channel in [0,1] to the nearest 8-bit value
func toByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(c*255))))
}

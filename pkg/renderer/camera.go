package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Camera generates primary rays for a pinhole or thin-lens camera
type Camera struct {
	eye        core.Vec3
	u, v, w    core.Vec3 // Right, up and backward basis vectors
	halfWidth  float64
	halfHeight float64
	width      int
	height     int

	aperture      float64
	focusDistance float64
}

// NewCamera creates a camera for an image of width x height pixels
func NewCamera(params scene.CameraParams, width, height int, config SamplingConfig) *Camera {
	w := params.Eye.Subtract(params.LookAt).Normalize()
	u := params.Up.Cross(w).Normalize()
	v := w.Cross(u).Normalize()

	halfHeight := math.Tan(params.FovY * math.Pi / 180.0 / 2.0)
	aspectRatio := float64(width) / float64(height)

	return &Camera{
		eye:           params.Eye,
		u:             u,
		v:             v,
		w:             w,
		halfWidth:     halfHeight * aspectRatio,
		halfHeight:    halfHeight,
		width:         width,
		height:        height,
		aperture:      config.Aperture,
		focusDistance: config.FocusDistance,
	}
}

// GetRay returns a jittered primary ray through pixel (x, y). Row 0 is the top
// of the image. With a non-zero aperture the origin is spread over the lens
// disk and the ray re-aimed so that points at the focus distance stay sharp.
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()

	ndcX := 2.0*(float64(x)+jitter.X)/float64(c.width) - 1.0
	ndcY := 1.0 - 2.0*(float64(y)+jitter.Y)/float64(c.height)

	direction := c.u.Multiply(ndcX * c.halfWidth).
		Add(c.v.Multiply(ndcY * c.halfHeight)).
		Subtract(c.w).
		Normalize()

	if c.aperture <= 0 {
		return core.NewRay(c.eye, direction)
	}

	lens := core.RandomInUnitDisk(sampler)
	origin := c.eye.
		Add(c.u.Multiply(lens.X * c.aperture)).
		Add(c.v.Multiply(lens.Y * c.aperture))
	focusPoint := c.eye.Add(direction.Multiply(c.focusDistance))

	return core.NewRay(origin, focusPoint.Subtract(origin))
}

package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 first in the file
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Empty reports whether the texture has no pixels to sample
func (t *ImageTexture) Empty() bool {
	return t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0
}

// Sample returns the nearest texel for texture coordinates (s, t).
// Both coordinates are wrapped into [0,1) first, so the texture tiles.
func (t *ImageTexture) Sample(s, tc float64) core.Vec3 {
	s -= math.Floor(s)
	tc -= math.Floor(tc)

	u := int(s*float64(t.Width)) % t.Width
	v := int(tc*float64(t.Height)) % t.Height
	if u < 0 {
		u += t.Width
	}
	if v < 0 {
		v += t.Height
	}

	idx := v*t.Width + u
	if idx < 0 || idx >= len(t.Pixels) {
		return core.NewVec3(1, 1, 1)
	}
	return t.Pixels[idx]
}

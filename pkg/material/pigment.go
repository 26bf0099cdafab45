package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Pigment maps a world-space surface point to a base RGB color in [0,1]³
type Pigment interface {
	Evaluate(point core.Vec3) core.Vec3
}

// SolidPigment provides uniform color
type SolidPigment struct {
	Color core.Vec3
}

// NewSolidPigment creates a new solid color pigment
func NewSolidPigment(color core.Vec3) *SolidPigment {
	return &SolidPigment{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidPigment) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerPigment alternates two colors on a 3D grid of cubic cells of side Scale
type CheckerPigment struct {
	Color1 core.Vec3
	Color2 core.Vec3
	Scale  float64
}

// NewCheckerPigment creates a new checker pigment
func NewCheckerPigment(color1, color2 core.Vec3, scale float64) *CheckerPigment {
	return &CheckerPigment{Color1: color1, Color2: color2, Scale: scale}
}

// Evaluate returns Color1 when the cell coordinates sum to an even number.
// A zero scale has no cells and always yields Color1.
func (c *CheckerPigment) Evaluate(point core.Vec3) core.Vec3 {
	if c.Scale == 0 {
		return c.Color1
	}

	xi := int(math.Floor(point.X / c.Scale))
	yi := int(math.Floor(point.Y / c.Scale))
	zi := int(math.Floor(point.Z / c.Scale))

	if (xi+yi+zi)&1 == 0 {
		return c.Color1
	}
	return c.Color2
}

// TexturePigment projects the homogeneous hit point (x, y, z, 1) onto texture
// coordinates with two 4-vectors and samples an image
type TexturePigment struct {
	Texture *ImageTexture
	P0      [4]float64 // s = P0 · (x, y, z, 1)
	P1      [4]float64 // t = P1 · (x, y, z, 1)
}

// NewTexturePigment creates a new texture-mapped pigment
func NewTexturePigment(texture *ImageTexture, p0, p1 [4]float64) *TexturePigment {
	return &TexturePigment{Texture: texture, P0: p0, P1: p1}
}

// Evaluate projects point to (s, t) and samples the texture.
// A missing or empty texture evaluates to white.
func (tp *TexturePigment) Evaluate(point core.Vec3) core.Vec3 {
	if tp.Texture == nil || tp.Texture.Empty() {
		return core.NewVec3(1, 1, 1)
	}

	s := project(tp.P0, point)
	t := project(tp.P1, point)
	return tp.Texture.Sample(s, t)
}

func project(p [4]float64, point core.Vec3) float64 {
	return p[0]*point.X + p[1]*point.Y + p[2]*point.Z + p[3]
}

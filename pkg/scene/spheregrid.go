package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize x gridSize grid of rainbow-colored
// reflective spheres over a shaded floor slab
func NewSphereGridScene(gridSize int) *Scene {
	if gridSize < 1 {
		gridSize = 1
	}

	s := NewScene(CameraParams{
		Eye:    core.NewVec3(4.5, 6, 18),
		LookAt: core.NewVec3(4.5, 0.8, 4.5),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   40,
	})

	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.25, 0.25, 0.3)))
	s.AddLight(lights.NewLight(core.NewVec3(20, 25, 20), core.NewVec3(1.0, 0.96, 0.9), core.NewVec3(1, 0, 0)))

	// Floor fades from dark at the back (z = -5) to light at the front (z = 14)
	floorTexture := material.NewGradientTexture(1, 64, core.NewVec3(0.25, 0.25, 0.28), core.NewVec3(0.65, 0.65, 0.62))
	floorPigment := s.AddPigment(material.NewTexturePigment(floorTexture,
		[4]float64{0, 0, 0, 0.5},
		[4]float64{0, 0, 1.0 / 19.0, 5.0 / 19.0}))
	floorFinish := s.AddFinish(material.Finish{Ka: 0.3, Kd: 0.7, Ks: 0.1, Alpha: 10, IOR: 1})
	metal := s.AddFinish(material.Finish{Ka: 0.1, Kd: 0.5, Ks: 0.7, Alpha: 120, Kr: 0.4, IOR: 1})

	// A thin slab keeps the floor finite so it reads as a polyhedron
	s.AddObject(newBox(core.NewVec3(-5, -0.1, -5), core.NewVec3(14, 0, 14)), floorPigment, floorFinish)

	// Fit the grid into roughly 9x9 units
	const targetArea = 9.0
	spacing := targetArea
	if gridSize > 1 {
		spacing = targetArea / float64(gridSize-1)
	}
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			hue := 360.0 * float64(i*gridSize+j) / float64(gridSize*gridSize)
			pigment := s.AddPigment(material.NewSolidPigment(oklchToRGB(0.7, 0.15, hue)))
			center := core.NewVec3(float64(i)*spacing, radius, float64(j)*spacing)
			s.AddObject(geometry.NewSphere(center, radius), pigment, metal)
		}
	}

	return s
}

package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates a scene with one of every primitive kind on a
// checkered floor, lit by an ambient light and two point lights
func NewDefaultScene() *Scene {
	s := NewScene(CameraParams{
		Eye:    core.NewVec3(0, 3, 10),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   45,
	})

	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.3, 0.3, 0.3)))
	s.AddLight(lights.NewLight(core.NewVec3(-6, 10, 8), core.NewVec3(1, 1, 1), core.NewVec3(1, 0.01, 0.001)))
	s.AddLight(lights.NewLight(core.NewVec3(8, 6, 4), core.NewVec3(0.6, 0.55, 0.5), core.NewVec3(1, 0.02, 0.002)))

	floorPigment := s.AddPigment(material.NewCheckerPigment(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.15, 0.15, 0.15), 1.0))
	red := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.8, 0.1, 0.1)))
	green := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.1, 0.7, 0.2)))
	blue := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.1, 0.2, 0.8)))
	gold := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.9, 0.7, 0.2)))
	white := s.AddPigment(material.NewSolidPigment(core.NewVec3(1, 1, 1)))
	stripes := s.AddPigment(material.NewTexturePigment(
		material.NewCheckerboardTexture(64, 64, 8, core.NewVec3(0.9, 0.4, 0.1), core.NewVec3(0.2, 0.1, 0.4)),
		[4]float64{0.5, 0, 0, 0},
		[4]float64{0, 0.5, 0, 0},
	))

	matte := s.AddFinish(material.DefaultFinish())
	floorFinish := s.AddFinish(material.Finish{Ka: 0.2, Kd: 0.8, Ks: 0.0, Alpha: 1, Kr: 0.2, IOR: 1})
	mirror := s.AddFinish(material.Finish{Ka: 0.05, Kd: 0.2, Ks: 0.8, Alpha: 200, Kr: 0.7, IOR: 1})
	glass := s.AddFinish(material.Finish{Ka: 0.0, Kd: 0.05, Ks: 0.9, Alpha: 300, Kr: 0.1, Kt: 0.85, IOR: 1.5})
	shiny := s.AddFinish(material.Finish{Ka: 0.1, Kd: 0.6, Ks: 0.5, Alpha: 80, IOR: 1})

	// Floor: the plane y = 0 as a degenerate quadric
	s.AddObject(geometry.NewQuadric([10]float64{0, 0, 0, 0, 0, 0, 0, 1, 0, 0}), floorPigment, floorFinish)

	s.AddObject(geometry.NewSphere(core.NewVec3(-2.5, 1, 0), 1), red, mirror)
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 1, 2.5), 1), white, glass)
	s.AddObject(geometry.NewCylinder(core.NewVec3(2.5, 0, 0), core.NewVec3(0, 1, 0), 2, 0.7), blue, shiny)
	s.AddObject(geometry.NewCone(core.NewVec3(0, 2.5, -2), core.NewVec3(0, -1, 0), 2.5, 1), gold, shiny)
	s.AddObject(newBox(core.NewVec3(-4.5, 0, -3), core.NewVec3(-3, 1.5, -1.5)), stripes, matte)
	s.AddObject(geometry.NewTriangle(
		core.NewVec3(3, 0, -4),
		core.NewVec3(5, 0, -4),
		core.NewVec3(4, 2.5, -4.5),
	), green, matte)

	return s
}

// newBox returns the axis-aligned box spanning lo..hi as a polyhedron
func newBox(lo, hi core.Vec3) *geometry.Polyhedron {
	return geometry.NewPolyhedron(
		geometry.NewPlane(1, 0, 0, -hi.X),
		geometry.NewPlane(-1, 0, 0, lo.X),
		geometry.NewPlane(0, 1, 0, -hi.Y),
		geometry.NewPlane(0, -1, 0, lo.Y),
		geometry.NewPlane(0, 0, 1, -hi.Z),
		geometry.NewPlane(0, 0, -1, lo.Z),
	)
}

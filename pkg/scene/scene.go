package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// ErrMalformedScene reports a scene whose objects reference missing pigments,
// finishes or shapes
var ErrMalformedScene = errors.New("malformed scene")

// CameraParams describes the viewer
type CameraParams struct {
	Eye    core.Vec3
	LookAt core.Vec3
	Up     core.Vec3
	FovY   float64 // Vertical field of view in degrees
}

// Object binds a primitive to a pigment and a finish by index
type Object struct {
	Shape      geometry.Primitive
	PigmentIdx int
	FinishIdx  int
}

// Scene contains everything needed for rendering. It is built once and then
// shared read-only by every render worker.
type Scene struct {
	Camera   CameraParams
	Lights   []lights.Light // Lights[0] is the ambient light
	Pigments []material.Pigment
	Finishes []material.Finish
	Objects  []Object
}

// NewScene creates an empty scene viewed from camera
func NewScene(camera CameraParams) *Scene {
	return &Scene{Camera: camera}
}

// AddLight appends a light. The first light added is the ambient light.
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// AddPigment appends a pigment and returns its index
func (s *Scene) AddPigment(p material.Pigment) int {
	s.Pigments = append(s.Pigments, p)
	return len(s.Pigments) - 1
}

// AddFinish appends a finish and returns its index
func (s *Scene) AddFinish(f material.Finish) int {
	s.Finishes = append(s.Finishes, f)
	return len(s.Finishes) - 1
}

// AddObject appends a primitive using the pigment and finish at the given indices
func (s *Scene) AddObject(shape geometry.Primitive, pigmentIdx, finishIdx int) {
	s.Objects = append(s.Objects, Object{Shape: shape, PigmentIdx: pigmentIdx, FinishIdx: finishIdx})
}

// Validate checks that every object has a shape and that its pigment and
// finish indices are in range. Rendering code relies on this and indexes
// without further checks. Finish coefficients are not checked.
func (s *Scene) Validate() error {
	for i, obj := range s.Objects {
		if obj.Shape == nil {
			return fmt.Errorf("object %d: missing shape: %w", i, ErrMalformedScene)
		}
		if obj.PigmentIdx < 0 || obj.PigmentIdx >= len(s.Pigments) {
			return fmt.Errorf("object %d: pigment index %d out of range [0,%d): %w",
				i, obj.PigmentIdx, len(s.Pigments), ErrMalformedScene)
		}
		if obj.FinishIdx < 0 || obj.FinishIdx >= len(s.Finishes) {
			return fmt.Errorf("object %d: finish index %d out of range [0,%d): %w",
				i, obj.FinishIdx, len(s.Finishes), ErrMalformedScene)
		}
	}
	for i, p := range s.Pigments {
		if p == nil {
			return fmt.Errorf("pigment %d: missing: %w", i, ErrMalformedScene)
		}
	}
	return nil
}

// FindClosestHit tests ray against every object and returns the nearest hit.
// On equal distances the object listed first wins. A miss returns geometry.NoHit().
func (s *Scene) FindClosestHit(ray core.Ray) geometry.HitInfo {
	closest := geometry.NoHit()

	for i, obj := range s.Objects {
		hit, ok := geometry.Intersect(ray, obj.Shape)
		if ok && hit.T < closest.T {
			hit.ObjectIndex = i
			closest = hit
		}
	}

	return closest
}

// ObjectAt returns the pigment and finish of the object hit refers to
func (s *Scene) ObjectAt(hit geometry.HitInfo) (material.Pigment, material.Finish) {
	obj := s.Objects[hit.ObjectIndex]
	return s.Pigments[obj.PigmentIdx], s.Finishes[obj.FinishIdx]
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}

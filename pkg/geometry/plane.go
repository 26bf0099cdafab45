package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane is the half-space boundary a·x + b·y + c·z + d = 0.
// Points with a negative signed distance lie inside.
type Plane struct {
	A, B, C, D float64
}

// NewPlane creates a plane and rescales it so (A, B, C) is a unit normal.
// A zero normal is left as given.
func NewPlane(a, b, c, d float64) Plane {
	p := Plane{A: a, B: b, C: c, D: d}
	if length := math.Sqrt(a*a + b*b + c*c); length > 0 {
		p.A /= length
		p.B /= length
		p.C /= length
		p.D /= length
	}
	return p
}

// Normal returns the plane normal (A, B, C)
func (p Plane) Normal() core.Vec3 {
	return core.NewVec3(p.A, p.B, p.C)
}

// Distance returns the signed distance of point from the plane
func (p Plane) Distance(point core.Vec3) float64 {
	return p.A*point.X + p.B*point.Y + p.C*point.Z + p.D
}

package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The winding V0, V1, V2 fixes the geometric normal (V1-V0)×(V2-V0).
type Triangle struct {
	V0, V1, V2 core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2}
}

func (t *Triangle) Kind() Kind { return KindTriangle }
func (t *Triangle) primitive() {}

// Normal returns the unit geometric normal of the triangle
func (t *Triangle) Normal() core.Vec3 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray) (HitInfo, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the triangle's plane
	if math.Abs(a) < core.Epsilon {
		return NoHit(), false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return NoHit(), false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return NoHit(), false
	}

	dist := f * edge2.Dot(q)
	if dist <= core.Epsilon {
		return NoHit(), false
	}

	return newHit(ray, dist, edge1.Cross(edge2)), true
}

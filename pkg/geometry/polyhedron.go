package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Polyhedron is a bounded convex solid: the intersection of the inside
// half-spaces of its faces
type Polyhedron struct {
	Faces []Plane
}

// NewPolyhedron creates a polyhedron from its bounding planes
func NewPolyhedron(faces ...Plane) *Polyhedron {
	return &Polyhedron{Faces: faces}
}

func (p *Polyhedron) Kind() Kind { return KindPolyhedron }
func (p *Polyhedron) primitive() {}

// Hit clips the ray against every face (slab test) and returns the entry point,
// or the exit point when the ray starts inside the solid
func (p *Polyhedron) Hit(ray core.Ray) (HitInfo, bool) {
	tNear := -math.MaxFloat64
	tFar := math.MaxFloat64
	var nearNormal core.Vec3
	foundNear := false

	for _, face := range p.Faces {
		n := face.Normal()
		denom := n.Dot(ray.Direction)
		num := -face.Distance(ray.Origin)

		if math.Abs(denom) < core.Epsilon {
			// Parallel to the face: a miss unless the origin is inside it
			if num < 0 {
				return NoHit(), false
			}
			continue
		}

		t := num / denom
		if denom < 0 {
			// Entering
			if t > tNear {
				tNear = t
				nearNormal = n
				foundNear = true
			}
		} else if t < tFar {
			// Exiting
			tFar = t
		}

		if tNear > tFar {
			return NoHit(), false
		}
	}

	if tNear <= core.Epsilon {
		// Origin is inside: report the exit face instead
		tNear = tFar
		foundNear = false
		for _, face := range p.Faces {
			n := face.Normal()
			denom := n.Dot(ray.Direction)
			if denom <= core.Epsilon {
				continue
			}
			t := -face.Distance(ray.Origin) / denom
			if math.Abs(t-tFar) < core.Epsilon {
				nearNormal = n // newHit flips it toward the ray
				foundNear = true
				break
			}
		}
	}

	if tNear <= core.Epsilon || !foundNear {
		return NoHit(), false
	}

	return newHit(ray, tNear, nearNormal), true
}

package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Kind identifies one of the supported primitive shapes
type Kind int

const (
	KindSphere Kind = iota
	KindPolyhedron
	KindTriangle
	KindCylinder
	KindCone
	KindQuadric
)

var kindNames = [...]string{
	KindSphere:     "sphere",
	KindPolyhedron: "polyhedron",
	KindTriangle:   "triangle",
	KindCylinder:   "cylinder",
	KindCone:       "cone",
	KindQuadric:    "quadric",
}

// String returns the scene-file keyword for the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Primitive is the closed set of ray-intersectable shapes:
// *Sphere, *Polyhedron, *Triangle, *Cylinder, *Cone and *Quadric.
// The unexported method keeps the set sealed to this package.
type Primitive interface {
	Kind() Kind
	primitive()
}

// Intersect dispatches ray against the concrete primitive and returns the
// nearest hit beyond core.Epsilon
func Intersect(ray core.Ray, p Primitive) (HitInfo, bool) {
	switch shape := p.(type) {
	case *Sphere:
		return shape.Hit(ray)
	case *Polyhedron:
		return shape.Hit(ray)
	case *Triangle:
		return shape.Hit(ray)
	case *Cylinder:
		return shape.Hit(ray)
	case *Cone:
		return shape.Hit(ray)
	case *Quadric:
		return shape.Hit(ray)
	}
	return NoHit(), false
}

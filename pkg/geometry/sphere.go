package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) Kind() Kind { return KindSphere }
func (s *Sphere) primitive() {}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (HitInfo, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t1, t2, ok := SolveQuadratic(a, b, c)
	if !ok {
		return NoHit(), false
	}

	t, ok := nearestRoot(t1, t2)
	if !ok {
		return NoHit(), false
	}

	point := ray.At(t)
	return newHit(ray, t, point.Subtract(s.Center)), true
}

package core

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized so every
// distance computed along the ray is in world units.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

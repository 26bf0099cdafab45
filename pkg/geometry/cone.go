package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Cone represents a finite open cone with its apex at Base, opening along the
// unit Axis to a circle of Radius at distance Height
type Cone struct {
	Base   core.Vec3
	Axis   core.Vec3
	Height float64
	Radius float64
}

// NewCone creates a new cone. The axis is normalized.
func NewCone(apex, axis core.Vec3, height, radius float64) *Cone {
	return &Cone{
		Base:   apex,
		Axis:   axis.Normalize(),
		Height: height,
		Radius: radius,
	}
}

func (c *Cone) Kind() Kind { return KindCone }
func (c *Cone) primitive() {}

// slopeFactor returns 1 + k² where k = Radius/Height is the tangent of the half-angle
func (c *Cone) slopeFactor() float64 {
	k := c.Radius / c.Height
	return 1 + k*k
}

// Hit tests if a ray intersects with the cone wall between the apex and Height.
// A cone without positive height is never hit.
func (c *Cone) Hit(ray core.Ray) (HitInfo, bool) {
	if c.Height <= 0 {
		return NoHit(), false
	}
	axis := c.Axis
	k2 := c.slopeFactor()
	delta := ray.Origin.Subtract(c.Base)

	DV := ray.Direction.Dot(axis)
	deltaV := delta.Dot(axis)

	a := ray.Direction.Dot(ray.Direction) - k2*DV*DV
	b := 2.0 * (ray.Direction.Dot(delta) - k2*DV*deltaV)
	cc := delta.Dot(delta) - k2*deltaV*deltaV

	t, ok := boundedRoot(ray, a, b, cc, c.Base, axis, c.Height)
	if !ok {
		return NoHit(), false
	}

	op := ray.At(t).Subtract(c.Base)
	h := op.Dot(axis)
	normal := op.Subtract(axis.Multiply(h * k2))
	return newHit(ray, t, normal), true
}

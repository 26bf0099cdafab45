package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Cylinder represents a finite open cylinder (no caps) starting at Base and
// extending Height along the unit Axis
type Cylinder struct {
	Base   core.Vec3
	Axis   core.Vec3
	Height float64
	Radius float64
}

// NewCylinder creates a new cylinder. The axis is normalized.
func NewCylinder(base, axis core.Vec3, height, radius float64) *Cylinder {
	return &Cylinder{
		Base:   base,
		Axis:   axis.Normalize(),
		Height: height,
		Radius: radius,
	}
}

func (c *Cylinder) Kind() Kind { return KindCylinder }
func (c *Cylinder) primitive() {}

// Hit tests if a ray intersects with the cylinder wall between 0 and Height
func (c *Cylinder) Hit(ray core.Ray) (HitInfo, bool) {
	if c.Height <= 0 {
		return NoHit(), false
	}
	axis := c.Axis
	delta := ray.Origin.Subtract(c.Base)

	DV := ray.Direction.Dot(axis) // D · V̂
	deltaV := delta.Dot(axis)     // Δ · V̂

	// Project direction and offset onto the plane perpendicular to the axis
	a := ray.Direction.Dot(ray.Direction) - DV*DV
	b := 2.0 * (ray.Direction.Dot(delta) - DV*deltaV)
	cc := delta.Dot(delta) - deltaV*deltaV - c.Radius*c.Radius

	t, ok := boundedRoot(ray, a, b, cc, c.Base, axis, c.Height)
	if !ok {
		return NoHit(), false
	}

	// Radial component of the hit point
	op := ray.At(t).Subtract(c.Base)
	radial := op.Subtract(axis.Multiply(op.Dot(axis)))
	return newHit(ray, t, radial), true
}

// boundedRoot solves the quadratic and returns the smaller root whose hit point
// projects onto the axis within [0, height], falling back to the other root
func boundedRoot(ray core.Ray, a, b, c float64, base, axis core.Vec3, height float64) (float64, bool) {
	t1, t2, ok := SolveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}

	withinHeight := func(t float64) bool {
		if t <= core.Epsilon {
			return false
		}
		h := ray.At(t).Subtract(base).Dot(axis)
		return h >= 0 && h <= height
	}

	lo, hi := min(t1, t2), max(t1, t2)
	if withinHeight(lo) {
		return lo, true
	}
	if withinHeight(hi) {
		return hi, true
	}
	return 0, false
}

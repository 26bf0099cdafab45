package geometry

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Quadric is the general second-degree surface
// Ax² + By² + Cz² + Dxy + Exz + Fyz + Gx + Hy + Iz + J = 0
type Quadric struct {
	A, B, C, D, E, F, G, H, I, J float64
}

// NewQuadric creates a quadric from its ten coefficients in A..J order
func NewQuadric(coeffs [10]float64) *Quadric {
	return &Quadric{
		A: coeffs[0], B: coeffs[1], C: coeffs[2], D: coeffs[3], E: coeffs[4],
		F: coeffs[5], G: coeffs[6], H: coeffs[7], I: coeffs[8], J: coeffs[9],
	}
}

func (q *Quadric) Kind() Kind { return KindQuadric }
func (q *Quadric) primitive() {}

// Evaluate returns the value of the implicit function at p
func (q *Quadric) Evaluate(p core.Vec3) float64 {
	return q.A*p.X*p.X + q.B*p.Y*p.Y + q.C*p.Z*p.Z +
		q.D*p.X*p.Y + q.E*p.X*p.Z + q.F*p.Y*p.Z +
		q.G*p.X + q.H*p.Y + q.I*p.Z + q.J
}

// Gradient returns the analytic gradient of the implicit function at p
func (q *Quadric) Gradient(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		2.0*q.A*p.X+q.D*p.Y+q.E*p.Z+q.G,
		2.0*q.B*p.Y+q.D*p.X+q.F*p.Z+q.H,
		2.0*q.C*p.Z+q.E*p.X+q.F*p.Y+q.I,
	)
}

// Hit substitutes the ray into the implicit equation and solves for t
func (q *Quadric) Hit(ray core.Ray) (HitInfo, bool) {
	o, d := ray.Origin, ray.Direction

	a := q.A*d.X*d.X + q.B*d.Y*d.Y + q.C*d.Z*d.Z +
		q.D*d.X*d.Y + q.E*d.X*d.Z + q.F*d.Y*d.Z

	b := 2.0*(q.A*o.X*d.X+q.B*o.Y*d.Y+q.C*o.Z*d.Z) +
		q.D*(o.X*d.Y+o.Y*d.X) + q.E*(o.X*d.Z+o.Z*d.X) + q.F*(o.Y*d.Z+o.Z*d.Y) +
		q.G*d.X + q.H*d.Y + q.I*d.Z

	c := q.Evaluate(o)

	t1, t2, ok := SolveQuadratic(a, b, c)
	if !ok {
		return NoHit(), false
	}

	t, ok := nearestRoot(t1, t2)
	if !ok {
		return NoHit(), false
	}

	return newHit(ray, t, q.Gradient(ray.At(t))), true
}

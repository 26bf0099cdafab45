package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// SolveQuadratic solves a·t² + b·t + c = 0.
// It reports false when the discriminant is negative. For a > 0 the roots come
// back ordered (t1 <= t2); callers that can produce a negative a must not rely
// on the order. When |a| is below core.Epsilon the equation is solved as the
// linear b·t + c = 0 and both roots are equal; a = b = 0 has no solution.
func SolveQuadratic(a, b, c float64) (t1, t2 float64, ok bool) {
	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			return 0, 0, false
		}
		t := -c / b
		return t, t, true
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b - sqrtD) / (2 * a)
	t2 = (-b + sqrtD) / (2 * a)
	return t1, t2, true
}

// nearestRoot returns the smallest of two roots lying beyond core.Epsilon
func nearestRoot(t1, t2 float64) (float64, bool) {
	lo, hi := min(t1, t2), max(t1, t2)
	if lo > core.Epsilon {
		return lo, true
	}
	if hi > core.Epsilon {
		return hi, true
	}
	return 0, false
}

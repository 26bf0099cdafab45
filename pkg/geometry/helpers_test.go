package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// approxEqual reports whether two floats agree within tolerance
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// vecApproxEqual reports whether two vectors agree component-wise within tolerance
func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return approxEqual(a.X, b.X, tolerance) &&
		approxEqual(a.Y, b.Y, tolerance) &&
		approxEqual(a.Z, b.Z, tolerance)
}

// hitCase describes one expected solver outcome
type hitCase struct {
	name           string
	ray            core.Ray
	shouldHit      bool
	expectedT      float64
	expectedPoint  core.Vec3
	expectedNormal core.Vec3
}

// checkHit compares a solver result against the expected outcome
func checkHit(t *testing.T, tc hitCase, hit HitInfo, isHit bool) {
	t.Helper()
	const tolerance = 1e-6

	if isHit != tc.shouldHit {
		t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tc.shouldHit, isHit, hit.T)
	}
	if !tc.shouldHit {
		if hit.Hit || !math.IsInf(hit.T, 1) {
			t.Errorf("Expected miss sentinel, got %+v", hit)
		}
		return
	}

	if !hit.Hit {
		t.Errorf("Expected Hit flag to be set")
	}
	if !approxEqual(hit.T, tc.expectedT, tolerance) {
		t.Errorf("Expected t=%f, got t=%f", tc.expectedT, hit.T)
	}
	if !vecApproxEqual(hit.Point, tc.expectedPoint, tolerance) {
		t.Errorf("Expected point %v, got %v", tc.expectedPoint, hit.Point)
	}
	if !vecApproxEqual(hit.Normal, tc.expectedNormal, tolerance) {
		t.Errorf("Expected normal %v, got %v", tc.expectedNormal, hit.Normal)
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		wantOK  bool
		want1   float64
		want2   float64
	}{
		{"two real roots", 1, -3, 2, true, 1, 2},
		{"double root", 1, -2, 1, true, 1, 1},
		{"negative discriminant", 1, 0, 1, false, 0, 0},
		{"negative leading coefficient", -1, 0, 4, true, 2, -2},
		{"linear fallback", 0, 2, -4, true, 2, 2},
		{"no equation at all", 0, 0, 5, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2, ok := SolveQuadratic(tt.a, tt.b, tt.c)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%t, got %t", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if !approxEqual(t1, tt.want1, 1e-12) || !approxEqual(t2, tt.want2, 1e-12) {
				t.Errorf("Expected roots (%f, %f), got (%f, %f)", tt.want1, tt.want2, t1, t2)
			}
		})
	}
}

func TestNearestRoot(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 float64
		want   float64
		wantOK bool
	}{
		{"both ahead", 2, 5, 2, true},
		{"reversed order", 5, 2, 2, true},
		{"origin inside", -1, 3, 3, true},
		{"both behind", -4, -1, 0, false},
		{"root at epsilon rejected", core.Epsilon, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nearestRoot(tt.t1, tt.t2)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%t, got %t", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestAdjustNormal(t *testing.T) {
	n := core.NewVec3(0, 0, 1)

	if got := AdjustNormal(n, core.NewVec3(0, 0, -1)); !got.Equals(n) {
		t.Errorf("Normal facing the ray should be kept, got %v", got)
	}
	if got := AdjustNormal(n, core.NewVec3(0, 0, 1)); !got.Equals(n.Negate()) {
		t.Errorf("Normal facing away from the ray should be flipped, got %v", got)
	}
}

func TestNoHit(t *testing.T) {
	miss := NoHit()
	if miss.Hit || !math.IsInf(miss.T, 1) || miss.ObjectIndex != -1 {
		t.Errorf("Unexpected miss sentinel %+v", miss)
	}
}

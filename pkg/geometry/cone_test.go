package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestCone_Hit(t *testing.T) {
	// Apex at the origin opening up +Y; radius 1 at height 1 (45° half-angle)
	cone := NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1.0, 1.0)
	diag := 1 / math.Sqrt2

	tests := []hitCase{
		{
			name:           "side hit halfway up",
			ray:            core.NewRay(core.NewVec3(2, 0.5, 0), core.NewVec3(-1, 0, 0)),
			shouldHit:      true,
			expectedT:      1.5,
			expectedPoint:  core.NewVec3(0.5, 0.5, 0),
			expectedNormal: core.NewVec3(diag, -diag, 0),
		},
		{
			name:           "origin on the axis hits the inner wall",
			ray:            core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, 0, 1)),
			shouldHit:      true,
			expectedT:      0.5,
			expectedPoint:  core.NewVec3(0, 0.5, 0.5),
			expectedNormal: core.NewVec3(0, diag, -diag),
		},
		{
			name:      "lower nappe below the apex is excluded",
			ray:       core.NewRay(core.NewVec3(2, -0.5, 0), core.NewVec3(-1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "above the height range",
			ray:       core.NewRay(core.NewVec3(2, 1.5, 0), core.NewVec3(-1, 0, 0)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := cone.Hit(tt.ray)
			checkHit(t, tt, hit, isHit)
		})
	}
}

func TestCone_ZeroHeightNeverHits(t *testing.T) {
	cone := NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0, 1)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), // through the apex
		core.NewRay(core.NewVec3(2, 0, 0.5), core.NewVec3(-1, 0, 0)),
	}
	for i, ray := range rays {
		if hit, ok := cone.Hit(ray); ok || hit.Hit {
			t.Errorf("ray %d: expected a miss, got %+v", i, hit)
		}
	}
}

func TestCone_SlopeFactor(t *testing.T) {
	cone := NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 2.0, 1.0)
	if got := cone.slopeFactor(); !approxEqual(got, 1.25, 1e-12) {
		t.Errorf("Expected 1 + (1/2)² = 1.25, got %f", got)
	}
}

package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Vec3
}

package integrator

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

const (
	// MaxDepth bounds the number of recursive reflection/refraction bounces
	MaxDepth = 5

	// ShadowBias offsets secondary ray origins off the surface
	ShadowBias = 0.001
)

// BackgroundColor is returned for rays that leave the scene
var BackgroundColor = core.NewVec3(0.1, 0.1, 0.1)

// WhittedIntegrator implements recursive Whitted-style ray tracing:
// Phong local illumination with hard shadows plus perfect specular
// reflection and refraction.
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// RayColor traces a primary ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return w.TraceRay(ray, s, 0)
}

// TraceRay returns the color seen along ray at the given recursion depth.
// Every channel of the result is in [0,1].
func (w *WhittedIntegrator) TraceRay(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth > MaxDepth {
		return BackgroundColor
	}

	hit := s.FindClosestHit(ray)
	if !hit.Hit {
		return BackgroundColor
	}

	return w.shade(ray, hit, s, depth)
}

func (w *WhittedIntegrator) shade(ray core.Ray, hit geometry.HitInfo, s *scene.Scene, depth int) core.Vec3 {
	pigment, finish := s.ObjectAt(hit)

	color := w.localIllumination(ray, hit, s, pigment.Evaluate(hit.Point), finish)
	color = color.Add(w.reflection(ray, hit, s, finish, depth))
	color = color.Add(w.refraction(ray, hit, s, finish, depth))

	return color.Clamp(0, 1)
}

// localIllumination evaluates the Phong model. Lights[0] only contributes
// the ambient term; the rest are shadowed, attenuated point lights.
func (w *WhittedIntegrator) localIllumination(ray core.Ray, hit geometry.HitInfo, s *scene.Scene, base core.Vec3, finish material.Finish) core.Vec3 {
	color := core.Vec3{}
	if len(s.Lights) == 0 {
		return color
	}

	color = base.MultiplyVec(s.Lights[0].Color).Multiply(finish.Ka)
	viewDir := ray.Origin.Subtract(hit.Point).Normalize()

	for _, light := range s.Lights[1:] {
		lightDir, lightDist := light.Sample(hit.Point)
		if w.occluded(hit, lightDir, lightDist, s) {
			continue
		}

		atten := light.AttenuationAt(lightDist)

		diff := math.Max(0, hit.Normal.Dot(lightDir))
		color = color.Add(base.MultiplyVec(light.Color).Multiply(finish.Kd * diff * atten))

		reflected := lightDir.Reflect(hit.Normal)
		spec := math.Pow(math.Max(0, viewDir.Dot(reflected)), finish.Alpha)
		color = color.Add(light.Color.Multiply(finish.Ks * spec * atten))
	}

	return color.Clamp(0, 1)
}

// occluded reports whether any object lies between the hit point and a light
func (w *WhittedIntegrator) occluded(hit geometry.HitInfo, lightDir core.Vec3, lightDist float64, s *scene.Scene) bool {
	shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(ShadowBias)), lightDir)
	blocker := s.FindClosestHit(shadowRay)
	return blocker.Hit && blocker.T < lightDist-ShadowBias
}

func (w *WhittedIntegrator) reflection(ray core.Ray, hit geometry.HitInfo, s *scene.Scene, finish material.Finish, depth int) core.Vec3 {
	if !finish.Reflective() || depth >= MaxDepth {
		return core.Vec3{}
	}

	reflected := core.NewRay(hit.Point.Add(hit.Normal.Multiply(ShadowBias)), ray.Direction.Reflect(hit.Normal))
	return w.TraceRay(reflected, s, depth+1).Multiply(finish.Kr)
}

func (w *WhittedIntegrator) refraction(ray core.Ray, hit geometry.HitInfo, s *scene.Scene, finish material.Finish, depth int) core.Vec3 {
	if !finish.Transmissive() || depth >= MaxDepth {
		return core.Vec3{}
	}

	dir, ok := Refract(ray.Direction, hit.OutwardNormal(), finish.IOR)
	if !ok {
		return core.Vec3{}
	}

	refracted := core.NewRay(hit.Point.Subtract(hit.Normal.Multiply(ShadowBias)), dir)
	return w.TraceRay(refracted, s, depth+1).Multiply(finish.Kt)
}

// Refract bends the unit direction incident through a surface with outward
// normal and index of refraction ior using Snell's law. A ray travelling
// against the normal is entering the medium; one travelling with it is
// leaving, and the index ratio is inverted. Reports false on total internal
// reflection.
func Refract(incident, normal core.Vec3, ior float64) (core.Vec3, bool) {
	cosi := incident.Dot(normal)
	etai, etat := 1.0, ior
	n := normal

	if cosi < 0 {
		cosi = -cosi
	} else {
		etai, etat = etat, etai
		n = normal.Negate()
	}

	eta := etai / etat
	k := 1.0 - eta*eta*(1.0-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}

	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k))).Normalize(), true
}

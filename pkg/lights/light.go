package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Light is a point light with a constant/linear/quadratic attenuation law.
//
// By convention the first light of a scene is ambient-only: only its Color
// is used, scaled by each surface's ambient coefficient, with no shadow test
// and no distance falloff. Every later light is a shadowed point light.
type Light struct {
	Position    core.Vec3
	Color       core.Vec3
	Attenuation core.Vec3 // X = constant, Y = linear, Z = quadratic
}

// NewLight creates a light
func NewLight(position, color, attenuation core.Vec3) Light {
	return Light{Position: position, Color: color, Attenuation: attenuation}
}

// NewAmbientLight creates a light meant for slot 0 of a scene's light list
func NewAmbientLight(color core.Vec3) Light {
	return Light{Color: color, Attenuation: core.NewVec3(1, 0, 0)}
}

// AttenuationAt returns 1/(c0 + c1·d + c2·d²) for distance d
func (l Light) AttenuationAt(distance float64) float64 {
	a := l.Attenuation
	return 1.0 / (a.X + a.Y*distance + a.Z*distance*distance)
}

// Sample returns the unit direction from point toward the light and the distance to it
func (l Light) Sample(point core.Vec3) (direction core.Vec3, distance float64) {
	toLight := l.Position.Subtract(point)
	distance = toLight.Length()
	return toLight.Normalize(), distance
}

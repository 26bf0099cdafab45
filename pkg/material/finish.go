package material

// Finish holds the reflectance coefficients of a surface.
// All coefficients are expected to be non-negative; Kr or Kt of zero disables
// the corresponding recursive term.
type Finish struct {
	Ka    float64 `json:"ka"`    // Ambient
	Kd    float64 `json:"kd"`    // Diffuse
	Ks    float64 `json:"ks"`    // Specular
	Alpha float64 `json:"alpha"` // Phong exponent
	Kr    float64 `json:"kr"`    // Reflection
	Kt    float64 `json:"kt"`    // Transmission
	IOR   float64 `json:"ior"`   // Index of refraction
}

// DefaultFinish returns a mostly diffuse, non-reflective, opaque finish
func DefaultFinish() Finish {
	return Finish{
		Ka:    0.1,
		Kd:    0.7,
		Ks:    0.2,
		Alpha: 50.0,
		IOR:   1.5,
	}
}

// Reflective reports whether the finish spawns reflection rays
func (f Finish) Reflective() bool {
	return f.Kr > 0
}

// Transmissive reports whether the finish spawns refraction rays
func (f Finish) Transmissive() bool {
	return f.Kt > 0
}

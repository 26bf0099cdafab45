package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// HitInfo contains information about a ray-object intersection
type HitInfo struct {
	Hit         bool      // Whether anything was struck
	T           float64   // Distance along the ray, +Inf on a miss
	Point       core.Vec3 // Point of intersection
	Normal      core.Vec3 // Unit surface normal facing the ray origin
	FrontFace   bool      // Whether the ray struck the outward side of the surface
	ObjectIndex int       // Index of the struck object in the scene, -1 on a miss
}

// NoHit returns the miss sentinel
func NoHit() HitInfo {
	return HitInfo{T: math.Inf(1), ObjectIndex: -1}
}

// newHit fills a hit record for distance t along ray with the given outward normal.
// The normal is normalized and flipped to face the ray origin.
func newHit(ray core.Ray, t float64, outward core.Vec3) HitInfo {
	outward = outward.Normalize()
	return HitInfo{
		Hit:         true,
		T:           t,
		Point:       ray.At(t),
		Normal:      AdjustNormal(outward, ray.Direction),
		FrontFace:   outward.Dot(ray.Direction) <= 0,
		ObjectIndex: -1,
	}
}

// OutwardNormal returns the surface normal on the outward side, undoing the
// flip applied for back-face hits
func (h HitInfo) OutwardNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// AdjustNormal flips normal when it points along rayDir, so the
// returned normal always satisfies normal·rayDir <= 0
func AdjustNormal(normal, rayDir core.Vec3) core.Vec3 {
	if normal.Dot(rayDir) > 0 {
		return normal.Negate()
	}
	return normal
}

package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect: the sphere
// variants and BVH nodes. Implementations never mutate after construction,
// so a Hittable is safe to share across render workers.
type Hittable interface {
	// Hit returns the nearest intersection with t in (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter
	// interval [time0, time1]. The bool is false when no finite box exists;
	// all current shapes always report one.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material decides how a ray scatters at a hit point
type Material interface {
	// Scatter returns the scattered ray and per-channel attenuation.
	// A false result means the ray was absorbed; the attenuation is
	// still meaningful for diagnostics but carries no radiance.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray, starting at the hit point
	Attenuation Vec3 // Per-channel color factor applied to the scattered radiance
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// Materials rely on the stored normal always opposing the incoming ray.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Logger interface for render progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}

package geometry

import (
	"github.com/lumenray/lumen/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1. The geometry itself is immutable; the effective center
// is a function of the querying ray's time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving between two centers over [time0, time1]
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time. The
// interpolation is deliberately not clamped; callers keep ray times within
// the shutter interval.
func (ms *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - ms.Time0) / (ms.Time1 - ms.Time0)
	return ms.Center0.Add(ms.Center1.Subtract(ms.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (ms *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(ray, ms.CenterAt(ray.Time), ms.Radius, ms.Material, tMin, tMax)
}

// BoundingBox returns the union of the boxes at time0 and time1. This is a
// conservative approximation of the swept volume, not a tight hull.
func (ms *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(ms.Radius, ms.Radius, ms.Radius)

	box0 := core.NewAABB(
		ms.CenterAt(time0).Subtract(radius),
		ms.CenterAt(time0).Add(radius),
	)
	box1 := core.NewAABB(
		ms.CenterAt(time1).Subtract(radius),
		ms.CenterAt(time1).Add(radius),
	)

	return box0.Union(box1), true
}

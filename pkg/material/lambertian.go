package material

import (
	"math/rand"

	"github.com/lumenray/lumen/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scattered direction is normal + random unit vector, a cosine-weighted
// diffuse approximation. Diffuse rays are never absorbed.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := diffuseDirection(hit.Normal, core.RandomUnitVector(random))

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo,
	}, true
}

// diffuseDirection offsets the normal by a unit-sphere sample, falling back
// to the bare normal when the sample nearly cancels it.
func diffuseDirection(normal, offset core.Vec3) core.Vec3 {
	direction := normal.Add(offset)
	if direction.NearZero() {
		return normal
	}
	return direction
}

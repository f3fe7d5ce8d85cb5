// Package integrator implements the recursive Monte Carlo path tracing
// estimator that turns camera rays into radiance values.
package integrator

import (
	"math"
	"math/rand"

	"github.com/lumenray/lumen/pkg/core"
)

// Epsilon below which hits are rejected, guarding against self-intersection
// of a just-scattered ray with its own surface (shadow acne)
const hitEpsilon = 0.001

// PathTracer estimates radiance along rays by recursively sampling material
// scattering. The scene's only light source is the background gradient.
type PathTracer struct {
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color straight down
}

// NewPathTracer creates a path tracer with the classic white-to-blue sky
func NewPathTracer() *PathTracer {
	return &PathTracer{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor returns the radiance arriving along the ray, following scattered
// rays up to depth bounces. Depth is the sole termination guarantee: at
// depth <= 0 the estimate is black, regardless of scene content.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Ray absorbed
		return core.Vec3{}
	}

	incoming := pt.RayColor(scatter.Scattered, world, depth-1, random)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// backgroundGradient blends between the bottom and top colors based on the
// vertical component of the normalized ray direction
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}

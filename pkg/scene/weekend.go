package scene

import (
	"math/rand"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/geometry"
	"github.com/lumenray/lumen/pkg/material"
	"github.com/lumenray/lumen/pkg/renderer"
)

// NewWeekendScene creates the classic randomized cover scene: a large ground
// sphere, a 22x22 grid of small randomized spheres (diffuse ones bobbing
// upward over the shutter interval), and three large hero spheres.
func NewWeekendScene(random *rand.Rand, aspectRatio float64) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.1,
			FocusDistance: 10.0,
			Time0:         0.0,
			Time1:         1.0,
		},
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Objects = append(s.Objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			const radius = 0.2

			// Keep the grid clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, drifting upward during the shutter
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.Objects = append(s.Objects, geometry.NewMovingSphere(
					center, center1, 0.0, 1.0, radius, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// Metal
				albedo := core.RandomVec3Range(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				s.Objects = append(s.Objects, geometry.NewSphere(
					center, radius, material.NewMetal(albedo, fuzz)))
			default:
				// Glass
				s.Objects = append(s.Objects, geometry.NewSphere(
					center, radius, material.NewDielectric(1.5)))
			}
		}
	}

	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s.finalize(random)
	return s
}

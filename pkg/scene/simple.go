package scene

import (
	"math/rand"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/geometry"
	"github.com/lumenray/lumen/pkg/material"
	"github.com/lumenray/lumen/pkg/renderer"
)

// NewSimpleScene creates a small deterministic scene: a diffuse sphere
// flanked by glass and metal over a matte ground. Useful for fast renders
// and as a fixed regression target.
func NewSimpleScene(aspectRatio float64) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0.5, 2),
			LookAt:      core.NewVec3(0, 0, -1),
			VUp:         core.NewVec3(0, 1, 0),
			VFov:        60.0,
			AspectRatio: aspectRatio,
		},
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	s.Objects = append(s.Objects,
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	)

	// Scene content is fixed; the generator only seeds BVH axis choices
	s.finalize(rand.New(rand.NewSource(1)))
	return s
}

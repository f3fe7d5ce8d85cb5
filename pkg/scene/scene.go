// Package scene constructs renderable scenes: primitive lists, materials,
// camera placement, and the BVH over it all.
package scene

import (
	"math/rand"

	"github.com/lumenray/lumen/pkg/core"
	"github.com/lumenray/lumen/pkg/geometry"
	"github.com/lumenray/lumen/pkg/renderer"
)

// Scene bundles the geometry, camera, and render defaults for one rendering.
// Everything is built once and read-only afterwards, so a Scene is safe to
// share across render workers.
type Scene struct {
	Objects        []core.Hittable
	World          core.Hittable // BVH over Objects
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3
	BottomColor    core.Vec3

	camera *renderer.Camera
}

// finalize builds the BVH and camera once all objects are in place
func (s *Scene) finalize(random *rand.Rand) {
	s.World = geometry.NewBVH(s.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1, random)
	s.camera = renderer.NewCamera(s.CameraConfig)
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

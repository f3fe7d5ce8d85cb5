package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenray/lumen/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 0.5, random)
	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin at camera, got %v", ray.Origin)
	}

	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Normalize().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected center ray toward %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// With a 90 degree vertical fov, the top-center ray rises at 45 degrees
	config := testCameraConfig()
	config.AspectRatio = 1.0
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 1.0, random)
	dir := ray.Direction.Normalize()
	if math.Abs(dir.Y-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("Expected 45 degree elevation, got direction %v", dir)
	}
}

func TestCamera_ZeroApertureIsDeterministic(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	first := camera.GetRay(0.3, 0.7, random)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.3, 0.7, random)
		if ray.Origin != first.Origin || ray.Direction != first.Direction {
			t.Fatal("Expected identical rays with zero aperture and zero shutter interval")
		}
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.2
	config.FocusDistance = 1.0
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	sawJitter := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		offset := ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length()
		if offset > 0.1+1e-12 {
			t.Fatalf("Origin jitter %v exceeds lens radius", offset)
		}
		if offset > 0 {
			sawJitter = true
		}
	}
	if !sawJitter {
		t.Error("Expected lens sampling to move the ray origin")
	}
}

func TestCamera_ShutterTimeSampling(t *testing.T) {
	config := testCameraConfig()
	config.Time0 = 0.25
	config.Time1 = 0.75
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	sawSpread := false
	var firstTime float64
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		if ray.Time < 0.25 || ray.Time >= 0.75 {
			t.Fatalf("Ray time %v outside shutter interval", ray.Time)
		}
		if i == 0 {
			firstTime = ray.Time
		} else if ray.Time != firstTime {
			sawSpread = true
		}
	}
	if !sawSpread {
		t.Error("Expected varying ray times across the shutter interval")
	}
}

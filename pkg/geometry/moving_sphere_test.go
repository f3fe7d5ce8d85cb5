package geometry

import (
	"math"
	"testing"

	"github.com/lumenray/lumen/pkg/core"
)

func TestMovingSphere_CenterAt(t *testing.T) {
	ms := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.0, 1.0, 0.5, testMaterial{},
	)

	tests := []struct {
		time     float64
		expected core.Vec3
	}{
		{0.0, core.NewVec3(0, 0, 0)},
		{0.5, core.NewVec3(1, 0, 0)},
		{1.0, core.NewVec3(2, 0, 0)},
		{1.5, core.NewVec3(3, 0, 0)}, // extrapolation is not clamped
	}

	for _, tt := range tests {
		if got := ms.CenterAt(tt.time); got.Subtract(tt.expected).Length() > 1e-12 {
			t.Errorf("CenterAt(%v): expected %v, got %v", tt.time, tt.expected, got)
		}
	}
}

func TestMovingSphere_HitAtRayTime(t *testing.T) {
	// Sphere moves from x=0 to x=2 over the shutter; a ray fired down the
	// z axis at x=2 only connects at the end of the interval
	ms := NewMovingSphere(
		core.NewVec3(0, 0, -3), core.NewVec3(2, 0, -3),
		0.0, 1.0, 0.5, testMaterial{},
	)

	atEnd := core.NewRayAt(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 1.0)
	hit, isHit := ms.Hit(atEnd, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit at time 1")
	}
	if math.Abs(hit.T-2.5) > 1e-12 {
		t.Errorf("Expected t=2.5, got %v", hit.T)
	}

	atStart := core.NewRayAt(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := ms.Hit(atStart, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss at time 0")
	}
}

func TestMovingSphere_BoundingBoxCoversEndpoints(t *testing.T) {
	ms := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.0, 1.0, 0.5, testMaterial{},
	)

	box, ok := ms.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}

	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(2.5, 0.5, 0.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestMovingSphere_BoundingBoxSubInterval(t *testing.T) {
	ms := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.0, 1.0, 0.5, testMaterial{},
	)

	// Box over half the shutter only covers half the travel
	box, ok := ms.BoundingBox(0, 0.5)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(1.5, 0.5, 0.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

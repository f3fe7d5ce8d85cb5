package core

import (
	"math/rand"
	"testing"
)

func TestAABB_HitBasic(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
	}{
		{
			name:    "Ray through center",
			ray:     NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			wantHit: true,
		},
		{
			name:    "Ray missing box",
			ray:     NewRay(NewVec3(0, 5, -5), NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:    "Ray pointing away",
			ray:     NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "Diagonal ray through corner region",
			ray:     NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)),
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1e9); got != tt.wantHit {
				t.Errorf("Expected hit=%v, got %v", tt.wantHit, got)
			}
		})
	}
}

// A ray whose origin lies strictly inside the box must hit for any direction.
func TestAABB_HitFromInside(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		origin := RandomVec3Range(random, -0.99, 0.99)
		direction := RandomUnitVector(random)
		ray := NewRay(origin, direction)
		if !box.Hit(ray, 0.001, 1e9) {
			t.Fatalf("Ray from inside missed: origin=%v direction=%v", origin, direction)
		}
	}
}

// Rays exactly parallel to a slab exercise the IEEE divide-by-zero path:
// inside the slab the interval is (-Inf, +Inf), outside it is empty.
func TestAABB_HitParallelRays(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	inside := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)) // x,y inside their slabs
	if !box.Hit(inside, 0.001, 1e9) {
		t.Error("Expected hit for parallel ray with origin inside slabs")
	}

	outside := NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)) // x outside its slab
	if box.Hit(outside, 0.001, 1e9) {
		t.Error("Expected miss for parallel ray with origin outside slab")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 0), NewVec3(0.5, 2, 3))

	union := a.Union(b)
	expected := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 2, 3))
	if union != expected {
		t.Errorf("Expected %v, got %v", expected, union)
	}

	// Commutative
	if b.Union(a) != union {
		t.Error("Expected Union to be commutative")
	}

	// Associative
	c := NewAABB(NewVec3(5, 5, 5), NewVec3(6, 6, 6))
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Error("Expected Union to be associative")
	}
}

func TestAABB_IsValid(t *testing.T) {
	if !NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).IsValid() {
		t.Error("Expected valid box")
	}
	if NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1)).IsValid() {
		t.Error("Expected inverted box to be invalid")
	}
}

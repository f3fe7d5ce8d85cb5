package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/lumenray/lumen/pkg/core"
)

// BVHNode is a node in the Bounding Volume Hierarchy. The tree is built once
// per scene and is read-only afterwards, so it is safe to share across
// render workers. Leaves are the other Hittable variants; a node always has
// both children set (a single-object node points both at the same object).
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVH builds a BVH over the given objects for the shutter interval
// [time0, time1]. Building with zero objects, or with an object that reports
// no bounding box, is a fatal precondition violation.
//
// The axis used to order objects at each node is drawn from the given
// generator; the choice only affects traversal efficiency, never hit results.
func NewBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build BVH from zero objects")
	}

	// Copy so sorting never reorders the caller's slice
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, random)
}

func buildBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	node := &BVHNode{}
	axis := random.Intn(3)

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		// Greater box-minimum on the chosen axis goes first
		if boxMinAxis(objects[0], time0, time1, axis) > boxMinAxis(objects[1], time0, time1, axis) {
			node.Left = objects[0]
			node.Right = objects[1]
		} else {
			node.Left = objects[1]
			node.Right = objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxMinAxis(objects[i], time0, time1, axis) < boxMinAxis(objects[j], time0, time1, axis)
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], time0, time1, random)
		node.Right = buildBVH(objects[mid:], time0, time1, random)
	}

	leftBox, leftOK := node.Left.BoundingBox(time0, time1)
	rightBox, rightOK := node.Right.BoundingBox(time0, time1)
	if !leftOK || !rightOK {
		panic("geometry: object without a bounding box in BVH construction")
	}
	node.Box = leftBox.Union(rightBox)

	return node
}

// boxMinAxis returns the minimum corner of an object's bounding box along
// the given axis, for ordering objects during construction
func boxMinAxis(object core.Hittable, time0, time1 float64, axis int) float64 {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		panic(fmt.Sprintf("geometry: object %v has no bounding box", object))
	}
	return box.Min.Axis(axis)
}

// Hit returns the globally nearest intersection within (tMin, tMax).
// The right subtree is probed over an interval tightened by the left hit,
// so a farther right-hit can never shadow a nearer left-hit.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the precomputed union of the children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

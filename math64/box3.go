// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Box3 is an axis-aligned bounding box defined by its lower and upper
// bound corners.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// NewBox3 creates and returns a pointer to a new Box3 with the given
// bounds.
func NewBox3(min, max Vector3) *Box3 {
	return &Box3{Min: min, Max: max}
}

// Impossible returns the AABB sentinel (+MAX,+MAX,+MAX)/(-MAX,-MAX,-MAX):
// extending it by any other AABB (via Extend) yields that other AABB
// unchanged, so it is a safe starting accumulator for an envelope fold.
func Impossible() Box3 {
	return Box3{
		Min: Vector3{X: Max, Y: Max, Z: Max},
		Max: Vector3{X: -Max, Y: -Max, Z: -Max},
	}
}

// FullBox returns the full +/-MAX box, used as the conservative fallback
// AABB for a plane whose orientation is not axis-aligned.
func FullBox() Box3 {
	return Box3{
		Min: Vector3{X: -Max, Y: -Max, Z: -Max},
		Max: Vector3{X: Max, Y: Max, Z: Max},
	}
}

// ExpandByPoint grows this box, if needed, to contain point.
// Returns pointer to this updated box.
func (b *Box3) ExpandByPoint(point *Vector3) *Box3 {
	b.Min.Min(point)
	b.Max.Max(point)
	return b
}

// Extend returns the componentwise envelope of a and b: the smallest AABB
// containing both.
func Extend(a, b Box3) Box3 {
	r := a
	r.Min.Min(&b.Min)
	r.Max.Max(&b.Max)
	return r
}

// Center returns the center point of this box.
func (b *Box3) Center() Vector3 {
	c := Vector3{}
	c.AddVectors(&b.Min, &b.Max).MultiplyScalar(0.5)
	return c
}

// ContainsPoint returns whether this box contains point.
func (b *Box3) ContainsPoint(point *Vector3) bool {
	return !(point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z)
}

// IsIntersectionBox returns whether other overlaps this box.
func (b *Box3) IsIntersectionBox(other *Box3) bool {
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

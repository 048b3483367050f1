// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Ray is an oriented 3D line segment defined by an origin point and a
// direction vector. Direction is expected to be a unit vector.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates and returns a pointer to a new Ray with the given origin
// and direction.
func NewRay(origin, direction Vector3) *Ray {
	return &Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t from the ray's origin along its
// direction.
func (ray *Ray) At(t float64) Vector3 {
	p := ray.Direction
	p.MultiplyScalar(t).Add(&ray.Origin)
	return p
}

// Equals returns whether this ray is exactly equal to other.
func (ray *Ray) Equals(other *Ray) bool {
	return ray.Origin.Equals(&other.Origin) && ray.Direction.Equals(&other.Direction)
}

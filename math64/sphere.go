// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Sphere is a bounding sphere defined by a center and radius.
type Sphere struct {
	Center Vector3
	Radius float64
}

// NewSphere creates and returns a pointer to a new Sphere. If center is
// nil, the origin is used.
func NewSphere(center *Vector3, radius float64) *Sphere {
	s := &Sphere{Radius: radius}
	if center != nil {
		s.Center = *center
	}
	return s
}

// IntersectsSphere returns whether this sphere overlaps other: the
// bounding-sphere broad-phase test, ||c1-c2|| < r1+r2.
func (s *Sphere) IntersectsSphere(other *Sphere) bool {
	rs := s.Radius + other.Radius
	return s.Center.DistanceToSquared(&other.Center) < rs*rs
}

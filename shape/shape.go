// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the per-body collision geometry: a Shape is a
// variant over {Convex, Plane, Sphere, Particle}, each carrying its own
// transform relative to the body that owns it.
package shape

import (
	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/transform"
)

// Kind identifies which variant a Shape holds.
type Kind int

const (
	KindConvex Kind = iota
	KindPlane
	KindSphere
	KindParticle
)

// Shape is one piece of a body's collision geometry: a kind-specific
// payload plus the transform placing it in the body's own frame.
type Shape struct {
	Kind      Kind
	Transform transform.Transform3d

	Convex *convex.Convex // valid when Kind == KindConvex
	Radius float64        // valid when Kind == KindSphere
}

// NewConvex returns a Convex-kind shape at the given body-local transform.
func NewConvex(c *convex.Convex, t transform.Transform3d) Shape {
	return Shape{Kind: KindConvex, Transform: t, Convex: c}
}

// NewPlane returns a Plane-kind shape at the given body-local transform.
// The plane's world normal is its transform's orientation applied to +z.
func NewPlane(t transform.Transform3d) Shape {
	return Shape{Kind: KindPlane, Transform: t}
}

// NewSphere returns a Sphere-kind shape of the given radius at the given
// body-local transform (only the transform's origin matters for a
// sphere; its orientation is irrelevant).
func NewSphere(radius float64, t transform.Transform3d) Shape {
	return Shape{Kind: KindSphere, Transform: t, Radius: radius}
}

// NewParticle returns a Particle-kind shape (a zero-extent point) at the
// given body-local transform.
func NewParticle(t transform.Transform3d) Shape {
	return Shape{Kind: KindParticle, Transform: t}
}

// Volume returns this shape's volume: 0 for Plane and Particle, the
// exact sphere volume for Sphere (note the explicit float division: an
// integer (4/3) would truncate to 1 and silently corrupt every sphere's
// mass properties), and the hull's precomputed volume for Convex.
func (s *Shape) Volume() float64 {
	switch s.Kind {
	case KindSphere:
		return (4.0 / 3.0) * math64.Pi * s.Radius * s.Radius * s.Radius
	case KindConvex:
		return s.Convex.Volume
	default:
		return 0
	}
}

// worldTransform returns bodyFromShape placed into the frame defined by
// bodyToWorld: the shape's transform expressed in world space.
func (s *Shape) worldTransform(bodyToWorld *transform.Transform3d) transform.Transform3d {
	return s.Transform.PlaceIn(bodyToWorld)
}

// AABB returns this shape's world-space axis-aligned bounding box, given
// the transform placing its owning body in world space.
//
// Sphere is center±r. Convex is the envelope over its transformed
// vertices. Particle is degenerate at its world position. Plane is a
// half-infinite box clipped on the finite side by the plane's position
// along its (body-frame) normal axis; the core only supports planes
// whose orientation leaves +z axis-aligned. When it doesn't, the full
// ±MAX box is returned as a conservative fallback — broad-phase pruning
// against such a plane is defeated, which is acceptable for the typical
// single ground-plane case.
func (s *Shape) AABB(bodyToWorld *transform.Transform3d) math64.Box3 {
	world := s.worldTransform(bodyToWorld)

	switch s.Kind {
	case KindSphere:
		r := math64.NewVector3(s.Radius, s.Radius, s.Radius)
		min := world.Origin
		max := world.Origin
		min.Sub(r)
		max.Add(r)
		return math64.Box3{Min: min, Max: max}

	case KindParticle:
		return math64.Box3{Min: world.Origin, Max: world.Origin}

	case KindConvex:
		placed := convex.PlaceIn(&world, s.Convex)
		box := math64.Impossible()
		for i := range placed.Vertices {
			box.ExpandByPoint(&placed.Vertices[i])
		}
		return box

	case KindPlane:
		return planeAABB(&world)
	}

	return math64.Impossible()
}

// planeAABB implements the conditional axis-aligned half-infinite box
// described in AABB's doc comment.
func planeAABB(world *transform.Transform3d) math64.Box3 {
	up := math64.NewVector3(0, 0, 1)
	n := world.DirectionPlaceIn(up)
	p := world.Origin

	const one = 1 - math64.Epsilon
	switch {
	case n.Dot(math64.NewVector3(1, 0, 0)) > one:
		b := math64.FullBox()
		b.Max.X = p.X
		return b
	case n.Dot(math64.NewVector3(-1, 0, 0)) > one:
		b := math64.FullBox()
		b.Min.X = p.X
		return b
	case n.Dot(math64.NewVector3(0, 1, 0)) > one:
		b := math64.FullBox()
		b.Max.Y = p.Y
		return b
	case n.Dot(math64.NewVector3(0, -1, 0)) > one:
		b := math64.FullBox()
		b.Min.Y = p.Y
		return b
	case n.Dot(math64.NewVector3(0, 0, 1)) > one:
		b := math64.FullBox()
		b.Max.Z = p.Z
		return b
	case n.Dot(math64.NewVector3(0, 0, -1)) > one:
		b := math64.FullBox()
		b.Min.Z = p.Z
		return b
	default:
		return math64.FullBox()
	}
}

// WorldNormal returns this plane shape's world-space normal (its
// transform's orientation applied to +z). Only meaningful for KindPlane.
func (s *Shape) WorldNormal(bodyToWorld *transform.Transform3d) math64.Vector3 {
	world := s.worldTransform(bodyToWorld)
	up := math64.NewVector3(0, 0, 1)
	return world.DirectionPlaceIn(up)
}

// WorldOrigin returns this shape's world-space origin.
func (s *Shape) WorldOrigin(bodyToWorld *transform.Transform3d) math64.Vector3 {
	world := s.worldTransform(bodyToWorld)
	return world.Origin
}

// WorldTransform exposes worldTransform to other packages (body,
// collision) that need the shape's full world placement, not just its
// origin or normal.
func (s *Shape) WorldTransform(bodyToWorld *transform.Transform3d) transform.Transform3d {
	return s.worldTransform(bodyToWorld)
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body implements rigid bodies: a body is a mass, a world
// transform, a pair of velocities, and a list of shapes reframed into
// its own center-of-mass coordinates.
package body

import (
	"errors"

	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
)

// Sentinel errors returned by Compound's construction-time validation, so
// callers can distinguish failure kinds programmatically.
var (
	// ErrInvalidMass is returned for a negative mass. Zero is legal and
	// means static.
	ErrInvalidMass = errors.New("body: mass must not be negative")

	// ErrInvalidShape is returned for a convex with fewer than 4
	// vertices, a non-planar face, or zero volume on a dynamic body.
	ErrInvalidShape = errors.New("body: invalid convex shape")
)

// Material carries the surface properties used by the narrow-phase and
// equation-assembly stages to combine two bodies' friction and
// restitution into one contact's coefficients.
type Material struct {
	Bounciness float64
	Friction   float64
}

// Body is a rigid body: a mass, a world transform to its center-of-mass
// frame, linear/angular velocity, and the shapes that make it up,
// reframed into CoM coordinates at construction time.
type Body struct {
	ID       int
	UserData interface{}
	Material Material

	WorldToCoM   transform.Transform3d // world <- CoM frame
	BodyToCoM    transform.Transform3d // fixed at construction; CoM <- body-origin frame
	Velocity     math64.Vector3
	AngularVelocity math64.Vector3

	Mass            float64 // 0 means static
	InvMass         float64
	LocalInertia    math64.Matrix3 // diagonal
	InvLocalInertia math64.Matrix3
	InvWorldInertia math64.Matrix3

	LinearDamping  float64
	AngularDamping float64

	Force  math64.Vector3
	Torque math64.Vector3

	Shapes               []shape.Shape
	BoundingSphereRadius float64

	lastOrientation math64.Quaternion
}

// Compound builds a Body from a list of shapes (given in the body's own,
// pre-CoM frame) and user data. It computes the volume-weighted center
// of mass, reframes every shape into CoM coordinates, sets the world
// transform to the origin, and derives mass properties from the body's
// resulting AABB.
func Compound(shapes []shape.Shape, mass float64, mat Material, userData interface{}) (*Body, error) {
	if mass < 0 {
		return nil, ErrInvalidMass
	}
	for _, s := range shapes {
		if err := validateShape(s, mass); err != nil {
			return nil, err
		}
	}

	b := &Body{
		Material:   mat,
		UserData:   userData,
		Mass:       mass,
		WorldToCoM: transform.AtOrigin(),
	}

	com := centerOfMass(shapes)
	atCoM := transform.AtPoint(com)
	b.BodyToCoM = atCoM.Inverse()

	b.Shapes = make([]shape.Shape, len(shapes))
	for i, s := range shapes {
		reframed := s
		reframed.Transform = s.Transform.PlaceIn(&b.BodyToCoM)
		b.Shapes[i] = reframed
	}

	b.lastOrientation = b.WorldToCoM.Orientation

	for _, s := range b.Shapes {
		at := transform.AtOrigin()
		box := s.AABB(&at)
		b.BoundingSphereRadius = math64.Max64(b.BoundingSphereRadius, farthestCorner(box))
	}

	b.updateMassProperties()
	return b, nil
}

// validateShape rejects a degenerate convex: fewer than 4 vertices, a
// face whose vertices aren't coplanar, or (on a dynamic body) zero
// volume. Non-convex kinds have no such constraints.
func validateShape(s shape.Shape, mass float64) error {
	if s.Kind != shape.KindConvex {
		return nil
	}
	c := s.Convex
	if c == nil || len(c.Vertices) < 4 {
		return ErrInvalidShape
	}
	for _, f := range c.Faces {
		if !facePlanar(f) {
			return ErrInvalidShape
		}
	}
	if mass > 0 && c.Volume <= 0 {
		return ErrInvalidShape
	}
	return nil
}

// facePlanar reports whether every vertex of f lies in the plane defined
// by f's first vertex and its precomputed normal.
func facePlanar(f convex.Face) bool {
	if len(f.Vertices) < 3 || f.Normal.AlmostZero() {
		return false
	}
	p0 := f.Vertices[0]
	for _, v := range f.Vertices[1:] {
		d := math64.NewVec3().SubVectors(&v, &p0)
		if math64.Abs(d.Dot(&f.Normal)) > math64.Epsilon {
			return false
		}
	}
	return true
}

// centerOfMass returns the volume-weighted center of mass of shapes, or
// the zero vector if their total volume is zero.
func centerOfMass(shapes []shape.Shape) math64.Vector3 {
	var totalVolume float64
	com := math64.Vector3{}
	for _, s := range shapes {
		v := s.Volume()
		if v <= 0 {
			continue
		}
		weighted := s.Transform.Origin
		weighted.MultiplyScalar(v)
		com.Add(&weighted)
		totalVolume += v
	}
	if totalVolume == 0 {
		return math64.Vector3{}
	}
	com.MultiplyScalar(1 / totalVolume)
	return com
}

func farthestCorner(box math64.Box3) float64 {
	corners := [8]math64.Vector3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	var r float64
	for i := range corners {
		if l := corners[i].Length(); l > r {
			r = l
		}
	}
	return r
}

// updateMassProperties derives this body's local inertia from its
// current AABB, treating the body as a uniform block of the AABB's
// dimensions: a deliberate approximation, exact only for box shapes.
func (b *Body) updateMassProperties() {
	if b.Mass == 0 {
		b.InvMass = 0
		b.LocalInertia = math64.Matrix3{}
		b.InvLocalInertia = math64.Matrix3{}
		return
	}
	b.InvMass = 1 / b.Mass

	box := math64.Impossible()
	for _, s := range b.Shapes {
		at := transform.AtOrigin()
		sb := s.AABB(&at)
		box = math64.Extend(box, sb)
	}

	ex := box.Max.X - box.Min.X
	ey := box.Max.Y - box.Min.Y
	ez := box.Max.Z - box.Min.Z

	ixx := b.Mass * (ey*ey + ez*ez) / 12
	iyy := b.Mass * (ex*ex + ez*ez) / 12
	izz := b.Mass * (ey*ey + ex*ex) / 12

	b.LocalInertia = *math64.NewDiagonalMatrix3(ixx, iyy, izz)

	invx, invy, invz := 0.0, 0.0, 0.0
	if ixx > 0 {
		invx = 1 / ixx
	}
	if iyy > 0 {
		invy = 1 / iyy
	}
	if izz > 0 {
		invz = 1 / izz
	}
	b.InvLocalInertia = *math64.NewDiagonalMatrix3(invx, invy, invz)
	b.InvWorldInertia = b.InvLocalInertia
}

// UpdateWorldInertia recomputes InvWorldInertia from InvLocalInertia and
// the current orientation, unless InvLocalInertia is isotropic (in which
// case the cached value is already correct and recompute is skipped) or
// the orientation hasn't changed since the last update.
func (b *Body) UpdateWorldInertia() {
	if b.InvLocalInertia.IsIsotropic() {
		return
	}
	if b.WorldToCoM.Orientation.Equals(&b.lastOrientation) {
		return
	}
	b.InvWorldInertia = b.WorldToCoM.InvertedInertiaRotateIn(&b.InvLocalInertia)
	b.lastOrientation = b.WorldToCoM.Orientation
}

// Position returns this body's own origin in world coordinates. This is
// distinct from WorldToCoM.Origin, which is the center of mass's world
// position: for a body whose shapes aren't centered on their own
// origin, the two differ by the rotated BodyToCoM offset.
func (b *Body) Position() math64.Vector3 {
	return b.BodyToCoM.PlaceIn(&b.WorldToCoM).Origin
}

// Orientation returns this body's own orientation in world coordinates.
func (b *Body) Orientation() math64.Quaternion {
	return b.BodyToCoM.PlaceIn(&b.WorldToCoM).Orientation
}

// SetPosition moves this body's own origin to p in world coordinates,
// preserving its current orientation.
func (b *Body) SetPosition(p math64.Vector3) {
	offset := b.WorldToCoM.Orientation.RotateVector(&b.BodyToCoM.Origin)
	b.WorldToCoM.Origin = p
	b.WorldToCoM.Origin.Sub(offset)
}

// SetOrientation rotates this body to q in world coordinates, preserving
// its current position (Position is unaffected).
func (b *Body) SetOrientation(q math64.Quaternion) {
	p := b.Position()

	bodyToComInv := b.BodyToCoM.Orientation.Clone().Conjugate()
	b.WorldToCoM.Orientation = *q.Clone().Multiply(bodyToComInv)

	offset := b.WorldToCoM.Orientation.RotateVector(&b.BodyToCoM.Origin)
	b.WorldToCoM.Origin = p
	b.WorldToCoM.Origin.Sub(offset)
}

// AddGravity adds mass*g to this body's accumulated force. No-op on
// static bodies.
func (b *Body) AddGravity(g *math64.Vector3) {
	if b.Mass == 0 {
		return
	}
	scaled := *g
	scaled.MultiplyScalar(b.Mass)
	b.Force.Add(&scaled)
}

// ApplyForce sets force = amount*direction and torque =
// (pointInWorld-origin) x force, overwriting whatever force/torque this
// body already carries this step. This is a deliberate design choice,
// carried over unchanged: repeated calls within a step do not
// accumulate.
func (b *Body) ApplyForce(amount float64, direction, pointInWorld *math64.Vector3) {
	f := *direction
	f.MultiplyScalar(amount)
	b.Force = f

	r := *pointInWorld
	r.Sub(&b.WorldToCoM.Origin)
	t := math64.NewVec3().CrossVectors(&r, &f)
	b.Torque = *t
}

// ApplyImpulse adds amount*invMass*direction to this body's velocity and
// InvWorldInertia*((pointInWorld-origin) x (amount*direction)) to its
// angular velocity: an instantaneous change that bypasses the
// integrator entirely.
func (b *Body) ApplyImpulse(amount float64, direction, pointInWorld *math64.Vector3) {
	if b.Mass == 0 {
		return
	}
	dv := *direction
	dv.MultiplyScalar(amount * b.InvMass)
	b.Velocity.Add(&dv)

	r := *pointInWorld
	r.Sub(&b.WorldToCoM.Origin)
	impulse := *direction
	impulse.MultiplyScalar(amount)
	angularImpulse := math64.NewVec3().CrossVectors(&r, &impulse)
	dw := angularImpulse.ApplyMatrix3(&b.InvWorldInertia)
	b.AngularVelocity.Add(dw)
}

// ClearForces zeroes this body's accumulated force and torque: called at
// the end of every integration step.
func (b *Body) ClearForces() {
	b.Force = math64.Vector3{}
	b.Torque = math64.Vector3{}
}

// IsStatic returns whether this body has zero mass: static bodies never
// change transform or velocity.
func (b *Body) IsStatic() bool {
	return b.Mass == 0
}

// RaycastHit is the result of a successful raycast against a body.
type RaycastHit struct {
	Distance float64
	Point    math64.Vector3
	Normal   math64.Vector3
	Shape    *shape.Shape
}

// Raycast transforms ray into each of this body's shapes' local frames,
// dispatches to that shape's own raycast, and returns the closest hit
// (minimum distance), if any.
func Raycast(origin, direction math64.Vector3, b *Body) (RaycastHit, bool) {
	best := RaycastHit{Distance: math64.Infinity}
	found := false

	for i := range b.Shapes {
		s := &b.Shapes[i]
		world := s.WorldTransform(&b.WorldToCoM)
		localOrigin := world.PointRelativeTo(&origin)
		localDir := world.DirectionRelativeTo(&direction)

		hit, ok := shapeRaycast(localOrigin, localDir, s)
		if !ok || hit.Distance >= best.Distance {
			continue
		}
		worldPoint := world.PointPlaceIn(&hit.Point)
		worldNormal := world.DirectionPlaceIn(&hit.Normal)
		best = RaycastHit{Distance: hit.Distance, Point: worldPoint, Normal: worldNormal, Shape: s}
		found = true
	}

	return best, found
}

// localHit is a raycast hit expressed in a shape's own local frame.
type localHit struct {
	Distance float64
	Point    math64.Vector3
	Normal   math64.Vector3
}

// shapeRaycast dispatches a ray (already expressed in shape s's own
// local frame) to the kernel appropriate for s's kind. Sphere uses the
// quadratic a*t^2+b*t+c with a=d.d, b=2d.(o-c), c=|o-c|^2-r^2 (c is the
// origin here, since the shape sits at its local origin). Convex uses
// the face-projection algorithm. Plane returns no hit: a plane is an
// infinite boundary, not a picking target. Particle has no surface to
// hit.
func shapeRaycast(origin, direction math64.Vector3, s *shape.Shape) (localHit, bool) {
	switch s.Kind {
	case shape.KindSphere:
		return sphereRaycast(origin, direction, s.Radius)
	case shape.KindConvex:
		hit, ok := convex.Raycast(origin, direction, s.Convex)
		if !ok {
			return localHit{}, false
		}
		return localHit{Distance: hit.Distance, Point: hit.Point, Normal: hit.Normal}, true
	default:
		return localHit{}, false
	}
}

func sphereRaycast(origin, direction math64.Vector3, radius float64) (localHit, bool) {
	a := direction.Dot(&direction)
	oc := origin
	b := 2 * direction.Dot(&oc)
	c := oc.Dot(&oc) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return localHit{}, false
	}
	sq := math64.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return localHit{}, false
	}

	point := direction
	point.MultiplyScalar(t)
	point.Add(&origin)
	normal := point
	normal.MultiplyScalar(1 / radius)

	return localHit{Distance: t, Point: point, Normal: normal}, true
}

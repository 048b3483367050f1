// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements rigid transforms: an origin point plus an
// orientation quaternion. Bodies, shapes and convex hulls are all placed
// in space by composing Transform3d values.
//
// The target language's type system does not let us brand a Transform3d
// with its source/destination coordinate frames the way Rust or
// TypeScript could with zero-sized phantom parameters; frame discipline
// here is a naming convention (worldFromBody, bodyFromShape, and so on)
// backed by round-trip tests through Inverse, not a compile-time
// guarantee.
package transform

import "github.com/g3n/physics/math64"

// Transform3d is a rigid transform: origin plus orientation. Applying it
// to a point in the frame it "defines" yields that point's coordinates in
// the frame it is expressed "in".
type Transform3d struct {
	Origin      math64.Vector3
	Orientation math64.Quaternion
}

// AtOrigin returns the identity transform: origin at (0,0,0), identity
// orientation.
func AtOrigin() Transform3d {
	return Transform3d{Orientation: *math64.Identity()}
}

// AtPoint returns a transform with the given origin and identity
// orientation.
func AtPoint(p math64.Vector3) Transform3d {
	return Transform3d{Origin: p, Orientation: *math64.Identity()}
}

// FromOriginAndBasis constructs a transform from an origin and a
// right-handed orthonormal basis (x, y, z), extracting the orientation
// quaternion from the implied 3x3 rotation matrix via the standard
// trace-based decomposition.
func FromOriginAndBasis(origin, x, y, z math64.Vector3) Transform3d {
	m := math64.NewMatrix3().Set(
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	)
	q := math64.NewQuaternion(0, 0, 0, 1).SetFromRotationMatrix(m)
	return Transform3d{Origin: origin, Orientation: *q}
}

// PointPlaceIn maps a point expressed in the frame this transform defines
// into the frame this transform is expressed in (local -> world).
func (t *Transform3d) PointPlaceIn(p *math64.Vector3) math64.Vector3 {
	out := t.Orientation.RotateVector(p)
	out.Add(&t.Origin)
	return *out
}

// PointRelativeTo maps a point expressed in the outer frame into the
// frame this transform defines (world -> local).
func (t *Transform3d) PointRelativeTo(p *math64.Vector3) math64.Vector3 {
	local := p.Clone()
	local.Sub(&t.Origin)
	return *t.Orientation.DerotateVector(local)
}

// DirectionPlaceIn rotates (but does not translate) a direction from the
// frame this transform defines into the frame it is expressed in.
func (t *Transform3d) DirectionPlaceIn(d *math64.Vector3) math64.Vector3 {
	return *t.Orientation.RotateVector(d)
}

// DirectionRelativeTo rotates (but does not translate) a direction from
// the outer frame into the frame this transform defines.
func (t *Transform3d) DirectionRelativeTo(d *math64.Vector3) math64.Vector3 {
	return *t.Orientation.DerotateVector(d)
}

// PlaceIn composes this transform (inner) with outer, returning the
// transform that first applies inner, then outer: outer ∘ inner.
func (t *Transform3d) PlaceIn(outer *Transform3d) Transform3d {
	origin := outer.PointPlaceIn(&t.Origin)
	orientation := outer.Orientation.Clone().Multiply(&t.Orientation)
	return Transform3d{Origin: origin, Orientation: *orientation}
}

// RelativeTo returns inverse(outer) ∘ t: the transform t expressed
// relative to outer instead of relative to outer's enclosing frame.
func RelativeTo(outer *Transform3d, t *Transform3d) Transform3d {
	inv := outer.Inverse()
	return t.PlaceIn(&inv)
}

// Inverse returns the inverse of this transform: conjugate orientation,
// and the origin rotated by that conjugate and negated.
func (t *Transform3d) Inverse() Transform3d {
	invOrientation := t.Orientation.Clone().Conjugate()
	negOrigin := t.Origin
	negOrigin.Negate()
	invOrigin := invOrientation.RotateVector(&negOrigin)
	return Transform3d{Origin: *invOrigin, Orientation: *invOrientation}
}

// MoveTo replaces this transform's origin.
// Returns pointer to this updated transform.
func (t *Transform3d) MoveTo(p math64.Vector3) *Transform3d {
	t.Origin = p
	return t
}

// TranslateBy adds d to this transform's origin.
// Returns pointer to this updated transform.
func (t *Transform3d) TranslateBy(d *math64.Vector3) *Transform3d {
	t.Origin.Add(d)
	return t
}

// RotateAroundOwn rotates this transform's orientation by angle radians
// around axis, expressed in the transform's own (local) frame.
// Returns pointer to this updated transform.
func (t *Transform3d) RotateAroundOwn(axis *math64.Vector3, angle float64) *Transform3d {
	delta := math64.NewQuaternion(0, 0, 0, 1).SetFromAxisAngle(axis, angle)
	t.Orientation.Multiply(delta)
	return t
}

// RotateBy applies one Euler step of the rotation ODE dq/dt = 1/2 omega q
// for angularVelocity over dt, then re-normalizes the orientation.
// Returns pointer to this updated transform.
func (t *Transform3d) RotateBy(angularVelocity *math64.Vector3, dt float64) *Transform3d {
	t.Orientation.IntegrateAngularVelocity(angularVelocity, dt)
	return t
}

// Normalize re-normalizes this transform's orientation quaternion.
// Returns pointer to this updated transform.
func (t *Transform3d) Normalize() *Transform3d {
	t.Orientation.Normalize()
	return t
}

// Basis returns this transform's orientation as a 3x3 rotation matrix.
func (t *Transform3d) Basis() math64.Matrix3 {
	return *t.Orientation.ToMatrix3()
}

// InertiaPlaceIn rotates the inertia tensor localInertia from the frame
// this transform defines into the frame it is expressed in (R*I*R^T),
// then applies the parallel-axis
// theorem to translate it by this transform's origin for a point mass of
// the given total mass. Used to combine shape-local inertia tensors into
// a single body-frame inertia tensor.
func (t *Transform3d) InertiaPlaceIn(localInertia *math64.Matrix3, mass float64) math64.Matrix3 {
	r := t.Basis()
	rt := r
	rt.Transpose()

	var rotated math64.Matrix3
	rotated.Multiply(&r, localInertia)
	rotated.Multiply(&rotated, &rt)

	parallel := math64.PointInertia(mass, &t.Origin)
	rotated.Add(parallel)
	return rotated
}

// InvertedInertiaRotateIn rotates an inverse-inertia tensor expressed in
// the frame this transform defines into the frame it is expressed in:
// R*Iinv*R^T.
// If invLocalInertia is isotropic the rotation is a no-op and the input
// is returned unchanged (callers use this to skip the recompute).
func (t *Transform3d) InvertedInertiaRotateIn(invLocalInertia *math64.Matrix3) math64.Matrix3 {
	if invLocalInertia.IsIsotropic() {
		return *invLocalInertia
	}
	r := t.Basis()
	rt := r
	rt.Transpose()

	var out math64.Matrix3
	out.Multiply(&r, invLocalInertia)
	out.Multiply(&out, &rt)
	return out
}

// Clone returns a copy of this transform.
func (t *Transform3d) Clone() Transform3d {
	return *t
}

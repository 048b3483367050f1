// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import "github.com/g3n/physics/math64"

// ConstraintBodyInput is everything a joint-equation builder needs
// about one of its two bodies.
type ConstraintBodyInput struct {
	ID              int
	InvMass         float64
	InvWorldInertia math64.Matrix3
	Origin          math64.Vector3
	Orientation     math64.Quaternion
	Force, Torque   math64.Vector3
	Velocity        math64.Vector3
	AngularVelocity math64.Vector3
}

func (b ConstraintBodyInput) state() bodyState {
	return bodyState{
		InvMass: b.InvMass, InvWorldInertia: b.InvWorldInertia,
		Force: b.Force, Torque: b.Torque, Origin: b.Origin,
		Velocity: b.Velocity, AngularVelocity: b.AngularVelocity,
	}
}

const jointBound = 1e6

// BuildPointToPoint emits the three normal equations — one per world
// basis vector — pinning pivot1 (body1-local) to pivot2 (body2-local).
func BuildPointToPoint(b1, b2 ConstraintBodyInput, pivot1, pivot2 math64.Vector3, dt float64) []Equation {
	ri := b1.Orientation.RotateVector(&pivot1)
	rj := b2.Orientation.RotateVector(&pivot2)

	p1 := b1.Origin
	p1.Add(ri)
	p2 := b2.Origin
	p2.Add(rj)

	axes := []math64.Vector3{
		*math64.NewVector3(1, 0, 0),
		*math64.NewVector3(0, 1, 0),
		*math64.NewVector3(0, 0, 1),
	}

	var out []Equation
	for _, axis := range axes {
		negRi := *ri
		negRi.Negate()

		eq := Equation{Body1ID: b1.ID, Body2ID: b2.ID, MinForce: -jointBound, MaxForce: jointBound}
		eq.J1v = axis
		eq.J1v.Negate()
		eq.J1w = *math64.NewVec3().CrossVectors(&negRi, &axis)
		eq.J2v = axis
		eq.J2w = *math64.NewVec3().CrossVectors(rj, &axis)

		g := p1.Dot(&axis) - p2.Dot(&axis)

		relVel := math64.NewVec3().SubVectors(&b2.Velocity, &b1.Velocity)
		gW := relVel.Dot(&axis)
		gW += b2.AngularVelocity.Dot(math64.NewVec3().CrossVectors(rj, &axis))
		gW += b1.AngularVelocity.Dot(math64.NewVec3().CrossVectors(&negRi, &axis))

		prepare(&eq, g, gW, dt, b1.state(), b2.state())
		out = append(out, eq)
	}
	return out
}

// BuildHinge emits the three point-to-point equations plus two
// rotational equations driving the two tangent directions of world
// axis1 orthogonal to world axis2.
func BuildHinge(b1, b2 ConstraintBodyInput, pivot1, pivot2, axis1, axis2 math64.Vector3, dt float64) []Equation {
	out := BuildPointToPoint(b1, b2, pivot1, pivot2, dt)

	worldAxis1 := b1.Orientation.RotateVector(&axis1)
	worldAxis2 := b2.Orientation.RotateVector(&axis2)
	t1, t2 := worldAxis1.RandomTangents()

	for _, t := range []*math64.Vector3{t1, t2} {
		n := math64.NewVec3().CrossVectors(t, worldAxis2)

		eq := Equation{Body1ID: b1.ID, Body2ID: b2.ID, MinForce: -jointBound, MaxForce: jointBound}
		eq.J1w = *n
		eq.J1w.Negate()
		eq.J2w = *n

		g := -worldAxis2.Dot(t)
		gW := b2.AngularVelocity.Dot(n) - b1.AngularVelocity.Dot(n)

		prepare(&eq, g, gW, dt, b1.state(), b2.state())
		out = append(out, eq)
	}
	return out
}

// BuildLock emits point-to-point equations plus three rotational
// equations locking body1's world basis to body2's world basis
// (x1 perp y2, y1 perp z2, z1 perp x2).
func BuildLock(b1, b2 ConstraintBodyInput, pivot1, pivot2 math64.Vector3, dt float64) []Equation {
	out := BuildPointToPoint(b1, b2, pivot1, pivot2, dt)

	x1 := b1.Orientation.RotateVector(math64.NewVector3(1, 0, 0))
	y1 := b1.Orientation.RotateVector(math64.NewVector3(0, 1, 0))
	z1 := b1.Orientation.RotateVector(math64.NewVector3(0, 0, 1))
	x2 := b2.Orientation.RotateVector(math64.NewVector3(1, 0, 0))
	y2 := b2.Orientation.RotateVector(math64.NewVector3(0, 1, 0))
	z2 := b2.Orientation.RotateVector(math64.NewVector3(0, 0, 1))

	pairs := [][2]*math64.Vector3{{x1, y2}, {y1, z2}, {z1, x2}}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		n := math64.NewVec3().CrossVectors(a, b)

		eq := Equation{Body1ID: b1.ID, Body2ID: b2.ID, MinForce: -jointBound, MaxForce: jointBound}
		eq.J1w = *n
		eq.J1w.Negate()
		eq.J2w = *n

		g := -a.Dot(b)
		gW := b2.AngularVelocity.Dot(n) - b1.AngularVelocity.Dot(n)

		prepare(&eq, g, gW, dt, b1.state(), b2.state())
		out = append(out, eq)
	}
	return out
}

// BuildDistance emits a single equation holding the two body centers d
// apart: pi and pj are offset from each body's center by d/2 along the
// body-to-body direction, and the equation drives them together along it.
func BuildDistance(b1, b2 ConstraintBodyInput, d, dt float64) []Equation {
	dir := math64.NewVec3().SubVectors(&b2.Origin, &b1.Origin)
	if dir.AlmostZero() {
		dir = math64.NewVector3(1, 0, 0)
	} else {
		dir.Normalize()
	}

	ri := *dir
	ri.MultiplyScalar(d / 2)
	rj := *dir
	rj.MultiplyScalar(-d / 2)

	negRi := ri
	negRi.Negate()

	eq := Equation{Body1ID: b1.ID, Body2ID: b2.ID, MinForce: -jointBound, MaxForce: jointBound}
	eq.J1v = *dir
	eq.J1v.Negate()
	eq.J1w = *math64.NewVec3().CrossVectors(&negRi, dir)
	eq.J2v = *dir
	eq.J2w = *math64.NewVec3().CrossVectors(&rj, dir)

	p1 := b1.Origin
	p1.Add(&ri)
	p2 := b2.Origin
	p2.Add(&rj)
	g := math64.NewVec3().SubVectors(&p2, &p1).Dot(dir)

	relVel := math64.NewVec3().SubVectors(&b2.Velocity, &b1.Velocity)
	gW := relVel.Dot(dir)

	prepare(&eq, g, gW, dt, b1.state(), b2.state())
	return []Equation{eq}
}

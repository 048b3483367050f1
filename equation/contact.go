// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import "github.com/g3n/physics/math64"

// Combine returns clamp((v1+v2)/2, 0, 1): the bounded-average combine
// rule used for both friction and restitution coefficients.
func Combine(v1, v2 float64) float64 {
	return math64.Clamp((v1+v2)/2, 0, 1)
}

// ContactInput is everything BuildContactEquations needs about one
// contact point and the two bodies it sits between.
type ContactInput struct {
	Normal       math64.Vector3
	PointOnBody1 math64.Vector3
	PointOnBody2 math64.Vector3

	Body1ID, Body2ID int
	InvMass1, InvMass2 float64
	InvWorldInertia1, InvWorldInertia2 math64.Matrix3
	Origin1, Origin2 math64.Vector3
	Force1, Force2   math64.Vector3
	Torque1, Torque2 math64.Vector3
	Velocity1, Velocity2               math64.Vector3
	AngularVelocity1, AngularVelocity2 math64.Vector3

	Bounciness, Friction1, Friction2 float64
}

// BuildContactEquations emits the normal equation and the two
// tangential friction equations for one contact point, per spec 4.8.
func BuildContactEquations(in ContactInput, gravityMagnitude, dt float64) []Equation {
	ri := math64.NewVec3().SubVectors(&in.PointOnBody1, &in.Origin1)
	rj := math64.NewVec3().SubVectors(&in.PointOnBody2, &in.Origin2)
	n := in.Normal

	b1 := bodyState{InvMass: in.InvMass1, InvWorldInertia: in.InvWorldInertia1, Force: in.Force1, Torque: in.Torque1, Origin: in.Origin1, Velocity: in.Velocity1, AngularVelocity: in.AngularVelocity1}
	b2 := bodyState{InvMass: in.InvMass2, InvWorldInertia: in.InvWorldInertia2, Force: in.Force2, Torque: in.Torque2, Origin: in.Origin2, Velocity: in.Velocity2, AngularVelocity: in.AngularVelocity2}

	g := math64.NewVec3().SubVectors(&in.PointOnBody2, &in.PointOnBody1).Dot(&n)

	negRi := *ri
	negRi.Negate()

	normalEq := Equation{
		Body1ID: in.Body1ID, Body2ID: in.Body2ID,
		MinForce: 0, MaxForce: 1e6,
	}
	normalEq.J1v = n
	normalEq.J1v.Negate()
	normalEq.J1w = *math64.NewVec3().CrossVectors(&negRi, &n)
	normalEq.J2v = n
	normalEq.J2w = *math64.NewVec3().CrossVectors(rj, &n)

	relVel := math64.NewVec3().SubVectors(&in.Velocity2, &in.Velocity1)
	gW := (1 + in.Bounciness) * relVel.Dot(&n)
	gW += in.AngularVelocity2.Dot(math64.NewVec3().CrossVectors(rj, &n))
	gW += in.AngularVelocity1.Dot(math64.NewVec3().CrossVectors(&negRi, &n))

	prepare(&normalEq, g, gW, dt, b1, b2)

	var maxFriction float64
	if in.InvMass1+in.InvMass2 > 0 {
		mu := Combine(in.Friction1, in.Friction2)
		maxFriction = mu * gravityMagnitude / (in.InvMass1 + in.InvMass2)
	}

	t1, t2 := n.RandomTangents()
	equations := []Equation{normalEq}
	for _, t := range []math64.Vector3{*t1, *t2} {
		fe := Equation{
			Body1ID: in.Body1ID, Body2ID: in.Body2ID,
			MinForce: -maxFriction, MaxForce: maxFriction,
		}
		fe.J1v = t
		fe.J1v.Negate()
		fe.J1w = *math64.NewVec3().CrossVectors(&negRi, &t)
		fe.J2v = t
		fe.J2w = *math64.NewVec3().CrossVectors(rj, &t)

		fgW := relVel.Dot(&t)
		fgW += in.AngularVelocity2.Dot(math64.NewVec3().CrossVectors(rj, &t))
		fgW += in.AngularVelocity1.Dot(math64.NewVec3().CrossVectors(&negRi, &t))

		prepare(&fe, 0, fgW, dt, b1, b2)
		equations = append(equations, fe)
	}

	return equations
}

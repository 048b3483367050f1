// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equation builds the solver's constraint rows: SPOOK-stabilized
// equations for contacts (normal + two friction directions) and for
// joint constraints (point-to-point, hinge, lock, distance).
package equation

import "github.com/g3n/physics/math64"

// Stiffness and Relaxation are the SPOOK parameters used uniformly by
// every equation in the core; see spec section 4.8.
const (
	Stiffness  = 1e7
	Relaxation = 3
)

// Equation is one scalar row of the constraint system: a Jacobian
// split across two bodies' linear and angular velocity blocks, a force
// bound, and the precomputed SPOOK right-hand side and effective mass.
type Equation struct {
	Body1ID, Body2ID int

	J1v, J1w math64.Vector3
	J2v, J2w math64.Vector3

	MinForce, MaxForce float64
	Lambda             float64

	SpookEps   float64
	SolverB    float64
	SolverInvC float64
}

// SpookParams returns (a, b, eps) for the given timestep, following the
// standard SPOOK derivation: a drives the position correction rate, b
// the impulse relaxation, eps the constraint force mixing term.
func SpookParams(dt float64) (a, b, eps float64) {
	d := 1.0 + 4*Relaxation
	a = 4 / (dt * d)
	b = 4 * Relaxation / d
	eps = 4 / (dt * dt * Stiffness * d)
	return
}

// massWeightedJDotF computes G*M^-1*f: the Jacobian row dotted with the
// per-body (invMass*force, invInertia*torque) generalized force.
func massWeightedJDotF(
	j1v, j1w math64.Vector3, invMass1 float64, invInertia1 *math64.Matrix3, force1, torque1 math64.Vector3,
	j2v, j2w math64.Vector3, invMass2 float64, invInertia2 *math64.Matrix3, force2, torque2 math64.Vector3,
) float64 {
	lin1 := force1
	lin1.MultiplyScalar(invMass1)
	ang1 := invInertia1.ApplyToVector3(torque1.Clone())

	lin2 := force2
	lin2.MultiplyScalar(invMass2)
	ang2 := invInertia2.ApplyToVector3(torque2.Clone())

	return j1v.Dot(&lin1) + j1w.Dot(ang1) + j2v.Dot(&lin2) + j2w.Dot(ang2)
}

// effectiveMass computes G*M^-1*G^T: the Jacobian row's quadratic form
// against the combined inverse-mass/inverse-inertia block.
func effectiveMass(
	j1v, j1w math64.Vector3, invMass1 float64, invInertia1 *math64.Matrix3,
	j2v, j2w math64.Vector3, invMass2 float64, invInertia2 *math64.Matrix3,
) float64 {
	lin := invMass1*j1v.Dot(&j1v) + invMass2*j2v.Dot(&j2v)
	ang1 := invInertia1.ApplyToVector3(j1w.Clone())
	ang2 := invInertia2.ApplyToVector3(j2w.Clone())
	return lin + j1w.Dot(ang1) + j2w.Dot(ang2)
}

// bodyState is the minimal per-body state an equation builder needs,
// kept separate from the body package so that equation imports only
// math64.
type bodyState struct {
	InvMass         float64
	InvWorldInertia math64.Matrix3
	Force, Torque   math64.Vector3
	Origin          math64.Vector3
	Velocity        math64.Vector3
	AngularVelocity math64.Vector3
}

// prepare fills in an equation's SPOOK-derived fields given the raw
// penetration g and relative-velocity term gW, the timestep dt, and the
// two bodies' current state.
func prepare(eq *Equation, g, gW, dt float64, b1, b2 bodyState) {
	a, bRelax, eps := SpookParams(dt)
	eq.SpookEps = eps

	gmf := massWeightedJDotF(
		eq.J1v, eq.J1w, b1.InvMass, &b1.InvWorldInertia, b1.Force, b1.Torque,
		eq.J2v, eq.J2w, b2.InvMass, &b2.InvWorldInertia, b2.Force, b2.Torque,
	)
	eq.SolverB = -g*a - gW*bRelax - dt*gmf

	c := effectiveMass(eq.J1v, eq.J1w, b1.InvMass, &b1.InvWorldInertia, eq.J2v, eq.J2w, b2.InvMass, &b2.InvWorldInertia)
	eq.SolverInvC = 1 / (c + eps)
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator advances each dynamic body's velocity and
// transform by one timestep, given the solver's velocity deltas.
package integrator

import (
	"github.com/g3n/physics/body"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/solver"
)

// Integrate advances every dynamic body in bodies by dt. Static bodies
// are left untouched (invariant: static bodies never change transform
// or velocity). Force and torque that went into computing f/tau are
// cleared at the end, ready for next tick's accumulation.
//
// Gravity is not added a second time here: World's tick already folds
// m*g into each body's accumulated force before the solver runs, so
// invMass*Force already carries gravity's contribution.
func Integrate(bodies []*body.Body, deltas map[int]*solver.Delta, dt float64) {
	for _, b := range bodies {
		if b.IsStatic() {
			continue
		}

		d := deltas[b.ID]
		var dv, dw math64.Vector3
		if d != nil {
			dv, dw = d.DV, d.DW
		}

		ld := math64.Pow(1-b.LinearDamping, dt)
		ad := math64.Pow(1-b.AngularDamping, dt)

		linAccel := b.Force
		linAccel.MultiplyScalar(b.InvMass * dt)
		vPrime := b.Velocity
		vPrime.MultiplyScalar(ld)
		vPrime.Add(&linAccel)
		vPrime.Add(&dv)

		if speed := vPrime.Length(); speed*dt > b.BoundingSphereRadius && speed > 0 {
			vPrime.MultiplyScalar(b.BoundingSphereRadius / (speed * dt))
		}

		angAccel := b.InvWorldInertia.ApplyToVector3(b.Torque.Clone())
		angAccel.MultiplyScalar(dt)
		wPrime := b.AngularVelocity
		wPrime.MultiplyScalar(ad)
		wPrime.Add(angAccel)
		wPrime.Add(&dw)

		translation := vPrime
		translation.MultiplyScalar(dt)

		b.WorldToCoM.RotateBy(&wPrime, dt)
		b.WorldToCoM.TranslateBy(&translation)
		b.WorldToCoM.Normalize()

		b.Velocity = vPrime
		b.AngularVelocity = wPrime

		b.UpdateWorldInertia()
		b.ClearForces()
	}
}

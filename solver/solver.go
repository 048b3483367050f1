// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the projected Gauss-Seidel iteration that
// turns a tick's assembled equations into per-body velocity deltas.
package solver

import (
	"github.com/g3n/physics/body"
	"github.com/g3n/physics/equation"
	"github.com/g3n/physics/math64"
)

// MaxIterations and Tolerance are the solver's fixed stopping
// conditions, per spec section 4.9.
const (
	MaxIterations = 20
	Tolerance     = 1e-6
)

// Delta is the accumulated velocity change the solver computed for one
// body this tick; the integrator adds it into that body's new velocity.
type Delta struct {
	DV math64.Vector3
	DW math64.Vector3
}

// Solve runs projected Gauss-Seidel over equations, capped at
// MaxIterations, early-exiting once an iteration's total |Δλ| falls
// below Tolerance. bodies is looked up by id; equations naming the id=-1
// padding sentinel, or an id not in bodies, are skipped. Static bodies get
// no delta entry. Equation order is preserved exactly as
// given, so convergence is deterministic.
func Solve(bodies []*body.Body, equations []equation.Equation) (map[int]*Delta, int) {
	deltas := make(map[int]*Delta)
	get := func(id int) *Delta {
		d, ok := deltas[id]
		if !ok {
			d = &Delta{}
			deltas[id] = d
		}
		return d
	}

	eqs := make([]equation.Equation, len(equations))
	copy(eqs, equations)

	lookup := make(map[int]*body.Body, len(bodies))
	for _, b := range bodies {
		lookup[b.ID] = b
	}

	iterationsUsed := MaxIterations
	for iter := 0; iter < MaxIterations; iter++ {
		var totalDelta float64

		for i := range eqs {
			eq := &eqs[i]
			if eq.Body1ID == -1 || eq.Body2ID == -1 {
				continue
			}
			b1, b2 := lookup[eq.Body1ID], lookup[eq.Body2ID]
			if b1 == nil || b2 == nil {
				continue
			}

			d1, d2 := &Delta{}, &Delta{}
			if !b1.IsStatic() {
				d1 = get(eq.Body1ID)
			}
			if !b2.IsStatic() {
				d2 = get(eq.Body2ID)
			}

			gWLambda := eq.J1v.Dot(&d1.DV) + eq.J1w.Dot(&d1.DW) +
				eq.J2v.Dot(&d2.DV) + eq.J2w.Dot(&d2.DW)

			deltaLambdaRaw := eq.SolverInvC * (eq.SolverB - gWLambda - eq.SpookEps*eq.Lambda)
			newLambda := math64.Clamp(eq.Lambda+deltaLambdaRaw, eq.MinForce, eq.MaxForce)
			deltaLambda := newLambda - eq.Lambda
			eq.Lambda = newLambda

			if !b1.IsStatic() {
				scaled := eq.J1v
				scaled.MultiplyScalar(deltaLambda * b1.InvMass)
				d1.DV.Add(&scaled)
				angular := eq.J1w.Clone()
				angular.MultiplyScalar(deltaLambda)
				d1.DW.Add(b1.InvWorldInertia.ApplyToVector3(angular))
			}
			if !b2.IsStatic() {
				scaled := eq.J2v
				scaled.MultiplyScalar(deltaLambda * b2.InvMass)
				d2.DV.Add(&scaled)
				angular := eq.J2w.Clone()
				angular.MultiplyScalar(deltaLambda)
				d2.DW.Add(b2.InvWorldInertia.ApplyToVector3(angular))
			}

			totalDelta += math64.Abs(deltaLambda)
		}

		if totalDelta < Tolerance {
			iterationsUsed = iter + 1
			break
		}
	}

	return deltas, iterationsUsed
}

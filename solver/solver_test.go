// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/g3n/physics/body"
	"github.com/g3n/physics/equation"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoDynamicSpheres(t *testing.T) (*body.Body, *body.Body) {
	t.Helper()
	s := shape.NewSphere(1, transform.AtOrigin())
	b1, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	b1.ID = 0
	b2, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	b2.ID = 1
	return b1, b2
}

func TestSolveSkipsSentinelBodyIDs(t *testing.T) {
	b1, b2 := twoDynamicSpheres(t)
	eqs := []equation.Equation{{Body1ID: -1, Body2ID: -1, MaxForce: 1}}

	deltas, iterations := Solve([]*body.Body{b1, b2}, eqs)
	assert.Empty(t, deltas)
	assert.LessOrEqual(t, iterations, MaxIterations)
}

func TestSolveConvergesOnTrivialEquation(t *testing.T) {
	b1, b2 := twoDynamicSpheres(t)
	n := *math64.NewVector3(1, 0, 0)
	eq := equation.Equation{
		Body1ID: b1.ID, Body2ID: b2.ID,
		J1v: *n.Clone().MultiplyScalar(-1), J2v: n,
		MinForce: -1e6, MaxForce: 1e6,
		SolverInvC: 1, SolverB: 0,
	}

	deltas, iterations := Solve([]*body.Body{b1, b2}, []equation.Equation{eq})
	assert.Less(t, iterations, MaxIterations+1)
	if d, ok := deltas[b1.ID]; ok {
		assert.InDelta(t, 0, d.DV.Length(), 1e-6)
	}
}

func TestSolveLeavesStaticBodyUntouched(t *testing.T) {
	b1, _ := twoDynamicSpheres(t)
	staticSphere := shape.NewSphere(1, transform.AtOrigin())
	b2, err := body.Compound([]shape.Shape{staticSphere}, 0, body.Material{}, nil)
	require.NoError(t, err)
	b2.ID = 1

	n := *math64.NewVector3(1, 0, 0)
	eq := equation.Equation{
		Body1ID: b1.ID, Body2ID: b2.ID,
		J1v: n, J2v: *n.Clone().MultiplyScalar(-1),
		MinForce: 0, MaxForce: 1e6,
		SolverInvC: 1, SolverB: 5,
	}

	deltas, _ := Solve([]*body.Body{b1, b2}, []equation.Equation{eq})
	_, staticHasDelta := deltas[b2.ID]
	assert.False(t, staticHasDelta)
}

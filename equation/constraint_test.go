// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"testing"

	"github.com/g3n/physics/math64"
	"github.com/stretchr/testify/assert"
)

func identityBody(id int, origin math64.Vector3, invMass float64) ConstraintBodyInput {
	return ConstraintBodyInput{
		ID:              id,
		InvMass:         invMass,
		InvWorldInertia: *math64.NewDiagonalMatrix3(1, 1, 1),
		Origin:          origin,
		Orientation:     *math64.Identity(),
	}
}

func TestBuildPointToPointEmitsThreeEquations(t *testing.T) {
	b1 := identityBody(0, *math64.NewVector3(0, 0, 0), 1)
	b2 := identityBody(1, *math64.NewVector3(2, 0, 0), 1)

	eqs := BuildPointToPoint(b1, b2, *math64.NewVector3(1, 0, 0), *math64.NewVector3(-1, 0, 0), 1.0/60.0)
	assert.Len(t, eqs, 3)
	for _, eq := range eqs {
		assert.Equal(t, 0, eq.Body1ID)
		assert.Equal(t, 1, eq.Body2ID)
	}
}

func TestBuildPointToPointZeroPenetrationWhenPivotsCoincide(t *testing.T) {
	b1 := identityBody(0, *math64.NewVector3(0, 0, 0), 1)
	b2 := identityBody(1, *math64.NewVector3(2, 0, 0), 1)

	eqs := BuildPointToPoint(b1, b2, *math64.NewVector3(1, 0, 0), *math64.NewVector3(-1, 0, 0), 1.0/60.0)
	for _, eq := range eqs {
		assert.InDelta(t, 0, eq.SolverB, 1e-9)
	}
}

func TestBuildHingeAddsTwoRotationalEquations(t *testing.T) {
	b1 := identityBody(0, math64.Vector3{}, 1)
	b2 := identityBody(1, math64.Vector3{}, 1)

	eqs := BuildHinge(b1, b2, math64.Vector3{}, math64.Vector3{},
		*math64.NewVector3(0, 0, 1), *math64.NewVector3(0, 0, 1), 1.0/60.0)
	assert.Len(t, eqs, 5)
}

func TestBuildLockAddsThreeRotationalEquations(t *testing.T) {
	b1 := identityBody(0, math64.Vector3{}, 1)
	b2 := identityBody(1, math64.Vector3{}, 1)

	eqs := BuildLock(b1, b2, math64.Vector3{}, math64.Vector3{}, 1.0/60.0)
	assert.Len(t, eqs, 6)
}

func TestBuildDistanceSatisfiedHasZeroPenetration(t *testing.T) {
	b1 := identityBody(0, *math64.NewVector3(-1, 0, 0), 1)
	b2 := identityBody(1, *math64.NewVector3(1, 0, 0), 1)

	eqs := BuildDistance(b1, b2, 2, 1.0/60.0)
	assert.Len(t, eqs, 1)
	assert.InDelta(t, 0, eqs[0].SolverB, 1e-9)
}

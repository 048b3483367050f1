// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"github.com/g3n/physics/body"
	"github.com/g3n/physics/constraint"
	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSphereRestsOnPlane covers scenario S1: a sphere falling under
// gravity onto a static plane should settle near z=1 with small
// residual velocity after 120 ticks at dt=1/60.
func TestSphereRestsOnPlane(t *testing.T) {
	w := New(*math64.NewVector3(0, 0, -10))

	plane, err := body.Compound([]shape.Shape{shape.NewPlane(transform.AtOrigin())}, 0, body.Material{Friction: 0.3}, nil)
	require.NoError(t, err)
	w.AddBody(plane)

	sphereShape := shape.NewSphere(1, transform.AtOrigin())
	sphereBody, err := body.Compound([]shape.Shape{sphereShape}, 1, body.Material{Friction: 0.3}, nil)
	require.NoError(t, err)
	sphereBody.WorldToCoM.Origin = *math64.NewVector3(0, 0, 5)
	w.AddBody(sphereBody)

	dt := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		w.Simulate(dt)
	}

	z := sphereBody.WorldToCoM.Origin.Z
	assert.InDelta(t, 1.0, z, 0.02)
	assert.InDelta(t, 0, sphereBody.Velocity.Z, 0.06)
}

// TestPointToPointChainKeepsSpheresLevel covers scenario S4: three
// spheres (mass 1, r=0.5) at x=0,1,2, pinned surface-to-surface by two
// point-to-point constraints, fall together under gravity without their
// z-coordinates drifting apart.
func TestPointToPointChainKeepsSpheresLevel(t *testing.T) {
	w := New(*math64.NewVector3(0, 0, -10))

	newSphere := func(x float64) *body.Body {
		s := shape.NewSphere(0.5, transform.AtOrigin())
		b, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
		require.NoError(t, err)
		b.WorldToCoM.Origin = *math64.NewVector3(x, 0, 0)
		return b
	}

	b0 := newSphere(0)
	b1 := newSphere(1)
	b2 := newSphere(2)
	id0 := w.AddBody(b0)
	id1 := w.AddBody(b1)
	id2 := w.AddBody(b2)

	right := *math64.NewVector3(0.5, 0, 0)
	left := *math64.NewVector3(-0.5, 0, 0)
	require.NoError(t, w.AddConstraint(constraint.NewPointToPoint(id0, id1, right, left)))
	require.NoError(t, w.AddConstraint(constraint.NewPointToPoint(id1, id2, right, left)))

	dt := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		w.Simulate(dt)
	}

	z0, z1, z2 := b0.WorldToCoM.Origin.Z, b1.WorldToCoM.Origin.Z, b2.WorldToCoM.Origin.Z
	assert.InDelta(t, z0, z1, 0.05)
	assert.InDelta(t, z1, z2, 0.05)
}

// TestAddConstraintRejectsUnknownBody covers the UnknownBody
// construction-time error: a constraint referencing an id not present
// in the world must be rejected rather than silently dropped every
// tick.
func TestAddConstraintRejectsUnknownBody(t *testing.T) {
	w := New(math64.Vector3{})
	s := shape.NewSphere(0.5, transform.AtOrigin())
	b, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	id := w.AddBody(b)

	err = w.AddConstraint(constraint.NewPointToPoint(id, id+1, math64.Vector3{}, math64.Vector3{}))
	assert.ErrorIs(t, err, ErrUnknownBody)
}

// TestRaycastAgainstUnitBlock covers scenario S5: a ray straight down
// the block's own axis hits its top face at the exact distance, point
// and normal; a ray offset to the side misses entirely.
func TestRaycastAgainstUnitBlock(t *testing.T) {
	w := New(math64.Vector3{})

	blockShape := shape.NewConvex(convex.FromBlock(1, 1, 1), transform.AtOrigin())
	blockBody, err := body.Compound([]shape.Shape{blockShape}, 0, body.Material{}, nil)
	require.NoError(t, err)
	w.AddBody(blockBody)

	hit, ok := w.Raycast(*math64.NewVector3(0, 0, 5), *math64.NewVector3(0, 0, -1))
	require.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-9)
	assert.InDelta(t, 0, hit.Point.X, 1e-9)
	assert.InDelta(t, 0, hit.Point.Y, 1e-9)
	assert.InDelta(t, 1, hit.Point.Z, 1e-9)
	assert.InDelta(t, 0, hit.Normal.X, 1e-9)
	assert.InDelta(t, 0, hit.Normal.Y, 1e-9)
	assert.InDelta(t, 1, hit.Normal.Z, 1e-9)

	_, missed := w.Raycast(*math64.NewVector3(5, 0, 5), *math64.NewVector3(0, 0, -1))
	assert.False(t, missed)
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"testing"

	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundStaticHasZeroInvMass(t *testing.T) {
	plane := shape.NewPlane(transform.AtOrigin())
	b, err := Compound([]shape.Shape{plane}, 0, Material{}, nil)
	require.NoError(t, err)
	assert.True(t, b.IsStatic())
	assert.Equal(t, 0.0, b.InvMass)
}

func TestCompoundSphereMassProperties(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtOrigin())
	b, err := Compound([]shape.Shape{sph}, 2, Material{}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, b.InvMass, 1e-9)
	assert.Greater(t, b.BoundingSphereRadius, 0.0)
	ixx, iyy, izz := b.LocalInertia.Diagonal()
	assert.InDelta(t, ixx, iyy, 1e-9)
	assert.InDelta(t, iyy, izz, 1e-9)
}

func TestCompoundRejectsNegativeMass(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtOrigin())
	_, err := Compound([]shape.Shape{sph}, -1, Material{}, nil)
	assert.ErrorIs(t, err, ErrInvalidMass)
}

func TestCompoundRejectsDegenerateConvex(t *testing.T) {
	c := convex.FromFaces([][]int{{0, 1, 2}}, []math64.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})
	s := shape.NewConvex(c, transform.AtOrigin())
	_, err := Compound([]shape.Shape{s}, 1, Material{}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestApplyForceOverwritesRatherThanAccumulates(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtOrigin())
	b, err := Compound([]shape.Shape{sph}, 1, Material{}, nil)
	require.NoError(t, err)
	b.ApplyForce(1, math64.NewVector3(1, 0, 0), &b.WorldToCoM.Origin)
	b.ApplyForce(1, math64.NewVector3(0, 1, 0), &b.WorldToCoM.Origin)
	assert.InDelta(t, 0, b.Force.X, 1e-9)
	assert.InDelta(t, 1, b.Force.Y, 1e-9)
}

func TestApplyImpulseIsInstantaneous(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtOrigin())
	b, err := Compound([]shape.Shape{sph}, 2, Material{}, nil)
	require.NoError(t, err)
	b.ApplyImpulse(4, math64.NewVector3(1, 0, 0), &b.WorldToCoM.Origin)
	assert.InDelta(t, 2, b.Velocity.X, 1e-9)
}

func TestStaticBodyIgnoresGravityAndImpulse(t *testing.T) {
	plane := shape.NewPlane(transform.AtOrigin())
	b, err := Compound([]shape.Shape{plane}, 0, Material{}, nil)
	require.NoError(t, err)
	b.AddGravity(math64.NewVector3(0, 0, -10))
	b.ApplyImpulse(10, math64.NewVector3(1, 0, 0), &b.WorldToCoM.Origin)
	assert.Equal(t, math64.Vector3{}, b.Force)
	assert.Equal(t, math64.Vector3{}, b.Velocity)
}

func TestRaycastHitsSphere(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtOrigin())
	b, err := Compound([]shape.Shape{sph}, 1, Material{}, nil)
	require.NoError(t, err)
	hit, ok := Raycast(*math64.NewVector3(0, 0, 5), *math64.NewVector3(0, 0, -1), b)
	assert.True(t, ok)
	assert.InDelta(t, 4, hit.Distance, 1e-9)
}

// TestPositionReportsBodyOriginNotCenterOfMass covers a body built from
// a single off-center sphere: its center of mass sits at the sphere's
// center, away from the body's own origin, so Position must differ from
// WorldToCoM.Origin by exactly that offset.
func TestPositionReportsBodyOriginNotCenterOfMass(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtPoint(*math64.NewVector3(2, 0, 0)))
	b, err := Compound([]shape.Shape{sph}, 1, Material{}, nil)
	require.NoError(t, err)

	// The center of mass sits at world (0,0,0) right after construction
	// (WorldToCoM starts at the origin); the body's own origin is 2
	// units away from it, on the opposite side.
	assert.InDelta(t, 0, b.WorldToCoM.Origin.X, 1e-9)
	assert.InDelta(t, -2, b.Position().X, 1e-9)
}

func TestSetPositionMovesBodyOriginKeepingOrientation(t *testing.T) {
	sph := shape.NewSphere(1, transform.AtPoint(*math64.NewVector3(2, 0, 0)))
	b, err := Compound([]shape.Shape{sph}, 1, Material{}, nil)
	require.NoError(t, err)

	want := *math64.NewVector3(5, 1, -3)
	b.SetPosition(want)

	got := b.Position()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
}

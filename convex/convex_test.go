// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convex

import (
	"testing"

	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
)

func TestFromBlockVolume(t *testing.T) {
	c := FromBlock(1, 2, 3)
	assert.Equal(t, 8.0*1*2*3, c.Volume)
	assert.Len(t, c.Faces, 6)
	assert.Len(t, c.UniqueEdges, 3)
	assert.Len(t, c.UniqueNormals, 3)
}

func TestFromBlockNoNearDuplicateEdgesOrNormals(t *testing.T) {
	c := FromBlock(1, 1, 1)
	for i := 0; i < len(c.UniqueEdges); i++ {
		for j := i + 1; j < len(c.UniqueEdges); j++ {
			cross := math64.NewVec3().CrossVectors(&c.UniqueEdges[i], &c.UniqueEdges[j])
			assert.GreaterOrEqual(t, cross.Length(), math64.Epsilon)
		}
	}
	for i := 0; i < len(c.UniqueNormals); i++ {
		for j := i + 1; j < len(c.UniqueNormals); j++ {
			cross := math64.NewVec3().CrossVectors(&c.UniqueNormals[i], &c.UniqueNormals[j])
			assert.GreaterOrEqual(t, cross.Length(), math64.Epsilon)
		}
	}
}

func TestPlaceInPreservesVolumeAndTranslatesCenter(t *testing.T) {
	c := FromBlock(1, 1, 1)
	tr := transform.AtPoint(*math64.NewVector3(5, 0, 0))

	moved := PlaceIn(&tr, c)
	assert.Equal(t, c.Volume, moved.Volume)
	assert.InDelta(t, 5.0, moved.Center.X, 1e-9)
	for _, v := range moved.Vertices {
		assert.GreaterOrEqual(t, v.X, 3.999)
		assert.LessOrEqual(t, v.X, 6.001)
	}
}

func TestExpandBoundingSphereRadius(t *testing.T) {
	c := FromBlock(1, 1, 1)
	r := ExpandBoundingSphereRadius(c, 0)
	assert.InDelta(t, math64.Sqrt(3), r, 1e-9)
}

func TestRaycastHitsFrontFace(t *testing.T) {
	c := FromBlock(1, 1, 1)
	origin := *math64.NewVector3(0, 0, 5)
	dir := *math64.NewVector3(0, 0, -1)

	hit, ok := Raycast(origin, dir, c)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, hit.Distance, 1e-9)
	assert.InDelta(t, 1.0, hit.Point.Z, 1e-9)
	assert.InDelta(t, 1.0, hit.Normal.Z, 1e-9)
}

func TestRaycastMissesWhenOffsetPastFace(t *testing.T) {
	c := FromBlock(1, 1, 1)
	origin := *math64.NewVector3(5, 0, 5)
	dir := *math64.NewVector3(0, 0, -1)

	_, ok := Raycast(origin, dir, c)
	assert.False(t, ok)
}

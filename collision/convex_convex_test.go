// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"testing"

	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
)

func rotatedAt(origin math64.Vector3, axis *math64.Vector3, angle float64) transform.Transform3d {
	q := math64.NewQuaternion(0, 0, 0, 1).SetFromAxisAngle(axis, angle)
	return transform.Transform3d{Origin: origin, Orientation: *q}
}

// TestStackedBlocksProduceFourContacts covers scenario S2: two unit
// blocks (half-extent 1), each rotated pi/2 about y, stacked along z
// with a 0.1 overlap, produce exactly 4 contact points.
func TestStackedBlocksProduceFourContacts(t *testing.T) {
	s1 := shape.NewConvex(convex.FromBlock(1, 1, 1), transform.AtOrigin())
	s2 := shape.NewConvex(convex.FromBlock(1, 1, 1), transform.AtOrigin())

	yAxis := math64.NewVector3(0, 1, 0)
	t1 := rotatedAt(*math64.NewVector3(0, 0, 2.1), yAxis, math64.Pi/2)
	t2 := rotatedAt(*math64.NewVector3(0, 0, 4), yAxis, math64.Pi/2)

	contacts := Collide(&s1, t1, &s2, t2, nil)
	assert.Len(t, contacts, 4)
}

// TestAngledBlocksProduceTwoContacts covers scenario S3: blocks of
// half-extent 0.6 and 0.5, rotated pi/2 and pi/4 about z, placed
// side-by-side, produce exactly 2 contact points.
func TestAngledBlocksProduceTwoContacts(t *testing.T) {
	s1 := shape.NewConvex(convex.FromBlock(0.6, 0.6, 0.6), transform.AtOrigin())
	s2 := shape.NewConvex(convex.FromBlock(0.5, 0.5, 0.5), transform.AtOrigin())

	zAxis := math64.NewVector3(0, 0, 1)
	t1 := rotatedAt(*math64.NewVector3(-0.5, 0, 0), zAxis, math64.Pi/2)
	t2 := rotatedAt(*math64.NewVector3(0.5, 0, 0), zAxis, math64.Pi/4)

	contacts := Collide(&s1, t1, &s2, t2, nil)
	assert.Len(t, contacts, 2)
}

// TestSeparatingAxisDepthMatchesExactOverlap covers scenario S6: two
// half-extent 0.5 blocks overlapping 0.2 along x have an exact
// separating-axis depth of 0.6; rotating the second block pi/4 about z
// drops the minimum-overlap depth to the known irrational value
// 0.4071067 (within 1e-5).
func TestSeparatingAxisDepthMatchesExactOverlap(t *testing.T) {
	c1 := convex.FromBlock(0.5, 0.5, 0.5)
	c2 := convex.FromBlock(0.5, 0.5, 0.5)

	t1 := transform.AtPoint(*math64.NewVector3(-0.2, 0, 0))
	t2 := transform.AtPoint(*math64.NewVector3(0.2, 0, 0))
	wa := convex.PlaceIn(&t1, c1)
	wb := convex.PlaceIn(&t2, c2)

	_, depth, ok := findSeparatingAxis(wa, wb)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, depth, 1e-9)

	t2r := rotatedAt(*math64.NewVector3(0.2, 0, 0), math64.NewVector3(0, 0, 1), math64.Pi/4)
	wb2 := convex.PlaceIn(&t2r, c2)

	_, depth2, ok2 := findSeparatingAxis(wa, wb2)
	assert.True(t, ok2)
	assert.InDelta(t, 0.4071067, depth2, 1e-5)
}

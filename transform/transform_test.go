// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/g3n/physics/math64"
	"github.com/stretchr/testify/assert"
)

func TestAtOriginIsIdentity(t *testing.T) {
	tr := AtOrigin()
	p := *math64.NewVector3(1, 2, 3)
	out := tr.PointPlaceIn(&p)
	assert.InDelta(t, 1.0, out.X, 1e-9)
	assert.InDelta(t, 2.0, out.Y, 1e-9)
	assert.InDelta(t, 3.0, out.Z, 1e-9)
}

func TestPointPlaceInAndRelativeToRoundTrip(t *testing.T) {
	tr := AtPoint(*math64.NewVector3(1, 2, 3))
	axis := *math64.NewVector3(0, 0, 1)
	tr.RotateAroundOwn(&axis, math64.Pi/2)

	p := *math64.NewVector3(5, 0, 0)
	world := tr.PointPlaceIn(&p)
	back := tr.PointRelativeTo(&world)

	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
	assert.InDelta(t, p.Z, back.Z, 1e-9)
}

func TestPlaceInComposesTranslation(t *testing.T) {
	inner := AtPoint(*math64.NewVector3(1, 0, 0))
	outer := AtPoint(*math64.NewVector3(0, 5, 0))

	composed := inner.PlaceIn(&outer)
	assert.InDelta(t, 1.0, composed.Origin.X, 1e-9)
	assert.InDelta(t, 5.0, composed.Origin.Y, 1e-9)
}

func TestRelativeToIsInverseOfPlaceIn(t *testing.T) {
	outer := AtPoint(*math64.NewVector3(2, 3, 4))
	axis := *math64.NewVector3(0, 1, 0)
	outer.RotateAroundOwn(&axis, 0.7)

	t1 := AtPoint(*math64.NewVector3(1, 1, 1))
	placed := t1.PlaceIn(&outer)
	back := RelativeTo(&outer, &placed)

	assert.InDelta(t, t1.Origin.X, back.Origin.X, 1e-9)
	assert.InDelta(t, t1.Origin.Y, back.Origin.Y, 1e-9)
	assert.InDelta(t, t1.Origin.Z, back.Origin.Z, 1e-9)
}

func TestInverseRoundTrip(t *testing.T) {
	tr := AtPoint(*math64.NewVector3(3, -2, 1))
	axis := *math64.NewVector3(1, 0, 0)
	tr.RotateAroundOwn(&axis, 1.2)

	inv := tr.Inverse()
	p := *math64.NewVector3(0.5, 0.5, 0.5)
	world := tr.PointPlaceIn(&p)
	local := inv.PointPlaceIn(&world)

	assert.InDelta(t, p.X, local.X, 1e-9)
	assert.InDelta(t, p.Y, local.Y, 1e-9)
	assert.InDelta(t, p.Z, local.Z, 1e-9)
}

func TestRotateByPreservesUnitNorm(t *testing.T) {
	tr := AtOrigin()
	omega := *math64.NewVector3(1, 2, 3)
	for i := 0; i < 100; i++ {
		tr.RotateBy(&omega, 1.0/60.0)
	}
	length := tr.Orientation.Length()
	assert.InDelta(t, 1.0, length, 1e-5)
}

func TestInvertedInertiaRotateInSkipsIsotropic(t *testing.T) {
	tr := AtOrigin()
	axis := *math64.NewVector3(0, 0, 1)
	tr.RotateAroundOwn(&axis, 0.9)

	iso := math64.NewDiagonalMatrix3(2, 2, 2)
	out := tr.InvertedInertiaRotateIn(iso)
	assert.Equal(t, *iso, out)
}

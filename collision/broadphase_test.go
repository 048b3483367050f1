// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"testing"

	"github.com/g3n/physics/body"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPairsBoundingSphereOverlap(t *testing.T) {
	s := shape.NewSphere(1, transform.AtOrigin())

	near, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	near.ID = 0
	near.WorldToCoM.Origin = *math64.NewVector3(0, 0, 0)

	far, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	far.ID = 1
	far.WorldToCoM.Origin = *math64.NewVector3(10, 0, 0)

	touching, err := body.Compound([]shape.Shape{s}, 1, body.Material{}, nil)
	require.NoError(t, err)
	touching.ID = 2
	touching.WorldToCoM.Origin = *math64.NewVector3(1.5, 0, 0)

	pairs := GetPairs([]*body.Body{near, far, touching})
	assert.Equal(t, []Pair{{I: 0, J: 2}}, pairs)
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpookParams(t *testing.T) {
	a, b, eps := SpookParams(1.0 / 60.0)
	assert.Greater(t, a, 0.0)
	assert.Greater(t, b, 0.0)
	assert.Greater(t, eps, 0.0)
}

func TestCombineClampsToUnitRange(t *testing.T) {
	assert.Equal(t, 1.0, Combine(1.5, 1.5))
	assert.Equal(t, 0.0, Combine(-1, -1))
	assert.InDelta(t, 0.5, Combine(0, 1), 1e-12)
}

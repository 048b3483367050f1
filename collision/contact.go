// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import "github.com/g3n/physics/math64"

// Contact is one point of contact between two bodies: a world-space
// normal pointing out of body1, and a world-space point on each body's
// surface.
type Contact struct {
	Normal      math64.Vector3
	PointOnBody1 math64.Vector3
	PointOnBody2 math64.Vector3
}

// flip negates the normal and swaps the two surface points: used by
// asymmetric kernels to re-use a single implementation for both orderings
// of a shape-kind pair.
func flip(c Contact) Contact {
	n := c.Normal
	n.Negate()
	return Contact{Normal: n, PointOnBody1: c.PointOnBody2, PointOnBody2: c.PointOnBody1}
}

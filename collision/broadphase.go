// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements broad- and narrow-phase collision
// detection: which body pairs might touch, and the exact contact points
// between the ones that do.
package collision

import (
	"github.com/g3n/physics/body"
	"github.com/g3n/physics/math64"
)

// Pair is a candidate colliding body pair, ordered by id (i < j).
type Pair struct {
	I, J int
}

// GetPairs returns every ordered pair (i, j), i < j, of bodies whose
// bounding spheres overlap. This is O(n^2); acceptable at the scales
// targeted.
func GetPairs(bodies []*body.Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			sa := math64.NewSphere(&a.WorldToCoM.Origin, a.BoundingSphereRadius)
			sb := math64.NewSphere(&b.WorldToCoM.Origin, b.BoundingSphereRadius)
			if sa.IntersectsSphere(sb) {
				pairs = append(pairs, Pair{I: a.ID, J: b.ID})
			}
		}
	}
	return pairs
}

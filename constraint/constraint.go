// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint declares the joint types a World can enforce
// between two bodies: PointToPoint, Hinge, Lock and Distance. Each
// constraint references its bodies by id; the equation package turns a
// Constraint plus its two bodies' current state into solver equations.
package constraint

import "github.com/g3n/physics/math64"

// Kind identifies which joint variant a Constraint holds.
type Kind int

const (
	KindPointToPoint Kind = iota
	KindHinge
	KindLock
	KindDistance
)

// Constraint is a joint between two bodies, identified by id.
type Constraint struct {
	Kind             Kind
	Body1ID, Body2ID int

	Pivot1, Pivot2 math64.Vector3 // PointToPoint, Hinge, Lock
	Axis1, Axis2   math64.Vector3 // Hinge only
	Distance       float64        // Distance only
}

// NewPointToPoint pins pivot1 (body1-local) to pivot2 (body2-local).
func NewPointToPoint(body1, body2 int, pivot1, pivot2 math64.Vector3) Constraint {
	return Constraint{Kind: KindPointToPoint, Body1ID: body1, Body2ID: body2, Pivot1: pivot1, Pivot2: pivot2}
}

// NewHinge pins pivot1/pivot2 like PointToPoint and additionally
// constrains body1's axis1 to stay orthogonal to body2's axis2's
// tangent plane, leaving one rotational degree of freedom.
func NewHinge(body1, body2 int, pivot1, pivot2, axis1, axis2 math64.Vector3) Constraint {
	return Constraint{Kind: KindHinge, Body1ID: body1, Body2ID: body2, Pivot1: pivot1, Pivot2: pivot2, Axis1: axis1, Axis2: axis2}
}

// NewLock pins pivot1/pivot2 like PointToPoint and additionally locks
// body1's world basis to body2's world basis, leaving no relative
// rotational freedom.
func NewLock(body1, body2 int, pivot1, pivot2 math64.Vector3) Constraint {
	return Constraint{Kind: KindLock, Body1ID: body1, Body2ID: body2, Pivot1: pivot1, Pivot2: pivot2}
}

// NewDistance keeps the two bodies exactly distance d apart.
func NewDistance(body1, body2 int, d float64) Constraint {
	return Constraint{Kind: KindDistance, Body1ID: body1, Body2ID: body2, Distance: d}
}

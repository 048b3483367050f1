// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world ties the pipeline together: broad-phase, narrow-phase,
// equation assembly, solve, integrate, one tick at a time.
package world

import (
	"errors"

	"github.com/g3n/physics/body"
	"github.com/g3n/physics/collision"
	"github.com/g3n/physics/constraint"
	"github.com/g3n/physics/equation"
	"github.com/g3n/physics/integrator"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/solver"
	"github.com/g3n/physics/util/logger"
	"github.com/google/uuid"
)

// ErrUnknownBody is returned by AddConstraint when either referenced
// body id is not present in the world.
var ErrUnknownBody = errors.New("world: unknown body id")

var log = logger.New("physics", nil)

func init() {
	log.SetLevel(logger.WARN)
	log.AddWriter(logger.NewConsole(false))
}

// World owns every body and constraint in a simulation and advances
// them one tick at a time.
type World struct {
	Gravity math64.Vector3

	// ID identifies this simulation instance in logs, distinguishing
	// ticks from concurrently running worlds.
	ID uuid.UUID

	bodies      []*body.Body
	byID        map[int]*body.Body
	freeIDs     []int
	nextID      int
	constraints []constraint.Constraint

	// LastContactGroups and LastSimulatedBodies are cached from the most
	// recent Simulate call, for inspection between ticks.
	LastContactGroups   [][]collision.Contact
	LastSimulatedBodies []*body.Body
}

// New returns an empty World with the given gravity vector.
func New(gravity math64.Vector3) *World {
	w := &World{Gravity: gravity, ID: uuid.New(), byID: make(map[int]*body.Body)}
	log.Debug("world %s created, gravity=%v", w.ID, gravity)
	return w
}

// AddBody assigns the next free id to b (reusing one from the free
// pool if available) and adds it to the world.
func (w *World) AddBody(b *body.Body) int {
	var id int
	if n := len(w.freeIDs); n > 0 {
		id = w.freeIDs[n-1]
		w.freeIDs = w.freeIDs[:n-1]
	} else {
		id = w.nextID
		w.nextID++
	}
	b.ID = id
	w.byID[id] = b
	w.bodies = append(w.bodies, b)
	return id
}

// RemoveBody removes the body with the given id, returning its id to
// the free pool.
func (w *World) RemoveBody(id int) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.freeIDs = append(w.freeIDs, id)
}

// AddConstraint adds c to the world's constraint list, rejecting it if
// either body id it references isn't in the world.
func (w *World) AddConstraint(c constraint.Constraint) error {
	if _, ok := w.byID[c.Body1ID]; !ok {
		return ErrUnknownBody
	}
	if _, ok := w.byID[c.Body2ID]; !ok {
		return ErrUnknownBody
	}
	w.constraints = append(w.constraints, c)
	return nil
}

// Bodies returns the world's current body list, ordered by insertion
// (modulo removals).
func (w *World) Bodies() []*body.Body {
	return w.bodies
}

// Simulate advances the world by dt: gravity, broad-phase, narrow-phase,
// equation assembly, solve, integrate.
func (w *World) Simulate(dt float64) {
	for _, b := range w.bodies {
		b.AddGravity(&w.Gravity)
	}

	pairs := collision.GetPairs(w.bodies)

	var equations []equation.Equation
	var contactGroups [][]collision.Contact

	for _, pair := range pairs {
		b1, b2 := w.byID[pair.I], w.byID[pair.J]
		if b1 == nil || b2 == nil {
			continue
		}

		var contacts []collision.Contact
		for i := range b1.Shapes {
			s1 := &b1.Shapes[i]
			t1 := s1.WorldTransform(&b1.WorldToCoM)
			for j := range b2.Shapes {
				s2 := &b2.Shapes[j]
				t2 := s2.WorldTransform(&b2.WorldToCoM)
				contacts = collision.Collide(s1, t1, s2, t2, contacts)
			}
		}
		if len(contacts) == 0 {
			continue
		}
		contactGroups = append(contactGroups, contacts)

		bounciness := equation.Combine(b1.Material.Bounciness, b2.Material.Bounciness)
		for _, c := range contacts {
			in := equation.ContactInput{
				Normal: c.Normal, PointOnBody1: c.PointOnBody1, PointOnBody2: c.PointOnBody2,
				Body1ID: b1.ID, Body2ID: b2.ID,
				InvMass1: b1.InvMass, InvMass2: b2.InvMass,
				InvWorldInertia1: b1.InvWorldInertia, InvWorldInertia2: b2.InvWorldInertia,
				Origin1: b1.WorldToCoM.Origin, Origin2: b2.WorldToCoM.Origin,
				Force1: b1.Force, Force2: b2.Force,
				Torque1: b1.Torque, Torque2: b2.Torque,
				Velocity1: b1.Velocity, Velocity2: b2.Velocity,
				AngularVelocity1: b1.AngularVelocity, AngularVelocity2: b2.AngularVelocity,
				Bounciness: bounciness, Friction1: b1.Material.Friction, Friction2: b2.Material.Friction,
			}
			equations = append(equations, equation.BuildContactEquations(in, w.Gravity.Length(), dt)...)
		}
	}

	for _, c := range w.constraints {
		b1, b2 := w.byID[c.Body1ID], w.byID[c.Body2ID]
		if b1 == nil || b2 == nil {
			continue
		}
		eb1 := constraintBodyInput(b1)
		eb2 := constraintBodyInput(b2)

		switch c.Kind {
		case constraint.KindPointToPoint:
			equations = append(equations, equation.BuildPointToPoint(eb1, eb2, c.Pivot1, c.Pivot2, dt)...)
		case constraint.KindHinge:
			equations = append(equations, equation.BuildHinge(eb1, eb2, c.Pivot1, c.Pivot2, c.Axis1, c.Axis2, dt)...)
		case constraint.KindLock:
			equations = append(equations, equation.BuildLock(eb1, eb2, c.Pivot1, c.Pivot2, dt)...)
		case constraint.KindDistance:
			equations = append(equations, equation.BuildDistance(eb1, eb2, c.Distance, dt)...)
		}
	}

	deltas, iterationsUsed := solver.Solve(w.bodies, equations)
	if iterationsUsed >= solver.MaxIterations && len(equations) > 0 {
		log.Warn("world %s: solver did not converge within %d iterations (%d equations)", w.ID, solver.MaxIterations, len(equations))
	}
	integrator.Integrate(w.bodies, deltas, dt)

	w.LastContactGroups = contactGroups
	w.LastSimulatedBodies = w.bodies
}

func constraintBodyInput(b *body.Body) equation.ConstraintBodyInput {
	return equation.ConstraintBodyInput{
		ID: b.ID, InvMass: b.InvMass, InvWorldInertia: b.InvWorldInertia,
		Origin: b.WorldToCoM.Origin, Orientation: b.WorldToCoM.Orientation,
		Force: b.Force, Torque: b.Torque,
		Velocity: b.Velocity, AngularVelocity: b.AngularVelocity,
	}
}

// RaycastHit is the result of a successful raycast against the world.
type RaycastHit struct {
	Distance float64
	Point    math64.Vector3
	Normal   math64.Vector3
	Body     *body.Body
}

// Raycast folds body raycasts across every body in the world, returning
// the closest hit. Ties are resolved by encounter order (first wins),
// matching Bodies()'s iteration order.
func (w *World) Raycast(origin, direction math64.Vector3) (RaycastHit, bool) {
	best := RaycastHit{Distance: math64.Infinity}
	found := false

	for _, b := range w.bodies {
		hit, ok := body.Raycast(origin, direction, b)
		if !ok || hit.Distance >= best.Distance {
			continue
		}
		best = RaycastHit{Distance: hit.Distance, Point: hit.Point, Normal: hit.Normal, Body: b}
		found = true
	}

	return best, found
}

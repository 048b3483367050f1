// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/shape"
	"github.com/g3n/physics/transform"
)

// maxContactDepth bounds the clipped-vertex acceptance depth in the
// convex-convex kernel; tunable for worlds with much larger bodies.
const maxContactDepth = 100.0

// Collide dispatches on (s1.Kind, s2.Kind) and appends every resulting
// contact to out, returning the extended slice. t1 and t2 are shape s1
// and s2's world transforms (body transform composed with the shape's
// own body-local transform). Two-plane and two-particle pairs always
// produce no contacts.
func Collide(s1 *shape.Shape, t1 transform.Transform3d, s2 *shape.Shape, t2 transform.Transform3d, out []Contact) []Contact {
	switch {
	case s1.Kind == shape.KindPlane && s2.Kind == shape.KindPlane:
		return out
	case s1.Kind == shape.KindParticle && s2.Kind == shape.KindParticle:
		return out

	case s1.Kind == shape.KindSphere && s2.Kind == shape.KindSphere:
		return sphereSphere(t1.Origin, s1.Radius, t2.Origin, s2.Radius, out)

	case s1.Kind == shape.KindSphere && s2.Kind == shape.KindPlane:
		return flipAll(spherePlane(t1.Origin, s1.Radius, t2, nil), out)
	case s1.Kind == shape.KindPlane && s2.Kind == shape.KindSphere:
		return spherePlane(t2.Origin, s2.Radius, t1, out)

	case s1.Kind == shape.KindPlane && s2.Kind == shape.KindConvex:
		return planeConvex(t1, t2, s2.Convex, out)
	case s1.Kind == shape.KindConvex && s2.Kind == shape.KindPlane:
		return flipAll(planeConvex(t2, t1, s1.Convex, nil), out)

	case s1.Kind == shape.KindSphere && s2.Kind == shape.KindConvex:
		return sphereConvex(t1.Origin, s1.Radius, t2, s2.Convex, out)
	case s1.Kind == shape.KindConvex && s2.Kind == shape.KindSphere:
		return flipAll(sphereConvex(t2.Origin, s2.Radius, t1, s1.Convex, nil), out)

	case s1.Kind == shape.KindConvex && s2.Kind == shape.KindConvex:
		return convexConvex(t1, s1.Convex, t2, s2.Convex, out)

	case s1.Kind == shape.KindParticle && s2.Kind == shape.KindSphere:
		return sphereSphere(t1.Origin, 0, t2.Origin, s2.Radius, out)
	case s1.Kind == shape.KindSphere && s2.Kind == shape.KindParticle:
		return sphereSphere(t1.Origin, s1.Radius, t2.Origin, 0, out)

	case s1.Kind == shape.KindParticle && s2.Kind == shape.KindPlane:
		return flipAll(spherePlane(t1.Origin, 0, t2, nil), out)
	case s1.Kind == shape.KindPlane && s2.Kind == shape.KindParticle:
		return spherePlane(t2.Origin, 0, t1, out)

	case s1.Kind == shape.KindParticle && s2.Kind == shape.KindConvex:
		return sphereConvex(t1.Origin, 0, t2, s2.Convex, out)
	case s1.Kind == shape.KindConvex && s2.Kind == shape.KindParticle:
		return flipAll(sphereConvex(t2.Origin, 0, t1, s1.Convex, nil), out)
	}

	return out
}

func flipAll(contacts []Contact, out []Contact) []Contact {
	for _, c := range contacts {
		out = append(out, flip(c))
	}
	return out
}

// sphereSphere: if ||c2-c1|| <= r1+r2, ni = normalize(c2-c1) (falls back
// to x-hat if the centers coincide), pi = c1+r1*ni, pj = c2-r2*ni.
func sphereSphere(c1 math64.Vector3, r1 float64, c2 math64.Vector3, r2 float64, out []Contact) []Contact {
	d := math64.NewVec3().SubVectors(&c2, &c1)
	dist := d.Length()
	if dist > r1+r2 {
		return out
	}

	var ni math64.Vector3
	if dist < math64.Epsilon {
		ni = *math64.NewVector3(1, 0, 0)
	} else {
		ni = *d.Clone().MultiplyScalar(1 / dist)
	}

	pi := c1
	pi.AddScaledVector(&ni, r1)
	pj := c2
	pj.AddScaledVector(&ni, -r2)

	return append(out, Contact{Normal: ni, PointOnBody1: pi, PointOnBody2: pj})
}

// spherePlane: plane's world normal n (its transform's orientation
// applied to +z), d = (c-p0).n; if d <= r, contact with ni=n, pi the
// projection of c onto the plane, pj = c - r*n. The plane is infinite;
// only the half-space d >= 0 side collides.
func spherePlane(c math64.Vector3, r float64, planeTransform transform.Transform3d, out []Contact) []Contact {
	n := planeTransform.DirectionPlaceIn(math64.NewVector3(0, 0, 1))
	p0 := planeTransform.Origin

	diff := math64.NewVec3().SubVectors(&c, &p0)
	d := diff.Dot(&n)
	if d < 0 || d > r {
		return out
	}

	pi := c
	pi.AddScaledVector(&n, -d)
	pj := c
	pj.AddScaledVector(&n, -r)

	return append(out, Contact{Normal: n, PointOnBody1: pi, PointOnBody2: pj})
}

// planeConvex: iterate the convex's world-transformed vertices; for
// each vertex v with (v-p0).n <= 0, emit a contact with ni=n,
// pi = v - ((v-p0).n)*n (projection onto the plane), pj = v.
func planeConvex(planeTransform, convexTransform transform.Transform3d, c *convex.Convex, out []Contact) []Contact {
	n := planeTransform.DirectionPlaceIn(math64.NewVector3(0, 0, 1))
	p0 := planeTransform.Origin

	placed := convex.PlaceIn(&convexTransform, c)
	for _, v := range placed.Vertices {
		diff := math64.NewVec3().SubVectors(&v, &p0)
		d := diff.Dot(&n)
		if d > 0 {
			continue
		}
		pi := v
		pi.AddScaledVector(&n, -d)
		out = append(out, Contact{Normal: n, PointOnBody1: pi, PointOnBody2: v})
	}
	return out
}

// sphereConvex classifies the sphere center against the convex's local
// faces/edges/vertices (transforming the center into the convex's own
// frame to do so) and emits at most one contact: the deepest of the
// face/edge/vertex candidates.
func sphereConvex(centerWorld math64.Vector3, r float64, convexTransform transform.Transform3d, c *convex.Convex, out []Contact) []Contact {
	local := convexTransform.PointRelativeTo(&centerWorld)

	bestDepth := -math64.Infinity
	var bestLocalPoint, bestLocalNormal math64.Vector3
	found := false

	allInside := true
	for _, f := range c.Faces {
		v0 := f.Vertices[0]
		d := math64.NewVec3().SubVectors(&local, &v0).Dot(&f.Normal)
		if d > 0 {
			allInside = false
		}
		if -d < r { // candidate face: center not farther than r outside it
			depth := r - d
			if depth > bestDepth {
				proj := local
				proj.AddScaledVector(&f.Normal, -d)
				bestDepth = depth
				bestLocalPoint = proj
				bestLocalNormal = f.Normal
				found = true
			}
		}
	}

	if allInside && found {
		pi := convexTransform.PointPlaceIn(&bestLocalPoint)
		n := convexTransform.DirectionPlaceIn(&bestLocalNormal)
		pj := centerWorld
		pj.AddScaledVector(&n, -r)
		n.Negate()
		return append(out, Contact{Normal: n, PointOnBody1: pj, PointOnBody2: pi})
	}

	// Edge candidates.
	for _, f := range c.Faces {
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			a := f.Vertices[i]
			bv := f.Vertices[(i+1)%n]
			edge := math64.NewVec3().SubVectors(&bv, &a)
			elen := edge.Length()
			if elen < math64.Epsilon {
				continue
			}
			dir := edge.Clone().MultiplyScalar(1 / elen)
			toCenter := math64.NewVec3().SubVectors(&local, &a)
			t := toCenter.Dot(dir)
			if t < 0 || t > elen {
				continue
			}
			closest := a
			closest.AddScaledVector(dir, t)
			perp := math64.NewVec3().SubVectors(&local, &closest)
			dist := perp.Length()
			if dist >= r {
				continue
			}
			depth := r - dist
			if depth > bestDepth {
				normal := *perp
				if dist > math64.Epsilon {
					normal.MultiplyScalar(1 / dist)
				} else {
					normal = f.Normal
				}
				bestDepth = depth
				bestLocalPoint = closest
				bestLocalNormal = normal
				found = true
			}
		}
	}

	if found {
		pi := convexTransform.PointPlaceIn(&bestLocalPoint)
		n := convexTransform.DirectionPlaceIn(&bestLocalNormal)
		pj := centerWorld
		pj.AddScaledVector(&n, -r)
		n.Negate()
		return append(out, Contact{Normal: n, PointOnBody1: pj, PointOnBody2: pi})
	}

	// Vertex candidates.
	for _, v := range c.Vertices {
		d := local.DistanceTo(&v)
		if d >= r {
			continue
		}
		depth := r - d
		if depth > bestDepth {
			bestDepth = depth
			bestLocalPoint = v
			if d > math64.Epsilon {
				n := math64.NewVec3().SubVectors(&local, &v)
				n.MultiplyScalar(1 / d)
				bestLocalNormal = *n
			} else {
				bestLocalNormal = *math64.NewVector3(0, 0, 1)
			}
			found = true
		}
	}

	if !found {
		return out
	}

	pi := convexTransform.PointPlaceIn(&bestLocalPoint)
	n := convexTransform.DirectionPlaceIn(&bestLocalNormal)
	pj := centerWorld
	pj.AddScaledVector(&n, -r)
	n.Negate()
	return append(out, Contact{Normal: n, PointOnBody1: pj, PointOnBody2: pi})
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"github.com/g3n/physics/convex"
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/transform"
)

// convexConvex implements SAT-plus-clipping convex-convex collision:
// find the axis of minimum overlap among face normals and cross-edge
// axes, clip the incident face against the reference face's side
// planes, and emit one contact per surviving vertex that is actually
// penetrating.
func convexConvex(ta transform.Transform3d, a *convex.Convex, tb transform.Transform3d, b *convex.Convex, out []Contact) []Contact {
	wa := convex.PlaceIn(&ta, a)
	wb := convex.PlaceIn(&tb, b)

	axis, _, ok := findSeparatingAxis(wa, wb)
	if !ok {
		return out
	}

	toB := math64.NewVec3().SubVectors(&tb.Origin, &ta.Origin)
	if toB.Dot(&axis) > 0 {
		axis.Negate()
	}

	refFace := mostAntiAlignedFace(wa, axis)
	incFace := mostAlignedFace(wb, axis)

	clipped := incFace.Vertices
	n := len(refFace.Vertices)
	for i := 0; i < n; i++ {
		v0 := refFace.Vertices[i]
		v1 := refFace.Vertices[(i+1)%n]
		edge := math64.NewVec3().SubVectors(&v1, &v0)
		sideNormal := math64.NewVec3().CrossVectors(edge, &refFace.Normal)
		clipped = clipPolygonAgainstPlane(clipped, v0, *sideNormal)
		if len(clipped) == 0 {
			return out
		}
	}

	refPoint := refFace.Vertices[0]
	refNormal := refFace.Normal
	for _, v := range clipped {
		d := math64.NewVec3().SubVectors(&v, &refPoint).Dot(&refNormal)
		if d > 0 || -d > maxContactDepth {
			continue
		}
		pi := v
		pi.AddScaledVector(&refNormal, -d)
		out = append(out, Contact{Normal: refNormal, PointOnBody1: pi, PointOnBody2: v})
	}

	return out
}

// findSeparatingAxis tries every candidate axis (face normals of both
// hulls, plus normalized cross products of their unique edges) and
// returns the axis of minimum overlap, or ok=false if any axis
// separates the hulls entirely.
func findSeparatingAxis(a, b *convex.Convex) (math64.Vector3, float64, bool) {
	best := math64.Infinity
	var bestAxis math64.Vector3
	found := false

	test := func(axis math64.Vector3) bool {
		if axis.AlmostZero() {
			return true
		}
		axis.Normalize()
		min1, max1 := projectOntoAxis(a.Vertices, axis)
		min2, max2 := projectOntoAxis(b.Vertices, axis)
		o := math64.Min64(max1-min2, max2-min1)
		if o < 0 {
			return false
		}
		if o < best {
			best = o
			bestAxis = axis
			found = true
		}
		return true
	}

	for _, n := range a.UniqueNormals {
		if !test(n) {
			return math64.Vector3{}, 0, false
		}
	}
	for _, n := range b.UniqueNormals {
		if !test(n) {
			return math64.Vector3{}, 0, false
		}
	}
	for _, ea := range a.UniqueEdges {
		for _, eb := range b.UniqueEdges {
			cross := math64.NewVec3().CrossVectors(&ea, &eb)
			if cross.Length() < math64.Epsilon {
				continue
			}
			if !test(*cross) {
				return math64.Vector3{}, 0, false
			}
		}
	}

	if !found {
		return math64.Vector3{}, 0, false
	}
	return bestAxis, best, true
}

func projectOntoAxis(vertices []math64.Vector3, axis math64.Vector3) (float64, float64) {
	min, max := math64.Infinity, -math64.Infinity
	for _, v := range vertices {
		d := v.Dot(&axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func mostAlignedFace(c *convex.Convex, axis math64.Vector3) convex.Face {
	best := -math64.Infinity
	var bf convex.Face
	for _, f := range c.Faces {
		d := f.Normal.Dot(&axis)
		if d > best {
			best = d
			bf = f
		}
	}
	return bf
}

func mostAntiAlignedFace(c *convex.Convex, axis math64.Vector3) convex.Face {
	best := math64.Infinity
	var bf convex.Face
	for _, f := range c.Faces {
		d := f.Normal.Dot(&axis)
		if d < best {
			best = d
			bf = f
		}
	}
	return bf
}

// clipPolygonAgainstPlane implements Sutherland-Hodgman clipping of a
// convex polygon against the half-space behind (planePoint, planeNormal):
// points with non-positive signed distance are kept; each edge that
// crosses the plane contributes the linear-interpolation boundary point.
func clipPolygonAgainstPlane(poly []math64.Vector3, planePoint, planeNormal math64.Vector3) []math64.Vector3 {
	if len(poly) == 0 {
		return poly
	}
	var outp []math64.Vector3
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]

		dCur := math64.NewVec3().SubVectors(&cur, &planePoint).Dot(&planeNormal)
		dPrev := math64.NewVec3().SubVectors(&prev, &planePoint).Dot(&planeNormal)

		curInside := dCur <= 0
		prevInside := dPrev <= 0

		if curInside != prevInside {
			t := dPrev / (dPrev - dCur)
			cross := prev
			cross.Lerp(&cur, t)
			outp = append(outp, cross)
		}
		if curInside {
			outp = append(outp, cur)
		}
	}
	return outp
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convex implements immutable convex polyhedra: the geometry that
// backs Shape's Convex variant. A Convex is built once (FromBlock or
// FromFaces) and never mutated in place; PlaceIn returns a new, transformed
// Convex.
package convex

import (
	"github.com/g3n/physics/math64"
	"github.com/g3n/physics/transform"
)

// Face is one face of a convex polyhedron: its vertices in
// counter-clockwise order as seen from outside the hull, plus the
// precomputed outward normal.
type Face struct {
	Vertices []math64.Vector3
	Normal   math64.Vector3
}

// Convex is an immutable convex polyhedron.
type Convex struct {
	Faces         []Face
	Vertices      []math64.Vector3
	UniqueEdges   []math64.Vector3
	UniqueNormals []math64.Vector3
	Center        math64.Vector3
	Volume        float64
}

// FromBlock builds the unit block convex with half-extents (halfX, halfY,
// halfZ): 8 vertices, 6 faces, 3 unique (axis-aligned) edges, 3 unique
// normals, volume 8*halfX*halfY*halfZ.
func FromBlock(halfX, halfY, halfZ float64) *Convex {
	v := [8]math64.Vector3{
		{X: -halfX, Y: -halfY, Z: -halfZ},
		{X: halfX, Y: -halfY, Z: -halfZ},
		{X: halfX, Y: halfY, Z: -halfZ},
		{X: -halfX, Y: halfY, Z: -halfZ},
		{X: -halfX, Y: -halfY, Z: halfZ},
		{X: halfX, Y: -halfY, Z: halfZ},
		{X: halfX, Y: halfY, Z: halfZ},
		{X: -halfX, Y: halfY, Z: halfZ},
	}

	faceIdx := [6][4]int{
		{3, 2, 1, 0}, // -z
		{4, 5, 6, 7}, // +z
		{0, 1, 5, 4}, // -y
		{2, 3, 7, 6}, // +y
		{1, 2, 6, 5}, // +x
		{3, 0, 4, 7}, // -x
	}

	c := &Convex{Vertices: v[:]}
	for _, fi := range faceIdx {
		face := Face{Vertices: []math64.Vector3{v[fi[0]], v[fi[1]], v[fi[2]], v[fi[3]]}}
		face.Normal = faceNormal(face.Vertices)
		c.Faces = append(c.Faces, face)
		c.UniqueNormals = appendUniqueDirection(c.UniqueNormals, face.Normal)
	}

	c.UniqueEdges = []math64.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}

	c.Volume = 8 * halfX * halfY * halfZ
	return c
}

// FromFaces builds a Convex from an explicit face list (indices into
// vertices, each face listed counter-clockwise as seen from outside) and
// a flat vertex array: the general triangular-or-quad mesh constructor.
// Each face's normal is normalize((v3-v2) x (v1-v2)); unique edges and
// normals are folded in as they are discovered.
func FromFaces(faceVertexIndices [][]int, vertices []math64.Vector3) *Convex {
	c := &Convex{Vertices: vertices}

	for _, idx := range faceVertexIndices {
		faceVerts := make([]math64.Vector3, len(idx))
		for i, vi := range idx {
			faceVerts[i] = vertices[vi]
		}
		face := Face{Vertices: faceVerts}
		face.Normal = faceNormal(faceVerts)
		c.Faces = append(c.Faces, face)
		c.UniqueNormals = appendUniqueDirection(c.UniqueNormals, face.Normal)

		n := len(faceVerts)
		for i := 0; i < n; i++ {
			edge := math64.NewVec3().SubVectors(&faceVerts[(i+1)%n], &faceVerts[i])
			if edge.AlmostZero() {
				continue
			}
			c.UniqueEdges = appendUniqueDirection(c.UniqueEdges, *edge)
		}
	}

	c.Center = centroid(vertices)
	c.Volume = tetrahedralVolume(c.Faces, c.Center)
	return c
}

// faceNormal computes the outward normal of a face (at least 3 vertices,
// CCW as seen from outside) as normalize((v3-v2) x (v1-v2)).
func faceNormal(verts []math64.Vector3) math64.Vector3 {
	v1, v2, v3 := verts[0], verts[1], verts[2]
	e1 := math64.NewVec3().SubVectors(&v1, &v2)
	e2 := math64.NewVec3().SubVectors(&v3, &v2)
	n := math64.NewVec3().CrossVectors(e2, e1)
	if n.AlmostZero() {
		return *n
	}
	return *n.Normalize()
}

// appendUniqueDirection appends d to dirs unless some existing direction e
// satisfies ||d x e|| < Epsilon (d and e are near-parallel or
// near-anti-parallel, i.e. the same edge/normal direction up to sign).
func appendUniqueDirection(dirs []math64.Vector3, d math64.Vector3) []math64.Vector3 {
	if d.AlmostZero() {
		return dirs
	}
	nd := d
	nd.Normalize()
	for _, e := range dirs {
		ne := e
		ne.Normalize()
		cross := math64.NewVec3().CrossVectors(&nd, &ne)
		if cross.Length() < math64.Epsilon {
			return dirs
		}
	}
	return append(dirs, d)
}

func centroid(vertices []math64.Vector3) math64.Vector3 {
	c := math64.Vector3{}
	for _, v := range vertices {
		c.Add(&v)
	}
	if len(vertices) > 0 {
		c.MultiplyScalar(1 / float64(len(vertices)))
	}
	return c
}

// tetrahedralVolume estimates the polyhedron's volume by fan-triangulating
// every face and summing the absolute volumes of the tetrahedra formed
// with center as the apex. This is exact for any convex polyhedron whose
// faces are planar, since center (the vertex centroid) lies inside it.
func tetrahedralVolume(faces []Face, center math64.Vector3) float64 {
	var vol float64
	for _, f := range faces {
		for i := 1; i+1 < len(f.Vertices); i++ {
			a := math64.NewVec3().SubVectors(&f.Vertices[0], &center)
			b := math64.NewVec3().SubVectors(&f.Vertices[i], &center)
			cc := math64.NewVec3().SubVectors(&f.Vertices[i+1], &center)
			cross := math64.NewVec3().CrossVectors(b, cc)
			vol += math64.Abs(a.Dot(cross)) / 6
		}
	}
	return vol
}

// PlaceIn returns a new Convex with every face, vertex, edge and normal of
// c transformed by t. Volume is invariant under a rigid transform and is
// copied unchanged. Because t is a rotation plus translation it preserves
// orientation, so each face's CCW-as-seen-from-outside winding survives
// the transform with no special-casing needed.
func PlaceIn(t *transform.Transform3d, c *Convex) *Convex {
	out := &Convex{Volume: c.Volume}

	out.Vertices = make([]math64.Vector3, len(c.Vertices))
	for i, v := range c.Vertices {
		out.Vertices[i] = t.PointPlaceIn(&v)
	}

	out.Faces = make([]Face, len(c.Faces))
	for i, f := range c.Faces {
		nf := Face{
			Vertices: make([]math64.Vector3, len(f.Vertices)),
			Normal:   t.DirectionPlaceIn(&f.Normal),
		}
		for j, v := range f.Vertices {
			nf.Vertices[j] = t.PointPlaceIn(&v)
		}
		out.Faces[i] = nf
	}

	out.UniqueEdges = make([]math64.Vector3, len(c.UniqueEdges))
	for i, e := range c.UniqueEdges {
		out.UniqueEdges[i] = t.DirectionPlaceIn(&e)
	}

	out.UniqueNormals = make([]math64.Vector3, len(c.UniqueNormals))
	for i, n := range c.UniqueNormals {
		out.UniqueNormals[i] = t.DirectionPlaceIn(&n)
	}

	center := t.PointPlaceIn(&c.Center)
	out.Center = center

	return out
}

// ExpandBoundingSphereRadius returns max(currentRadius, max(||v|| for v in
// c's vertex list)).
func ExpandBoundingSphereRadius(c *Convex, currentRadius float64) float64 {
	r := currentRadius
	for _, v := range c.Vertices {
		if l := v.Length(); l > r {
			r = l
		}
	}
	return r
}

// RaycastHit is the result of a successful Raycast against a Convex.
type RaycastHit struct {
	Distance float64
	Point    math64.Vector3
	Normal   math64.Vector3
}

// Raycast intersects ray (in the convex's own local frame) against c,
// returning the closest front-facing face hit, if any. A face is
// front-facing when its normal faces into the ray (n.d < 0). The
// intersection parameter is t = (p-o).n / (d.n) using any vertex p of the
// face; the hit is accepted only if it lies on the inside of every edge of
// the face, tested via the sign of (normal x edge).(point - edgeStart).
func Raycast(origin, direction math64.Vector3, c *Convex) (RaycastHit, bool) {
	bestT := math64.Infinity
	var best RaycastHit
	found := false

	for _, f := range c.Faces {
		dn := direction.Dot(&f.Normal)
		if dn >= 0 {
			continue
		}
		p := f.Vertices[0]
		num := math64.NewVec3().SubVectors(&p, &origin).Dot(&f.Normal)
		t := num / dn
		if t < 0 || t >= bestT {
			continue
		}

		hit := math64.NewVec3().Copy(&direction).MultiplyScalar(t).Add(&origin)

		inside := true
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			vStart := f.Vertices[i]
			vEnd := f.Vertices[(i+1)%n]
			edge := math64.NewVec3().SubVectors(&vEnd, &vStart)
			edgeNormal := math64.NewVec3().CrossVectors(&f.Normal, edge)
			toHit := math64.NewVec3().SubVectors(hit, &vStart)
			if edgeNormal.Dot(toHit) <= 0 {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}

		bestT = t
		best = RaycastHit{Distance: t, Point: *hit, Normal: f.Normal}
		found = true
	}

	return best, found
}

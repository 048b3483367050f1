// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Quaternion represents a rigid body orientation: a unit quaternion with
// X, Y, Z and W components. |q| is expected to be ~1 at rest and is
// re-normalized after every integration step.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewQuaternion creates and returns a pointer to a new quaternion from the
// specified components.
func NewQuaternion(x, y, z, w float64) *Quaternion {
	return &Quaternion{X: x, Y: y, Z: z, W: w}
}

// Identity returns the identity quaternion (0, 0, 0, 1).
func Identity() *Quaternion {
	return &Quaternion{W: 1}
}

// SetIdentity sets this quaternion to the identity quaternion.
// Returns pointer to this updated quaternion.
func (q *Quaternion) SetIdentity() *Quaternion {
	q.X, q.Y, q.Z, q.W = 0, 0, 0, 1
	return q
}

// Set sets this quaternion's components.
// Returns pointer to this updated quaternion.
func (q *Quaternion) Set(x, y, z, w float64) *Quaternion {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Copy copies other into this quaternion.
// Returns pointer to this updated quaternion.
func (q *Quaternion) Copy(other *Quaternion) *Quaternion {
	*q = *other
	return q
}

// SetFromAxisAngle sets this quaternion to the rotation of angle radians
// around axis (which must be a unit vector):
// (sin(angle/2)*axis, cos(angle/2)).
// Returns pointer to this updated quaternion.
func (q *Quaternion) SetFromAxisAngle(axis *Vector3, angle float64) *Quaternion {
	half := angle / 2
	s := Sin(half)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(half)
	return q
}

// SetFromRotationMatrix sets this quaternion from the 3x3 rotation matrix m
// using the standard trace-based decomposition (four branches chosen by
// whichever diagonal term is largest, for numerical stability).
// Returns pointer to this updated quaternion.
func (q *Quaternion) SetFromRotationMatrix(m *Matrix3) *Quaternion {
	m11, m12, m13 := m[0], m[3], m[6]
	m21, m22, m23 := m[1], m[4], m[7]
	m31, m32, m33 := m[2], m[5], m[8]
	trace := m11 + m22 + m33

	var s float64
	switch {
	case trace > 0:
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
	return q
}

// Conjugate sets this quaternion to its conjugate (negates X, Y, Z).
// Returns pointer to this updated quaternion.
func (q *Quaternion) Conjugate() *Quaternion {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

// Dot returns the dot product of this quaternion with other.
func (q *Quaternion) Dot(other *Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSq returns the square of the length (magnitude) of this quaternion.
func (q *Quaternion) LengthSq() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length (magnitude) of this quaternion.
func (q *Quaternion) Length() float64 {
	return Sqrt(q.LengthSq())
}

// Normalize normalizes this quaternion in place, dividing every component
// by its magnitude. If the magnitude is zero, resets to identity.
// Returns pointer to this updated quaternion.
func (q *Quaternion) Normalize() *Quaternion {
	l := q.Length()
	if l == 0 {
		return q.SetIdentity()
	}
	inv := 1 / l
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
	return q
}

// Multiply sets this quaternion to the Hamilton product of itself and
// other: q = q*other.
// Returns pointer to this updated quaternion.
func (q *Quaternion) Multiply(other *Quaternion) *Quaternion {
	return q.MultiplyQuaternions(q, other)
}

// MultiplyQuaternions sets this quaternion to the Hamilton product a*b.
// Returns pointer to this updated quaternion.
func (q *Quaternion) MultiplyQuaternions(a, b *Quaternion) *Quaternion {
	ax, ay, az, aw := a.X, a.Y, a.Z, a.W
	bx, by, bz, bw := b.X, b.Y, b.Z, b.W

	q.X = ax*bw + aw*bx + ay*bz - az*by
	q.Y = ay*bw + aw*by + az*bx - ax*bz
	q.Z = az*bw + aw*bz + ax*by - ay*bx
	q.W = aw*bw - ax*bx - ay*by - az*bz
	return q
}

// RotateVector rotates v by this quaternion and returns the rotated vector
// (the "ijkw expansion" of q*v*conjugate(q)). This quaternion and v are
// unchanged.
func (q *Quaternion) RotateVector(v *Vector3) *Vector3 {
	out := v.Clone()
	return out.ApplyQuaternion(q)
}

// DerotateVector rotates v by the inverse (conjugate, since q is unit) of
// this quaternion. This quaternion and v are unchanged.
func (q *Quaternion) DerotateVector(v *Vector3) *Vector3 {
	inv := q.Clone().Conjugate()
	return v.Clone().ApplyQuaternion(inv)
}

// IntegrateAngularVelocity advances this quaternion by one Euler step of
// the rotation ODE dq/dt = 1/2 * omega * q, for a timestep dt, then
// normalizes. This is the semi-implicit orientation update used by the
// integrator: q' = normalize(q + dt/2 * (omega-as-quaternion) * q).
// Returns pointer to this updated quaternion.
func (q *Quaternion) IntegrateAngularVelocity(omega *Vector3, dt float64) *Quaternion {
	halfDt := dt * 0.5
	ox, oy, oz := omega.X, omega.Y, omega.Z
	bx, by, bz, bw := q.X, q.Y, q.Z, q.W

	q.X += halfDt * (ox*bw + oy*bz - oz*by)
	q.Y += halfDt * (oy*bw + oz*bx - ox*bz)
	q.Z += halfDt * (oz*bw + ox*by - oy*bx)
	q.W += halfDt * (-ox*bx - oy*by - oz*bz)

	return q.Normalize()
}

// ToMatrix3 computes and returns the 3x3 rotation matrix equivalent to
// this (unit) quaternion.
func (q *Quaternion) ToMatrix3() *Matrix3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m := NewMatrix3()
	m.Set(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy),
	)
	return m
}

// Equals returns whether this quaternion is exactly equal to other.
func (q *Quaternion) Equals(other *Quaternion) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

// Clone returns a pointer to a new Quaternion with the same components.
func (q *Quaternion) Clone() *Quaternion {
	return NewQuaternion(q.X, q.Y, q.Z, q.W)
}

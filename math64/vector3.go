// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// NewVector3 creates and returns a pointer to a new Vector3 with the
// specified components.
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

// NewVec3 creates and returns a pointer to a new zero-valued Vector3.
func NewVec3() *Vector3 {
	return &Vector3{}
}

// Set sets this vector's components.
// Returns pointer to this updated vector.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// SetX sets this vector's X component.
func (v *Vector3) SetX(x float64) *Vector3 { v.X = x; return v }

// SetY sets this vector's Y component.
func (v *Vector3) SetY(y float64) *Vector3 { v.Y = y; return v }

// SetZ sets this vector's Z component.
func (v *Vector3) SetZ(z float64) *Vector3 { v.Z = z; return v }

// Zero sets this vector to (0, 0, 0).
// Returns pointer to this updated vector.
func (v *Vector3) Zero() *Vector3 {
	v.X, v.Y, v.Z = 0, 0, 0
	return v
}

// Copy copies other into this vector.
// Returns pointer to this updated vector.
func (v *Vector3) Copy(other *Vector3) *Vector3 {
	*v = *other
	return v
}

// Add adds other to this vector.
// Returns pointer to this updated vector.
func (v *Vector3) Add(other *Vector3) *Vector3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// AddScalar adds the scalar s to every component of this vector.
func (v *Vector3) AddScalar(s float64) *Vector3 {
	v.X += s
	v.Y += s
	v.Z += s
	return v
}

// AddVectors sets this vector to a + b.
// Returns pointer to this updated vector.
func (v *Vector3) AddVectors(a, b *Vector3) *Vector3 {
	v.X = a.X + b.X
	v.Y = a.Y + b.Y
	v.Z = a.Z + b.Z
	return v
}

// AddScaledVector sets this vector to v + other*s.
// Returns pointer to this updated vector.
func (v *Vector3) AddScaledVector(other *Vector3, s float64) *Vector3 {
	v.X += other.X * s
	v.Y += other.Y * s
	v.Z += other.Z * s
	return v
}

// Sub subtracts other from this vector.
// Returns pointer to this updated vector.
func (v *Vector3) Sub(other *Vector3) *Vector3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// SubVectors sets this vector to a - b.
// Returns pointer to this updated vector.
func (v *Vector3) SubVectors(a, b *Vector3) *Vector3 {
	v.X = a.X - b.X
	v.Y = a.Y - b.Y
	v.Z = a.Z - b.Z
	return v
}

// Multiply multiplies this vector componentwise by other.
func (v *Vector3) Multiply(other *Vector3) *Vector3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// MultiplyScalar multiplies each component of this vector by the scalar s.
// Returns pointer to this updated vector.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Negate negates all components of this vector.
// Returns pointer to this updated vector.
func (v *Vector3) Negate() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// Dot returns the dot product of this vector with other.
func (v *Vector3) Dot(other *Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSq returns the square of the length of this vector.
func (v *Vector3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
func (v *Vector3) Length() float64 {
	return Sqrt(v.LengthSq())
}

// Normalize normalizes this vector in place, dividing by its length.
// Undefined for the zero vector: the caller must ensure the vector is
// non-zero before calling.
// Returns pointer to this updated vector.
func (v *Vector3) Normalize() *Vector3 {
	return v.MultiplyScalar(1 / v.Length())
}

// AlmostZero reports whether every component of this vector is within
// Epsilon of zero in absolute value.
func (v *Vector3) AlmostZero() bool {
	return Abs(v.X) <= Epsilon && Abs(v.Y) <= Epsilon && Abs(v.Z) <= Epsilon
}

// DistanceToSquared returns the square of the distance from this vector
// to other.
func (v *Vector3) DistanceToSquared(other *Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// DistanceTo returns the distance from this vector to other.
func (v *Vector3) DistanceTo(other *Vector3) float64 {
	return Sqrt(v.DistanceToSquared(other))
}

// Direction sets this vector to the normalized direction from a to b
// (i.e. normalize(b - a)).
// Returns pointer to this updated vector.
func (v *Vector3) Direction(a, b *Vector3) *Vector3 {
	v.SubVectors(b, a)
	return v.Normalize()
}

// Lerp sets this vector to the linear interpolation between itself and
// other using t, where t=0 returns this vector unchanged and t=1 returns
// other.
// Returns pointer to this updated vector.
func (v *Vector3) Lerp(other *Vector3, t float64) *Vector3 {
	v.X += (other.X - v.X) * t
	v.Y += (other.Y - v.Y) * t
	v.Z += (other.Z - v.Z) * t
	return v
}

// Cross sets this vector to the cross product of itself with other.
// Returns pointer to this updated vector.
func (v *Vector3) Cross(other *Vector3) *Vector3 {
	return v.CrossVectors(v, other)
}

// CrossVectors sets this vector to the cross product of a and b.
// Returns pointer to this updated vector.
func (v *Vector3) CrossVectors(a, b *Vector3) *Vector3 {
	ax, ay, az := a.X, a.Y, a.Z
	bx, by, bz := b.X, b.Y, b.Z
	v.X = ay*bz - az*by
	v.Y = az*bx - ax*bz
	v.Z = ax*by - ay*bx
	return v
}

// Min sets this vector's components to the minimum values when compared
// with other's components.
func (v *Vector3) Min(other *Vector3) *Vector3 {
	if other.X < v.X {
		v.X = other.X
	}
	if other.Y < v.Y {
		v.Y = other.Y
	}
	if other.Z < v.Z {
		v.Z = other.Z
	}
	return v
}

// Max sets this vector's components to the maximum values when compared
// with other's components.
func (v *Vector3) Max(other *Vector3) *Vector3 {
	if other.X > v.X {
		v.X = other.X
	}
	if other.Y > v.Y {
		v.Y = other.Y
	}
	if other.Z > v.Z {
		v.Z = other.Z
	}
	return v
}

// Clamp clamps this vector's components between the corresponding
// components of min and max.
func (v *Vector3) Clamp(min, max *Vector3) *Vector3 {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
	v.Z = Clamp(v.Z, min.Z, max.Z)
	return v
}

// Equals returns whether this vector is exactly equal to other.
func (v *Vector3) Equals(other *Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApplyMatrix3 applies the Matrix3 m to this vector.
// Returns pointer to this updated vector.
func (v *Vector3) ApplyMatrix3(m *Matrix3) *Vector3 {
	x, y, z := v.X, v.Y, v.Z
	v.X = m[0]*x + m[3]*y + m[6]*z
	v.Y = m[1]*x + m[4]*y + m[7]*z
	v.Z = m[2]*x + m[5]*y + m[8]*z
	return v
}

// ApplyQuaternion rotates this vector by the unit quaternion q.
// Returns pointer to this updated vector.
func (v *Vector3) ApplyQuaternion(q *Quaternion) *Vector3 {
	x, y, z := v.X, v.Y, v.Z
	qx, qy, qz, qw := q.X, q.Y, q.Z, q.W

	// i = q * v, treating v as the pure quaternion (x, y, z, 0)
	ix := qw*x + qy*z - qz*y
	iy := qw*y + qz*x - qx*z
	iz := qw*z + qx*y - qy*x
	iw := -qx*x - qy*y - qz*z

	// v' = i * conj(q)
	v.X = ix*qw + iw*-qx + iy*-qz - iz*-qy
	v.Y = iy*qw + iw*-qy + iz*-qx - ix*-qz
	v.Z = iz*qw + iw*-qz + ix*-qy - iy*-qx
	return v
}

// RandomTangents computes two unit vectors t1, t2 orthogonal to this
// (assumed unit) vector and to each other, such that {v, t1, t2} forms a
// right-handed orthonormal basis.
func (v *Vector3) RandomTangents() (*Vector3, *Vector3) {
	t1 := NewVec3()
	t2 := NewVec3()
	if Abs(v.X) < 0.9 {
		t1.CrossVectors(v, NewVector3(1, 0, 0))
	} else {
		t1.CrossVectors(v, NewVector3(0, 1, 0))
	}
	t1.Normalize()
	t2.CrossVectors(v, t1)
	t2.Normalize()
	return t1, t2
}

// Clone returns a pointer to a new Vector3 with the same components.
func (v *Vector3) Clone() *Vector3 {
	return NewVector3(v.X, v.Y, v.Z)
}

// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

// Matrix3 is a 3x3 matrix organized internally as a column-major array,
// matching the convention of math32.Matrix3.
type Matrix3 [9]float64

// NewMatrix3 creates and returns a pointer to a new Matrix3 initialized
// as the identity matrix.
func NewMatrix3() *Matrix3 {
	var m Matrix3
	m.Identity()
	return &m
}

// NewDiagonalMatrix3 creates and returns a pointer to a new diagonal
// Matrix3 with x, y, z along the diagonal.
func NewDiagonalMatrix3(x, y, z float64) *Matrix3 {
	m := NewMatrix3()
	m.Set(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
	return m
}

// Set sets all elements of the matrix row by row, starting at row1
// column1, row1 column2, row1 column3 and so forth.
// Returns pointer to this updated matrix.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) *Matrix3 {
	m[0], m[3], m[6] = n11, n12, n13
	m[1], m[4], m[7] = n21, n22, n23
	m[2], m[5], m[8] = n31, n32, n33
	return m
}

// Identity sets this matrix to the identity matrix.
// Returns pointer to this updated matrix.
func (m *Matrix3) Identity() *Matrix3 {
	return m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Copy copies src into this matrix.
// Returns pointer to this updated matrix.
func (m *Matrix3) Copy(src *Matrix3) *Matrix3 {
	*m = *src
	return m
}

// Diagonal returns the three diagonal elements of this matrix.
func (m *Matrix3) Diagonal() (float64, float64, float64) {
	return m[0], m[4], m[8]
}

// IsIsotropic returns whether the three diagonal entries of this matrix
// are equal and the matrix carries no off-diagonal terms: used to detect
// when a body's inverse local inertia is isotropic, in which case
// rotating the world inverse inertia tensor is a no-op and can be skipped.
func (m *Matrix3) IsIsotropic() bool {
	return m[0] == m[4] && m[4] == m[8] &&
		m[1] == 0 && m[2] == 0 && m[3] == 0 &&
		m[5] == 0 && m[6] == 0 && m[7] == 0
}

// Add sets this matrix to the sum of itself and other.
// Returns pointer to this updated matrix.
func (m *Matrix3) Add(other *Matrix3) *Matrix3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// MultiplyScalar multiplies every component of this matrix by s.
// Returns pointer to this updated matrix.
func (m *Matrix3) MultiplyScalar(s float64) *Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Multiply sets this matrix to the matrix product a*b.
// Returns pointer to this updated matrix.
func (m *Matrix3) Multiply(a, b *Matrix3) *Matrix3 {
	var r Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[k*3+row] * b[col*3+k]
			}
			r[col*3+row] = sum
		}
	}
	*m = r
	return m
}

// Transpose transposes this matrix in place.
// Returns pointer to this updated matrix.
func (m *Matrix3) Transpose() *Matrix3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float64 {
	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// Inverse computes and returns the inverse of this matrix via cofactor
// expansion. If the determinant is zero the matrix cannot be inverted and
// the zero matrix is returned; callers must be aware that this is a
// possible result, not an error.
func (m *Matrix3) Inverse() *Matrix3 {
	var r Matrix3
	r[0] = m[4]*m[8] - m[5]*m[7]
	r[1] = m[2]*m[7] - m[1]*m[8]
	r[2] = m[1]*m[5] - m[2]*m[4]
	r[3] = m[5]*m[6] - m[3]*m[8]
	r[4] = m[0]*m[8] - m[2]*m[6]
	r[5] = m[2]*m[3] - m[0]*m[5]
	r[6] = m[3]*m[7] - m[4]*m[6]
	r[7] = m[1]*m[6] - m[0]*m[7]
	r[8] = m[0]*m[4] - m[1]*m[3]

	det := m[0]*r[0] + m[1]*r[3] + m[2]*r[6]
	if det == 0 {
		return &Matrix3{}
	}
	r.MultiplyScalar(1 / det)
	return &r
}

// ApplyToVector3 multiplies v by this matrix and returns v.
func (m *Matrix3) ApplyToVector3(v *Vector3) *Vector3 {
	return v.ApplyMatrix3(m)
}

// PointInertia returns the moment-of-inertia tensor (about the origin) of
// a point mass m located at position p: the familiar
// m*(|p|^2*I - p*p^T) parallel-axis contribution.
func PointInertia(mass float64, p *Vector3) *Matrix3 {
	r2 := p.LengthSq()
	m := NewMatrix3()
	m.Set(
		mass*(r2-p.X*p.X), mass*(-p.X*p.Y), mass*(-p.X*p.Z),
		mass*(-p.X*p.Y), mass*(r2-p.Y*p.Y), mass*(-p.Y*p.Z),
		mass*(-p.X*p.Z), mass*(-p.Y*p.Z), mass*(r2-p.Z*p.Z),
	)
	return m
}

// Clone returns a pointer to a copy of this matrix.
func (m *Matrix3) Clone() *Matrix3 {
	c := *m
	return &c
}

// SPDX-License-Identifier: MIT
// Package attitude: Matrix3x3 is the fixed-size 3×3 rotation matrix (DCM)
// of the kernel, stored as a flat row-major [9]float64. All rotations
// constructed here are passive (reference-frame) transformations:
// orthonormal, determinant +1, right-handed convention.

package attitude

import (
	"fmt"
	"math"

	"github.com/katalvlaran/attmath/tensor"
)

// Matrix3x3 is a 3×3 matrix of float64 values in row-major order.
// The zero value is the zero matrix and is ready to use. Every Matrix3x3
// exclusively owns its nine values; copies are value copies.
type Matrix3x3 struct {
	m [9]float64
}

// NewMatrix3x3 creates a zero-filled 3×3 matrix.
func NewMatrix3x3() *Matrix3x3 {
	return &Matrix3x3{}
}

// NewMatrixFromQuat creates the DCM equivalent to the unit quaternion q:
// a reference-frame transformation, not a vector rotation.
func NewMatrixFromQuat(q *Quaternion) *Matrix3x3 {
	m := &Matrix3x3{}
	m.SetQuat(q)
	return m
}

// Get returns the element at the axis-indexed (row, col).
func (m *Matrix3x3) Get(row, col Basis3D) float64 {
	return m.m[row.Offset()*3+col.Offset()]
}

// Set assigns the element at the axis-indexed (row, col).
func (m *Matrix3x3) Set(row, col Basis3D, value float64) {
	m.m[row.Offset()*3+col.Offset()] = value
}

// Zero resets every element to 0.
func (m *Matrix3x3) Zero() { m.m = [9]float64{} }

// Identity sets the matrix to the identity rotation.
func (m *Matrix3x3) Identity() {
	m.m = [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// CopyFrom copies the elements of src into the receiver.
func (m *Matrix3x3) CopyFrom(src *Matrix3x3) { m.m = src.m }

// Clone returns an independent copy of the matrix.
func (m *Matrix3x3) Clone() *Matrix3x3 { return &Matrix3x3{m: m.m} }

// RotX sets the receiver to the reference-frame transformation for a
// rotation about the X-axis by alpha radians.
func (m *Matrix3x3) RotX(alpha float64) {
	ca := math.Cos(alpha)
	sa := math.Sin(alpha)

	m.m = [9]float64{
		1, 0, 0,
		0, ca, sa,
		0, -sa, ca,
	}
}

// RotY sets the receiver to the reference-frame transformation for a
// rotation about the Y-axis by alpha radians.
func (m *Matrix3x3) RotY(alpha float64) {
	ca := math.Cos(alpha)
	sa := math.Sin(alpha)

	m.m = [9]float64{
		ca, 0, -sa,
		0, 1, 0,
		sa, 0, ca,
	}
}

// RotZ sets the receiver to the reference-frame transformation for a
// rotation about the Z-axis by alpha radians.
func (m *Matrix3x3) RotZ(alpha float64) {
	ca := math.Cos(alpha)
	sa := math.Sin(alpha)

	m.m = [9]float64{
		ca, sa, 0,
		-sa, ca, 0,
		0, 0, 1,
	}
}

// SetRot dispatches to the elementary rotation about the named axis.
func (m *Matrix3x3) SetRot(axis Basis3D, alpha float64) {
	switch axis {
	case X:
		m.RotX(alpha)
	case Y:
		m.RotY(alpha)
	case Z:
		m.RotZ(alpha)
	}
}

// SetQuat sets the receiver to the DCM equivalent to the unit quaternion
// q — the same passive-transformation coefficient table Transform uses.
func (m *Matrix3x3) SetQuat(q *Quaternion) {
	m.m[0], m.m[1], m.m[2],
		m.m[3], m.m[4], m.m[5],
		m.m[6], m.m[7], m.m[8] = q.dcmCoeffs()
}

// Mult sets the receiver to the product a·b by direct 3×3 expansion.
// Composing r = r2·r1 means "apply r1 first, then r2" under the passive
// convention. The product is built in a temporary, so the receiver may
// alias either operand.
func (m *Matrix3x3) Mult(a, b *Matrix3x3) {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = a.m[i*3]*b.m[j] + a.m[i*3+1]*b.m[3+j] + a.m[i*3+2]*b.m[6+j]
		}
	}
	m.m = out
}

// Compose returns a new matrix equal to m·b.
func (m *Matrix3x3) Compose(b *Matrix3x3) *Matrix3x3 {
	out := &Matrix3x3{}
	out.Mult(m, b)
	return out
}

// Apply returns a new vector equal to m·v.
func (m *Matrix3x3) Apply(v *Vector3) *Vector3 {
	out := &Vector3{}
	out.MatVec(m, v)
	return out
}

// Transpose replaces the receiver with its transpose, in place.
// For an orthonormal rotation this is the inverse, and converts between
// the passive and active readings of the same nine coefficients.
func (m *Matrix3x3) Transpose() {
	m.m[1], m.m[3] = m.m[3], m.m[1]
	m.m[2], m.m[6] = m.m[6], m.m[2]
	m.m[5], m.m[7] = m.m[7], m.m[5]
}

// Det returns the determinant. A proper rotation has Det() == +1 to
// machine precision.
func (m *Matrix3x3) Det() float64 {
	return m.m[0]*(m.m[4]*m.m[8]-m.m[5]*m.m[7]) -
		m.m[1]*(m.m[3]*m.m[8]-m.m[5]*m.m[6]) +
		m.m[2]*(m.m[3]*m.m[7]-m.m[4]*m.m[6])
}

// Norm returns the Frobenius norm of the matrix.
func (m *Matrix3x3) Norm() float64 {
	var sum float64
	for _, v := range m.m {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// ToDense exports the matrix as a fresh 3×3 tensor.Dense, so callers can
// run it through the general linear-algebra path.
func (m *Matrix3x3) ToDense() *tensor.Dense {
	d, _ := tensor.NewDense(3, 3) // 3x3 is always a valid shape
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = d.Set(i, j, m.m[i*3+j])
		}
	}
	return d
}

// FromDense copies a 3×3 tensor.Dense into the receiver.
// Any other shape is rejected with ErrDimensionMismatch.
func (m *Matrix3x3) FromDense(d *tensor.Dense) error {
	if d.Rows() != 3 || d.Cols() != 3 {
		return fmt.Errorf("Matrix3x3.FromDense: %dx%d: %w",
			d.Rows(), d.Cols(), ErrDimensionMismatch)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.m[i*3+j], _ = d.At(i, j)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (m *Matrix3x3) String() string {
	return fmt.Sprintf("[%g, %g, %g]\n[%g, %g, %g]\n[%g, %g, %g]\n",
		m.m[0], m.m[1], m.m[2],
		m.m[3], m.m[4], m.m[5],
		m.m[6], m.m[7], m.m[8])
}

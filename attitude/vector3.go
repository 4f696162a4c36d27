// SPDX-License-Identifier: MIT
// Package attitude: Vector3 is the fixed-size 3×1 value type of the
// kernel. It shares arithmetic formulas with tensor.Dense but none of the
// general machinery: a flat [3]float64, no interface dispatch, no bounds
// errors — Basis3D arguments make invalid indices unrepresentable.

package attitude

import (
	"fmt"
	"math"

	"github.com/katalvlaran/attmath/tensor"
)

// Vector3 is a three-element column vector. The zero value is the zero
// vector and is ready to use. Every Vector3 exclusively owns its three
// values; copies are value copies.
type Vector3 struct {
	v [3]float64
}

// NewVector3 creates a vector with the given components.
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{v: [3]float64{x, y, z}}
}

// Get returns the component on the given axis.
func (v *Vector3) Get(axis Basis3D) float64 { return v.v[axis.Offset()] }

// Set assigns the component on the given axis.
func (v *Vector3) Set(axis Basis3D, value float64) { v.v[axis.Offset()] = value }

// Zero resets all components to 0.
func (v *Vector3) Zero() { v.v = [3]float64{} }

// CopyFrom copies the components of src into the receiver.
func (v *Vector3) CopyFrom(src *Vector3) { v.v = src.v }

// Clone returns an independent copy of the vector.
func (v *Vector3) Clone() *Vector3 { return &Vector3{v: v.v} }

// Plus adds other to the receiver componentwise, in place.
func (v *Vector3) Plus(other *Vector3) {
	v.v[0] += other.v[0]
	v.v[1] += other.v[1]
	v.v[2] += other.v[2]
}

// Minus subtracts other from the receiver componentwise, in place.
func (v *Vector3) Minus(other *Vector3) {
	v.v[0] -= other.v[0]
	v.v[1] -= other.v[1]
	v.v[2] -= other.v[2]
}

// Scale multiplies every component by k, in place.
func (v *Vector3) Scale(k float64) {
	v.v[0] *= k
	v.v[1] *= k
	v.v[2] *= k
}

// Dot returns the scalar product of the receiver and other.
func (v *Vector3) Dot(other *Vector3) float64 {
	return v.v[0]*other.v[0] + v.v[1]*other.v[1] + v.v[2]*other.v[2]
}

// SetCross sets the receiver to the cross product a×b.
// Operands are read into locals first, so the receiver may alias either.
func (v *Vector3) SetCross(a, b *Vector3) {
	ax, ay, az := a.v[0], a.v[1], a.v[2]
	bx, by, bz := b.v[0], b.v[1], b.v[2]
	v.v[0] = ay*bz - az*by
	v.v[1] = az*bx - ax*bz
	v.v[2] = ax*by - ay*bx
}

// Cross returns a new vector equal to v×other.
func (v *Vector3) Cross(other *Vector3) *Vector3 {
	out := &Vector3{}
	out.SetCross(v, other)
	return out
}

// Norm returns the Euclidean length of the vector.
func (v *Vector3) Norm() float64 {
	return math.Sqrt(v.v[0]*v.v[0] + v.v[1]*v.v[1] + v.v[2]*v.v[2])
}

// Unit normalizes the receiver to unit length, in place.
// A zero vector is left unchanged — there is no direction to preserve.
func (v *Vector3) Unit() {
	n := v.Norm()
	if n == 0 {
		return
	}
	v.Scale(1 / n)
}

// MatVec sets the receiver to the product m·u using the direct 3×3
// expansion rather than the general triple loop. The expansion performs
// the same multiply-adds in the same order per row, so the result matches
// the tensor path to machine precision (covered by tests).
// Components of u are read into locals first, so u may alias the receiver.
func (v *Vector3) MatVec(m *Matrix3x3, u *Vector3) {
	x, y, z := u.v[0], u.v[1], u.v[2]
	v.v[0] = x*m.m[0] + y*m.m[1] + z*m.m[2]
	v.v[1] = x*m.m[3] + y*m.m[4] + z*m.m[5]
	v.v[2] = x*m.m[6] + y*m.m[7] + z*m.m[8]
}

// Transform sets the receiver to the result of applying q as a passive
// reference-frame transformation to u: q*·u·q, i.e. the derived DCM
// applied directly. The components change; the physical vector does not.
// u may alias the receiver.
func (v *Vector3) Transform(q *Quaternion, u *Vector3) {
	m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22 := q.dcmCoeffs()

	x, y, z := u.v[0], u.v[1], u.v[2]
	v.v[0] = m00*x + m01*y + m02*z
	v.v[1] = m10*x + m11*y + m12*z
	v.v[2] = m20*x + m21*y + m22*z
}

// Rotate sets the receiver to the result of applying q as an active
// rotation to u: q·u·q*, i.e. the transpose of the same nine derived
// coefficients Transform uses. The physical vector moves; the frame is
// unchanged. u may alias the receiver.
func (v *Vector3) Rotate(q *Quaternion, u *Vector3) {
	m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22 := q.dcmCoeffs()

	x, y, z := u.v[0], u.v[1], u.v[2]
	v.v[0] = m00*x + m10*y + m20*z
	v.v[1] = m01*x + m11*y + m21*z
	v.v[2] = m02*x + m12*y + m22*z
}

// ToDense exports the vector as a fresh 3×1 tensor.Dense.
func (v *Vector3) ToDense() *tensor.Dense {
	d, _ := tensor.NewDense(3, 1) // 3x1 is always a valid shape
	for i := 0; i < 3; i++ {
		_ = d.Set(i, 0, v.v[i])
	}
	return d
}

// FromDense copies a 3×1 tensor.Dense into the receiver.
// Any other shape is rejected with ErrDimensionMismatch.
func (v *Vector3) FromDense(d *tensor.Dense) error {
	if d.Rows() != 3 || d.Cols() != 1 {
		return fmt.Errorf("Vector3.FromDense: %dx%d: %w",
			d.Rows(), d.Cols(), ErrDimensionMismatch)
	}
	for i := 0; i < 3; i++ {
		v.v[i], _ = d.At(i, 0)
	}
	return nil
}

// String implements fmt.Stringer.
func (v *Vector3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.v[0], v.v[1], v.v[2])
}

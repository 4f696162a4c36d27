// SPDX-License-Identifier: MIT
// Package attitude: unit Quaternion for reference frame transformations
// and vector rotations, including the numerically delicate DCM→quaternion
// extraction.
//
// See "Quaternions and Rotation Sequences" by Jack B. Kuipers for the
// algebra, and "Quaternion Computation from a Geometric Point of View"
// (Shuster, Natanson) for the extraction method family.

package attitude

import "math"

// Numeric policy. These are deliberate, documented constants — tuning
// them changes reference numerical behavior, so treat alternates as an
// open question, not a cleanup.
const (
	// Kappa is the DCM→quaternion pivot selection factor. Each candidate
	// trace combination is proportional to 4·q², so requiring it to
	// exceed 0.25 guarantees the first solved-for component is at least
	// 1/4 in magnitude, bounding the error amplification of the
	// divisions that derive the remaining three. A value of 1.0 would
	// require the pivot component to reach 1/2 instead.
	Kappa = 0.25

	// NormSkipTol is the squared-norm deviation below which Normalize
	// does nothing: the quaternion is already unit to machine precision
	// and scaling would only add floating-point work.
	NormSkipTol = 1e-26

	// NormPadeTol is the deviation below which Normalize uses the
	// first-order Padé approximant 2/(1+n²) of 1/√n² — accurate to
	// machine epsilon in this regime and cheaper than a square root.
	// Criteria and method as described by David Hammen (stackoverflow,
	// Oct 17 '12).
	NormPadeTol = 2.107342e-08

	// DefaultEpsilon is the tolerance used by structural checks and
	// tests throughout the kernel.
	DefaultEpsilon = 1e-9
)

// Quaternion is a unit quaternion (q0, qi, qj, qk): scalar part q0,
// vector part (qi, qj, qk). Use NewQuaternion for the identity rotation;
// the zero value is NOT a valid rotation until one of the Set methods
// runs. Magnitude is held at 1 by an explicit Normalize step after every
// mutating operation that can perturb it.
type Quaternion struct {
	q0, qi, qj, qk float64
}

// NewQuaternion creates the identity rotation (1, 0, 0, 0).
func NewQuaternion() *Quaternion {
	return &Quaternion{q0: 1}
}

// Identity resets the quaternion to the zero-rotation (1, 0, 0, 0),
// equivalent to an identity DCM.
func (q *Quaternion) Identity() {
	q.q0, q.qi, q.qj, q.qk = 1, 0, 0, 0
}

// Get returns the requested component.
func (q *Quaternion) Get(c Component) float64 {
	switch c {
	case Q0:
		return q.q0
	case QI:
		return q.qi
	case QJ:
		return q.qj
	case QK:
		return q.qk
	default:
		return 0
	}
}

// CopyFrom copies the components of src, assumed unit, into the receiver.
func (q *Quaternion) CopyFrom(src *Quaternion) {
	q.q0, q.qi, q.qj, q.qk = src.q0, src.qi, src.qj, src.qk
}

// Clone returns an independent copy of the quaternion.
func (q *Quaternion) Clone() *Quaternion {
	return &Quaternion{q0: q.q0, qi: q.qi, qj: q.qj, qk: q.qk}
}

// SetAxisAngle sets the quaternion from a UNIT pointing vector and an
// angle of rotation in radians: q0 = cos(α/2), vector part = axis·sin(α/2).
func (q *Quaternion) SetAxisAngle(alpha float64, axis *Vector3) {
	half := alpha / 2
	s := math.Sin(half)
	q.q0 = math.Cos(half)
	q.qi = axis.Get(X) * s
	q.qj = axis.Get(Y) * s
	q.qk = axis.Get(Z) * s
	q.Normalize()
}

// SetBasisAngle sets the quaternion from a Cartesian basis axis and an
// angle of rotation in radians.
func (q *Quaternion) SetBasisAngle(alpha float64, axis Basis3D) {
	q.SetAxisAngle(alpha, Unit(axis))
}

// SetDCM sets this quaternion from the input reference-frame
// transformation matrix.
//
// Naive extraction formulas divide by a quantity that can approach zero
// depending on the rotation. Instead of searching for the largest
// quaternion element (extra computations), this method takes the first of
// four algebraically equivalent pivots whose trace combination exceeds
// Kappa, which bounds the magnitude of the divisor. The four candidates
// are proportional to 4q0², 4qi², 4qj², 4qk² in turn; the remaining
// components fall out of off-diagonal sums and differences divided by
// four times the pivot.
//
// If no candidate clears Kappa (possible only for non-finite input — for
// finite matrices the four candidates always sum to exactly 4), or the
// extracted quaternion is nowhere near unit magnitude (diagonal and
// off-diagonal entries inconsistent with an orthonormal rotation, e.g.
// the all-zero matrix), ErrNotRotation is returned and the receiver is
// left unchanged. Malformed input is never silently defaulted.
func (q *Quaternion) SetDCM(dcm *Matrix3x3) error {
	m00, m01, m02 := dcm.m[0], dcm.m[1], dcm.m[2]
	m10, m11, m12 := dcm.m[3], dcm.m[4], dcm.m[5]
	m20, m21, m22 := dcm.m[6], dcm.m[7], dcm.m[8]

	var w, x, y, z, tmp, d4 float64

	// epsilon < Kappa < 1, where epsilon is large enough to not cause
	// numerical issues. If Kappa were set to 1, the '>' would become '>='.
	switch {
	case 1+m00+m11+m22 > Kappa: // pivot on q0
		tmp = math.Sqrt(1 + m00 + m11 + m22)
		d4 = 0.5 / tmp
		w = 0.5 * tmp
		x = (m12 - m21) * d4
		y = (m20 - m02) * d4
		z = (m01 - m10) * d4
	case 1+m00-m11-m22 > Kappa: // pivot on qi
		tmp = math.Sqrt(1 + m00 - m11 - m22)
		d4 = 0.5 / tmp
		x = 0.5 * tmp
		w = (m12 - m21) * d4
		y = (m01 + m10) * d4
		z = (m02 + m20) * d4
	case 1-m00+m11-m22 > Kappa: // pivot on qj
		tmp = math.Sqrt(1 - m00 + m11 - m22)
		d4 = 0.5 / tmp
		y = 0.5 * tmp
		w = (m20 - m02) * d4
		x = (m01 + m10) * d4
		z = (m12 + m21) * d4
	case 1-m00-m11+m22 > Kappa: // pivot on qk
		tmp = math.Sqrt(1 - m00 - m11 + m22)
		d4 = 0.5 / tmp
		z = 0.5 * tmp
		w = (m01 - m10) * d4
		x = (m02 + m20) * d4
		y = (m12 + m21) * d4
	default:
		return ErrNotRotation
	}

	// For a genuine rotation the raw extraction lands within rounding
	// error of unit magnitude; a large deviation means the off-diagonals
	// contradict the chosen pivot. Kappa doubles as the rejection bound.
	n2 := w*w + x*x + y*y + z*z
	if math.Abs(1-n2) > Kappa || math.IsNaN(n2) {
		return ErrNotRotation
	}

	q.q0, q.qi, q.qj, q.qk = w, x, y, z

	// Absorb residual floating-point drift from the extraction.
	q.Normalize()

	return nil
}

// Mult sets the receiver to the Hamilton product p·q2.
//
// Composition order matters and reads LEFT TO RIGHT under the
// frame-transform convention: Transform with p·q2 applies p's frame
// change first, then q2's, so Transform(p·q2, v) ==
// Transform(q2, Transform(p, v)) and the matrix identity is
// M(p·q2) = M(q2)·M(p). The order is pinned by the composition tests
// against the matrix path, not by derivation. Operands are read into
// locals first, so the receiver may alias either.
func (q *Quaternion) Mult(p, q2 *Quaternion) {
	p0, pi, pj, pk := p.q0, p.qi, p.qj, p.qk
	r0, ri, rj, rk := q2.q0, q2.qi, q2.qj, q2.qk

	q.q0 = p0*r0 - pi*ri - pj*rj - pk*rk
	q.qi = p0*ri + pi*r0 + pj*rk - pk*rj
	q.qj = p0*rj - pi*rk + pj*r0 + pk*ri
	q.qk = p0*rk + pi*rj - pj*ri + pk*r0
	q.Normalize()
}

// Compose returns a new quaternion equal to q·other.
func (q *Quaternion) Compose(other *Quaternion) *Quaternion {
	out := &Quaternion{}
	out.Mult(q, other)
	return out
}

// Conj sets the receiver to its complex conjugate: the vector part is
// negated, the scalar part unchanged. For a unit quaternion this is the
// inverse rotation.
func (q *Quaternion) Conj() {
	q.qi = -q.qi
	q.qj = -q.qj
	q.qk = -q.qk
}

// ConjOf sets the receiver to the complex conjugate of src.
func (q *Quaternion) ConjOf(src *Quaternion) {
	q.CopyFrom(src)
	q.Conj()
}

// Normalize divides each component by the quaternion's magnitude, with a
// three-tier strategy keyed on the deviation δ = |1−n²|:
//
//  1. δ < NormSkipTol — already unit to machine precision, skip.
//  2. δ < NormPadeTol — scale by the Padé approximant 2/(1+n²).
//  3. otherwise      — full scale by 1/√n².
func (q *Quaternion) Normalize() {
	n2 := q.q0*q.q0 + q.qi*q.qi + q.qj*q.qj + q.qk*q.qk
	delta := math.Abs(1 - n2)

	switch {
	case delta < NormSkipTol:
		// No need to normalize.
	case delta < NormPadeTol:
		inv := 2 / (1 + n2)
		q.q0 *= inv
		q.qi *= inv
		q.qj *= inv
		q.qk *= inv
	default:
		inv := 1 / math.Sqrt(n2)
		q.q0 *= inv
		q.qi *= inv
		q.qj *= inv
		q.qk *= inv
	}
}

// Angle returns the rotation angle about the implicit axis, in radians:
// 2·acos(q0).
func (q *Quaternion) Angle() float64 {
	return 2 * math.Acos(q.q0)
}

// Standardize multiplies the quaternion by -1 if the scalar component is
// negative. q and -q represent the same rotation; this picks the
// canonical positive-scalar representative so comparisons are stable.
func (q *Quaternion) Standardize() {
	if q.q0 < 0 {
		q.q0 = -q.q0
		q.qi = -q.qi
		q.qj = -q.qj
		q.qk = -q.qk
	}
}

// Transformed returns the result of applying q as a reference-frame
// transformation to v: q*·v·q (quaternion multiplication read left to
// right). The input vector is not modified.
func (q *Quaternion) Transformed(v *Vector3) *Vector3 {
	out := v.Clone()
	out.Transform(q, out)
	return out
}

// Rotated returns the result of rotating v by q: q·v·q*. The input
// vector is not modified.
func (q *Quaternion) Rotated(v *Vector3) *Vector3 {
	out := v.Clone()
	out.Rotate(q, out)
	return out
}

// dcmCoeffs expands the quaternion into the nine coefficients of its
// equivalent passive (frame) transformation matrix, row-major. Transform
// and SetQuat apply these directly; Rotate applies their transpose.
func (q *Quaternion) dcmCoeffs() (m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) {
	q0q0 := q.q0 * q.q0
	q0qi := q.q0 * q.qi
	q0qj := q.q0 * q.qj
	q0qk := q.q0 * q.qk
	qiqj := q.qi * q.qj
	qiqk := q.qi * q.qk
	qjqk := q.qj * q.qk

	m00 = 2*(q0q0+q.qi*q.qi) - 1
	m01 = 2 * (qiqj + q0qk)
	m02 = 2 * (qiqk - q0qj)

	m10 = 2 * (qiqj - q0qk)
	m11 = 2*(q0q0+q.qj*q.qj) - 1
	m12 = 2 * (qjqk + q0qi)

	m20 = 2 * (qiqk + q0qj)
	m21 = 2 * (qjqk - q0qi)
	m22 = 2*(q0q0+q.qk*q.qk) - 1

	return
}

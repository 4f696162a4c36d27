// SPDX-License-Identifier: MIT
// Package tensor: in-place linear-algebra kernels on Dense.
//
// Purpose:
//   - Declare the canonical in-place operations of the NumericTensor
//     contract: Zero, Identity, Transpose, Plus, Minus, Scale, Mult, Norm.
//   - All kernels validate first, then walk the flat backing slice with
//     deterministic loop orders. Sentinels are returned plain or wrapped
//     with an operation tag via opErrorf.
//
// Notes:
//   - Mult writes a·b into the receiver; the receiver MUST NOT alias
//     either operand. This is a documented caller contract kept unchecked
//     to preserve the tight-loop performance of the kernel.

package tensor

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opIdentity  = "Identity"
	opTranspose = "Transpose"
	opPlus      = "Plus"
	opMinus     = "Minus"
	opMult      = "Mult"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match with errors.Is.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErr builds a dimension-mismatch sentinel carrying both shapes.
func shapeErr(tag string, mr, mc, or, oc int) error {
	return opErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", mr, mc, or, oc, ErrDimensionMismatch))
}

// Zero sets every element of the receiver to 0.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	for i := range m.data { // single flat walk 0..n-1
		m.data[i] = 0
	}
}

// Identity sets the receiver to the identity matrix: zero everywhere,
// ones on the diagonal. The receiver must be square.
// Stage 1 (Validate): r == c, else ErrNonSquare.
// Stage 2 (Execute): Zero, then write the diagonal.
// Complexity: O(r*c).
func (m *Dense) Identity() error {
	// Validate squareness
	if m.r != m.c {
		return opErrorf(opIdentity, ErrNonSquare)
	}

	m.Zero()
	for i := 0; i < m.r; i++ { // diagonal walk
		m.data[i*m.c+i] = 1
	}

	return nil
}

// Transpose replaces the receiver with its transpose, in place.
// The receiver must be square; rectangular transposition would change the
// shape, which the fixed-dimension contract forbids.
// Complexity: O(r*c).
func (m *Dense) Transpose() error {
	// Validate squareness
	if m.r != m.c {
		return opErrorf(opTranspose, ErrNonSquare)
	}

	// Swap strictly-lower with strictly-upper triangle
	var tmp float64
	for i := 0; i < m.r; i++ {
		for j := 0; j < i; j++ {
			tmp = m.data[j*m.c+i]
			m.data[j*m.c+i] = m.data[i*m.c+j]
			m.data[i*m.c+j] = tmp
		}
	}

	return nil
}

// Plus adds other to the receiver elementwise, in place.
// Shapes must match exactly.
// Complexity: O(r*c).
func (m *Dense) Plus(other *Dense) error {
	// Validate matching shape
	if other.r != m.r || other.c != m.c {
		return shapeErr(opPlus, m.r, m.c, other.r, other.c)
	}
	for i := range m.data { // deterministic flat walk
		m.data[i] += other.data[i]
	}

	return nil
}

// Minus subtracts other from the receiver elementwise, in place.
// Shapes must match exactly.
// Complexity: O(r*c).
func (m *Dense) Minus(other *Dense) error {
	// Validate matching shape
	if other.r != m.r || other.c != m.c {
		return shapeErr(opMinus, m.r, m.c, other.r, other.c)
	}
	for i := range m.data { // deterministic flat walk
		m.data[i] -= other.data[i]
	}

	return nil
}

// Scale multiplies every element of the receiver by k, in place.
// Complexity: O(r*c).
func (m *Dense) Scale(k float64) {
	for i := range m.data {
		m.data[i] *= k
	}
}

// Mult sets the receiver to the product a·b.
// Stage 1 (Validate): receiver is a.r×b.c and a.c == b.r, else
// ErrDimensionMismatch.
// Stage 2 (Execute): zero the receiver, then accumulate with the classic
// triple loop in i→k→j order (row-major stride friendly).
//
// The receiver must not alias a or b; if it does, the result is undefined.
// Callers own that discipline — the kernel stays branch-free.
// Complexity: O(a.r * a.c * b.c).
func (m *Dense) Mult(a, b *Dense) error {
	// Validate conformability
	if a.r != m.r || b.c != m.c || a.c != b.r {
		return opErrorf(opMult, fmt.Errorf("%dx%d ?= %dx%d * %dx%d: %w",
			m.r, m.c, a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	m.Zero()
	var ik float64
	for i := 0; i < m.r; i++ {
		for k := 0; k < a.c; k++ {
			ik = a.data[i*a.c+k]
			if ik == 0 { // skip zero rows of the accumulation
				continue
			}
			for j := 0; j < m.c; j++ {
				m.data[i*m.c+j] += ik * b.data[k*b.c+j]
			}
		}
	}

	return nil
}

// Norm returns the Frobenius norm: the square root of the sum of squares
// of all elements. It is the standard "how different are two results"
// metric across the attitude tests (take Minus, then Norm).
// Complexity: O(r*c).
func (m *Dense) Norm() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

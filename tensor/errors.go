// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tensor package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on caller-triggered error
// conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("Op: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows <= 0 or cols <= 0, or a ragged/empty row set).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Ndx/SetNdx) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Plus/Minus on different shapes, or Mult where the
	// receiver and operand shapes disagree.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Identity,
	// Transpose) but the receiver wasn't.
	ErrNonSquare = errors.New("tensor: matrix is not square")
)

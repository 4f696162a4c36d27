// SPDX-License-Identifier: MIT
// Package attitude: sentinel error set. All operations return these
// sentinels (plain or wrapped with method context); tests match them via
// errors.Is. Nothing in this package panics on caller input.

package attitude

import "errors"

var (
	// ErrNotRotation is returned by Quaternion.SetDCM when the input is
	// inconsistent with an orthonormal rotation matrix: no extraction
	// pivot clears Kappa, or the raw extracted quaternion lands far from
	// unit magnitude. The input is malformed; there is nothing to retry.
	ErrNotRotation = errors.New("attitude: matrix is not a valid rotation")

	// ErrDimensionMismatch indicates that a tensor.Dense bridged into a
	// fixed-size attitude type does not have the required 3×1 or 3×3 shape.
	ErrDimensionMismatch = errors.New("attitude: dimension mismatch")
)

// Package attmath is a compact rotation & attitude-representation math
// kernel — dense matrices, 3D vectors, direction-cosine matrices and unit
// quaternions for rigid-body work.
//
// 🚀 What is attmath?
//
//	A small, deterministic library that brings together:
//		• tensor — general dense real matrices with 0-based and 1-based
//		  accessors, in-place arithmetic and a Frobenius norm
//		• attitude — fixed-size Vector3 / Matrix3x3 value types on the
//		  hot path, elementary and composed reference-frame rotations
//		• attitude.Quaternion — axis-angle construction, Hamilton
//		  products, and the pivot-selected DCM⇄quaternion conversion
//		  with a three-tier normalization strategy
//		• a 12-coefficient affine export for host transform systems
//
// ✨ Why choose attmath?
//
//   - Convention-pinned – passive (frame) vs active (rotation) application
//     is fixed by round-trip tests, not by comment folklore
//   - Numerically careful – branch selection in DCM→quaternion extraction
//     bounds error amplification; normalization skips or approximates
//     when a full square root buys nothing
//   - Pure Go – no cgo, value semantics, no shared globals
//
// Under the hood, everything is organized under two subpackages:
//
//	tensor/   — general dense matrix type & in-place linear algebra
//	attitude/ — Basis3D axes, Vector3, Matrix3x3, Quaternion, affine export
//
// Quick sketch:
//
//	    R = Rx·(Ry·Rz)          q = Quaternion(R)
//	    v' = R·v                v' = Transform(q, v)
//
//	both paths agree to machine precision; Rotate applies the transpose.
//
// Dive into attitude/doc.go for the conversion algorithm notes and the
// transform-vs-rotate duality, and tensor/doc.go for the matrix contract.
//
//	go get github.com/katalvlaran/attmath
package attmath

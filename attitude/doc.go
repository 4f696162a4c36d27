// Package attitude implements rigid-body attitude representations:
// fixed-size 3D vectors, 3×3 reference-frame rotation matrices (DCMs) and
// unit quaternions, with lossless conversion between the two rotation
// forms.
//
// 🚀 What is attitude?
//
//	The hot-path companion to the tensor package:
//	  • Basis3D — closed {X, Y, Z} axis set used both as semantic axis
//	    identity and as storage offset
//	  • Vector3 — 3×1 value type with componentwise ops, direct 3×3
//	    matrix-vector product, and quaternion Transform / Rotate
//	  • Matrix3x3 — elementary rotations RotX/RotY/RotZ, composition,
//	    and the quaternion→DCM coefficient table
//	  • Quaternion — axis-angle construction, Hamilton products, the
//	    pivot-selected DCM→quaternion extraction, and a three-tier
//	    normalization strategy
//	  • Affine — the 12-coefficient row-major export read by host
//	    transform systems
//
// ✨ Conventions (pinned by round-trip tests, see quaternion_test.go):
//
//   - Every rotation in this package is a PASSIVE (reference-frame)
//     transformation: RotZ(α) carries components of a fixed physical
//     vector into a frame rotated by α about Z.
//   - Transform applies the quaternion's derived DCM directly (frame
//     change, same physical vector). Rotate applies the transpose of the
//     same nine coefficients (vector moves, frame fixed).
//     Rotate(q, Transform(q, v)) == v.
//   - Matrix composition m = a·b applies b first. Quaternion
//     composition reads LEFT TO RIGHT under the transform convention:
//     Transform(p·q, v) applies p's frame change first, so
//     M(p·q) = M(q)·M(p). Same physics, transposed bookkeeping — the
//     tests pin both.
//   - Quaternions are kept unit-magnitude by an explicit normalization
//     step after every perturbing mutation, never by assumption.
//
// ⚙️ DCM → quaternion extraction:
//
//	Naive formulas divide by a quantity that can approach zero. The
//	extraction instead tries four algebraically equivalent pivots —
//	1+m00+m11+m22 (∝4q0²), then the three diagonal variants — and uses
//	the first whose value exceeds Kappa (0.25), guaranteeing the pivot
//	component is at least 1/4 in magnitude and bounding rounding-error
//	amplification. Input whose entries are inconsistent with an
//	orthonormal rotation (no pivot clears Kappa, or the raw extraction
//	lands far from unit magnitude) is rejected with ErrNotRotation.
//
// Performance:
//
//   - All types are small fixed-size values; no interface dispatch, no
//     allocation inside mutating operations.
//
// See "Quaternions and Rotation Sequences" (Kuipers) for background and
// example_test.go for the canonical composition walkthrough.
package attitude

// Package tensor provides a general dense matrix of float64 values with
// in-place arithmetic, built for the attitude kernel but usable on its own.
//
// 🚀 What is tensor?
//
//	A single concrete type, Dense, storing rows*cols elements in a flat
//	row-major slice, with:
//	  • 0-based accessors At/Set (C, Go convention) and a parallel
//	    1-based pair Ndx/SetNdx (FORTRAN, Matlab convention) — both
//	    resolve to the identical cell
//	  • in-place Zero, Identity, Transpose, Plus, Minus, Scale
//	  • Mult(a, b) writing the product a·b into the receiver
//	  • Frobenius Norm, the difference metric used throughout the
//	    attitude tests
//
// ✨ Contract highlights:
//
//   - Every Dense exclusively owns its backing slice; Clone and all
//     copy-constructors are deep. Shapes are fixed at construction.
//   - Public accessors are always bounds-checked and return
//     ErrOutOfRange; internal kernels walk the flat slice directly.
//   - Mult requires the receiver not to alias either operand. This is a
//     documented caller contract, not a runtime check.
//   - All failures are sentinel errors matched via errors.Is; nothing in
//     this package panics on caller input.
//
// Performance:
//
//   - All operations are O(r*c) or O(r*c*k) with deterministic loop
//     orders; Mult uses the i→k→j order for row-major stride friendliness.
//
// See example_test.go for usage and the attitude package for the 3×3/3×1
// specializations that share these formulas without the general machinery.
package tensor

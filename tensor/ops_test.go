// Package tensor_test contains unit tests for the in-place linear-algebra
// kernels on Dense: Zero, Identity, Transpose, Plus, Minus, Scale, Mult, Norm.
package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/attmath/tensor"
	"github.com/stretchr/testify/require"
)

// numTol is the tolerance for floating-point comparisons in these tests.
const numTol = 1e-12

// mustDense allocates an r×c Dense or aborts the test.
func mustDense(t *testing.T, r, c int) *tensor.Dense {
	t.Helper()
	m, err := tensor.NewDense(r, c)
	require.NoError(t, err) // allocation must succeed for valid dims
	return m
}

// mustFromRows builds a Dense from rows or aborts the test.
func mustFromRows(t *testing.T, rows [][]float64) *tensor.Dense {
	t.Helper()
	m, err := tensor.FromRows(rows)
	require.NoError(t, err) // construction must succeed for rectangular input
	return m
}

// TestIdentity verifies Identity on a square matrix and the non-square rejection.
func TestIdentity(t *testing.T) {
	m := mustFromRows(t, [][]float64{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}}) // pre-fill with garbage
	require.NoError(t, m.Identity())                                  // identity must succeed on 3x3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal is one
			} else {
				require.Zero(t, v) // off-diagonal is zero
			}
		}
	}

	rect := mustDense(t, 2, 3)                         // rectangular receiver
	require.ErrorIs(t, rect.Identity(), tensor.ErrNonSquare) // expect ErrNonSquare
}

// TestTranspose verifies in-place transposition and the non-square rejection.
func TestTranspose(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.Transpose()) // transpose must succeed on 3x3

	want := [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}} // expected transposed layout
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v) // each cell swapped across the diagonal
		}
	}

	// transposing twice restores the original
	require.NoError(t, m.Transpose())
	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	rect := mustDense(t, 2, 3)                                // rectangular receiver
	require.ErrorIs(t, rect.Transpose(), tensor.ErrNonSquare) // expect ErrNonSquare
}

// TestPlusMinus verifies in-place elementwise addition and subtraction.
func TestPlusMinus(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	require.NoError(t, a.Plus(b)) // a += b
	v, err := a.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 44.0, v) // 4 + 40

	require.NoError(t, a.Minus(b)) // a -= b, back to original
	v, err = a.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v) // restored

	// shape mismatch is rejected on both operations
	c := mustDense(t, 2, 3)
	require.ErrorIs(t, a.Plus(c), tensor.ErrDimensionMismatch)  // expect mismatch on Plus
	require.ErrorIs(t, a.Minus(c), tensor.ErrDimensionMismatch) // expect mismatch on Minus
}

// TestScale verifies in-place scalar multiplication.
func TestScale(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {3, 0}})
	m.Scale(-2) // scale every element

	want := [][]float64{{-2, 4}, {-6, 0}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}
}

// TestMult verifies the triple-loop product against a hand-computed result.
func TestMult(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})       // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})  // 3x2
	c := mustDense(t, 2, 2)                                       // 2x2 destination

	require.NoError(t, c.Mult(a, b)) // c = a*b

	want := [][]float64{{58, 64}, {139, 154}} // hand-computed product
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := c.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, numTol)
		}
	}
}

// TestMultIdentity verifies that multiplying by identity is a no-op.
func TestMultIdentity(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	id := mustDense(t, 2, 2)
	require.NoError(t, id.Identity())

	c := mustDense(t, 2, 2)
	require.NoError(t, c.Mult(a, id)) // c = a*I

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			av, _ := a.At(i, j)
			cv, _ := c.At(i, j)
			require.Equal(t, av, cv) // product equals a exactly
		}
	}
}

// TestMultDimensionMismatch ensures conformability is enforced for all three shapes.
func TestMultDimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 3, 2)

	badRows := mustDense(t, 3, 2) // receiver rows != a rows
	require.ErrorIs(t, badRows.Mult(a, b), tensor.ErrDimensionMismatch)

	badInner := mustDense(t, 2, 2) // a.cols != b.rows
	wrong := mustDense(t, 2, 2)
	require.ErrorIs(t, badInner.Mult(a, wrong), tensor.ErrDimensionMismatch)
}

// TestNorm verifies the Frobenius norm on a known matrix.
func TestNorm(t *testing.T) {
	m := mustFromRows(t, [][]float64{{3, 4}}) // classic 3-4-5 values
	require.InDelta(t, 5.0, m.Norm(), numTol) // sqrt(9+16) = 5

	z := mustDense(t, 4, 4)   // zero matrix
	require.Zero(t, z.Norm()) // norm of zero is zero

	id := mustDense(t, 3, 3)
	require.NoError(t, id.Identity())
	require.InDelta(t, math.Sqrt(3), id.Norm(), numTol) // sqrt of trace for identity
}

// TestNormAsDifferenceMetric mirrors the kernel's standard usage:
// subtract two results, then take the Frobenius norm of the difference.
func TestNormAsDifferenceMetric(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Clone()

	diff := a.Clone()
	require.NoError(t, diff.Minus(b))
	require.Zero(t, diff.Norm()) // identical inputs differ by zero

	_ = b.Set(0, 0, 1.0003)
	diff = a.Clone()
	require.NoError(t, diff.Minus(b))
	require.InDelta(t, 0.0003, diff.Norm(), numTol) // single-cell perturbation
}

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/attmath/tensor"
)

// ExampleDense_Mult demonstrates the in-place product contract:
// the receiver is sized for the result and must not alias the operands.
func ExampleDense_Mult() {
	a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := tensor.FromRows([][]float64{{0, 1}, {1, 0}})

	c, _ := tensor.NewDense(2, 2)
	_ = c.Mult(a, b) // c = a*b, column swap of a

	fmt.Print(c)
	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleDense_Ndx shows the 1-based accessor view resolving to the same
// storage as the 0-based one.
func ExampleDense_Ndx() {
	m, _ := tensor.NewDense(2, 2)
	_ = m.SetNdx(1, 1, 42) // 1-based write to the top-left cell

	v, _ := m.At(0, 0) // 0-based read of the same cell
	fmt.Println(v)
	// Output:
	// 42
}

// ExampleDense_Norm uses the Frobenius norm as a difference metric between
// two computation paths.
func ExampleDense_Norm() {
	a, _ := tensor.FromRows([][]float64{{3, 0}, {0, 4}})
	b := a.Clone()

	diff := a.Clone()
	_ = diff.Minus(b)

	fmt.Println(a.Norm(), diff.Norm())
	// Output:
	// 5 0
}

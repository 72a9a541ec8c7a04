package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/reflecta/matrix"
)

// ExampleDense_Trace builds the 3×3 permutation matrix of the cycle (1 2 3)
// and computes its trace — the character value of the permutation.
func ExampleDense_Trace() {
	m, _ := matrix.NewDense(3, 3)
	_ = m.SetInt64(1, 0, 1)
	_ = m.SetInt64(2, 1, 1)
	_ = m.SetInt64(0, 2, 1)

	tr, _ := m.Trace()
	fmt.Println(tr.RatString())
	// Output:
	// 0
}

package qpoly_test

import (
	"fmt"

	"github.com/katalvlaran/reflecta/qpoly"
)

// ExampleQInt shows the q-analogue of 4 and its value at q = 1.
func ExampleQInt() {
	p, _ := qpoly.QInt(4)
	fmt.Println(p)
	// Output:
	// q^3 + q^2 + q + 1
}

// ExamplePoly_Div divides a product of q-integers exactly.
func ExamplePoly_Div() {
	a, _ := qpoly.QInt(6)
	b, _ := qpoly.QInt(2)
	c, _ := qpoly.QInt(3)
	q, _ := a.Div(b.Mul(c))
	fmt.Println(q)
	// Output:
	// q^2 - q + 1
}

// Package qpoly provides q-integer polynomials over exact integers.
//
// Overview:
//
//   - A q-integer is the polynomial [n]_q = 1 + q + q² + ... + q^(n-1), the
//     q-analogue of the integer n (it evaluates to n at q = 1).
//   - Catalan-type counting formulas for reflection groups have q-analogues
//     obtained by replacing every integer factor with its q-integer; the
//     resulting quotients of products are again polynomials with integer
//     coefficients, so this package implements exact polynomial arithmetic
//     with big.Int coefficients and exact division.
//
// Key features:
//
//   - Poly values are immutable after construction; all accessors copy.
//   - Mul computes exact products; Div performs long division and fails with
//     ErrInexactDivision unless the quotient is exact with integer
//     coefficients — the combinatorial identities behind the Catalan
//     formulas guarantee exactness for every valid input.
//   - String renders in the conventional descending form, e.g.
//     "q^6 + q^4 + q^3 + q^2 + 1".
//
// Error handling (sentinel errors):
//
//   - ErrBadQInt:          QInt called with n < 1.
//   - ErrDivisionByZero:   Div called with a zero divisor.
//   - ErrInexactDivision:  the division left a remainder or a fractional
//     coefficient.
//
// Complexity:
//
//   - Mul: O(deg a · deg b) big.Int multiply-adds.
//   - Div: O(deg a · deg b) big.Int operations.
package qpoly

// Package catalan: the rational/Fuss/classical Catalan numbers and their
// q-analogues.
package catalan

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/reflecta/qpoly"
)

// numeratorFactor returns the i-th numerator factor p + (p·(d−1) mod h).
func (w *Group) numeratorFactor(p, d int) int {
	return p + (p*(d-1))%w.h
}

// RationalNumber returns the p-th rational Catalan number of the group:
//
//	∏ᵢ (p + (p·(dᵢ−1) mod h)) / ∏ᵢ dᵢ
//
// p must be positive (ErrBadParameter) and coprime to the Coxeter number
// (ErrNotCoprime, naming both values). The quotient is an exact integer by
// the underlying combinatorial identity. Results are memoized per p.
func (w *Group) RationalNumber(p int) (*big.Int, error) {
	if err := w.checkCoprime(p); err != nil {
		return nil, err
	}
	v := w.memo.Do(fmt.Sprintf("rational:%d", p), func() interface{} {
		num := big.NewInt(1)
		for _, d := range w.degrees {
			num.Mul(num, big.NewInt(int64(w.numeratorFactor(p, d))))
		}
		return num.Quo(num, w.Cardinality())
	})
	return new(big.Int).Set(v.(*big.Int)), nil
}

// RationalPolynomial returns the q-analogue of RationalNumber(p): the same
// product with every factor n replaced by the q-integer [n]_q. The exact
// polynomial quotient always exists on this trait.
func (w *Group) RationalPolynomial(p int) (*qpoly.Poly, error) {
	if err := w.checkCoprime(p); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("rationalpoly:%d", p)
	if v, ok := w.memo.Load(key); ok {
		return v.(*qpoly.Poly).Clone(), nil
	}
	num := qpoly.One()
	den := qpoly.One()
	for _, d := range w.degrees {
		nf, err := qpoly.QInt(w.numeratorFactor(p, d))
		if err != nil {
			return nil, err
		}
		df, err := qpoly.QInt(d)
		if err != nil {
			return nil, err
		}
		num = num.Mul(nf)
		den = den.Mul(df)
	}
	quot, err := num.Div(den)
	if err != nil {
		return nil, err
	}
	cached := w.memo.Store(key, quot).(*qpoly.Poly)
	return cached.Clone(), nil
}

// fussParameter maps the Fuss parameter m to the rational parameter
// p = m·h + 1, or m·h − 1 for the positive variant. Both are coprime to h.
func (w *Group) fussParameter(m int, positive bool) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: m = %d", ErrBadFussParameter, m)
	}
	if positive {
		return m*w.h - 1, nil
	}
	return m*w.h + 1, nil
}

// FussNumber returns the m-th Fuss–Catalan number ∏ᵢ (dᵢ + m·h) / ∏ᵢ dᵢ,
// or the positive variant when positive is true.
// For the symmetric group S_n it reduces to binom((m+1)n, n)/(mn+1).
func (w *Group) FussNumber(m int, positive bool) (*big.Int, error) {
	p, err := w.fussParameter(m, positive)
	if err != nil {
		return nil, err
	}
	return w.RationalNumber(p)
}

// FussPolynomial returns the q-analogue of FussNumber.
func (w *Group) FussPolynomial(m int, positive bool) (*qpoly.Poly, error) {
	p, err := w.fussParameter(m, positive)
	if err != nil {
		return nil, err
	}
	return w.RationalPolynomial(p)
}

// Number returns the Catalan number of the group, ∏ᵢ (dᵢ + h) / ∏ᵢ dᵢ —
// the Fuss–Catalan number at m = 1. For S_n this is the classical Catalan
// number binom(2n, n)/(n+1).
func (w *Group) Number(positive bool) (*big.Int, error) {
	return w.FussNumber(1, positive)
}

// Polynomial returns the q-analogue of Number.
func (w *Group) Polynomial(positive bool) (*qpoly.Poly, error) {
	return w.FussPolynomial(1, positive)
}

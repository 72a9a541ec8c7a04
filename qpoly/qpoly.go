// Package qpoly: Poly type, constructors, and exact arithmetic.
// Coefficients are stored ascending (coeffs[i] is the coefficient of q^i)
// and kept normalized: no trailing zero coefficients, zero polynomial has an
// empty coefficient slice.
package qpoly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors for q-polynomial arithmetic.
var (
	// ErrBadQInt indicates QInt was called with n < 1.
	ErrBadQInt = errors.New("qpoly: q-integer requires n >= 1")

	// ErrDivisionByZero indicates Div was called with a zero divisor.
	ErrDivisionByZero = errors.New("qpoly: division by zero polynomial")

	// ErrInexactDivision indicates the division left a remainder or required
	// a fractional coefficient.
	ErrInexactDivision = errors.New("qpoly: division is not exact")
)

// Poly is a polynomial in q with exact integer coefficients.
// The zero value is the zero polynomial.
type Poly struct {
	coeffs []*big.Int // ascending; normalized (no trailing zeros)
}

// normalize trims trailing zero coefficients in place and returns p.
func (p *Poly) normalize() *Poly {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].Sign() == 0 {
		n--
	}
	p.coeffs = p.coeffs[:n]
	return p
}

// Zero returns the zero polynomial.
func Zero() *Poly { return &Poly{} }

// One returns the constant polynomial 1.
func One() *Poly {
	return &Poly{coeffs: []*big.Int{big.NewInt(1)}}
}

// Constant returns the constant polynomial c.
func Constant(c *big.Int) *Poly {
	p := &Poly{coeffs: []*big.Int{new(big.Int).Set(c)}}
	return p.normalize()
}

// QInt returns the q-integer [n]_q = 1 + q + q^2 + ... + q^(n-1).
// Returns ErrBadQInt when n < 1.
func QInt(n int) (*Poly, error) {
	if n < 1 {
		return nil, ErrBadQInt
	}
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		coeffs[i] = big.NewInt(1)
	}
	return &Poly{coeffs: coeffs}, nil
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Coefficient returns a copy of the coefficient of q^i; zero outside range.
func (p *Poly) Coefficient(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	out := &Poly{coeffs: make([]*big.Int, len(p.coeffs))}
	for i, c := range p.coeffs {
		out.coeffs[i] = new(big.Int).Set(c)
	}
	return out
}

// Equal reports exact coefficient-wise equality.
func (p *Poly) Equal(b *Poly) bool {
	if len(p.coeffs) != len(b.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(b.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Mul returns the exact product p·b.
func (p *Poly) Mul(b *Poly) *Poly {
	if p.IsZero() || b.IsZero() {
		return Zero()
	}
	coeffs := make([]*big.Int, len(p.coeffs)+len(b.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	term := new(big.Int)
	for i, pc := range p.coeffs {
		if pc.Sign() == 0 {
			continue
		}
		for j, bc := range b.coeffs {
			term.Mul(pc, bc)
			coeffs[i+j].Add(coeffs[i+j], term)
		}
	}
	return (&Poly{coeffs: coeffs}).normalize()
}

// Eval returns the exact value of p at the integer q = x.
func (p *Poly) Eval(x *big.Int) *big.Int {
	// Horner evaluation, highest coefficient first.
	out := new(big.Int)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		out.Mul(out, x)
		out.Add(out, p.coeffs[i])
	}
	return out
}

// Div returns the exact quotient p / b.
// Long division, highest term first; every intermediate leading coefficient
// must divide evenly and the final remainder must vanish, otherwise the
// result is ErrInexactDivision. A zero divisor yields ErrDivisionByZero.
func (p *Poly) Div(b *Poly) (*Poly, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	if p.IsZero() {
		return Zero(), nil
	}
	if p.Degree() < b.Degree() {
		return nil, ErrInexactDivision
	}

	rem := p.Clone()
	lead := b.coeffs[len(b.coeffs)-1]
	qdeg := p.Degree() - b.Degree()
	quot := make([]*big.Int, qdeg+1)
	for i := range quot {
		quot[i] = new(big.Int)
	}

	factor := new(big.Int)
	mod := new(big.Int)
	term := new(big.Int)
	for d := rem.Degree(); d >= b.Degree(); d = rem.Degree() {
		factor.QuoRem(rem.coeffs[d], lead, mod)
		if mod.Sign() != 0 {
			return nil, ErrInexactDivision
		}
		shift := d - b.Degree()
		quot[shift].Set(factor)
		for j, bc := range b.coeffs {
			term.Mul(factor, bc)
			rem.coeffs[shift+j].Sub(rem.coeffs[shift+j], term)
		}
		rem.normalize()
		if rem.IsZero() {
			return (&Poly{coeffs: quot}).normalize(), nil
		}
	}
	return nil, ErrInexactDivision
}

// String renders p in descending order, e.g. "q^6 + q^4 + q^3 + q^2 + 1".
// Coefficient 1 is omitted before q powers; the zero polynomial prints "0".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	one := big.NewInt(1)
	negOne := big.NewInt(-1)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		if first {
			if c.Sign() < 0 {
				sb.WriteString("-")
			}
		} else {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}
		first = false
		abs := new(big.Int).Abs(c)
		switch {
		case i == 0:
			sb.WriteString(abs.String())
		case c.Cmp(one) == 0 || c.Cmp(negOne) == 0:
			// bare power, coefficient omitted
		default:
			sb.WriteString(abs.String())
			sb.WriteString("*")
		}
		if i > 0 {
			if i == 1 {
				sb.WriteString("q")
			} else {
				sb.WriteString(fmt.Sprintf("q^%d", i))
			}
		}
	}
	return sb.String()
}

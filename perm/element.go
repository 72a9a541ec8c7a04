// Package perm: the Perm element type and its capabilities.
package perm

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/reflecta/matrix"
)

// Perm is one colored permutation: e_i ↦ ζ^colors[i] · e_images[i].
// Values are immutable; every group operation allocates a fresh element.
type Perm struct {
	g      *Group
	images []int
	colors []int
}

// Key returns a canonical window-notation string, unique within the group,
// e.g. "1,0,2|0,1,0".
func (p *Perm) Key() string {
	var sb strings.Builder
	for i, v := range p.images {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('|')
	for i, c := range p.colors {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// String renders the element in window notation.
func (p *Perm) String() string { return "[" + p.Key() + "]" }

// Image returns π(i) for the underlying permutation.
func (p *Perm) Image(i int) int { return p.images[i] }

// Color returns the color applied at coordinate i.
func (p *Perm) Color(i int) int { return p.colors[i] }

// IsIdentity reports whether p is the neutral element.
func (p *Perm) IsIdentity() bool {
	for i, v := range p.images {
		if v != i || p.colors[i] != 0 {
			return false
		}
	}
	return true
}

// Order returns the multiplicative order of p.
func (p *Perm) Order() int {
	ord := 1
	x := p.g.Mul(p, p.g.Identity()).(*Perm)
	for !x.IsIdentity() {
		x = p.g.Mul(p, x).(*Perm)
		ord++
	}
	return ord
}

// ToMatrix returns the n×n matrix of p acting on the reflection
// representation: column i holds ζ^colors[i] at row images[i].
// Exact rational entries exist only for r ≤ 2 (ζ = 1 or ζ = -1); for r > 2
// the entries live in a cyclotomic field and ErrNoRationalForm is returned.
func (p *Perm) ToMatrix() (*matrix.Dense, error) {
	if p.g.r > 2 {
		return nil, ErrNoRationalForm
	}
	m, err := matrix.NewDense(p.g.n, p.g.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p.g.n; i++ {
		v := int64(1)
		if p.colors[i] == 1 {
			v = -1
		}
		if err = m.SetInt64(p.images[i], i, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

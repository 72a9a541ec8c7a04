// Package perm: the Group type, classified invariants, and group operations.
package perm

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/reflecta/refl"
)

// Sentinel errors for colored permutation groups.
var (
	// ErrBadColors indicates a color count r < 1.
	ErrBadColors = errors.New("perm: color count must be at least 1")

	// ErrBadSize indicates a size n < 1.
	ErrBadSize = errors.New("perm: size must be at least 1")

	// ErrNoRationalForm indicates the element's matrix entries are r-th roots
	// of unity with r > 2, which have no exact rational presentation.
	ErrNoRationalForm = errors.New("perm: matrix entries are not rational for more than 2 colors")
)

// Group is the colored permutation group G(r,1,n).
// Immutable after construction; all methods are safe for concurrent use.
type Group struct {
	r, n      int
	degrees   []int
	codegrees []int
}

// Colored constructs G(r,1,n): r-colored permutations of size n.
// Returns ErrBadColors when r < 1 and ErrBadSize when n < 1.
func Colored(r, n int) (*Group, error) {
	if r < 1 {
		return nil, ErrBadColors
	}
	if n < 1 {
		return nil, ErrBadSize
	}
	g := &Group{r: r, n: n}
	if r == 1 {
		// Symmetric group Sn: rank n-1.
		for d := 2; d <= n; d++ {
			g.degrees = append(g.degrees, d)
		}
		for c := n - 2; c >= 0; c-- {
			g.codegrees = append(g.codegrees, c)
		}
	} else {
		// Wreath product: rank n.
		for i := 1; i <= n; i++ {
			g.degrees = append(g.degrees, i*r)
		}
		for i := n - 1; i >= 0; i-- {
			g.codegrees = append(g.codegrees, i*r)
		}
	}
	return g, nil
}

// Colors returns r, the order of the color group.
func (g *Group) Colors() int { return g.r }

// Size returns n, the number of permuted coordinates.
func (g *Group) Size() int { return g.n }

// Degrees returns the invariant degrees in ascending order.
func (g *Group) Degrees() []int {
	out := make([]int, len(g.degrees))
	copy(out, g.degrees)
	return out
}

// Codegrees returns the codegrees in descending order.
func (g *Group) Codegrees() []int {
	out := make([]int, len(g.codegrees))
	copy(out, g.codegrees)
	return out
}

// NumberOfSimpleReflections returns the size of the distinguished generating
// set: the n-1 adjacent transpositions, plus the color rotation when r > 1.
func (g *Group) NumberOfSimpleReflections() int {
	if g.r == 1 {
		return g.n - 1
	}
	return g.n
}

// NumberOfIrreducibleComponents returns 1 for every non-trivial G(r,1,n)
// and 0 for the trivial group G(1,1,1).
func (g *Group) NumberOfIrreducibleComponents() int {
	if g.r == 1 && g.n == 1 {
		return 0
	}
	return 1
}

// Cardinality returns rⁿ·n! as an exact integer.
func (g *Group) Cardinality() *big.Int {
	card := new(big.Int).Exp(big.NewInt(int64(g.r)), big.NewInt(int64(g.n)), nil)
	fact := new(big.Int).MulRange(1, int64(g.n))
	return card.Mul(card, fact)
}

// Identity returns the neutral element.
func (g *Group) Identity() refl.Element {
	p := &Perm{g: g, images: make([]int, g.n), colors: make([]int, g.n)}
	for i := range p.images {
		p.images[i] = i
	}
	return p
}

// SimpleReflections returns the distinguished generators in a fixed order:
// the adjacent transpositions s1..s(n-1), then (for r > 1) the color
// rotation on the last coordinate. The in-order product of this list is the
// standard Coxeter element.
func (g *Group) SimpleReflections() []refl.Element {
	var out []refl.Element
	for i := 0; i+1 < g.n; i++ {
		s := g.Identity().(*Perm)
		s.images[i], s.images[i+1] = i+1, i
		out = append(out, s)
	}
	if g.r > 1 {
		t := g.Identity().(*Perm)
		t.colors[g.n-1] = 1
		out = append(out, t)
	}
	return out
}

// own asserts that e belongs to g. Mixing elements across groups is a
// programmer error, so the failure mode is a panic, not an error return.
func (g *Group) own(e refl.Element) *Perm {
	p, ok := e.(*Perm)
	if !ok || p.g.r != g.r || p.g.n != g.n {
		panic("perm: element does not belong to this group")
	}
	return p
}

// Mul returns the composition a·b (apply b first, then a).
func (g *Group) Mul(a, b refl.Element) refl.Element {
	pa, pb := g.own(a), g.own(b)
	out := &Perm{g: g, images: make([]int, g.n), colors: make([]int, g.n)}
	for i := 0; i < g.n; i++ {
		out.images[i] = pa.images[pb.images[i]]
		out.colors[i] = (pb.colors[i] + pa.colors[pb.images[i]]) % g.r
	}
	return out
}

// Inverse returns a⁻¹.
func (g *Group) Inverse(a refl.Element) refl.Element {
	p := g.own(a)
	out := &Perm{g: g, images: make([]int, g.n), colors: make([]int, g.n)}
	for i := 0; i < g.n; i++ {
		out.images[p.images[i]] = i
		out.colors[p.images[i]] = (g.r - p.colors[i]) % g.r
	}
	return out
}

// Elements enumerates the whole group in a deterministic order: all color
// vectors (odometer order) under all permutations (Heap's order).
// The slice has rⁿ·n! entries; intended for small groups.
func (g *Group) Elements() []refl.Element {
	var out []refl.Element

	perm := make([]int, g.n)
	for i := range perm {
		perm[i] = i
	}

	emit := func() {
		colors := make([]int, g.n)
		for {
			e := &Perm{g: g, images: make([]int, g.n), colors: make([]int, g.n)}
			copy(e.images, perm)
			copy(e.colors, colors)
			out = append(out, e)

			// Odometer step over color vectors.
			i := 0
			for ; i < g.n; i++ {
				colors[i]++
				if colors[i] < g.r {
					break
				}
				colors[i] = 0
			}
			if i == g.n {
				return
			}
		}
	}

	// Heap's algorithm over the permutation part.
	counters := make([]int, g.n)
	emit()
	for i := 0; i < g.n; {
		if counters[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
			}
			emit()
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}
	return out
}

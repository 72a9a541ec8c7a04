// Package coxeter: Coxeter element construction.
package coxeter

import "github.com/katalvlaran/reflecta/refl"

// Element returns the standard Coxeter element of g: the product of the
// simple reflections in their listed order.
// Returns ErrNilGroup or ErrNoGenerators on invalid input.
func Element(g Generated) (refl.Element, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	gens := g.SimpleReflections()
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	c := gens[0]
	for _, s := range gens[1:] {
		c = g.Mul(c, s)
	}
	return c, nil
}

// StandardElements returns the distinct products of the simple reflections
// over every ordering, in first-seen order. All of them are conjugate in a
// well-generated group; the count is at most rank! and usually far smaller.
//
// The enumeration is Heap's permutation algorithm over generator indices,
// so memory stays O(rank) beyond the result set.
func StandardElements(g Generated) ([]refl.Element, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	gens := g.SimpleReflections()
	n := len(gens)
	if n == 0 {
		return nil, ErrNoGenerators
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	seen := make(map[string]bool)
	var out []refl.Element

	record := func() {
		c := gens[idx[0]]
		for _, i := range idx[1:] {
			c = g.Mul(c, gens[i])
		}
		if k := c.Key(); !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}

	// Heap's algorithm, iterative form.
	counters := make([]int, n)
	record()
	for i := 0; i < n; {
		if counters[i] < i {
			if i%2 == 0 {
				idx[0], idx[i] = idx[i], idx[0]
			} else {
				idx[counters[i]], idx[i] = idx[i], idx[counters[i]]
			}
			record()
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}
	return out, nil
}

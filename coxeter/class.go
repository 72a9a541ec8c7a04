// Package coxeter: conjugacy-class enumeration as a breadth-first closure.
//
// The class of an element under the whole group equals its closure under
// conjugation by the generators alone, so the search frontier only ever
// multiplies by simple reflections and their inverses.
package coxeter

import "github.com/katalvlaran/reflecta/refl"

// classItem pairs an element with its position in the exploration queue.
type classWalker struct {
	g       Generated
	queue   []refl.Element
	visited map[string]bool
	order   []refl.Element
}

// ConjugacyClass returns every conjugate of rep in g, in breadth-first
// discovery order starting from rep itself. The order is deterministic for
// a fixed generator list.
// Returns ErrNilGroup or ErrNilElement on invalid input.
func ConjugacyClass(g Generated, rep refl.Element) ([]refl.Element, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if rep == nil {
		return nil, ErrNilElement
	}

	gens := g.SimpleReflections()
	// Conjugating by s and by s⁻¹ both stay inside the class; using both
	// keeps the closure correct when generators have order > 2.
	conj := make([]refl.Element, 0, 2*len(gens))
	for _, s := range gens {
		conj = append(conj, s)
		inv := g.Inverse(s)
		if inv.Key() != s.Key() {
			conj = append(conj, inv)
		}
	}

	w := &classWalker{
		g:       g,
		queue:   []refl.Element{rep},
		visited: map[string]bool{rep.Key(): true},
		order:   []refl.Element{rep},
	}
	for len(w.queue) > 0 {
		x := w.queue[0]
		w.queue = w.queue[1:]
		for _, s := range conj {
			w.enqueue(g.Mul(g.Mul(s, x), g.Inverse(s)))
		}
	}
	return w.order, nil
}

// enqueue records y if it has not been seen yet.
func (w *classWalker) enqueue(y refl.Element) {
	k := y.Key()
	if w.visited[k] {
		return
	}
	w.visited[k] = true
	w.queue = append(w.queue, y)
	w.order = append(w.order, y)
}

// Package coxeter: the WellGenerated trait wrapper.
package coxeter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reflecta/refl"
)

// WellGenerated wraps a Generated group asserted (and, when degree data is
// available, verified) to be well generated. It exposes the Coxeter element
// machinery and caches the conjugacy class of Coxeter elements per instance.
type WellGenerated struct {
	*refl.Finite
	g    Generated
	memo *refl.Memo
}

// NewWellGenerated wraps g as a well-generated group.
//
// When g exposes degrees, the defining equality #simple reflections == rank
// is checked and a mismatch yields ErrNotWellGenerated. A group without
// degree data is accepted on the caller's assertion alone.
// Returns ErrNilGroup or ErrNoGenerators on invalid input.
func NewWellGenerated(g Generated) (*WellGenerated, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if len(g.SimpleReflections()) == 0 {
		return nil, ErrNoGenerators
	}
	rank, err := refl.Rank(g)
	switch {
	case errors.Is(err, refl.ErrNoDegrees):
		// No degree data; trust the assertion.
	case err != nil:
		return nil, err
	case g.NumberOfSimpleReflections() != rank:
		return nil, fmt.Errorf("%w: %d simple reflections for rank %d",
			ErrNotWellGenerated, g.NumberOfSimpleReflections(), rank)
	}
	return &WellGenerated{
		Finite: refl.NewFinite(g),
		g:      g,
		memo:   refl.NewMemo(),
	}, nil
}

// Generated returns the wrapped group with its multiplication structure.
func (w *WellGenerated) Generated() Generated { return w.g }

// IsWellGenerated reports true: the trait was established at construction.
// This overrides the degree-counting check inherited from refl.Finite.
func (w *WellGenerated) IsWellGenerated() (bool, error) { return true, nil }

// CoxeterElement returns the standard Coxeter element: the product of the
// simple reflections in their listed order.
func (w *WellGenerated) CoxeterElement() refl.Element {
	// Generators were verified non-empty at construction.
	c, _ := Element(w.g)
	return c
}

// StandardCoxeterElements returns the distinct in-some-order products of
// the simple reflections.
func (w *WellGenerated) StandardCoxeterElements() []refl.Element {
	out, _ := StandardElements(w.g)
	return out
}

// CoxeterElements returns the conjugacy class containing the Coxeter
// element. The class is computed once per instance and the cached slice is
// copied out on every call.
//
// Beyond real reflection groups this is one of possibly several classes of
// Coxeter elements: the one containing CoxeterElement().
func (w *WellGenerated) CoxeterElements() []refl.Element {
	v := w.memo.Do("coxeter_elements", func() interface{} {
		class, _ := ConjugacyClass(w.g, w.CoxeterElement())
		return class
	})
	cached := v.([]refl.Element)
	out := make([]refl.Element, len(cached))
	copy(out, cached)
	return out
}

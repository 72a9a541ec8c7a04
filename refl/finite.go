// Package refl: the Finite and Irreducible trait wrappers.
//
// Traits are wrapper values the caller selects explicitly at construction.
// A wrapper never probes whether its assertion (irreducibility) actually
// holds; that is the caller's contract.
package refl

import "math/big"

// Finite wraps any Group and memoizes its derived invariants per instance.
// The zero value is not usable; construct with NewFinite.
type Finite struct {
	g    Group
	memo *Memo
}

// NewFinite wraps g. The wrapper shares g (groups are immutable values).
func NewFinite(g Group) *Finite {
	return &Finite{g: g, memo: NewMemo()}
}

// Unwrap returns the wrapped group.
func (f *Finite) Unwrap() Group { return f.g }

// NumberOfSimpleReflections delegates to the wrapped group, so a Finite is
// itself a Group and can be re-wrapped by further traits.
func (f *Finite) NumberOfSimpleReflections() int { return f.g.NumberOfSimpleReflections() }

// NumberOfIrreducibleComponents delegates to the wrapped group.
func (f *Finite) NumberOfIrreducibleComponents() int { return f.g.NumberOfIrreducibleComponents() }

// Degrees returns a copy of the wrapped group's degree sequence.
func (f *Finite) Degrees() ([]int, error) {
	deg, err := degreesOf(f.g)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(deg))
	copy(out, deg)
	return out, nil
}

// Codegrees returns a copy of the wrapped group's codegree sequence.
func (f *Finite) Codegrees() ([]int, error) {
	codeg, err := codegreesOf(f.g)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(codeg))
	copy(out, codeg)
	return out, nil
}

// Rank returns the rank of the wrapped group.
func (f *Finite) Rank() (int, error) { return Rank(f.g) }

// NumberOfReflections returns sum(degrees) - rank.
func (f *Finite) NumberOfReflections() (int, error) { return NumberOfReflections(f.g) }

// NumberOfReflectingHyperplanes returns sum(codegrees) + rank.
func (f *Finite) NumberOfReflectingHyperplanes() (int, error) {
	return NumberOfReflectingHyperplanes(f.g)
}

// Cardinality returns the order of the group as an exact integer.
// The product is computed once per instance; callers receive a fresh copy
// so the cached value can never be mutated from outside.
func (f *Finite) Cardinality() (*big.Int, error) {
	if v, ok := f.memo.Load("cardinality"); ok {
		return new(big.Int).Set(v.(*big.Int)), nil
	}
	card, err := Cardinality(f.g)
	if err != nil {
		return nil, err
	}
	cached := f.memo.Store("cardinality", card).(*big.Int)
	return new(big.Int).Set(cached), nil
}

// IsWellGenerated reports whether #simple reflections == rank.
func (f *Finite) IsWellGenerated() (bool, error) { return IsWellGenerated(f.g) }

// IsReal reports whether the group is a real reflection group.
func (f *Finite) IsReal() (bool, error) { return IsReal(f.g) }

// Irreducible is a Finite whose group the caller asserts to be irreducible.
// The assertion unlocks the Coxeter number; it is not verified at runtime.
type Irreducible struct {
	*Finite
}

// NewIrreducible wraps a group asserted irreducible.
func NewIrreducible(g Group) *Irreducible {
	return &Irreducible{Finite: NewFinite(g)}
}

// CoxeterNumber returns (reflections + hyperplanes) / rank.
// The dividend is divisible by the rank for every irreducible finite complex
// reflection group; this is an invariant of the classification and is not
// checked here. Returns ErrEmptyDegrees on a rank-zero group.
func (w *Irreducible) CoxeterNumber() (int, error) {
	rank, err := w.Rank()
	if err != nil {
		return 0, err
	}
	if rank == 0 {
		return 0, ErrEmptyDegrees
	}
	refs, err := w.NumberOfReflections()
	if err != nil {
		return 0, err
	}
	hyps, err := w.NumberOfReflectingHyperplanes()
	if err != nil {
		return 0, err
	}
	return (hyps + refs) / rank, nil
}

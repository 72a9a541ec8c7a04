// Package catalan: trait construction and degree-level formulas.
package catalan

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/reflecta/refl"
)

// Sentinel errors for the well-generated irreducible trait.
var (
	// ErrNilGroup indicates a nil group was passed to New.
	ErrNilGroup = errors.New("catalan: group is nil")

	// ErrEmptyDegrees indicates the group has rank zero.
	ErrEmptyDegrees = errors.New("catalan: group has rank zero")

	// ErrNotIrreducible indicates the group has more than one irreducible
	// component and cannot carry this trait.
	ErrNotIrreducible = errors.New("catalan: group is not irreducible")

	// ErrNotWellGenerated indicates #simple reflections != rank.
	ErrNotWellGenerated = errors.New("catalan: group is not well generated")

	// ErrBadParameter indicates a non-positive rational Catalan parameter p.
	ErrBadParameter = errors.New("catalan: parameter p must be positive")

	// ErrBadFussParameter indicates a non-positive Fuss parameter m.
	ErrBadFussParameter = errors.New("catalan: Fuss parameter m must be positive")

	// ErrNotCoprime indicates gcd(p, h) != 1. Returned wrapped with both
	// values, e.g. "catalan: ...: parameter p = 3 is not coprime to the
	// Coxeter number 9".
	ErrNotCoprime = errors.New("catalan: parameter is not coprime to the Coxeter number")
)

// Group is the well-generated irreducible trait over a reflection group:
// a validated snapshot of its degree data plus a per-instance memo for the
// enumeration results. Construct with New; the zero value is not usable.
type Group struct {
	degrees   []int
	codegrees []int
	h         int
	memo      *refl.Memo
}

// New selects the trait for g, verifying every requirement up front:
// degrees and codegrees exposed (refl.ErrNoDegrees / refl.ErrNoCodegrees),
// positive rank (ErrEmptyDegrees), exactly one irreducible component
// (ErrNotIrreducible), and #simple reflections == rank
// (ErrNotWellGenerated). The degree data is copied, so the trait stays
// valid regardless of what the caller does with g afterwards.
func New(g refl.Group) (*Group, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	db, ok := g.(refl.DegreeBearer)
	if !ok {
		return nil, refl.ErrNoDegrees
	}
	cb, ok := g.(refl.CodegreeBearer)
	if !ok {
		return nil, refl.ErrNoCodegrees
	}
	deg := db.Degrees()
	if len(deg) == 0 {
		return nil, ErrEmptyDegrees
	}
	if n := g.NumberOfIrreducibleComponents(); n != 1 {
		return nil, fmt.Errorf("%w: %d components", ErrNotIrreducible, n)
	}
	if s := g.NumberOfSimpleReflections(); s != len(deg) {
		return nil, fmt.Errorf("%w: %d simple reflections for rank %d",
			ErrNotWellGenerated, s, len(deg))
	}

	w := &Group{
		degrees:   append([]int(nil), deg...),
		codegrees: append([]int(nil), cb.Codegrees()...),
		memo:      refl.NewMemo(),
	}
	// Ascending contract: the Coxeter number is the last (largest) degree.
	w.h = w.degrees[len(w.degrees)-1]
	return w, nil
}

// Rank returns the rank of the underlying group.
func (w *Group) Rank() int { return len(w.degrees) }

// Degrees returns a copy of the degree sequence, ascending.
func (w *Group) Degrees() []int { return append([]int(nil), w.degrees...) }

// Codegrees returns a copy of the codegree sequence, descending.
func (w *Group) Codegrees() []int { return append([]int(nil), w.codegrees...) }

// CoxeterNumber returns the Coxeter number: the largest degree. On this
// trait the closed form agrees with the general
// (reflections + hyperplanes)/rank formula, but costs O(1).
func (w *Group) CoxeterNumber() int { return w.h }

// Cardinality returns the order of the group: the product of the degrees.
// Computed once per instance; callers receive a fresh copy.
func (w *Group) Cardinality() *big.Int {
	v := w.memo.Do("cardinality", func() interface{} {
		card := big.NewInt(1)
		for _, d := range w.degrees {
			card.Mul(card, big.NewInt(int64(d)))
		}
		return card
	})
	return new(big.Int).Set(v.(*big.Int))
}

// FullSupportReflections returns the number of reflections with full
// support: rank · h · ∏(codegrees) / |W|, where the product runs over all
// stored codegrees except the last entry of the descending sequence. The
// quotient is exact for every group on this trait. For rank 1 the dropped
// entry leaves the empty product, 1.
func (w *Group) FullSupportReflections() *big.Int {
	out := big.NewInt(int64(w.Rank()) * int64(w.h))
	for _, c := range w.codegrees[:len(w.codegrees)-1] {
		out.Mul(out, big.NewInt(int64(c)))
	}
	return out.Quo(out, w.Cardinality())
}

// gcd is the classical Euclidean algorithm on non-negative ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// checkCoprime validates the rational Catalan parameter against h.
func (w *Group) checkCoprime(p int) error {
	if p < 1 {
		return fmt.Errorf("%w: p = %d", ErrBadParameter, p)
	}
	if gcd(w.h, p) != 1 {
		return fmt.Errorf("%w: parameter p = %d is not coprime to the Coxeter number %d",
			ErrNotCoprime, p, w.h)
	}
	return nil
}

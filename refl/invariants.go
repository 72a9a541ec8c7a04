// Package refl: derived numerical invariants as pure functions of the
// degree/codegree capabilities.
package refl

import (
	"math/big"
)

// degreesOf fetches the raw degree sequence or reports the missing capability.
func degreesOf(g Group) ([]int, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	db, ok := g.(DegreeBearer)
	if !ok {
		return nil, ErrNoDegrees
	}
	return db.Degrees(), nil
}

// codegreesOf fetches the raw codegree sequence or reports the missing capability.
func codegreesOf(g Group) ([]int, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	cb, ok := g.(CodegreeBearer)
	if !ok {
		return nil, ErrNoCodegrees
	}
	return cb.Codegrees(), nil
}

// Rank returns the rank of g: the dimension of its smallest faithful
// reflection representation, which equals the number of degrees.
// Returns ErrNoDegrees when g does not expose degrees.
func Rank(g Group) (int, error) {
	deg, err := degreesOf(g)
	if err != nil {
		return 0, err
	}
	return len(deg), nil
}

// NumberOfReflections returns the number of reflections of g,
// given by the sum of the degrees minus the rank.
func NumberOfReflections(g Group) (int, error) {
	deg, err := degreesOf(g)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range deg {
		total += d
	}
	return total - len(deg), nil
}

// NumberOfReflectingHyperplanes returns the number of reflecting hyperplanes
// of g, given by the sum of the codegrees plus the rank. This is also the
// number of distinguished reflections; for real groups it coincides with
// NumberOfReflections.
func NumberOfReflectingHyperplanes(g Group) (int, error) {
	codeg, err := codegreesOf(g)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range codeg {
		total += c
	}
	return total + len(codeg), nil
}

// Cardinality returns the order of g as an exact integer,
// given by the product of the degrees. The empty product is 1.
func Cardinality(g Group) (*big.Int, error) {
	deg, err := degreesOf(g)
	if err != nil {
		return nil, err
	}
	card := big.NewInt(1)
	tmp := new(big.Int)
	for _, d := range deg {
		tmp.SetInt64(int64(d))
		card.Mul(card, tmp)
	}
	return card, nil
}

// IsWellGenerated reports whether g is well generated: whether the number of
// its simple reflections coincides with its rank. All finite real reflection
// groups are well generated; the groups G(r,p,n) with 1 < p < r are not.
func IsWellGenerated(g Group) (bool, error) {
	rank, err := Rank(g)
	if err != nil {
		return false, err
	}
	return g.NumberOfSimpleReflections() == rank, nil
}

// IsReal reports whether g is real: isomorphic to a reflection group over a
// real vector space. An irreducible complex reflection group is real if and
// only if 2 occurs as a degree with multiplicity one, so in general the
// multiplicity of 2 among the degrees is compared with the number of
// irreducible components. This is a fact of the classification; it is not
// re-derived here.
func IsReal(g Group) (bool, error) {
	deg, err := degreesOf(g)
	if err != nil {
		return false, err
	}
	twos := 0
	for _, d := range deg {
		if d == 2 {
			twos++
		}
	}
	return twos == g.NumberOfIrreducibleComponents(), nil
}

// CharacterValue returns the value at e of the character of the reflection
// representation: the trace of the element's matrix presentation.
// Returns ErrNoMatrix when e carries no matrix capability; errors from
// ToMatrix itself (an element without an exact rational form) pass through.
func CharacterValue(e Element) (*big.Rat, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	mb, ok := e.(MatrixBearer)
	if !ok {
		return nil, ErrNoMatrix
	}
	m, err := mb.ToMatrix()
	if err != nil {
		return nil, err
	}
	return m.Trace()
}

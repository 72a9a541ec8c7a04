// Package refl: contract validation for degree/codegree sequences.
// Concrete implementations are trusted in the hot paths; Validate is the
// one place a test-suite or constructor can check the contract explicitly.
package refl

import "fmt"

// Validate checks the degree/codegree contract of g:
//
//   - degrees and codegrees are exposed together or not at all
//     (ErrCapabilityPair);
//   - degrees are positive (ErrBadDegree) and ascending (ErrDegreeOrder);
//   - codegrees are non-negative (ErrBadCodegree) and descending
//     (ErrCodegreeOrder);
//   - both sequences have the same length (ErrSequenceLength).
//
// A group exposing neither capability passes vacuously.
func Validate(g Group) error {
	if g == nil {
		return ErrNilGroup
	}
	db, hasDeg := g.(DegreeBearer)
	cb, hasCodeg := g.(CodegreeBearer)
	if hasDeg != hasCodeg {
		return ErrCapabilityPair
	}
	if !hasDeg {
		return nil
	}

	deg := db.Degrees()
	codeg := cb.Codegrees()
	if len(deg) != len(codeg) {
		return fmt.Errorf("%w: %d degrees vs %d codegrees", ErrSequenceLength, len(deg), len(codeg))
	}
	for i, d := range deg {
		if d < 1 {
			return fmt.Errorf("%w: degrees[%d] = %d", ErrBadDegree, i, d)
		}
		if i > 0 && deg[i-1] > d {
			return fmt.Errorf("%w: degrees[%d] = %d after %d", ErrDegreeOrder, i, d, deg[i-1])
		}
	}
	for i, c := range codeg {
		if c < 0 {
			return fmt.Errorf("%w: codegrees[%d] = %d", ErrBadCodegree, i, c)
		}
		if i > 0 && codeg[i-1] < c {
			return fmt.Errorf("%w: codegrees[%d] = %d after %d", ErrCodegreeOrder, i, c, codeg[i-1])
		}
	}
	return nil
}

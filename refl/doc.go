// Package refl defines the capability contract for finite complex reflection
// groups and derives their basic numerical invariants.
//
// Overview:
//
//   - A finite complex reflection group is described, almost completely, by
//     two integer sequences: its degrees (ascending) and codegrees
//     (descending), both of length equal to the group's rank.
//   - Concrete groups participate by implementing the small Group interface
//     plus any of the optional capability interfaces: DegreeBearer,
//     CodegreeBearer, and (on elements) MatrixBearer.
//   - Every derived operation is a pure function of those capabilities.
//     Asking for an invariant the group cannot support fails with a sentinel
//     error instead of panicking; callers can also branch up front with a
//     plain type assertion.
//
// Derived invariants:
//
//   - Rank:                          len(degrees)
//   - NumberOfReflections:           sum(degrees) − rank
//   - NumberOfReflectingHyperplanes: sum(codegrees) + rank
//   - Cardinality:                   ∏ degrees, as an exact big.Int
//   - IsWellGenerated:               #simple reflections == rank
//   - IsReal:                        multiplicity of 2 among the degrees ==
//     number of irreducible components
//   - CharacterValue (on elements):  trace of the matrix presentation
//
// Traits:
//
//   - Finite wraps any Group and memoizes derived values per instance.
//   - Irreducible additionally provides the Coxeter number
//     (reflections + hyperplanes) / rank. Irreducibility is asserted by the
//     caller at construction, never probed at runtime.
//   - Product combines groups into their direct product at the invariant
//     level (degrees merged ascending, codegrees descending, counts summed).
//
// Error handling (sentinel errors):
//
//   - ErrNilGroup / ErrNilElement: nil values at the API boundary.
//   - ErrNoDegrees / ErrNoCodegrees / ErrNoMatrix: a required optional
//     capability is absent on this concrete group or element.
//   - ErrEmptyDegrees: an operation requires positive rank (Coxeter number).
//   - ErrCapabilityPair, ErrSequenceLength, ErrDegreeOrder, ErrCodegreeOrder,
//     ErrBadDegree, ErrBadCodegree: contract violations found by Validate.
//
// Thread safety:
//
//   - Groups are immutable values; derived operations are pure. The memo
//     inside Finite is guarded by a sync.RWMutex and hands out copies of
//     cached big values, so concurrent readers cannot corrupt each other.
//
// See also:
//
//   - coxeter: Coxeter elements and the well-generated trait.
//   - catalan: Catalan-type enumeration for well-generated irreducible groups.
//   - perm:    concrete colored permutation groups G(r,1,n).
package refl

// Package coxeter provides Coxeter element machinery for well-generated
// finite complex reflection groups.
//
// Overview:
//
//   - A Coxeter element is the product of one reflection per simple
//     generator, taken in a fixed order. In a well-generated group all such
//     products are conjugate, and their common order is the Coxeter number.
//   - This package works over the Generated interface: a refl.Group that can
//     also hand out its identity, its simple reflections, and perform
//     multiplication and inversion. That is the whole contract; no matrix
//     form or degree data is needed here.
//
// Operations:
//
//   - Element(g):                   the standard Coxeter element, the product
//     of the simple reflections in their listed order.
//   - StandardElements(g):          the distinct products over every ordering
//     of the simple reflections. Factorial in the rank; intended for small
//     ranks, which is where it is mathematically interesting.
//   - ConjugacyClass(g, rep):       all conjugates of rep, computed as a
//     breadth-first closure under conjugation by the simple reflections.
//   - WellGenerated:                trait wrapper caching CoxeterElements()
//     (the full conjugacy class of the Coxeter element) per instance, since
//     class enumeration can be expensive and the result never changes.
//
// Beyond real reflection groups the conjugacy class of Coxeter elements is
// not unique; the class returned is always the one containing the standard
// Coxeter element.
//
// Error handling (sentinel errors):
//
//   - ErrNilGroup / ErrNilElement: nil values at the API boundary.
//   - ErrNoGenerators:             the group has an empty generating set.
//   - ErrNotWellGenerated:         NewWellGenerated found #simple != rank.
//
// Complexity:
//
//   - Element: O(n) multiplications for n simple reflections.
//   - StandardElements: O(n! · n) multiplications.
//   - ConjugacyClass: O(|class| · n) multiplications plus hashing.
package coxeter

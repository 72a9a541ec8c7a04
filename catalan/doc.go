// Package catalan provides Catalan-type enumeration for well-generated
// irreducible finite complex reflection groups.
//
// Overview:
//
//   - For a well-generated irreducible group W with degrees d_1 ≤ ... ≤ d_n
//     and Coxeter number h = d_n, a family of product formulas counts
//     noncrossing structures attached to W:
//
//     rational Catalan:  Cat_p(W) = ∏ᵢ (p + (p·(dᵢ−1) mod h)) / ∏ᵢ dᵢ
//     Fuss–Catalan:      Cat_m(W) = Cat_{mh+1}(W)   (positive: Cat_{mh−1})
//     classical Catalan: Cat(W)   = Cat_1(W)
//
//     Each has a q-analogue obtained by replacing every factor with its
//     q-integer; the quotients are polynomials with integer coefficients.
//
//   - The rational Catalan number requires gcd(p, h) = 1; the Fuss
//     parameters mh ± 1 are always coprime to h, so those never fail.
//
//   - The trait is selected at construction: New verifies the group exposes
//     degrees and codegrees, has positive rank, is irreducible (one
//     component) and well generated (#simple reflections == rank). The
//     Coxeter number is then simply the largest degree — the fast closed
//     form that agrees with (reflections + hyperplanes)/rank on this class.
//
// Also here:
//
//   - FullSupportReflections: the number of reflections whose fixed space
//     meets no proper parabolic, rank·h·∏(codegrees dropping the last
//     stored entry) / |W|.
//
// Caching:
//
//   - Rational Catalan results (numeric and polynomial) are memoized per
//     instance and per parameter; every call hands out a fresh copy, so
//     callers can never corrupt the cache.
//
// Error handling:
//
//   - refl.ErrNoDegrees / refl.ErrNoCodegrees: missing capability at New.
//   - ErrEmptyDegrees, ErrNotIrreducible, ErrNotWellGenerated: the group
//     cannot carry this trait.
//   - ErrBadParameter / ErrBadFussParameter: non-positive p or m.
//   - ErrNotCoprime: gcd(p, h) != 1; the wrapped message names both values.
package catalan

// Package perm implements the colored permutation groups G(r,1,n): the
// wreath products of a cyclic group of order r with the symmetric group on
// n letters. They are the workhorse concrete family of finite complex
// reflection groups:
//
//   - G(1,1,n) is the symmetric group Sn (rank n-1, degrees 2..n);
//   - G(2,1,n) is the hyperoctahedral group of signed permutations;
//   - G(r,1,n) for r > 2 is genuinely complex — its reflection
//     representation needs r-th roots of unity.
//
// A group element maps the basis vector e_i to ζ^c(i) · e_π(i) for a
// permutation π and colors c(i) in {0..r-1}, with ζ = exp(2πi/r).
//
// Capability surface:
//
//   - refl.Group, refl.DegreeBearer, refl.CodegreeBearer — always.
//   - coxeter.Generated — always: identity, simple reflections (the adjacent
//     transpositions, plus the color rotation on the last coordinate when
//     r > 1), multiplication, inversion.
//   - refl.MatrixBearer on elements — the matrix form is exact over the
//     rationals only for r ≤ 2 (entries 0, ±1); for r > 2 ToMatrix reports
//     ErrNoRationalForm, which is precisely how a missing optional
//     capability is meant to surface.
//
// Degrees and codegrees (classified, precomputed at construction):
//
//   - r = 1: degrees 2..n, codegrees n-2..0 (rank n-1);
//   - r ≥ 2: degrees r, 2r, ..., nr, codegrees (n-1)r, ..., r, 0 (rank n).
//
// All values are immutable after construction. Element enumeration and
// conjugacy-class closure are exponential in n and intended for the small
// ranks where exact enumeration is the point.
//
// Error handling (sentinel errors):
//
//   - ErrBadColors / ErrBadSize: invalid constructor arguments.
//   - ErrNoRationalForm: ToMatrix on an element with r > 2.
//
// Mul, Inverse and friends panic when handed an element from a different
// group; mixing groups is a programmer error, not a runtime condition.
package perm

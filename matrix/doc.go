// Package matrix provides exact dense matrices over the rational numbers.
//
// Overview:
//
//   - Dense is a row-major matrix whose entries are *big.Rat values, so every
//     operation is exact: no floating-point rounding, no epsilon policies.
//   - The package exists to give reflection-group elements a faithful matrix
//     presentation and to compute character values (traces) exactly.
//
// When to use:
//
//   - Whenever a group element must present itself as a square matrix over an
//     exact field (permutation matrices, signed permutation matrices, any
//     rational representation).
//   - As the value type behind refl.MatrixBearer and refl.CharacterValue.
//
// Key features:
//
//   - Exact arithmetic: entries are copied big.Rat values; the matrix never
//     aliases caller-owned rationals.
//   - Mul computes exact products; Trace computes exact character values.
//   - Equal is true exact equality, entry by entry.
//
// Error handling (sentinel errors):
//
//   - ErrBadShape:          requested dimensions are non-positive.
//   - ErrOutOfRange:        a row or column index is outside valid bounds.
//   - ErrDimensionMismatch: operand shapes are incompatible (a.Cols != b.Rows).
//   - ErrNonSquare:         a square matrix was required (Trace) but not given.
//   - ErrNilMatrix:         a nil *Dense receiver or argument was used.
//
// Complexity:
//
//   - At/Set: O(1) plus one big.Rat copy.
//   - Mul:    O(r·c·k) big.Rat multiply-adds.
//   - Trace:  O(n) big.Rat additions.
//
// Thread safety:
//
//   - A Dense is safe for concurrent reads. Concurrent Set calls require
//     external synchronization, matching the immutable-after-construction
//     lifecycle of group elements.
package matrix

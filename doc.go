// Package reflecta is your in-memory toolkit for finite complex reflection
// groups — from degree/codegree invariants to Coxeter elements and
// Catalan-type enumeration, all over exact arbitrary-precision arithmetic.
//
// 🚀 What is reflecta?
//
//	A modern, exact, zero-dependency library that brings together:
//		• Core contract: Group/Element capabilities (degrees, codegrees, matrix form)
//		• Derived invariants: rank, cardinality, reflection & hyperplane counts
//		• Predicates: well-generated, real, irreducible trait wrappers
//		• Coxeter machinery: Coxeter elements, conjugacy classes, Coxeter numbers
//		• Enumeration: Catalan, Fuss–Catalan and rational Catalan numbers + q-analogues
//		• Concrete groups: r-colored permutations G(r,1,n) exercising every capability
//
// ✨ Why choose reflecta?
//
//   - Exact everywhere – big.Int cardinalities, big.Rat traces, integer q-polynomials
//   - Capability-based – groups declare what they support; everything else degrades
//     to a sentinel error, never a panic
//   - Pure Go – no cgo, no hidden deps
//   - Immutable values – memoized derived data, safe for concurrent reads
//
// Under the hood, everything is organized per concern:
//
//	refl/    — Group/Element contract, derived invariants, traits, validation
//	matrix/  — exact dense matrices over big.Rat (trace, product)
//	qpoly/   — q-integer polynomials over big.Int with exact division
//	coxeter/ — Coxeter elements, standard Coxeter elements, conjugacy classes
//	catalan/ — Coxeter numbers and (rational, Fuss, classical) Catalan counting
//	perm/    — concrete colored permutation groups G(r,1,n)
//
// Quick taste:
//
//	W, _ := perm.Colored(1, 4)        // the symmetric group S4, degrees [2 3 4]
//	c, _ := catalan.New(W)            // well-generated irreducible trait
//	c.Number(false)                   // 14, the classical Catalan number
//
//	go get github.com/katalvlaran/reflecta
package reflecta

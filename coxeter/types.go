// Package coxeter: the Generated contract and sentinel errors.
package coxeter

import (
	"errors"

	"github.com/katalvlaran/reflecta/refl"
)

// Sentinel errors for the Coxeter machinery.
var (
	// ErrNilGroup indicates a nil group was passed.
	ErrNilGroup = errors.New("coxeter: group is nil")

	// ErrNilElement indicates a nil element was passed.
	ErrNilElement = errors.New("coxeter: element is nil")

	// ErrNoGenerators indicates the group exposes an empty generating set.
	ErrNoGenerators = errors.New("coxeter: group has no simple reflections")

	// ErrNotWellGenerated indicates the number of simple reflections does not
	// match the rank, so the group cannot carry the well-generated trait.
	ErrNotWellGenerated = errors.New("coxeter: group is not well generated")
)

// Generated is a reflection group with enough structure to multiply:
// an identity, a distinguished list of simple reflections, composition,
// and inversion. Elements must be immutable and keyed (refl.Element), so
// closure computations can deduplicate by Key.
type Generated interface {
	refl.Group

	// Identity returns the neutral element.
	Identity() refl.Element

	// SimpleReflections returns the distinguished generating reflections in
	// a fixed order. The order fixes which product is "the" Coxeter element.
	SimpleReflections() []refl.Element

	// Mul returns the composition a·b.
	Mul(a, b refl.Element) refl.Element

	// Inverse returns a⁻¹.
	Inverse(a refl.Element) refl.Element
}

// Package refl: Group and Element contracts, optional capability interfaces,
// and the package sentinel errors.
//
// This file declares the boundary a concrete reflection-group implementation
// must satisfy to participate. Capabilities are queried with type assertions;
// derived operations fall back to sentinel errors when a capability is
// missing, never to panics.
package refl

import (
	"errors"

	"github.com/katalvlaran/reflecta/matrix"
)

// Sentinel errors for capability and contract violations.
var (
	// ErrNilGroup indicates a nil Group was passed to a derived operation.
	ErrNilGroup = errors.New("refl: group is nil")

	// ErrNilElement indicates a nil Element was passed to a derived operation.
	ErrNilElement = errors.New("refl: element is nil")

	// ErrNoDegrees indicates the group does not expose invariant degrees.
	ErrNoDegrees = errors.New("refl: group does not expose degrees")

	// ErrNoCodegrees indicates the group does not expose codegrees.
	ErrNoCodegrees = errors.New("refl: group does not expose codegrees")

	// ErrNoMatrix indicates the element has no matrix presentation.
	ErrNoMatrix = errors.New("refl: element has no matrix presentation")

	// ErrEmptyDegrees indicates an operation that requires positive rank was
	// invoked on a rank-zero group.
	ErrEmptyDegrees = errors.New("refl: group has rank zero")

	// ErrEmptyProduct indicates Product was called without factors.
	ErrEmptyProduct = errors.New("refl: direct product needs at least one factor")

	// ErrCapabilityPair indicates exactly one of degrees/codegrees is exposed;
	// the contract requires both or neither.
	ErrCapabilityPair = errors.New("refl: degrees and codegrees must be exposed together")

	// ErrSequenceLength indicates len(degrees) != len(codegrees).
	ErrSequenceLength = errors.New("refl: degree and codegree sequences differ in length")

	// ErrDegreeOrder indicates the degree sequence is not ascending.
	ErrDegreeOrder = errors.New("refl: degrees must be in ascending order")

	// ErrCodegreeOrder indicates the codegree sequence is not descending.
	ErrCodegreeOrder = errors.New("refl: codegrees must be in descending order")

	// ErrBadDegree indicates a non-positive degree value.
	ErrBadDegree = errors.New("refl: degrees must be positive")

	// ErrBadCodegree indicates a negative codegree value.
	ErrBadCodegree = errors.New("refl: codegrees must be non-negative")
)

// Group is the minimal contract every finite complex reflection group
// satisfies. Richer behavior is opted into through the capability
// interfaces below and through coxeter.Generated.
type Group interface {
	// NumberOfSimpleReflections returns the size of the distinguished
	// generating set of reflections.
	NumberOfSimpleReflections() int

	// NumberOfIrreducibleComponents returns the number of irreducible
	// factors in the group's reflection representation.
	NumberOfIrreducibleComponents() int
}

// Element is one member of a finite complex reflection group.
// Implementations are immutable values.
type Element interface {
	// Key returns a string uniquely identifying the element within its
	// group, suitable for use as a map key.
	Key() string
}

// DegreeBearer is the optional capability of exposing the degrees of the
// fundamental invariants, in ascending order, length equal to the rank.
// A group exposing degrees must expose codegrees as well (see Validate).
type DegreeBearer interface {
	Degrees() []int
}

// CodegreeBearer is the optional capability of exposing the codegrees,
// in descending order, length equal to the rank. For well-generated groups
// the smallest codegree is 0.
type CodegreeBearer interface {
	Codegrees() []int
}

// MatrixBearer is the optional capability of an Element to present itself
// as a square matrix over an exact field, acting on the reflection
// representation. ToMatrix may itself fail when the concrete element has no
// exact rational form.
type MatrixBearer interface {
	ToMatrix() (*matrix.Dense, error)
}

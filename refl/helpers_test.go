package refl_test

import (
	"github.com/katalvlaran/reflecta/matrix"
)

// bareGroup satisfies refl.Group and nothing else: no degrees, no codegrees.
type bareGroup struct {
	simple     int
	components int
}

func (g bareGroup) NumberOfSimpleReflections() int     { return g.simple }
func (g bareGroup) NumberOfIrreducibleComponents() int { return g.components }

// gradedGroup additionally bears degree and codegree sequences.
type gradedGroup struct {
	bareGroup
	degrees   []int
	codegrees []int
}

func (g gradedGroup) Degrees() []int   { return g.degrees }
func (g gradedGroup) Codegrees() []int { return g.codegrees }

// graded builds a gradedGroup fixture.
func graded(degrees, codegrees []int, simple, components int) gradedGroup {
	return gradedGroup{
		bareGroup: bareGroup{simple: simple, components: components},
		degrees:   degrees,
		codegrees: codegrees,
	}
}

// halfGroup violates the capability contract: degrees without codegrees.
type halfGroup struct {
	bareGroup
	degrees []int
}

func (g halfGroup) Degrees() []int { return g.degrees }

// plainElem is an element with no matrix capability.
type plainElem struct{ key string }

func (e plainElem) Key() string { return e.key }

// matrixElem carries a matrix presentation (or a capability error).
type matrixElem struct {
	key string
	m   *matrix.Dense
	err error
}

func (e matrixElem) Key() string { return e.key }

func (e matrixElem) ToMatrix() (*matrix.Dense, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.m, nil
}

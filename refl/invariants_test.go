package refl_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/reflecta/matrix"
	"github.com/katalvlaran/reflecta/refl"
)

//----------------------------------------------------------------------------//
// Rank / reflection-count Tests
//----------------------------------------------------------------------------//

// TestInvariants_Table runs the degree/codegree formulas over the standard
// small groups: S3 (A2), S4 (A3), the hyperoctahedral B3, G(4,1,3), G(4,2,3)
// and the exceptional group W(H4)-sized example from the classification.
func TestInvariants_Table(t *testing.T) {
	cases := []struct {
		name        string
		g           gradedGroup
		rank        int
		reflections int
		hyperplanes int
		cardinality int64
	}{
		{"A2", graded([]int{2, 3}, []int{1, 0}, 2, 1), 2, 3, 3, 6},
		{"A3", graded([]int{2, 3, 4}, []int{2, 1, 0}, 3, 1), 3, 6, 6, 24},
		{"B3", graded([]int{2, 4, 6}, []int{4, 2, 0}, 3, 1), 3, 9, 9, 48},
		{"G413", graded([]int{4, 8, 12}, []int{8, 4, 0}, 3, 1), 3, 21, 15, 384},
		{"G423", graded([]int{4, 6, 8}, []int{8, 4, 0}, 4, 1), 3, 15, 15, 192},
		{"G31", graded([]int{8, 12, 20, 24}, []int{28, 16, 12, 0}, 5, 1), 4, 60, 60, 46080},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rank, err := refl.Rank(tc.g)
			if err != nil {
				t.Fatalf("Rank error: %v", err)
			}
			if rank != tc.rank {
				t.Errorf("Rank = %d; want %d", rank, tc.rank)
			}
			refs, err := refl.NumberOfReflections(tc.g)
			if err != nil {
				t.Fatalf("NumberOfReflections error: %v", err)
			}
			if refs != tc.reflections {
				t.Errorf("NumberOfReflections = %d; want %d", refs, tc.reflections)
			}
			hyps, err := refl.NumberOfReflectingHyperplanes(tc.g)
			if err != nil {
				t.Fatalf("NumberOfReflectingHyperplanes error: %v", err)
			}
			if hyps != tc.hyperplanes {
				t.Errorf("NumberOfReflectingHyperplanes = %d; want %d", hyps, tc.hyperplanes)
			}
			card, err := refl.Cardinality(tc.g)
			if err != nil {
				t.Fatalf("Cardinality error: %v", err)
			}
			if card.Cmp(big.NewInt(tc.cardinality)) != 0 {
				t.Errorf("Cardinality = %s; want %d", card, tc.cardinality)
			}
		})
	}
}

// TestInvariants_MissingCapability verifies the sentinel errors on a group
// without degree/codegree capabilities.
func TestInvariants_MissingCapability(t *testing.T) {
	g := bareGroup{simple: 3, components: 1}
	if _, err := refl.Rank(g); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("Rank error = %v; want ErrNoDegrees", err)
	}
	if _, err := refl.NumberOfReflections(g); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("NumberOfReflections error = %v; want ErrNoDegrees", err)
	}
	if _, err := refl.NumberOfReflectingHyperplanes(g); !errors.Is(err, refl.ErrNoCodegrees) {
		t.Errorf("NumberOfReflectingHyperplanes error = %v; want ErrNoCodegrees", err)
	}
	if _, err := refl.Cardinality(g); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("Cardinality error = %v; want ErrNoDegrees", err)
	}
	if _, err := refl.IsWellGenerated(g); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("IsWellGenerated error = %v; want ErrNoDegrees", err)
	}
	if _, err := refl.IsReal(g); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("IsReal error = %v; want ErrNoDegrees", err)
	}
}

// TestInvariants_NilGroup verifies the nil guard.
func TestInvariants_NilGroup(t *testing.T) {
	if _, err := refl.Rank(nil); !errors.Is(err, refl.ErrNilGroup) {
		t.Errorf("Rank(nil) error = %v; want ErrNilGroup", err)
	}
}

//----------------------------------------------------------------------------//
// Predicate Tests
//----------------------------------------------------------------------------//

// TestIsWellGenerated compares simple-reflection counts with ranks.
func TestIsWellGenerated(t *testing.T) {
	cases := []struct {
		name string
		g    gradedGroup
		want bool
	}{
		// G(3,1,3): three simple reflections, rank 3.
		{"G313", graded([]int{3, 6, 9}, []int{6, 3, 0}, 3, 1), true},
		// G(4,2,3): four simple reflections, rank 3.
		{"G423", graded([]int{4, 6, 8}, []int{8, 4, 0}, 4, 1), false},
		// G(4,4,3): three simple reflections, rank 3.
		{"G443", graded([]int{3, 4, 8}, []int{5, 4, 0}, 3, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := refl.IsWellGenerated(tc.g)
			if err != nil {
				t.Fatalf("IsWellGenerated error: %v", err)
			}
			if got != tc.want {
				t.Errorf("IsWellGenerated = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestIsReal compares the multiplicity of degree 2 with the component count.
func TestIsReal(t *testing.T) {
	cases := []struct {
		name string
		g    gradedGroup
		want bool
	}{
		{"A2", graded([]int{2, 3}, []int{1, 0}, 2, 1), true},
		{"G413", graded([]int{4, 8, 12}, []int{8, 4, 0}, 3, 1), false},
		// A2 x B2: two components, degree 2 occurs twice.
		{"A2xB2", graded([]int{2, 2, 3, 4}, []int{2, 1, 0, 0}, 4, 2), true},
		// One real and one non-real factor.
		{"A2xG313", graded([]int{2, 3, 3, 6, 9}, []int{6, 3, 1, 0, 0}, 5, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := refl.IsReal(tc.g)
			if err != nil {
				t.Fatalf("IsReal error: %v", err)
			}
			if got != tc.want {
				t.Errorf("IsReal = %v; want %v", got, tc.want)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// CharacterValue Tests
//----------------------------------------------------------------------------//

// TestCharacterValue_Trace verifies the trace of a permutation matrix: the
// 3-cycle fixes nothing, so its character value is 0.
func TestCharacterValue_Trace(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	if err != nil {
		t.Fatalf("NewDense error: %v", err)
	}
	// Cycle e1 -> e2 -> e3 -> e1.
	_ = m.SetInt64(1, 0, 1)
	_ = m.SetInt64(2, 1, 1)
	_ = m.SetInt64(0, 2, 1)

	got, err := refl.CharacterValue(matrixElem{key: "c3", m: m})
	if err != nil {
		t.Fatalf("CharacterValue error: %v", err)
	}
	if got.Cmp(new(big.Rat)) != 0 {
		t.Errorf("CharacterValue = %s; want 0", got.RatString())
	}
}

// TestCharacterValue_Identity verifies tr(id) = rank.
func TestCharacterValue_Identity(t *testing.T) {
	id, err := matrix.Identity(4)
	if err != nil {
		t.Fatalf("Identity error: %v", err)
	}
	got, err := refl.CharacterValue(matrixElem{key: "e", m: id})
	if err != nil {
		t.Fatalf("CharacterValue error: %v", err)
	}
	if got.Cmp(big.NewRat(4, 1)) != 0 {
		t.Errorf("CharacterValue = %s; want 4", got.RatString())
	}
}

// TestCharacterValue_NoMatrix verifies the missing-capability sentinel.
func TestCharacterValue_NoMatrix(t *testing.T) {
	if _, err := refl.CharacterValue(plainElem{key: "x"}); !errors.Is(err, refl.ErrNoMatrix) {
		t.Errorf("CharacterValue error = %v; want ErrNoMatrix", err)
	}
	if _, err := refl.CharacterValue(nil); !errors.Is(err, refl.ErrNilElement) {
		t.Errorf("CharacterValue(nil) error = %v; want ErrNilElement", err)
	}
}

// TestCharacterValue_ToMatrixFailure verifies ToMatrix errors pass through.
func TestCharacterValue_ToMatrixFailure(t *testing.T) {
	boom := errors.New("no exact form")
	if _, err := refl.CharacterValue(matrixElem{key: "z", err: boom}); !errors.Is(err, boom) {
		t.Errorf("CharacterValue error = %v; want the ToMatrix error", err)
	}
}

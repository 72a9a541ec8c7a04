package refl_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/reflecta/refl"
)

// TestProduct_MergesSequences builds A2 x B2, the smallest interesting
// reducible group, and checks the merged invariants.
func TestProduct_MergesSequences(t *testing.T) {
	a2 := graded([]int{2, 3}, []int{1, 0}, 2, 1)
	b2 := graded([]int{2, 4}, []int{2, 0}, 2, 1)

	p, err := refl.Product(a2, b2)
	if err != nil {
		t.Fatalf("Product error: %v", err)
	}

	deg, ok := p.(refl.DegreeBearer)
	if !ok {
		t.Fatal("product of graded groups must bear degrees")
	}
	wantDeg := []int{2, 2, 3, 4}
	if got := deg.Degrees(); !equalInts(got, wantDeg) {
		t.Errorf("Degrees = %v; want %v", got, wantDeg)
	}

	codeg, ok := p.(refl.CodegreeBearer)
	if !ok {
		t.Fatal("product of graded groups must bear codegrees")
	}
	wantCodeg := []int{2, 1, 0, 0}
	if got := codeg.Codegrees(); !equalInts(got, wantCodeg) {
		t.Errorf("Codegrees = %v; want %v", got, wantCodeg)
	}

	if got := p.NumberOfSimpleReflections(); got != 4 {
		t.Errorf("NumberOfSimpleReflections = %d; want 4", got)
	}
	if got := p.NumberOfIrreducibleComponents(); got != 2 {
		t.Errorf("NumberOfIrreducibleComponents = %d; want 2", got)
	}

	// A product of two real groups is real: degree 2 twice, two components.
	isReal, err := refl.IsReal(p)
	if err != nil {
		t.Fatalf("IsReal error: %v", err)
	}
	if !isReal {
		t.Error("IsReal = false; want true for A2 x B2")
	}
}

// TestProduct_DropsSequencesForBareFactor verifies the all-or-nothing
// capability rule: one bare factor strips degrees from the product.
func TestProduct_DropsSequencesForBareFactor(t *testing.T) {
	a2 := graded([]int{2, 3}, []int{1, 0}, 2, 1)
	opaque := bareGroup{simple: 2, components: 1}

	p, err := refl.Product(a2, opaque)
	if err != nil {
		t.Fatalf("Product error: %v", err)
	}
	if _, ok := p.(refl.DegreeBearer); ok {
		t.Error("product with a bare factor must not bear degrees")
	}
	if got := p.NumberOfSimpleReflections(); got != 4 {
		t.Errorf("NumberOfSimpleReflections = %d; want 4", got)
	}
	if _, err := refl.Rank(p); !errors.Is(err, refl.ErrNoDegrees) {
		t.Errorf("Rank error = %v; want ErrNoDegrees", err)
	}
}

// TestProduct_Errors covers empty and nil factor lists.
func TestProduct_Errors(t *testing.T) {
	if _, err := refl.Product(); !errors.Is(err, refl.ErrEmptyProduct) {
		t.Errorf("Product() error = %v; want ErrEmptyProduct", err)
	}
	a2 := graded([]int{2, 3}, []int{1, 0}, 2, 1)
	if _, err := refl.Product(a2, nil); !errors.Is(err, refl.ErrNilGroup) {
		t.Errorf("Product(_, nil) error = %v; want ErrNilGroup", err)
	}
}

// TestProduct_SingleFactor verifies a one-factor product keeps the data.
func TestProduct_SingleFactor(t *testing.T) {
	g := graded([]int{3, 6, 9}, []int{6, 3, 0}, 3, 1)
	p, err := refl.Product(g)
	if err != nil {
		t.Fatalf("Product error: %v", err)
	}
	if rank, _ := refl.Rank(p); rank != 3 {
		t.Errorf("Rank = %d; want 3", rank)
	}
}

// equalInts is a tiny slice comparison helper.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

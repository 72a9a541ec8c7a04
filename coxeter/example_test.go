package coxeter_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/reflecta/coxeter"
	"github.com/katalvlaran/reflecta/perm"
)

// ExampleConjugacyClass lists the Coxeter elements of S3: the two 3-cycles.
func ExampleConjugacyClass() {
	g, _ := perm.Colored(1, 3)
	c, _ := coxeter.Element(g)
	class, _ := coxeter.ConjugacyClass(g, c)

	keys := make([]string, 0, len(class))
	for _, e := range class {
		keys = append(keys, e.Key())
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k)
	}
	// Output:
	// 1,2,0|0,0,0
	// 2,0,1|0,0,0
}

// ExampleNewWellGenerated counts the Coxeter elements of S4.
func ExampleNewWellGenerated() {
	g, _ := perm.Colored(1, 4)
	w, _ := coxeter.NewWellGenerated(g)
	fmt.Println(len(w.CoxeterElements()))
	// Output:
	// 6
}

// Package refl: direct products at the invariant level.
package refl

import "sort"

// productGroup carries the summed counts of a direct product.
type productGroup struct {
	simple     int
	components int
}

func (p *productGroup) NumberOfSimpleReflections() int     { return p.simple }
func (p *productGroup) NumberOfIrreducibleComponents() int { return p.components }

// gradedProduct additionally exposes the merged degree/codegree sequences.
type gradedProduct struct {
	productGroup
	degrees   []int
	codegrees []int
}

func (p *gradedProduct) Degrees() []int   { return p.degrees }
func (p *gradedProduct) Codegrees() []int { return p.codegrees }

// Product returns the direct product of the given groups at the invariant
// level: simple-reflection and component counts are summed, and when every
// factor exposes degrees and codegrees the product does too, with degrees
// merged ascending and codegrees descending. If any factor lacks the
// sequences, the product exposes neither (the capability contract is
// all-or-nothing).
//
// Element-level structure (multiplication, conjugacy classes) is not
// combined here; products exist to feed the invariant formulas with
// reducible inputs.
func Product(parts ...Group) (Group, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyProduct
	}
	out := gradedProduct{}
	graded := true
	for _, g := range parts {
		if g == nil {
			return nil, ErrNilGroup
		}
		out.simple += g.NumberOfSimpleReflections()
		out.components += g.NumberOfIrreducibleComponents()
		db, hasDeg := g.(DegreeBearer)
		cb, hasCodeg := g.(CodegreeBearer)
		if !hasDeg || !hasCodeg {
			graded = false
			continue
		}
		out.degrees = append(out.degrees, db.Degrees()...)
		out.codegrees = append(out.codegrees, cb.Codegrees()...)
	}
	if !graded {
		return &productGroup{simple: out.simple, components: out.components}, nil
	}
	sort.Ints(out.degrees)
	sort.Sort(sort.Reverse(sort.IntSlice(out.codegrees)))
	return &out, nil
}

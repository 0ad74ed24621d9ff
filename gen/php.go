// Package gen generates CNF instances for the solvers in the parent
// package: the pigeonhole-principle encoding and random 3-SAT instances.
package gen

import "github.com/satcompare/satcompare"

// PHP builds the pigeonhole-principle encoding PHP(h+1 -> h): h holes, h+1
// pigeons, unsatisfiable for every h >= 1. Variable (i-1)*h+j represents
// pigeon i occupying hole j, for pigeons i in [1, h+1] and holes j in
// [1, h].
//
// Clauses:
//   - one per pigeon i: pigeon i is in some hole (x_{i,1} v ... v x_{i,h})
//   - one per hole j and pigeon pair i<k: not both in hole j
func PHP(holes int) (numVars int, f satcompare.Formula) {
	if holes < 1 {
		panic("gen: PHP requires holes >= 1")
	}
	pigeons := holes + 1
	numVars = pigeons * holes

	for i := 1; i <= pigeons; i++ {
		lits := make([]satcompare.Literal, holes)
		for j := 1; j <= holes; j++ {
			lits[j-1] = satcompare.Literal(varOf(i, j, holes))
		}
		c, _ := satcompare.NewClause(lits) // never tautological: distinct vars
		f = append(f, c)
	}

	for j := 1; j <= holes; j++ {
		for i := 1; i <= pigeons; i++ {
			for k := i + 1; k <= pigeons; k++ {
				vi, vk := varOf(i, j, holes), varOf(k, j, holes)
				c, _ := satcompare.NewClause([]satcompare.Literal{
					satcompare.Literal(-vi),
					satcompare.Literal(-vk),
				})
				f = append(f, c)
			}
		}
	}
	return numVars, f
}

func varOf(pigeon, hole, holes int) int {
	return (pigeon-1)*holes + hole
}

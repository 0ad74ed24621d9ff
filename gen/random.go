package gen

import (
	"math/rand"

	"github.com/satcompare/satcompare"
)

// Random3SAT generates a random 3-SAT instance over nVars variables and
// nClauses clauses, seeded for reproducibility. Each clause picks three
// distinct variables uniformly at random and negates each independently
// with probability 1/2.
func Random3SAT(nVars, nClauses int, seed int64) satcompare.Formula {
	if nVars < 3 {
		panic("gen: Random3SAT requires nVars >= 3")
	}
	rng := rand.New(rand.NewSource(seed))
	f := make(satcompare.Formula, 0, nClauses)
	for i := 0; i < nClauses; i++ {
		vars := make(map[int]bool, 3)
		lits := make([]satcompare.Literal, 0, 3)
		for len(vars) < 3 {
			v := rng.Intn(nVars) + 1
			if vars[v] {
				continue
			}
			vars[v] = true
			lit := v
			if rng.Float64() < 0.5 {
				lit = -lit
			}
			lits = append(lits, satcompare.Literal(lit))
		}
		c, ok := satcompare.NewClause(lits)
		if !ok {
			// Three distinct variables can never produce a tautology, but
			// guard against it rather than assume it silently.
			i--
			continue
		}
		f = append(f, c)
	}
	return f
}

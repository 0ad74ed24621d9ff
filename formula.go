package satcompare

import "sort"

// Formula is an ordered list of clauses, interpreted as their conjunction.
// Order does not affect satisfiability but does affect which clause
// populates clause_counts entries and which variable a "first by order of
// discovery" heuristic picks, so it is preserved rather than normalized.
type Formula []Clause

// NewFormula builds a Formula from raw integer clauses, the shape produced
// by ParseDIMACS and consumed by the gen package. A clause containing 0
// anywhere but as the (already-stripped) terminator is a programmer
// error.
func NewFormula(clauses [][]int) Formula {
	f := make(Formula, 0, len(clauses))
	for _, raw := range clauses {
		lits := make([]Literal, len(raw))
		for i, n := range raw {
			lits[i] = Literal(n)
		}
		c, ok := NewClause(lits)
		if !ok {
			// Tautological input clauses are dropped, not rejected: they
			// never change a formula's verdict (spec invariant).
			continue
		}
		f = append(f, c)
	}
	return f
}

// Clone returns an independent copy of f. Clauses are never mutated in
// place anywhere in this package — every simplification produces fresh
// Clause values — so a shallow copy of the outer slice is sufficient to
// protect the caller's Formula from a solver's internal bookkeeping.
func (f Formula) Clone() Formula {
	out := make(Formula, len(f))
	copy(out, f)
	return out
}

// ContainsEmptyClause reports whether any clause in f is empty, the
// refutation witness that makes f unsatisfiable.
func (f Formula) ContainsEmptyClause() bool {
	for _, c := range f {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// withClause returns a new Formula with c appended.
func (f Formula) withClause(c Clause) Formula {
	out := make(Formula, len(f), len(f)+1)
	copy(out, f)
	return append(out, c)
}

// variablesInOrder returns every variable appearing in f, in first-seen
// order (scanning clauses, then literals, in f's own iteration order).
func (f Formula) variablesInOrder() []Variable {
	seen := make(map[Variable]bool)
	var vars []Variable
	for _, c := range f {
		for _, l := range c {
			v := l.Var()
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	return vars
}

// polarity tracks, for one variable, whether each sign has been observed.
type polarity struct{ pos, neg bool }

// polarities scans f once and returns the observed polarity for every
// variable appearing in it.
func (f Formula) polarities() map[Variable]polarity {
	pols := make(map[Variable]polarity)
	for _, c := range f {
		for _, l := range c {
			v := l.Var()
			p := pols[v]
			if l.Positive() {
				p.pos = true
			} else {
				p.neg = true
			}
			pols[v] = p
		}
	}
	return pols
}

// bipolarVariablesSorted returns every variable appearing with both
// polarities somewhere in f, sorted ascending by index. Ascending order
// lets frequency-based heuristics break ties by scanning for the first
// strict improvement.
func (f Formula) bipolarVariablesSorted() []Variable {
	pols := f.polarities()
	var out []Variable
	for v, p := range pols {
		if p.pos && p.neg {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// firstBipolarByDiscovery returns the first variable, in f's first-seen
// order, that appears with both polarities in f. ok is false if no such
// variable exists.
func (f Formula) firstBipolarByDiscovery() (v Variable, ok bool) {
	pols := f.polarities()
	for _, cand := range f.variablesInOrder() {
		if p := pols[cand]; p.pos && p.neg {
			return cand, true
		}
	}
	return 0, false
}


package satcompare

// UnitPropagate repeatedly finds a unit clause, deletes every clause it
// satisfies, and strips its negation from the rest, until no unit clause
// remains (fixpoint) or a clause is driven empty (conflict). It returns a
// new Formula; f itself is left untouched.
//
// Unit selection scans f in order and picks the first unit clause found,
// so the result is deterministic for a given Formula even though the
// selection order is otherwise unconstrained.
func UnitPropagate(f Formula) (out Formula, conflict bool) {
	cur := f.Clone()
	for {
		idx := -1
		for i, c := range cur {
			if c.IsEmpty() {
				return nil, true
			}
			if c.IsUnit() && idx == -1 {
				idx = i
			}
		}
		if idx == -1 {
			return cur, false
		}
		lit := cur[idx][0]
		next := make(Formula, 0, len(cur))
		for _, c := range cur {
			if c.Contains(lit) {
				continue // satisfied
			}
			if c.Contains(lit.Negate()) {
				c = c.without(lit.Negate())
				if c.IsEmpty() {
					return nil, true
				}
			}
			next = append(next, c)
		}
		cur = next
	}
}

// PureLiteralPass makes a single pass over f, deleting every clause that
// contains a pure literal (one whose negation appears nowhere in f). It
// reports whether anything changed. DPLL uses a single pass per recursive
// frame, since recursion already reconsiders purity on the reduced formula;
// Resolution runs it to a fixpoint via PureLiteralFixpoint, and DP reruns
// it on every pass of its outer loop.
func PureLiteralPass(f Formula) (out Formula, changed bool) {
	pols := f.polarities()
	pure := make(map[Literal]bool)
	for v, p := range pols {
		switch {
		case p.pos && !p.neg:
			pure[v.Pos()] = true
		case p.neg && !p.pos:
			pure[v.Neg()] = true
		}
	}
	if len(pure) == 0 {
		return f, false
	}
	next := make(Formula, 0, len(f))
	for _, c := range f {
		drop := false
		for _, l := range c {
			if pure[l] {
				drop = true
				break
			}
		}
		if !drop {
			next = append(next, c)
		}
	}
	return next, true
}

// PureLiteralFixpoint applies PureLiteralPass until it stops finding pure
// literals. Removing clauses can expose new purity, so a single pass is not
// always enough outside of DPLL's recursive setting.
func PureLiteralFixpoint(f Formula) Formula {
	cur := f
	for {
		next, changed := PureLiteralPass(cur)
		if !changed {
			return cur
		}
		cur = next
	}
}

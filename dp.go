package satcompare

// DP decides satisfiability of f using the Davis-Putnam procedure:
// Resolution augmented with unit propagation and pure-literal elimination
// interleaved between eliminations. Each outer iteration runs unit
// propagation first, then pure-literal elimination; only if neither
// produces a terminal verdict does a variable-elimination step run, after
// which the outer loop restarts (the new clauses may expose fresh units or
// pure literals).
//
// A unit-propagation conflict returns UNSAT immediately without appending
// to ClauseCounts, while a resolvent step that produces the empty clause
// appends its count first. This asymmetry is deliberate, not an
// oversight.
func DP(f Formula, strategy Strategy) Result {
	cur := f.Clone()
	var counts []int

	for {
		propagated, conflict := UnitPropagate(cur)
		if conflict {
			return clauseCountsResult(false, counts)
		}
		cur = propagated

		pured, changed := PureLiteralPass(cur)
		if changed {
			cur = pured
			continue // new units may have been exposed; restart the outer loop
		}

		if len(cur) == 0 {
			return clauseCountsResult(true, counts)
		}

		bipolar := cur.bipolarVariablesSorted()
		if len(bipolar) == 0 {
			return clauseCountsResult(true, counts)
		}

		v := chooseEliminationVariable(cur, strategy, bipolar)
		cur = eliminate(cur, v)
		counts = append(counts, len(cur))

		if cur.ContainsEmptyClause() {
			return clauseCountsResult(false, counts)
		}
	}
}

// Package satcompare implements three classical propositional
// satisfiability procedures — Resolution refutation, Davis-Putnam (DP)
// variable elimination, and DPLL backtracking search — over an in-memory
// CNF representation, each with a choice of branching/elimination
// heuristics. Every solver is a pure function: it clones its input,
// returns a verdict plus telemetry, and never touches global state.
package satcompare

// Resolution decides satisfiability of f by repeated binary resolution:
// pure-literal elimination to a fixpoint, then elimination of one bipolar
// variable at a time (chosen by strategy) until the formula is empty (SAT),
// a resolvent is the empty clause (UNSAT), or no bipolar variable remains
// (SAT — every remaining variable has a single polarity). It performs no
// unit propagation; that is what distinguishes it from DP.
//
// ClauseCounts records the clause count after each elimination step, in
// the order steps were taken.
func Resolution(f Formula, strategy Strategy) Result {
	cur := f.Clone()
	var counts []int

	for {
		cur = PureLiteralFixpoint(cur)
		if cur.ContainsEmptyClause() {
			return clauseCountsResult(false, counts)
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

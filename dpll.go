package satcompare

import "fmt"

// trace gates a debug trace of the DPLL search. It is never read from
// configuration; flip it locally when debugging a specific instance.
const trace = false

// DPLL decides satisfiability of f by recursive backtracking search: unit
// propagation, then pure-literal elimination (a single pass — recursion
// already reconsiders purity on the reduced formula), then either a
// terminal verdict or a branching decision on a literal chosen by
// heuristic. The literal is tried true first, then false; each branch
// counts as one decision. No clause learning, no non-chronological
// backtracking, no restarts.
func DPLL(f Formula, heuristic DPLLHeuristic) Result {
	decisions := 0
	sat := dpllSolve(f.Clone(), heuristic, &decisions, 0)
	return decisionsResult(sat, decisions)
}

func dpllSolve(f Formula, h DPLLHeuristic, decisions *int, depth int) bool {
	propagated, conflict := UnitPropagate(f)
	if conflict {
		if trace {
			fmt.Printf("%*sconflict during unit propagation\n", depth*2, "")
		}
		return false
	}
	f = propagated

	f, _ = PureLiteralPass(f)

	if len(f) == 0 {
		if trace {
			fmt.Printf("%*sempty formula: SAT\n", depth*2, "")
		}
		return true
	}
	if f.ContainsEmptyClause() {
		if trace {
			fmt.Printf("%*sempty clause: UNSAT\n", depth*2, "")
		}
		return false
	}

	lit := chooseBranchLiteral(f, h)

	*decisions++
	if trace {
		fmt.Printf("%*sdecision %d: try %d\n", depth*2, "", *decisions, lit)
	}
	if dpllSolve(assume(f, lit), h, decisions, depth+1) {
		return true
	}

	*decisions++
	if trace {
		fmt.Printf("%*sdecision %d: try %d\n", depth*2, "", *decisions, lit.Negate())
	}
	return dpllSolve(assume(f, lit.Negate()), h, decisions, depth+1)
}

// assume returns f with a unit clause forcing lit appended; the next
// recursive call's unit propagation step consumes it immediately.
func assume(f Formula, lit Literal) Formula {
	unit, ok := NewClause([]Literal{lit})
	if !ok {
		panic("satcompare: unit clause came out tautological")
	}
	return f.withClause(unit)
}

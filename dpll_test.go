package satcompare

import "testing"

func TestDPLLUniversalInvariants(t *testing.T) {
	for _, h := range []DPLLHeuristic{HeuristicFixed, HeuristicMostFreq, HeuristicJeroslow} {
		if res := DPLL(Formula{}, h); !res.Sat {
			t.Fatalf("[%s] empty formula should be SAT", h)
		}
		if res := DPLL(Formula{clause()}, h); res.Sat {
			t.Fatalf("[%s] formula with empty clause should be UNSAT", h)
		}
		if res := DPLL(Formula{clause(1), clause(-1)}, h); res.Sat {
			t.Fatalf("[%s] {v},{-v} should be UNSAT", h)
		}
		if res := DPLL(Formula{clause(1)}, h); !res.Sat {
			t.Fatalf("[%s] {v} should be SAT", h)
		}
	}
}

func TestDPLLDecisionsNonNegative(t *testing.T) {
	_, f := phpFormula(2)
	res := DPLL(f, HeuristicFixed)
	if res.Decisions == nil || *res.Decisions < 0 {
		t.Fatalf("got Decisions=%v, want >= 0", res.Decisions)
	}
}

func TestDPLLZeroDecisionsWhenUnitPropagationAloneDecides(t *testing.T) {
	// Fully determined by unit propagation: no branching needed.
	f := Formula{clause(1), clause(-1, 2), clause(-2, 3)}
	res := DPLL(f, HeuristicFixed)
	if !res.Sat {
		t.Fatalf("expected SAT")
	}
	if *res.Decisions != 0 {
		t.Fatalf("got Decisions=%d, want 0", *res.Decisions)
	}
}

func TestDPLLTrivialSatScenario(t *testing.T) {
	// End-to-end scenario 1: p cnf 1 1 \n 1 0
	f := NewFormula([][]int{{1}})
	res := DPLL(f, HeuristicFixed)
	if !res.Sat || *res.Decisions != 0 {
		t.Fatalf("got sat=%v decisions=%v, want sat=true decisions=0", res.Sat, res.Decisions)
	}
}

func TestDPLLPHPDecisionsPositive(t *testing.T) {
	// Scenario 5: PHP(3->2) with fixed heuristic must branch at least once.
	_, f := phpFormula(2)
	res := DPLL(f, HeuristicFixed)
	if res.Sat {
		t.Fatalf("PHP(3->2) should be UNSAT")
	}
	if *res.Decisions <= 0 {
		t.Fatalf("got Decisions=%d, want > 0", *res.Decisions)
	}
}

func TestDPLLAgreesWithResolutionAndDP(t *testing.T) {
	cases := []Formula{
		{},
		{clause()},
		{clause(1), clause(-1)},
		{clause(1)},
		{clause(1, 2), clause(1, -2)},
		{clause(1, 2), clause(1, -2), clause(-1, 2), clause(-1, -2)},
	}
	for _, f := range cases {
		want := Resolution(f, StrategyBasic).Sat
		for _, h := range []DPLLHeuristic{HeuristicFixed, HeuristicMostFreq, HeuristicJeroslow} {
			got := DPLL(f, h).Sat
			if got != want {
				t.Fatalf("DPLL(%v, %s) = %v, want %v", f, h, got, want)
			}
		}
	}
}

func TestDPLLPHP(t *testing.T) {
	for h := 1; h <= 3; h++ {
		_, f := phpFormula(h)
		for _, heur := range []DPLLHeuristic{HeuristicFixed, HeuristicMostFreq, HeuristicJeroslow} {
			if DPLL(f, heur).Sat {
				t.Fatalf("[%s] PHP(%d->%d) should be UNSAT", heur, h+1, h)
			}
		}
	}
}

func TestDPLLDoesNotMutateInput(t *testing.T) {
	f := Formula{clause(1, 2), clause(-1, 2)}
	_ = DPLL(f, HeuristicFixed)
	if len(f) != 2 {
		t.Fatalf("DPLL mutated its input: %v", f)
	}
}

package satcompare

import "testing"

func TestResolutionEmptyFormulaIsSat(t *testing.T) {
	res := Resolution(Formula{}, StrategyBasic)
	if !res.Sat {
		t.Fatalf("empty formula should be SAT")
	}
	if res.ClauseCounts == nil || len(*res.ClauseCounts) != 0 {
		t.Fatalf("got ClauseCounts=%v, want non-nil empty slice", res.ClauseCounts)
	}
}

func TestResolutionEmptyClauseIsUnsat(t *testing.T) {
	res := Resolution(Formula{clause()}, StrategyBasic)
	if res.Sat {
		t.Fatalf("formula containing the empty clause should be UNSAT")
	}
}

func TestResolutionUnitConflict(t *testing.T) {
	res := Resolution(Formula{clause(1), clause(-1)}, StrategyBasic)
	if res.Sat {
		t.Fatalf("{v}, {-v} should be UNSAT")
	}
}

func TestResolutionSingleUnit(t *testing.T) {
	res := Resolution(Formula{clause(1)}, StrategyBasic)
	if !res.Sat {
		t.Fatalf("{v} should be SAT")
	}
}

func TestResolutionPureLiteral(t *testing.T) {
	// Scenario 3: literal 1 is pure.
	f := Formula{clause(1, 2), clause(1, -2)}
	res := Resolution(f, StrategyBasic)
	if !res.Sat {
		t.Fatalf("expected SAT via pure literal, got UNSAT")
	}
}

func TestResolutionChainUnsat(t *testing.T) {
	// Scenario 4.
	f := Formula{clause(1, 2), clause(1, -2), clause(-1, 2), clause(-1, -2)}
	res := Resolution(f, StrategyBasic)
	if res.Sat {
		t.Fatalf("expected UNSAT")
	}
	counts := *res.ClauseCounts
	if len(counts) == 0 {
		t.Fatalf("expected at least one elimination step recorded")
	}
}

func TestResolutionTautologicalInputDoesNotChangeVerdict(t *testing.T) {
	// Tautological input clauses are dropped by NewFormula (the clause
	// helper panics on them), so build both formulas from raw input.
	base := NewFormula([][]int{{1, 2}, {-1, -2}})
	withTauto := NewFormula([][]int{{1, 2}, {-1, -2}, {1, -1, 2}})
	gotBase := Resolution(base, StrategyBasic).Sat
	gotTauto := Resolution(withTauto, StrategyBasic).Sat
	if gotBase != gotTauto {
		t.Fatalf("tautological clause changed verdict: base=%v withTautology=%v", gotBase, gotTauto)
	}
}

func TestResolutionPHP(t *testing.T) {
	for h := 1; h <= 3; h++ {
		_, f := phpFormula(h)
		if Resolution(f, StrategyBasic).Sat {
			t.Fatalf("PHP(%d->%d) should be UNSAT", h+1, h)
		}
	}
}

func TestResolutionPigeonRelaxationIsSat(t *testing.T) {
	_, f := phpFormula(2)
	// Drop one at-least-one-hole clause (the first pigeon's).
	relaxed := f[1:]
	if !Resolution(relaxed, StrategyBasic).Sat {
		t.Fatalf("relaxed pigeonhole instance should be SAT")
	}
}

func TestResolutionMostFreqLeastFreqAgree(t *testing.T) {
	f := Formula{clause(1, 2), clause(1, -2), clause(-1, 2), clause(-1, -2)}
	mostFreq := Resolution(f, StrategyMostFreq).Sat
	leastFreq := Resolution(f, StrategyLeastFreq).Sat
	basic := Resolution(f, StrategyBasic).Sat
	if mostFreq != basic || leastFreq != basic {
		t.Fatalf("strategies disagree: basic=%v mostfreq=%v leastfreq=%v", basic, mostFreq, leastFreq)
	}
}

// phpFormula builds PHP(h+1 -> h): h holes, h+1 pigeons, unsatisfiable for
// all h >= 1. Variable (i-1)*h+j represents pigeon i in hole j.
func phpFormula(h int) (numVars int, f Formula) {
	p := h + 1
	numVars = p * h
	for i := 1; i <= p; i++ {
		var lits []Literal
		for j := 1; j <= h; j++ {
			lits = append(lits, Literal((i-1)*h+j))
		}
		c, _ := NewClause(lits)
		f = append(f, c)
	}
	for j := 1; j <= h; j++ {
		for i := 1; i <= p; i++ {
			for k := i + 1; k <= p; k++ {
				vi := (i-1)*h + j
				vk := (k-1)*h + j
				c, _ := NewClause([]Literal{Literal(-vi), Literal(-vk)})
				f = append(f, c)
			}
		}
	}
	return numVars, f
}

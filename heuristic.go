package satcompare

import (
	"fmt"
	"math"
	"sort"
)

// Strategy selects the bipolar variable eliminated next in Resolution and
// DP. The zero value, StrategyBasic, means "first bipolar variable by
// order of discovery" — the null/omitted strategy.
type Strategy int

const (
	StrategyBasic Strategy = iota
	StrategyMostFreq
	StrategyLeastFreq
)

func (s Strategy) String() string {
	switch s {
	case StrategyMostFreq:
		return "mostfreq"
	case StrategyLeastFreq:
		return "leastfreq"
	default:
		return "basic"
	}
}

// ParseStrategy maps a harness-facing string to a Strategy, rejecting
// anything else. An empty string is the null strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "basic", "null":
		return StrategyBasic, nil
	case "mostfreq":
		return StrategyMostFreq, nil
	case "leastfreq":
		return StrategyLeastFreq, nil
	default:
		return 0, fmt.Errorf("satcompare: unknown resolution/DP strategy %q", s)
	}
}

// DPLLHeuristic selects the branching literal in DPLL.
type DPLLHeuristic int

const (
	HeuristicFixed DPLLHeuristic = iota
	HeuristicMostFreq
	HeuristicJeroslow
)

func (h DPLLHeuristic) String() string {
	switch h {
	case HeuristicMostFreq:
		return "mostfreq"
	case HeuristicJeroslow:
		return "jeroslow"
	default:
		return "fixed"
	}
}

// ParseDPLLHeuristic maps a harness-facing string to a DPLLHeuristic,
// rejecting unknown variants.
func ParseDPLLHeuristic(s string) (DPLLHeuristic, error) {
	switch s {
	case "", "fixed":
		return HeuristicFixed, nil
	case "mostfreq":
		return HeuristicMostFreq, nil
	case "jeroslow":
		return HeuristicJeroslow, nil
	default:
		return 0, fmt.Errorf("satcompare: unknown DPLL heuristic %q", s)
	}
}

// chooseEliminationVariable picks the bipolar variable that Resolution/DP
// eliminates next, given candidates (already the bipolar set, sorted
// ascending by bipolarVariablesSorted).
func chooseEliminationVariable(f Formula, strategy Strategy, candidates []Variable) Variable {
	switch strategy {
	case StrategyMostFreq, StrategyLeastFreq:
		freq := variableFrequency(f, candidates)
		wantMax := strategy == StrategyMostFreq
		best := candidates[0]
		bestScore := freq[best]
		for _, v := range candidates[1:] {
			score := freq[v]
			if (wantMax && score > bestScore) || (!wantMax && score < bestScore) {
				best, bestScore = v, score
			}
		}
		return best
	default:
		v, ok := f.firstBipolarByDiscovery()
		if !ok {
			panic("satcompare: chooseEliminationVariable called with no bipolar variable")
		}
		return v
	}
}

// variableFrequency counts, for each candidate variable, the number of
// clauses in f containing either polarity of it, once per containing
// clause.
func variableFrequency(f Formula, candidates []Variable) map[Variable]int {
	freq := make(map[Variable]int, len(candidates))
	want := make(map[Variable]bool, len(candidates))
	for _, v := range candidates {
		want[v] = true
	}
	for _, c := range f {
		for _, l := range c {
			v := l.Var()
			if want[v] {
				freq[v]++
			}
		}
		// A clause is canonical (no literal and its negation coexist), so
		// each variable contributes at most one literal per clause; no
		// double-count guard is needed beyond iterating c's literals once.
	}
	return freq
}

// chooseBranchLiteral picks the literal DPLL branches on first; its
// negation is tried second.
func chooseBranchLiteral(f Formula, h DPLLHeuristic) Literal {
	switch h {
	case HeuristicMostFreq:
		return argmaxLiteral(literalFrequency(f))
	case HeuristicJeroslow:
		return argmaxLiteral(jeroslowWangScores(f))
	default:
		vars := f.variablesInOrder()
		if len(vars) == 0 {
			panic("satcompare: chooseBranchLiteral called on an empty formula")
		}
		min := vars[0]
		for _, v := range vars[1:] {
			if v < min {
				min = v
			}
		}
		return min.Pos()
	}
}

// literalFrequency counts occurrences of each literal across f's clauses.
func literalFrequency(f Formula) map[Literal]float64 {
	counts := make(map[Literal]float64)
	for _, c := range f {
		for _, l := range c {
			counts[l]++
		}
	}
	return counts
}

// jeroslowWangScores computes J(l) = sum over clauses containing l of
// 2^-|C|, the Jeroslow-Wang weighting.
func jeroslowWangScores(f Formula) map[Literal]float64 {
	scores := make(map[Literal]float64)
	for _, c := range f {
		weight := math.Exp2(-float64(len(c)))
		for _, l := range c {
			scores[l] += weight
		}
	}
	return scores
}

// argmaxLiteral returns the literal with the highest score, breaking ties
// by literalLess (smallest variable index, positive before negative) by
// scanning candidates in that order and keeping only strict improvements.
func argmaxLiteral(scores map[Literal]float64) Literal {
	var candidates []Literal
	for l := range scores {
		candidates = append(candidates, l)
	}
	sort.Slice(candidates, func(i, j int) bool { return literalLess(candidates[i], candidates[j]) })
	best := candidates[0]
	bestScore := scores[best]
	for _, l := range candidates[1:] {
		if scores[l] > bestScore {
			best, bestScore = l, scores[l]
		}
	}
	return best
}

package satcompare

import "sort"

// Variable is a propositional variable. Valid variables are >= 1; the zero
// value is never valid and is reserved the way DIMACS reserves it as a
// clause terminator.
type Variable int

// Literal is a signed, non-zero occurrence of a Variable in a clause.
// Positive values mean the variable appears unnegated; negative values mean
// its negation.
type Literal int

// Var returns the variable underlying l, regardless of polarity.
func (l Literal) Var() Variable {
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Positive reports whether l is the unnegated occurrence of its variable.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the opposite polarity of l.
func (l Literal) Negate() Literal { return -l }

// Pos returns the positive literal for v.
func (v Variable) Pos() Literal { return Literal(v) }

// Neg returns the negative literal for v.
func (v Variable) Neg() Literal { return Literal(-v) }

// literalLess orders literals for deterministic tie-breaking: smallest
// variable index first, then the positive occurrence before the negative
// one. Every heuristic in this package resolves ties by scanning candidates
// in this order and keeping the first strict improvement, rather than
// relying on map iteration order.
func literalLess(a, b Literal) bool {
	if va, vb := a.Var(), b.Var(); va != vb {
		return va < vb
	}
	return a.Positive() && !b.Positive()
}

// Clause is a canonical, finite set of literals: sorted by literalLess and
// free of duplicates. Construct one with NewClause; the zero value (nil)
// represents the empty clause.
type Clause []Literal

// NewClause canonicalizes lits into a Clause: duplicates are collapsed and
// literal order is fixed by literalLess. If lits contains both some literal
// and its negation, the clause is tautological and NewClause reports ok =
// false — tautologies are dropped at construction time per the invariant
// that no stored clause contains a literal and its negation.
func NewClause(lits []Literal) (c Clause, ok bool) {
	if len(lits) == 0 {
		return nil, true
	}
	seen := make(map[Literal]bool, len(lits))
	uniq := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if l == 0 {
			panic("satcompare: literal 0 passed to NewClause")
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		uniq = append(uniq, l)
	}
	for _, l := range uniq {
		if seen[l.Negate()] {
			return nil, false
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return literalLess(uniq[i], uniq[j]) })
	return Clause(uniq), true
}

// IsEmpty reports whether c is the empty clause (always false).
func (c Clause) IsEmpty() bool { return len(c) == 0 }

// IsUnit reports whether c has exactly one literal.
func (c Clause) IsUnit() bool { return len(c) == 1 }

// Contains reports whether l appears in c.
func (c Clause) Contains(l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

// ContainsVar reports whether either polarity of v appears in c.
func (c Clause) ContainsVar(v Variable) bool {
	return c.Contains(v.Pos()) || c.Contains(v.Neg())
}

// without returns a copy of c with l removed, preserving canonical order.
func (c Clause) without(l Literal) Clause {
	out := make(Clause, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}

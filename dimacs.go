package satcompare

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format into a Formula.
//
// Lines beginning with 'c' are comments (accepted anywhere, not just the
// preamble); the `p cnf <nvars> <nclauses>` problem line is informational
// only — its counts are never enforced against what's actually in the
// body, and it may be omitted entirely. Every other non-empty line lists
// signed integers terminated by 0, one clause per line.
//
// A couple of non-standard variations are tolerated for convenience: a
// trailer after a line containing a single '%' is ignored, and a final
// clause missing its trailing 0 is still picked up.
func ParseDIMACS(r io.Reader) (Formula, error) {
	var haveProblem bool
	var rawClauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(rawClauses) > 0 {
				return nil, errors.WithMessagef(ErrProblemLineOrder, "line %q", line)
			}
			if haveProblem {
				return nil, errors.WithMessagef(ErrDuplicateProblemLine, "line %q", line)
			}
			if err := validateProblemLine(line); err != nil {
				return nil, err
			}
			haveProblem = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid literal %q", field)
			}
			if n == 0 {
				rawClauses = append(rawClauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading DIMACS input")
	}
	if len(clause) > 0 {
		rawClauses = append(rawClauses, clause)
	}
	return NewFormula(rawClauses), nil
}

// validateProblemLine checks only that the problem line is well-formed —
// never that its counts match the body.
func validateProblemLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return errors.WithMessagef(ErrMalformedProblemLine, "%q", line)
	}
	if fields[1] != "cnf" {
		return errors.WithMessagef(ErrMalformedProblemLine, "only cnf supported; got %q", fields[1])
	}
	if _, err := strconv.Atoi(fields[2]); err != nil {
		return errors.Wrap(err, "malformed #vars in problem line")
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return errors.Wrap(err, "malformed #clauses in problem line")
	}
	return nil
}

// WriteDIMACS emits f in DIMACS CNF format: a `p cnf V C` header followed
// by one line per clause, each ending " 0". V is the largest variable
// index appearing in f (0 if f is empty).
func WriteDIMACS(w io.Writer, f Formula) error {
	var maxVar Variable
	for _, c := range f {
		for _, l := range c {
			if v := l.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(f)); err != nil {
		return errors.Wrap(err, "writing DIMACS header")
	}
	for _, c := range f {
		var b strings.Builder
		for _, l := range c {
			fmt.Fprintf(&b, "%d ", l)
		}
		b.WriteString("0")
		if _, err := fmt.Fprintln(bw, b.String()); err != nil {
			return errors.Wrap(err, "writing DIMACS clause")
		}
	}
	return bw.Flush()
}

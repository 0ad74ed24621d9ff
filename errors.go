package satcompare

import "github.com/pkg/errors"

// Errors surfaced by ParseDIMACS. Malformed input is a parser-level
// error; the solver core itself has no recoverable errors.
var (
	ErrDuplicateProblemLine = errors.New("duplicate DIMACS problem line")
	ErrProblemLineOrder     = errors.New("DIMACS problem line appears after clauses")
	ErrMalformedProblemLine = errors.New("malformed DIMACS problem line")
)

package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/satcompare/satcompare"
)

var (
	solveMethod    string
	solveStrategy  string
	solveHeuristic string
)

var solveCmd = &cobra.Command{
	Use:   "solve [input.cnf]",
	Short: "Decide satisfiability of a DIMACS CNF instance",
	Long: `solve reads a single problem specification in the DIMACS CNF format
and reports whether it is satisfiable, along with telemetry for the chosen
procedure.

If no input file is given, solve reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveMethod, "method", "dpll", "resolution|dp|dpll")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "", "resolution/dp strategy: mostfreq|leastfreq (default: first bipolar variable)")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "fixed", "dpll heuristic: fixed|mostfreq|jeroslow")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	formula, err := satcompare.ParseDIMACS(r)
	if err != nil {
		return fmt.Errorf("reading DIMACS input: %w", err)
	}
	log.Debugf("parsed %d clauses", len(formula))

	var res satcompare.Result
	switch solveMethod {
	case "resolution":
		strategy, err := satcompare.ParseStrategy(solveStrategy)
		if err != nil {
			return err
		}
		res = satcompare.Resolution(formula, strategy)
	case "dp":
		strategy, err := satcompare.ParseStrategy(solveStrategy)
		if err != nil {
			return err
		}
		res = satcompare.DP(formula, strategy)
	case "dpll":
		heuristic, err := satcompare.ParseDPLLHeuristic(solveHeuristic)
		if err != nil {
			return err
		}
		res = satcompare.DPLL(formula, heuristic)
	default:
		return fmt.Errorf("unknown method %q; want resolution, dp, or dpll", solveMethod)
	}

	if res.Sat {
		fmt.Println("SAT")
	} else {
		fmt.Println("UNSAT")
	}
	if res.ClauseCounts != nil {
		fmt.Printf("clause_counts: %v\n", *res.ClauseCounts)
	}
	if res.Decisions != nil {
		fmt.Printf("decisions: %d\n", *res.Decisions)
	}
	return nil
}

// Command satcompare drives the three solvers in
// github.com/satcompare/satcompare against DIMACS CNF input, and provides
// instance generation and benchmarking subcommands. It replaces the
// teacher's single flag-based main with cobra subcommands, the way
// operator-lifecycle-manager's util/cpb structures a root command plus
// subcommands.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "satcompare",
	Short: "Compare Resolution, DP, and DPLL SAT procedures",
	Long: `satcompare: a comparative study of three classical propositional
satisfiability procedures — Resolution refutation, Davis-Putnam variable
elimination, and DPLL backtracking search.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(solveCmd, genCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/satcompare/satcompare/bench"
)

var (
	benchDir     string
	benchCSVPath string
	benchTimeout time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the solver/heuristic matrix over a directory of DIMACS instances",
	Long: `bench runs every instance in a directory through the full
solver/heuristic job matrix under a wall-clock timeout per run, and writes
the results as a CSV report.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchDir, "dir", ".", "directory of *.cnf instances")
	benchCmd.Flags().StringVar(&benchCSVPath, "csv", "results.csv", "output CSV path")
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 30*time.Second, "per-run wall-clock timeout")
}

func runBench(cmd *cobra.Command, args []string) error {
	rows, err := bench.Run(cmd.Context(), benchDir, benchCSVPath, benchTimeout)
	if err != nil {
		return err
	}
	log.Infof("wrote %d rows to %s", len(rows), benchCSVPath)
	return nil
}

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/satcompare/satcompare"
	"github.com/satcompare/satcompare/gen"
)

var (
	genHoles      int
	genVars       int
	genClauses    int
	genSeed       int64
	genOutputPath string
)

var genCmd = &cobra.Command{
	Use:   "gen [php|random]",
	Short: "Generate a DIMACS CNF instance",
	Args:  cobra.ExactArgs(1),
	RunE:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&genHoles, "holes", 3, "php: number of holes (pigeons = holes+1)")
	genCmd.Flags().IntVar(&genVars, "vars", 6, "random: number of variables")
	genCmd.Flags().IntVar(&genClauses, "clauses", 20, "random: number of clauses")
	genCmd.Flags().Int64Var(&genSeed, "seed", 42, "random: RNG seed")
	genCmd.Flags().StringVar(&genOutputPath, "out", "", "output path (default: stdout)")
}

func runGen(cmd *cobra.Command, args []string) error {
	var formula satcompare.Formula
	switch args[0] {
	case "php":
		numVars, f := gen.PHP(genHoles)
		log.Infof("generated PHP(%d->%d): %d vars, %d clauses", genHoles+1, genHoles, numVars, len(f))
		formula = f
	case "random":
		formula = gen.Random3SAT(genVars, genClauses, genSeed)
		log.Infof("generated random 3-SAT: %d vars, %d clauses, seed=%d", genVars, genClauses, genSeed)
	default:
		return fmt.Errorf("unknown generator %q; want php or random", args[0])
	}

	w := os.Stdout
	if genOutputPath != "" {
		f, err := os.Create(genOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return satcompare.WriteDIMACS(f, formula)
	}
	return satcompare.WriteDIMACS(w, formula)
}

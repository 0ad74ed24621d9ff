package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeCNF(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
}

func TestRunProducesOneRowPerJobPerInstance(t *testing.T) {
	dir := t.TempDir()
	writeCNF(t, dir, "sat.cnf", "p cnf 1 1\n1 0\n")
	writeCNF(t, dir, "unsat.cnf", "p cnf 1 2\n1 0\n-1 0\n")

	csvPath := filepath.Join(t.TempDir(), "results.csv")
	rows, err := Run(context.Background(), dir, csvPath, time.Second)
	require.NoError(t, err)
	require.Len(t, rows, 2*len(DefaultJobs))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "instance,solver,option,sat,timed_out,seconds,clause_counts,decisions")
}

func TestRunVerdicts(t *testing.T) {
	dir := t.TempDir()
	writeCNF(t, dir, "sat.cnf", "p cnf 1 1\n1 0\n")
	writeCNF(t, dir, "unsat.cnf", "p cnf 1 2\n1 0\n-1 0\n")

	rows, err := Run(context.Background(), dir, filepath.Join(t.TempDir(), "out.csv"), time.Second)
	require.NoError(t, err)

	for _, r := range rows {
		switch r.Instance {
		case "sat.cnf":
			require.True(t, r.Sat, "%+v", r)
		case "unsat.cnf":
			require.False(t, r.Sat, "%+v", r)
		}
		require.False(t, r.TimedOut)
	}
}

func TestRunSkipsUnparseableFiles(t *testing.T) {
	dir := t.TempDir()
	writeCNF(t, dir, "bad.cnf", "not a number 0\n")
	rows, err := Run(context.Background(), dir, filepath.Join(t.TempDir(), "out.csv"), time.Second)
	require.NoError(t, err)
	require.Empty(t, rows)
}

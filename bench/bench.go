// Package bench runs the solver/heuristic matrix over a directory of
// DIMACS instances under a wall-clock timeout and writes a CSV report.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/satcompare/satcompare"
)

// Job names one solver/heuristic combination to run.
type Job struct {
	Solver string // "resolution", "dp", or "dpll"
	Option string // a Strategy or DPLLHeuristic name
}

// DefaultJobs is the solver/heuristic matrix Run uses: the mostfreq and
// leastfreq strategies for Resolution and DP, and every DPLL heuristic.
// The basic (first bipolar variable) strategy is not included.
var DefaultJobs = []Job{
	{"resolution", "mostfreq"},
	{"resolution", "leastfreq"},
	{"dp", "mostfreq"},
	{"dp", "leastfreq"},
	{"dpll", "fixed"},
	{"dpll", "mostfreq"},
	{"dpll", "jeroslow"},
}

// Row is one line of the CSV report: one instance run under one Job.
type Row struct {
	Instance     string
	Job          Job
	Sat          bool
	TimedOut     bool
	Seconds      float64
	ClauseCounts []int // nil if not applicable (DPLL, or timed out)
	Decisions    int   // -1 if not applicable (Resolution/DP, or timed out)
}

// Run discovers every *.cnf file in dir, runs it through every job in
// DefaultJobs, bounding each run to timeout, and writes the results as CSV
// to csvPath. It returns the rows it wrote.
func Run(ctx context.Context, dir, csvPath string, timeout time.Duration) ([]Row, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.cnf"))
	if err != nil {
		return nil, errors.Wrap(err, "globbing benchmark directory")
	}

	var rows []Row
	for _, path := range paths {
		f, err := loadInstance(path)
		if err != nil {
			log.Warnf("skipping %s: %s", path, err)
			continue
		}
		name := filepath.Base(path)
		for _, job := range DefaultJobs {
			log.Infof("running %s %s/%s", name, job.Solver, job.Option)
			row := runJob(ctx, name, job, f, timeout)
			rows = append(rows, row)
		}
	}

	if err := writeCSV(csvPath, rows); err != nil {
		return rows, err
	}
	return rows, nil
}

func loadInstance(path string) (satcompare.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()
	f, err := satcompare.ParseDIMACS(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return f, nil
}

// runJob runs one solver/option combination against f, enforcing timeout.
// The solver offers no cancellation hook, so the run happens in a
// supervisor goroutine: on timeout the result records sat=false and
// seconds=timeout, and the goroutine is abandoned to finish on its own —
// this harness cannot reclaim it early.
func runJob(ctx context.Context, instance string, job Job, f satcompare.Formula, timeout time.Duration) Row {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan Row, 1)
	start := time.Now()
	go func() {
		done <- solve(instance, job, f)
	}()

	select {
	case row := <-done:
		row.Seconds = time.Since(start).Seconds()
		return row
	case <-runCtx.Done():
		return Row{
			Instance:  instance,
			Job:       job,
			Sat:       false,
			TimedOut:  true,
			Seconds:   timeout.Seconds(),
			Decisions: -1,
		}
	}
}

func solve(instance string, job Job, f satcompare.Formula) Row {
	row := Row{Instance: instance, Job: job, Decisions: -1}
	switch job.Solver {
	case "resolution":
		strategy, err := satcompare.ParseStrategy(job.Option)
		if err != nil {
			panic(err) // programmer error: DefaultJobs entries must be valid
		}
		res := satcompare.Resolution(f, strategy)
		row.Sat = res.Sat
		if res.ClauseCounts != nil {
			row.ClauseCounts = *res.ClauseCounts
		}
	case "dp":
		strategy, err := satcompare.ParseStrategy(job.Option)
		if err != nil {
			panic(err)
		}
		res := satcompare.DP(f, strategy)
		row.Sat = res.Sat
		if res.ClauseCounts != nil {
			row.ClauseCounts = *res.ClauseCounts
		}
	case "dpll":
		heuristic, err := satcompare.ParseDPLLHeuristic(job.Option)
		if err != nil {
			panic(err)
		}
		res := satcompare.DPLL(f, heuristic)
		row.Sat = res.Sat
		if res.Decisions != nil {
			row.Decisions = *res.Decisions
		}
	default:
		panic(fmt.Sprintf("bench: unknown solver %q", job.Solver))
	}
	return row
}

func writeCSV(path string, rows []Row) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"instance", "solver", "option", "sat", "timed_out", "seconds", "clause_counts", "decisions"}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, r := range rows {
		record := []string{
			r.Instance,
			r.Job.Solver,
			r.Job.Option,
			strconv.FormatBool(r.Sat),
			strconv.FormatBool(r.TimedOut),
			strconv.FormatFloat(r.Seconds, 'f', 3, 64),
			formatClauseCounts(r.ClauseCounts),
			strconv.Itoa(r.Decisions),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "writing CSV row")
		}
	}
	return nil
}

func formatClauseCounts(counts []int) string {
	if counts == nil {
		return ""
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ";")
}

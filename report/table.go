package report

import (
	"fmt"
	"io"
	"time"
)

// SuiteRow is one line of the closing table of a CLI run.
type SuiteRow struct {
	Name        string
	Passed      bool
	CasesRun    int
	CasesPassed int
	Requested   int
	Executed    int
	TrialsOK    int
	Divergences int
	Elapsed     time.Duration
	Fault       string
}

// Table writes a markdown summary of the suites of a run.
func Table(w io.Writer, rows []SuiteRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("no suites to report")
	}

	failed := countFailed(rows)

	fmt.Fprintln(w, "## Suite Results")
	fmt.Fprintln(w)

	if failed == 0 {
		fmt.Fprintln(w, "Suites: **all passed**")
	} else {
		fmt.Fprintf(w, "Suites: **%d of %d FAILED**\n", failed, len(rows))

		for _, r := range rows {
			if r.Fault != "" {
				fmt.Fprintf(w, "  - %s: %s\n", r.Name, r.Fault)
			}
		}
	}

	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Suite | Verdict | Cases | Trials | Divergences | Elapsed |")
	fmt.Fprintln(w, "|-------|---------|-------|--------|-------------|---------|")

	for _, r := range rows {
		verdict := "ok"
		if !r.Passed {
			verdict = "FAIL"
		}

		fmt.Fprintf(w, "| %s | %s | %d/%d | %s | %d | %s |\n",
			r.Name,
			verdict,
			r.CasesPassed, r.CasesRun,
			formatTrials(r),
			r.Divergences,
			formatMs(r.Elapsed.Milliseconds()),
		)
	}

	return nil
}

func countFailed(rows []SuiteRow) int {
	n := 0
	for _, r := range rows {
		if !r.Passed {
			n++
		}
	}

	return n
}

func formatTrials(r SuiteRow) string {
	if r.Executed < r.Requested {
		return fmt.Sprintf("%d/%d of %d", r.TrialsOK, r.Executed, r.Requested)
	}

	return fmt.Sprintf("%d/%d", r.TrialsOK, r.Executed)
}

func formatMs(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

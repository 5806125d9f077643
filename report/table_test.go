package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGolden(t *testing.T) {
	var buf bytes.Buffer

	err := Table(&buf, []SuiteRow{
		{
			Name: "sort", Passed: true,
			CasesRun: 4, CasesPassed: 4,
			Requested: 1000, Executed: 1000, TrialsOK: 1000,
			Elapsed: 42 * time.Millisecond,
		},
		{
			Name:     "isqrt",
			CasesRun: 5, CasesPassed: 5,
			Requested: 1000, Executed: 17, TrialsOK: 17,
			Elapsed: 2500 * time.Millisecond,
			Fault:   "runtime error: integer divide by zero",
		},
		{
			Name:     "reverse",
			CasesRun: 3, CasesPassed: 2,
			Requested: 1000, Executed: 1000, TrialsOK: 120, Divergences: 880,
			Elapsed: 9 * time.Millisecond,
		},
	})
	require.NoError(t, err)

	newGolden(t).Assert(t, "suite_table", buf.Bytes())
}

func TestTableAllPassed(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Table(&buf, []SuiteRow{{Name: "sort", Passed: true}}))
	assert.Contains(t, buf.String(), "Suites: **all passed**\n")
	assert.Contains(t, buf.String(), "| sort | ok | 0/0 | 0/0 | 0 | 0ms |\n")
}

func TestTableEmpty(t *testing.T) {
	assert.Error(t, Table(&bytes.Buffer{}, nil))
}

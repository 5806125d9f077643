package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/weiihann/fntest/report"
	"github.com/weiihann/fntest/tuple"
	"github.com/weiihann/fntest/verbosity"
)

// FunctionTest checks one function against expected results and keeps
// running statistics across calls to Test. The statistics only reset by
// creating a new FunctionTest.
//
// Exported fields may be changed between calls to Test. Nil strategy fields
// fall back to their defaults.
type FunctionTest[A, R any] struct {
	Fun tuple.Func[A, R]

	// Equal compares the actual result (first) with the expected one.
	Equal        Comparator[R]
	ResultString Stringer[R]

	Output     io.Writer
	Verbosity  verbosity.Level
	LineLength int
	Color      bool
	Logger     *slog.Logger

	nTests       int
	nPassed      int
	lastPassed   bool
	allPassed    bool
	lastDuration time.Duration
	lastResult   R
	accumulated  time.Duration
}

// NewFunctionTest creates a FunctionTest for fun writing verbose output to
// stdout.
func NewFunctionTest[A, R any](fun tuple.Func[A, R]) *FunctionTest[A, R] {
	return &FunctionTest[A, R]{
		Fun:          fun,
		Equal:        DeepEqual[R],
		ResultString: Sprint[R],
		Output:       os.Stdout,
		Verbosity:    verbosity.Verbose,
		LineLength:   60,
		Logger:       discardLogger(),
		lastPassed:   true,
		allPassed:    true,
	}
}

// Test calls the function with args and compares the result with expected.
//
// A fault in the function, the comparator or the result stringifier is
// reported and dropped: none of the running statistics change and the
// returned Result carries the fault with a zero Actual and Duration.
func (t *FunctionTest[A, R]) Test(name string, expected R, args A) Result[R] {
	equal := t.Equal
	if equal == nil {
		equal = DeepEqual[R]
	}

	toString := t.ResultString
	if toString == nil {
		toString = Sprint[R]
	}

	logger := orDiscard(t.Logger)

	out := report.NewPrinter(sink(t.Output), t.Verbosity, t.Color)
	st := out.Style()

	out.Log(verbosity.Normal, report.FunctionLabel(name, t.LineLength))

	actual, elapsed, err := tuple.Call(t.Fun, args)

	// The detail is rendered before any statistic changes, so a faulting
	// comparator or stringifier drops the call like a faulting function.
	var (
		passed       bool
		actualText   string
		expectedText string
	)
	if err == nil {
		err = protect(func() {
			passed = equal(actual, expected)
			if !passed && t.Verbosity.Allows(verbosity.Verbose) {
				actualText = toString(actual)
				expectedText = toString(expected)
			}
		})
	}

	if err != nil {
		out.Log(verbosity.Normal, report.Exception(st, faultType(err), err.Error()))

		logger.Warn("function test faulted",
			slog.String("test", name),
			slog.String("error", err.Error()),
		)

		return Result[R]{Fault: err}
	}

	t.nTests++
	t.lastPassed = passed
	t.lastResult = actual
	t.lastDuration = elapsed
	t.accumulated += elapsed

	if passed {
		t.nPassed++

		out.Log(verbosity.Normal, report.FunctionVerdict(st, true, elapsed))
	} else {
		t.allPassed = false

		out.Log(verbosity.Normal, report.FunctionVerdict(st, false, elapsed))
		out.Log(verbosity.Verbose, report.FunctionDetail(actualText, expectedText))
	}

	logger.Debug("function test finished",
		slog.String("test", name),
		slog.Bool("passed", passed),
		slog.Duration("elapsed", elapsed),
	)

	return Result[R]{Passed: passed, Actual: actual, Duration: elapsed}
}

// WriteSummary writes the series summary line and reports whether every
// test so far passed. It does not change any state.
func (t *FunctionTest[A, R]) WriteSummary() bool {
	out := report.NewPrinter(sink(t.Output), t.Verbosity, t.Color)

	out.Log(verbosity.Normal, report.SeriesSummary(out.Style(),
		t.allPassed, t.nPassed, t.nTests, t.accumulated))

	return t.allPassed
}

// NTests returns the number of tests that ran to completion.
func (t *FunctionTest[A, R]) NTests() int { return t.nTests }

// NPassedTests returns the number of passed tests.
func (t *FunctionTest[A, R]) NPassedTests() int { return t.nPassed }

// IsLastTestPassed is true before the first test.
func (t *FunctionTest[A, R]) IsLastTestPassed() bool { return t.lastPassed }

// AllPassed is true before the first test.
func (t *FunctionTest[A, R]) AllPassed() bool { return t.allPassed }

func (t *FunctionTest[A, R]) LastDuration() time.Duration { return t.lastDuration }

// LastResult returns a copy of the last completed test's result.
func (t *FunctionTest[A, R]) LastResult() R { return t.lastResult }

func (t *FunctionTest[A, R]) AccumulatedDuration() time.Duration { return t.accumulated }

// protect runs f, turning a panic into a *tuple.Fault.
func protect(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tuple.NewFault(r, true)
		}
	}()

	f()

	return nil
}

// render stringifies v, turning a panic in s into a *tuple.Fault.
func render[T any](s Stringer[T], v T) (text string, err error) {
	err = protect(func() { text = s(v) })

	return text, err
}

func faultType(err error) string {
	var fault *tuple.Fault
	if errors.As(err, &fault) {
		return fault.TypeName()
	}

	return fmt.Sprintf("%T", err)
}

func sink(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger()
	}

	return l
}

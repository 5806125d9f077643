// Package harness runs functions under test and reports how they behave.
//
// FunctionTest checks a function against explicit expected values, one call
// at a time, and keeps running statistics across calls. RandomizedTest
// compares a candidate function against a trusted reference over many
// generated argument bundles and collects every divergence.
//
// Both testers write a plain text report to their Output and return the
// same information as values. Faults raised by functions under test never
// escape a Test call: FunctionTest drops the faulted call, RandomizedTest
// stops the run.
package harness

import "time"

// Comparator reports whether two results are considered equal.
type Comparator[R any] func(a, b R) bool

// Stringer renders a value for the report.
type Stringer[T any] func(v T) string

// Generator creates the argument bundle for one trial. n is the total number
// of trials in the run, not the index of the current one.
type Generator[A any] func(n int) A

// Deleter releases resources owned by a value.
type Deleter[T any] func(v T)

// Result is what a single FunctionTest call produced.
type Result[R any] struct {
	Passed bool
	// Actual is a copy of the function's return value, zero on fault.
	Actual R
	// Duration of the call, zero on fault.
	Duration time.Duration
	// Fault is set when the function panicked or returned an error.
	Fault error
}

// ErrorCase is one trial where the candidate and the reference disagreed.
// Its results were not passed to the result deleter.
type ErrorCase[A, R any] struct {
	Wrong     R
	Reference R
	Args      A
	// ArgsText, WrongText and ReferenceText are rendered when the
	// divergence is recorded, before the argument deleter runs.
	ArgsText      string
	WrongText     string
	ReferenceText string
}

// Outcome aggregates a RandomizedTest run.
type Outcome[A, R any] struct {
	// Requested is the number of trials the run was asked for.
	Requested    int
	NTests       int
	NPassedTests int

	AverageDuration     time.Duration
	AccumulatedDuration time.Duration

	ErrorCases []ErrorCase[A, R]

	// Fault is the failure that stopped the run early, if any.
	Fault error
}

// AllTestsPassed reports whether every executed trial passed.
func (o *Outcome[A, R]) AllTestsPassed() bool {
	return o.NTests == o.NPassedTests
}

// OK reports whether every requested trial executed and passed.
func (o *Outcome[A, R]) OK() bool {
	return o.Requested == o.NTests && o.Requested == o.NPassedTests
}

package suites

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/weiihann/fntest/harness"
	"github.com/weiihann/fntest/tuple"
	"github.com/weiihann/fntest/workload"
)

// check is one deterministic case.
type check[A tuple.Bundle, R any] struct {
	name     string
	expected R
	args     A
}

// pin runs the deterministic cases of a suite and records their counts.
func pin[A tuple.Bundle, R any](
	opts Options,
	sum *Summary,
	fun tuple.Func[A, R],
	cases []check[A, R],
	tune func(*harness.FunctionTest[A, R]),
) bool {
	ft := harness.NewFunctionTest(fun)
	ft.Output = opts.Output
	ft.Verbosity = opts.Verbosity
	ft.Color = opts.Color
	ft.Logger = opts.Logger
	if opts.FunctionLineLength > 0 {
		ft.LineLength = opts.FunctionLineLength
	}
	if tune != nil {
		tune(ft)
	}

	for _, c := range cases {
		ft.Test(c.name, c.expected, c.args)
	}

	passed := ft.WriteSummary()
	sum.CasesRun = ft.NTests()
	sum.CasesPassed = ft.NPassedTests()

	return passed && ft.NTests() == len(cases)
}

// compare runs the randomized part of a suite and records its outcome.
func compare[A tuple.Bundle, R any](
	opts Options,
	sum *Summary,
	name string,
	rt *harness.RandomizedTest[A, R],
) bool {
	rt.Output = opts.Output
	rt.Verbosity = opts.Verbosity
	rt.Color = opts.Color
	rt.Logger = opts.Logger
	if opts.LineLength > 0 {
		rt.LineLength = opts.LineLength
	}

	out := rt.Test(name, opts.Trials)

	sum.Requested = out.Requested
	sum.Executed = out.NTests
	sum.TrialsOK = out.NPassedTests
	sum.Divergences = len(out.ErrorCases)
	sum.Fault = out.Fault

	return out.OK()
}

func insertionSort(xs []int) []int {
	out := slices.Clone(xs)

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

func sortedCopy(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)

	return out
}

func runSort(opts Options) Summary {
	var sum Summary

	fun := tuple.Apply1(insertionSort)

	pinned := pin(opts, &sum, fun, []check[tuple.T1[[]int], []int]{
		{name: "sort empty", expected: []int{}, args: tuple.Of1([]int{})},
		{name: "sort single", expected: []int{7}, args: tuple.Of1([]int{7})},
		{name: "sort reversed", expected: []int{1, 2, 3, 4}, args: tuple.Of1([]int{4, 3, 2, 1})},
		{name: "sort duplicates", expected: []int{-1, 2, 2, 5}, args: tuple.Of1([]int{2, 5, -1, 2})},
	}, nil)

	src := workload.NewSource(opts.Workload)
	rt := harness.NewRandomizedTest(fun, tuple.Apply1(sortedCopy),
		func(n int) tuple.T1[[]int] {
			return tuple.Of1(src.Ints(src.Magnitude(n), 1000))
		})

	sum.Passed = compare(opts, &sum, "sort", rt) && pinned

	return sum
}

func isqrt(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("isqrt of negative value %d", n)
	}
	if n < 2 {
		return n, nil
	}

	x, y := n, (n+1)/2
	for y < x {
		x, y = y, (y+n/y)/2
	}

	return x, nil
}

func floatIsqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

func runIsqrt(opts Options) Summary {
	var sum Summary

	fun := tuple.ApplyErr1(isqrt)

	pinned := pin(opts, &sum, fun, []check[tuple.T1[int], int]{
		{name: "isqrt 0", expected: 0, args: tuple.Of1(0)},
		{name: "isqrt 1", expected: 1, args: tuple.Of1(1)},
		{name: "isqrt 15", expected: 3, args: tuple.Of1(15)},
		{name: "isqrt 16", expected: 4, args: tuple.Of1(16)},
		{name: "isqrt 2^40", expected: 1 << 20, args: tuple.Of1(1 << 40)},
	}, func(ft *harness.FunctionTest[tuple.T1[int], int]) {
		ft.Equal = harness.Equal[int]
	})

	src := workload.NewSource(opts.Workload)
	rt := harness.NewRandomizedTest(fun, tuple.Apply1(floatIsqrt),
		func(n int) tuple.T1[int] {
			bits := min(src.Magnitude(n), 52)
			return tuple.Of1(src.Intn(1 << bits))
		})
	rt.Equal = harness.Equal[int]

	sum.Passed = compare(opts, &sum, "isqrt", rt) && pinned

	return sum
}

// reverseBytes is only correct for single-byte text.
func reverseBytes(s string) string {
	b := []byte(s)
	slices.Reverse(b)

	return string(b)
}

func reverseRunes(s string) string {
	r := []rune(s)
	slices.Reverse(r)

	return string(r)
}

const reverseAlphabet = "abcxyzé漢"

func runReverse(opts Options) Summary {
	var sum Summary

	fun := tuple.Apply1(reverseBytes)

	pinned := pin(opts, &sum, fun, []check[tuple.T1[string], string]{
		{name: "reverse empty", expected: "", args: tuple.Of1("")},
		{name: "reverse ascii", expected: "cba", args: tuple.Of1("abc")},
		{name: "reverse accented", expected: "olléh", args: tuple.Of1("héllo")},
	}, func(ft *harness.FunctionTest[tuple.T1[string], string]) {
		ft.Equal = harness.TextEqual
		ft.ResultString = strconv.Quote
	})

	src := workload.NewSource(opts.Workload)
	rt := harness.NewRandomizedTest(fun, tuple.Apply1(reverseRunes),
		func(n int) tuple.T1[string] {
			return tuple.Of1(src.String(src.Magnitude(n), reverseAlphabet))
		})
	rt.Equal = harness.TextEqual
	rt.ResultString = strconv.Quote
	rt.ArgsString = func(a tuple.T1[string]) string {
		return "( " + strconv.Quote(a.V1) + " )"
	}

	sum.Passed = compare(opts, &sum, "reverse", rt) && pinned

	return sum
}

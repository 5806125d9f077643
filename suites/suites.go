// Package suites bundles self-check suites run by the fntest CLI. Each suite
// pins a candidate implementation with deterministic cases, then compares it
// against a reference implementation on generated arguments.
package suites

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/weiihann/fntest/verbosity"
	"github.com/weiihann/fntest/workload"
)

// Options are shared by every suite in a run. Zero line lengths keep the
// harness defaults.
type Options struct {
	Trials    int
	Workload  workload.Config
	Output    io.Writer
	Verbosity verbosity.Level
	// LineLength applies to randomized runs and FunctionLineLength to
	// deterministic cases.
	LineLength         int
	FunctionLineLength int
	Color              bool
	Logger             *slog.Logger
}

// Summary is the outcome of one suite.
type Summary struct {
	Name string
	// Passed is true when every deterministic case passed and the
	// randomized run executed and passed all requested trials.
	Passed bool

	CasesRun    int
	CasesPassed int

	Requested   int
	Executed    int
	TrialsOK    int
	Divergences int
	Fault       error
}

// Suite is a named self-check.
type Suite struct {
	Name        string
	Description string
	// Demo suites carry a deliberately wrong candidate. They only run when
	// selected by name.
	Demo bool

	run func(opts Options) Summary
}

// Run executes the suite. A nil Output writes to stdout and a nil Logger
// discards.
func (s Suite) Run(opts Options) Summary {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts.Logger = opts.Logger.With(slog.String("suite", s.Name))

	sum := s.run(opts)
	sum.Name = s.Name

	return sum
}

var registry = []Suite{
	{
		Name:        "sort",
		Description: "insertion sort against the standard library sort",
		run:         runSort,
	},
	{
		Name:        "isqrt",
		Description: "Newton integer square root against a float-based reference",
		run:         runIsqrt,
	},
	{
		Name:        "reverse",
		Description: "byte-wise string reversal against rune-wise reversal",
		Demo:        true,
		run:         runReverse,
	},
}

// All returns every registered suite in registration order.
func All() []Suite {
	return slices.Clone(registry)
}

// Lookup finds a suite by name.
func Lookup(name string) (Suite, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}

	return Suite{}, false
}

// Names returns the names of every registered suite.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}

	return names
}

// Select resolves names into suites, keeping the given order. No names
// selects every suite except the demos.
func Select(names []string) ([]Suite, error) {
	if len(names) == 0 {
		var out []Suite
		for _, s := range registry {
			if !s.Demo {
				out = append(out, s)
			}
		}

		return out, nil
	}

	out := make([]Suite, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}

		s, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (available: %s)",
				name, strings.Join(Names(), ", "))
		}

		seen[name] = true
		out = append(out, s)
	}

	return out, nil
}

package harness

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/weiihann/fntest/report"
	"github.com/weiihann/fntest/tuple"
	"github.com/weiihann/fntest/verbosity"
)

// RandomizedTest compares a candidate function with a reference function
// over generated argument bundles.
//
// Ownership: the generator hands each bundle to the run and the run hands it
// to ArgsDeleter once both functions have been invoked with it, whether or
// not their results agreed. Results are passed to ResultDeleter only when
// they agreed; the results of an ErrorCase are left to the caller. A trial
// that faults before the argument deleter releases nothing more.
//
// Strategy functions (generator, comparator, stringifiers and deleters) are
// guarded like the functions under test: a panic in any of them is a fault
// that stops the run, and the trial it happened in is not counted.
//
// Exported fields are read once at the start of each Test call. Nil strategy
// fields fall back to their defaults.
type RandomizedTest[A tuple.Bundle, R any] struct {
	Fun       tuple.Func[A, R]
	Reference tuple.Func[A, R]
	Generate  Generator[A]

	Equal         Comparator[R]
	ArgsString    Stringer[A]
	ResultString  Stringer[R]
	ArgsDeleter   Deleter[A]
	ResultDeleter Deleter[R]

	Output     io.Writer
	Verbosity  verbosity.Level
	LineLength int
	Color      bool
	Logger     *slog.Logger
}

// NewRandomizedTest creates a RandomizedTest writing normal output to
// stdout.
func NewRandomizedTest[A tuple.Bundle, R any](
	fun, reference tuple.Func[A, R],
	generate Generator[A],
) *RandomizedTest[A, R] {
	return &RandomizedTest[A, R]{
		Fun:           fun,
		Reference:     reference,
		Generate:      generate,
		Equal:         DeepEqual[R],
		ArgsString:    BundleString[A],
		ResultString:  Sprint[R],
		ArgsDeleter:   func(A) {},
		ResultDeleter: func(R) {},
		Output:        os.Stdout,
		Verbosity:     verbosity.Normal,
		LineLength:    50,
		Logger:        discardLogger(),
	}
}

// run is the configuration of a single Test call, with defaults applied.
type run[A tuple.Bundle, R any] struct {
	RandomizedTest[A, R]

	out *report.Printer
}

func (t *RandomizedTest[A, R]) settle() *run[A, R] {
	r := &run[A, R]{RandomizedTest: *t}

	if r.Equal == nil {
		r.Equal = DeepEqual[R]
	}
	if r.ArgsString == nil {
		r.ArgsString = BundleString[A]
	}
	if r.ResultString == nil {
		r.ResultString = Sprint[R]
	}
	if r.ArgsDeleter == nil {
		r.ArgsDeleter = func(A) {}
	}
	if r.ResultDeleter == nil {
		r.ResultDeleter = func(R) {}
	}

	r.Logger = orDiscard(r.Logger)
	r.out = report.NewPrinter(sink(r.Output), r.Verbosity, r.Color)

	return r
}

// Test runs n trials and reports the aggregate outcome.
//
// Each trial generates a bundle, invokes the reference and then the
// candidate with it, and compares the results. Only the candidate's
// duration is accounted. The first fault, in either function or in any
// strategy, stops the run; the faulted trial is not counted and what was
// collected so far is returned.
func (t *RandomizedTest[A, R]) Test(name string, n int) *Outcome[A, R] {
	n = max(n, 0)
	r := t.settle()
	st := r.out.Style()

	ret := &Outcome[A, R]{Requested: n}

	header := report.RandomizedHeader(name)
	progress := report.NewProgress(r.LineLength-len(header), n)

	r.out.Log(verbosity.Normal, header)

	r.Logger.Debug("randomized test started",
		slog.String("test", name),
		slog.Int("trials", n),
	)

	generate := tuple.Func[int, A](func(total int) (A, error) {
		return r.Generate(total), nil
	})

	for i := 0; i < n; i++ {
		args, _, err := tuple.Call(generate, n)
		if err != nil {
			ret.Fault = err
			r.out.Log(verbosity.Normal,
				report.Exception(st, faultType(err), err.Error()))
			r.logFault(name, i, err)

			break
		}

		r.out.Log(verbosity.Normal, progress.Step())

		tr, err := r.trial(args)
		if err != nil {
			ret.Fault = err
			r.out.Log(verbosity.Normal, r.exception(st, err, args, tr.released))
			r.logFault(name, i, err)

			break
		}

		if tr.matched {
			ret.NPassedTests++
		} else {
			ret.ErrorCases = append(ret.ErrorCases, tr.errorCase)
		}

		ret.AccumulatedDuration += tr.elapsed
		ret.NTests++
	}

	if ret.NTests > 0 {
		ret.AverageDuration = ret.AccumulatedDuration / time.Duration(ret.NTests)
	}

	r.out.Log(verbosity.Normal, report.RandomizedSummary(st, ret.OK(),
		ret.NPassedTests, ret.NTests,
		ret.AverageDuration, ret.AccumulatedDuration))

	for i, ec := range ret.ErrorCases {
		r.out.Log(verbosity.Verbose, report.ErrorCase(i,
			ec.WrongText, ec.ReferenceText, ec.ArgsText))
	}

	r.Logger.Info("randomized test finished",
		slog.String("test", name),
		slog.Int("requested", ret.Requested),
		slog.Int("executed", ret.NTests),
		slog.Int("passed", ret.NPassedTests),
		slog.Int("error_cases", len(ret.ErrorCases)),
		slog.Duration("accumulated", ret.AccumulatedDuration),
	)

	return ret
}

// trialResult is what one completed trial contributes to the outcome.
type trialResult[A, R any] struct {
	matched   bool
	elapsed   time.Duration
	errorCase ErrorCase[A, R]
	// released is set once the argument deleter has been called.
	released bool
}

// trial invokes both functions with args, compares their results and runs
// the deleters. Every strategy call happens here, so a fault leaves the
// outcome untouched.
func (r *run[A, R]) trial(args A) (tr trialResult[A, R], err error) {
	reference, _, err := tuple.Call(r.Reference, args)
	if err != nil {
		return tr, err
	}

	result, elapsed, err := tuple.Call(r.Fun, args)
	if err != nil {
		return tr, err
	}

	err = protect(func() {
		tr.matched = r.Equal(result, reference)

		if tr.matched {
			r.ResultDeleter(result)
			r.ResultDeleter(reference)
		} else {
			tr.errorCase = ErrorCase[A, R]{
				Wrong:         result,
				Reference:     reference,
				Args:          args,
				ArgsText:      r.ArgsString(args),
				WrongText:     r.ResultString(result),
				ReferenceText: r.ResultString(reference),
			}
		}

		tr.released = true
		r.ArgsDeleter(args)
	})
	if err != nil {
		return tr, err
	}

	tr.elapsed = elapsed

	return tr, nil
}

// exception renders a trial fault. Arguments are shown unless they were
// already handed to the deleter or cannot be rendered.
func (r *run[A, R]) exception(st report.Style, err error, args A, released bool) string {
	if !released {
		if text, serr := render(r.ArgsString, args); serr == nil {
			return report.ExceptionWithArgs(st, faultType(err), err.Error(), text)
		}
	}

	return report.Exception(st, faultType(err), err.Error())
}

func (r *run[A, R]) logFault(name string, trial int, err error) {
	r.Logger.Warn("randomized test stopped by fault",
		slog.String("test", name),
		slog.Int("trial", trial),
		slog.String("error", err.Error()),
	)
}

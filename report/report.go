// Package report formats tester diagnostics into a plain text stream.
//
// Formatting functions are pure and return strings; a Printer decides,
// based on its verbosity level, whether a piece of text reaches the sink.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/weiihann/fntest/verbosity"
)

// Printer writes text to a sink when the active verbosity allows it.
type Printer struct {
	w     io.Writer
	level verbosity.Level
	style Style
}

// NewPrinter creates a Printer for w. When color is set, verdict words are
// styled with ANSI escape sequences.
func NewPrinter(w io.Writer, level verbosity.Level, color bool) *Printer {
	return &Printer{
		w:     w,
		level: level,
		style: NewStyle(w, color),
	}
}

// Style returns the style used for verdict words.
func (p *Printer) Style() Style {
	return p.style
}

// Log writes s if the printer's level allows messages requiring need.
// Write errors are ignored: the report is best-effort diagnostics.
func (p *Printer) Log(need verbosity.Level, s string) {
	if !p.level.Allows(need) || s == "" {
		return
	}

	io.WriteString(p.w, s)
}

// Logf is Log with fmt formatting.
func (p *Printer) Logf(need verbosity.Level, format string, args ...any) {
	if !p.level.Allows(need) {
		return
	}

	fmt.Fprintf(p.w, format, args...)
}

// PadLabel resizes label to exactly width characters, filling with dots or
// truncating. Widths below zero are treated as zero.
func PadLabel(label string, width int) string {
	width = max(width, 0)

	r := []rune(label)
	if len(r) >= width {
		return string(r[:width])
	}

	return label + strings.Repeat(".", width-len(r))
}

// FunctionLabel is the line prefix of a deterministic test.
func FunctionLabel(name string, width int) string {
	return PadLabel("TESTING "+name+": ", width) + " "
}

// FunctionVerdict is the rest of a deterministic test line.
func FunctionVerdict(st Style, passed bool, d time.Duration) string {
	if passed {
		return fmt.Sprintf("%s (%d ms)\n", st.Pass("OK"), d.Milliseconds())
	}

	return fmt.Sprintf("%s (%d ms)\n", st.Fail("FAILED"), d.Milliseconds())
}

// FunctionDetail shows the actual and expected values of a failed test.
func FunctionDetail(actual, expected string) string {
	return " RESULT:   " + actual + "\n" +
		" EXPECTED: " + expected + "\n" +
		".\n"
}

// Exception describes a fault raised by a function under test.
func Exception(st Style, typeName, message string) string {
	return st.Fail("EXCEPTION") + "\n" + typeName + ":\n" + message + "\n"
}

// ExceptionWithArgs is Exception followed by the arguments of the call.
func ExceptionWithArgs(st Style, typeName, message, args string) string {
	return Exception(st, typeName, message) + "Arguments: " + args + "\n"
}

// SeriesSummary is the closing line of a deterministic test series.
func SeriesSummary(
	st Style,
	allPassed bool,
	passed, total int,
	accumulated time.Duration,
) string {
	var head string
	if allPassed {
		head = st.Pass("+++ TEST SERIES PASSED +++  :)")
	} else {
		head = st.Fail("--- SOME TESTS FAILED  ---  :(((")
	}

	return fmt.Sprintf("%s       (%d/%d)   (accumulated: %d ms)\n\n",
		head, passed, total, accumulated.Milliseconds())
}

// RandomizedHeader is the line prefix of a randomized differential run.
func RandomizedHeader(name string) string {
	return "RandomizedFunctionTest: " + name + ": "
}

// RandomizedSummary closes the progress line of a randomized run.
func RandomizedSummary(
	st Style,
	ok bool,
	passed, total int,
	average, accumulated time.Duration,
) string {
	word := st.Pass("OK")
	if !ok {
		word = st.Fail("FAILURE")
	}

	return fmt.Sprintf(" %s (%d/%d) (%d µs avg, %d µs total)\n",
		word, passed, total,
		average.Microseconds(), accumulated.Microseconds())
}

// ErrorCase renders one diverging trial of a randomized run.
func ErrorCase(index int, wrong, reference, args string) string {
	return fmt.Sprintf(" ERROR CASE %d:\n"+
		"   wrong result:        %s\n"+
		"   reference result:    %s\n"+
		"   args:                %s\n"+
		" .\n",
		index, wrong, reference, args)
}

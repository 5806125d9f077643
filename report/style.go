package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Style colors verdict words. The zero Style leaves text untouched.
type Style struct {
	out *termenv.Output
}

// NewStyle returns a Style writing ANSI colors for w when enabled is true.
func NewStyle(w io.Writer, enabled bool) Style {
	if !enabled {
		return Style{}
	}

	return Style{out: termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))}
}

// Pass styles a word announcing success.
func (s Style) Pass(word string) string {
	return s.paint(word, "2")
}

// Fail styles a word announcing a failure or fault.
func (s Style) Fail(word string) string {
	return s.paint(word, "1")
}

func (s Style) paint(word, color string) string {
	if s.out == nil {
		return word
	}

	return s.out.String(word).Foreground(s.out.Color(color)).Bold().String()
}

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UseColor resolves mode for w. In auto mode color is used only when w is a
// terminal and NO_COLOR is unset.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseColorMode converts a mode name into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return ColorAuto, fmt.Errorf("unknown color mode %q: must be one of auto, always, never", s)
}

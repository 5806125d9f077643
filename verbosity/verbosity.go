// Package verbosity defines how much a tester writes to its output sink.
package verbosity

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Level is an ordered amount of output. Higher levels include everything
// emitted by lower ones.
type Level int

const (
	Silent  Level = iota // nothing is written
	Normal               // progress, verdicts and summaries
	Verbose              // Normal plus per-failure detail
)

var _ pflag.Value = (*Level)(nil)

var levelNames = [...]string{
	Silent:  "silent",
	Normal:  "normal",
	Verbose: "verbose",
}

// Allows reports whether a message requiring min is emitted at level l.
func (l Level) Allows(min Level) bool {
	return l >= min
}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// Parse converts a level name (case-insensitive) or its number into a Level.
func Parse(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for l, n := range levelNames {
		if name == n || name == fmt.Sprint(l) {
			return Level(l), nil
		}
	}

	return Normal, fmt.Errorf("unknown verbosity %q: must be one of %s",
		s, strings.Join(levelNames[:], ", "))
}

// Set implements pflag.Value.
func (l *Level) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "verbosity"
}

// UnmarshalText lets levels be read from TOML and YAML config files.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

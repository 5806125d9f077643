// Package workload generates deterministic argument data for randomized
// tests. A Source is seeded from a Config, so two sources with the same
// Config produce the same sequence of values.
//
// Input sizes are drawn by Magnitude from one of three distributions:
// uniform, power-law (many small inputs, a long tail of large ones) and
// exponential (median around a quarter of the upper bound).
package workload

import (
	"fmt"
	"math"
	mrand "math/rand"
	"strings"
)

// Distribution names accepted by Config.
const (
	Uniform     = "uniform"
	PowerLaw    = "power-law"
	Exponential = "exponential"
)

// Distributions lists the accepted distribution names.
var Distributions = []string{Uniform, PowerLaw, Exponential}

// Config controls how a Source draws values.
type Config struct {
	Seed         int64
	Distribution string
	// MinSize and MaxSize bound Magnitude. A MaxSize of zero means the
	// bound is the total trial count passed to Magnitude.
	MinSize int
	MaxSize int
}

// Validate checks the distribution name and size bounds.
func (c Config) Validate() error {
	switch c.Distribution {
	case "", Uniform, PowerLaw, Exponential:
	default:
		return fmt.Errorf("unknown distribution %q (want one of %s)",
			c.Distribution, strings.Join(Distributions, ", "))
	}

	if c.MinSize < 0 {
		return fmt.Errorf("min size must be non-negative, got %d", c.MinSize)
	}

	if c.MaxSize != 0 && c.MaxSize < c.MinSize {
		return fmt.Errorf("max size %d is below min size %d", c.MaxSize, c.MinSize)
	}

	return nil
}

// Source produces deterministic values from a Config. It is not safe for
// concurrent use.
type Source struct {
	cfg Config
	rng *mrand.Rand
}

// NewSource creates a Source from the given Config.
func NewSource(cfg Config) *Source {
	return &Source{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Config returns the configuration the source was created with.
func (s *Source) Config() Config {
	return s.cfg
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return s.rng.Intn(n)
}

// Range returns a value in [lo, hi].
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Ints returns size values in [0, bound).
func (s *Source) Ints(size, bound int) []int {
	out := make([]int, max(size, 0))
	for i := range out {
		out[i] = s.Intn(bound)
	}

	return out
}

// String returns size runes drawn from alphabet.
func (s *Source) String(size int, alphabet string) string {
	runes := []rune(alphabet)
	if len(runes) == 0 || size <= 0 {
		return ""
	}

	var b strings.Builder
	for range size {
		b.WriteRune(runes[s.rng.Intn(len(runes))])
	}

	return b.String()
}

// Magnitude draws an input size for a run of total trials, following the
// configured distribution and clamped to the size bounds.
func (s *Source) Magnitude(total int) int {
	lo := s.cfg.MinSize

	hi := s.cfg.MaxSize
	if hi == 0 {
		hi = total
	}

	hi = max(hi, lo)

	switch s.cfg.Distribution {
	case PowerLaw:
		alpha := 1.5
		u := s.rng.Float64()

		size := float64(max(lo, 1)) / math.Pow(1-u, 1/alpha)
		if size > float64(hi) {
			size = float64(hi)
		}

		return max(lo, int(size))

	case Exponential:
		lambda := math.Log(2) / math.Max(float64(hi)/4, 1)
		u := s.rng.Float64()

		size := -math.Log(1-u) / lambda
		clamped := math.Max(float64(lo), math.Min(size, float64(hi)))

		return int(clamped)

	default:
		return s.Range(lo, hi)
	}
}

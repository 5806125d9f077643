package workload

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSourceDeterministic(t *testing.T) {
	cfg := Config{
		Seed:         42,
		Distribution: Uniform,
		MinSize:      1,
		MaxSize:      20,
	}

	draw := func() []int {
		src := NewSource(cfg)

		var out []int
		for range 50 {
			out = append(out, src.Magnitude(1000))
			out = append(out, src.Intn(1000))
		}
		out = append(out, src.Ints(10, 7)...)

		return out
	}

	first, second := draw(), draw()
	if !slices.Equal(first, second) {
		t.Error("sources with the same seed diverged")
	}

	other := NewSource(Config{Seed: 43, Distribution: Uniform, MinSize: 1, MaxSize: 20})
	same := true
	for i := range 50 {
		if other.Magnitude(1000) != first[2*i] {
			same = false
		}
		other.Intn(1000)
	}

	if same {
		t.Error("different seeds produced the same magnitudes")
	}
}

func TestMagnitudeBounds(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		total int
		lo    int
		hi    int
	}{
		{
			name:  "uniform fixed bounds",
			cfg:   Config{Seed: 1, Distribution: Uniform, MinSize: 3, MaxSize: 9},
			total: 1000,
			lo:    3,
			hi:    9,
		},
		{
			name:  "uniform bound from total",
			cfg:   Config{Seed: 2, Distribution: Uniform},
			total: 25,
			lo:    0,
			hi:    25,
		},
		{
			name:  "power-law",
			cfg:   Config{Seed: 3, Distribution: PowerLaw, MinSize: 1, MaxSize: 1000},
			total: 10,
			lo:    1,
			hi:    1000,
		},
		{
			name:  "exponential",
			cfg:   Config{Seed: 4, Distribution: Exponential, MinSize: 2, MaxSize: 64},
			total: 10,
			lo:    2,
			hi:    64,
		},
		{
			name:  "exponential small bound",
			cfg:   Config{Seed: 5, Distribution: Exponential, MaxSize: 2},
			total: 10,
			lo:    0,
			hi:    2,
		},
		{
			name:  "empty default",
			cfg:   Config{Seed: 6},
			total: 0,
			lo:    0,
			hi:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.cfg)

			for range 2000 {
				m := src.Magnitude(tt.total)
				if m < tt.lo || m > tt.hi {
					t.Fatalf("magnitude %d outside [%d, %d]", m, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestDistributionsShape(t *testing.T) {
	const draws = 5000

	median := func(dist string) int {
		src := NewSource(Config{
			Seed:         42,
			Distribution: dist,
			MinSize:      1,
			MaxSize:      1000,
		})

		sizes := make([]int, draws)
		for i := range sizes {
			sizes[i] = src.Magnitude(draws)
		}
		slices.Sort(sizes)

		return sizes[draws/2]
	}

	uniform := median(Uniform)
	powerLaw := median(PowerLaw)
	exponential := median(Exponential)

	if uniform < 400 || uniform > 600 {
		t.Errorf("uniform median = %d, want around 500", uniform)
	}
	if powerLaw > 10 {
		t.Errorf("power-law median = %d, want small", powerLaw)
	}
	if exponential < 150 || exponential > 350 {
		t.Errorf("exponential median = %d, want around 250", exponential)
	}
}

func TestIntsAndString(t *testing.T) {
	src := NewSource(Config{Seed: 7})

	ints := src.Ints(100, 5)
	if len(ints) != 100 {
		t.Fatalf("len = %d, want 100", len(ints))
	}
	for _, v := range ints {
		if v < 0 || v >= 5 {
			t.Fatalf("value %d outside [0, 5)", v)
		}
	}

	if got := src.Ints(-1, 5); len(got) != 0 {
		t.Errorf("negative size gave %d values", len(got))
	}

	s := src.String(40, "aé")
	if utf8.RuneCountInString(s) != 40 {
		t.Errorf("rune count = %d, want 40", utf8.RuneCountInString(s))
	}
	if strings.Trim(s, "aé") != "" {
		t.Errorf("unexpected runes in %q", s)
	}

	if src.String(5, "") != "" {
		t.Error("empty alphabet should give empty string")
	}
	if src.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if src.Range(4, 4) != 4 {
		t.Error("degenerate range should return its bound")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero", cfg: Config{}},
		{name: "power-law", cfg: Config{Distribution: PowerLaw, MinSize: 1, MaxSize: 10}},
		{name: "max from total", cfg: Config{Distribution: Uniform, MinSize: 5}},
		{name: "unknown", cfg: Config{Distribution: "normal"}, wantErr: true},
		{name: "negative min", cfg: Config{MinSize: -1}, wantErr: true},
		{name: "inverted", cfg: Config{MinSize: 10, MaxSize: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package report

import "strings"

// Progress spreads a fixed number of dots across a known number of steps.
// The fractional share of each step is carried to the next one, so after
// the last step exactly total dots have been handed out.
type Progress struct {
	total   int
	steps   int
	carry   int
	emitted int
}

// NewProgress creates a Progress that emits total dots over steps calls to
// Step. Negative totals emit nothing.
func NewProgress(total, steps int) *Progress {
	return &Progress{total: max(total, 0), steps: steps}
}

// Step returns the dots owed for one step.
func (p *Progress) Step() string {
	if p.steps <= 0 {
		return ""
	}

	p.carry += p.total
	n := p.carry / p.steps
	p.carry -= n * p.steps
	p.emitted += n

	return strings.Repeat(".", n)
}

// Emitted returns the number of dots handed out so far.
func (p *Progress) Emitted() int {
	return p.emitted
}

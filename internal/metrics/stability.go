package metrics

import (
	"github.com/san-kum/sketchlab/internal/dynamo"
)

// StepBound reports the fraction of steps whose largest component change
// stayed within threshold. Invalid states always count as violations.
type StepBound struct {
	name       string
	threshold  float64
	prev       dynamo.State
	violations int
	samples    int
}

func NewStepBound(threshold float64) *StepBound {
	return &StepBound{
		name:      "step_bound",
		threshold: threshold,
	}
}

func (s *StepBound) Name() string {
	return s.name
}

func (s *StepBound) Observe(x dynamo.State, t float64) {
	if s.prev == nil {
		s.prev = x.Clone()
		return
	}
	s.samples++
	if !x.IsValid() || x.MaxAbsDiff(s.prev) > s.threshold {
		s.violations++
	}
	s.prev = x.Clone()
}

func (s *StepBound) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *StepBound) Reset() {
	s.prev = nil
	s.violations = 0
	s.samples = 0
}

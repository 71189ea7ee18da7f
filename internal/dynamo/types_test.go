package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()
	c[0] = 42

	if s[0] != 1 {
		t.Errorf("clone shares backing array: original now %f", s[0])
	}
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"finite", State{0, 1, -1}, true},
		{"empty", State{}, true},
		{"nan", State{0, math.NaN()}, false},
		{"inf", State{math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		if got := tt.state.IsValid(); got != tt.valid {
			t.Errorf("%s: expected valid=%v, got %v", tt.name, tt.valid, got)
		}
	}
}

func TestStateMaxAbsDiff(t *testing.T) {
	a := State{1, 2, 3}
	b := State{1, 2.5, 1}

	if d := a.MaxAbsDiff(b); math.Abs(d-2) > 1e-12 {
		t.Errorf("expected 2, got %f", d)
	}
	if d := a.MaxAbsDiff(State{1}); d != 0 {
		t.Errorf("expected 0 for shorter vector prefix, got %f", d)
	}
}

type line struct{}

func (line) Derive(x State, u Control, t float64) State { return State{1} }
func (line) StateDim() int                              { return 1 }
func (line) ControlDim() int                            { return 0 }

func TestCheckDim(t *testing.T) {
	if err := CheckDim(line{}, State{0}); err != nil {
		t.Errorf("expected matching state to pass, got %v", err)
	}
	if err := CheckDim(line{}, State{0, 1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

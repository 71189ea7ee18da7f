package pendulum

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/sketchlab/internal/dynamo"
	"github.com/san-kum/sketchlab/internal/render"
)

func TestDefaultFieldSeeds(t *testing.T) {
	f, err := NewField(DefaultOptions())
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	if len(f.Bobs) != 4 {
		t.Fatalf("expected 4 pendulums, got %d", len(f.Bobs))
	}
	for i, b := range f.Bobs {
		want := math.Pi/4 + 0.1*float64(i)
		if math.Abs(b.State[0]-want) > 1e-12 {
			t.Errorf("pendulum %d: expected theta1 %f, got %f", i, want, b.State[0])
		}
		if b.State[1] != math.Pi/8 || b.State[2] != 0.1 || b.State[3] != 0 {
			t.Errorf("pendulum %d: unexpected shared seed %v", i, b.State)
		}
	}

	first, _ := render.ParsePalette(DefaultPalette[:1])
	if f.Bobs[0].Color != first[0] {
		t.Errorf("expected first palette colour, got %v", f.Bobs[0].Color)
	}
}

func TestBobGoldenStep(t *testing.T) {
	b := NewBob(math.Pi/4, math.Pi/8, 0.1, 0, render.White)

	if err := b.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}

	golden := dynamo.State{0.7953981633974483, math.Pi / 8, 0.09043989051172366, 0.005388238593499658}
	for i := range golden {
		if math.Abs(b.State[i]-golden[i]) > 1e-12 {
			t.Errorf("component %d: expected %.16f, got %.16f", i, golden[i], b.State[i])
		}
	}
	if b.Steps() != 1 {
		t.Errorf("expected 1 step, got %d", b.Steps())
	}
}

func TestPendulumsEvolveIndependently(t *testing.T) {
	f, err := NewField(DefaultOptions())
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	ref, _ := NewField(DefaultOptions())

	// disturb one pendulum only
	f.Bobs[0].State[0] = 3.0
	f.Bobs[0].System.L1 = 50

	for step := 0; step < 50; step++ {
		f.Update()
		ref.Update()
	}

	for i := 1; i < len(f.Bobs); i++ {
		if d := f.Bobs[i].State.MaxAbsDiff(ref.Bobs[i].State); d != 0 {
			t.Errorf("pendulum %d drifted by %g after touching pendulum 0", i, d)
		}
	}
	if f.Bobs[0].State.MaxAbsDiff(ref.Bobs[0].State) == 0 {
		t.Error("expected disturbed pendulum to differ from the reference")
	}
}

// The system is chaotic, so long trajectories are not pinned. Each step
// must still move the angles by exactly the pre-step velocity times dt and
// stay small.
func TestStepChangeIsBounded(t *testing.T) {
	f, err := NewField(DefaultOptions())
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	for step := 0; step < 200; step++ {
		before := make([]dynamo.State, len(f.Bobs))
		for i, b := range f.Bobs {
			before[i] = b.State.Clone()
		}
		f.Update()
		for i, b := range f.Bobs {
			if !b.State.IsValid() {
				t.Fatalf("pendulum %d invalid at step %d", i, step)
			}
			for k := 0; k < 2; k++ {
				dTheta := b.State[k] - before[i][k]
				if math.Abs(dTheta-before[i][k+2]*0.1) > 1e-12 {
					t.Fatalf("pendulum %d step %d: angle %d moved %g, expected %g", i, step, k, dTheta, before[i][k+2]*0.1)
				}
				if math.Abs(dTheta) > 0.5 {
					t.Fatalf("pendulum %d step %d: angle change %g too large", i, step, dTheta)
				}
			}
		}
	}
}

func TestFieldFreezesDivergedPendulum(t *testing.T) {
	f, err := NewField(DefaultOptions())
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	f.Bobs[1].State[2] = math.Inf(1)

	err = f.Bobs[1].Update()
	if !errors.Is(err, dynamo.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	f.Update()
	if !f.Frozen(1) {
		t.Error("expected pendulum 1 to be frozen")
	}
	if f.Frozen(0) {
		t.Error("expected pendulum 0 to keep running")
	}

	steps := f.Bobs[1].Steps()
	f.Update()
	if f.Bobs[1].Steps() != steps {
		t.Error("expected frozen pendulum to stop stepping")
	}
}

func TestNewFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero count", func(o *Options) { o.Count = 0 }},
		{"zero dt", func(o *Options) { o.Dt = 0 }},
		{"bad colour", func(o *Options) { o.Palette = []string{"pink"} }},
		{"unknown integrator", func(o *Options) { o.Integrator = "verlet" }},
		{"zero length", func(o *Options) { o.L2 = 0 }},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)
		if _, err := NewField(opts); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestFieldWithRK4(t *testing.T) {
	opts := DefaultOptions()
	opts.Integrator = "rk4"
	f, err := NewField(opts)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	euler, _ := NewField(DefaultOptions())
	f.Update()
	euler.Update()

	if f.Bobs[0].State.MaxAbsDiff(euler.Bobs[0].State) == 0 {
		t.Error("expected rk4 step to differ from euler")
	}
}

func TestBobRejectsWrongDimension(t *testing.T) {
	b := NewBob(0, 0, 0, 0, render.White)
	b.State = dynamo.State{0, 0}

	err := b.Update()
	if !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	var se *dynamo.StepError
	if !errors.As(err, &se) || se.Step != 0 {
		t.Errorf("expected StepError at step 0, got %v", err)
	}
}

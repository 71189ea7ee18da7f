package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sketchlab/internal/integrators"
	"github.com/san-kum/sketchlab/internal/pendulum"
)

// Exponent is the estimate for one pendulum of a field.
type Exponent struct {
	Index  int
	Theta1 float64
	Lambda float64
}

// FieldExponents estimates the largest Lyapunov exponent of every pendulum a
// field built from opts would contain, one goroutine per pendulum, bounded
// by GOMAXPROCS. Each worker owns its integrator since steppers keep scratch
// buffers.
func FieldExponents(ctx context.Context, opts pendulum.Options, steps int, eps float64) ([]Exponent, error) {
	field, err := pendulum.NewField(opts)
	if err != nil {
		return nil, err
	}

	out := make([]Exponent, len(field.Bobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, b := range field.Bobs {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			integ, err := integrators.New(opts.Integrator)
			if err != nil {
				return err
			}
			out[i] = Exponent{
				Index:  i,
				Theta1: b.State[0],
				Lambda: Lyapunov(b.System, integ, b.State, opts.Dt, steps, eps),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

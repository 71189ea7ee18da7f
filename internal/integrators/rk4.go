package integrators

import "github.com/san-kum/sketchlab/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta method. It is not used by
// the default sketches and exists to compare energy drift against Euler.
type RK4 struct {
	k       [4]dynamo.State
	scratch dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.scratch) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.scratch = make(dynamo.State, n)
}

// axpy writes x + a*d into dst.
func axpy(dst, x dynamo.State, a float64, d dynamo.State) {
	for i := range dst {
		dst[i] = x[i] + a*d[i]
	}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	r.resize(len(x))

	copy(r.k[0], dyn.Derive(x, u, t))

	axpy(r.scratch, x, dt/2, r.k[0])
	copy(r.k[1], dyn.Derive(r.scratch, u, t+dt/2))

	axpy(r.scratch, x, dt/2, r.k[1])
	copy(r.k[2], dyn.Derive(r.scratch, u, t+dt/2))

	axpy(r.scratch, x, dt, r.k[2])
	copy(r.k[3], dyn.Derive(r.scratch, u, t+dt))

	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt/6*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return result
}

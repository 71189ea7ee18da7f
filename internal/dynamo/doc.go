// Package dynamo provides the numeric primitives shared by the sketches.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - [Hamiltonian]: systems that can report their total energy
//   - [Configurable]: systems with named, tunable parameters
//
// # Example
//
//	dyn := physics.NewDoublePendulum()
//	integ := integrators.NewEuler()
//	x = integ.Step(dyn, x, nil, 0, physics.DefaultDt)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. Sketches own their
// state and step it from a single frame loop.
package dynamo

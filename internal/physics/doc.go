// Package physics provides the dynamical system models driven by the sketches.
//
// [DoublePendulum] implements [dynamo.System], [dynamo.Hamiltonian] and
// [dynamo.Configurable]. Its defaults (m=10, L=100, g=10, dt=0.1) are in
// screen units rather than SI, so a pendulum fills a 600x600 canvas.
//
// # Energy Conservation
//
// The model itself is conservative, but the sketches step it with forward
// Euler, which visibly gains energy over time:
//
//	dp := physics.NewDoublePendulum()
//	e0 := dp.Energy(x)
package physics

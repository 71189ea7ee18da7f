// Package analysis measures how chaotic a pendulum field is.
//
// [Lyapunov] estimates the largest Lyapunov exponent of one system by
// following a twin trajectory a small distance away. [FieldExponents] runs
// the estimate for every pendulum of a field concurrently. A positive
// exponent means nearby starts separate exponentially, which is why the
// field's pendulums, seeded only 0.1 rad apart, end up on unrelated paths.
package analysis

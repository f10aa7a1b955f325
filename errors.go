package linesearch

import "fmt"

// NonDescentError signals that phi'(0) >= 0 (or an internal invariant
// requiring a negative slope was violated): the caller's direction is not
// a descent direction. Fatal to the call.
type NonDescentError[T Real] struct {
	SlopeA T // offending slope at the lower bracket endpoint (or phi'(0))
	SlopeB T // slope at the upper bracket endpoint, if one exists; else NaN
}

func (e *NonDescentError[T]) Error() string {
	return fmt.Sprintf("linesearch: not a descent direction (slopeA=%v, slopeB=%v)", e.SlopeA, e.SlopeB)
}

// NonFiniteInitialError signals that phi(0) or phi'(0) is not finite.
// Fatal to the call.
type NonFiniteInitialError[T Real] struct {
	Value T
	Slope T
}

func (e *NonFiniteInitialError[T]) Error() string {
	return fmt.Sprintf("linesearch: phi(0)=%v or phi'(0)=%v is not finite", e.Value, e.Slope)
}

// LineSearchError signals that a line search exhausted its
// MaxIterations budget without satisfying an acceptance test (or, for
// BackTracking, shrank the step below AlphaMin). Alpha carries the step
// the search had reached when it stopped (the last trial, or an endpoint
// of the current bracket) so the outer optimizer can still take a
// (possibly suboptimal) step if it chooses.
type LineSearchError[T Real] struct {
	Alpha      T
	Iterations int
}

func (e *LineSearchError[T]) Error() string {
	return fmt.Sprintf("linesearch: no acceptable step found after %d iterations (last alpha=%v)", e.Iterations, e.Alpha)
}

// Result is what a successful LineSearcher call returns. Boundary and
// FiniteExhausted are not errors: both are documented, inspectable
// outcomes distinct from ordinary Wolfe-satisfying success.
type Result[T Real] struct {
	Alpha T
	Value T
	Slope T

	// Boundary is true when a step at the upper limit on alpha (AlphaMax,
	// or for HagerZhang a lower limit found where phi stops being finite)
	// was accepted with a still negative slope: the feasible region ended
	// before a Wolfe point was reached, rather than the line search actually converging.
	Boundary bool

	// FiniteExhausted is true when NonFiniteExhausted recovery kicked in:
	// the returned Alpha is a "best safe" fallback (often 0 or a prior
	// finite trial), not a Wolfe-satisfying point.
	FiniteExhausted bool

	Iterations int
}

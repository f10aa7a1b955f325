package linesearch

// Func evaluates the outer objective f at a point.
type Func[T Real] func(x []T) T

// GradFunc evaluates the gradient of f at a point, writing the result
// into grad. GradFunc must not modify x.
type GradFunc[T Real] func(x []T, grad []T)

// Objective wraps an outer vector objective as the scalar restriction
// phi(alpha) := f(x + alpha*s) along a fixed ray, plus its derivative
// phi'(alpha) := <grad f(x + alpha*s), s>. It writes into a caller-owned
// scratch buffer and guarantees exactly one objective evaluation per
// call; it never mutates x or s.
type Objective[T Real] struct {
	f  Func[T]
	df GradFunc[T]

	x, s, xNew []T
	grad       []T // scratch for the gradient evaluation
}

// NewObjective builds an Objective along direction s from point x, using
// xNew as the shared scratch buffer for trial points. f and df are
// required; a line search that never needs one of them (e.g. a
// derivative-free acceptance test) may still pass a stub that panics if
// called.
func NewObjective[T Real](f Func[T], df GradFunc[T], x, s, xNew []T) *Objective[T] {
	return &Objective[T]{
		f: f, df: df,
		x: x, s: s, xNew: xNew,
		grad: make([]T, len(x)),
	}
}

// point writes x + alpha*s into the shared scratch buffer and returns it.
// Repeated calls invalidate the contents returned by prior calls.
func (o *Objective[T]) point(alpha T) []T {
	o.xNew = axpyTo(o.xNew, o.x, alpha, o.s)
	return o.xNew
}

// Value returns phi(alpha) = f(x + alpha*s).
func (o *Objective[T]) Value(alpha T) T {
	return o.f(o.point(alpha))
}

// Slope returns phi'(alpha) = <grad f(x + alpha*s), s>.
func (o *Objective[T]) Slope(alpha T) T {
	xNew := o.point(alpha)
	o.df(xNew, o.grad)
	return dot(o.grad, o.s)
}

// ValueSlope is the fused evaluation (phi, phi')(alpha), one objective
// evaluation.
func (o *Objective[T]) ValueSlope(alpha T) (T, T) {
	xNew := o.point(alpha)
	v := o.f(xNew)
	o.df(xNew, o.grad)
	return v, dot(o.grad, o.s)
}

// GradNorms evaluates the full gradient at x+alpha*s and returns its
// infinity and Euclidean norms, for the InitialHagerZhang I0 case, which
// needs the gradient itself, not just its directional derivative along s.
func (o *Objective[T]) GradNorms(alpha T) (normInfG, norm2G T) {
	xNew := o.point(alpha)
	o.df(xNew, o.grad)
	return normInf(o.grad), norm2(o.grad)
}

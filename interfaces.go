package linesearch

// LineSearcher is the contract shared by HagerZhang, BackTracking,
// MoreThuente, StrongWolfe and Static: all expose the same signature.
// c is the initial trial step, phi0/dphi0 are phi(0)/phi'(0), and
// mayTerminate is the flag an initial-step estimator may set to allow
// immediate acceptance of c.
type LineSearcher[T Real] interface {
	Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error)
}

// InitialStepper is the contract shared by InitialHagerZhang,
// InitialStatic, InitialPrevious, InitialQuadratic and
// InitialConstantChange. It reads and writes state.MayTerminate and
// returns the alpha to hand to a LineSearcher.
type InitialStepper[T Real] interface {
	Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T
}

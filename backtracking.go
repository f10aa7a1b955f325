package linesearch

// BackTracking is the classical Armijo sufficient-decrease line search:
// start from the trial step c and shrink until sufficient decrease holds,
// using quadratic/cubic interpolation to pick the next trial rather than
// a fixed ratio. The interpolation reuses the same safeguarded-quadratic
// shape as strongwolfe.go's interpolate, generalized here to also fit a
// cubic through the last two rejected trials when Config.Order is 3.
// A degenerate or out-of-range fit falls back to halving the step, and
// Config.Order 1 uses the fixed ratio Config.Rho instead.
type BackTracking[T Real] struct {
	Config BackTrackingConfig[T]
}

var _ LineSearcher[float64] = (*BackTracking[float64])(nil)

// NewBackTracking returns a BackTracking line search using cfg.
func NewBackTracking[T Real](cfg BackTrackingConfig[T]) *BackTracking[T] {
	return &BackTracking[T]{Config: cfg}
}

func (bt *BackTracking[T]) sufficientDecrease(phi0, dphi0, alpha, phiAlpha T) bool {
	return phiAlpha <= phi0+bt.Config.C1*alpha*dphi0
}

// quadraticStep fits a quadratic through (0, phi0, dphi0) and (alpha,
// phiAlpha) and returns its minimizer, clipped to a safe fraction of
// alpha when the fit is degenerate.
func quadraticStep[T Real](alpha, phi0, dphi0, phiAlpha T) T {
	denom := 2 * (phiAlpha - phi0 - dphi0*alpha)
	if denom == 0 {
		return alpha / 2
	}
	cand := -dphi0 * alpha * alpha / denom
	if !isFiniteT(cand) || cand <= T(0.01)*alpha || cand >= T(0.9)*alpha {
		return alpha / 2
	}
	return cand
}

// cubicStep fits a cubic through (0, phi0, dphi0) and the last two
// trials (alpha0, phi0v) and (alpha1, phi1v), returning its minimizer on
// (0, alpha1), or falling back to quadraticStep when the fit is
// degenerate or lands outside a safe margin.
func cubicStep[T Real](alpha0, phi0v, alpha1, phi1v, phi0, dphi0 T) T {
	a0sq := alpha0 * alpha0
	a1sq := alpha1 * alpha1
	denom := a0sq * a1sq * (alpha1 - alpha0)
	if denom == 0 {
		return quadraticStep(alpha1, phi0, dphi0, phi1v)
	}
	c2 := phi0v - phi0 - dphi0*alpha0
	c3 := phi1v - phi0 - dphi0*alpha1
	a := (a0sq*c3 - a1sq*c2) / denom
	b := (-alpha0*alpha0*alpha0*c3 + alpha1*alpha1*alpha1*c2) / denom
	if a == 0 {
		return quadraticStep(alpha1, phi0, dphi0, phi1v)
	}
	disc := b*b - 3*a*dphi0
	if disc < 0 {
		return quadraticStep(alpha1, phi0, dphi0, phi1v)
	}
	cand := (-b + sqrtT(disc)) / (3 * a)
	if !isFiniteT(cand) || cand <= T(0.01)*alpha1 || cand >= T(0.9)*alpha1 {
		return quadraticStep(alpha1, phi0, dphi0, phi1v)
	}
	return cand
}

// Search implements LineSearcher.
func (bt *BackTracking[T]) Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	cfg := bt.Config
	if !isFiniteT(phi0) || !isFiniteT(dphi0) {
		return Result[T]{}, &NonFiniteInitialError[T]{phi0, dphi0}
	}
	if dphi0 >= 0 {
		return Result[T]{}, &NonDescentError[T]{dphi0, nanT[T]()}
	}

	alpha := c
	phiAlpha := obj.Value(alpha)
	if !isFiniteT(phiAlpha) {
		ok := false
		for i := 0; i < iterFiniteMax[T](); i++ {
			alpha *= cfg.Rho
			phiAlpha = obj.Value(alpha)
			if isFiniteT(phiAlpha) {
				ok = true
				break
			}
		}
		if !ok {
			return Result[T]{Alpha: 0, FiniteExhausted: true}, nil
		}
	}

	var alphaPrev, phiPrev T
	havePrev := false
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		tr.Trace(TraceEvent[T]{Level: TraceIter, Alpha: alpha, Value: phiAlpha, Note: "backtracking trial"})
		if bt.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) {
			_, dphiAlpha := obj.ValueSlope(alpha)
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter}, nil
		}
		if alpha < cfg.AlphaMin {
			return Result[T]{}, &LineSearchError[T]{Alpha: alpha, Iterations: iter}
		}

		var next T
		switch {
		case cfg.Order >= 3 && havePrev:
			next = cubicStep(alphaPrev, phiPrev, alpha, phiAlpha, phi0, dphi0)
		case cfg.Order >= 2:
			next = quadraticStep(alpha, phi0, dphi0, phiAlpha)
		default:
			next = cfg.Rho * alpha
		}
		if next < cfg.AlphaMin {
			next = cfg.AlphaMin
		}

		alphaPrev, phiPrev, havePrev = alpha, phiAlpha, true
		alpha = next
		phiAlpha = obj.Value(alpha)
	}
	return Result[T]{}, &LineSearchError[T]{Alpha: alpha, Iterations: cfg.MaxIter}
}

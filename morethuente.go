package linesearch

// MoreThuente is the Wolfe-condition line search of More and Thuente,
// grounded the same way StrongWolfe is: bracket growth borrowed from the
// teacher's bracketer.bracket, refinement borrowed from brentMinimizer,
// except the refinement step here roots the derivative of a cubic Hermite
// model of phi instead of minimizing a golden-section model of phi directly.
type MoreThuente[T Real] struct {
	Config MoreThuenteConfig[T]
}

var _ LineSearcher[float64] = (*MoreThuente[float64])(nil)

// NewMoreThuente returns a MoreThuente line search using cfg.
func NewMoreThuente[T Real](cfg MoreThuenteConfig[T]) *MoreThuente[T] {
	return &MoreThuente[T]{Config: cfg}
}

func (mt *MoreThuente[T]) sufficientDecrease(phi0, dphi0, alpha, phiAlpha T) bool {
	return phiAlpha <= phi0+mt.Config.C1*alpha*dphi0
}

func (mt *MoreThuente[T]) curvature(dphi0, dphiAlpha T) bool {
	return absT(dphiAlpha) <= -mt.Config.C2*dphi0
}

// hermiteRoot estimates where phi' crosses zero inside (lo, hi), given
// the function/slope pairs at both ends. It parametrizes the cubic
// Hermite interpolant of phi over t in [0, 1] (t=0 at lo, t=1 at hi) and
// roots its derivative,
//
//	g(t) = 6*(phiLo-phiHi)*(t^2-t) + h*dphiLo*(3t^2-4t+1) + h*dphiHi*(3t^2-2t)
//
// where h = hi - lo. g(0) = h*dphiLo is always < 0 for a valid bracket.
// When g(1) = h*dphiHi is also known to have the opposite sign (the
// bracket was created because dphi turned non-negative, not merely
// because phi stopped decreasing), BrentRoot has a guaranteed sign
// change to work with and is used directly. Otherwise this falls back
// to the quadratic/golden-section interpolate helper from strongwolfe.go
// -- a deliberate simplification of More-Thuente's full modified-updating
// algorithm, which instead tracks a safeguarding auxiliary function.
func hermiteRoot[T Real](lo, hi, phiLo, phiHi, dphiLo, dphiHi T, tr Tracer[T]) T {
	h := hi - lo
	g := func(t T) T {
		return 6*(phiLo-phiHi)*(t*t-t) + h*dphiLo*(3*t*t-4*t+1) + h*dphiHi*(3*t*t-2*t)
	}
	if g(0)*g(1) < 0 {
		t, err := BrentRoot(T(0), T(1), T(1e-10), g, tr)
		if err == nil && isFiniteT(t) {
			return lo + t*h
		}
	}
	return interpolate(lo, hi, phiLo, phiHi, dphiLo)
}

func (mt *MoreThuente[T]) zoom(obj *Objective[T], tr Tracer[T], lo, hi, phiLo, dphiLo, phi0, dphi0 T) (Result[T], error) {
	cfg := mt.Config
	phiHi, dphiHi := obj.ValueSlope(hi)
	for iter := 0; iter < cfg.MaxIter; iter++ {
		alpha := hermiteRoot(lo, hi, phiLo, phiHi, dphiLo, dphiHi, tr)
		phiAlpha, dphiAlpha := obj.ValueSlope(alpha)
		tr.Trace(TraceEvent[T]{Level: TraceIter, Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Note: "morethuente zoom"})

		if !mt.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) || phiAlpha >= phiLo {
			hi, phiHi, dphiHi = alpha, phiAlpha, dphiAlpha
			continue
		}
		if mt.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter + 1}, nil
		}
		if dphiAlpha*(hi-lo) >= 0 {
			hi, phiHi, dphiHi = lo, phiLo, dphiLo
		}
		lo, phiLo, dphiLo = alpha, phiAlpha, dphiAlpha
	}
	return Result[T]{}, &LineSearchError[T]{Alpha: lo, Iterations: cfg.MaxIter}
}

// Search implements LineSearcher.
func (mt *MoreThuente[T]) Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	cfg := mt.Config
	if !isFiniteT(phi0) || !isFiniteT(dphi0) {
		return Result[T]{}, &NonFiniteInitialError[T]{phi0, dphi0}
	}
	if dphi0 >= 0 {
		return Result[T]{}, &NonDescentError[T]{dphi0, nanT[T]()}
	}

	alphaPrev := T(0)
	phiPrev := phi0
	dphiPrev := dphi0
	alpha := c
	if alpha > cfg.AlphaMax {
		alpha = cfg.AlphaMax
	}

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		phiAlpha, dphiAlpha := obj.ValueSlope(alpha)
		tr.Trace(TraceEvent[T]{Level: TraceBracket, Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha})

		if mayTerminate && mt.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) && mt.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter}, nil
		}

		if !mt.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) || (iter > 1 && phiAlpha >= phiPrev) {
			return mt.zoom(obj, tr, alphaPrev, alpha, phiPrev, dphiPrev, phi0, dphi0)
		}
		if mt.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter}, nil
		}
		if dphiAlpha >= 0 {
			return mt.zoom(obj, tr, alpha, alphaPrev, phiAlpha, dphiAlpha, phi0, dphi0)
		}

		if alpha == cfg.AlphaMax {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Boundary: true, Iterations: iter}, nil
		}
		alphaPrev, phiPrev, dphiPrev = alpha, phiAlpha, dphiAlpha
		alpha *= cfg.Rho
		if alpha > cfg.AlphaMax {
			alpha = cfg.AlphaMax
		}
	}
	return Result[T]{}, &LineSearchError[T]{Alpha: alpha, Iterations: cfg.MaxIter}
}

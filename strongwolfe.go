package linesearch

// StrongWolfe is the classical two-phase Nocedal-Wright line search
// (bracket, then zoom) for the Strong Wolfe conditions. The
// bracket-growth step multiplies the trial by Config.Rho, and zoom's
// safeguarded interpolation falls back to a golden-section point,
// themed from "minimize phi directly" to "find a Strong-Wolfe point".
type StrongWolfe[T Real] struct {
	Config StrongWolfeConfig[T]
}

var _ LineSearcher[float64] = (*StrongWolfe[float64])(nil)

// NewStrongWolfe returns a StrongWolfe line search using cfg.
func NewStrongWolfe[T Real](cfg StrongWolfeConfig[T]) *StrongWolfe[T] {
	return &StrongWolfe[T]{Config: cfg}
}

// golden is the golden-section ratio: (3-sqrt(5))/2.
const golden = 0.3819660112501051

func (sw *StrongWolfe[T]) sufficientDecrease(phi0, dphi0, alpha, phiAlpha T) bool {
	return phiAlpha <= phi0+sw.Config.C1*alpha*dphi0
}

func (sw *StrongWolfe[T]) curvature(dphi0, dphiAlpha T) bool {
	return absT(dphiAlpha) <= -sw.Config.C2*dphi0
}

// interpolate picks a trial point in (lo, hi) via safeguarded quadratic
// interpolation through (lo, phiLo, dphiLo) and (hi, phiHi), falling back
// to the golden-section point when the quadratic model is ill-conditioned
// or lands outside a safe margin of the interval.
func interpolate[T Real](lo, hi, phiLo, phiHi, dphiLo T) T {
	h := hi - lo
	denom := 2 * (phiHi - phiLo - dphiLo*h)
	margin := T(0.1) * absT(h)
	if denom != 0 {
		cand := lo - dphiLo*h*h/denom
		lower, upper := lo, hi
		if lower > upper {
			lower, upper = upper, lower
		}
		if isFiniteT(cand) && cand > lower+margin && cand < upper-margin {
			return cand
		}
	}
	return lo + T(golden)*h
}

func (sw *StrongWolfe[T]) zoom(obj *Objective[T], tr Tracer[T], lo, hi, phiLo, dphiLo, phi0, dphi0 T) (Result[T], error) {
	cfg := sw.Config
	phiHi := obj.Value(hi)
	for iter := 0; iter < cfg.MaxIter; iter++ {
		alpha := interpolate(lo, hi, phiLo, phiHi, dphiLo)
		phiAlpha, dphiAlpha := obj.ValueSlope(alpha)
		tr.Trace(TraceEvent[T]{Level: TraceIter, Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Note: "strongwolfe zoom"})

		if !sw.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) || phiAlpha >= phiLo {
			hi, phiHi = alpha, phiAlpha
			continue
		}
		if sw.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter + 1}, nil
		}
		if dphiAlpha*(hi-lo) >= 0 {
			hi, phiHi = lo, phiLo
		}
		lo, phiLo, dphiLo = alpha, phiAlpha, dphiAlpha
	}
	return Result[T]{}, &LineSearchError[T]{Alpha: lo, Iterations: cfg.MaxIter}
}

// Search implements LineSearcher.
func (sw *StrongWolfe[T]) Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	cfg := sw.Config
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

		if mayTerminate && sw.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) && sw.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter}, nil
		}

		if !sw.sufficientDecrease(phi0, dphi0, alpha, phiAlpha) || (iter > 1 && phiAlpha >= phiPrev) {
			return sw.zoom(obj, tr, alphaPrev, alpha, phiPrev, dphiPrev, phi0, dphi0)
		}
		if sw.curvature(dphi0, dphiAlpha) {
			return Result[T]{Alpha: alpha, Value: phiAlpha, Slope: dphiAlpha, Iterations: iter}, nil
		}
		if dphiAlpha >= 0 {
			return sw.zoom(obj, tr, alpha, alphaPrev, phiAlpha, dphiAlpha, phi0, dphi0)
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

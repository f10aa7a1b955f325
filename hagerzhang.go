package linesearch

// HagerZhang is the bracketing-and-interval-refinement line search of
// Hager & Zhang. It is the core of this package; the other four line
// searches exist for comparison.
type HagerZhang[T Real] struct {
	Config HagerZhangConfig[T]
}

var _ LineSearcher[float64] = (*HagerZhang[float64])(nil)

// NewHagerZhang returns a HagerZhang line search using cfg.
func NewHagerZhang[T Real](cfg HagerZhangConfig[T]) *HagerZhang[T] {
	return &HagerZhang[T]{Config: cfg}
}

// wolfe implements W(c, phi_c, phi'_c): the classical Wolfe conditions
// or the approximate-Wolfe alternative.
func (hz *HagerZhang[T]) wolfe(phi0, dphi0, phiLim, c, phiC, dphiC T) bool {
	cfg := hz.Config
	wolfeClassic := cfg.Delta*dphi0 >= (phiC-phi0)/c && dphiC >= cfg.Sigma*dphi0
	wolfeApprox := (2*cfg.Delta-1)*dphi0 >= dphiC && dphiC >= cfg.Sigma*dphi0 && phiC <= phiLim
	return wolfeClassic || wolfeApprox
}

// secantAlpha returns the secant root of phi' through probes i and j:
// (alpha_i*slope_j - alpha_j*slope_i) / (slope_j - slope_i).
func secantAlpha[T Real](hist *BracketHistory[T], i, j int) T {
	ai, aj := hist.alpha(i), hist.alpha(j)
	si, sj := hist.slope(i), hist.slope(j)
	denom := sj - si
	if denom == 0 {
		return (ai + aj) / 2
	}
	return (ai*sj - aj*si) / denom
}

// bisect is HZ stage U3 (theta=0.5): given [ia, ib] with slopes[ia] < 0,
// values[ia] <= phiLim, slopes[ib] < 0 but values[ib] > phiLim, repeatedly
// evaluate the midpoint and shrink toward it until the bracket is
// narrow enough.
func (hz *HagerZhang[T]) bisect(hist *BracketHistory[T], obj *Objective[T], tr Tracer[T], ia, ib int, phiLim T) (int, int) {
	for {
		a, b := hist.alpha(ia), hist.alpha(ib)
		if b-a <= hz.Config.Epsilon*absT(b) {
			return ia, ib
		}
		d := (a + b) / 2
		phiD, dphiD := obj.ValueSlope(d)
		id := hist.push(d, phiD, dphiD)
		tr.Trace(TraceEvent[T]{Level: TraceBisect, Alpha: d, Value: phiD, Slope: dphiD})
		switch {
		case dphiD >= 0:
			return ia, id
		case phiD <= phiLim:
			ia = id
		default:
			ib = id
		}
	}
}

// update is HZ stages U0-U3: refine [ia, ib] using candidate ic.
func (hz *HagerZhang[T]) update(hist *BracketHistory[T], obj *Objective[T], tr Tracer[T], ia, ib, ic int, phiLim T) (int, int) {
	a, b := hist.alpha(ia), hist.alpha(ib)
	c := hist.alpha(ic)
	if c <= a || c >= b {
		return ia, ib
	}
	phiC, dphiC := hist.value(ic), hist.slope(ic)
	tr.Trace(TraceEvent[T]{Level: TraceUpdate, Alpha: c, Value: phiC, Slope: dphiC})
	switch {
	case dphiC >= 0:
		return ia, ic
	case phiC <= phiLim:
		return ic, ib
	default:
		return hz.bisect(hist, obj, tr, ia, ic, phiLim)
	}
}

// secant2 is HZ stages S1-S4 ("secant²"). accepted is non-nil when a
// probe evaluated along the way already satisfies W.
func (hz *HagerZhang[T]) secant2(hist *BracketHistory[T], obj *Objective[T], tr Tracer[T], ia, ib int, phi0, dphi0, phiLim T) (newIa, newIb int, accepted *Result[T]) {
	c := secantAlpha(hist, ia, ib)
	phiC, dphiC := obj.ValueSlope(c)
	ic := hist.push(c, phiC, dphiC)
	tr.Trace(TraceEvent[T]{Level: TraceSecant2, Alpha: c, Value: phiC, Slope: dphiC})
	if hz.wolfe(phi0, dphi0, phiLim, c, phiC, dphiC) {
		return 0, 0, &Result[T]{Alpha: c, Value: phiC, Slope: dphiC}
	}

	nIa, nIb := hz.update(hist, obj, tr, ia, ib, ic, phiLim)
	lowerChanged := nIa != ia
	upperChanged := nIb != ib
	if lowerChanged != upperChanged { // exactly one endpoint replaced
		var origIdx, newIdx int
		if upperChanged {
			origIdx, newIdx = ib, nIb
		} else {
			origIdx, newIdx = ia, nIa
		}
		c2 := secantAlpha(hist, newIdx, origIdx)
		if c2 > hist.alpha(nIa) && c2 < hist.alpha(nIb) {
			phiC2, dphiC2 := obj.ValueSlope(c2)
			ic2 := hist.push(c2, phiC2, dphiC2)
			tr.Trace(TraceEvent[T]{Level: TraceSecant2, Alpha: c2, Value: phiC2, Slope: dphiC2})
			if hz.wolfe(phi0, dphi0, phiLim, c2, phiC2, dphiC2) {
				return 0, 0, &Result[T]{Alpha: c2, Value: phiC2, Slope: dphiC2}
			}
			nIa, nIb = hz.update(hist, obj, tr, nIa, nIb, ic2, phiLim)
		}
	}
	return nIa, nIb, nil
}

// Search runs the HagerZhang line search: finite-value rescue,
// fast-accept, bracket construction (B0-B3) and refinement.
func (hz *HagerZhang[T]) Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	cfg := hz.Config

	if !isFiniteT(phi0) || !isFiniteT(dphi0) {
		return Result[T]{}, &NonFiniteInitialError[T]{phi0, dphi0}
	}
	if dphi0 >= 0 {
		return Result[T]{}, &NonDescentError[T]{dphi0, nanT[T]()}
	}

	phiLim := phi0 + cfg.Epsilon*absT(phi0)
	maxFiniteIter := iterFiniteMax[T]()
	alphaMax := cfg.AlphaMax

	hist := newBracketHistory[T](cfg.LineSearchMax + maxFiniteIter + 5)
	hist.push(0, phi0, dphi0)

	// Phase (a): finite-value rescue.
	phiC, dphiC := obj.ValueSlope(c)
	if !isFiniteT(phiC) || !isFiniteT(dphiC) {
		mayTerminate = false
		ok := false
		for i := 0; i < maxFiniteIter; i++ {
			c *= cfg.Psi3
			phiC, dphiC = obj.ValueSlope(c)
			if isFiniteT(phiC) && isFiniteT(dphiC) {
				ok = true
				break
			}
		}
		if !ok {
			tr.Trace(TraceEvent[T]{Level: TraceLinesearch, Note: "finite-value rescue exhausted, returning alpha=0"})
			return Result[T]{Alpha: 0, FiniteExhausted: true}, nil
		}
	}

	// Phase (b): initial fast-accept.
	if mayTerminate && hz.wolfe(phi0, dphi0, phiLim, c, phiC, dphiC) {
		return Result[T]{Alpha: c, Value: phiC, Slope: dphiC}, nil
	}

	// Phase (c): bracket construction (B0-B3).
	var ia, ib int
	bracketed := false
	for iter := 0; iter < cfg.LineSearchMax && !bracketed; iter++ {
		idx := hist.push(c, phiC, dphiC)
		tr.Trace(TraceEvent[T]{Level: TraceBracket, Alpha: c, Value: phiC, Slope: dphiC})

		switch {
		case dphiC >= 0:
			i := idx - 1
			for i > 0 && hist.value(i) > phiLim {
				i--
			}
			ia, ib = i, idx
			bracketed = true

		case hist.value(idx) > phiLim:
			ia, ib = hz.bisect(hist, obj, tr, idx-1, idx, phiLim)
			bracketed = true

		default:
			cold := c
			newC := cfg.Rho * c
			if newC > alphaMax {
				newC = cold + (alphaMax-cold)/2
			}
			if newC == cold || nextAfterT(newC, true) >= alphaMax {
				p := hist.at(idx)
				return Result[T]{Alpha: p.Alpha, Value: p.Value, Slope: p.Slope, Boundary: true}, nil
			}
			c = newC
			phiC, dphiC = obj.ValueSlope(c)
			if !isFiniteT(phiC) || !isFiniteT(dphiC) {
				ok := false
				for i := 0; i < maxFiniteIter; i++ {
					c = (cold + c) / 2
					alphaMax = c
					phiC, dphiC = obj.ValueSlope(c)
					if isFiniteT(phiC) && isFiniteT(dphiC) {
						ok = true
						break
					}
				}
				if !ok {
					tr.Trace(TraceEvent[T]{Level: TraceLinesearch, Note: "finite-value rescue exhausted during bracket growth"})
					return Result[T]{Alpha: cold, FiniteExhausted: true}, nil
				}
			}
			if c == alphaMax && dphiC < 0 {
				return Result[T]{Alpha: c, Value: phiC, Slope: dphiC, Boundary: true}, nil
			}
			// else: still descending, loop pushes c next iteration.
		}
	}
	if !bracketed {
		return Result[T]{}, &LineSearchError[T]{Alpha: c, Iterations: cfg.LineSearchMax}
	}

	// Phase (d): refinement.
	iterations := 0
	for hist.alpha(ib)-hist.alpha(ia) > cfg.Epsilon*absT(hist.alpha(ib)) {
		iterations++
		if iterations > cfg.LineSearchMax {
			return Result[T]{}, &LineSearchError[T]{Alpha: hist.alpha(ib), Iterations: iterations}
		}

		A, B, accepted := hz.secant2(hist, obj, tr, ia, ib, phi0, dphi0, phiLim)
		if accepted != nil {
			accepted.Iterations = iterations
			return *accepted, nil
		}

		widthOld := hist.alpha(ib) - hist.alpha(ia)
		widthNew := hist.alpha(B) - hist.alpha(A)
		if widthNew < cfg.Gamma*widthOld {
			flat := nextAfterT(hist.value(ia), true) >= hist.value(ib) &&
				nextAfterT(hist.value(A), true) >= hist.value(B)
			if flat {
				p := hist.at(A)
				tr.Trace(TraceEvent[T]{Level: TraceLinesearch, Alpha: p.Alpha, Note: "flat region detected, accepting without further refinement"})
				return Result[T]{Alpha: p.Alpha, Value: p.Value, Slope: p.Slope, Iterations: iterations}, nil
			}
			ia, ib = A, B
			continue
		}

		mid := (hist.alpha(A) + hist.alpha(B)) / 2
		phiMid, dphiMid := obj.ValueSlope(mid)
		imid := hist.push(mid, phiMid, dphiMid)
		tr.Trace(TraceEvent[T]{Level: TraceIter, Alpha: mid, Value: phiMid, Slope: dphiMid})
		ia, ib = hz.update(hist, obj, tr, A, B, imid, phiLim)
	}

	p := hist.at(ia)
	tr.Trace(TraceEvent[T]{Level: TraceFinal, Alpha: p.Alpha, Note: "bracket collapsed below tolerance"})
	return Result[T]{Alpha: p.Alpha, Value: p.Value, Slope: p.Slope, Iterations: iterations}, nil
}

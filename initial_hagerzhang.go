package linesearch

// InitialHagerZhang produces the first trial alpha handed to a line search
// each outer iteration. It is the companion estimator the HagerZhang
// line search is normally paired with: on the first iteration
// it scales by the ratio of iterate size to gradient size (I0); on later
// iterations it tries a quadratic fit through the previous step (I1-I2).
type InitialHagerZhang[T Real] struct {
	Config InitialHagerZhangConfig[T]
}

var _ InitialStepper[float64] = (*InitialHagerZhang[float64])(nil)

// NewInitialHagerZhang returns an InitialHagerZhang estimator using cfg.
func NewInitialHagerZhang[T Real](cfg InitialHagerZhangConfig[T]) *InitialHagerZhang[T] {
	return &InitialHagerZhang[T]{Config: cfg}
}

// Init implements InitialStepper.
func (is *InitialHagerZhang[T]) Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T {
	cfg := is.Config

	if isNaNT(state.FPrevious) {
		// I0: first outer iteration.
		state.MayTerminate = false
		xInf := normInf(state.X)
		gInf, gL2 := obj.GradNorms(0)
		if xInf != 0 && gInf != 0 {
			return cfg.Psi0 * xInf / gInf
		}
		if phi0 != 0 && gL2 != 0 {
			return cfg.Psi0 * absT(phi0) / gL2
		}
		return cfg.Alpha0
	}

	// I1-I2: refine from the previous step.
	alphaPrev := state.Alpha
	alphaTest := cfg.Psi1 * alphaPrev
	if alphaTest > cfg.AlphaMax {
		alphaTest = cfg.AlphaMax
	}
	phiTest := obj.Value(alphaTest)
	if !isFiniteT(phiTest) {
		ok := false
		for i := 0; i < iterFiniteMax[T](); i++ {
			alphaTest *= cfg.Psi3
			phiTest = obj.Value(alphaTest)
			if isFiniteT(phiTest) {
				ok = true
				break
			}
		}
		if !ok {
			state.MayTerminate = true
			return 0
		}
	}

	a := (phiTest - phi0 - dphi0*alphaTest) / (alphaTest * alphaTest)
	if isFiniteT(a) && a > 0 && phiTest <= phi0 {
		unclipped := -dphi0 / (2 * a)
		alpha := unclipped
		if alpha > cfg.AlphaMax {
			alpha = cfg.AlphaMax
		}
		state.MayTerminate = unclipped <= cfg.AlphaMax
		return alpha
	}

	state.MayTerminate = false
	if phiTest > phi0 {
		return alphaTest
	}
	alpha := cfg.Psi2 * alphaPrev
	if alpha > cfg.AlphaMax {
		alpha = cfg.AlphaMax
	}
	return alpha
}

package linesearch

// Static is the no-op line search: it returns the supplied trial step c
// unchanged, useful for fixed-step gradient descent or for comparing
// other line searches against "no line search at all".
type Static[T Real] struct{}

var _ LineSearcher[float64] = Static[float64]{}

// Search implements LineSearcher. It never rejects c.
func (Static[T]) Search(obj *Objective[T], c, phi0, dphi0 T, mayTerminate bool, tr Tracer[T]) (Result[T], error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	phiC, dphiC := obj.ValueSlope(c)
	tr.Trace(TraceEvent[T]{Level: TraceFinal, Alpha: c, Value: phiC, Slope: dphiC, Note: "static: accepted unconditionally"})
	return Result[T]{Alpha: c, Value: phiC, Slope: dphiC}, nil
}

// InitialStatic always returns a fixed alpha.
type InitialStatic[T Real] struct {
	Alpha T
}

var _ InitialStepper[float64] = InitialStatic[float64]{}

// Init implements InitialStepper.
func (is InitialStatic[T]) Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T {
	state.MayTerminate = false
	return is.Alpha
}

// InitialPreviousConfig bounds the step InitialPrevious returns.
type InitialPreviousConfig[T Real] struct {
	AlphaMin T
	AlphaMax T
}

// NewInitialPreviousConfig returns AlphaMin=1e-12, AlphaMax=+Inf.
func NewInitialPreviousConfig[T Real]() InitialPreviousConfig[T] {
	return InitialPreviousConfig[T]{AlphaMin: T(1e-12), AlphaMax: infT[T]()}
}

// InitialPrevious returns the previous outer step, clipped to
// [AlphaMin, AlphaMax].
type InitialPrevious[T Real] struct {
	Config InitialPreviousConfig[T]
}

var _ InitialStepper[float64] = InitialPrevious[float64]{}

// Init implements InitialStepper.
func (is InitialPrevious[T]) Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T {
	state.MayTerminate = false
	alpha := state.Alpha
	if alpha < is.Config.AlphaMin {
		alpha = is.Config.AlphaMin
	}
	if alpha > is.Config.AlphaMax {
		alpha = is.Config.AlphaMax
	}
	return alpha
}

// InitialQuadraticConfig holds InitialQuadratic's tuning parameters.
type InitialQuadraticConfig[T Real] struct {
	Alpha0   T // used when there is no previous objective value to fit against
	AlphaMin T
	AlphaMax T
}

// NewInitialQuadraticConfig returns Alpha0=1, AlphaMin=1e-12,
// AlphaMax=+Inf.
func NewInitialQuadraticConfig[T Real]() InitialQuadraticConfig[T] {
	return InitialQuadraticConfig[T]{Alpha0: T(1), AlphaMin: T(1e-12), AlphaMax: infT[T]()}
}

// InitialQuadratic fits a quadratic through (0, phi(0), phi'(0)) and the
// previous objective value f_x_previous, and returns that quadratic's
// minimizer.
type InitialQuadratic[T Real] struct {
	Config InitialQuadraticConfig[T]
}

var _ InitialStepper[float64] = InitialQuadratic[float64]{}

// Init implements InitialStepper.
func (is InitialQuadratic[T]) Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T {
	cfg := is.Config
	state.MayTerminate = false
	if isNaNT(state.FPrevious) || dphi0 == 0 {
		return cfg.Alpha0
	}
	delta := phi0 - state.FPrevious
	alpha := 2 * delta / dphi0
	if !isFiniteT(alpha) || alpha <= 0 {
		alpha = cfg.Alpha0
	}
	if alpha < cfg.AlphaMin {
		alpha = cfg.AlphaMin
	}
	if alpha > cfg.AlphaMax {
		alpha = cfg.AlphaMax
	}
	return alpha
}

// InitialConstantChangeConfig holds InitialConstantChange's tuning
// parameters.
type InitialConstantChangeConfig[T Real] struct {
	TargetChange T // desired (negative) change in f per outer iteration
	Alpha0       T // used on the first iteration, when there is no scale to match
	AlphaMin     T
	AlphaMax     T
}

// NewInitialConstantChangeConfig returns TargetChange=-1, Alpha0=1,
// AlphaMin=1e-12, AlphaMax=+Inf.
func NewInitialConstantChangeConfig[T Real]() InitialConstantChangeConfig[T] {
	return InitialConstantChangeConfig[T]{TargetChange: T(-1), Alpha0: T(1), AlphaMin: T(1e-12), AlphaMax: infT[T]()}
}

// InitialConstantChange scales alpha so that the predicted linear change
// in f, dphi0*alpha, matches Config.TargetChange.
type InitialConstantChange[T Real] struct {
	Config InitialConstantChangeConfig[T]
}

var _ InitialStepper[float64] = InitialConstantChange[float64]{}

// Init implements InitialStepper.
func (is InitialConstantChange[T]) Init(state *OuterState[T], obj *Objective[T], phi0, dphi0 T) T {
	cfg := is.Config
	state.MayTerminate = false
	if isNaNT(state.FPrevious) || dphi0 == 0 {
		return cfg.Alpha0
	}
	alpha := cfg.TargetChange / dphi0
	if !isFiniteT(alpha) || alpha <= 0 {
		alpha = cfg.Alpha0
	}
	if alpha < cfg.AlphaMin {
		alpha = cfg.AlphaMin
	}
	if alpha > cfg.AlphaMax {
		alpha = cfg.AlphaMax
	}
	return alpha
}

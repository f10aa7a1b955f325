package linesearch

// HagerZhangConfig holds the immutable tuning parameters of the HagerZhang
// line search. The zero value is not valid; use NewHagerZhangConfig for
// the documented defaults.
type HagerZhangConfig[T Real] struct {
	Delta         T   // δ, sufficient-decrease parameter, 0 < Delta < 0.5
	Sigma         T   // σ, curvature parameter, Delta <= Sigma < 1
	AlphaMax      T   // αmax, finite step ceiling; +Inf for unconstrained
	Rho           T   // ρ, bracket expansion factor
	Epsilon       T   // ε, relative tolerance defining phiLim
	Gamma         T   // γ, secant-progress threshold
	Psi3          T   // ψ3, shrink factor used by finite-value rescue
	LineSearchMax int // maximum refinement iterations before MaxIterations
}

// NewHagerZhangConfig returns a HagerZhangConfig populated with the
// standard defaults: {δ=0.1, σ=0.9, αmax=∞, ρ=5, ε=1e-6, γ=0.66,
// ψ3=0.1, linesearchmax=50}.
func NewHagerZhangConfig[T Real]() HagerZhangConfig[T] {
	return HagerZhangConfig[T]{
		Delta:         T(0.1),
		Sigma:         T(0.9),
		AlphaMax:      infT[T](),
		Rho:           T(5),
		Epsilon:       T(1e-6),
		Gamma:         T(0.66),
		Psi3:          T(0.1),
		LineSearchMax: 50,
	}
}

// InitialHagerZhangConfig holds the tuning parameters of the
// InitialHagerZhang step estimator.
type InitialHagerZhangConfig[T Real] struct {
	Psi0     T // used only on the very first outer iteration
	Psi1     T // shrink factor applied to the previous step
	Psi2     T // growth factor when the quadratic fit is not usable
	Psi3     T // shrink factor used by finite-value rescue
	AlphaMax T
	Alpha0   T // fallback first-ever step, defaults to 1
}

// NewInitialHagerZhangConfig returns the standard defaults:
// {ψ0=0.01, ψ1=0.2, ψ2=2.0, ψ3=0.1, αmax=∞, α0=1.0}.
func NewInitialHagerZhangConfig[T Real]() InitialHagerZhangConfig[T] {
	return InitialHagerZhangConfig[T]{
		Psi0:     T(0.01),
		Psi1:     T(0.2),
		Psi2:     T(2.0),
		Psi3:     T(0.1),
		AlphaMax: infT[T](),
		Alpha0:   T(1.0),
	}
}

// BackTrackingConfig holds the tuning parameters of the BackTracking
// (Armijo) line search.
type BackTrackingConfig[T Real] struct {
	C1       T // sufficient-decrease constant
	Rho      T // τ, fixed shrink factor used when interpolation is disabled
	Order    int // 1 (fixed shrink), 2 (quadratic) or 3 (cubic) interpolation
	AlphaMin T
	MaxIter  int
}

// NewBackTrackingConfig returns a BackTrackingConfig with C1=1e-4,
// Rho=0.5, cubic interpolation, AlphaMin=1e-12 and MaxIter=50.
func NewBackTrackingConfig[T Real]() BackTrackingConfig[T] {
	return BackTrackingConfig[T]{
		C1:       T(1e-4),
		Rho:      T(0.5),
		Order:    3,
		AlphaMin: T(1e-12),
		MaxIter:  50,
	}
}

// MoreThuenteConfig holds the tuning parameters of the MoreThuente line
// search.
type MoreThuenteConfig[T Real] struct {
	C1       T // sufficient-decrease constant
	C2       T // curvature constant, C1 < C2 < 1
	Rho      T // bracket growth factor
	AlphaMin T
	AlphaMax T
	MaxIter  int
}

// NewMoreThuenteConfig returns C1=1e-4, C2=0.9, Rho=2, AlphaMin=1e-12,
// AlphaMax=+Inf, MaxIter=50.
func NewMoreThuenteConfig[T Real]() MoreThuenteConfig[T] {
	return MoreThuenteConfig[T]{
		C1:       T(1e-4),
		C2:       T(0.9),
		Rho:      T(2),
		AlphaMin: T(1e-12),
		AlphaMax: infT[T](),
		MaxIter:  50,
	}
}

// StrongWolfeConfig holds the tuning parameters of the StrongWolfe
// bracket-then-zoom line search.
type StrongWolfeConfig[T Real] struct {
	C1       T
	C2       T
	Rho      T // bracket growth factor
	AlphaMax T
	MaxIter  int
}

// NewStrongWolfeConfig returns C1=1e-4, C2=0.9, Rho=2, AlphaMax=+Inf,
// MaxIter=50.
func NewStrongWolfeConfig[T Real]() StrongWolfeConfig[T] {
	return StrongWolfeConfig[T]{
		C1:       T(1e-4),
		C2:       T(0.9),
		Rho:      T(2),
		AlphaMax: infT[T](),
		MaxIter:  50,
	}
}

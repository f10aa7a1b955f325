package linesearch

import "fmt"

// This file implements generic Brent/Bissection root finders over the
// Real type parameter, themed to the narrow job MoreThuente's
// safeguarded interpolation needs: finding where a cubic or quadratic
// model of phi' crosses zero inside a bracket known to contain a sign
// change.

// BrentRoot finds a zero of f within [a, b], where f(a) and f(b) must
// have opposite signs, using Brent's method (inverse quadratic
// interpolation safeguarded by bisection). tr, if non-nil, receives one
// TraceBisect event per iteration.
func BrentRoot[T Real](a, b, tol T, f func(T) T, tr Tracer[T]) (T, error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return nanT[T](), fmt.Errorf("linesearch: BrentRoot: f(a) and f(b) do not bracket a root")
	}
	if absT(fa) < absT(fb) {
		a, fa, b, fb = b, fb, a, fa
	}
	c, fc := a, fa
	var d, s, fs T
	mflag := true

	it := 0
	for fb != 0 && absT(b-a) > tol {
		it++
		if it == 1000 {
			return nanT[T](), fmt.Errorf("linesearch: BrentRoot: exceeded 1000 iterations")
		}
		if fa != fc && fb != fc {
			s = a*fb*fc/(fa-fb)/(fa-fc) +
				b*fa*fc/(fb-fa)/(fb-fc) +
				c*fa*fb/(fc-fa)/(fc-fb)
		} else {
			s = b - fb*(b-a)/(fb-fa)
		}

		between := ((3*a+b)/4 <= s && s <= b) || ((3*a+b)/4 >= s && s >= b)
		var ineq bool
		if between {
			if mflag {
				ineq = absT(s-b) < absT(b-c)/2
			} else {
				ineq = absT(s-b) < absT(c-d)/2
			}
		}

		if !between || !ineq {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs = f(s)
		tr.Trace(TraceEvent[T]{Level: TraceBisect, Alpha: s, Value: fs, Note: "BrentRoot probe"})
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if absT(fa) < absT(fb) {
			a, fa, b, fb = b, fb, a, fa
		}
	}
	return b, nil
}

// BisectRoot finds a zero of f within [a, b] by plain bisection, where
// f(a) and f(b) must have opposite signs.
func BisectRoot[T Real](a, b, tol T, f func(T) T, tr Tracer[T]) (T, error) {
	if tr == nil {
		tr = NullTracer[T]()
	}
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return nanT[T](), fmt.Errorf("linesearch: BisectRoot: f(a) and f(b) do not bracket a root")
	}
	if absT(fa) < absT(fb) {
		a, fa, b, fb = b, fb, a, fa
	}
	var s, fs T
	for fb != 0 && absT(b-a) > tol {
		s = (a + b) / 2
		fs = f(s)
		tr.Trace(TraceEvent[T]{Level: TraceBisect, Alpha: s, Value: fs, Note: "BisectRoot probe"})
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if absT(fa) < absT(fb) {
			a, fa, b, fb = b, fb, a, fa
		}
	}
	return b, nil
}

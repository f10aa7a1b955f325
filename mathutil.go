package linesearch

import "math"

// This file collects the generic floating-point primitives (machine
// epsilon, nextfloat, Inf, NaN, isFinite) that must be derived from the
// scalar type T itself, plus the handful of math.* wrappers the rest of
// the package needs generically.

func absT[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrtT[T Real](x T) T {
	return T(math.Sqrt(float64(x)))
}

func infT[T Real]() T {
	return T(math.Inf(1))
}

func nanT[T Real]() T {
	return T(math.NaN())
}

func isFiniteT[T Real](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isNaNT[T Real](x T) bool {
	return math.IsNaN(float64(x))
}

// epsT returns the machine epsilon for T: the smallest representable gap
// between 1 and the next larger value. float32 and float64 get distinct,
// correct values because the bit width is taken from T itself.
func epsT[T Real]() T {
	one := T(1)
	eps := T(1)
	for one+eps/2 != one {
		eps /= 2
	}
	return eps
}

// nextAfterT returns the next representable value of T after x, moving
// toward +Inf if up is true and toward -Inf otherwise.
func nextAfterT[T Real](x T, up bool) T {
	target := math.Inf(1)
	if !up {
		target = math.Inf(-1)
	}
	// A T with float32 precision cannot tell 1 from 1+2^-40; step it by
	// one float32 ULP, since a float64 step would round back to x.
	one := T(1)
	if one+one/(1<<40) == one {
		return T(math.Nextafter32(float32(x), float32(target)))
	}
	return T(math.Nextafter(float64(x), target))
}

// iterFiniteMax is ⌈−log2(machine epsilon)⌉, the number of halvings that
// exhausts a type's floating-point resolution.
func iterFiniteMax[T Real]() int {
	eps := float64(epsT[T]())
	n := 0
	for e := 1.0; e > eps; e /= 2 {
		n++
	}
	return n
}

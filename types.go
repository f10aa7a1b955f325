// Package linesearch implements one-dimensional line-search algorithms used
// as inner routines by multivariate unconstrained-optimization methods:
// HagerZhang, BackTracking, MoreThuente, StrongWolfe and Static, together
// with the initial-step estimators that hand each of them their first
// trial step. The package never drives an outer optimization loop itself;
// see the sibling demo package for a minimal caller.
package linesearch

import "golang.org/x/exp/constraints"

// Real is the scalar numeric domain the whole package is generic over.
// 32-bit, 64-bit and any other Go floating-point type share the same
// implementation.
type Real = constraints.Float

// resizeVec returns a slice of length n, reusing the backing array of x
// when it is large enough and allocating a new one otherwise, for
// scratch buffers that are reused across outer iterations.
func resizeVec[T Real](x []T, n int) []T {
	if n > cap(x) {
		return make([]T, n)
	}
	return x[:n]
}

// copyVec copies src into dst, resizing dst if necessary, and returns the
// (possibly reallocated) destination.
func copyVec[T Real](dst, src []T) []T {
	dst = resizeVec(dst, len(src))
	copy(dst, src)
	return dst
}

// axpyTo computes dst[i] = x[i] + alpha*s[i] for every i, resizing dst
// if necessary. x and s must have equal length.
func axpyTo[T Real](dst []T, x []T, alpha T, s []T) []T {
	dst = resizeVec(dst, len(x))
	for i := range x {
		dst[i] = x[i] + alpha*s[i]
	}
	return dst
}

// dot returns the inner product of a and b. a and b must have equal length.
func dot[T Real](a, b []T) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// norm2 returns the Euclidean norm of x.
func norm2[T Real](x []T) T {
	return sqrtT(dot(x, x))
}

// normInf returns the infinity (max-abs) norm of x.
func normInf[T Real](x []T) T {
	var m T
	for _, v := range x {
		a := absT(v)
		if a > m {
			m = a
		}
	}
	return m
}

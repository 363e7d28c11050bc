// pkg/utils/math.go
package utils

import "cmp"

// Clamp ограничивает x отрезком [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Abs returns the absolute value of x.
func Abs[T int | float64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

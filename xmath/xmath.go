// Package xmath holds the handful of generic integer helpers the puzzle
// solvers share: absolute value, sign, and gcd/lcm for cycle arithmetic.
package xmath

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Gcd returns the greatest common divisor of a and b by Euclid's algorithm.
// Inputs are expected to be non-negative; Gcd(0, 0) is 0.
func Gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Lcm returns the least common multiple of a and b, dividing before
// multiplying so intermediate values stay within range.
func Lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / Gcd(a, b) * b
}

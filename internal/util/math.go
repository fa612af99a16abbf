package util

import "cmp"

// Integer is any built-in integer type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Clamp limits value to [lo, hi]. lo must not be greater than hi.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// GCD returns the greatest common divisor
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple
func LCM[T Integer](a, b T) T {
	return a / GCD(a, b) * b
}

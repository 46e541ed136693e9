// Package mathx has the few generic integer helpers the puzzles share.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of xs. LCM of nothing is 1.
func LCM[T constraints.Integer](xs ...T) T {
	var out T = 1
	for _, x := range xs {
		if x == 0 {
			return 0
		}
		out = out / GCD(out, x) * x
	}
	return out
}

// Sum adds xs.
func Sum[T constraints.Integer | constraints.Float](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

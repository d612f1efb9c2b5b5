// Package utils holds small numeric helpers shared across engines and the CLI.
package utils

// PowUint64 returns base**exp in integer arithmetic. Exponents that overflow
// uint64 describe spaces no engine could enumerate anyway.
func PowUint64(base uint64, exp int) uint64 {
	var result uint64 = 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// Clamp01 bounds v to the closed interval [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
